package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"gepe-server/internal/clients/mercadopago"
	"gepe-server/internal/email"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// PaymentsStore defines the database operations required by PaymentsProcessor
type PaymentsStore interface {
	UpsertPayment(ctx context.Context, params store.UpsertPaymentParams) (store.Payment, error)
	GetPayment(ctx context.Context, id int64) (store.PaymentWithOrder, error)
	GetPaymentByMPPaymentID(ctx context.Context, mpPaymentID string) (store.Payment, error)
	ListPayments(ctx context.Context, params store.ListPaymentsParams) ([]store.PaymentWithOrder, error)
	UpdatePaymentRefund(ctx context.Context, id int64, refundedAmount float64, refundedCount int64, status string) (store.Payment, error)
	LinkPaymentOrder(ctx context.Context, id, orderID int64) error
	GetOrder(ctx context.Context, id int64) (store.Order, error)
	GetOrderByExternalReference(ctx context.Context, ref string) (store.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]store.OrderItem, error)
	ListOrdersByStatuses(ctx context.Context, statuses ...string) ([]store.Order, error)
	ListOrdersWithPaymentID(ctx context.Context) ([]store.Order, error)
	UpdateOrder(ctx context.Context, id int64, params store.UpdateOrderParams) (store.Order, error)
	SetConfirmationEmailSent(ctx context.Context, id int64) error
	CreateOrder(ctx context.Context, order store.Order, items []store.OrderItem) (store.Order, []store.OrderItem, error)
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
	GetOrCreateUserByEmail(ctx context.Context, email string, fullName *string) (store.User, error)
}

// PaymentGateway is the MercadoPago surface the processor depends on.
type PaymentGateway interface {
	IsEnabled() bool
	CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (mercadopago.PreferenceResponse, error)
	GetPayment(ctx context.Context, paymentID string) (mercadopago.Payment, []byte, error)
	SearchPaymentsByExternalReference(ctx context.Context, externalReference string) ([]mercadopago.Payment, error)
	RefundPayment(ctx context.Context, paymentID string, amount *float64) (mercadopago.Refund, error)
}

// EmailSender defines the email operations required by PaymentsProcessor
type EmailSender interface {
	SendOrderConfirmationEmail(ctx context.Context, order email.OrderEmail) error
}

var (
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrFullyRefunded        = errors.New("payment is already fully refunded")
	ErrInvalidRefundAmount  = errors.New("refund amount must be greater than zero")
	ErrNoPaymentData        = errors.New("payment has no raw provider data")
	ErrNoPayerEmail         = errors.New("payment data carries no payer email")
	ErrNoPaymentItems       = errors.New("payment data carries no items")
)

// PaymentNotFoundError reports a missing payment row looked up by its
// database id.
type PaymentNotFoundError struct {
	ID int64
}

func (e PaymentNotFoundError) Error() string {
	return fmt.Sprintf("payment %d not found", e.ID)
}

// ProviderPaymentNotFoundError reports a missing payment row looked up by the
// MercadoPago payment id.
type ProviderPaymentNotFoundError struct {
	MPPaymentID string
}

func (e ProviderPaymentNotFoundError) Error() string {
	return fmt.Sprintf("payment with provider id %s not found", e.MPPaymentID)
}

// RefundBlockedError reports a refund attempt against a payment that is not
// approved.
type RefundBlockedError struct {
	Status string
}

func (e RefundBlockedError) Error() string {
	return fmt.Sprintf("cannot refund a payment in status %s", e.Status)
}

// RefundExceedsAvailableError reports a refund amount above the remaining
// balance.
type RefundExceedsAvailableError struct {
	Amount    float64
	Available float64
}

func (e RefundExceedsAvailableError) Error() string {
	return fmt.Sprintf("refund amount %.2f exceeds available %.2f", e.Amount, e.Available)
}

// RecoverOrderBlockedError reports an order recovery attempt from a payment
// that is not approved.
type RecoverOrderBlockedError struct {
	Status string
}

func (e RecoverOrderBlockedError) Error() string {
	return fmt.Sprintf("cannot recover an order from a payment in status %s", e.Status)
}

const (
	orderNumberPrefix   = "GEPE-"
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength   = 6

	defaultListLimit      = 100
	defaultCheckoutOrigin = "http://localhost:3000"
	defaultCurrency       = "ARS"
	defaultItemCategory   = "clothing"

	// Shown on the buyer's card statement.
	statementDescriptor = "GEPE SPORTS"
)

// Config carries the checkout settings the processor needs beyond its
// collaborators.
type Config struct {
	AccessToken    string
	WebhookURL     string
	CheckoutOrigin string
}

type PaymentsProcessor struct {
	store        PaymentsStore
	gateway      PaymentGateway
	emailService EmailSender
	cfg          Config
	logger       *observability.Logger
}

func New(store PaymentsStore, gateway PaymentGateway, emailService EmailSender, cfg Config, logger *observability.Logger) PaymentsProcessor {
	return PaymentsProcessor{
		store:        store,
		gateway:      gateway,
		emailService: emailService,
		cfg:          cfg,
		logger:       logger,
	}
}

// ConfigStatus reports which checkout settings are present without exposing
// their values.
type ConfigStatus struct {
	AccessTokenConfigured bool   `json:"mp_access_token_configured"`
	AccessTokenLength     int    `json:"mp_access_token_length"`
	WebhookURLConfigured  bool   `json:"mp_webhook_url_configured"`
	CORSOrigin            string `json:"cors_origin"`
}

func (p *PaymentsProcessor) ConfigStatus() ConfigStatus {
	return ConfigStatus{
		AccessTokenConfigured: p.cfg.AccessToken != "",
		AccessTokenLength:     len(p.cfg.AccessToken),
		WebhookURLConfigured:  p.cfg.WebhookURL != "",
		CORSOrigin:            p.cfg.CheckoutOrigin,
	}
}

// PreferenceItemParams is one purchasable line of a checkout preference.
type PreferenceItemParams struct {
	ID          string
	Title       string
	Description string
	PictureURL  string
	CategoryID  string
	Quantity    int64
	CurrencyID  string
	UnitPrice   float64
}

// PreferencePayerParams identifies the buyer for the checkout form.
type PreferencePayerParams struct {
	Name                 string
	Surname              string
	Email                string
	Phone                string
	IdentificationType   string
	IdentificationNumber string
}

type CreatePreferenceParams struct {
	Items             []PreferenceItemParams
	Payer             *PreferencePayerParams
	ExternalReference string
	NotificationURL   string
}

// PreferenceResult carries the checkout redirect targets back to the
// storefront.
type PreferenceResult struct {
	InitPoint        string  `json:"init_point"`
	PreferenceID     string  `json:"preference_id"`
	SandboxInitPoint *string `json:"sandbox_init_point"`
}

// CreatePreference registers a checkout preference with MercadoPago. The
// back URLs point at the configured checkout origin; auto_return is only
// enabled when that origin is publicly reachable, MercadoPago rejects
// localhost return targets.
func (p *PaymentsProcessor) CreatePreference(ctx context.Context, params CreatePreferenceParams) (PreferenceResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "external_reference", Value: params.ExternalReference})

	if !p.gateway.IsEnabled() {
		return PreferenceResult{}, ErrGatewayNotConfigured
	}

	origin := strings.TrimSpace(p.cfg.CheckoutOrigin)
	if origin == "" {
		origin = defaultCheckoutOrigin
		p.logger.Warn(ctx, "checkout origin not configured, falling back to localhost")
	}
	origin = strings.TrimRight(origin, "/")
	isPublic := strings.HasPrefix(origin, "https://") || strings.Contains(strings.ToLower(origin), "ngrok")

	req := mercadopago.PreferenceRequest{
		Items: make([]mercadopago.PreferenceItem, 0, len(params.Items)),
		BackURLs: &mercadopago.BackURLs{
			Success: origin + "/checkout/success",
			Failure: origin + "/checkout/failure",
			Pending: origin + "/checkout/pending",
		},
		ExternalReference:   params.ExternalReference,
		StatementDescriptor: statementDescriptor,
	}
	if isPublic {
		req.AutoReturn = "approved"
	} else {
		p.logger.Warn(ctx, "auto_return disabled, checkout origin is not publicly reachable")
	}

	for _, item := range params.Items {
		description := item.Description
		if description == "" {
			description = item.Title
		}
		category := item.CategoryID
		if category == "" {
			category = defaultItemCategory
		}
		currency := item.CurrencyID
		if currency == "" {
			currency = defaultCurrency
		}
		req.Items = append(req.Items, mercadopago.PreferenceItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: description,
			PictureURL:  item.PictureURL,
			CategoryID:  category,
			Quantity:    item.Quantity,
			CurrencyID:  currency,
			UnitPrice:   item.UnitPrice,
		})
	}

	if params.Payer != nil {
		payer := &mercadopago.PreferencePayer{
			Name:    params.Payer.Name,
			Surname: params.Payer.Surname,
			Email:   params.Payer.Email,
		}
		if params.Payer.Phone != "" {
			payer.Phone = &mercadopago.PreferencePhone{Number: params.Payer.Phone}
		}
		if params.Payer.IdentificationNumber != "" {
			payer.Identification = &mercadopago.Identification{
				Type:   params.Payer.IdentificationType,
				Number: params.Payer.IdentificationNumber,
			}
		}
		req.Payer = payer
	}

	notificationURL := p.cfg.WebhookURL
	if notificationURL == "" {
		notificationURL = params.NotificationURL
	}
	req.NotificationURL = notificationURL

	resp, err := p.gateway.CreatePreference(ctx, req)
	if err != nil {
		p.logger.Error(ctx, "failed to create checkout preference", err)
		return PreferenceResult{}, fmt.Errorf("failed to create checkout preference: %w", err)
	}

	p.logger.Info(ctx, "checkout preference created")
	return PreferenceResult{
		InitPoint:        resp.InitPoint,
		PreferenceID:     resp.ID,
		SandboxInitPoint: strPtrOrNil(resp.SandboxInitPoint),
	}, nil
}

// WebhookResult is the acknowledgement body sent back to MercadoPago. The
// webhook always answers 200 so the provider stops retrying; failures are
// reported inside the body instead of through the status code.
type WebhookResult struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// ProcessWebhook handles a payment notification. The notification body is
// never trusted: the payment is refetched from the API and the stored
// snapshot plus the referenced order are updated from that response.
func (p *PaymentsProcessor) ProcessWebhook(ctx context.Context, topic, resourceID string) WebhookResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "topic", Value: topic},
		observability.Field{Key: "resource_id", Value: resourceID},
	)
	p.logger.Info(ctx, "webhook notification received")

	if topic != "payment" {
		p.logger.Info(ctx, "webhook topic ignored")
		return WebhookResult{Status: "ignored", Reason: fmt.Sprintf("Topic %s no procesado", topic)}
	}
	if resourceID == "" {
		p.logger.Warn(ctx, "webhook notification carries no resource id")
		return WebhookResult{Status: "error", Reason: "Missing resource ID"}
	}

	payment, raw, err := p.gateway.GetPayment(ctx, resourceID)
	if err != nil {
		p.logger.Error(ctx, "failed to fetch payment for webhook", err)
		return WebhookResult{Status: "error", Reason: "Could not fetch payment from MP"}
	}

	var order store.Order
	orderFound := false
	if payment.ExternalReference != "" {
		order, err = p.store.GetOrderByExternalReference(ctx, payment.ExternalReference)
		switch {
		case err == nil:
			orderFound = true
		case errors.Is(err, store.ErrNotFound):
			// The storefront creates the order after the buyer returns, so
			// the payment can legitimately arrive first.
			p.logger.Warn(ctx, "no order for the payment's external reference yet")
		default:
			p.logger.Error(ctx, "failed to look up order for webhook", err)
			return WebhookResult{Status: "error", Detail: err.Error()}
		}
	} else {
		p.logger.Warn(ctx, "payment carries no external reference")
	}

	params := upsertParamsFromPayment(resourceID, payment, raw)
	if orderFound {
		params.OrderID = &order.ID
	}
	if _, err := p.store.UpsertPayment(ctx, params); err != nil {
		p.logger.Error(ctx, "failed to store payment snapshot", err)
		return WebhookResult{Status: "error", Detail: err.Error()}
	}

	if orderFound {
		p.applyPaymentToOrder(ctx, order, payment.Status, resourceID)
	}
	return WebhookResult{Status: "ok"}
}

// applyPaymentToOrder moves the order to the state the payment dictates.
// Failures are logged and swallowed, the webhook acknowledgement must not
// depend on them.
func (p *PaymentsProcessor) applyPaymentToOrder(ctx context.Context, order store.Order, paymentStatus, mpPaymentID string) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: order.ID})

	switch paymentStatus {
	case store.PaymentStatusApproved:
		paid := store.OrderStatusPaid
		waiting := store.ProductionStatusWaitingFabric
		updated, err := p.store.UpdateOrder(ctx, order.ID, store.UpdateOrderParams{
			Status:           &paid,
			ProductionStatus: &waiting,
			PaymentID:        &mpPaymentID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to mark order as paid", err)
			return
		}
		p.logger.Info(ctx, "payment approved, order moved to paid")
		p.sendConfirmationEmail(ctx, updated)
	case store.PaymentStatusPending:
		pending := store.OrderStatusPending
		if _, err := p.store.UpdateOrder(ctx, order.ID, store.UpdateOrderParams{
			Status:    &pending,
			PaymentID: &mpPaymentID,
		}); err != nil {
			p.logger.Error(ctx, "failed to keep order pending", err)
			return
		}
		p.logger.Info(ctx, "payment pending, order kept pending")
	case store.PaymentStatusRejected, store.PaymentStatusCancelled:
		cancelled := store.OrderStatusCancelled
		if _, err := p.store.UpdateOrder(ctx, order.ID, store.UpdateOrderParams{
			Status:    &cancelled,
			PaymentID: &mpPaymentID,
		}); err != nil {
			p.logger.Error(ctx, "failed to cancel order", err)
			return
		}
		p.logger.Info(ctx, "payment not completed, order cancelled")
	default:
		p.logger.Warn(ctx, "payment status does not map to an order update")
	}
}

// sendConfirmationEmail sends the purchase confirmation at most once per
// order. It reports whether an email went out; failures only log.
func (p *PaymentsProcessor) sendConfirmationEmail(ctx context.Context, order store.Order) bool {
	if order.ConfirmationEmailSent {
		return false
	}
	if order.CustomerEmail == nil || *order.CustomerEmail == "" {
		p.logger.Warn(ctx, "order has no customer email, skipping confirmation")
		return false
	}

	items, err := p.store.GetOrderItems(ctx, order.ID)
	if err != nil {
		p.logger.InfoWithError(ctx, "failed to load items for confirmation email", err)
		return false
	}
	if err := p.emailService.SendOrderConfirmationEmail(ctx, email.OrderEmailFromOrder(order, items)); err != nil {
		p.logger.InfoWithError(ctx, "failed to send confirmation email", err)
		return false
	}
	if err := p.store.SetConfirmationEmailSent(ctx, order.ID); err != nil {
		p.logger.Error(ctx, "failed to mark confirmation email as sent", err)
	}
	p.logger.Info(ctx, "confirmation email sent")
	return true
}

// upsertParamsFromPayment flattens an API payment into the row stored in the
// payments table. The raw body is kept verbatim so orders can later be
// recovered from it.
func upsertParamsFromPayment(mpPaymentID string, payment mercadopago.Payment, raw []byte) store.UpsertPaymentParams {
	methodID := payment.PaymentMethodID
	if methodID == "" {
		methodID = payment.Card.PaymentMethodID
	}

	refundedAmount := 0.0
	for _, refund := range payment.Refunds {
		refundedAmount += refund.Amount
	}

	status := payment.Status
	if status == "" {
		status = store.PaymentStatusPending
	}
	currency := payment.CurrencyID
	if currency == "" {
		currency = defaultCurrency
	}

	return store.UpsertPaymentParams{
		MPPaymentID:        mpPaymentID,
		TransactionAmount:  payment.TransactionAmount,
		CurrencyID:         currency,
		PaymentMethodID:    strPtrOrNil(methodID),
		PaymentTypeID:      strPtrOrNil(payment.PaymentTypeID),
		CardLastFourDigits: strPtrOrNil(payment.Card.LastFourDigits),
		CardHolderName:     strPtrOrNil(payment.Card.Cardholder.Name),
		Status:             status,
		StatusDetail:       strPtrOrNil(payment.StatusDetail),
		RefundedAmount:     refundedAmount,
		RefundedCount:      int64(len(payment.Refunds)),
		HasChargeback:      len(payment.Chargebacks) > 0,
		DateCreated:        strPtrOrNil(payment.DateCreated),
		DateApproved:       strPtrOrNil(payment.DateApproved),
		DateLastUpdated:    strPtrOrNil(payment.DateLastUpdated),
		MPRawData:          strPtrOrNil(string(raw)),
	}
}

// SyncPaymentsResult summarizes a payment backfill run.
type SyncPaymentsResult struct {
	Synced  int      `json:"synced"`
	Errors  []string `json:"errors"`
	Message string   `json:"message"`
}

// SyncPayments backfills the payments table from orders that carry a payment
// id without a stored payment, fetching each one from the API. Used after
// missed webhooks or to migrate orders created before payments were recorded.
func (p *PaymentsProcessor) SyncPayments(ctx context.Context) (SyncPaymentsResult, error) {
	if !p.gateway.IsEnabled() {
		return SyncPaymentsResult{}, ErrGatewayNotConfigured
	}

	orders, err := p.store.ListOrdersWithPaymentID(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list orders with payment ids", err)
		return SyncPaymentsResult{}, err
	}

	result := SyncPaymentsResult{Errors: []string{}}
	for _, order := range orders {
		if order.PaymentID == nil || *order.PaymentID == "" {
			continue
		}
		mpPaymentID := *order.PaymentID

		if _, err := p.store.GetPaymentByMPPaymentID(ctx, mpPaymentID); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			result.Errors = append(result.Errors, fmt.Sprintf("Error al sincronizar pago %s: %v", mpPaymentID, err))
			continue
		}

		payment, raw, err := p.gateway.GetPayment(ctx, mpPaymentID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error al sincronizar pago %s: %v", mpPaymentID, err))
			continue
		}

		params := upsertParamsFromPayment(mpPaymentID, payment, raw)
		params.OrderID = &order.ID
		if _, err := p.store.UpsertPayment(ctx, params); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error al sincronizar pago %s: %v", mpPaymentID, err))
			continue
		}
		result.Synced++
	}

	result.Message = fmt.Sprintf("Se sincronizaron %d pagos", result.Synced)
	p.logger.Info(ctx, "payment backfill finished")
	return result, nil
}

// SyncedOrder is one order corrected by SyncOrderPaymentStatuses.
type SyncedOrder struct {
	OrderNumber   *string `json:"order_number"`
	CustomerEmail *string `json:"customer_email"`
	MPPaymentID   string  `json:"mp_payment_id"`
	UpdatedTo     string  `json:"updated_to"`
}

// SyncOrderStatusResult summarizes an order status reconciliation run.
type SyncOrderStatusResult struct {
	Synced  int           `json:"synced"`
	Orders  []SyncedOrder `json:"orders"`
	Message string        `json:"message"`
}

// SyncOrderPaymentStatuses moves pending orders whose payment was approved to
// paid. The approved payment is found by the order's payment id, by scanning
// stored payment snapshots for the order's external reference, or as a last
// resort by searching the API directly for that reference.
func (p *PaymentsProcessor) SyncOrderPaymentStatuses(ctx context.Context) (SyncOrderStatusResult, error) {
	pending, err := p.store.ListOrdersByStatuses(ctx, store.OrderStatusPending)
	if err != nil {
		p.logger.Error(ctx, "failed to list pending orders", err)
		return SyncOrderStatusResult{}, err
	}

	var approvedSnapshots []store.PaymentWithOrder
	snapshotsLoaded := false

	result := SyncOrderStatusResult{Orders: []SyncedOrder{}}
	for _, order := range pending {
		approved, found := p.findApprovedPayment(ctx, order, &approvedSnapshots, &snapshotsLoaded)
		if !found {
			continue
		}

		paid := store.OrderStatusPaid
		waiting := store.ProductionStatusWaitingFabric
		updated, err := p.store.UpdateOrder(ctx, order.ID, store.UpdateOrderParams{
			Status:           &paid,
			ProductionStatus: &waiting,
			PaymentID:        &approved.MPPaymentID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to mark synced order as paid", err)
			continue
		}
		if approved.OrderID == nil {
			if err := p.store.LinkPaymentOrder(ctx, approved.ID, order.ID); err != nil {
				p.logger.Error(ctx, "failed to link payment to synced order", err)
			}
		}

		result.Synced++
		result.Orders = append(result.Orders, SyncedOrder{
			OrderNumber:   updated.OrderNumber,
			CustomerEmail: updated.CustomerEmail,
			MPPaymentID:   approved.MPPaymentID,
			UpdatedTo:     store.OrderStatusPaid,
		})
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "order_id", Value: order.ID}), "pending order reconciled to paid")

		p.sendConfirmationEmail(ctx, updated)
	}

	result.Message = fmt.Sprintf("Se sincronizaron %d órdenes a PAID", result.Synced)
	return result, nil
}

// findApprovedPayment locates the approved payment settling the order, if
// any. The stored approved snapshots are loaded once per run and shared
// across orders through the pointer arguments.
func (p *PaymentsProcessor) findApprovedPayment(ctx context.Context, order store.Order, snapshots *[]store.PaymentWithOrder, loaded *bool) (store.Payment, bool) {
	if order.PaymentID != nil && *order.PaymentID != "" {
		payment, err := p.store.GetPaymentByMPPaymentID(ctx, *order.PaymentID)
		if err == nil && payment.Status == store.PaymentStatusApproved {
			return payment, true
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to look up payment by id", err)
		}
	}

	if order.ExternalReference == nil || *order.ExternalReference == "" {
		return store.Payment{}, false
	}
	ref := *order.ExternalReference

	if !*loaded {
		approved := store.PaymentStatusApproved
		list, err := p.store.ListPayments(ctx, store.ListPaymentsParams{Status: &approved})
		if err != nil {
			p.logger.Error(ctx, "failed to list approved payments", err)
		} else {
			*snapshots = list
		}
		*loaded = true
	}
	for _, snapshot := range *snapshots {
		if snapshot.MPRawData == nil {
			continue
		}
		var rawPayment struct {
			ExternalReference string `json:"external_reference"`
		}
		if err := json.Unmarshal([]byte(*snapshot.MPRawData), &rawPayment); err != nil {
			continue
		}
		if rawPayment.ExternalReference == ref {
			return snapshot.Payment, true
		}
	}

	// The snapshot table only knows payments that arrived through the
	// webhook; ask the API for ones it missed.
	if p.gateway.IsEnabled() {
		results, err := p.gateway.SearchPaymentsByExternalReference(ctx, ref)
		if err != nil {
			p.logger.Error(ctx, "failed to search payments by external reference", err)
			return store.Payment{}, false
		}
		for _, found := range results {
			if found.Status != store.PaymentStatusApproved {
				continue
			}
			mpPaymentID := strconv.FormatInt(found.ID, 10)
			raw, err := json.Marshal(found)
			if err != nil {
				raw = nil
			}
			params := upsertParamsFromPayment(mpPaymentID, found, raw)
			params.OrderID = &order.ID
			stored, err := p.store.UpsertPayment(ctx, params)
			if err != nil {
				p.logger.Error(ctx, "failed to store searched payment", err)
				return store.Payment{}, false
			}
			return stored, true
		}
	}

	return store.Payment{}, false
}

// PaymentSummary is the financial audit list row. Product details are
// deliberately absent, this listing is for the accountant.
type PaymentSummary struct {
	ID                 int64   `json:"id"`
	MPPaymentID        string  `json:"mp_payment_id"`
	TransactionAmount  float64 `json:"transaction_amount"`
	CurrencyID         string  `json:"currency_id"`
	PaymentMethodLabel string  `json:"payment_method_label"`
	Status             string  `json:"status"`
	DateCreated        *string `json:"date_created"`
	DateApproved       *string `json:"date_approved"`
	RefundedAmount     float64 `json:"refunded_amount"`
	HasChargeback      bool    `json:"has_chargeback"`
	OrderNumber        *string `json:"order_number"`
	CustomerEmail      *string `json:"customer_email"`
	CustomerName       *string `json:"customer_name"`
}

type ListPaymentsParams struct {
	StatusFilter *string
	Skip         int
	Limit        int
}

func (p *PaymentsProcessor) ListPayments(ctx context.Context, params ListPaymentsParams) ([]PaymentSummary, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	payments, err := p.store.ListPayments(ctx, store.ListPaymentsParams{
		Status: params.StatusFilter,
		Limit:  limit,
		Offset: params.Skip,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list payments", err)
		return nil, err
	}

	summaries := make([]PaymentSummary, 0, len(payments))
	for _, payment := range payments {
		summaries = append(summaries, PaymentSummary{
			ID:                 payment.ID,
			MPPaymentID:        payment.MPPaymentID,
			TransactionAmount:  payment.TransactionAmount,
			CurrencyID:         payment.CurrencyID,
			PaymentMethodLabel: paymentMethodLabel(payment.Payment),
			Status:             payment.Status,
			DateCreated:        payment.DateCreated,
			DateApproved:       payment.DateApproved,
			RefundedAmount:     payment.RefundedAmount,
			HasChargeback:      payment.HasChargeback,
			OrderNumber:        payment.OrderNumber,
			CustomerEmail:      payment.CustomerEmail,
			CustomerName:       payment.CustomerName,
		})
	}
	return summaries, nil
}

// PaymentDetail is the full financial record of one payment.
type PaymentDetail struct {
	store.PaymentWithOrder
	PaymentMethodLabel string `json:"payment_method_label"`
}

func (p *PaymentsProcessor) GetPaymentDetail(ctx context.Context, id int64) (PaymentDetail, error) {
	payment, err := p.store.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PaymentDetail{}, PaymentNotFoundError{ID: id}
		}
		p.logger.Error(ctx, "failed to get payment", err)
		return PaymentDetail{}, err
	}
	return PaymentDetail{
		PaymentWithOrder:   payment,
		PaymentMethodLabel: paymentMethodLabel(payment.Payment),
	}, nil
}

// RefundResult reports the outcome of a refund.
type RefundResult struct {
	Success       bool    `json:"success"`
	RefundID      int64   `json:"refund_id"`
	RefundAmount  float64 `json:"refund_amount"`
	RefundedTotal float64 `json:"refunded_total"`
	Message       string  `json:"message"`
}

// RefundPayment refunds part or all of an approved payment. A nil amount
// refunds the full remaining balance. After the provider accepts the refund
// the payment is refetched so the stored totals reflect the provider's view.
func (p *PaymentsProcessor) RefundPayment(ctx context.Context, id int64, amount *float64) (RefundResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: id})

	if !p.gateway.IsEnabled() {
		return RefundResult{}, ErrGatewayNotConfigured
	}

	payment, err := p.store.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RefundResult{}, PaymentNotFoundError{ID: id}
		}
		p.logger.Error(ctx, "failed to get payment for refund", err)
		return RefundResult{}, err
	}

	if payment.Status != store.PaymentStatusApproved {
		return RefundResult{}, RefundBlockedError{Status: payment.Status}
	}
	available := payment.TransactionAmount - payment.RefundedAmount
	if available <= 0 {
		return RefundResult{}, ErrFullyRefunded
	}

	refundAmount := available
	if amount != nil {
		refundAmount = *amount
	}
	if refundAmount <= 0 {
		return RefundResult{}, ErrInvalidRefundAmount
	}
	if refundAmount > available {
		return RefundResult{}, RefundExceedsAvailableError{Amount: refundAmount, Available: available}
	}

	// A partial refund sends the amount; a full refund sends no body and the
	// provider refunds the remaining balance.
	var amountArg *float64
	if refundAmount < available {
		amountArg = &refundAmount
	}
	refund, err := p.gateway.RefundPayment(ctx, payment.MPPaymentID, amountArg)
	if err != nil {
		p.logger.Error(ctx, "refund rejected by payment provider", err)
		return RefundResult{}, fmt.Errorf("failed to refund payment: %w", err)
	}

	refundedTotal := payment.RefundedAmount
	refreshed, _, err := p.gateway.GetPayment(ctx, payment.MPPaymentID)
	if err != nil {
		p.logger.InfoWithError(ctx, "failed to refetch payment after refund", err)
	} else {
		refundedAmount := 0.0
		for _, r := range refreshed.Refunds {
			refundedAmount += r.Amount
		}
		status := payment.Status
		if refundedAmount >= payment.TransactionAmount {
			status = store.PaymentStatusRefunded
		}
		updated, err := p.store.UpdatePaymentRefund(ctx, payment.ID, refundedAmount, int64(len(refreshed.Refunds)), status)
		if err != nil {
			p.logger.Error(ctx, "failed to store refund totals", err)
		} else {
			refundedTotal = updated.RefundedAmount
		}
	}

	p.logger.Info(ctx, "refund processed")
	return RefundResult{
		Success:       true,
		RefundID:      refund.ID,
		RefundAmount:  refundAmount,
		RefundedTotal: refundedTotal,
		Message:       fmt.Sprintf("Reembolso de $%.2f procesado correctamente", refundAmount),
	}, nil
}

// RecoverOrderResult reports the outcome of rebuilding an order from a
// payment snapshot.
type RecoverOrderResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	OrderNumber   *string `json:"order_number"`
	OrderID       int64   `json:"order_id"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	ItemsCount    int     `json:"items_count,omitempty"`
	EmailSent     bool    `json:"email_sent"`
	Note          string  `json:"note,omitempty"`
}

// RecoverOrder rebuilds a missing order from a stored payment snapshot. It
// covers buyers who paid but never returned to the success page, leaving the
// payment without an order. Customer and item data come from the snapshot;
// shipping data does not exist there, the new order carries none.
func (p *PaymentsProcessor) RecoverOrder(ctx context.Context, mpPaymentID string) (RecoverOrderResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "mp_payment_id", Value: mpPaymentID})

	payment, err := p.store.GetPaymentByMPPaymentID(ctx, mpPaymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RecoverOrderResult{}, ProviderPaymentNotFoundError{MPPaymentID: mpPaymentID}
		}
		p.logger.Error(ctx, "failed to get payment for recovery", err)
		return RecoverOrderResult{}, err
	}

	if payment.OrderID != nil {
		existing, err := p.store.GetOrder(ctx, *payment.OrderID)
		if err == nil {
			number := ""
			if existing.OrderNumber != nil {
				number = *existing.OrderNumber
			}
			return RecoverOrderResult{
				Success:     false,
				Message:     fmt.Sprintf("Este pago ya tiene una orden asociada: %s", number),
				OrderNumber: existing.OrderNumber,
				OrderID:     existing.ID,
			}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to load order linked to payment", err)
			return RecoverOrderResult{}, err
		}
		// The linked order no longer exists; recover a fresh one.
	}

	if payment.Status != store.PaymentStatusApproved {
		return RecoverOrderResult{}, RecoverOrderBlockedError{Status: payment.Status}
	}
	if payment.MPRawData == nil || *payment.MPRawData == "" {
		return RecoverOrderResult{}, ErrNoPaymentData
	}

	var snapshot mercadopago.Payment
	if err := json.Unmarshal([]byte(*payment.MPRawData), &snapshot); err != nil {
		p.logger.Error(ctx, "failed to parse stored payment snapshot", err)
		return RecoverOrderResult{}, fmt.Errorf("failed to parse stored payment snapshot: %w", err)
	}

	customerEmail := strings.TrimSpace(snapshot.Payer.Email)
	if customerEmail == "" {
		return RecoverOrderResult{}, ErrNoPayerEmail
	}
	customerName := strings.TrimSpace(snapshot.AdditionalInfo.Payer.FirstName + " " + snapshot.AdditionalInfo.Payer.LastName)
	if customerName == "" {
		customerName = strings.TrimSpace(snapshot.Card.Cardholder.Name)
	}
	customerDNI := snapshot.Card.Cardholder.Identification.Number
	if customerDNI == "" {
		customerDNI = snapshot.Payer.Identification.Number
	}

	if len(snapshot.AdditionalInfo.Items) == 0 {
		return RecoverOrderResult{}, ErrNoPaymentItems
	}
	items := make([]store.OrderItem, 0, len(snapshot.AdditionalInfo.Items))
	for _, item := range snapshot.AdditionalInfo.Items {
		items = append(items, orderItemFromSnapshot(item))
	}

	user, err := p.store.GetOrCreateUserByEmail(ctx, customerEmail, strPtrOrNil(customerName))
	if err != nil {
		p.logger.Error(ctx, "failed to resolve user for recovered order", err)
		return RecoverOrderResult{}, err
	}

	number, err := p.uniqueOrderNumber(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to generate order number", err)
		return RecoverOrderResult{}, err
	}

	created, createdItems, err := p.store.CreateOrder(ctx, store.Order{
		OrderNumber:       &number,
		UserID:            &user.ID,
		Status:            store.OrderStatusPaid,
		TotalAmount:       payment.TransactionAmount,
		ExternalReference: strPtrOrNil(snapshot.ExternalReference),
		PaymentID:         &mpPaymentID,
		CustomerEmail:     &customerEmail,
		CustomerName:      strPtrOrNil(customerName),
		CustomerDNI:       strPtrOrNil(customerDNI),
	}, items)
	if err != nil {
		p.logger.Error(ctx, "failed to create recovered order", err)
		return RecoverOrderResult{}, err
	}

	// A recovered order is already paid, so it enters the production queue
	// immediately.
	waiting := store.ProductionStatusWaitingFabric
	updated, err := p.store.UpdateOrder(ctx, created.ID, store.UpdateOrderParams{ProductionStatus: &waiting})
	if err != nil {
		p.logger.Error(ctx, "failed to set production stage on recovered order", err)
		updated = created
	}

	if err := p.store.LinkPaymentOrder(ctx, payment.ID, created.ID); err != nil {
		p.logger.Error(ctx, "failed to link payment to recovered order", err)
		return RecoverOrderResult{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "order_number", Value: number}), "order recovered from payment snapshot")

	emailSent := p.sendConfirmationEmail(ctx, updated)

	return RecoverOrderResult{
		Success:       true,
		Message:       "Orden recuperada exitosamente",
		OrderNumber:   updated.OrderNumber,
		OrderID:       updated.ID,
		CustomerEmail: customerEmail,
		CustomerName:  customerName,
		TotalAmount:   updated.TotalAmount,
		ItemsCount:    len(createdItems),
		EmailSent:     emailSent,
		Note:          "IMPORTANTE: Esta orden no tiene datos de envío. Contactar al cliente para obtenerlos.",
	}, nil
}

// orderItemFromSnapshot converts an echoed checkout item, whose quantity and
// unit price are strings on the wire, back into an order item row.
func orderItemFromSnapshot(item mercadopago.AdditionalInfoItem) store.OrderItem {
	quantity, err := strconv.ParseInt(item.Quantity, 10, 64)
	if err != nil || quantity <= 0 {
		quantity = 1
	}
	unitPrice, err := strconv.ParseFloat(item.UnitPrice, 64)
	if err != nil {
		unitPrice = 0
	}
	var productID *int64
	if id, err := strconv.ParseInt(item.ID, 10, 64); err == nil && id > 0 {
		productID = &id
	}
	name := item.Title
	if name == "" {
		name = "Producto"
	}
	return store.OrderItem{
		ProductID:   productID,
		ProductName: name,
		ProductSize: sizeFromDescription(item.Description),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
}

// sizeFromDescription extracts the size token from an item description of the
// form "Calidad: X - Talle: M".
func sizeFromDescription(description string) *string {
	_, after, found := strings.Cut(description, "Talle:")
	if !found {
		return nil
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return nil
	}
	return &fields[0]
}

var paymentMethodNames = map[string]string{
	"visa":          "Visa",
	"master":        "Mastercard",
	"amex":          "American Express",
	"naranja":       "Naranja",
	"cabal":         "Cabal",
	"argencard":     "Argencard",
	"diners":        "Diners Club",
	"rapipago":      "Rapipago",
	"pagofacil":     "Pago Fácil",
	"account_money": "Dinero en cuenta MP",
	"bank_transfer": "Transferencia bancaria",
}

var paymentTypeNames = map[string]string{
	"credit_card":   "Tarjeta de crédito",
	"debit_card":    "Tarjeta de débito",
	"ticket":        "Ticket",
	"account_money": "Dinero en cuenta MP",
	"bank_transfer": "Transferencia bancaria",
	"atm":           "Cajero automático",
}

// paymentMethodLabel renders the human-readable payment method shown to the
// accountant. Card payments include the last four digits.
func paymentMethodLabel(payment store.Payment) string {
	if payment.PaymentMethodID != nil && *payment.PaymentMethodID != "" {
		name, ok := paymentMethodNames[strings.ToLower(*payment.PaymentMethodID)]
		if !ok {
			name = strings.ToUpper(*payment.PaymentMethodID)
		}
		if payment.CardLastFourDigits != nil && *payment.CardLastFourDigits != "" &&
			payment.PaymentTypeID != nil &&
			(*payment.PaymentTypeID == "credit_card" || *payment.PaymentTypeID == "debit_card") {
			return fmt.Sprintf("%s terminada en %s", name, *payment.CardLastFourDigits)
		}
		return name
	}

	if payment.PaymentTypeID != nil && *payment.PaymentTypeID != "" {
		if name, ok := paymentTypeNames[strings.ToLower(*payment.PaymentTypeID)]; ok {
			return name
		}
		return titleWords(strings.ReplaceAll(*payment.PaymentTypeID, "_", " "))
	}

	return "Desconocido"
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func generateOrderNumber() (string, error) {
	code := make([]byte, orderNumberLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderNumberAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate order number: %w", err)
		}
		code[i] = orderNumberAlphabet[n.Int64()]
	}
	return orderNumberPrefix + string(code), nil
}

func (p *PaymentsProcessor) uniqueOrderNumber(ctx context.Context) (string, error) {
	for {
		number, err := generateOrderNumber()
		if err != nil {
			return "", err
		}
		exists, err := p.store.OrderNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
