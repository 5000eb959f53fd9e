package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"

	"gepe-server/internal/email"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// OrdersStore defines the database operations required by OrdersProcessor
type OrdersStore interface {
	CreateOrder(ctx context.Context, order store.Order, items []store.OrderItem) (store.Order, []store.OrderItem, error)
	GetOrder(ctx context.Context, id int64) (store.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (store.Order, error)
	GetOrderByExternalReference(ctx context.Context, ref string) (store.Order, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (store.Order, error)
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]store.OrderItem, error)
	ListOrders(ctx context.Context, params store.ListOrdersParams) ([]store.OrderSummary, error)
	ListOrdersByCustomer(ctx context.Context, email string, limit, offset int64) ([]store.OrderSummary, error)
	ListOrdersByStatuses(ctx context.Context, statuses ...string) ([]store.Order, error)
	ListProductionItemRows(ctx context.Context, statuses ...string) ([]store.ProductionItemRow, error)
	UpdateOrder(ctx context.Context, id int64, params store.UpdateOrderParams) (store.Order, error)
	SetShippedEmailSent(ctx context.Context, id int64) error
	CountOrdersByStatus(ctx context.Context) ([]store.StatusCount, error)
	ListPaidOrderTotals(ctx context.Context, status string) ([]store.PaidOrderTotal, error)
	AddProductionEvent(ctx context.Context, orderID int64, stage string) (store.ProductionEvent, error)
	ListProductionEvents(ctx context.Context, orderID int64) ([]store.ProductionEvent, error)
	GetOrCreateUserByEmail(ctx context.Context, email string, fullName *string) (store.User, error)
	ListVerifiedNotificationEmails(ctx context.Context) ([]store.NotificationEmail, error)
}

// EmailSender defines the outbound email operations required by OrdersProcessor
type EmailSender interface {
	SendSaleNotificationEmail(ctx context.Context, to []string, order email.OrderEmail) error
	SendOrderShippedEmail(ctx context.Context, order email.OrderEmail) error
	SendProductionCompleteEmail(ctx context.Context, order email.OrderEmail) error
}

var (
	ErrEmptyOrder             = errors.New("order has no items")
	ErrOrderAccessDenied      = errors.New("order belongs to another customer")
	ErrInvalidProductionStage = errors.New("invalid production stage")
)

// OrderNotFoundError carries the id or number the caller asked for, so the
// response can echo it back.
type OrderNotFoundError struct {
	Ref string
}

func (e OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.Ref)
}

// ProductionUpdateBlockedError reports a production stage change on an order
// that is not paid yet.
type ProductionUpdateBlockedError struct {
	Status string
}

func (e ProductionUpdateBlockedError) Error() string {
	return fmt.Sprintf("cannot update production stage of order in status %s", e.Status)
}

// FinishProductionBlockedError reports a finish-production request on an
// order that is not paid yet.
type FinishProductionBlockedError struct {
	Status string
}

func (e FinishProductionBlockedError) Error() string {
	return fmt.Sprintf("cannot finish production of order in status %s", e.Status)
}

const (
	orderNumberPrefix   = "GEPE-"
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength   = 6

	defaultListLimit         = 100
	defaultCustomerListLimit = 50
)

type OrdersProcessor struct {
	store        OrdersStore
	emailService EmailSender
	logger       *observability.Logger
}

func New(store OrdersStore, emailService EmailSender, logger *observability.Logger) OrdersProcessor {
	return OrdersProcessor{
		store:        store,
		emailService: emailService,
		logger:       logger,
	}
}

// OrderDetail is the full order payload with its line items.
type OrderDetail struct {
	store.Order
	Items []store.OrderItem `json:"items"`
}

// CreateOrderItemParams is one line of a new order.
type CreateOrderItemParams struct {
	ProductID   *int64
	ProductName string
	ProductSize *string
	Quantity    int64
	UnitPrice   float64
}

// CreateOrderParams carries a checkout submission.
type CreateOrderParams struct {
	CustomerEmail     string
	CustomerName      *string
	CustomerPhone     *string
	CustomerDNI       *string
	ShippingMethod    *string
	ShippingAddress   *string
	ShippingCity      *string
	ShippingProvince  *string
	ExternalReference *string
	PaymentID         *string
	Items             []CreateOrderItemParams
}

// generateOrderNumber builds a non-sequential public order number so
// customers cannot infer sales volume from their receipt.
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

func (p *OrdersProcessor) uniqueOrderNumber(ctx context.Context) (string, error) {
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

// CreateOrder records a checkout. Repeated submissions with the same external
// reference or payment id return the already-created order instead of a
// duplicate.
func (p *OrdersProcessor) CreateOrder(ctx context.Context, params CreateOrderParams) (OrderDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_email", Value: params.CustomerEmail})

	if len(params.Items) == 0 {
		return OrderDetail{}, ErrEmptyOrder
	}

	if params.ExternalReference != nil && *params.ExternalReference != "" {
		existing, err := p.store.GetOrderByExternalReference(ctx, *params.ExternalReference)
		if err == nil {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "order_id", Value: existing.ID}),
				"order already exists for external reference, returning it")
			return p.orderDetail(ctx, existing)
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to check external reference", err)
			return OrderDetail{}, err
		}
	}
	if params.PaymentID != nil && *params.PaymentID != "" {
		existing, err := p.store.GetOrderByPaymentID(ctx, *params.PaymentID)
		if err == nil {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "order_id", Value: existing.ID}),
				"order already exists for payment id, returning it")
			return p.orderDetail(ctx, existing)
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to check payment id", err)
			return OrderDetail{}, err
		}
	}

	user, err := p.store.GetOrCreateUserByEmail(ctx, params.CustomerEmail, params.CustomerName)
	if err != nil {
		p.logger.Error(ctx, "failed to get or create customer user", err)
		return OrderDetail{}, err
	}

	var total float64
	items := make([]store.OrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		total += item.UnitPrice * float64(item.Quantity)
		items = append(items, store.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSize: item.ProductSize,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	orderNumber, err := p.uniqueOrderNumber(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to generate order number", err)
		return OrderDetail{}, err
	}

	customerEmail := params.CustomerEmail
	order := store.Order{
		OrderNumber:       &orderNumber,
		UserID:            &user.ID,
		Status:            store.OrderStatusPending,
		TotalAmount:       total,
		ExternalReference: params.ExternalReference,
		PaymentID:         params.PaymentID,
		CustomerEmail:     &customerEmail,
		CustomerName:      params.CustomerName,
		CustomerPhone:     params.CustomerPhone,
		CustomerDNI:       params.CustomerDNI,
		ShippingMethod:    params.ShippingMethod,
		ShippingAddress:   params.ShippingAddress,
		ShippingCity:      params.ShippingCity,
		ShippingProvince:  params.ShippingProvince,
	}

	created, createdItems, err := p.store.CreateOrder(ctx, order, items)
	if err != nil {
		p.logger.Error(ctx, "failed to create order", err)
		return OrderDetail{}, err
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: created.ID},
		observability.Field{Key: "order_number", Value: orderNumber},
	), "order created")

	p.notifyAdminsOfSale(ctx, created, createdItems)

	return OrderDetail{Order: created, Items: createdItems}, nil
}

// notifyAdminsOfSale alerts the verified notification addresses about a new
// sale. Failures never block the checkout.
func (p *OrdersProcessor) notifyAdminsOfSale(ctx context.Context, order store.Order, items []store.OrderItem) {
	admins, err := p.store.ListVerifiedNotificationEmails(ctx)
	if err != nil {
		p.logger.InfoWithError(ctx, "failed to load notification emails for sale alert", err)
		return
	}
	if len(admins) == 0 {
		p.logger.Info(ctx, "no verified notification emails, skipping sale alert")
		return
	}
	recipients := make([]string, 0, len(admins))
	for _, admin := range admins {
		recipients = append(recipients, admin.Email)
	}
	if err := p.emailService.SendSaleNotificationEmail(ctx, recipients, email.OrderEmailFromOrder(order, items)); err != nil {
		p.logger.InfoWithError(ctx, "failed to send sale notification", err)
		return
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "recipients", Value: len(recipients)}),
		"sale notification sent")
}

func (p *OrdersProcessor) orderDetail(ctx context.Context, order store.Order) (OrderDetail, error) {
	items, err := p.store.GetOrderItems(ctx, order.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to load order items", err)
		return OrderDetail{}, err
	}
	return OrderDetail{Order: order, Items: items}, nil
}

// ListOrders returns the admin order listing, newest first.
func (p *OrdersProcessor) ListOrders(ctx context.Context, params store.ListOrdersParams) ([]store.OrderSummary, error) {
	if params.Limit <= 0 {
		params.Limit = defaultListLimit
	}
	orders, err := p.store.ListOrders(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list orders", err)
		return nil, err
	}
	decorateFirstProductNames(orders)
	return orders, nil
}

// ListCustomerOrders returns the purchase history for one customer email.
func (p *OrdersProcessor) ListCustomerOrders(ctx context.Context, customerEmail string, limit, offset int64) ([]store.OrderSummary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_email", Value: customerEmail})

	if limit <= 0 {
		limit = defaultCustomerListLimit
	}
	orders, err := p.store.ListOrdersByCustomer(ctx, customerEmail, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list customer orders", err)
		return nil, err
	}
	decorateFirstProductNames(orders)
	return orders, nil
}

// decorateFirstProductNames appends the "y N más" suffix to the preview
// column when an order has more than one line.
func decorateFirstProductNames(orders []store.OrderSummary) {
	for i := range orders {
		if orders[i].FirstProductName != nil && orders[i].ItemsCount > 1 {
			name := fmt.Sprintf("%s y %d más", *orders[i].FirstProductName, orders[i].ItemsCount-1)
			orders[i].FirstProductName = &name
		}
	}
}

// checkOrderAccess enforces that customers only read their own orders. An
// empty requester email means the admin dashboard is asking.
func checkOrderAccess(order store.Order, requesterEmail string) error {
	if requesterEmail == "" {
		return nil
	}
	owner := ""
	if order.CustomerEmail != nil {
		owner = *order.CustomerEmail
	}
	if !strings.EqualFold(strings.TrimSpace(requesterEmail), strings.TrimSpace(owner)) {
		return ErrOrderAccessDenied
	}
	return nil
}

// GetOrder returns one order by internal id, with its items.
func (p *OrdersProcessor) GetOrder(ctx context.Context, id int64, requesterEmail string) (OrderDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: id})

	order, err := p.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OrderDetail{}, OrderNotFoundError{Ref: strconv.FormatInt(id, 10)}
		}
		p.logger.Error(ctx, "failed to get order", err)
		return OrderDetail{}, err
	}
	if err := checkOrderAccess(order, requesterEmail); err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "requester_email", Value: requesterEmail}),
			"blocked order access for mismatched email")
		return OrderDetail{}, err
	}
	return p.orderDetail(ctx, order)
}

// GetOrderByNumber returns one order by its public number, with its items.
func (p *OrdersProcessor) GetOrderByNumber(ctx context.Context, orderNumber, requesterEmail string) (OrderDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_number", Value: orderNumber})

	order, err := p.store.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OrderDetail{}, OrderNotFoundError{Ref: orderNumber}
		}
		p.logger.Error(ctx, "failed to get order by number", err)
		return OrderDetail{}, err
	}
	if err := checkOrderAccess(order, requesterEmail); err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "requester_email", Value: requesterEmail}),
			"blocked order access for mismatched email")
		return OrderDetail{}, err
	}
	return p.orderDetail(ctx, order)
}

// UpdateOrder applies a partial admin update. Setting a tracking code for the
// first time emails the customer that the order shipped.
func (p *OrdersProcessor) UpdateOrder(ctx context.Context, id int64, params store.UpdateOrderParams) (OrderDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: id})

	updated, err := p.store.UpdateOrder(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OrderDetail{}, OrderNotFoundError{Ref: strconv.FormatInt(id, 10)}
		}
		p.logger.Error(ctx, "failed to update order", err)
		return OrderDetail{}, err
	}
	p.logger.Info(ctx, "order updated")

	detail, err := p.orderDetail(ctx, updated)
	if err != nil {
		return OrderDetail{}, err
	}

	if params.TrackingCode != nil && *params.TrackingCode != "" && !updated.ShippedEmailSent {
		p.sendShippedEmail(ctx, detail)
	}
	return detail, nil
}

// sendShippedEmail notifies the customer that the order is on its way, at
// most once per order. Failures are logged and swallowed.
func (p *OrdersProcessor) sendShippedEmail(ctx context.Context, detail OrderDetail) {
	if detail.CustomerEmail == nil || *detail.CustomerEmail == "" {
		p.logger.Info(ctx, "order has no customer email, skipping shipped email")
		return
	}
	if err := p.emailService.SendOrderShippedEmail(ctx, email.OrderEmailFromOrder(detail.Order, detail.Items)); err != nil {
		p.logger.InfoWithError(ctx, "failed to send shipped email", err)
		return
	}
	if err := p.store.SetShippedEmailSent(ctx, detail.ID); err != nil {
		p.logger.InfoWithError(ctx, "failed to mark shipped email sent", err)
		return
	}
	p.logger.Info(ctx, "shipped email sent")
}

// ProductionItem is one order line as the workshop board shows it, without
// prices.
type ProductionItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	ProductSize *string `json:"product_size"`
	Quantity    int64   `json:"quantity"`
}

// ProductionOrder is one order on the workshop board.
type ProductionOrder struct {
	ID               int64            `json:"id"`
	OrderNumber      *string          `json:"order_number"`
	CustomerName     *string          `json:"customer_name"`
	ProductionStatus *string          `json:"production_status"`
	CreatedAt        string           `json:"created_at"`
	Items            []ProductionItem `json:"items"`
	ItemsCount       int              `json:"items_count"`
}

// ProductionBoard groups the paid orders by pipeline stage, oldest first.
type ProductionBoard struct {
	WaitingFabric    []ProductionOrder `json:"waiting_fabric"`
	Cutting          []ProductionOrder `json:"cutting"`
	Sewing           []ProductionOrder `json:"sewing"`
	Printing         []ProductionOrder `json:"printing"`
	Finished         []ProductionOrder `json:"finished"`
	ReadyForShipment []ProductionOrder `json:"ready_for_shipment"`
	TotalCount       int               `json:"total_count"`
}

// ProductionOrders returns the workshop board: every paid or
// ready-for-shipment order grouped by production stage. Orders without a
// stage land in the waiting-fabric column.
func (p *OrdersProcessor) ProductionOrders(ctx context.Context) (ProductionBoard, error) {
	orders, err := p.store.ListOrdersByStatuses(ctx, store.OrderStatusPaid, store.OrderStatusReadyForShipment)
	if err != nil {
		p.logger.Error(ctx, "failed to list production orders", err)
		return ProductionBoard{}, err
	}
	rows, err := p.store.ListProductionItemRows(ctx, store.OrderStatusPaid, store.OrderStatusReadyForShipment)
	if err != nil {
		p.logger.Error(ctx, "failed to list production items", err)
		return ProductionBoard{}, err
	}

	itemsByOrder := make(map[int64][]ProductionItem)
	for _, row := range rows {
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], ProductionItem{
			ID:          row.ID,
			ProductName: row.ProductName,
			ProductSize: row.ProductSize,
			Quantity:    row.Quantity,
		})
	}

	board := ProductionBoard{
		WaitingFabric:    []ProductionOrder{},
		Cutting:          []ProductionOrder{},
		Sewing:           []ProductionOrder{},
		Printing:         []ProductionOrder{},
		Finished:         []ProductionOrder{},
		ReadyForShipment: []ProductionOrder{},
		TotalCount:       len(orders),
	}
	for _, order := range orders {
		items := itemsByOrder[order.ID]
		if items == nil {
			items = []ProductionItem{}
		}
		productionOrder := ProductionOrder{
			ID:               order.ID,
			OrderNumber:      order.OrderNumber,
			CustomerName:     order.CustomerName,
			ProductionStatus: order.ProductionStatus,
			CreatedAt:        order.CreatedAt,
			Items:            items,
			ItemsCount:       len(items),
		}

		stage := ""
		if order.ProductionStatus != nil {
			stage = *order.ProductionStatus
		}
		switch {
		case order.Status == store.OrderStatusReadyForShipment:
			board.ReadyForShipment = append(board.ReadyForShipment, productionOrder)
		case stage == store.ProductionStatusCutting:
			board.Cutting = append(board.Cutting, productionOrder)
		case stage == store.ProductionStatusSewing:
			board.Sewing = append(board.Sewing, productionOrder)
		case stage == store.ProductionStatusPrinting:
			board.Printing = append(board.Printing, productionOrder)
		case stage == store.ProductionStatusFinished:
			board.Finished = append(board.Finished, productionOrder)
		default:
			board.WaitingFabric = append(board.WaitingFabric, productionOrder)
		}
	}
	return board, nil
}

// UpdateProductionStatus moves a paid order to another pipeline stage and
// records the transition.
func (p *OrdersProcessor) UpdateProductionStatus(ctx context.Context, id int64, stage string) (OrderDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: id})

	order, err := p.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OrderDetail{}, OrderNotFoundError{Ref: strconv.FormatInt(id, 10)}
		}
		p.logger.Error(ctx, "failed to get order", err)
		return OrderDetail{}, err
	}
	if order.Status != store.OrderStatusPaid {
		return OrderDetail{}, ProductionUpdateBlockedError{Status: order.Status}
	}
	if !store.IsValidProductionStatus(stage) {
		return OrderDetail{}, ErrInvalidProductionStage
	}

	updated, err := p.store.UpdateOrder(ctx, id, store.UpdateOrderParams{ProductionStatus: &stage})
	if err != nil {
		p.logger.Error(ctx, "failed to update production stage", err)
		return OrderDetail{}, err
	}
	if _, err := p.store.AddProductionEvent(ctx, id, stage); err != nil {
		p.logger.InfoWithError(ctx, "failed to record production event", err)
	}

	oldStage := ""
	if order.ProductionStatus != nil {
		oldStage = *order.ProductionStatus
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "old_stage", Value: oldStage},
		observability.Field{Key: "new_stage", Value: stage},
	), "production stage updated")

	return p.orderDetail(ctx, updated)
}

// ProductionHistory returns the recorded stage transitions of an order.
func (p *OrdersProcessor) ProductionHistory(ctx context.Context, id int64) ([]store.ProductionEvent, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: id})

	if _, err := p.store.GetOrder(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, OrderNotFoundError{Ref: strconv.FormatInt(id, 10)}
		}
		p.logger.Error(ctx, "failed to get order", err)
		return nil, err
	}
	events, err := p.store.ListProductionEvents(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to list production events", err)
		return nil, err
	}
	return events, nil
}

// FinishProductionResult reports the outcome of closing an order's
// production.
type FinishProductionResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	OrderNumber *string `json:"order_number"`
	EmailSent   bool    `json:"email_sent"`
}

// FinishProduction marks a paid order as produced and ready to ship, and
// emails the customer. The email failing does not fail the operation.
func (p *OrdersProcessor) FinishProduction(ctx context.Context, id int64) (FinishProductionResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: id})

	order, err := p.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return FinishProductionResult{}, OrderNotFoundError{Ref: strconv.FormatInt(id, 10)}
		}
		p.logger.Error(ctx, "failed to get order", err)
		return FinishProductionResult{}, err
	}
	if order.Status != store.OrderStatusPaid {
		return FinishProductionResult{}, FinishProductionBlockedError{Status: order.Status}
	}

	readyStatus := store.OrderStatusReadyForShipment
	finishedStage := store.ProductionStatusFinished
	updated, err := p.store.UpdateOrder(ctx, id, store.UpdateOrderParams{
		Status:           &readyStatus,
		ProductionStatus: &finishedStage,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to finish production", err)
		return FinishProductionResult{}, err
	}
	if order.ProductionStatus == nil || *order.ProductionStatus != store.ProductionStatusFinished {
		if _, err := p.store.AddProductionEvent(ctx, id, store.ProductionStatusFinished); err != nil {
			p.logger.InfoWithError(ctx, "failed to record production event", err)
		}
	}
	p.logger.Info(ctx, "production finished, order ready for shipment")

	emailSent := false
	if updated.CustomerEmail != nil && *updated.CustomerEmail != "" {
		items, err := p.store.GetOrderItems(ctx, updated.ID)
		if err != nil {
			p.logger.InfoWithError(ctx, "failed to load items for production complete email", err)
		} else if err := p.emailService.SendProductionCompleteEmail(ctx, email.OrderEmailFromOrder(updated, items)); err != nil {
			p.logger.InfoWithError(ctx, "failed to send production complete email", err)
		} else {
			emailSent = true
		}
	} else {
		p.logger.Info(ctx, "order has no customer email, skipping production complete email")
	}

	orderNumber := ""
	if updated.OrderNumber != nil {
		orderNumber = *updated.OrderNumber
	}
	return FinishProductionResult{
		Success:     true,
		Message:     fmt.Sprintf("Producción terminada. El pedido %s está listo para enviar.", orderNumber),
		OrderNumber: updated.OrderNumber,
		EmailSent:   emailSent,
	}, nil
}

// ProductBreakdown aggregates pending work for one product.
type ProductBreakdown struct {
	ProductName   string           `json:"product_name"`
	TotalQuantity int64            `json:"total_quantity"`
	TotalOrders   int              `json:"total_orders"`
	Sizes         map[string]int64 `json:"sizes"`
}

// SizeBreakdown aggregates pending work for one size across products.
type SizeBreakdown struct {
	Size          string   `json:"size"`
	TotalQuantity int64    `json:"total_quantity"`
	Products      []string `json:"products"`
}

// ProductionStats summarizes the workload still to be produced.
type ProductionStats struct {
	Products           []ProductBreakdown `json:"products"`
	Sizes              []SizeBreakdown    `json:"sizes"`
	TotalPendingOrders int                `json:"total_pending_orders"`
	TotalPaidOrders    int                `json:"total_paid_orders"`
	TotalPendingAmount float64            `json:"total_pending_amount"`
}

// ProductionStatistics aggregates pending and paid orders into per-product
// and per-size workloads for the workshop dashboard.
func (p *OrdersProcessor) ProductionStatistics(ctx context.Context) (ProductionStats, error) {
	orders, err := p.store.ListOrdersByStatuses(ctx, store.OrderStatusPending, store.OrderStatusPaid)
	if err != nil {
		p.logger.Error(ctx, "failed to list orders for production stats", err)
		return ProductionStats{}, err
	}

	stats := ProductionStats{
		Products: []ProductBreakdown{},
		Sizes:    []SizeBreakdown{},
	}
	for _, order := range orders {
		switch order.Status {
		case store.OrderStatusPending:
			stats.TotalPendingOrders++
		case store.OrderStatusPaid:
			stats.TotalPaidOrders++
		}
		stats.TotalPendingAmount += order.TotalAmount
	}
	if len(orders) == 0 {
		return stats, nil
	}

	rows, err := p.store.ListProductionItemRows(ctx, store.OrderStatusPending, store.OrderStatusPaid)
	if err != nil {
		p.logger.Error(ctx, "failed to list items for production stats", err)
		return ProductionStats{}, err
	}

	type productAgg struct {
		quantity int64
		orders   map[int64]struct{}
		sizes    map[string]int64
	}
	type sizeAgg struct {
		quantity int64
		products map[string]struct{}
	}
	productMap := make(map[string]*productAgg)
	sizeMap := make(map[string]*sizeAgg)

	for _, row := range rows {
		product := productMap[row.ProductName]
		if product == nil {
			product = &productAgg{orders: make(map[int64]struct{}), sizes: make(map[string]int64)}
			productMap[row.ProductName] = product
		}
		product.quantity += row.Quantity
		product.orders[row.OrderID] = struct{}{}

		if row.ProductSize != nil && *row.ProductSize != "" {
			product.sizes[*row.ProductSize] += row.Quantity

			size := sizeMap[*row.ProductSize]
			if size == nil {
				size = &sizeAgg{products: make(map[string]struct{})}
				sizeMap[*row.ProductSize] = size
			}
			size.quantity += row.Quantity
			size.products[row.ProductName] = struct{}{}
		}
	}

	for name, agg := range productMap {
		stats.Products = append(stats.Products, ProductBreakdown{
			ProductName:   name,
			TotalQuantity: agg.quantity,
			TotalOrders:   len(agg.orders),
			Sizes:         agg.sizes,
		})
	}
	sort.Slice(stats.Products, func(i, j int) bool {
		if stats.Products[i].TotalQuantity != stats.Products[j].TotalQuantity {
			return stats.Products[i].TotalQuantity > stats.Products[j].TotalQuantity
		}
		return stats.Products[i].ProductName < stats.Products[j].ProductName
	})

	for size, agg := range sizeMap {
		products := make([]string, 0, len(agg.products))
		for product := range agg.products {
			products = append(products, product)
		}
		sort.Strings(products)
		stats.Sizes = append(stats.Sizes, SizeBreakdown{
			Size:          size,
			TotalQuantity: agg.quantity,
			Products:      products,
		})
	}
	sort.Slice(stats.Sizes, func(i, j int) bool {
		if stats.Sizes[i].TotalQuantity != stats.Sizes[j].TotalQuantity {
			return stats.Sizes[i].TotalQuantity > stats.Sizes[j].TotalQuantity
		}
		return stats.Sizes[i].Size < stats.Sizes[j].Size
	})

	return stats, nil
}

// PaymentStats summarizes revenue for the finance dashboard.
type PaymentStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalPaid        int64   `json:"total_paid"`
	TotalPending     int64   `json:"total_pending"`
	TotalCancelled   int64   `json:"total_cancelled"`
	TotalRefunded    int64   `json:"total_refunded"`
	AveragePayment   float64 `json:"average_payment"`
	RevenueToday     float64 `json:"revenue_today"`
	RevenueThisWeek  float64 `json:"revenue_this_week"`
	RevenueThisMonth float64 `json:"revenue_this_month"`
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// PaymentStatistics computes counts per status, total revenue over paid
// orders, and the revenue for today, the current week (starting Monday) and
// the current month.
func (p *OrdersProcessor) PaymentStatistics(ctx context.Context) (PaymentStats, error) {
	counts, err := p.store.CountOrdersByStatus(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count orders for payment stats", err)
		return PaymentStats{}, err
	}
	totals, err := p.store.ListPaidOrderTotals(ctx, store.OrderStatusPaid)
	if err != nil {
		p.logger.Error(ctx, "failed to list paid totals", err)
		return PaymentStats{}, err
	}

	stats := PaymentStats{}
	for _, count := range counts {
		switch count.Status {
		case store.OrderStatusPaid:
			stats.TotalPaid = count.Count
		case store.OrderStatusPending:
			stats.TotalPending = count.Count
		case store.OrderStatusCancelled:
			stats.TotalCancelled = count.Count
		case store.OrderStatusRefunded:
			stats.TotalRefunded = count.Count
		}
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := todayStart.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for _, total := range totals {
		stats.TotalRevenue += total.TotalAmount
		createdAt, ok := parseTimestamp(total.CreatedAt)
		if !ok {
			continue
		}
		if !createdAt.Before(todayStart) {
			stats.RevenueToday += total.TotalAmount
		}
		if !createdAt.Before(weekStart) {
			stats.RevenueThisWeek += total.TotalAmount
		}
		if !createdAt.Before(monthStart) {
			stats.RevenueThisMonth += total.TotalAmount
		}
	}
	if stats.TotalPaid > 0 {
		stats.AveragePayment = stats.TotalRevenue / float64(stats.TotalPaid)
	}
	return stats, nil
}
