package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"gepe-server/internal/email"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// ContactStore defines the database operations required by ContactProcessor
type ContactStore interface {
	ListNotificationEmails(ctx context.Context) ([]store.NotificationEmail, error)
	ListVerifiedNotificationEmails(ctx context.Context) ([]store.NotificationEmail, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (store.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]store.OrderItem, error)
}

// EmailSender defines the outbound email operations required by ContactProcessor
type EmailSender interface {
	SendContactEmail(ctx context.Context, to []string, form email.ContactForm) error
	SendRegretNotificationEmail(ctx context.Context, to []string, form email.RegretForm) error
}

var (
	ErrNoRecipients       = errors.New("no notification emails configured")
	ErrNoRegretRecipients = errors.New("no regret notification emails configured")
	ErrSendFailed         = errors.New("failed to send contact message")
	ErrRegretSendFailed   = errors.New("failed to send regret notification")
)

type ContactProcessor struct {
	store           ContactStore
	emailService    EmailSender
	fallbackAddress string
	logger          *observability.Logger
}

// New builds a ContactProcessor. fallbackAddress is used as the recipient for
// contact messages when no notification addresses have been verified yet.
func New(store ContactStore, emailService EmailSender, fallbackAddress string, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{
		store:           store,
		emailService:    emailService,
		fallbackAddress: fallbackAddress,
		logger:          logger,
	}
}

// ContactForm carries a storefront contact message
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// RegretRequest carries a statutory purchase-withdrawal request
type RegretRequest struct {
	FirstName      string
	LastName       string
	DNI            string
	City           string
	OrderNumber    string
	PurchasedItems string
	Phone          string
	Email          string
	Reason         string
}

// SubmitContact forwards a contact message to the verified notification
// addresses, falling back to the configured default address when none exist.
func (p *ContactProcessor) SubmitContact(ctx context.Context, form ContactForm) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "sender_email", Value: form.Email})

	recipients, err := p.verifiedRecipients(ctx)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		p.logger.Warn(ctx, "no notification emails configured for contact messages")
		return ErrNoRecipients
	}

	err = p.emailService.SendContactEmail(ctx, recipients, email.ContactForm{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to send contact email", err)
		return fmt.Errorf("%w: %s", ErrSendFailed, err.Error())
	}

	p.logger.Info(ctx, "contact message forwarded")
	return nil
}

// SubmitRegret forwards a purchase-withdrawal request to every notification
// address, verified or not. The referenced order is attached when it exists;
// an unknown order number is flagged in the email rather than rejected.
func (p *ContactProcessor) SubmitRegret(ctx context.Context, req RegretRequest) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_number", Value: req.OrderNumber},
		observability.Field{Key: "sender_email", Value: req.Email},
	)

	notificationEmails, err := p.store.ListNotificationEmails(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list notification emails", err)
		return err
	}
	if len(notificationEmails) == 0 {
		p.logger.Warn(ctx, "no notification emails configured for regret requests")
		return ErrNoRegretRecipients
	}
	recipients := make([]string, 0, len(notificationEmails))
	for _, rec := range notificationEmails {
		recipients = append(recipients, rec.Email)
	}

	form := email.RegretForm{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DNI:            req.DNI,
		City:           req.City,
		OrderNumber:    req.OrderNumber,
		PurchasedItems: req.PurchasedItems,
		Phone:          req.Phone,
		Email:          req.Email,
		Reason:         req.Reason,
		Order:          p.lookupOrder(ctx, req.OrderNumber),
	}

	if err := p.emailService.SendRegretNotificationEmail(ctx, recipients, form); err != nil {
		p.logger.Error(ctx, "failed to send regret notification email", err)
		return fmt.Errorf("%w: %s", ErrRegretSendFailed, err.Error())
	}

	p.logger.Info(ctx, "regret request forwarded")
	return nil
}

func (p *ContactProcessor) verifiedRecipients(ctx context.Context) ([]string, error) {
	notificationEmails, err := p.store.ListVerifiedNotificationEmails(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list verified notification emails", err)
		return nil, err
	}

	recipients := make([]string, 0, len(notificationEmails))
	for _, rec := range notificationEmails {
		recipients = append(recipients, rec.Email)
	}
	if len(recipients) == 0 && p.fallbackAddress != "" {
		recipients = append(recipients, p.fallbackAddress)
	}
	return recipients, nil
}

// lookupOrder resolves the order a regret request references. Lookup failures
// only downgrade the email content, never block the request.
func (p *ContactProcessor) lookupOrder(ctx context.Context, orderNumber string) *email.OrderEmail {
	if orderNumber == "" {
		return nil
	}

	order, err := p.store.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.InfoWithError(ctx, "order lookup for regret request failed", err)
		}
		return nil
	}

	items, err := p.store.GetOrderItems(ctx, order.ID)
	if err != nil {
		p.logger.InfoWithError(ctx, "order items lookup for regret request failed", err)
		items = nil
	}

	orderEmail := email.OrderEmailFromOrder(order, items)
	return &orderEmail
}
