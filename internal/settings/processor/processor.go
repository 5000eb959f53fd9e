package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// SettingsStore defines the database operations required by SettingsProcessor
type SettingsStore interface {
	ListNotificationEmails(ctx context.Context) ([]store.NotificationEmail, error)
	GetNotificationEmailByEmail(ctx context.Context, email string) (store.NotificationEmail, error)
	CreateNotificationEmail(ctx context.Context, email string) (store.NotificationEmail, error)
	MarkNotificationEmailVerified(ctx context.Context, id int64) (store.NotificationEmail, error)
	DeleteNotificationEmail(ctx context.Context, id int64) error

	GetPriceSettings(ctx context.Context) (store.ProductPriceSettings, error)
	UpdatePriceSettings(ctx context.Context, params store.UpdatePriceSettingsParams) (store.ProductPriceSettings, error)
}

// TestEmailSender defines the email operations required by SettingsProcessor
type TestEmailSender interface {
	IsEnabled() bool
	SendTestEmail(ctx context.Context, to string) error
}

// Revalidator notifies the storefront after price changes
type Revalidator interface {
	RevalidatePrices(ctx context.Context) bool
}

var (
	ErrEmailAlreadyRegistered    = errors.New("notification email already registered")
	ErrNotificationEmailNotFound = errors.New("notification email not found")
)

type SettingsProcessor struct {
	store        SettingsStore
	emailService TestEmailSender
	frontend     Revalidator
	logger       *observability.Logger
}

func New(store SettingsStore, emailService TestEmailSender, frontend Revalidator, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:        store,
		emailService: emailService,
		frontend:     frontend,
		logger:       logger,
	}
}

// ListNotificationEmails returns the configured notification addresses,
// newest first.
func (p *SettingsProcessor) ListNotificationEmails(ctx context.Context) ([]store.NotificationEmail, error) {
	emails, err := p.store.ListNotificationEmails(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list notification emails", err)
		return nil, err
	}
	return emails, nil
}

// AddNotificationEmail registers a new notification address and sends a test
// email to it. The address is marked verified only when the test email goes
// out; a send failure keeps the row unverified but does not fail the call.
func (p *SettingsProcessor) AddNotificationEmail(ctx context.Context, address string) (store.NotificationEmail, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	ctx = observability.WithFields(ctx, observability.Field{Key: "notification_email", Value: address})

	_, err := p.store.GetNotificationEmailByEmail(ctx, address)
	if err == nil {
		return store.NotificationEmail{}, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check notification email", err)
		return store.NotificationEmail{}, err
	}

	created, err := p.store.CreateNotificationEmail(ctx, address)
	if err != nil {
		p.logger.Error(ctx, "failed to create notification email", err)
		return store.NotificationEmail{}, err
	}

	if err := p.emailService.SendTestEmail(ctx, created.Email); err != nil {
		p.logger.InfoWithError(ctx, "test email failed, notification address stays unverified", err)
		return created, nil
	}

	verified, err := p.store.MarkNotificationEmailVerified(ctx, created.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to mark notification email verified", err)
		return created, nil
	}
	p.logger.Info(ctx, "notification email added and verified")
	return verified, nil
}

// DeleteNotificationEmail removes a notification address.
func (p *SettingsProcessor) DeleteNotificationEmail(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "notification_email_id", Value: id})

	if err := p.store.DeleteNotificationEmail(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationEmailNotFound
		}
		p.logger.Error(ctx, "failed to delete notification email", err)
		return err
	}
	p.logger.Info(ctx, "notification email deleted")
	return nil
}

// EmailConfigStatus reports whether outbound email can work in this
// deployment, with a remediation hint when it cannot.
type EmailConfigStatus struct {
	ResendAvailable  bool   `json:"resend_available"`
	APIKeyConfigured bool   `json:"api_key_configured"`
	Error            string `json:"error,omitempty"`
}

// GetEmailConfigStatus returns the current email service configuration state.
func (p *SettingsProcessor) GetEmailConfigStatus(ctx context.Context) EmailConfigStatus {
	status := EmailConfigStatus{
		ResendAvailable:  true,
		APIKeyConfigured: p.emailService.IsEnabled(),
	}
	if !status.APIKeyConfigured {
		status.Error = "RESEND_API_KEY no está configurada en las variables de entorno. Agrega esta variable en tu archivo .env"
	}
	return status
}

// GetPriceSettings returns the default price per jersey tier.
func (p *SettingsProcessor) GetPriceSettings(ctx context.Context) (store.ProductPriceSettings, error) {
	settings, err := p.store.GetPriceSettings(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get price settings", err)
		return store.ProductPriceSettings{}, err
	}
	return settings, nil
}

// UpdatePriceSettings changes the tier prices; absent fields stay untouched.
func (p *SettingsProcessor) UpdatePriceSettings(ctx context.Context, params store.UpdatePriceSettingsParams) (store.ProductPriceSettings, error) {
	settings, err := p.store.UpdatePriceSettings(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to update price settings", err)
		return store.ProductPriceSettings{}, err
	}
	p.logger.Info(ctx, "price settings updated")
	p.frontend.RevalidatePrices(ctx)
	return settings, nil
}
