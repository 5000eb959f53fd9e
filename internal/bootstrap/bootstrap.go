package bootstrap

import (
	"context"
	"fmt"

	"gepe-server/internal/config"
	"gepe-server/internal/health"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"

	cartHandler "gepe-server/internal/cart/handler"
	cartProcessor "gepe-server/internal/cart/processor"
	catalogHandler "gepe-server/internal/catalog/handler"
	catalogProcessor "gepe-server/internal/catalog/processor"
	"gepe-server/internal/clients/frontend"
	"gepe-server/internal/clients/mail"
	"gepe-server/internal/clients/media"
	"gepe-server/internal/clients/mercadopago"
	contactHandler "gepe-server/internal/contact/handler"
	contactProcessor "gepe-server/internal/contact/processor"
	contentHandler "gepe-server/internal/content/handler"
	contentProcessor "gepe-server/internal/content/processor"
	"gepe-server/internal/email"
	newsletterHandler "gepe-server/internal/newsletter/handler"
	newsletterProcessor "gepe-server/internal/newsletter/processor"
	ordersHandler "gepe-server/internal/orders/handler"
	ordersProcessor "gepe-server/internal/orders/processor"
	paymentsHandler "gepe-server/internal/payments/handler"
	paymentsProcessor "gepe-server/internal/payments/processor"
	settingsHandler "gepe-server/internal/settings/handler"
	settingsProcessor "gepe-server/internal/settings/processor"
	statsHandler "gepe-server/internal/stats/handler"
	statsProcessor "gepe-server/internal/stats/processor"
	usersHandler "gepe-server/internal/users/handler"
	usersProcessor "gepe-server/internal/users/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Health *health.Reporter
	Logger *observability.Logger

	// Handlers
	CatalogHandler    catalogHandler.Handler
	ContentHandler    contentHandler.Handler
	SettingsHandler   settingsHandler.Handler
	OrdersHandler     ordersHandler.Handler
	PaymentsHandler   paymentsHandler.Handler
	StatsHandler      statsHandler.Handler
	NewsletterHandler newsletterHandler.Handler
	CartHandler       cartHandler.Handler
	UsersHandler      usersHandler.Handler
	ContactHandler    contactHandler.Handler
}

// Initialize sets up all application dependencies. Optional integrations
// (email, payments, image uploads, storefront revalidation) initialize in a
// disabled state when their credentials are absent; only the database can
// fail startup.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Health: health.NewReporter(),
		Logger: logger,
	}

	// Initialize database store
	driver, dsn := cfg.Database.DriverAndDSN()
	var err error
	deps.Store, err = store.New(driver, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}
	logger.Info(ctx, fmt.Sprintf("Database ready (driver=%s)", driver))

	// Initialize clients
	mailClient := mail.NewResendClient(cfg.Email.ResendAPIKey, logger)
	mediaClient := media.NewCloudinaryClient(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		logger,
	)
	gateway := mercadopago.NewClient(cfg.MercadoPago.AccessToken, logger)
	storefront := frontend.NewClient(cfg.Frontend.URL, cfg.Frontend.RevalidateSecret, logger)

	// Initialize email service
	emailService := email.New(mailClient, cfg.Email.FromAddress, logger)

	// Initialize catalog processor and handler
	catalogProc := catalogProcessor.New(deps.Store, mediaClient, storefront, logger)
	deps.CatalogHandler = catalogHandler.New(catalogProc, logger)

	// Initialize content processor and handler
	contentProc := contentProcessor.New(deps.Store, mediaClient, storefront, logger)
	deps.ContentHandler = contentHandler.New(contentProc, logger)

	// Initialize settings processor and handler
	settingsProc := settingsProcessor.New(deps.Store, emailService, storefront, logger)
	deps.SettingsHandler = settingsHandler.New(settingsProc, logger)

	// Initialize orders processor and handler
	ordersProc := ordersProcessor.New(deps.Store, emailService, logger)
	deps.OrdersHandler = ordersHandler.New(ordersProc, logger)

	// Initialize payments processor and handler
	paymentsProc := paymentsProcessor.New(deps.Store, gateway, emailService, paymentsProcessor.Config{
		AccessToken:    cfg.MercadoPago.AccessToken,
		WebhookURL:     cfg.MercadoPago.WebhookURL,
		CheckoutOrigin: cfg.Frontend.URL,
	}, logger)
	deps.PaymentsHandler = paymentsHandler.New(paymentsProc, logger)

	// Initialize stats processor and handler
	statsProc := statsProcessor.New(deps.Store, logger)
	deps.StatsHandler = statsHandler.New(statsProc, logger)

	// Initialize newsletter processor and handler
	newsletterProc := newsletterProcessor.New(deps.Store, logger)
	deps.NewsletterHandler = newsletterHandler.New(newsletterProc, logger)

	// Initialize cart processor and handler
	cartProc := cartProcessor.New(deps.Store, logger)
	deps.CartHandler = cartHandler.New(cartProc, logger)

	// Initialize users processor and handler
	usersProc := usersProcessor.New(deps.Store, logger)
	deps.UsersHandler = usersHandler.New(usersProc, logger)

	// Initialize contact processor and handler
	contactProc := contactProcessor.New(deps.Store, emailService, cfg.Email.DefaultNotificationEmail, logger)
	deps.ContactHandler = contactHandler.New(contactProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
