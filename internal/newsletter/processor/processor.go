package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// NewsletterStore defines the database operations required by NewsletterProcessor
type NewsletterStore interface {
	GetSubscriberByEmail(ctx context.Context, email string) (store.NewsletterSubscriber, error)
	CreateSubscriber(ctx context.Context, email, source string) (store.NewsletterSubscriber, error)
	ReactivateSubscriber(ctx context.Context, id int64, source string) (store.NewsletterSubscriber, error)
	DeactivateSubscriber(ctx context.Context, email string) (store.NewsletterSubscriber, error)
	CountActiveSubscribers(ctx context.Context) (int64, error)
	ListSubscribers(ctx context.Context) ([]store.NewsletterSubscriber, error)
}

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

type NewsletterProcessor struct {
	store  NewsletterStore
	logger *observability.Logger
}

func New(store NewsletterStore, logger *observability.Logger) NewsletterProcessor {
	return NewsletterProcessor{
		store:  store,
		logger: logger,
	}
}

// SubscribeResponse carries the storefront-facing outcome of a signup.
// Message is shown verbatim under the signup form.
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe registers an email for the newsletter. Resubscribing an active
// address is a no-op, a previously unsubscribed address is reactivated.
func (p *NewsletterProcessor) Subscribe(ctx context.Context, email, source string) (SubscribeResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if source == "" {
		source = "footer"
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: email},
		observability.Field{Key: "source", Value: source},
	)

	existing, err := p.store.GetSubscriberByEmail(ctx, email)
	if err == nil {
		if existing.IsActive {
			p.logger.Info(ctx, "already subscribed")
			return SubscribeResponse{
				Success: true,
				Message: "¡Ya estás suscrito! Te mantendremos al tanto de las novedades.",
			}, nil
		}
		if _, err := p.store.ReactivateSubscriber(ctx, existing.ID, source); err != nil {
			p.logger.Error(ctx, "failed to reactivate subscriber", err)
			return SubscribeResponse{}, err
		}
		p.logger.Info(ctx, "subscription reactivated")
		return SubscribeResponse{
			Success: true,
			Message: "¡Bienvenido de nuevo! Reactivamos tu suscripción.",
		}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check subscriber", err)
		return SubscribeResponse{}, err
	}

	if _, err := p.store.CreateSubscriber(ctx, email, source); err != nil {
		p.logger.Error(ctx, "failed to create subscriber", err)
		return SubscribeResponse{}, err
	}
	p.logger.Info(ctx, "new subscriber created")
	return SubscribeResponse{
		Success: true,
		Message: "¡Gracias por suscribirte! Recibirás las novedades de GEPE.",
	}, nil
}

// Unsubscribe deactivates a subscription without deleting the row, so a
// later signup is recognized as a return.
func (p *NewsletterProcessor) Unsubscribe(ctx context.Context, email string) (store.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	subscriber, err := p.store.DeactivateSubscriber(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.NewsletterSubscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to deactivate subscriber", err)
		return store.NewsletterSubscriber{}, err
	}
	p.logger.Info(ctx, "subscriber deactivated")
	return subscriber, nil
}

// ActiveCount returns how many subscriptions are currently active.
func (p *NewsletterProcessor) ActiveCount(ctx context.Context) (int64, error) {
	count, err := p.store.CountActiveSubscribers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count subscribers", err)
		return 0, err
	}
	return count, nil
}

// ListSubscribers returns every subscriber, active or not, newest first.
func (p *NewsletterProcessor) ListSubscribers(ctx context.Context) ([]store.NewsletterSubscriber, error) {
	subscribers, err := p.store.ListSubscribers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list subscribers", err)
		return nil, err
	}
	return subscribers, nil
}
