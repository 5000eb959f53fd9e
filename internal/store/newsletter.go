package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type NewsletterSubscriber struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	SubscribedAt string `db:"subscribed_at" json:"subscribed_at"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	Source       string `db:"source" json:"source"`
}

const subscriberColumns = `id, email, subscribed_at, is_active, source`

const sqlGetSubscriberByEmail = `
SELECT ` + subscriberColumns + `
FROM newsletter_subscribers
WHERE email = $1
`

func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var subscriber NewsletterSubscriber
	err := s.db.GetContext(ctx, &subscriber, sqlGetSubscriberByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		return NewsletterSubscriber{}, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlCreateSubscriber = `
INSERT INTO newsletter_subscribers (email, source)
VALUES ($1, $2)
RETURNING ` + subscriberColumns + `
`

func (s *Store) CreateSubscriber(ctx context.Context, email, source string) (NewsletterSubscriber, error) {
	var subscriber NewsletterSubscriber
	err := s.db.GetContext(ctx, &subscriber, sqlCreateSubscriber, email, source)
	if err != nil {
		return NewsletterSubscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlReactivateSubscriber = `
UPDATE newsletter_subscribers
SET is_active = TRUE, subscribed_at = CURRENT_TIMESTAMP, source = $1
WHERE id = $2
RETURNING ` + subscriberColumns + `
`

// ReactivateSubscriber turns a soft-unsubscribed address back on, refreshing
// the subscription time and source.
func (s *Store) ReactivateSubscriber(ctx context.Context, id int64, source string) (NewsletterSubscriber, error) {
	var subscriber NewsletterSubscriber
	err := s.db.GetContext(ctx, &subscriber, sqlReactivateSubscriber, source, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		return NewsletterSubscriber{}, fmt.Errorf("failed to reactivate subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlDeactivateSubscriber = `
UPDATE newsletter_subscribers
SET is_active = FALSE
WHERE email = $1
RETURNING ` + subscriberColumns + `
`

// DeactivateSubscriber soft-unsubscribes the address; the row is kept.
func (s *Store) DeactivateSubscriber(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var subscriber NewsletterSubscriber
	err := s.db.GetContext(ctx, &subscriber, sqlDeactivateSubscriber, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		return NewsletterSubscriber{}, fmt.Errorf("failed to deactivate subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlCountActiveSubscribers = `
SELECT COUNT(*)
FROM newsletter_subscribers
WHERE is_active = TRUE
`

func (s *Store) CountActiveSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, sqlCountActiveSubscribers)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

const sqlListSubscribers = `
SELECT ` + subscriberColumns + `
FROM newsletter_subscribers
ORDER BY subscribed_at DESC, id DESC
`

func (s *Store) ListSubscribers(ctx context.Context) ([]NewsletterSubscriber, error) {
	subscribers := []NewsletterSubscriber{}
	err := s.db.SelectContext(ctx, &subscribers, sqlListSubscribers)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}
