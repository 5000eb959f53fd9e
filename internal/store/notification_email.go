package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NotificationEmail is an admin address that receives sale notifications
// once verified.
type NotificationEmail struct {
	ID         int64   `db:"id" json:"id"`
	Email      string  `db:"email" json:"email"`
	Verified   bool    `db:"verified" json:"verified"`
	CreatedAt  string  `db:"created_at" json:"created_at"`
	VerifiedAt *string `db:"verified_at" json:"verified_at"`
}

const notificationEmailColumns = `id, email, verified, created_at, verified_at`

const sqlListNotificationEmails = `
SELECT ` + notificationEmailColumns + `
FROM notification_emails
ORDER BY created_at DESC, id DESC
`

func (s *Store) ListNotificationEmails(ctx context.Context) ([]NotificationEmail, error) {
	emails := []NotificationEmail{}
	err := s.db.SelectContext(ctx, &emails, sqlListNotificationEmails)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification emails: %w", err)
	}
	return emails, nil
}

const sqlListVerifiedNotificationEmails = `
SELECT ` + notificationEmailColumns + `
FROM notification_emails
WHERE verified = TRUE
ORDER BY id
`

func (s *Store) ListVerifiedNotificationEmails(ctx context.Context) ([]NotificationEmail, error) {
	emails := []NotificationEmail{}
	err := s.db.SelectContext(ctx, &emails, sqlListVerifiedNotificationEmails)
	if err != nil {
		return nil, fmt.Errorf("failed to list verified notification emails: %w", err)
	}
	return emails, nil
}

const sqlGetNotificationEmailByEmail = `
SELECT ` + notificationEmailColumns + `
FROM notification_emails
WHERE email = $1
`

func (s *Store) GetNotificationEmailByEmail(ctx context.Context, email string) (NotificationEmail, error) {
	var record NotificationEmail
	err := s.db.GetContext(ctx, &record, sqlGetNotificationEmailByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotificationEmail{}, ErrNotFound
		}
		return NotificationEmail{}, fmt.Errorf("failed to get notification email: %w", err)
	}
	return record, nil
}

const sqlGetNotificationEmail = `
SELECT ` + notificationEmailColumns + `
FROM notification_emails
WHERE id = $1
`

func (s *Store) GetNotificationEmail(ctx context.Context, id int64) (NotificationEmail, error) {
	var record NotificationEmail
	err := s.db.GetContext(ctx, &record, sqlGetNotificationEmail, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotificationEmail{}, ErrNotFound
		}
		return NotificationEmail{}, fmt.Errorf("failed to get notification email: %w", err)
	}
	return record, nil
}

const sqlCreateNotificationEmail = `
INSERT INTO notification_emails (email)
VALUES ($1)
RETURNING ` + notificationEmailColumns + `
`

func (s *Store) CreateNotificationEmail(ctx context.Context, email string) (NotificationEmail, error) {
	var record NotificationEmail
	err := s.db.GetContext(ctx, &record, sqlCreateNotificationEmail, email)
	if err != nil {
		return NotificationEmail{}, fmt.Errorf("failed to create notification email: %w", err)
	}
	return record, nil
}

const sqlMarkNotificationEmailVerified = `
UPDATE notification_emails
SET verified = TRUE, verified_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + notificationEmailColumns + `
`

func (s *Store) MarkNotificationEmailVerified(ctx context.Context, id int64) (NotificationEmail, error) {
	var record NotificationEmail
	err := s.db.GetContext(ctx, &record, sqlMarkNotificationEmailVerified, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotificationEmail{}, ErrNotFound
		}
		return NotificationEmail{}, fmt.Errorf("failed to mark notification email verified: %w", err)
	}
	return record, nil
}

const sqlDeleteNotificationEmail = `
DELETE FROM notification_emails
WHERE id = $1
`

func (s *Store) DeleteNotificationEmail(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteNotificationEmail, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification email: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
