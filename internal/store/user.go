package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type User struct {
	ID             int64   `db:"id" json:"id"`
	Email          string  `db:"email" json:"email"`
	FullName       *string `db:"full_name" json:"full_name"`
	HashedPassword *string `db:"hashed_password" json:"-"`
}

const sqlGetUserByEmail = `
SELECT id, email, full_name, hashed_password
FROM users
WHERE email = $1
`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const sqlCreateUser = `
INSERT INTO users (email, full_name)
VALUES ($1, $2)
RETURNING id, email, full_name, hashed_password
`

// GetOrCreateUserByEmail returns the user for the given email, creating a
// passwordless record when none exists yet. Checkout and the address book
// both identify customers this way.
func (s *Store) GetOrCreateUserByEmail(ctx context.Context, email string, fullName *string) (User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	var created User
	if err := s.db.GetContext(ctx, &created, sqlCreateUser, email, fullName); err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}
