package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Address struct {
	ID          int64   `db:"id" json:"id"`
	UserID      int64   `db:"user_id" json:"user_id"`
	FullName    *string `db:"full_name" json:"full_name"`
	Phone       *string `db:"phone" json:"phone"`
	Label       *string `db:"label" json:"label"`
	AddressLine string  `db:"address_line" json:"address_line"`
	City        *string `db:"city" json:"city"`
	Province    *string `db:"province" json:"province"`
	ZipCode     *string `db:"zip_code" json:"zip_code"`
	IsDefault   bool    `db:"is_default" json:"is_default"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

const addressColumns = `id, user_id, full_name, phone, label, address_line, city, province, zip_code, is_default, created_at`

const sqlListAddressesByUser = `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1
ORDER BY is_default DESC, created_at DESC
`

func (s *Store) ListAddressesByUser(ctx context.Context, userID int64) ([]Address, error) {
	addresses := []Address{}
	err := s.db.SelectContext(ctx, &addresses, sqlListAddressesByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

const sqlGetAddress = `
SELECT ` + addressColumns + `
FROM addresses
WHERE id = $1
`

func (s *Store) GetAddress(ctx context.Context, id int64) (Address, error) {
	var address Address
	err := s.db.GetContext(ctx, &address, sqlGetAddress, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Address{}, ErrNotFound
		}
		return Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return address, nil
}

const sqlCreateAddress = `
INSERT INTO addresses (user_id, full_name, phone, label, address_line, city, province, zip_code, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + addressColumns + `
`

func (s *Store) CreateAddress(ctx context.Context, address Address) (Address, error) {
	var created Address
	err := s.db.GetContext(ctx, &created, sqlCreateAddress,
		address.UserID, address.FullName, address.Phone, address.Label, address.AddressLine,
		address.City, address.Province, address.ZipCode, address.IsDefault)
	if err != nil {
		return Address{}, fmt.Errorf("failed to create address: %w", err)
	}
	return created, nil
}

const sqlUpdateAddress = `
UPDATE addresses
SET full_name = $1,
    phone = $2,
    label = $3,
    address_line = $4,
    city = $5,
    province = $6,
    zip_code = $7,
    is_default = $8
WHERE id = $9
RETURNING ` + addressColumns + `
`

func (s *Store) UpdateAddress(ctx context.Context, address Address) (Address, error) {
	var updated Address
	err := s.db.GetContext(ctx, &updated, sqlUpdateAddress,
		address.FullName, address.Phone, address.Label, address.AddressLine,
		address.City, address.Province, address.ZipCode, address.IsDefault, address.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Address{}, ErrNotFound
		}
		return Address{}, fmt.Errorf("failed to update address: %w", err)
	}
	return updated, nil
}

const sqlDeleteAddress = `
DELETE FROM addresses
WHERE id = $1
`

func (s *Store) DeleteAddress(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteAddress, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlClearDefaultAddresses = `
UPDATE addresses
SET is_default = FALSE
WHERE user_id = $1 AND is_default = TRUE
`

// ClearDefaultAddresses unsets the default flag on every address of the
// user. Callers mark the new default afterwards, keeping at most one.
func (s *Store) ClearDefaultAddresses(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, sqlClearDefaultAddresses, userID); err != nil {
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}
	return nil
}

const sqlSetDefaultAddress = `
UPDATE addresses
SET is_default = TRUE
WHERE id = $1
`

func (s *Store) SetDefaultAddress(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlSetDefaultAddress, id)
	if err != nil {
		return fmt.Errorf("failed to set default address: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set default address: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
