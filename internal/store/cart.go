package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CartItem is a guest-cart line. ProductName is joined in from products.
type CartItem struct {
	ID          int64  `db:"id" json:"id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int64  `db:"quantity" json:"quantity"`
}

const sqlListCartItems = `
SELECT ci.id, ci.product_id, p.name AS product_name, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
ORDER BY ci.id
`

func (s *Store) ListCartItems(ctx context.Context) ([]CartItem, error) {
	items := []CartItem{}
	err := s.db.SelectContext(ctx, &items, sqlListCartItems)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

const sqlGetCartItemByProduct = `
SELECT ci.id, ci.product_id, p.name AS product_name, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.product_id = $1
`

const sqlInsertCartItem = `
INSERT INTO cart_items (product_id, quantity)
VALUES ($1, $2)
RETURNING id
`

const sqlBumpCartItemQuantity = `
UPDATE cart_items
SET quantity = quantity + $1
WHERE id = $2
`

// AddCartItem adds a product to the guest cart, merging quantities when a
// line for the product already exists.
func (s *Store) AddCartItem(ctx context.Context, productID, quantity int64) (CartItem, error) {
	var existing CartItem
	err := s.db.GetContext(ctx, &existing, sqlGetCartItemByProduct, productID)
	if err == nil {
		if _, err := s.db.ExecContext(ctx, sqlBumpCartItemQuantity, quantity, existing.ID); err != nil {
			return CartItem{}, fmt.Errorf("failed to update cart item: %w", err)
		}
		existing.Quantity += quantity
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return CartItem{}, fmt.Errorf("failed to look up cart item: %w", err)
	}

	var id int64
	if err := s.db.GetContext(ctx, &id, sqlInsertCartItem, productID, quantity); err != nil {
		return CartItem{}, fmt.Errorf("failed to insert cart item: %w", err)
	}

	var created CartItem
	if err := s.db.GetContext(ctx, &created, sqlGetCartItemByProduct, productID); err != nil {
		return CartItem{}, fmt.Errorf("failed to reload cart item: %w", err)
	}
	return created, nil
}

const sqlDeleteCartItem = `
DELETE FROM cart_items
WHERE id = $1
`

// DeleteCartItem removes a cart line. Deleting an absent line is not an
// error; the cart endpoint treats it as already gone.
func (s *Store) DeleteCartItem(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, sqlDeleteCartItem, id); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

const sqlClearCart = `DELETE FROM cart_items`

func (s *Store) ClearCart(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, sqlClearCart)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return deleted, nil
}
