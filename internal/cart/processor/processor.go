package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// CartStore defines the database operations required by CartProcessor
type CartStore interface {
	GetProduct(ctx context.Context, id int64) (store.Product, error)
	ListCartItems(ctx context.Context) ([]store.CartItem, error)
	AddCartItem(ctx context.Context, productID, quantity int64) (store.CartItem, error)
	DeleteCartItem(ctx context.Context, id int64) error
	ClearCart(ctx context.Context) (int64, error)
}

var ErrProductNotFound = errors.New("product not found")

// CartProcessor manages the single guest cart. There is no per-user cart
// yet; every storefront visitor shares one.
type CartProcessor struct {
	store  CartStore
	logger *observability.Logger
}

func New(store CartStore, logger *observability.Logger) CartProcessor {
	return CartProcessor{
		store:  store,
		logger: logger,
	}
}

// ListItems returns the cart lines with product names joined in.
func (p *CartProcessor) ListItems(ctx context.Context) ([]store.CartItem, error) {
	items, err := p.store.ListCartItems(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list cart items", err)
		return nil, err
	}
	return items, nil
}

// AddItem puts a product in the cart. Adding a product already in the cart
// bumps the existing line's quantity instead of creating a second line.
func (p *CartProcessor) AddItem(ctx context.Context, productID, quantity int64) (store.CartItem, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "product_id", Value: productID},
		observability.Field{Key: "quantity", Value: quantity},
	)

	if quantity < 1 {
		quantity = 1
	}

	if _, err := p.store.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CartItem{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to look up product for cart", err)
		return store.CartItem{}, err
	}

	item, err := p.store.AddCartItem(ctx, productID, quantity)
	if err != nil {
		p.logger.Error(ctx, "failed to add cart item", err)
		return store.CartItem{}, err
	}
	return item, nil
}

// RemoveItem deletes a cart line. Removing a line that is already gone is
// fine; the storefront retries deletes freely.
func (p *CartProcessor) RemoveItem(ctx context.Context, itemID int64) error {
	if err := p.store.DeleteCartItem(ctx, itemID); err != nil {
		p.logger.Error(ctx, "failed to delete cart item", err)
		return err
	}
	return nil
}

// ClearResult reports how many lines a cart wipe removed.
type ClearResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// Clear empties the cart, typically after checkout completes.
func (p *CartProcessor) Clear(ctx context.Context) (ClearResult, error) {
	deleted, err := p.store.ClearCart(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to clear cart", err)
		return ClearResult{}, err
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "deleted_count", Value: deleted}), "cart cleared")
	return ClearResult{
		Message:      fmt.Sprintf("%d items eliminados del carrito", deleted),
		DeletedCount: deleted,
	}, nil
}
