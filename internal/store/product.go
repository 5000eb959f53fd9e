package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Description *string `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Stock       int64   `db:"stock" json:"stock"`
	Gender      *string `db:"gender" json:"gender"`
	ClubName    *string `db:"club_name" json:"club_name"`
	IsActive    bool    `db:"is_active" json:"is_active"`
	CategoryID  *int64  `db:"category_id" json:"category_id"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

const productColumns = `id, name, slug, description, price, stock, gender, club_name, is_active, category_id, created_at, updated_at`

// ListProductsParams filters the product listing. Nil fields are skipped.
type ListProductsParams struct {
	ClubName   *string
	CategoryID *int64
	Gender     *string
	ActiveOnly bool
	Search     *string
	Limit      int
	Offset     int
}

func (s *Store) ListProducts(ctx context.Context, params ListProductsParams) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.ClubName != nil {
		argCount++
		query += fmt.Sprintf(" AND club_name = $%d", argCount)
		args = append(args, *params.ClubName)
	}
	if params.CategoryID != nil {
		argCount++
		query += fmt.Sprintf(" AND category_id = $%d", argCount)
		args = append(args, *params.CategoryID)
	}
	if params.Gender != nil {
		argCount++
		query += fmt.Sprintf(" AND gender = $%d", argCount)
		args = append(args, *params.Gender)
	}
	if params.ActiveOnly {
		query += " AND is_active = TRUE"
	}
	if params.Search != nil && *params.Search != "" {
		argCount++
		query += fmt.Sprintf(" AND (LOWER(name) LIKE LOWER($%d) OR LOWER(COALESCE(club_name, '')) LIKE LOWER($%d))", argCount, argCount)
		args = append(args, "%"+*params.Search+"%")
	}

	query += " ORDER BY name"
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
		args = append(args, params.Limit, params.Offset)
	}

	products := []Product{}
	err := s.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

const sqlGetProduct = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

func (s *Store) GetProduct(ctx context.Context, id int64) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProduct, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

const sqlGetProductBySlug = `
SELECT ` + productColumns + `
FROM products
WHERE slug = $1
`

func (s *Store) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductBySlug, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return product, nil
}

const sqlProductSlugExists = `
SELECT COUNT(*)
FROM products
WHERE slug = $1 AND id != $2
`

func (s *Store) ProductSlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlProductSlugExists, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check product slug: %w", err)
	}
	return count > 0, nil
}

const sqlCreateProduct = `
INSERT INTO products (name, slug, description, price, stock, gender, club_name, is_active, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + productColumns + `
`

func (s *Store) CreateProduct(ctx context.Context, product Product) (Product, error) {
	var created Product
	err := s.db.GetContext(ctx, &created, sqlCreateProduct,
		product.Name, product.Slug, product.Description, product.Price, product.Stock,
		product.Gender, product.ClubName, product.IsActive, product.CategoryID)
	if err != nil {
		return Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return created, nil
}

// UpdateProductParams carries the product fields a partial update may touch.
type UpdateProductParams struct {
	Name        *string
	Slug        *string
	Description *string
	Price       *float64
	Stock       *int64
	Gender      *string
	ClubName    *string
	IsActive    *bool
	CategoryID  *int64
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (Product, error) {
	updates := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Slug != nil {
		updates = append(updates, fmt.Sprintf("slug = $%d", argPos))
		args = append(args, *params.Slug)
		argPos++
	}
	if params.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}
	if params.Price != nil {
		updates = append(updates, fmt.Sprintf("price = $%d", argPos))
		args = append(args, *params.Price)
		argPos++
	}
	if params.Stock != nil {
		updates = append(updates, fmt.Sprintf("stock = $%d", argPos))
		args = append(args, *params.Stock)
		argPos++
	}
	if params.Gender != nil {
		updates = append(updates, fmt.Sprintf("gender = $%d", argPos))
		args = append(args, *params.Gender)
		argPos++
	}
	if params.ClubName != nil {
		updates = append(updates, fmt.Sprintf("club_name = $%d", argPos))
		args = append(args, *params.ClubName)
		argPos++
	}
	if params.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *params.IsActive)
		argPos++
	}
	if params.CategoryID != nil {
		updates = append(updates, fmt.Sprintf("category_id = $%d", argPos))
		args = append(args, *params.CategoryID)
		argPos++
	}

	if len(updates) == 0 {
		return s.GetProduct(ctx, id)
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
UPDATE products
SET %s
WHERE id = $%d
RETURNING `+productColumns, strings.Join(updates, ", "), argPos)

	var updated Product
	err := s.db.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

const sqlUpdateProductStock = `
UPDATE products
SET stock = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING ` + productColumns + `
`

func (s *Store) UpdateProductStock(ctx context.Context, id int64, stock int64) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlUpdateProductStock, stock, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to update product stock: %w", err)
	}
	return product, nil
}

const sqlSetProductActive = `
UPDATE products
SET is_active = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING ` + productColumns + `
`

func (s *Store) SetProductActive(ctx context.Context, id int64, active bool) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlSetProductActive, active, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to set product active: %w", err)
	}
	return product, nil
}

const sqlDeleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteProduct, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlCountProducts = `SELECT COUNT(*) FROM products`

const sqlCountActiveProducts = `SELECT COUNT(*) FROM products WHERE is_active = TRUE`

func (s *Store) CountProducts(ctx context.Context) (int, int, error) {
	var total, active int
	if err := s.db.GetContext(ctx, &total, sqlCountProducts); err != nil {
		return 0, 0, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.GetContext(ctx, &active, sqlCountActiveProducts); err != nil {
		return 0, 0, fmt.Errorf("failed to count active products: %w", err)
	}
	return total, active, nil
}
