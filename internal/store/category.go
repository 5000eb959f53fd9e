package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

const sqlListCategories = `
SELECT id, name, slug
FROM categories
ORDER BY name
`

func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	err := s.db.SelectContext(ctx, &categories, sqlListCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

const sqlGetCategory = `
SELECT id, name, slug
FROM categories
WHERE id = $1
`

func (s *Store) GetCategory(ctx context.Context, id int64) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlGetCategory, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

const sqlCategoryNameOrSlugExists = `
SELECT COUNT(*)
FROM categories
WHERE (name = $1 OR slug = $2) AND id != $3
`

// CategoryNameOrSlugExists reports whether another category already uses the
// name or the slug. Pass 0 as excludeID when creating.
func (s *Store) CategoryNameOrSlugExists(ctx context.Context, name, slug string, excludeID int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCategoryNameOrSlugExists, name, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

const sqlCreateCategory = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
RETURNING id, name, slug
`

func (s *Store) CreateCategory(ctx context.Context, name, slug string) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlCreateCategory, name, slug)
	if err != nil {
		return Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

const sqlUpdateCategory = `
UPDATE categories
SET name = $1, slug = $2
WHERE id = $3
RETURNING id, name, slug
`

func (s *Store) UpdateCategory(ctx context.Context, id int64, name, slug string) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlUpdateCategory, name, slug, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

const sqlCountProductsInCategory = `
SELECT COUNT(*)
FROM products
WHERE category_id = $1
`

func (s *Store) CountProductsInCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountProductsInCategory, categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to count products in category: %w", err)
	}
	return count, nil
}

const sqlDeleteCategory = `
DELETE FROM categories
WHERE id = $1
`

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteCategory, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlCountCategories = `
SELECT COUNT(*)
FROM categories
`

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, sqlCountCategories)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
