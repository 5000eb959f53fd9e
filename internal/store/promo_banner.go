package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PromoBanner is one rotating message of the storefront announcement bar.
type PromoBanner struct {
	ID           int64  `db:"id" json:"id"`
	Message      string `db:"message" json:"message"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	DisplayOrder int64  `db:"display_order" json:"display_order"`
	CreatedAt    string `db:"created_at" json:"created_at"`
	UpdatedAt    string `db:"updated_at" json:"updated_at"`
}

// PromoBannerSettings controls the announcement bar rotation.
type PromoBannerSettings struct {
	ID                    int64 `db:"id" json:"id"`
	ChangeIntervalSeconds int64 `db:"change_interval_seconds" json:"change_interval_seconds"`
}

const promoBannerColumns = `id, message, is_active, display_order, created_at, updated_at`

const sqlListActivePromoBanners = `
SELECT ` + promoBannerColumns + `
FROM promo_banners
WHERE is_active = TRUE
ORDER BY display_order, id
`

func (s *Store) ListActivePromoBanners(ctx context.Context) ([]PromoBanner, error) {
	banners := []PromoBanner{}
	err := s.db.SelectContext(ctx, &banners, sqlListActivePromoBanners)
	if err != nil {
		return nil, fmt.Errorf("failed to list active promo banners: %w", err)
	}
	return banners, nil
}

const sqlListPromoBanners = `
SELECT ` + promoBannerColumns + `
FROM promo_banners
ORDER BY display_order, id
`

func (s *Store) ListPromoBanners(ctx context.Context) ([]PromoBanner, error) {
	banners := []PromoBanner{}
	err := s.db.SelectContext(ctx, &banners, sqlListPromoBanners)
	if err != nil {
		return nil, fmt.Errorf("failed to list promo banners: %w", err)
	}
	return banners, nil
}

const sqlGetPromoBanner = `
SELECT ` + promoBannerColumns + `
FROM promo_banners
WHERE id = $1
`

func (s *Store) GetPromoBanner(ctx context.Context, id int64) (PromoBanner, error) {
	var banner PromoBanner
	err := s.db.GetContext(ctx, &banner, sqlGetPromoBanner, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PromoBanner{}, ErrNotFound
		}
		return PromoBanner{}, fmt.Errorf("failed to get promo banner: %w", err)
	}
	return banner, nil
}

const sqlCreatePromoBanner = `
INSERT INTO promo_banners (message, is_active, display_order)
VALUES ($1, $2, $3)
RETURNING ` + promoBannerColumns + `
`

func (s *Store) CreatePromoBanner(ctx context.Context, message string, isActive bool, displayOrder int64) (PromoBanner, error) {
	var banner PromoBanner
	err := s.db.GetContext(ctx, &banner, sqlCreatePromoBanner, message, isActive, displayOrder)
	if err != nil {
		return PromoBanner{}, fmt.Errorf("failed to create promo banner: %w", err)
	}
	return banner, nil
}

// UpdatePromoBannerParams carries the banner fields a partial update may touch.
type UpdatePromoBannerParams struct {
	Message      *string
	IsActive     *bool
	DisplayOrder *int64
}

func (s *Store) UpdatePromoBanner(ctx context.Context, id int64, params UpdatePromoBannerParams) (PromoBanner, error) {
	updates := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Message != nil {
		updates = append(updates, fmt.Sprintf("message = $%d", argPos))
		args = append(args, *params.Message)
		argPos++
	}
	if params.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *params.IsActive)
		argPos++
	}
	if params.DisplayOrder != nil {
		updates = append(updates, fmt.Sprintf("display_order = $%d", argPos))
		args = append(args, *params.DisplayOrder)
		argPos++
	}

	if len(updates) == 0 {
		return s.GetPromoBanner(ctx, id)
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
UPDATE promo_banners
SET %s
WHERE id = $%d
RETURNING `+promoBannerColumns, strings.Join(updates, ", "), argPos)

	var updated PromoBanner
	err := s.db.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PromoBanner{}, ErrNotFound
		}
		return PromoBanner{}, fmt.Errorf("failed to update promo banner: %w", err)
	}
	return updated, nil
}

const sqlDeletePromoBanner = `
DELETE FROM promo_banners
WHERE id = $1
`

func (s *Store) DeletePromoBanner(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeletePromoBanner, id)
	if err != nil {
		return fmt.Errorf("failed to delete promo banner: %w", err)
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

const sqlGetBannerSettings = `
SELECT id, change_interval_seconds
FROM promo_banner_settings
ORDER BY id
LIMIT 1
`

// GetBannerSettings returns the rotation settings, creating the default row
// if none exists yet.
func (s *Store) GetBannerSettings(ctx context.Context) (PromoBannerSettings, error) {
	var settings PromoBannerSettings
	err := s.db.GetContext(ctx, &settings, sqlGetBannerSettings)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return PromoBannerSettings{}, fmt.Errorf("failed to get banner settings: %w", err)
	}

	err = s.db.GetContext(ctx, &settings, `
INSERT INTO promo_banner_settings (change_interval_seconds)
VALUES (4)
RETURNING id, change_interval_seconds`)
	if err != nil {
		return PromoBannerSettings{}, fmt.Errorf("failed to create banner settings: %w", err)
	}
	return settings, nil
}

const sqlUpdateBannerSettings = `
UPDATE promo_banner_settings
SET change_interval_seconds = $1
WHERE id = $2
RETURNING id, change_interval_seconds
`

func (s *Store) UpdateBannerSettings(ctx context.Context, seconds int64) (PromoBannerSettings, error) {
	current, err := s.GetBannerSettings(ctx)
	if err != nil {
		return PromoBannerSettings{}, err
	}

	var updated PromoBannerSettings
	err = s.db.GetContext(ctx, &updated, sqlUpdateBannerSettings, seconds, current.ID)
	if err != nil {
		return PromoBannerSettings{}, fmt.Errorf("failed to update banner settings: %w", err)
	}
	return updated, nil
}

const sqlCountPromoBanners = `
SELECT COUNT(*)
FROM promo_banners
`

func (s *Store) CountPromoBanners(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, sqlCountPromoBanners)
	if err != nil {
		return 0, fmt.Errorf("failed to count promo banners: %w", err)
	}
	return count, nil
}
