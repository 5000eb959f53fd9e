package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// HeroMedia is one slide of the storefront hero carousel.
type HeroMedia struct {
	ID                 int64   `db:"id" json:"id"`
	Title              string  `db:"title" json:"title"`
	Subtitle           *string `db:"subtitle" json:"subtitle"`
	Highlight          *string `db:"highlight" json:"highlight"`
	ImageURL           string  `db:"image_url" json:"image_url"`
	VideoURL           *string `db:"video_url" json:"video_url"`
	LinkURL            *string `db:"link_url" json:"link_url"`
	ImageFocusX        int64   `db:"image_focus_x" json:"image_focus_x"`
	ImageFocusY        int64   `db:"image_focus_y" json:"image_focus_y"`
	ImageZoom          int64   `db:"image_zoom" json:"image_zoom"`
	IsActive           bool    `db:"is_active" json:"is_active"`
	DisplayOrder       int64   `db:"display_order" json:"display_order"`
	ShowOverlay        bool    `db:"show_overlay" json:"show_overlay"`
	AspectRatioDesktop string  `db:"aspect_ratio_desktop" json:"aspect_ratio_desktop"`
	AspectRatioMobile  string  `db:"aspect_ratio_mobile" json:"aspect_ratio_mobile"`
	CreatedAt          string  `db:"created_at" json:"created_at"`
	UpdatedAt          string  `db:"updated_at" json:"updated_at"`
}

const heroMediaColumns = `id, title, subtitle, highlight, image_url, video_url, link_url,
	image_focus_x, image_focus_y, image_zoom, is_active, display_order, show_overlay,
	aspect_ratio_desktop, aspect_ratio_mobile, created_at, updated_at`

const sqlListActiveHeroMedia = `
SELECT ` + heroMediaColumns + `
FROM hero_media
WHERE is_active = TRUE
ORDER BY display_order, id
`

func (s *Store) ListActiveHeroMedia(ctx context.Context) ([]HeroMedia, error) {
	media := []HeroMedia{}
	err := s.db.SelectContext(ctx, &media, sqlListActiveHeroMedia)
	if err != nil {
		return nil, fmt.Errorf("failed to list active hero media: %w", err)
	}
	return media, nil
}

const sqlListHeroMedia = `
SELECT ` + heroMediaColumns + `
FROM hero_media
ORDER BY display_order, id
`

func (s *Store) ListHeroMedia(ctx context.Context) ([]HeroMedia, error) {
	media := []HeroMedia{}
	err := s.db.SelectContext(ctx, &media, sqlListHeroMedia)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero media: %w", err)
	}
	return media, nil
}

const sqlGetHeroMedia = `
SELECT ` + heroMediaColumns + `
FROM hero_media
WHERE id = $1
`

func (s *Store) GetHeroMedia(ctx context.Context, id int64) (HeroMedia, error) {
	var media HeroMedia
	err := s.db.GetContext(ctx, &media, sqlGetHeroMedia, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HeroMedia{}, ErrNotFound
		}
		return HeroMedia{}, fmt.Errorf("failed to get hero media: %w", err)
	}
	return media, nil
}

const sqlCreateHeroMedia = `
INSERT INTO hero_media (title, subtitle, highlight, image_url, video_url, link_url,
	image_focus_x, image_focus_y, image_zoom, is_active, display_order, show_overlay,
	aspect_ratio_desktop, aspect_ratio_mobile)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + heroMediaColumns + `
`

func (s *Store) CreateHeroMedia(ctx context.Context, media HeroMedia) (HeroMedia, error) {
	var created HeroMedia
	err := s.db.GetContext(ctx, &created, sqlCreateHeroMedia,
		media.Title, media.Subtitle, media.Highlight, media.ImageURL, media.VideoURL, media.LinkURL,
		media.ImageFocusX, media.ImageFocusY, media.ImageZoom, media.IsActive, media.DisplayOrder,
		media.ShowOverlay, media.AspectRatioDesktop, media.AspectRatioMobile)
	if err != nil {
		return HeroMedia{}, fmt.Errorf("failed to create hero media: %w", err)
	}
	return created, nil
}

// UpdateHeroMediaParams carries the slide fields a partial update may touch.
// An empty string on a nullable text field clears it.
type UpdateHeroMediaParams struct {
	Title              *string
	Subtitle           *string
	Highlight          *string
	ImageURL           *string
	VideoURL           *string
	LinkURL            *string
	ImageFocusX        *int64
	ImageFocusY        *int64
	ImageZoom          *int64
	IsActive           *bool
	DisplayOrder       *int64
	ShowOverlay        *bool
	AspectRatioDesktop *string
	AspectRatioMobile  *string
}

func (s *Store) UpdateHeroMedia(ctx context.Context, id int64, params UpdateHeroMediaParams) (HeroMedia, error) {
	updates := []string{}
	args := []interface{}{}
	argPos := 1

	appendUpdate := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}
	appendNullableText := func(column string, value string) {
		if value == "" {
			appendUpdate(column, nil)
		} else {
			appendUpdate(column, value)
		}
	}

	if params.Title != nil {
		appendUpdate("title", *params.Title)
	}
	if params.Subtitle != nil {
		appendNullableText("subtitle", *params.Subtitle)
	}
	if params.Highlight != nil {
		appendNullableText("highlight", *params.Highlight)
	}
	if params.ImageURL != nil {
		appendUpdate("image_url", *params.ImageURL)
	}
	if params.VideoURL != nil {
		appendNullableText("video_url", *params.VideoURL)
	}
	if params.LinkURL != nil {
		appendNullableText("link_url", *params.LinkURL)
	}
	if params.ImageFocusX != nil {
		appendUpdate("image_focus_x", *params.ImageFocusX)
	}
	if params.ImageFocusY != nil {
		appendUpdate("image_focus_y", *params.ImageFocusY)
	}
	if params.ImageZoom != nil {
		appendUpdate("image_zoom", *params.ImageZoom)
	}
	if params.IsActive != nil {
		appendUpdate("is_active", *params.IsActive)
	}
	if params.DisplayOrder != nil {
		appendUpdate("display_order", *params.DisplayOrder)
	}
	if params.ShowOverlay != nil {
		appendUpdate("show_overlay", *params.ShowOverlay)
	}
	if params.AspectRatioDesktop != nil {
		appendUpdate("aspect_ratio_desktop", *params.AspectRatioDesktop)
	}
	if params.AspectRatioMobile != nil {
		appendUpdate("aspect_ratio_mobile", *params.AspectRatioMobile)
	}

	if len(updates) == 0 {
		return s.GetHeroMedia(ctx, id)
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
UPDATE hero_media
SET %s
WHERE id = $%d
RETURNING `+heroMediaColumns, strings.Join(updates, ", "), argPos)

	var updated HeroMedia
	err := s.db.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HeroMedia{}, ErrNotFound
		}
		return HeroMedia{}, fmt.Errorf("failed to update hero media: %w", err)
	}
	return updated, nil
}

const sqlDeleteHeroMedia = `
DELETE FROM hero_media
WHERE id = $1
`

func (s *Store) DeleteHeroMedia(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteHeroMedia, id)
	if err != nil {
		return fmt.Errorf("failed to delete hero media: %w", err)
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
