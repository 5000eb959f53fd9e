package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Club struct {
	ID            int64   `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Slug          string  `db:"slug" json:"slug"`
	CityKey       *string `db:"city_key" json:"city_key"`
	CrestImageURL *string `db:"crest_image_url" json:"crest_image_url"`
}

const clubColumns = `id, name, slug, city_key, crest_image_url`

const sqlListClubs = `
SELECT ` + clubColumns + `
FROM clubs
ORDER BY name
`

func (s *Store) ListClubs(ctx context.Context) ([]Club, error) {
	clubs := []Club{}
	err := s.db.SelectContext(ctx, &clubs, sqlListClubs)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

const sqlGetClub = `
SELECT ` + clubColumns + `
FROM clubs
WHERE id = $1
`

func (s *Store) GetClub(ctx context.Context, id int64) (Club, error) {
	var club Club
	err := s.db.GetContext(ctx, &club, sqlGetClub, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Club{}, ErrNotFound
		}
		return Club{}, fmt.Errorf("failed to get club: %w", err)
	}
	return club, nil
}

const sqlClubNameOrSlugExists = `
SELECT COUNT(*)
FROM clubs
WHERE (name = $1 OR slug = $2) AND id != $3
`

func (s *Store) ClubNameOrSlugExists(ctx context.Context, name, slug string, excludeID int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlClubNameOrSlugExists, name, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check club name: %w", err)
	}
	return count > 0, nil
}

const sqlCreateClub = `
INSERT INTO clubs (name, slug, city_key, crest_image_url)
VALUES ($1, $2, $3, $4)
RETURNING ` + clubColumns + `
`

func (s *Store) CreateClub(ctx context.Context, club Club) (Club, error) {
	var created Club
	err := s.db.GetContext(ctx, &created, sqlCreateClub, club.Name, club.Slug, club.CityKey, club.CrestImageURL)
	if err != nil {
		return Club{}, fmt.Errorf("failed to create club: %w", err)
	}
	return created, nil
}

const sqlUpdateClub = `
UPDATE clubs
SET name = $1, slug = $2, city_key = $3, crest_image_url = $4
WHERE id = $5
RETURNING ` + clubColumns + `
`

func (s *Store) UpdateClub(ctx context.Context, club Club) (Club, error) {
	var updated Club
	err := s.db.GetContext(ctx, &updated, sqlUpdateClub, club.Name, club.Slug, club.CityKey, club.CrestImageURL, club.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Club{}, ErrNotFound
		}
		return Club{}, fmt.Errorf("failed to update club: %w", err)
	}
	return updated, nil
}

const sqlSetClubCrest = `
UPDATE clubs
SET crest_image_url = $1
WHERE id = $2
RETURNING ` + clubColumns + `
`

func (s *Store) SetClubCrest(ctx context.Context, id int64, crestURL string) (Club, error) {
	var club Club
	err := s.db.GetContext(ctx, &club, sqlSetClubCrest, crestURL, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Club{}, ErrNotFound
		}
		return Club{}, fmt.Errorf("failed to set club crest: %w", err)
	}
	return club, nil
}

const sqlDeleteClub = `
DELETE FROM clubs
WHERE id = $1
`

func (s *Store) DeleteClub(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteClub, id)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
