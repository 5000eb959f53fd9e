package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ProductPriceSettings holds the default price per jersey tier. A single row
// with id 1 is kept.
type ProductPriceSettings struct {
	ID               int64   `db:"id" json:"id"`
	PriceHincha      float64 `db:"price_hincha" json:"price_hincha"`
	PriceJugador     float64 `db:"price_jugador" json:"price_jugador"`
	PriceProfesional float64 `db:"price_profesional" json:"price_profesional"`
}

const priceSettingsColumns = `id, price_hincha, price_jugador, price_profesional`

const sqlGetPriceSettings = `
SELECT ` + priceSettingsColumns + `
FROM product_price_settings
WHERE id = 1
`

// GetPriceSettings returns the tier prices, creating the default row if it
// was removed.
func (s *Store) GetPriceSettings(ctx context.Context) (ProductPriceSettings, error) {
	var settings ProductPriceSettings
	err := s.db.GetContext(ctx, &settings, sqlGetPriceSettings)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return ProductPriceSettings{}, fmt.Errorf("failed to get price settings: %w", err)
	}

	err = s.db.GetContext(ctx, &settings, `
INSERT INTO product_price_settings (id, price_hincha, price_jugador, price_profesional)
VALUES (1, 59900, 69900, 89900)
RETURNING `+priceSettingsColumns)
	if err != nil {
		return ProductPriceSettings{}, fmt.Errorf("failed to create price settings: %w", err)
	}
	return settings, nil
}

// UpdatePriceSettingsParams carries the tier prices an update may touch.
type UpdatePriceSettingsParams struct {
	PriceHincha      *float64
	PriceJugador     *float64
	PriceProfesional *float64
}

func (s *Store) UpdatePriceSettings(ctx context.Context, params UpdatePriceSettingsParams) (ProductPriceSettings, error) {
	current, err := s.GetPriceSettings(ctx)
	if err != nil {
		return ProductPriceSettings{}, err
	}

	updates := []string{}
	args := []interface{}{}
	argPos := 1

	if params.PriceHincha != nil {
		updates = append(updates, fmt.Sprintf("price_hincha = $%d", argPos))
		args = append(args, *params.PriceHincha)
		argPos++
	}
	if params.PriceJugador != nil {
		updates = append(updates, fmt.Sprintf("price_jugador = $%d", argPos))
		args = append(args, *params.PriceJugador)
		argPos++
	}
	if params.PriceProfesional != nil {
		updates = append(updates, fmt.Sprintf("price_profesional = $%d", argPos))
		args = append(args, *params.PriceProfesional)
		argPos++
	}

	if len(updates) == 0 {
		return current, nil
	}

	args = append(args, current.ID)
	query := fmt.Sprintf(`
UPDATE product_price_settings
SET %s
WHERE id = $%d
RETURNING `+priceSettingsColumns, strings.Join(updates, ", "), argPos)

	var updated ProductPriceSettings
	err = s.db.GetContext(ctx, &updated, query, args...)
	if err != nil {
		return ProductPriceSettings{}, fmt.Errorf("failed to update price settings: %w", err)
	}
	return updated, nil
}
