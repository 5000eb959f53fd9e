package store

import (
	"context"
	"fmt"
)

// RecordVisit stores the session id if it was not seen before and reports
// whether this call created the row.
func (s *Store) RecordVisit(ctx context.Context, sessionID string) (bool, error) {
	const query = `
INSERT INTO unique_visits (session_id)
VALUES ($1)
ON CONFLICT (session_id) DO NOTHING
`
	result, err := s.db.ExecContext(ctx, query, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to record visit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check visit result: %w", err)
	}
	return rows > 0, nil
}

const sqlCountVisits = `
SELECT COUNT(*)
FROM unique_visits
`

func (s *Store) CountVisits(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, sqlCountVisits)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

// ProductSales is one row of the best-seller ranking.
type ProductSales struct {
	ProductName  string  `db:"product_name" json:"product_name"`
	TotalUnits   int64   `db:"total_units" json:"total_units"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
}

const sqlListTopSellingProducts = `
SELECT oi.product_name,
	SUM(oi.quantity) AS total_units,
	SUM(oi.quantity * oi.unit_price) AS total_revenue
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
WHERE o.status = $1
GROUP BY oi.product_name
ORDER BY total_units DESC, oi.product_name
LIMIT $2
`

// ListTopSellingProducts ranks products by units sold across orders in the
// given status.
func (s *Store) ListTopSellingProducts(ctx context.Context, status string, limit int) ([]ProductSales, error) {
	ranking := []ProductSales{}
	err := s.db.SelectContext(ctx, &ranking, sqlListTopSellingProducts, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top selling products: %w", err)
	}
	return ranking, nil
}
