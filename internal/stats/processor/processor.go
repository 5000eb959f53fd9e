package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"strings"

	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// StatsStore defines the database operations required by StatsProcessor
type StatsStore interface {
	RecordVisit(ctx context.Context, sessionID string) (bool, error)
	CountVisits(ctx context.Context) (int64, error)
	ListTopSellingProducts(ctx context.Context, status string, limit int) ([]store.ProductSales, error)
	CountProducts(ctx context.Context) (int, int, error)
	CountCategories(ctx context.Context) (int64, error)
	CountPromoBanners(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context) ([]store.StatusCount, error)
	ListPaidOrderTotals(ctx context.Context, status string) ([]store.PaidOrderTotal, error)
	CountActiveSubscribers(ctx context.Context) (int64, error)
}

const defaultRankingSize = 10

type StatsProcessor struct {
	store  StatsStore
	logger *observability.Logger
}

func New(store StatsStore, logger *observability.Logger) StatsProcessor {
	return StatsProcessor{
		store:  store,
		logger: logger,
	}
}

// VisitResult reports whether the session was new and the running total.
type VisitResult struct {
	Unique      bool  `json:"unique"`
	TotalVisits int64 `json:"total_visits"`
}

// RecordVisit stores the visitor's session id. Repeat calls with the same
// id count once; the storefront keeps the id in localStorage.
func (p *StatsProcessor) RecordVisit(ctx context.Context, sessionID string) (VisitResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	ctx = observability.WithFields(ctx, observability.Field{Key: "session_id", Value: sessionID})

	unique, err := p.store.RecordVisit(ctx, sessionID)
	if err != nil {
		p.logger.Error(ctx, "failed to record visit", err)
		return VisitResult{}, err
	}

	total, err := p.store.CountVisits(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count visits", err)
		return VisitResult{}, err
	}
	return VisitResult{Unique: unique, TotalVisits: total}, nil
}

// VisitCount returns the number of unique visitors seen so far.
func (p *StatsProcessor) VisitCount(ctx context.Context) (int64, error) {
	total, err := p.store.CountVisits(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count visits", err)
		return 0, err
	}
	return total, nil
}

// RankingEntry is one product in the best-seller ranking.
type RankingEntry struct {
	ProductName  string  `json:"product_name"`
	TotalUnits   int64   `json:"total_units"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Ranking returns the best sellers by units across paid orders.
func (p *StatsProcessor) Ranking(ctx context.Context, limit int) ([]RankingEntry, error) {
	if limit < 1 || limit > 50 {
		limit = defaultRankingSize
	}

	sales, err := p.store.ListTopSellingProducts(ctx, store.OrderStatusPaid, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to build product ranking", err)
		return nil, err
	}

	ranking := make([]RankingEntry, 0, len(sales))
	for _, s := range sales {
		ranking = append(ranking, RankingEntry{
			ProductName:  s.ProductName,
			TotalUnits:   s.TotalUnits,
			TotalRevenue: s.TotalRevenue,
		})
	}
	return ranking, nil
}

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Products       int              `json:"products"`
	ActiveProducts int              `json:"active_products"`
	Categories     int64            `json:"categories"`
	PromoBanners   int64            `json:"promo_banners"`
	Subscribers    int64            `json:"subscribers"`
	UniqueVisits   int64            `json:"unique_visits"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	TotalRevenue   float64          `json:"total_revenue"`
}

// Dashboard aggregates the admin counters in one call.
func (p *StatsProcessor) Dashboard(ctx context.Context) (DashboardStats, error) {
	stats := DashboardStats{OrdersByStatus: map[string]int64{}}

	total, active, err := p.store.CountProducts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count products", err)
		return DashboardStats{}, err
	}
	stats.Products = total
	stats.ActiveProducts = active

	if stats.Categories, err = p.store.CountCategories(ctx); err != nil {
		p.logger.Error(ctx, "failed to count categories", err)
		return DashboardStats{}, err
	}
	if stats.PromoBanners, err = p.store.CountPromoBanners(ctx); err != nil {
		p.logger.Error(ctx, "failed to count promo banners", err)
		return DashboardStats{}, err
	}
	if stats.Subscribers, err = p.store.CountActiveSubscribers(ctx); err != nil {
		p.logger.Error(ctx, "failed to count subscribers", err)
		return DashboardStats{}, err
	}
	if stats.UniqueVisits, err = p.store.CountVisits(ctx); err != nil {
		p.logger.Error(ctx, "failed to count visits", err)
		return DashboardStats{}, err
	}

	counts, err := p.store.CountOrdersByStatus(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count orders", err)
		return DashboardStats{}, err
	}
	for _, c := range counts {
		stats.OrdersByStatus[c.Status] = c.Count
	}

	paid, err := p.store.ListPaidOrderTotals(ctx, store.OrderStatusPaid)
	if err != nil {
		p.logger.Error(ctx, "failed to sum paid orders", err)
		return DashboardStats{}, err
	}
	for _, o := range paid {
		stats.TotalRevenue += o.TotalAmount
	}

	return stats, nil
}
