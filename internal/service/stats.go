package service

import (
	"context"
	"log/slog"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/cache"
	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// statsSampleSize is how many recent orders feed the status breakdown. The
// total comes from the page meta, so it stays exact even when the sample is
// truncated.
const statsSampleSize = 100

const statsCacheKey = statsEntity + ":dashboard"

// DashboardStats is the home-page summary of the shop's state. GrossRevenue
// sums the sampled orders' totals, so like the status counts it covers at
// most statsSampleSize orders.
type DashboardStats struct {
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	Confirmed     int     `json:"confirmed"`
	InTransit     int     `json:"inTransit"`
	Delivered     int     `json:"delivered"`
	GrossRevenue  float64 `json:"grossRevenue"`
	TotalProducts int     `json:"totalProducts"`
	TotalUsers    int     `json:"totalUsers"`
}

// StatsService aggregates dashboard statistics from the catalog backend.
type StatsService struct {
	cached
	orders   backend.OrderAPI
	products backend.ProductAPI
	users    backend.UserAPI
	logger   *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(
	orders backend.OrderAPI,
	products backend.ProductAPI,
	users backend.UserAPI,
	store cache.Store,
	logger *slog.Logger,
) *StatsService {
	return &StatsService{
		cached:   cached{store: store, logger: logger},
		orders:   orders,
		products: products,
		users:    users,
		logger:   logger,
	}
}

// Dashboard returns the aggregated stats, served from the cache when fresh.
// Status counts and gross revenue are computed over the most recent
// statsSampleSize orders; entity totals come from the list metas and are
// exact.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if hit := s.cacheGet(ctx, statsCacheKey, &stats); hit {
		return &stats, nil
	}

	orderPage, err := s.orders.ListOrders(ctx, pagination.Params{Page: 0, Size: statsSampleSize})
	if err != nil {
		return nil, err
	}

	productPage, err := s.products.ListProducts(ctx, pagination.Params{Page: 0, Size: 1})
	if err != nil {
		return nil, err
	}

	userPage, err := s.users.ListUsers(ctx, pagination.Params{Page: 0, Size: 1})
	if err != nil {
		return nil, err
	}

	stats = DashboardStats{
		TotalOrders:   orderPage.Meta.Total,
		TotalProducts: productPage.Meta.Total,
		TotalUsers:    userPage.Meta.Total,
	}
	for _, order := range orderPage.Result {
		stats.GrossRevenue += order.TotalAmount
		switch order.Status {
		case domain.OrderStatusPending:
			stats.PendingOrders++
		case domain.OrderStatusConfirmed:
			stats.Confirmed++
		case domain.OrderStatusShipping, domain.OrderStatusShipped:
			stats.InTransit++
		case domain.OrderStatusDelivered:
			stats.Delivered++
		}
	}

	s.cacheSet(ctx, statsCacheKey, stats)
	return &stats, nil
}
