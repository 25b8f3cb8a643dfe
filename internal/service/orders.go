package service

import (
	"context"
	"log/slog"

	apperrors "github.com/TVAexe/ar-fe-admin/pkg/errors"
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/cache"
	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/event"
)

// OrderService lists orders and advances them through the status workflow.
type OrderService struct {
	cached
	catalog  backend.OrderAPI
	producer *event.Producer
	logger   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(catalog backend.OrderAPI, store cache.Store, producer *event.Producer, logger *slog.Logger) *OrderService {
	return &OrderService{
		cached:   cached{store: store, logger: logger},
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// List returns one page of orders, served from the cache when fresh.
func (s *OrderService) List(ctx context.Context, params pagination.Params) (pagination.Result[domain.Order], error) {
	key := cache.ListKey(orderEntity, params)

	var page pagination.Result[domain.Order]
	if hit := s.cacheGet(ctx, key, &page); hit {
		return page, nil
	}

	page, err := s.catalog.ListOrders(ctx, params)
	if err != nil {
		return pagination.Result[domain.Order]{}, err
	}

	s.cacheSet(ctx, key, page)
	return page, nil
}

// Transition moves an order from current to target. The state machine is
// checked before the backend is called; a disallowed pair never leaves this
// process.
func (s *OrderService) Transition(ctx context.Context, orderID int64, current, target domain.OrderStatus) (*domain.Order, error) {
	if !current.IsValid() {
		return nil, apperrors.InvalidInput("unknown order status: " + string(current))
	}
	if !target.IsValid() {
		return nil, apperrors.InvalidInput("unknown order status: " + string(target))
	}
	if !current.CanTransitionTo(target) {
		return nil, apperrors.InvalidTransition(string(current), string(target))
	}

	order, err := s.catalog.UpdateOrderStatus(ctx, orderID, target)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, orderEntity+":")
	if err := s.producer.PublishOrderStatusChanged(ctx, orderID, current, target); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order.status_changed event",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order status changed",
		slog.Int64("order_id", orderID),
		slog.String("from", string(current)),
		slog.String("to", string(target)),
	)
	return order, nil
}
