package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	pkgkafka "github.com/TVAexe/ar-fe-admin/pkg/kafka"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// Kafka topic constants for admin activity events.
const (
	TopicProductCreated     = "admin.product.created"
	TopicProductUpdated     = "admin.product.updated"
	TopicProductDeleted     = "admin.product.deleted"
	TopicCategoryCreated    = "admin.category.created"
	TopicOrderStatusChanged = "admin.order.status_changed"
	TopicUserCreated        = "admin.user.created"
	TopicUserUpdated        = "admin.user.updated"
	TopicUserDeleted        = "admin.user.deleted"
	TopicRoleCreated        = "admin.role.created"
	TopicRoleUpdated        = "admin.role.updated"
	TopicRoleDeleted        = "admin.role.deleted"
)

// Source identifier for events originating from the admin dashboard service.
const SourceAdminService = "admin-dashboard"

// ProductEventData is the payload for product lifecycle events.
type ProductEventData struct {
	ProductID  int64    `json:"product_id"`
	Name       string   `json:"name"`
	CategoryID int64    `json:"category_id"`
	ImageCount int      `json:"image_count"`
	ImageURLs  []string `json:"image_urls,omitempty"`
	ModelURL   string   `json:"model_url,omitempty"`
}

// OrderStatusChangedData is the payload for an order.status_changed event.
type OrderStatusChangedData struct {
	OrderID   int64  `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// EntityEventData is the payload for category/user/role lifecycle events.
type EntityEventData struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Producer publishes admin activity events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the admin service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductEvent publishes a product created/updated/deleted event.
func (p *Producer) PublishProductEvent(ctx context.Context, topic string, data ProductEventData) error {
	event, err := pkgkafka.NewEvent(topic, strconv.FormatInt(data.ProductID, 10), "product", SourceAdminService, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published product event",
		slog.String("topic", topic),
		slog.Int64("product_id", data.ProductID),
	)
	return nil
}

// PublishOrderStatusChanged publishes an order.status_changed event.
func (p *Producer) PublishOrderStatusChanged(ctx context.Context, orderID int64, oldStatus, newStatus domain.OrderStatus) error {
	data := OrderStatusChangedData{
		OrderID:   orderID,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
	}

	event, err := pkgkafka.NewEvent(TopicOrderStatusChanged, strconv.FormatInt(orderID, 10), "order", SourceAdminService, data)
	if err != nil {
		return fmt.Errorf("create order.status_changed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderStatusChanged, event); err != nil {
		return fmt.Errorf("publish order.status_changed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.status_changed event",
		slog.Int64("order_id", orderID),
		slog.String("old_status", string(oldStatus)),
		slog.String("new_status", string(newStatus)),
	)
	return nil
}

// PublishEntityEvent publishes a category/user/role lifecycle event.
func (p *Producer) PublishEntityEvent(ctx context.Context, topic, aggregateType string, data EntityEventData) error {
	event, err := pkgkafka.NewEvent(topic, strconv.FormatInt(data.ID, 10), aggregateType, SourceAdminService, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published entity event",
		slog.String("topic", topic),
		slog.Int64("id", data.ID),
	)
	return nil
}
