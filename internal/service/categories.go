package service

import (
	"context"
	"log/slog"

	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/cache"
	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/event"
)

// CategoryService lists and creates product categories.
type CategoryService struct {
	cached
	catalog  backend.CategoryAPI
	producer *event.Producer
	logger   *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(catalog backend.CategoryAPI, store cache.Store, producer *event.Producer, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		cached:   cached{store: store, logger: logger},
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// List returns all categories. The upstream endpoint is not paginated, so
// the whole list is cached under a single key.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	key := categoryEntity + ":list:all"

	var categories []domain.Category
	if hit := s.cacheGet(ctx, key, &categories); hit {
		return categories, nil
	}

	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, categories)
	return categories, nil
}

// Create validates the input and creates a category.
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}

	created, err := s.catalog.CreateCategory(ctx, backend.CreateCategoryPayload{Name: input.Name})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, categoryEntity+":")
	if err := s.producer.PublishEntityEvent(ctx, event.TopicCategoryCreated, "category", event.EntityEventData{
		ID:   created.ID,
		Name: created.Name,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish category.created event",
			slog.Int64("category_id", created.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.Int64("category_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}
