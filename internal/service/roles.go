package service

import (
	"context"
	"log/slog"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"
	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/cache"
	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/event"
)

// RoleService manages access roles.
type RoleService struct {
	cached
	catalog  backend.RoleAPI
	producer *event.Producer
	logger   *slog.Logger
}

// NewRoleService creates a new role service.
func NewRoleService(catalog backend.RoleAPI, store cache.Store, producer *event.Producer, logger *slog.Logger) *RoleService {
	return &RoleService{
		cached:   cached{store: store, logger: logger},
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// RoleInput holds the parameters for creating or updating a role.
type RoleInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Active      bool   `json:"active"`
}

// List returns one page of roles, served from the cache when fresh.
func (s *RoleService) List(ctx context.Context, params pagination.Params) (pagination.Result[domain.Role], error) {
	key := cache.ListKey(roleEntity, params)

	var page pagination.Result[domain.Role]
	if hit := s.cacheGet(ctx, key, &page); hit {
		return page, nil
	}

	page, err := s.catalog.ListRoles(ctx, params)
	if err != nil {
		return pagination.Result[domain.Role]{}, err
	}

	s.cacheSet(ctx, key, page)
	return page, nil
}

// Create validates the input and creates a role.
func (s *RoleService) Create(ctx context.Context, input RoleInput) (*domain.Role, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}

	created, err := s.catalog.CreateRole(ctx, backend.CreateRolePayload{
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, roleEntity+":")
	s.publishRole(ctx, event.TopicRoleCreated, created.ID, created.Name)

	s.logger.InfoContext(ctx, "role created",
		slog.Int64("role_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// Update validates the input and updates a role. The id travels in the
// request body per the upstream contract.
func (s *RoleService) Update(ctx context.Context, id int64, input RoleInput) (*domain.Role, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}

	updated, err := s.catalog.UpdateRole(ctx, backend.UpdateRolePayload{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, roleEntity+":")
	s.publishRole(ctx, event.TopicRoleUpdated, id, updated.Name)

	s.logger.InfoContext(ctx, "role updated", slog.Int64("role_id", id))
	return updated, nil
}

// Delete removes a role by id.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteRole(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, roleEntity+":")
	s.publishRole(ctx, event.TopicRoleDeleted, id, "")

	s.logger.InfoContext(ctx, "role deleted", slog.Int64("role_id", id))
	return nil
}

func (s *RoleService) publishRole(ctx context.Context, topic string, id int64, name string) {
	if err := s.producer.PublishEntityEvent(ctx, topic, "role", event.EntityEventData{ID: id, Name: name}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish role event",
			slog.String("topic", topic),
			slog.Int64("role_id", id),
			slog.String("error", err.Error()),
		)
	}
}
