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

// UserService manages dashboard user accounts.
type UserService struct {
	cached
	catalog  backend.UserAPI
	producer *event.Producer
	logger   *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(catalog backend.UserAPI, store cache.Store, producer *event.Producer, logger *slog.Logger) *UserService {
	return &UserService{
		cached:   cached{store: store, logger: logger},
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=6,max=20"`
	Age         int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Address     string `json:"address"`
	RoleID      int64  `json:"roleId" validate:"gt=0"`
}

// UpdateUserInput holds the parameters for updating a user. Password is
// applied only when set.
type UpdateUserInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"omitempty,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=6,max=20"`
	Age         int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Address     string `json:"address"`
	RoleID      int64  `json:"roleId" validate:"gt=0"`
}

// List returns one page of users, served from the cache when fresh.
func (s *UserService) List(ctx context.Context, params pagination.Params) (pagination.Result[domain.User], error) {
	key := cache.ListKey(userEntity, params)

	var page pagination.Result[domain.User]
	if hit := s.cacheGet(ctx, key, &page); hit {
		return page, nil
	}

	page, err := s.catalog.ListUsers(ctx, params)
	if err != nil {
		return pagination.Result[domain.User]{}, err
	}

	s.cacheSet(ctx, key, page)
	return page, nil
}

// Create validates the input and creates a user.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}

	created, err := s.catalog.CreateUser(ctx, backend.CreateUserPayload{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Age:         input.Age,
		Gender:      input.Gender,
		Address:     input.Address,
		Role:        backend.RoleRef{ID: input.RoleID},
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userEntity+":")
	s.publishUser(ctx, event.TopicUserCreated, created.ID, created.Name)

	s.logger.InfoContext(ctx, "user created",
		slog.Int64("user_id", created.ID),
		slog.String("email", created.Email),
	)
	return created, nil
}

// Update validates the input and updates a user. The id travels in the
// request body per the upstream contract.
func (s *UserService) Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}

	updated, err := s.catalog.UpdateUser(ctx, backend.UpdateUserPayload{
		ID:          id,
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Age:         input.Age,
		Gender:      input.Gender,
		Address:     input.Address,
		Role:        backend.RoleRef{ID: input.RoleID},
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userEntity+":")
	s.publishUser(ctx, event.TopicUserUpdated, id, updated.Name)

	s.logger.InfoContext(ctx, "user updated", slog.Int64("user_id", id))
	return updated, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, userEntity+":")
	s.publishUser(ctx, event.TopicUserDeleted, id, "")

	s.logger.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	return nil
}

func (s *UserService) publishUser(ctx context.Context, topic string, id int64, name string) {
	if err := s.producer.PublishEntityEvent(ctx, topic, "user", event.EntityEventData{ID: id, Name: name}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish user event",
			slog.String("topic", topic),
			slog.Int64("user_id", id),
			slog.String("error", err.Error()),
		)
	}
}
