package service

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	pkgkafka "github.com/TVAexe/ar-fe-admin/pkg/kafka"
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/event"
)

// --- Mock catalog APIs ---

type mockProductAPI struct {
	mock.Mock
}

func (m *mockProductAPI) ListProducts(ctx context.Context, params pagination.Params) (pagination.Result[domain.Product], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(pagination.Result[domain.Product]), args.Error(1)
}

func (m *mockProductAPI) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductAPI) CreateProduct(ctx context.Context, input backend.CreateProductInput) (*domain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductAPI) UpdateProduct(ctx context.Context, id int64, payload backend.UpdateProductPayload) (*domain.Product, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductAPI) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrderAPI struct {
	mock.Mock
}

func (m *mockOrderAPI) ListOrders(ctx context.Context, params pagination.Params) (pagination.Result[domain.Order], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(pagination.Result[domain.Order]), args.Error(1)
}

func (m *mockOrderAPI) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type mockUserAPI struct {
	mock.Mock
}

func (m *mockUserAPI) ListUsers(ctx context.Context, params pagination.Params) (pagination.Result[domain.User], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(pagination.Result[domain.User]), args.Error(1)
}

func (m *mockUserAPI) CreateUser(ctx context.Context, payload backend.CreateUserPayload) (*domain.User, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserAPI) UpdateUser(ctx context.Context, payload backend.UpdateUserPayload) (*domain.User, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserAPI) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryAPI struct {
	mock.Mock
}

func (m *mockCategoryAPI) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryAPI) CreateCategory(ctx context.Context, payload backend.CreateCategoryPayload) (*domain.Category, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

type mockRoleAPI struct {
	mock.Mock
}

func (m *mockRoleAPI) ListRoles(ctx context.Context, params pagination.Params) (pagination.Result[domain.Role], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(pagination.Result[domain.Role]), args.Error(1)
}

func (m *mockRoleAPI) CreateRole(ctx context.Context, payload backend.CreateRolePayload) (*domain.Role, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *mockRoleAPI) UpdateRole(ctx context.Context, payload backend.UpdateRolePayload) (*domain.Role, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *mockRoleAPI) DeleteRole(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock file storage ---

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) UploadMany(ctx context.Context, files []domain.FileUpload) ([]string, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockFileStorage) Delete(ctx context.Context, fileURL string) error {
	args := m.Called(ctx, fileURL)
	return args.Error(0)
}

// --- Mock cache store ---

type mockCacheStore struct {
	mock.Mock
}

func (m *mockCacheStore) Get(ctx context.Context, key string, out any) (bool, error) {
	args := m.Called(ctx, key, out)
	return args.Bool(0), args.Error(1)
}

func (m *mockCacheStore) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockCacheStore) Invalidate(ctx context.Context, prefixes ...string) error {
	args := m.Called(ctx, prefixes)
	return args.Error(0)
}

// missCache expects any reads to miss and any writes and invalidations to
// succeed, for tests that do not assert on cache behavior.
func missCache() *mockCacheStore {
	store := new(mockCacheStore)
	store.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()
	store.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("Invalidate", mock.Anything, mock.Anything).Return(nil).Maybe()
	return store
}

// --- Test helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestProducer() *event.Producer {
	logger := newTestLogger()
	// No broker runs in tests; publishes fail and are logged by the caller.
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}
