package http

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

// --- Mocks for the catalog surfaces handlers exercise ---

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

// noopCache never hits and swallows writes, so handler tests always exercise
// the backend path.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, out any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, value any) error       { return nil }
func (noopCache) Invalidate(ctx context.Context, prefixes ...string) error   { return nil }

// --- Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestProducer() *event.Producer {
	logger := newTestLogger()
	// No broker runs in tests; publishes fail and are logged by the caller.
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}
