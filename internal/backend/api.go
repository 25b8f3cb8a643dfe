package backend

import (
	"context"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// ProductAPI is the catalog surface the product service depends on.
type ProductAPI interface {
	ListProducts(ctx context.Context, params pagination.Params) (pagination.Result[domain.Product], error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload UpdateProductPayload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CategoryAPI is the catalog surface the category service depends on.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, payload CreateCategoryPayload) (*domain.Category, error)
}

// OrderAPI is the catalog surface the order service depends on.
type OrderAPI interface {
	ListOrders(ctx context.Context, params pagination.Params) (pagination.Result[domain.Order], error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error)
}

// UserAPI is the catalog surface the user service depends on.
type UserAPI interface {
	ListUsers(ctx context.Context, params pagination.Params) (pagination.Result[domain.User], error)
	CreateUser(ctx context.Context, payload CreateUserPayload) (*domain.User, error)
	UpdateUser(ctx context.Context, payload UpdateUserPayload) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// RoleAPI is the catalog surface the role service depends on.
type RoleAPI interface {
	ListRoles(ctx context.Context, params pagination.Params) (pagination.Result[domain.Role], error)
	CreateRole(ctx context.Context, payload CreateRolePayload) (*domain.Role, error)
	UpdateRole(ctx context.Context, payload UpdateRolePayload) (*domain.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

var (
	_ ProductAPI  = (*Client)(nil)
	_ CategoryAPI = (*Client)(nil)
	_ OrderAPI    = (*Client)(nil)
	_ UserAPI     = (*Client)(nil)
	_ RoleAPI     = (*Client)(nil)
)
