package backend

import (
	"context"
	"net/http"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// CreateCategoryPayload is the JSON body of a category creation.
type CreateCategoryPayload struct {
	Name string `json:"name"`
}

// ListCategories fetches all categories. The endpoint is not paginated.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(ctx context.Context, payload CreateCategoryPayload) (*domain.Category, error) {
	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, payload, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
