package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// CreateProductInput is the multipart payload for creating a product.
type CreateProductInput struct {
	Name        string
	OldPrice    float64
	SaleRate    float64
	Quantity    int
	Description string
	CategoryID  int64
	Images      []domain.FileUpload
	ModelFile   *domain.FileUpload
}

// UpdateProductPayload is the JSON body of a product update. ImageURL is the
// full reconciled image list; ModelURL is omitted when the product has no
// 3D model.
type UpdateProductPayload struct {
	Name        string   `json:"name"`
	OldPrice    float64  `json:"oldPrice"`
	SaleRate    float64  `json:"saleRate"`
	Quantity    int      `json:"quantity"`
	Description string   `json:"description"`
	CategoryID  int64    `json:"categoryId"`
	ImageURL    []string `json:"imageUrl"`
	ModelURL    string   `json:"modelUrl,omitempty"`
}

// ListProducts fetches one page of products with their categories.
func (c *Client) ListProducts(ctx context.Context, params pagination.Params) (pagination.Result[domain.Product], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))

	var data listData[domain.Product]
	if err := c.doJSON(ctx, http.MethodGet, "/products/with-category", query, nil, &data); err != nil {
		return pagination.Result[domain.Product]{}, err
	}

	return pagination.NewResult(data.Result, data.Meta), nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct forwards a multipart product creation to the backend.
// The backend uploads the files itself and returns the stored product.
func (c *Client) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	fields := map[string]string{
		"name":        input.Name,
		"oldPrice":    strconv.FormatFloat(input.OldPrice, 'f', -1, 64),
		"saleRate":    strconv.FormatFloat(input.SaleRate, 'f', -1, 64),
		"quantity":    strconv.Itoa(input.Quantity),
		"description": input.Description,
		"categoryId":  strconv.FormatInt(input.CategoryID, 10),
	}

	files := map[string][]domain.FileUpload{
		"images": input.Images,
	}
	if input.ModelFile != nil {
		files["modelFile"] = []domain.FileUpload{*input.ModelFile}
	}

	var product domain.Product
	if err := c.doMultipart(ctx, http.MethodPost, "/products", fields, files, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the product's scalar fields, image list and model URL.
func (c *Client) UpdateProduct(ctx context.Context, id int64, payload UpdateProductPayload) (*domain.Product, error) {
	var product domain.Product
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+strconv.FormatInt(id, 10), nil, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
