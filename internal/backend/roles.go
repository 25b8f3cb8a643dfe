package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// CreateRolePayload is the JSON body of a role creation.
type CreateRolePayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// UpdateRolePayload is the JSON body of a role update; the id travels in the
// body like user updates.
type UpdateRolePayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// ListRoles fetches one page of roles.
func (c *Client) ListRoles(ctx context.Context, params pagination.Params) (pagination.Result[domain.Role], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))

	var data listData[domain.Role]
	if err := c.doJSON(ctx, http.MethodGet, "/roles", query, nil, &data); err != nil {
		return pagination.Result[domain.Role]{}, err
	}

	return pagination.NewResult(data.Result, data.Meta), nil
}

// CreateRole creates a new role.
func (c *Client) CreateRole(ctx context.Context, payload CreateRolePayload) (*domain.Role, error) {
	var role domain.Role
	if err := c.doJSON(ctx, http.MethodPost, "/roles", nil, payload, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole updates an existing role.
func (c *Client) UpdateRole(ctx context.Context, payload UpdateRolePayload) (*domain.Role, error) {
	var role domain.Role
	if err := c.doJSON(ctx, http.MethodPut, "/roles", nil, payload, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes a role by id.
func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/roles/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
