package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// RoleRef references a role by id inside user payloads.
type RoleRef struct {
	ID int64 `json:"id"`
}

// CreateUserPayload is the JSON body of a user creation.
type CreateUserPayload struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	PhoneNumber string  `json:"phoneNumber"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	Address     string  `json:"address"`
	Role        RoleRef `json:"role"`
}

// UpdateUserPayload is the JSON body of a user update. The backend routes
// updates by the id in the body, not the path. Password is sent only when a
// reset is requested.
type UpdateUserPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	PhoneNumber string  `json:"phoneNumber"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	Address     string  `json:"address"`
	Role        RoleRef `json:"role"`
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, params pagination.Params) (pagination.Result[domain.User], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))

	var data listData[domain.User]
	if err := c.doJSON(ctx, http.MethodGet, "/users", query, nil, &data); err != nil {
		return pagination.Result[domain.User]{}, err
	}

	return pagination.NewResult(data.Result, data.Meta), nil
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, payload CreateUserPayload) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user.
func (c *Client) UpdateUser(ctx context.Context, payload UpdateUserPayload) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPut, "/users", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
