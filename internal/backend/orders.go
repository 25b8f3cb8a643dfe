package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

// ListOrders fetches one page of orders from the admin order surface.
func (c *Client) ListOrders(ctx context.Context, params pagination.Params) (pagination.Result[domain.Order], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))

	var data listData[domain.Order]
	if err := c.doJSON(ctx, http.MethodGet, "/orders/admin/all-orders", query, nil, &data); err != nil {
		return pagination.Result[domain.Order]{}, err
	}

	return pagination.NewResult(data.Result, data.Meta), nil
}

// UpdateOrderStatus sets a new status on the order. The backend re-validates
// the transition; this client does not.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	payload := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: status}

	var order domain.Order
	path := "/orders/admin/" + strconv.FormatInt(orderID, 10) + "/status"
	if err := c.doJSON(ctx, http.MethodPut, path, nil, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
