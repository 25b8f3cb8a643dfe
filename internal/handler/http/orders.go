package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TVAexe/ar-fe-admin/pkg/httputil"
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"
	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// UpdateStatusRequest is the JSON request body for an order status change.
// The client sends the status it is looking at so the transition guard runs
// against the state the operator saw.
type UpdateStatusRequest struct {
	Status        string `json:"status" validate:"required"`
	CurrentStatus string `json:"currentStatus" validate:"required"`
}

// List handles GET /api/v1/admin/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "orders fetched", page)
}

// UpdateStatus handles PUT /api/v1/admin/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := pkgvalidator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.service.Transition(r.Context(), id,
		domain.OrderStatus(req.CurrentStatus), domain.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "order status updated", order)
}
