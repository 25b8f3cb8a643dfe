package http

import (
	"log/slog"
	"net/http"

	"github.com/TVAexe/ar-fe-admin/pkg/httputil"
	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/service"
)

// CategoryHandler handles HTTP requests for category endpoints.
type CategoryHandler struct {
	service *service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category HTTP handler.
func NewCategoryHandler(svc *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/admin/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "categories fetched", categories)
}

// Create handles POST /api/v1/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCategoryInput
	if err := pkgvalidator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	category, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, "category created", category)
}
