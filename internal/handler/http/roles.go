package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TVAexe/ar-fe-admin/pkg/httputil"
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"
	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/service"
)

// RoleHandler handles HTTP requests for role endpoints.
type RoleHandler struct {
	service *service.RoleService
	logger  *slog.Logger
}

// NewRoleHandler creates a new role HTTP handler.
func NewRoleHandler(svc *service.RoleService, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/admin/roles.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "roles fetched", page)
}

// Create handles POST /api/v1/admin/roles.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.RoleInput
	if err := pkgvalidator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	role, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, "role created", role)
}

// Update handles PUT /api/v1/admin/roles/{id}.
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req service.RoleInput
	if err := pkgvalidator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	role, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "role updated", role)
}

// Delete handles DELETE /api/v1/admin/roles/{id}.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "role deleted", nil)
}
