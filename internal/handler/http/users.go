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

// UserHandler handles HTTP requests for user endpoints.
type UserHandler struct {
	service *service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user HTTP handler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "users fetched", page)
}

// Create handles POST /api/v1/admin/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserInput
	if err := pkgvalidator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, "user created", user)
}

// Update handles PUT /api/v1/admin/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req service.UpdateUserInput
	if err := pkgvalidator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	user, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "user updated", user)
}

// Delete handles DELETE /api/v1/admin/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "user deleted", nil)
}
