package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/TVAexe/ar-fe-admin/pkg/errors"
	"github.com/TVAexe/ar-fe-admin/pkg/logger"
	"github.com/TVAexe/ar-fe-admin/pkg/validator"
)

// Response is the JSON envelope shared with the catalog backend, so the
// dashboard reads identical shapes from both. Error is null on success and
// holds a stable error code on failure.
type Response struct {
	StatusCode int     `json:"statusCode"`
	Error      *string `json:"error"`
	Message    string  `json:"message"`
	Data       any     `json:"data"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, the error is logged but headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope with the given status, message and payload.
func WriteData(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Response{
		StatusCode: status,
		Error:      nil,
		Message:    message,
		Data:       data,
	})
}

// WriteError writes an error envelope based on the error type. It handles
// AppError and the sentinel errors, and logs internal server errors. It
// prefers the request-scoped logger from context (set by the RequestLogger
// middleware) over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	// Prefer the request-scoped logger (enriched with correlation_id, user_id,
	// trace_id, span_id) if the RequestLogger middleware has been mounted.
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		code = appErr.Code
		message = appErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = "NOT_FOUND"
		message = "resource not found"
	case errors.Is(err, apperrors.ErrAlreadyExists):
		code = "ALREADY_EXISTS"
		message = "resource already exists"
	case errors.Is(err, apperrors.ErrInvalidInput):
		code = "INVALID_INPUT"
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, Response{
		StatusCode: status,
		Error:      &code,
		Message:    message,
		Data:       nil,
	})
}

// WriteValidationError writes an error envelope for a failed request
// validation. Field-level errors from the validator are returned in data.
func WriteValidationError(w http.ResponseWriter, err error) {
	code := "VALIDATION_ERROR"

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusBadRequest, Response{
			StatusCode: http.StatusBadRequest,
			Error:      &code,
			Message:    "request validation failed",
			Data:       map[string]any{"fields": valErr.Fields()},
		})
		return
	}

	code = "INVALID_INPUT"
	WriteJSON(w, http.StatusBadRequest, Response{
		StatusCode: http.StatusBadRequest,
		Error:      &code,
		Message:    err.Error(),
		Data:       nil,
	})
}

// ParseID validates that the given path parameter is a positive integer ID.
// If invalid, it writes a 400 response and returns false, signaling the
// caller to return early.
func ParseID(w http.ResponseWriter, param string) (int64, bool) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		code := "INVALID_PARAMETER"
		WriteJSON(w, http.StatusBadRequest, Response{
			StatusCode: http.StatusBadRequest,
			Error:      &code,
			Message:    "invalid id: " + param,
			Data:       nil,
		})
		return 0, false
	}
	return id, true
}
