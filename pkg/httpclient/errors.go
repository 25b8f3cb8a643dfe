package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/TVAexe/ar-fe-admin/pkg/errors"
)

// UpstreamErrorResponse mirrors the response envelope returned by the catalog
// backend and the file-storage API. On errors the `error` field carries a
// short error name and `message` a human-readable explanation.
type UpstreamErrorResponse struct {
	StatusCode int     `json:"statusCode"`
	Error      *string `json:"error"`
	Message    string  `json:"message"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an appropriate AppError. If the body matches the standard envelope,
// the upstream message is preserved; otherwise a generic error carries the
// status code and raw body.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", serviceName, resp.StatusCode, err)
	}

	var upstream UpstreamErrorResponse
	if json.Unmarshal(bodyBytes, &upstream) == nil && (upstream.Message != "" || upstream.Error != nil) {
		message := upstream.Message
		if message == "" && upstream.Error != nil {
			message = *upstream.Error
		}
		return mapUpstreamError(resp.StatusCode, message, serviceName)
	}

	// Fallback: unstructured error body.
	return fmt.Errorf("%s returned status %d: %s", serviceName, resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
}

// mapUpstreamError translates an upstream HTTP status code into an AppError
// that preserves the error semantics, so the status surfaces unchanged to the
// dashboard.
func mapUpstreamError(status int, message, serviceName string) error {
	if message == "" {
		message = fmt.Sprintf("%s request failed", serviceName)
	}

	switch {
	case status == http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case status == http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case status == http.StatusForbidden:
		return apperrors.Forbidden(message)
	case status == http.StatusNotFound:
		return apperrors.NotFoundMsg(message)
	case status == http.StatusConflict:
		return apperrors.Conflict(message)
	case status == http.StatusTooManyRequests:
		return apperrors.RateLimited(message)
	case status == http.StatusServiceUnavailable:
		return apperrors.ServiceUnavailable(message)
	case status >= 500:
		return fmt.Errorf("%s server error (%d): %s", serviceName, status, message)
	default:
		return &apperrors.AppError{
			Code:    "UPSTREAM_ERROR",
			Message: message,
			Status:  status,
		}
	}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
// Client errors mean the request itself was rejected; retrying or compensating
// is pointless.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
