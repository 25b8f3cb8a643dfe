package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKeyType string

const tokenKey contextKeyType = "bearer_token"

// RequireToken ensures the request carries a bearer token and stores the raw
// token in the request context so upstream calls can forward it. The token is
// not verified locally; authorization is enforced by the catalog backend.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			writeAuthError(w, "invalid authorization header format")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), parts[1])))
	})
}

// WithToken returns a context carrying a raw bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext extracts the bearer token stored by RequireToken.
// It returns an empty string when no token is present.
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey).(string); ok {
		return token
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": http.StatusUnauthorized,
		"error":      "UNAUTHORIZED",
		"message":    message,
		"data":       nil,
	})
}
