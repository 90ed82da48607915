package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dcastillo/connector/internal/models"
	pkghttp "github.com/dcastillo/connector/pkg/http"
)

// contextKey is a custom type for context keys
type contextKey string

const (
	// UsernameContextKey is the key for storing the authenticated username in context
	UsernameContextKey contextKey = "username"
)

// Middleware validates bearer tokens and injects the authenticated username
// into the request context.
func Middleware(tm *TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				pkghttp.WriteUnauthorized(w, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				pkghttp.WriteUnauthorized(w, "invalid authorization header format")
				return
			}

			username, err := tm.Authenticate(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, models.ErrUnauthorized) {
					pkghttp.WriteUnauthorized(w, "invalid token")
					return
				}
				pkghttp.WriteInternalError(w, "unable to verify token")
				return
			}

			ctx := context.WithValue(r.Context(), UsernameContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the authenticated username, or "" if the
// request did not pass through Middleware.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(UsernameContextKey).(string)
	return username
}
