// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenAuthenticator resolves a bearer token to a user ID.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

// TokenAuth is a middleware that enforces bearer-token authentication.
//
// It expects an "Authorization: Bearer <token>" header, validates the token
// through the given authenticator and stores the resolved user ID in the
// request context for downstream handlers. Requests without a valid token
// receive a 401 with the standard error envelope.
func TokenAuth(auth TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized writes a 401 with the JSON error envelope.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Success: false,
		Message: message,
		Code:    http.StatusUnauthorized,
	})
}

// GetUserIDFromContext extracts the authenticated user ID from the request
// context. Returns 0 if not found.
func GetUserIDFromContext(ctx context.Context) int64 {
	val := ctx.Value(userKey)
	if id, ok := val.(int64); ok {
		return id
	}
	return 0
}
