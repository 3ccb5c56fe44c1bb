package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/homegrown/pkg/auth"
	"github.com/shashiranjanraj/homegrown/pkg/response"
)

type userIDKey struct{}
type roleKey struct{}

// Auth validates the Bearer token and stores the caller's user ID and role
// in the request context for downstream handlers and rbac.HasRole.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		ctx = context.WithValue(ctx, roleKey{}, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromCtx returns the authenticated user's ID set by Auth.
func UserIDFromCtx(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(userIDKey{}).(string)
	return id, ok && id != ""
}

// RoleFromCtx returns the authenticated user's role set by Auth.
func RoleFromCtx(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(roleKey{}).(string)
	return role, ok && role != ""
}
