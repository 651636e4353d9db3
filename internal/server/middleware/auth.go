package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/admindesk/admindesk/internal/model"
	"github.com/admindesk/admindesk/internal/service"
)

type contextKeyAuth string

// AdminKey is the context key for the authenticated admin.
const AdminKey contextKeyAuth = "admin"

// Authenticate validates the Bearer token on every request it wraps. A token
// passes only if its signature and expiry verify and it still matches the
// session stored on the admin record, so logged-out and superseded tokens are
// rejected even before they expire. On success the admin is attached to the
// request context; on failure a 401 envelope is returned.
func Authenticate(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, "authentication required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			admin, err := authSvc.VerifyToken(r.Context(), token)
			if err != nil {
				writeAuthError(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin extracts the authenticated admin from the context. Returns nil on
// an unauthenticated request.
func GetAdmin(ctx context.Context) *model.Admin {
	if a, ok := ctx.Value(AdminKey).(*model.Admin); ok {
		return a
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(model.Response{
		Status:  http.StatusUnauthorized,
		Data:    "",
		Message: message,
		Error:   "unauthorized",
	})
}
