package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/admindesk/admindesk/internal/model"
)

// Recover converts handler panics into a 500 envelope instead of tearing down
// the connection, logging the panic value and stack.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
						"stack", string(debug.Stack()),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(model.Response{
						Status:  http.StatusInternalServerError,
						Data:    "",
						Message: "internal error",
						Error:   "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
