package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/pkordes/big-trip/internal/api"
)

// NewAuthHandler returns a middleware that requires every request to carry
// exactly token in its Authorization header. Paths listed in public, such as
// the health check, are let through. An empty token disables the check.
func NewAuthHandler(token string, public ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		want := []byte(token)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || slices.Contains(public, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			got := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeError writes the API error envelope. Middleware runs before any
// handler, so it cannot reuse the handler package helpers.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: message}})
}
