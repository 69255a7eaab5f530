// Package middleware provides reusable HTTP middleware for the Big Trip API.
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

const corsMaxAge = 10 * time.Minute

// NewCORSHandler lets the browser client served from allowedOrigins call the
// API. Entries are full origins; "*" allows any origin and
// "https://*.example.com" any subdomain. An empty list disables CORS.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		// The CSV export names its file in Content-Disposition.
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         int(corsMaxAge / time.Second),
	}).Handler
}
