package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware enforcing the configured origin allow-list
// with credentials enabled. Methods mirror what the API serves; no
// wildcard origins, since credentialed requests forbid them.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
