package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the single front-end origin, with credentials, the
// methods the API exposes and the Authorization header.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler
}
