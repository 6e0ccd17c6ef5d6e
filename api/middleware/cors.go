package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware that accepts cross-origin requests from any
// origin. The API serves browser frontends hosted anywhere; credentials ride
// in the Authorization header, not cookies.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
