package http_cors_middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const devClient = "http://localhost:5173"

// AllowClient lets the web client served from origins call the API with
// credentials. The local dev server is always allowed.
func AllowClient(origins ...string) gin.HandlerFunc {
	allowed := []string{devClient}
	for _, o := range origins {
		if o != "" && !slices.Contains(allowed, o) {
			allowed = append(allowed, o)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins: allowed,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
