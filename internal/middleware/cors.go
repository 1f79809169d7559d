package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser dashboards served from origins to call the API.
// An empty origins list allows no cross-origin callers.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	switch {
	case len(origins) == 0:
		cfg.AllowOriginFunc = func(string) bool { return false }
	case slices.Contains(origins, "*"):
		cfg.AllowAllOrigins = true
	default:
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
