package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configures cross-origin access for the REST mock. json-server is
// wide open by default and browser clients depend on that, so the policy
// here is deliberately permissive.
func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
		MaxAge:          24 * time.Hour,
	}
	return cors.New(cfg)
}
