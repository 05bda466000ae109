package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const msgCORSRejected = "CORS policy: Request not allowed"

// corsMiddleware manages headers and preflight for the allowed origins.
func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = h.allowedOrigins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

// rejectDisallowedOrigins aborts browser requests from origins outside the
// allow-list with the JSON error envelope. Requests without an Origin
// header (curl, native clients) pass through untouched.
func (h *Handler) rejectDisallowedOrigins() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(h.allowedOrigins))
	for _, o := range h.allowedOrigins {
		allowed[o] = struct{}{}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if _, ok := allowed[origin]; !ok {
			if h.log != nil {
				h.log.Infow("cors_origin_rejected", "origin", origin)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": msgCORSRejected,
			})
			return
		}
		c.Next()
	}
}
