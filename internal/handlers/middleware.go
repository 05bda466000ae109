package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userId"

	msgTokenRequired = "Authorization token required"
	msgInvalidToken  = "Invalid or expired token"
)

// authTokenMiddleware gates protected routes on a Bearer token. A missing
// or structurally absent token is 401; a token that is present but fails
// verification (signature, expiry, malformed) is 403.
func (h *Handler) authTokenMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": msgTokenRequired,
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": msgTokenRequired,
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": msgInvalidToken,
		})
		return
	}

	// store in Gin context
	c.Set(userIDKey, userID)
	c.Next()
}
