package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	msgHealthy       = "Server is healthy"
	msgProtectedData = "This is protected data"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   msgHealthy,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary      Protected resource
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, message, user, timestamp"
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /api/protected [get]
// @Security     BearerAuth
func (h *Handler) protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   msgProtectedData,
		"user":      gin.H{"userId": c.GetString(userIDKey)},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
