package handlers

import (
	"autfiles/internal/logger"
	"autfiles/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	allowedOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, allowedOrigins []string) *Handler {
	return &Handler{services: services, log: log, allowedOrigins: allowedOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Cross-origin policy: reject disallowed browser origins with a JSON
	// body, then let the CORS middleware manage headers and preflight.
	router.Use(h.rejectDisallowedOrigins(), h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.registerAPIRoutes(router)
	h.registerClientRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/signup", h.signUp)
		api.POST("/login", h.logIn)
		api.GET("/health", h.health)
		api.GET("/protected", h.authTokenMiddleware, h.protected)
	}
}

// registerClientRoutes serves the static single-page client. The client's
// local token gate is a convenience only; the Bearer middleware remains the
// authoritative check.
func (h *Handler) registerClientRoutes(r *gin.Engine) {
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/app.js", "./web/app.js")
	r.StaticFile("/styles.css", "./web/styles.css")
}
