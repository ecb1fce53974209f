package handlers

import (
	"net/http"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.corsMiddleware)

	// Unsupported method on a known path answers 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": errMsgMethodNotAllowed})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Live article feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsArticles)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", h.listArticles)
			articles.POST("", h.sessionRequired, h.createArticle)
			articles.PUT("", h.sessionRequired, h.updateArticle)
			articles.DELETE("", h.sessionRequired, h.deleteArticle)
		}

		api.GET("/auth", h.checkAuth)
		api.POST("/auth", h.authAction)

		api.POST("/contact", h.submitContact)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
