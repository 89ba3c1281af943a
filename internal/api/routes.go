package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints. generateMiddleware is applied only
// to the generation route, which is the one that spends money on AI calls.
func RegisterRoutes(router *gin.Engine, h *APIHandler, generateMiddleware ...gin.HandlerFunc) {
	apiGroup := router.Group("/api")
	{
		generate := append([]gin.HandlerFunc{}, generateMiddleware...)
		generate = append(generate, h.GenerateLandingPage)
		apiGroup.POST("/generate-landing-page", generate...)
		apiGroup.GET("/landing-pages", h.ListLandingPages)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
