package api

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/pipeline"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/types"
)

// SitePipeline is the generation dependency of the HTTP layer.
type SitePipeline interface {
	Run(ctx context.Context, description string, image *multipart.FileHeader) (pipeline.Result, error)
}

// PageLister enumerates previously generated assets.
type PageLister interface {
	List() ([]types.LandingPage, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline SitePipeline
	store    PageLister
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(p SitePipeline, store PageLister) *APIHandler {
	return &APIHandler{pipeline: p, store: store}
}

// POST /api/generate-landing-page
// Multipart form: required text field "description", optional file field "image".
func (h *APIHandler) GenerateLandingPage(c *gin.Context) {
	description := c.PostForm("description")

	var image *multipart.FileHeader
	if fh, err := c.FormFile("image"); err == nil {
		image = fh
	}

	result, err := h.pipeline.Run(c.Request.Context(), description, image)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format. Description is required.",
			})
		case errors.Is(err, pipeline.ErrInvalidUpload):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid image upload",
				"details": err.Error(),
			})
		default:
			log.Printf("Error generating landing page: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Error processing your request",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fileUrl": result.FileURL,
		"message": "Landing page generated successfully",
	})
}

// GET /api/landing-pages
func (h *APIHandler) ListLandingPages(c *gin.Context) {
	pages, err := h.store.List()
	if err != nil {
		log.Printf("Error getting landing pages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error getting landing pages list",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"pages":   pages,
	})
}
