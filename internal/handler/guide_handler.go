package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/recyclelens/backend-go/internal/waste"
	"github.com/recyclelens/backend-go/pkg/response"
)

// GuideHandler serves the recycling guidance for the fixed category set.
type GuideHandler struct{}

// NewGuideHandler creates a new guide handler.
func NewGuideHandler() *GuideHandler {
	return &GuideHandler{}
}

// List handles GET /api/v1/guide.
func (h *GuideHandler) List(c *gin.Context) {
	response.Success(c, gin.H{
		"categories": waste.Categories,
		"guides":     waste.AllGuides(),
	})
}

// Get handles GET /api/v1/guide/:category.
func (h *GuideHandler) Get(c *gin.Context) {
	entry, ok := waste.Guide(c.Param("category"))
	if !ok {
		response.NotFound(c, "unknown waste category")
		return
	}
	response.Success(c, entry)
}
