package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recyclelens/backend-go/internal/service"
	"github.com/recyclelens/backend-go/internal/store"
	"github.com/recyclelens/backend-go/pkg/response"
)

// DetectHandler handles image classification and detection saves.
type DetectHandler struct {
	service *service.DetectionService
}

// NewDetectHandler creates a new detect handler.
func NewDetectHandler(service *service.DetectionService) *DetectHandler {
	return &DetectHandler{service: service}
}

// Detect handles POST /api/v1/detect. The "image" multipart field carries a
// JPEG or PNG photo of the waste item.
func (h *DetectHandler) Detect(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "missing image file")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.BadRequest(c, "unreadable image file")
		return
	}
	defer f.Close()

	result, err := h.service.Detect(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "classification failed: "+err.Error())
		return
	}

	response.Success(c, result)
}

// SaveRequest is the body of POST /api/v1/detections. Coordinates are
// optional; absent ones default to the (0,0) "no location" sentinel.
type SaveRequest struct {
	Category   string  `json:"category" binding:"required"`
	Confidence float64 `json:"confidence" binding:"min=0,max=100"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Save handles POST /api/v1/detections.
func (h *DetectHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid detection payload: "+err.Error())
		return
	}

	err := h.service.Save(c.Request.Context(), req.Category, req.Confidence, req.Latitude, req.Longitude)
	if errors.Is(err, store.ErrStoreUnavailable) {
		response.BadGateway(c, "detection store unavailable, record not saved")
		return
	}
	if err != nil {
		response.InternalError(c, "failed to save detection")
		return
	}

	response.Success(c, gin.H{"saved": true})
}
