package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/recyclelens/backend-go/internal/models"
	"github.com/recyclelens/backend-go/internal/service"
	"github.com/recyclelens/backend-go/pkg/response"
)

// HistoryHandler serves the detection history and analytics views.
type HistoryHandler struct {
	service *service.HistoryService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(service *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// storeWarning is the reported message when a view was computed from an
// empty fallback snapshot because the store could not be read.
const storeWarning = "detection store unreachable, showing empty history"

func bindFilter(c *gin.Context) (models.HistoryFilter, bool) {
	var filter models.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return filter, false
	}
	return filter, true
}

// respond wraps a view result, downgrading a store read failure to a warning
// instead of an error: the view stays usable, just empty.
func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		response.Degraded(c, data, storeWarning)
		return
	}
	response.Success(c, data)
}

// List handles GET /api/v1/history.
func (h *HistoryHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	records, err := h.service.History(c.Request.Context(), filter)
	respond(c, gin.H{"records": records, "count": len(records)}, err)
}

// Distribution handles GET /api/v1/history/distribution.
func (h *HistoryHandler) Distribution(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	rows, insights, err := h.service.Distribution(c.Request.Context(), filter)
	respond(c, gin.H{"distribution": rows, "insights": insights}, err)
}

// Hotspots handles GET /api/v1/history/hotspots.
func (h *HistoryHandler) Hotspots(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	hotspots, insights, err := h.service.Hotspots(c.Request.Context(), filter)
	respond(c, gin.H{"hotspots": hotspots, "insights": insights}, err)
}

// MapView handles GET /api/v1/history/mapview.
func (h *HistoryHandler) MapView(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	view, err := h.service.MapView(c.Request.Context(), filter)
	respond(c, view, err)
}
