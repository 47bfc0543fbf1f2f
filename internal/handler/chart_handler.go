package handler

import (
	"bytes"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/recyclelens/backend-go/internal/service"
	"github.com/recyclelens/backend-go/pkg/response"
)

// ChartHandler renders the analytics views as self-contained HTML charts,
// for embedding in the dashboard via iframes.
type ChartHandler struct {
	service *service.HistoryService
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(service *service.HistoryService) *ChartHandler {
	return &ChartHandler{service: service}
}

// Distribution handles GET /charts/distribution: a bar chart of detections
// per category, labeled with each category's percentage.
func (h *ChartHandler) Distribution(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	rows, _, err := h.service.Distribution(c.Request.Context(), filter)
	if err != nil {
		response.BadGateway(c, "detection store unavailable")
		return
	}

	x := make([]string, 0, len(rows))
	y := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		x = append(x, row.Category)
		y = append(y, opts.BarData{
			Value: row.Count,
			Name:  fmt.Sprintf("%s (%.1f%%)", row.Category, row.Percentage),
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Waste Category Distribution", Width: "100%", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: "Waste Category Distribution", Subtitle: "Share of detections per category"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("detections", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	renderPage(c, bar)
}

// Hotspots handles GET /charts/hotspots: a scatter of grid cells in
// lon/lat space, symbol size scaled by the dominant category's count.
func (h *ChartHandler) Hotspots(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	hotspots, _, err := h.service.Hotspots(c.Request.Context(), filter)
	if err != nil {
		response.BadGateway(c, "detection store unavailable")
		return
	}
	if len(hotspots) == 0 {
		response.NotFound(c, "no valid location data")
		return
	}

	data := make([]opts.ScatterData, 0, len(hotspots))
	for _, hs := range hotspots {
		data = append(data, opts.ScatterData{
			Name:       fmt.Sprintf("%s: %d item(s)", hs.DominantCategory, hs.DominantCount),
			Value:      []interface{}{hs.Longitude, hs.Latitude},
			SymbolSize: 5 + hs.DominantCount*2,
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Waste Hotspots", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Waste Hotspots", Subtitle: fmt.Sprintf("%d grid cell(s), larger circles mean higher counts", len(hotspots))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Scale: opts.Bool(true)}),
	)
	scatter.AddSeries("hotspots", data)

	renderPage(c, scatter)
}

func renderPage(c *gin.Context, chart components.Charter) {
	page := components.NewPage()
	page.AddCharts(chart)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		response.InternalError(c, "chart render failed")
		return
	}
	c.Data(200, "text/html; charset=utf-8", buf.Bytes())
}
