package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/recyclelens/backend-go/internal/config"
	"github.com/recyclelens/backend-go/internal/handler"
	"github.com/recyclelens/backend-go/internal/middleware"
	"github.com/recyclelens/backend-go/internal/service"
)

// SetupRouter wires the middleware stack and all routes.
func SetupRouter(cfg *config.Config, logger *logrus.Logger, detection *service.DetectionService, histSvc *service.HistoryService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.NewMetrics("recyclelens").Handler())

	// CORS for the browser dashboard.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "RecycleLens backend is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	detect := handler.NewDetectHandler(detection)
	hist := handler.NewHistoryHandler(histSvc)
	guide := handler.NewGuideHandler()
	chart := handler.NewChartHandler(histSvc)

	api := r.Group("/api/v1")
	{
		api.POST("/detect",
			middleware.RateLimit(cfg.UploadRateLimit, cfg.UploadRateWindow),
			detect.Detect)
		api.POST("/detections", detect.Save)

		history := api.Group("/history")
		{
			history.GET("", hist.List)
			history.GET("/distribution", hist.Distribution)
			history.GET("/hotspots", hist.Hotspots)
			history.GET("/mapview", hist.MapView)
		}

		api.GET("/guide", guide.List)
		api.GET("/guide/:category", guide.Get)
	}

	chartsGroup := r.Group("/charts")
	{
		chartsGroup.GET("/distribution", chart.Distribution)
		chartsGroup.GET("/hotspots", chart.Hotspots)
	}

	return r
}
