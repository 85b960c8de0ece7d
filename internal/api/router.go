package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tvdheuvel/incidents-backend-go/internal/config"
	"github.com/tvdheuvel/incidents-backend-go/internal/handler"
	"github.com/tvdheuvel/incidents-backend-go/internal/middleware"
	"github.com/tvdheuvel/incidents-backend-go/internal/service"
)

// SetupRouter wires the middleware and dashboard endpoints
func SetupRouter(cfg *config.Config, svc *service.DashboardService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS: the dashboard frontend is served from a different origin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Incident dashboard API is running",
		})
	})

	dashboard := handler.NewDashboardHandler(svc)
	admin := handler.NewAdminHandler(svc)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	{
		api.GET("/timeseries", dashboard.GetTimeSeries)
		api.GET("/choropleth", dashboard.GetChoropleth)
		api.GET("/incident-types", dashboard.GetIncidentTypes)
		api.GET("/feasibility", dashboard.GetFeasibility)
		api.GET("/slider", dashboard.GetSliderParams)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.Auth(cfg.JWTSecret))
		{
			adminGroup.POST("/reload", admin.Reload)
		}
	}

	return r
}
