package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tvdheuvel/incidents-backend-go/internal/aggregate"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
	"github.com/tvdheuvel/incidents-backend-go/internal/service"
	"github.com/tvdheuvel/incidents-backend-go/pkg/response"
)

// DashboardHandler handles HTTP requests for dashboard data
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetTimeSeries handles GET /api/v1/timeseries
func (h *DashboardHandler) GetTimeSeries(c *gin.Context) {
	var req models.TimeSeriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if req.Pattern == "" {
		req.Pattern = string(aggregate.PatternDaily)
	}
	if req.Agg == "" {
		req.Agg = string(aggregate.AggHour)
	}
	if len(req.Types) == 0 {
		req.Types = h.service.IncidentTypes()
	}

	result, err := h.service.TimeSeries(req)
	if errors.Is(err, aggregate.ErrUnsupportedCombination) {
		response.BadRequest(c, err.Error(), nil)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to aggregate time series", err)
		return
	}

	response.Success(c, result)
}

// GetChoropleth handles GET /api/v1/choropleth
func (h *DashboardHandler) GetChoropleth(c *gin.Context) {
	var req models.ChoroplethRequest
	req.Value = -1
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if req.Unit == "" {
		req.Unit = string(aggregate.UnitHour)
	}
	if len(req.Types) == 0 {
		req.Types = h.service.IncidentTypes()
	}

	fc, err := h.service.Choropleth(req)
	if errors.Is(err, aggregate.ErrUnsupportedCombination) {
		response.BadRequest(c, err.Error(), nil)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to aggregate choropleth", err)
		return
	}

	// GeoJSON is handed to the map source as-is, without the envelope.
	c.JSON(http.StatusOK, fc)
}

// GetIncidentTypes handles GET /api/v1/incident-types
func (h *DashboardHandler) GetIncidentTypes(c *gin.Context) {
	response.Success(c, h.service.IncidentTypes())
}

// GetFeasibility handles GET /api/v1/feasibility
func (h *DashboardHandler) GetFeasibility(c *gin.Context) {
	pattern := c.DefaultQuery("pattern", string(aggregate.PatternDaily))
	agg := c.Query("agg")
	group := c.Query("group")

	result, err := h.service.Feasibility(pattern, agg, group)
	if errors.Is(err, aggregate.ErrUnsupportedCombination) {
		response.BadRequest(c, err.Error(), nil)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to check feasibility", err)
		return
	}

	response.Success(c, result)
}

// GetSliderParams handles GET /api/v1/slider
func (h *DashboardHandler) GetSliderParams(c *gin.Context) {
	pattern := c.DefaultQuery("pattern", string(aggregate.PatternDaily))

	params, err := h.service.SliderParams(pattern)
	if errors.Is(err, aggregate.ErrUnsupportedCombination) {
		response.BadRequest(c, err.Error(), nil)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to resolve slider parameters", err)
		return
	}

	response.Success(c, params)
}
