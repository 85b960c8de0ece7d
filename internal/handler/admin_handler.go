package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tvdheuvel/incidents-backend-go/internal/service"
	"github.com/tvdheuvel/incidents-backend-go/pkg/response"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	service *service.DashboardService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *service.DashboardService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Reload handles POST /api/v1/admin/reload
func (h *AdminHandler) Reload(c *gin.Context) {
	if err := h.service.Reload(); err != nil {
		response.InternalError(c, "Failed to reload dataset", err)
		return
	}

	ds := h.service.Dataset()
	response.Success(c, gin.H{
		"incidents": len(ds.Incidents),
		"zones":     len(ds.Zones),
		"types":     len(ds.Types),
	})
}
