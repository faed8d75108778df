package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/unigrade-backend/internal/response"
	"github.com/stemsi/unigrade-backend/internal/service"
)

// DashboardHandler serves admin dashboard figures.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats godoc
// GET /api/v1/admin/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetSystemStats(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
