package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

// DashboardHandler dashboard HTTP handler
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	logger       *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, logger: logger}
}

// GetDashboard returns the aggregated overview
// GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardSvc.Get(c.Request.Context())
	if err != nil {
		WriteError(c, h.logger, response.CodeInternalError, err)
		return
	}
	response.OK(c, dashboard)
}
