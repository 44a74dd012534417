package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

// MetricHandler metric module HTTP handler
type MetricHandler struct {
	metricSvc service.MetricService
	logger    *zap.Logger
}

// NewMetricHandler creates a MetricHandler
func NewMetricHandler(metricSvc service.MetricService, logger *zap.Logger) *MetricHandler {
	return &MetricHandler{metricSvc: metricSvc, logger: logger}
}

// ListMetrics lists metrics, optionally by team and type
// GET /metrics?team_id=&metric_type=
func (h *MetricHandler) ListMetrics(c *gin.Context) {
	var query dto.MetricListQuery
	if !BindQuery(c, &query) {
		return
	}

	metrics, err := h.metricSvc.List(c.Request.Context(), &query)
	if err != nil {
		WriteError(c, h.logger, codeMetric, err)
		return
	}
	response.OK(c, metrics)
}

// CreateMetric records a metric
// POST /metrics
func (h *MetricHandler) CreateMetric(c *gin.Context) {
	var req dto.CreateMetricRequest
	if !BindJSON(c, &req) {
		return
	}

	metric, err := h.metricSvc.Create(c.Request.Context(), &req)
	if err != nil {
		WriteError(c, h.logger, codeMetric, err)
		return
	}
	response.Created(c, metric)
}
