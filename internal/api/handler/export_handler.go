package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler report module HTTP handler
type ReportHandler struct {
	reportSvc service.ReportService
	exportSvc service.ExportService
	logger    *zap.Logger
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(reportSvc service.ReportService, exportSvc service.ExportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, exportSvc: exportSvc, logger: logger}
}

// ListReports lists all reports
// GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportSvc.List(c.Request.Context())
	if err != nil {
		WriteError(c, h.logger, codeReport, err)
		return
	}
	response.OK(c, reports)
}

// ExportReports downloads reports and sessions as a workbook
// GET /reports/export
func (h *ReportHandler) ExportReports(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportReports(c.Request.Context())
	if err != nil {
		WriteError(c, h.logger, codeExport, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
