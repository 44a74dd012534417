package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

const calendarContentType = "text/calendar; charset=utf-8"

// CalendarHandler calendar feed HTTP handler
type CalendarHandler struct {
	calendarSvc service.CalendarService
	logger      *zap.Logger
}

// NewCalendarHandler creates a CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc, logger: logger}
}

// SessionsFeed serves sessions as an iCalendar feed
// GET /calendar/sessions.ics?team_id=
func (h *CalendarHandler) SessionsFeed(c *gin.Context) {
	var query dto.CalendarQuery
	if !BindQuery(c, &query) {
		return
	}

	feed, err := h.calendarSvc.SessionsICS(c.Request.Context(), query.TeamID)
	if err != nil {
		WriteError(c, h.logger, response.CodeInternalError, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="sessions.ics"`)
	c.Data(http.StatusOK, calendarContentType, []byte(feed))
}
