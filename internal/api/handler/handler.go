package handler

import (
	"go.uber.org/zap"

	"swimtrack/backend/internal/service"
)

// Module business codes carried in error envelopes.
const (
	codeTeam       = 11001
	codeAthlete    = 12001
	codeSession    = 13001
	codeAttendance = 13101
	codeNote       = 14001
	codeMetric     = 15001
	codeReport     = 16001
	codeExport     = 16101
)

// Handler aggregates every HTTP handler
type Handler struct {
	Dashboard *DashboardHandler
	Team      *TeamHandler
	Athlete   *AthleteHandler
	Session   *SessionHandler
	Metric    *MetricHandler
	Report    *ReportHandler
	Note      *NoteHandler
	Calendar  *CalendarHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Dashboard: NewDashboardHandler(svc.Dashboard, logger),
		Team:      NewTeamHandler(svc.Team, logger),
		Athlete:   NewAthleteHandler(svc.Athlete, logger),
		Session:   NewSessionHandler(svc.Session, logger),
		Metric:    NewMetricHandler(svc.Metric, logger),
		Report:    NewReportHandler(svc.Report, svc.Export, logger),
		Note:      NewNoteHandler(svc.Note, logger),
		Calendar:  NewCalendarHandler(svc.Calendar, logger),
	}
}
