package service

import (
	"time"

	"go.uber.org/zap"

	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

// Clock returns the current instant. Injected so "today" is testable.
type Clock func() time.Time

// Service aggregates every service
type Service struct {
	Dashboard DashboardService
	Team      TeamService
	Athlete   AthleteService
	Session   SessionService
	Metric    MetricService
	Report    ReportService
	Note      NoteService
	Calendar  CalendarService
	Export    ExportService
}

// NewService wires all services on one repository bundle. loc is the wall clock
// zone "today" is computed in.
func NewService(repo *repository.Repository, clock Clock, loc *time.Location, logger *zap.Logger) *Service {
	return &Service{
		Dashboard: NewDashboardService(repo, clock, loc, logger),
		Team:      NewTeamService(repo, clock, loc, logger),
		Athlete:   NewAthleteService(repo, logger),
		Session:   NewSessionService(repo, logger),
		Metric:    NewMetricService(repo, logger),
		Report:    NewReportService(repo, logger),
		Note:      NewNoteService(repo, clock, logger),
		Calendar:  NewCalendarService(repo, clock, loc, logger),
		Export:    NewExportService(repo, clock, loc, logger),
	}
}

// today is the calendar day of clock() in loc.
func today(clock Clock, loc *time.Location) model.Date {
	return model.DateOf(clock().In(loc))
}
