package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"swimtrack/backend/internal/repository"
)

const calendarProductID = "-//SwimTrack//Trainingseinheiten//DE"

// CalendarService renders training sessions as an iCalendar feed.
type CalendarService interface {
	SessionsICS(ctx context.Context, teamID *int64) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	clock  Clock
	loc    *time.Location
	logger *zap.Logger
}

// NewCalendarService creates a CalendarService. Session wall clock times are read in loc.
func NewCalendarService(repo *repository.Repository, clock Clock, loc *time.Location, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, clock: clock, loc: loc, logger: logger}
}

func (s *calendarService) SessionsICS(ctx context.Context, teamID *int64) (string, error) {
	rows, err := s.repo.Session.List(ctx, repository.SessionFilter{TeamID: teamID})
	if err != nil {
		s.logger.Error("list calendar sessions failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName("SwimTrack Trainingseinheiten")
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.clock().UTC()
	for _, r := range rows {
		start, err := time.ParseInLocation("2006-01-02 15:04", r.SessionDate.String()+" "+r.StartTime, s.loc)
		if err != nil {
			s.logger.Warn("skip session with unparsable start", zap.Int64("id", r.ID), zap.Error(err))
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("session-%d@swimtrack", r.ID))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Duration(r.DurationMinutes) * time.Minute))
		ev.SetSummary(fmt.Sprintf("%s: %s", r.TeamShortName, r.Title))
		ev.SetDescription(eventDescription(r))
		ev.SetProperty(ics.ComponentPropertyCategories, r.FocusArea)
	}

	return cal.Serialize(), nil
}

func eventDescription(r repository.SessionRow) string {
	parts := []string{
		"Team: " + r.TeamName,
		"Schwerpunkt: " + r.FocusArea,
		"Status: " + r.Status,
	}
	if r.Notes != nil && strings.TrimSpace(*r.Notes) != "" {
		parts = append(parts, "Notizen: "+strings.TrimSpace(*r.Notes))
	}
	return strings.Join(parts, "\n")
}
