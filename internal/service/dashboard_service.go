package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/repository"
)

// dashboard windows and list sizes
const (
	attendanceWindowDays = 30
	focusWindowDays      = 45
	documentationDays    = 30
	upcomingLimit        = 5
	focusTopicLimit      = 6
	sessionEventLimit    = 6
	metricEventLimit     = 4
	activityLimit        = 6
)

// DashboardService dashboard aggregation
type DashboardService interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	clock  Clock
	loc    *time.Location
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService
func NewDashboardService(repo *repository.Repository, clock Clock, loc *time.Location, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, clock: clock, loc: loc, logger: logger}
}

// Get reads the current store state into the dashboard record. Any store error
// fails the whole call.
func (s *dashboardService) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	day := today(s.clock, s.loc)

	totals, err := s.repo.Dashboard.SessionTotals(ctx)
	if err != nil {
		s.logger.Error("dashboard: session totals failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Dashboard.AttendanceCounts(ctx, day.AddDays(-attendanceWindowDays))
	if err != nil {
		s.logger.Error("dashboard: attendance counts failed", zap.Error(err))
		return nil, err
	}

	upcoming, err := s.repo.Dashboard.UpcomingSessions(ctx, day, upcomingLimit)
	if err != nil {
		s.logger.Error("dashboard: upcoming sessions failed", zap.Error(err))
		return nil, err
	}

	topics, err := s.repo.Dashboard.FocusTopics(ctx, day.AddDays(-focusWindowDays), focusTopicLimit)
	if err != nil {
		s.logger.Error("dashboard: focus topics failed", zap.Error(err))
		return nil, err
	}

	missing, err := s.repo.Dashboard.MissingDocumentations(ctx, day.AddDays(-documentationDays))
	if err != nil {
		s.logger.Error("dashboard: missing documentations failed", zap.Error(err))
		return nil, err
	}

	activities, err := s.activities(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		AttendanceRate:        attendanceRate(counts.Present, counts.Total),
		CompletedSessions:     totals.CompletedSessions,
		InProgressSessions:    totals.InProgressSessions,
		PlannedSessions:       totals.TotalSessions - totals.CompletedSessions,
		TotalLoadActual:       totals.TotalLoadActual,
		TotalLoadTarget:       totals.TotalLoadTarget,
		MissingDocumentations: missing,
		UpcomingSessions:      make([]dto.UpcomingSession, 0, len(upcoming)),
		FocusTopics:           make([]dto.FocusTopic, 0, len(topics)),
		Activities:            activities,
	}
	for _, u := range upcoming {
		resp.UpcomingSessions = append(resp.UpcomingSessions, dto.UpcomingSession{
			SessionDate: u.SessionDate.String(),
			Title:       u.Title,
			FocusArea:   u.FocusArea,
		})
	}
	for _, t := range topics {
		resp.FocusTopics = append(resp.FocusTopics, dto.FocusTopic{FocusArea: t.FocusArea, Count: t.TopicCount})
	}

	note, err := s.repo.Note.GetLatest(ctx)
	switch {
	case err == nil:
		resp.CoachNote = toNoteResponse(note)
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		s.logger.Error("dashboard: latest note failed", zap.Error(err))
		return nil, err
	}

	return resp, nil
}

// activities merges recent sessions and metrics, newest date first. The sort is
// stable: on equal dates sessions stay ahead of metrics, each in query order.
func (s *dashboardService) activities(ctx context.Context) ([]dto.Activity, error) {
	sessions, err := s.repo.Dashboard.RecentSessions(ctx, sessionEventLimit)
	if err != nil {
		s.logger.Error("dashboard: recent sessions failed", zap.Error(err))
		return nil, err
	}
	metrics, err := s.repo.Dashboard.RecentMetrics(ctx, metricEventLimit)
	if err != nil {
		s.logger.Error("dashboard: recent metrics failed", zap.Error(err))
		return nil, err
	}

	feed := make([]dto.Activity, 0, len(sessions)+len(metrics))
	for _, sess := range sessions {
		feed = append(feed, dto.Activity{
			Type:   dto.ActivityTypeTraining,
			Title:  sess.Title,
			Status: sess.Status,
			Date:   sess.SessionDate.String(),
		})
	}
	for _, m := range metrics {
		feed = append(feed, dto.Activity{
			Type:   dto.ActivityTypeMetric,
			Title:  m.MetricType,
			Status: metricSummary(m.Athlete, m.Value, m.Unit),
			Date:   m.MetricDate.String(),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Date > feed[j].Date })
	if len(feed) > activityLimit {
		feed = feed[:activityLimit]
	}
	return feed, nil
}

// attendanceRate present/total rounded to two places; zero rows count as a total of 1.
func attendanceRate(present, total int64) float64 {
	if total <= 0 {
		total = 1
	}
	return math.Round(float64(present)/float64(total)*100) / 100
}

// metricSummary "<athlete> <value> <unit>" with the value in shortest form.
func metricSummary(athlete string, value float64, unit string) string {
	return strings.TrimSpace(athlete + " " + strconv.FormatFloat(value, 'f', -1, 64) + " " + unit)
}
