package repository

import (
	"context"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
)

// DashboardRepository read-only aggregate queries behind the dashboard.
// Date bounds are passed in so that "today" follows the application clock.
type DashboardRepository interface {
	SessionTotals(ctx context.Context) (*SessionTotalsRow, error)
	AttendanceCounts(ctx context.Context, since model.Date) (*AttendanceCountsRow, error)
	UpcomingSessions(ctx context.Context, from model.Date, limit int) ([]UpcomingSessionRow, error)
	FocusTopics(ctx context.Context, since model.Date, limit int) ([]FocusTopicRow, error)
	RecentSessions(ctx context.Context, limit int) ([]model.Session, error)
	RecentMetrics(ctx context.Context, limit int) ([]MetricEventRow, error)
	// MissingDocumentations counts completed sessions since the date with blank notes.
	MissingDocumentations(ctx context.Context, since model.Date) (int64, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

// NewDashboardRepo creates a DashboardRepository
func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) SessionTotals(ctx context.Context) (*SessionTotalsRow, error) {
	var row SessionTotalsRow
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("COUNT(*) AS total_sessions, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_sessions, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress_sessions, "+
			"COALESCE(SUM(load_actual), 0) AS total_load_actual, "+
			"COALESCE(SUM(load_target), 0) AS total_load_target",
			model.SessionStatusCompleted, model.SessionStatusStarted).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *dashboardRepo) AttendanceCounts(ctx context.Context, since model.Date) (*AttendanceCountsRow, error) {
	var row AttendanceCountsRow
	err := r.db.WithContext(ctx).
		Table("attendance AS att").
		Select("COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN att.status = ? THEN 1 ELSE 0 END), 0) AS present",
			model.AttendanceStatusPresent).
		Joins("JOIN sessions s ON s.id = att.session_id").
		Where("s.session_date >= ?", since).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *dashboardRepo) UpcomingSessions(ctx context.Context, from model.Date, limit int) ([]UpcomingSessionRow, error) {
	var rows []UpcomingSessionRow
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("session_date, title, focus_area").
		Where("session_date >= ?", from).
		Order("session_date ASC, start_time ASC, id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) FocusTopics(ctx context.Context, since model.Date, limit int) ([]FocusTopicRow, error) {
	var rows []FocusTopicRow
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("focus_area, COUNT(*) AS topic_count").
		Where("session_date >= ?", since).
		Group("focus_area").
		Order("topic_count DESC, focus_area ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) RecentSessions(ctx context.Context, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Order("session_date DESC, id DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *dashboardRepo) RecentMetrics(ctx context.Context, limit int) ([]MetricEventRow, error) {
	var rows []MetricEventRow
	err := r.db.WithContext(ctx).
		Table("metrics AS m").
		Select("a.first_name || ' ' || a.last_name AS athlete, m.metric_type, m.metric_date, m.value, m.unit").
		Joins("JOIN athletes a ON a.id = m.athlete_id").
		Order("m.metric_date DESC, m.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) MissingDocumentations(ctx context.Context, since model.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("session_date >= ? AND status = ?", since, model.SessionStatusCompleted).
		Where("notes IS NULL OR TRIM(notes) = ''").
		Count(&count).Error
	return count, err
}
