package repository

import (
	"context"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
)

// MetricFilter optional list filters, combined with AND.
type MetricFilter struct {
	TeamID     *int64
	MetricType *string
}

// MetricRepository performance metric data access
type MetricRepository interface {
	Create(ctx context.Context, metric *model.Metric) error
	GetRow(ctx context.Context, id int64) (*MetricRow, error)
	List(ctx context.Context, filter MetricFilter) ([]MetricRow, error)
	ListRecentByAthlete(ctx context.Context, athleteID int64, limit int) ([]model.Metric, error)
}

type metricRepo struct {
	db *gorm.DB
}

// NewMetricRepo creates a MetricRepository
func NewMetricRepo(db *gorm.DB) MetricRepository {
	return &metricRepo{db: db}
}

func (r *metricRepo) Create(ctx context.Context, metric *model.Metric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *metricRepo) withNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("metrics AS m").
		Select("m.*, a.first_name, a.last_name, t.name AS team_name").
		Joins("JOIN athletes a ON a.id = m.athlete_id").
		Joins("JOIN teams t ON t.id = a.team_id")
}

func (r *metricRepo) GetRow(ctx context.Context, id int64) (*MetricRow, error) {
	var rows []MetricRow
	err := r.withNames(ctx).
		Where("m.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *metricRepo) List(ctx context.Context, filter MetricFilter) ([]MetricRow, error) {
	var rows []MetricRow
	db := r.withNames(ctx)

	if filter.TeamID != nil {
		db = db.Where("a.team_id = ?", *filter.TeamID)
	}
	if filter.MetricType != nil {
		db = db.Where("m.metric_type = ?", *filter.MetricType)
	}

	err := db.Order("m.metric_date DESC, m.id DESC").Scan(&rows).Error
	return rows, err
}

func (r *metricRepo) ListRecentByAthlete(ctx context.Context, athleteID int64, limit int) ([]model.Metric, error) {
	var metrics []model.Metric
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("metric_date DESC, id DESC").
		Limit(limit).
		Find(&metrics).Error
	return metrics, err
}
