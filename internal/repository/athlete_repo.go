package repository

import (
	"context"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
)

// AthleteRepository athlete data access
type AthleteRepository interface {
	Create(ctx context.Context, athlete *model.Athlete) error
	GetByID(ctx context.Context, id int64) (*model.Athlete, error)
	// GetRow loads one athlete with team name and latest metric.
	GetRow(ctx context.Context, id int64) (*AthleteRow, error)
	// List returns every athlete with team name and latest metric, by last name.
	List(ctx context.Context) ([]AthleteRow, error)
	ListByTeams(ctx context.Context, teamIDs []int64) ([]model.Athlete, error)
}

type athleteRepo struct {
	db *gorm.DB
}

// NewAthleteRepo creates an AthleteRepository
func NewAthleteRepo(db *gorm.DB) AthleteRepository {
	return &athleteRepo{db: db}
}

// latest metric per athlete, ties on date broken by id
const latestMetricSelect = "a.*, t.name AS team_name, " +
	"(SELECT m.metric_date FROM metrics m WHERE m.athlete_id = a.id ORDER BY m.metric_date DESC, m.id DESC LIMIT 1) AS last_metric, " +
	"(SELECT m.value FROM metrics m WHERE m.athlete_id = a.id ORDER BY m.metric_date DESC, m.id DESC LIMIT 1) AS last_metric_value, " +
	"(SELECT m.unit FROM metrics m WHERE m.athlete_id = a.id ORDER BY m.metric_date DESC, m.id DESC LIMIT 1) AS last_metric_unit"

func (r *athleteRepo) Create(ctx context.Context, athlete *model.Athlete) error {
	return r.db.WithContext(ctx).Create(athlete).Error
}

func (r *athleteRepo) GetByID(ctx context.Context, id int64) (*model.Athlete, error) {
	var athlete model.Athlete
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&athlete).Error
	if err != nil {
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepo) GetRow(ctx context.Context, id int64) (*AthleteRow, error) {
	var rows []AthleteRow
	err := r.db.WithContext(ctx).
		Table("athletes AS a").
		Select(latestMetricSelect).
		Joins("JOIN teams t ON t.id = a.team_id").
		Where("a.id = ?", id).
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

func (r *athleteRepo) List(ctx context.Context) ([]AthleteRow, error) {
	var rows []AthleteRow
	err := r.db.WithContext(ctx).
		Table("athletes AS a").
		Select(latestMetricSelect).
		Joins("JOIN teams t ON t.id = a.team_id").
		Order("a.last_name ASC, a.first_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *athleteRepo) ListByTeams(ctx context.Context, teamIDs []int64) ([]model.Athlete, error) {
	var athletes []model.Athlete
	if len(teamIDs) == 0 {
		return athletes, nil
	}
	err := r.db.WithContext(ctx).
		Where("team_id IN ?", teamIDs).
		Order("last_name ASC, first_name ASC").
		Find(&athletes).Error
	return athletes, err
}
