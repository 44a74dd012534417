package repository

import (
	"context"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
)

// TeamRepository team data access
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id int64) (*model.Team, error)
	// ListWithSummary lists every team with its athlete count and the nearest
	// session on or after today, ordered by name.
	ListWithSummary(ctx context.Context, today model.Date) ([]TeamSummaryRow, error)
}

type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepo creates a TeamRepository
func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepo) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) ListWithSummary(ctx context.Context, today model.Date) ([]TeamSummaryRow, error) {
	var rows []TeamSummaryRow
	err := r.db.WithContext(ctx).
		Table("teams AS t").
		Select("t.*, "+
			"(SELECT COUNT(*) FROM athletes a WHERE a.team_id = t.id) AS athlete_count, "+
			"(SELECT CAST(s.session_date AS VARCHAR(10)) || ' • ' || s.title FROM sessions s "+
			"WHERE s.team_id = t.id AND s.session_date >= ? "+
			"ORDER BY s.session_date ASC, s.start_time ASC LIMIT 1) AS upcoming_session", today).
		Order("t.name ASC").
		Scan(&rows).Error
	return rows, err
}
