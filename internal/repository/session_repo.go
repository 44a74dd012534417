package repository

import (
	"context"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
)

// SessionFilter optional list filters, combined with AND.
type SessionFilter struct {
	TeamID *int64
	Status *string
}

// SessionRepository training session data access
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetRow(ctx context.Context, id int64) (*SessionRow, error)
	List(ctx context.Context, filter SessionFilter) ([]SessionRow, error)
	ListRecentByTeam(ctx context.Context, teamID int64, limit int) ([]model.Session, error)
	CountByStatus(ctx context.Context, teamID int64) ([]StatusCountRow, error)
	// Update writes the given columns; callers own the column allow-list.
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates a SessionRepository
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) withTeam(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("sessions AS s").
		Select("s.*, t.name AS team_name, t.short_name AS team_short_name").
		Joins("JOIN teams t ON t.id = s.team_id")
}

func (r *sessionRepo) GetRow(ctx context.Context, id int64) (*SessionRow, error) {
	var rows []SessionRow
	err := r.withTeam(ctx).
		Where("s.id = ?", id).
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

func (r *sessionRepo) List(ctx context.Context, filter SessionFilter) ([]SessionRow, error) {
	var rows []SessionRow
	db := r.withTeam(ctx)

	if filter.TeamID != nil {
		db = db.Where("s.team_id = ?", *filter.TeamID)
	}
	if filter.Status != nil {
		db = db.Where("s.status = ?", *filter.Status)
	}

	err := db.Order("s.session_date DESC, s.start_time DESC").Scan(&rows).Error
	return rows, err
}

func (r *sessionRepo) ListRecentByTeam(ctx context.Context, teamID int64, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("session_date DESC, id DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) CountByStatus(ctx context.Context, teamID int64) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("status, COUNT(*) AS session_count").
		Where("team_id = ?", teamID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *sessionRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Updates(updates).Error
}
