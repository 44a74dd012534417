package repository

import (
	"context"

	"gorm.io/gorm"
)

// ReportRepository report data access
type ReportRepository interface {
	List(ctx context.Context) ([]ReportRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a ReportRepository
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) List(ctx context.Context) ([]ReportRow, error) {
	var rows []ReportRow
	err := r.db.WithContext(ctx).
		Table("reports AS r").
		Select("r.*, t.name AS team_name").
		Joins("JOIN teams t ON t.id = r.team_id").
		Order("r.period_end DESC, r.id DESC").
		Scan(&rows).Error
	return rows, err
}
