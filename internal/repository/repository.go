package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository bundles every repository over one store handle.
type Repository struct {
	db *gorm.DB

	Team       TeamRepository
	Athlete    AthleteRepository
	Session    SessionRepository
	Attendance AttendanceRepository
	Metric     MetricRepository
	Report     ReportRepository
	Note       NoteRepository
	Dashboard  DashboardRepository
}

// NewRepository creates the repository bundle on the pooled handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Team:       NewTeamRepo(db),
		Athlete:    NewAthleteRepo(db),
		Session:    NewSessionRepo(db),
		Attendance: NewAttendanceRepo(db),
		Metric:     NewMetricRepo(db),
		Report:     NewReportRepo(db),
		Note:       NewNoteRepo(db),
		Dashboard:  NewDashboardRepo(db),
	}
}

// WithTx returns a bundle whose repositories all run on tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn on a transactional bundle; fn's error rolls everything back.
// A bundle assembled without a store (in-memory fakes) runs fn inline.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
