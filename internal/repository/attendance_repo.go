package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swimtrack/backend/internal/model"
)

// AttendanceRepository attendance data access
type AttendanceRepository interface {
	// Upsert inserts the row or, when (session_id, athlete_id) already exists,
	// overwrites its status and note.
	Upsert(ctx context.Context, row *model.Attendance) error
	// ListRoster returns every athlete of the team with their attendance at the session.
	ListRoster(ctx context.Context, sessionID, teamID int64) ([]RosterRow, error)
	ListBySessions(ctx context.Context, sessionIDs []int64) ([]model.Attendance, error)
	ListHistoryByAthlete(ctx context.Context, athleteID int64, limit int) ([]AttendanceHistoryRow, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Upsert(ctx context.Context, row *model.Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "athlete_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "note"}),
		}).
		Create(row).Error
}

func (r *attendanceRepo) ListRoster(ctx context.Context, sessionID, teamID int64) ([]RosterRow, error) {
	var rows []RosterRow
	err := r.db.WithContext(ctx).
		Table("athletes AS a").
		Select("a.id, a.first_name, a.last_name, att.status, att.note").
		Joins("LEFT JOIN attendance att ON att.athlete_id = a.id AND att.session_id = ?", sessionID).
		Where("a.team_id = ?", teamID).
		Order("a.last_name ASC, a.first_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *attendanceRepo) ListBySessions(ctx context.Context, sessionIDs []int64) ([]model.Attendance, error) {
	var rows []model.Attendance
	if len(sessionIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Find(&rows).Error
	return rows, err
}

func (r *attendanceRepo) ListHistoryByAthlete(ctx context.Context, athleteID int64, limit int) ([]AttendanceHistoryRow, error) {
	var rows []AttendanceHistoryRow
	err := r.db.WithContext(ctx).
		Table("attendance AS att").
		Select("s.id AS session_id, s.title, s.session_date, att.status").
		Joins("JOIN sessions s ON s.id = att.session_id").
		Where("att.athlete_id = ?", athleteID).
		Order("s.session_date DESC, s.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
