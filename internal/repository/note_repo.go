package repository

import (
	"context"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
)

// NoteRepository coach note data access. Notes are append-only.
type NoteRepository interface {
	Create(ctx context.Context, note *model.CoachNote) error
	// GetLatest returns gorm.ErrRecordNotFound when no note exists.
	GetLatest(ctx context.Context) (*model.CoachNote, error)
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepo creates a NoteRepository
func NewNoteRepo(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.CoachNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) GetLatest(ctx context.Context) (*model.CoachNote, error) {
	var note model.CoachNote
	err := r.db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		Take(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}
