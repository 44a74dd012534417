package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

// NoteService coach note business interface. Notes are append-only; the latest
// one is the current note.
type NoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Latest(ctx context.Context) (*dto.NoteResponse, error)
}

type noteService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewNoteService creates a NoteService
func NewNoteService(repo *repository.Repository, clock Clock, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, clock: clock, logger: logger}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if req.Body == nil || strings.TrimSpace(*req.Body) == "" {
		return nil, ErrEmptyNote
	}

	note := &model.CoachNote{
		Body:      strings.TrimSpace(*req.Body),
		UpdatedAt: s.clock().UTC(),
	}
	if err := s.repo.Note.Create(ctx, note); err != nil {
		s.logger.Error("create note failed", zap.Error(err))
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Latest(ctx context.Context) (*dto.NoteResponse, error) {
	note, err := s.repo.Note.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		s.logger.Error("get latest note failed", zap.Error(err))
		return nil, err
	}
	return toNoteResponse(note), nil
}
