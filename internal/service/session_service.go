package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

const duplicateTitleSuffix = " (Kopie)"

// SessionService training session business interface
type SessionService interface {
	List(ctx context.Context, query *dto.SessionListQuery) ([]dto.SessionResponse, error)
	Get(ctx context.Context, id int64) (*dto.SessionDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionDetailResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*dto.SessionDetailResponse, error)
	Duplicate(ctx context.Context, id int64, req *dto.DuplicateSessionRequest) (*dto.SessionDetailResponse, error)
	// RecordAttendance upserts the entries in order inside one transaction.
	RecordAttendance(ctx context.Context, id int64, entries []dto.AttendanceEntryRequest) (*dto.SessionDetailResponse, error)
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService creates a SessionService
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *sessionService) List(ctx context.Context, query *dto.SessionListQuery) ([]dto.SessionResponse, error) {
	rows, err := s.repo.Session.List(ctx, repository.SessionFilter{TeamID: query.TeamID, Status: query.Status})
	if err != nil {
		s.logger.Error("list sessions failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(rows))
	for i := range rows {
		result = append(result, toSessionRowResponse(&rows[i]))
	}

	if query.WithAttendance && len(rows) > 0 {
		if err := s.attachRosters(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// attachRosters fills each session's roster with two queries for the whole list.
func (s *sessionService) attachRosters(ctx context.Context, sessions []dto.SessionResponse) error {
	sessionIDs := make([]int64, 0, len(sessions))
	teamIDs := make([]int64, 0)
	seenTeam := make(map[int64]bool)
	for _, sess := range sessions {
		sessionIDs = append(sessionIDs, sess.ID)
		if !seenTeam[sess.TeamID] {
			seenTeam[sess.TeamID] = true
			teamIDs = append(teamIDs, sess.TeamID)
		}
	}

	athletes, err := s.repo.Athlete.ListByTeams(ctx, teamIDs)
	if err != nil {
		s.logger.Error("list roster athletes failed", zap.Error(err))
		return err
	}
	records, err := s.repo.Attendance.ListBySessions(ctx, sessionIDs)
	if err != nil {
		s.logger.Error("list roster attendance failed", zap.Error(err))
		return err
	}

	athletesByTeam := make(map[int64][]model.Athlete)
	for _, a := range athletes {
		athletesByTeam[a.TeamID] = append(athletesByTeam[a.TeamID], a)
	}
	type pair struct{ session, athlete int64 }
	bySessionAthlete := make(map[pair]model.Attendance, len(records))
	for _, r := range records {
		bySessionAthlete[pair{r.SessionID, r.AthleteID}] = r
	}

	for i := range sessions {
		teamAthletes := athletesByTeam[sessions[i].TeamID]
		roster := make([]dto.RosterEntry, 0, len(teamAthletes))
		for _, a := range teamAthletes {
			entry := dto.RosterEntry{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
			if rec, ok := bySessionAthlete[pair{sessions[i].ID, a.ID}]; ok {
				status := rec.Status
				entry.Status = &status
				entry.Note = rec.Note
			}
			roster = append(roster, entry)
		}
		sessions[i].Attendance = roster
	}
	return nil
}

// ────────────────────── Get ──────────────────────

func (s *sessionService) Get(ctx context.Context, id int64) (*dto.SessionDetailResponse, error) {
	row, err := s.repo.Session.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("get session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	roster, err := s.repo.Attendance.ListRoster(ctx, id, row.TeamID)
	if err != nil {
		s.logger.Error("list session roster failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.SessionDetailResponse{
		Session:    toSessionRowResponse(row),
		Attendance: toRosterEntries(roster),
	}, nil
}

// ────────────────────── Create / Duplicate ──────────────────────

func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionDetailResponse, error) {
	if err := ensureTeamExists(ctx, s.repo, req.TeamID, "body.team_id"); err != nil {
		return nil, err
	}

	session := &model.Session{
		TeamID:          req.TeamID,
		Title:           req.Title,
		SessionDate:     model.Date(req.SessionDate),
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
		FocusArea:       req.FocusArea,
		LoadActual:      req.LoadActual,
		Notes:           req.Notes,
	}
	if req.LoadTarget != nil {
		session.LoadTarget = *req.LoadTarget
	}
	if session.Status == "" {
		session.Status = model.SessionStatusPlanned
	}
	return s.insert(ctx, session)
}

func (s *sessionService) Duplicate(ctx context.Context, id int64, req *dto.DuplicateSessionRequest) (*dto.SessionDetailResponse, error) {
	src, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSourceSessionNotFound
		}
		s.logger.Error("get source session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	dup := *src
	dup.ID = 0
	dup.Title = src.Title + duplicateTitleSuffix

	if req.TeamID != nil {
		if err := ensureTeamExists(ctx, s.repo, *req.TeamID, "body.team_id"); err != nil {
			return nil, err
		}
		dup.TeamID = *req.TeamID
	}
	if req.Title != nil {
		dup.Title = *req.Title
	}
	if req.SessionDate != nil {
		dup.SessionDate = model.Date(*req.SessionDate)
	}
	if req.StartTime != nil {
		dup.StartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		dup.DurationMinutes = *req.DurationMinutes
	}
	if req.Status != nil {
		dup.Status = *req.Status
	}
	if req.FocusArea != nil {
		dup.FocusArea = *req.FocusArea
	}
	if req.LoadTarget != nil {
		dup.LoadTarget = *req.LoadTarget
	}
	if req.LoadActual != nil {
		dup.LoadActual = req.LoadActual
	}
	if req.Notes != nil {
		dup.Notes = req.Notes
	}

	return s.insert(ctx, &dup)
}

func (s *sessionService) insert(ctx context.Context, session *model.Session) (*dto.SessionDetailResponse, error) {
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("session created", zap.Int64("id", session.ID), zap.Int64("team_id", session.TeamID))
	return s.Get(ctx, session.ID)
}

// ────────────────────── Update ──────────────────────

// Update applies the allow-listed fields. Without any field it performs no write
// and returns the current detail.
func (s *sessionService) Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*dto.SessionDetailResponse, error) {
	if _, err := s.repo.Session.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("get session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Empty() {
		return s.Get(ctx, id)
	}

	updates := make(map[string]interface{}, 4)
	if req.Status != nil {
		updates[dto.SessionFieldStatus] = *req.Status
	}
	if req.FocusArea != nil {
		updates[dto.SessionFieldFocusArea] = *req.FocusArea
	}
	if req.NotesSet {
		updates[dto.SessionFieldNotes] = req.Notes
	}
	if req.LoadActualSet {
		updates[dto.SessionFieldLoadActual] = req.LoadActual
	}

	if err := s.repo.Session.Update(ctx, id, updates); err != nil {
		s.logger.Error("update session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return s.Get(ctx, id)
}

// ────────────────────── Attendance ──────────────────────

func (s *sessionService) RecordAttendance(ctx context.Context, id int64, entries []dto.AttendanceEntryRequest) (*dto.SessionDetailResponse, error) {
	if _, err := s.repo.Session.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("get session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	checked := make(map[int64]bool, len(entries))
	for i, e := range entries {
		if checked[e.AthleteID] {
			continue
		}
		if err := ensureAthleteExists(ctx, s.repo, e.AthleteID, fmt.Sprintf("body[%d].athlete_id", i)); err != nil {
			return nil, err
		}
		checked[e.AthleteID] = true
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		for _, e := range entries {
			status := e.Status
			if status == "" {
				status = model.AttendanceStatusPresent
			}
			row := &model.Attendance{SessionID: id, AthleteID: e.AthleteID, Status: status, Note: e.Note}
			if err := tx.Attendance.Upsert(ctx, row); err != nil {
				return fmt.Errorf("upsert attendance athlete %d: %w", e.AthleteID, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("record attendance failed", zap.Int64("session_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("attendance recorded", zap.Int64("session_id", id), zap.Int("entries", len(entries)))
	return s.Get(ctx, id)
}
