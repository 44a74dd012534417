package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

const teamRecentSessionLimit = 5

// TeamService team business interface
type TeamService interface {
	List(ctx context.Context) ([]dto.TeamResponse, error)
	Get(ctx context.Context, id int64) (*dto.TeamDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamDetailResponse, error)
}

type teamService struct {
	repo   *repository.Repository
	clock  Clock
	loc    *time.Location
	logger *zap.Logger
}

// NewTeamService creates a TeamService
func NewTeamService(repo *repository.Repository, clock Clock, loc *time.Location, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, clock: clock, loc: loc, logger: logger}
}

func (s *teamService) List(ctx context.Context) ([]dto.TeamResponse, error) {
	rows, err := s.repo.Team.ListWithSummary(ctx, today(s.clock, s.loc))
	if err != nil {
		s.logger.Error("list teams failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeamResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.TeamResponse{
			ID:              r.ID,
			Name:            r.Name,
			ShortName:       r.ShortName,
			Level:           r.Level,
			Coach:           r.Coach,
			TrainingDays:    r.TrainingDays,
			FocusTheme:      r.FocusTheme,
			AthleteCount:    r.AthleteCount,
			UpcomingSession: r.UpcomingSession,
		})
	}
	return result, nil
}

func (s *teamService) Get(ctx context.Context, id int64) (*dto.TeamDetailResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("get team failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	sessions, err := s.repo.Session.ListRecentByTeam(ctx, id, teamRecentSessionLimit)
	if err != nil {
		s.logger.Error("list team sessions failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Session.CountByStatus(ctx, id)
	if err != nil {
		s.logger.Error("count team sessions failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp := &dto.TeamDetailResponse{
		Team:            toTeamInfo(team),
		RecentSessions:  make([]dto.SessionResponse, 0, len(sessions)),
		StatusBreakdown: make(map[string]int64, len(counts)),
	}
	for i := range sessions {
		resp.RecentSessions = append(resp.RecentSessions, toSessionResponse(&sessions[i]))
	}
	for _, c := range counts {
		resp.StatusBreakdown[c.Status] = c.SessionCount
	}
	return resp, nil
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamDetailResponse, error) {
	team := &model.Team{
		Name:         req.Name,
		ShortName:    req.ShortName,
		Level:        req.Level,
		Coach:        req.Coach,
		TrainingDays: req.TrainingDays,
		FocusTheme:   req.FocusTheme,
	}
	if err := s.repo.Team.Create(ctx, team); err != nil {
		s.logger.Error("create team failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("team created", zap.Int64("id", team.ID), zap.String("name", team.Name))
	return s.Get(ctx, team.ID)
}
