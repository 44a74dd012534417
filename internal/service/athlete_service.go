package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
	pkgerrors "swimtrack/backend/pkg/errors"
)

const (
	athleteMetricLimit     = 8
	athleteAttendanceLimit = 5
)

// AthleteService athlete business interface
type AthleteService interface {
	List(ctx context.Context) ([]dto.AthleteResponse, error)
	Get(ctx context.Context, id int64) (*dto.AthleteDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateAthleteRequest) (*dto.AthleteDetailResponse, error)
}

type athleteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAthleteService creates an AthleteService
func NewAthleteService(repo *repository.Repository, logger *zap.Logger) AthleteService {
	return &athleteService{repo: repo, logger: logger}
}

func (s *athleteService) List(ctx context.Context) ([]dto.AthleteResponse, error) {
	rows, err := s.repo.Athlete.List(ctx)
	if err != nil {
		s.logger.Error("list athletes failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AthleteResponse, 0, len(rows))
	for i := range rows {
		result = append(result, toAthleteResponse(&rows[i]))
	}
	return result, nil
}

func (s *athleteService) Get(ctx context.Context, id int64) (*dto.AthleteDetailResponse, error) {
	row, err := s.repo.Athlete.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAthleteNotFound
		}
		s.logger.Error("get athlete failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	metrics, err := s.repo.Metric.ListRecentByAthlete(ctx, id, athleteMetricLimit)
	if err != nil {
		s.logger.Error("list athlete metrics failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	history, err := s.repo.Attendance.ListHistoryByAthlete(ctx, id, athleteAttendanceLimit)
	if err != nil {
		s.logger.Error("list athlete attendance failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp := &dto.AthleteDetailResponse{
		Athlete:           toAthleteResponse(row),
		Metrics:           make([]dto.AthleteMetric, 0, len(metrics)),
		AttendanceHistory: make([]dto.AttendanceHistoryEntry, 0, len(history)),
	}
	for _, m := range metrics {
		resp.Metrics = append(resp.Metrics, dto.AthleteMetric{
			MetricDate: m.MetricDate.String(),
			MetricType: m.MetricType,
			Value:      m.Value,
			Unit:       m.Unit,
		})
	}
	for _, h := range history {
		resp.AttendanceHistory = append(resp.AttendanceHistory, dto.AttendanceHistoryEntry{
			SessionID:   h.SessionID,
			Title:       h.Title,
			SessionDate: h.SessionDate.String(),
			Status:      h.Status,
		})
	}
	return resp, nil
}

func (s *athleteService) Create(ctx context.Context, req *dto.CreateAthleteRequest) (*dto.AthleteDetailResponse, error) {
	if err := ensureTeamExists(ctx, s.repo, req.TeamID, "body.team_id"); err != nil {
		return nil, err
	}

	athlete := &model.Athlete{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		BirthYear:        req.BirthYear,
		PrimaryStroke:    req.PrimaryStroke,
		BestEvent:        req.BestEvent,
		PersonalBest:     req.PersonalBest,
		PersonalBestUnit: req.PersonalBestUnit,
		FocusNote:        req.FocusNote,
		TeamID:           req.TeamID,
	}
	if err := s.repo.Athlete.Create(ctx, athlete); err != nil {
		s.logger.Error("create athlete failed", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, athlete.ID)
}

// ensureTeamExists rejects a reference to an unknown team as invalid input at path.
func ensureTeamExists(ctx context.Context, repo *repository.Repository, teamID int64, path string) error {
	_, err := repo.Team.GetByID(ctx, teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NewValidationError(path, "Team existiert nicht")
	}
	return err
}

// ensureAthleteExists rejects a reference to an unknown athlete as invalid input at path.
func ensureAthleteExists(ctx context.Context, repo *repository.Repository, athleteID int64, path string) error {
	_, err := repo.Athlete.GetByID(ctx, athleteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NewValidationError(path, "Athlet:in existiert nicht")
	}
	return err
}
