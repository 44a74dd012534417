package service

import (
	"context"

	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

// MetricService performance metric business interface
type MetricService interface {
	List(ctx context.Context, query *dto.MetricListQuery) ([]dto.MetricResponse, error)
	Create(ctx context.Context, req *dto.CreateMetricRequest) (*dto.MetricResponse, error)
}

type metricService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMetricService creates a MetricService
func NewMetricService(repo *repository.Repository, logger *zap.Logger) MetricService {
	return &metricService{repo: repo, logger: logger}
}

func (s *metricService) List(ctx context.Context, query *dto.MetricListQuery) ([]dto.MetricResponse, error) {
	rows, err := s.repo.Metric.List(ctx, repository.MetricFilter{TeamID: query.TeamID, MetricType: query.MetricType})
	if err != nil {
		s.logger.Error("list metrics failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MetricResponse, 0, len(rows))
	for i := range rows {
		result = append(result, toMetricResponse(&rows[i]))
	}
	return result, nil
}

func (s *metricService) Create(ctx context.Context, req *dto.CreateMetricRequest) (*dto.MetricResponse, error) {
	if err := ensureAthleteExists(ctx, s.repo, req.AthleteID, "body.athlete_id"); err != nil {
		return nil, err
	}

	metric := &model.Metric{
		AthleteID:  req.AthleteID,
		MetricDate: model.Date(req.MetricDate),
		MetricType: req.MetricType,
		Unit:       req.Unit,
	}
	if req.Value != nil {
		metric.Value = *req.Value
	}
	if err := s.repo.Metric.Create(ctx, metric); err != nil {
		s.logger.Error("create metric failed", zap.Error(err))
		return nil, err
	}

	row, err := s.repo.Metric.GetRow(ctx, metric.ID)
	if err != nil {
		s.logger.Error("reload metric failed", zap.Int64("id", metric.ID), zap.Error(err))
		return nil, err
	}
	resp := toMetricResponse(row)
	return &resp, nil
}
