package service

import (
	"context"

	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/repository"
)

// ReportService report business interface
type ReportService interface {
	List(ctx context.Context) ([]dto.ReportResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates a ReportService
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) List(ctx context.Context) ([]dto.ReportResponse, error) {
	rows, err := s.repo.Report.List(ctx)
	if err != nil {
		s.logger.Error("list reports failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ReportResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.ReportResponse{
			ID:          r.ID,
			TeamID:      r.TeamID,
			TeamName:    r.TeamName,
			Title:       r.Title,
			PeriodStart: r.PeriodStart.String(),
			PeriodEnd:   r.PeriodEnd.String(),
			Status:      r.Status,
		}
		if r.DeliveredOn != nil && *r.DeliveredOn != "" {
			d := r.DeliveredOn.String()
			resp.DeliveredOn = &d
		}
		result = append(result, resp)
	}
	return result, nil
}
