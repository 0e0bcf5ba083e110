package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/repository"
)

// ActivityService reads the extracurricular activity catalog.
type ActivityService interface {
	List(ctx context.Context) ([]dto.ActivityResponse, error)
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService creates the ActivityService.
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.Activity.ListApproved(ctx)
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, dto.ActivityResponse{
			ID:          a.ActivityID,
			Name:        a.Name,
			Type:        a.Type,
			Description: a.Description,
		})
	}
	return result, nil
}
