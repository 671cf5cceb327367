package usecase

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ActivityService interface {
	GetActivities(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActivityResponse], error)
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) GetActivities(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActivityResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	activities, err := s.repo.Activity.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get activities", zap.Error(err))
		return nil, fmt.Errorf("get activities: %w", err)
	}

	total, err := s.repo.Activity.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}

	activityResponses := make([]response.ActivityResponse, len(activities))
	for i, activity := range activities {
		activityResponses[i] = response.ActivityToResponse(activity)
	}

	return response.NewPaginatedResponse(activityResponses, req.Page, req.PerPage, total), nil
}
