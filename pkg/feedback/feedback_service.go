package feedback

import (
	"context"
	"errors"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FeedbackService interface {
		AddFeedback(ctx context.Context, req domain.AddFeedbackRequest, userID string) (domain.FeedbackResponse, error)
		GetFeedback(ctx context.Context, userID string) ([]domain.FeedbackResponse, error)
		UpdateFeedback(ctx context.Context, id string, req domain.UpdateFeedbackRequest, userID string) (domain.FeedbackResponse, error)
		DeleteFeedback(ctx context.Context, id string, userID string) error
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepository: feedbackRepository}
}

func (s *feedbackService) AddFeedback(ctx context.Context, req domain.AddFeedbackRequest, userID string) (domain.FeedbackResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.FeedbackResponse{}, domain.ErrParseUUID
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	feedback := entities.Feedback{
		ID:          uuid.New(),
		UserID:      uid,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Status:      "open",
		Priority:    priority,
	}

	if err := s.feedbackRepository.AddFeedback(ctx, &feedback); err != nil {
		logger.Log.Errorw("failed to add feedback", "error", err)
		return domain.FeedbackResponse{}, err
	}

	return buildFeedbackResponse(&feedback), nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, userID string) ([]domain.FeedbackResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	feedback, err := s.feedbackRepository.GetFeedback(ctx, uid)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FeedbackResponse, 0, len(feedback))
	for _, entry := range feedback {
		responses = append(responses, buildFeedbackResponse(entry))
	}
	return responses, nil
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, id string, req domain.UpdateFeedbackRequest, userID string) (domain.FeedbackResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.FeedbackResponse{}, domain.ErrParseUUID
	}

	feedback, err := s.feedbackRepository.GetFeedbackByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeedbackResponse{}, domain.ErrFeedbackNotFound
		}
		return domain.FeedbackResponse{}, err
	}

	if req.Status != nil {
		feedback.Status = *req.Status
		if *req.Status == "resolved" && feedback.ResolvedAt == nil {
			now := time.Now()
			feedback.ResolvedAt = &now
		}
		if *req.Status != "resolved" && *req.Status != "closed" {
			feedback.ResolvedAt = nil
		}
	}
	if req.Priority != nil {
		feedback.Priority = *req.Priority
	}
	if req.Notes != nil {
		feedback.Notes = *req.Notes
	}

	if err := s.feedbackRepository.UpdateFeedback(ctx, feedback); err != nil {
		logger.Log.Errorw("failed to update feedback", "id", id, "error", err)
		return domain.FeedbackResponse{}, err
	}

	return buildFeedbackResponse(feedback), nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id string, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.feedbackRepository.GetFeedbackByID(ctx, id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFeedbackNotFound
		}
		return err
	}

	return s.feedbackRepository.DeleteFeedback(ctx, id, uid)
}

func buildFeedbackResponse(feedback *entities.Feedback) domain.FeedbackResponse {
	return domain.FeedbackResponse{
		ID:          feedback.ID.String(),
		Type:        feedback.Type,
		Title:       feedback.Title,
		Description: feedback.Description,
		Status:      feedback.Status,
		Priority:    feedback.Priority,
		Notes:       feedback.Notes,
		ResolvedAt:  feedback.ResolvedAt,
		CreatedAt:   feedback.CreatedAt,
	}
}
