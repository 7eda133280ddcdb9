package feedback

import (
	"context"

	"pantrypal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		AddFeedback(ctx context.Context, feedback *entities.Feedback) error
		GetFeedbackByID(ctx context.Context, id string, userID uuid.UUID) (*entities.Feedback, error)
		GetFeedback(ctx context.Context, userID uuid.UUID) ([]*entities.Feedback, error)
		UpdateFeedback(ctx context.Context, feedback *entities.Feedback) error
		DeleteFeedback(ctx context.Context, id string, userID uuid.UUID) error
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) AddFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetFeedbackByID(ctx context.Context, id string, userID uuid.UUID) (*entities.Feedback, error) {
	var feedback entities.Feedback
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) GetFeedback(ctx context.Context, userID uuid.UUID) ([]*entities.Feedback, error) {
	var feedback []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepository) UpdateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id string, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Feedback{}).Error
}
