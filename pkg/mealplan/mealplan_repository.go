package mealplan

import (
	"context"
	"time"

	"pantrypal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		AddMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string, userID uuid.UUID) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string, userID uuid.UUID) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) AddMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string, userID uuid.UUID) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*entities.MealPlan, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var plans []*entities.MealPlan
	if err := query.Order("date asc, meal_type asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.MealPlan{}).Error
}
