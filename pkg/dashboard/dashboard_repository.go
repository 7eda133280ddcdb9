package dashboard

import (
	"context"
	"time"

	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DashboardRepository interface {
		CountPantryItems(ctx context.Context, scope household.Scope) (int64, error)
		CountExpiringPantryItems(ctx context.Context, scope household.Scope, from, until time.Time) (int64, error)
		CountExpiredPantryItems(ctx context.Context, scope household.Scope, now time.Time) (int64, error)
		CountLowStockPantryItems(ctx context.Context, scope household.Scope, threshold float64) (int64, error)
		CountUncheckedShoppingItems(ctx context.Context, scope household.Scope) (int64, error)
		CountMealPlansOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)
		CountSavedRecipes(ctx context.Context, userID uuid.UUID) (int64, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountPantryItems(ctx context.Context, scope household.Scope) (int64, error) {
	var count int64
	err := scope.Apply(r.db.WithContext(ctx).Model(&entities.PantryItem{})).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountExpiringPantryItems(ctx context.Context, scope household.Scope, from, until time.Time) (int64, error) {
	var count int64
	err := scope.Apply(r.db.WithContext(ctx).Model(&entities.PantryItem{})).
		Where("expiration_date IS NOT NULL AND expiration_date >= ? AND expiration_date <= ?", from, until).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountExpiredPantryItems(ctx context.Context, scope household.Scope, now time.Time) (int64, error) {
	var count int64
	err := scope.Apply(r.db.WithContext(ctx).Model(&entities.PantryItem{})).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", now).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountLowStockPantryItems(ctx context.Context, scope household.Scope, threshold float64) (int64, error) {
	var count int64
	err := scope.Apply(r.db.WithContext(ctx).Model(&entities.PantryItem{})).
		Where("quantity <= ?", threshold).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountUncheckedShoppingItems(ctx context.Context, scope household.Scope) (int64, error) {
	var count int64
	err := scope.Apply(r.db.WithContext(ctx).Model(&entities.ShoppingListItem{})).
		Where("checked = ?", false).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountMealPlansOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MealPlan{}).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountSavedRecipes(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.SavedRecipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
