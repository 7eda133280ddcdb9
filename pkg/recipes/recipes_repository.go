package recipes

import (
	"context"

	"pantrypal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SavedRecipeRepository interface {
		SaveRecipe(ctx context.Context, recipe *entities.SavedRecipe) error
		GetRecipeByID(ctx context.Context, id string, userID uuid.UUID) (*entities.SavedRecipe, error)
		GetRecipeByTitle(ctx context.Context, title string, userID uuid.UUID) (*entities.SavedRecipe, error)
		GetRecipes(ctx context.Context, userID uuid.UUID, favoritesOnly bool) ([]*entities.SavedRecipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.SavedRecipe) error
		DeleteRecipe(ctx context.Context, id string, userID uuid.UUID) error
	}

	savedRecipeRepository struct {
		db *gorm.DB
	}
)

func NewSavedRecipeRepository(db *gorm.DB) SavedRecipeRepository {
	return &savedRecipeRepository{db: db}
}

func (r *savedRecipeRepository) SaveRecipe(ctx context.Context, recipe *entities.SavedRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *savedRecipeRepository) GetRecipeByID(ctx context.Context, id string, userID uuid.UUID) (*entities.SavedRecipe, error) {
	var recipe entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *savedRecipeRepository) GetRecipeByTitle(ctx context.Context, title string, userID uuid.UUID) (*entities.SavedRecipe, error) {
	var recipe entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) = ? AND user_id = ?", title, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *savedRecipeRepository) GetRecipes(ctx context.Context, userID uuid.UUID, favoritesOnly bool) ([]*entities.SavedRecipe, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if favoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}

	var recipes []*entities.SavedRecipe
	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *savedRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.SavedRecipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *savedRecipeRepository) DeleteRecipe(ctx context.Context, id string, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.SavedRecipe{}).Error
}
