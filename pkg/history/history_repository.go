package history

import (
	"context"

	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"gorm.io/gorm"
)

type (
	RecipeHistoryRepository interface {
		AddEntry(ctx context.Context, entry *entities.RecipeHistory) error
		GetEntryByID(ctx context.Context, id string, scope household.Scope) (*entities.RecipeHistory, error)
		GetEntries(ctx context.Context, scope household.Scope, limit int) ([]*entities.RecipeHistory, error)
		DeleteEntry(ctx context.Context, id string, scope household.Scope) error
	}

	recipeHistoryRepository struct {
		db *gorm.DB
	}
)

func NewRecipeHistoryRepository(db *gorm.DB) RecipeHistoryRepository {
	return &recipeHistoryRepository{db: db}
}

func (r *recipeHistoryRepository) AddEntry(ctx context.Context, entry *entities.RecipeHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *recipeHistoryRepository) GetEntryByID(ctx context.Context, id string, scope household.Scope) (*entities.RecipeHistory, error) {
	var entry entities.RecipeHistory
	if err := scope.Apply(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *recipeHistoryRepository) GetEntries(ctx context.Context, scope household.Scope, limit int) ([]*entities.RecipeHistory, error) {
	var entries []*entities.RecipeHistory
	if err := scope.Apply(r.db.WithContext(ctx)).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *recipeHistoryRepository) DeleteEntry(ctx context.Context, id string, scope household.Scope) error {
	return scope.Apply(r.db.WithContext(ctx)).
		Where("id = ?", id).
		Delete(&entities.RecipeHistory{}).Error
}
