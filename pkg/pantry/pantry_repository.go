package pantry

import (
	"context"
	"strings"
	"time"

	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id string, scope household.Scope) (*entities.PantryItem, error)
		GetItems(ctx context.Context, scope household.Scope, category, location, search string) ([]*entities.PantryItem, error)
		GetLowStockItems(ctx context.Context, scope household.Scope, threshold float64) ([]*entities.PantryItem, error)
		GetItemsExpiringBefore(ctx context.Context, scope household.Scope, deadline time.Time) ([]*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id string, scope household.Scope) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string, scope household.Scope) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := scope.Apply(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetItems(ctx context.Context, scope household.Scope, category, location, search string) ([]*entities.PantryItem, error) {
	query := scope.Apply(r.db.WithContext(ctx))

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if location != "" && location != "all" {
		query = query.Where("storage_location = ?", location)
	}
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var items []*entities.PantryItem
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetLowStockItems(ctx context.Context, scope household.Scope, threshold float64) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := scope.Apply(r.db.WithContext(ctx)).
		Where("quantity <= ?", threshold).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemsExpiringBefore(ctx context.Context, scope household.Scope, deadline time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := scope.Apply(r.db.WithContext(ctx)).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", deadline).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id string, scope household.Scope) error {
	return scope.Apply(r.db.WithContext(ctx)).
		Where("id = ?", id).
		Delete(&entities.PantryItem{}).Error
}
