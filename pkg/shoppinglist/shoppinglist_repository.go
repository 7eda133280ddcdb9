package shoppinglist

import (
	"context"
	"errors"

	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		AddItem(ctx context.Context, item *entities.ShoppingListItem) error
		GetItemByID(ctx context.Context, id string, scope household.Scope) (*entities.ShoppingListItem, error)
		GetItems(ctx context.Context, scope household.Scope) ([]*entities.ShoppingListItem, error)
		GetLinkedPantryItemIDs(ctx context.Context, scope household.Scope) (map[uuid.UUID]bool, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteItem(ctx context.Context, id string, scope household.Scope) error
		DeleteCheckedItems(ctx context.Context, scope household.Scope) error
		MoveToPantry(ctx context.Context, item *entities.ShoppingListItem, scope household.Scope, attr household.Attribution) (*entities.PantryItem, bool, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) AddItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingListRepository) GetItemByID(ctx context.Context, id string, scope household.Scope) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := scope.Apply(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) GetItems(ctx context.Context, scope household.Scope) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := scope.Apply(r.db.WithContext(ctx)).
		Order("checked asc, created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) GetLinkedPantryItemIDs(ctx context.Context, scope household.Scope) (map[uuid.UUID]bool, error) {
	var items []*entities.ShoppingListItem
	if err := scope.Apply(r.db.WithContext(ctx)).
		Where("pantry_item_id IS NOT NULL").
		Find(&items).Error; err != nil {
		return nil, err
	}

	linked := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		linked[*item.PantryItemID] = true
	}
	return linked, nil
}

func (r *shoppingListRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, id string, scope household.Scope) error {
	return scope.Apply(r.db.WithContext(ctx)).
		Where("id = ?", id).
		Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingListRepository) DeleteCheckedItems(ctx context.Context, scope household.Scope) error {
	return scope.Apply(r.db.WithContext(ctx)).
		Where("checked = ?", true).
		Delete(&entities.ShoppingListItem{}).Error
}

// MoveToPantry transfers a bought shopping item into the pantry and
// removes it from the list, all in one transaction. When the item still
// links to an existing pantry row the quantity is incremented there;
// otherwise a fresh pantry row is created.
func (r *shoppingListRepository) MoveToPantry(ctx context.Context, item *entities.ShoppingListItem, scope household.Scope, attr household.Attribution) (*entities.PantryItem, bool, error) {
	var pantryItem *entities.PantryItem
	var created bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.PantryItemID != nil {
			var existing entities.PantryItem
			err := scope.Apply(tx).Where("id = ?", *item.PantryItemID).First(&existing).Error
			if err == nil {
				existing.Quantity += item.Quantity
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				pantryItem = &existing
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if pantryItem == nil {
			category := item.Category
			if category == "" {
				category = "other"
			}
			fresh := entities.PantryItem{
				ID:              uuid.New(),
				Name:            item.Name,
				Quantity:        item.Quantity,
				Unit:            item.Unit,
				Category:        category,
				StorageLocation: "pantry",
				UserID:          attr.UserID,
				HouseholdID:     attr.HouseholdID,
				CreatedByUserID: attr.CreatedByUserID,
				CreatedByName:   attr.CreatedByName,
			}
			if err := tx.Create(&fresh).Error; err != nil {
				return err
			}
			pantryItem = &fresh
			created = true
		}

		return tx.Where("id = ?", item.ID).Delete(&entities.ShoppingListItem{}).Error
	})
	if err != nil {
		return nil, false, err
	}

	return pantryItem, created, nil
}
