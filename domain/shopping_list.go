package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingItem    = "shopping list item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping list item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping list item deleted successfully"
	MessageSuccessGetShoppingItems   = "shopping list retrieved successfully"
	MessageSuccessToggleShoppingItem = "shopping list item toggled successfully"
	MessageSuccessGenerateShopping   = "shopping list generated from low stock"
	MessageSuccessMoveToPantry       = "shopping list item moved to pantry"
	MessageSuccessClearChecked       = "checked items cleared successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping list item"
	MessageFailedUpdateShoppingItem = "failed to update shopping list item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping list item"
	MessageFailedGetShoppingItems   = "failed to retrieve shopping list"
	MessageFailedToggleShoppingItem = "failed to toggle shopping list item"
	MessageFailedGenerateShopping   = "failed to generate shopping list"
	MessageFailedMoveToPantry       = "failed to move shopping list item to pantry"
	MessageFailedClearChecked       = "failed to clear checked items"

	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

// LowStockThreshold marks pantry items worth restocking.
const LowStockThreshold = 2

type (
	AddShoppingItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"omitempty"`
		Priority string  `json:"priority" validate:"omitempty,oneof=low medium high"`
		Category string  `json:"category" validate:"omitempty"`
	}

	// UpdateShoppingItemRequest is a patch: nil fields are left untouched.
	UpdateShoppingItemRequest struct {
		Name     *string  `json:"name" validate:"omitempty"`
		Quantity *float64 `json:"quantity" validate:"omitempty"`
		Unit     *string  `json:"unit" validate:"omitempty"`
		Checked  *bool    `json:"checked" validate:"omitempty"`
		Priority *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
		Category *string  `json:"category" validate:"omitempty"`
	}

	ShoppingItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Quantity        float64   `json:"quantity"`
		Unit            string    `json:"unit"`
		Checked         bool      `json:"checked"`
		Priority        string    `json:"priority"`
		Category        string    `json:"category"`
		PantryItemID    string    `json:"pantry_item_id,omitempty"`
		HouseholdID     string    `json:"household_id,omitempty"`
		CreatedByUserID string    `json:"created_by_user_id"`
		CreatedByName   string    `json:"created_by_name"`
		CreatedAt       time.Time `json:"created_at"`
	}

	GenerateShoppingResponse struct {
		Created []ShoppingItemResponse `json:"created"`
		Skipped int                    `json:"skipped"`
	}

	MoveToPantryResponse struct {
		PantryItemID string  `json:"pantry_item_id"`
		NewQuantity  float64 `json:"new_quantity"`
		Created      bool    `json:"created"`
	}
)
