package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidExpiryDate  = errors.New("invalid expiration date")
)

// Categories and storage locations accepted for pantry items.
var (
	PantryCategories       = []string{"produce", "dairy", "meat", "grains", "spices", "frozen", "canned", "other"}
	PantryStorageLocations = []string{"pantry", "fridge", "freezer"}
)

type (
	AddPantryItemRequest struct {
		Name            string   `json:"name" validate:"required"`
		Quantity        float64  `json:"quantity" validate:"min=0"`
		Unit            string   `json:"unit" validate:"required"`
		ExpirationDate  string   `json:"expiration_date" validate:"omitempty"`
		Category        string   `json:"category" validate:"omitempty,oneof=produce dairy meat grains spices frozen canned other"`
		StorageLocation string   `json:"storage_location" validate:"omitempty,oneof=pantry fridge freezer"`
		Calories        *float64 `json:"calories" validate:"omitempty,min=0"`
		Protein         *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbs           *float64 `json:"carbs" validate:"omitempty,min=0"`
		Fat             *float64 `json:"fat" validate:"omitempty,min=0"`
	}

	// UpdatePantryItemRequest is a patch: nil fields are left untouched.
	UpdatePantryItemRequest struct {
		Name            *string  `json:"name" validate:"omitempty"`
		Quantity        *float64 `json:"quantity" validate:"omitempty"`
		Unit            *string  `json:"unit" validate:"omitempty"`
		ExpirationDate  *string  `json:"expiration_date" validate:"omitempty"`
		Category        *string  `json:"category" validate:"omitempty,oneof=produce dairy meat grains spices frozen canned other"`
		StorageLocation *string  `json:"storage_location" validate:"omitempty,oneof=pantry fridge freezer"`
		Calories        *float64 `json:"calories" validate:"omitempty,min=0"`
		Protein         *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbs           *float64 `json:"carbs" validate:"omitempty,min=0"`
		Fat             *float64 `json:"fat" validate:"omitempty,min=0"`
	}

	PantryItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Quantity        float64    `json:"quantity"`
		Unit            string     `json:"unit"`
		ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
		Category        string     `json:"category"`
		StorageLocation string     `json:"storage_location"`
		Calories        *float64   `json:"calories,omitempty"`
		Protein         *float64   `json:"protein,omitempty"`
		Carbs           *float64   `json:"carbs,omitempty"`
		Fat             *float64   `json:"fat,omitempty"`
		HouseholdID     string     `json:"household_id,omitempty"`
		CreatedByUserID string     `json:"created_by_user_id"`
		CreatedByName   string     `json:"created_by_name"`
		CreatedAt       time.Time  `json:"created_at"`
	}
)
