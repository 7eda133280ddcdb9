package entities

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string     `json:"name"`
	Quantity        float64    `json:"quantity"` // floored at 0 on write
	Unit            string     `json:"unit"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	Category        string     `json:"category"`         // "produce", "dairy", "meat", "grains", "spices", "frozen", "canned", "other"
	StorageLocation string     `json:"storage_location"` // "pantry", "fridge", "freezer"

	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`

	// Scope and attribution. HouseholdID nil means a personal item.
	UserID          uuid.UUID  `json:"user_id"`
	HouseholdID     *uuid.UUID `json:"household_id,omitempty"`
	CreatedByUserID uuid.UUID  `json:"created_by_user_id"`
	CreatedByName   string     `json:"created_by_name"`

	User      *User      `gorm:"foreignKey:UserID"`
	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
