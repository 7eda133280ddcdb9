package entities

import (
	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Checked  bool      `json:"checked"`
	Priority string    `json:"priority"` // "low", "medium", "high"
	Category string    `json:"category"`

	// Back-reference to the pantry item this entry restocks. The pantry
	// item may have been deleted since; the link is informational only.
	PantryItemID *uuid.UUID `json:"pantry_item_id,omitempty"`

	UserID          uuid.UUID  `json:"user_id"`
	HouseholdID     *uuid.UUID `json:"household_id,omitempty"`
	CreatedByUserID uuid.UUID  `json:"created_by_user_id"`
	CreatedByName   string     `json:"created_by_name"`

	User      *User      `gorm:"foreignKey:UserID"`
	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
