package entities

import (
	"github.com/google/uuid"
)

// RecipeHistory is an append-only log of AI generation runs. Reads are
// capped to the 50 most recent entries per scope.
type RecipeHistory struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Prompt  string    `gorm:"type:text" json:"prompt,omitempty"`
	Recipes string    `gorm:"type:text" json:"recipes"` // JSON snapshot of the generated list

	UserID          uuid.UUID  `json:"user_id"`
	HouseholdID     *uuid.UUID `json:"household_id,omitempty"`
	CreatedByUserID uuid.UUID  `json:"created_by_user_id"`
	CreatedByName   string     `json:"created_by_name"`

	User      *User      `gorm:"foreignKey:UserID"`
	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
