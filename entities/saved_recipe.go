package entities

import (
	"github.com/google/uuid"
)

type SavedRecipe struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	// Unique per user, case-insensitive, enforced at write time.
	Title string `json:"title"`

	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Ingredients string  `gorm:"type:text" json:"ingredients"` // JSON array of strings
	Steps       string  `gorm:"type:text" json:"steps"`       // JSON array of strings

	IsFavorite bool   `json:"is_favorite"`
	IsCustom   bool   `json:"is_custom"`
	Notes      string `gorm:"type:text" json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
