package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Date     time.Time `gorm:"type:date" json:"date"`
	MealType string    `json:"meal_type"` // "breakfast", "lunch", "dinner", "snack"

	RecipeTitle string  `json:"recipe_title"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Ingredients string  `gorm:"type:text" json:"ingredients"` // JSON array of strings
	Steps       string  `gorm:"type:text" json:"steps"`       // JSON array of strings

	Completed bool   `json:"completed"`
	Notes     string `gorm:"type:text" json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
