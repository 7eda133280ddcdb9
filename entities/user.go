package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"` // empty for OAuth-only accounts
	GoogleID *string   `gorm:"uniqueIndex" json:"-"`
	Name     string    `json:"name"`
	Role     string    `json:"role"` // "user"

	IsVerified         bool       `json:"is_verified"`
	VerificationToken  string     `json:"-"`
	VerificationExpiry *time.Time `json:"-"`
	LastLogin          *time.Time `json:"last_login,omitempty"`

	// Comma-separated preference lists, e.g. "vegetarian,low-carb".
	DietaryPreferences string `gorm:"type:text" json:"dietary_preferences"`
	Allergies          string `gorm:"type:text" json:"allergies"`
	PreferredCuisines  string `gorm:"type:text" json:"preferred_cuisines"`

	HouseholdID *uuid.UUID `json:"household_id,omitempty"` // active household
	AvatarURL   string     `json:"avatar_url,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}
