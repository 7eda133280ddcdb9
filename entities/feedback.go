package entities

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Type        string     `json:"type"` // "bug", "feature", "improvement", "other"
	Title       string     `json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `json:"status"`   // "open", "in_progress", "resolved", "closed"
	Priority    string     `json:"priority"` // "low", "medium", "high"
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
