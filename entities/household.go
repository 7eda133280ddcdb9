package entities

import (
	"time"

	"github.com/google/uuid"
)

type Household struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `json:"name"`
	InviteCode       string    `gorm:"uniqueIndex" json:"invite_code"`
	InviteCodeExpiry time.Time `json:"invite_code_expiry"`

	Members []*HouseholdMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
	Timestamp
}

type HouseholdMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"` // "owner", "member"
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `gorm:"type:timestamp" json:"joined_at"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	User      *User      `gorm:"foreignKey:UserID"`
}
