package household

import (
	"context"

	"pantrypal-backend/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContextResolver is the slice of HouseholdService that scoped resource
// services need: one user lookup per request.
type ContextResolver interface {
	ResolveContext(ctx context.Context, userID string) (*domain.HouseholdContext, error)
}

// Scope identifies whose rows an operation touches: one user's personal
// rows, or a household's shared rows. The two cases are mutually
// exclusive. A personal row (household_id IS NULL) never matches a
// household scope and a household row never matches a personal one.
type Scope struct {
	userID      uuid.UUID
	householdID *uuid.UUID
}

func PersonalScope(userID uuid.UUID) Scope {
	return Scope{userID: userID}
}

func HouseholdScope(householdID uuid.UUID) Scope {
	return Scope{householdID: &householdID}
}

// ScopeFromContext picks the household scope when the caller has an
// active household, the personal scope otherwise.
func ScopeFromContext(hctx *domain.HouseholdContext) Scope {
	if hctx.HouseholdID != nil {
		return HouseholdScope(*hctx.HouseholdID)
	}
	return PersonalScope(hctx.UserID)
}

func (s Scope) IsHousehold() bool {
	return s.householdID != nil
}

// Apply narrows a query to the scope's partition.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	if s.householdID != nil {
		return tx.Where("household_id = ?", *s.householdID)
	}
	return tx.Where("user_id = ? AND household_id IS NULL", s.userID)
}

// Attribution is the set of ownership fields stamped onto every new
// scoped row: the scope itself plus the actual author, so household
// members stay individually attributable on shared data.
type Attribution struct {
	UserID          uuid.UUID
	HouseholdID     *uuid.UUID
	CreatedByUserID uuid.UUID
	CreatedByName   string
}

func NewAttribution(hctx *domain.HouseholdContext) Attribution {
	return Attribution{
		UserID:          hctx.UserID,
		HouseholdID:     hctx.HouseholdID,
		CreatedByUserID: hctx.UserID,
		CreatedByName:   hctx.UserName,
	}
}
