package household_test

import (
	"testing"

	"pantrypal-backend/domain"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeFromContext(t *testing.T) {
	userID := uuid.New()
	householdID := uuid.New()

	tests := []struct {
		name          string
		hctx          *domain.HouseholdContext
		wantHousehold bool
	}{
		{
			name:          "no household resolves to personal scope",
			hctx:          &domain.HouseholdContext{UserID: userID},
			wantHousehold: false,
		},
		{
			name:          "active household resolves to household scope",
			hctx:          &domain.HouseholdContext{UserID: userID, HouseholdID: &householdID},
			wantHousehold: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := household.ScopeFromContext(tt.hctx)
			assert.Equal(t, tt.wantHousehold, scope.IsHousehold())
		})
	}
}

func TestNewAttribution(t *testing.T) {
	userID := uuid.New()
	householdID := uuid.New()

	t.Run("personal context", func(t *testing.T) {
		attr := household.NewAttribution(&domain.HouseholdContext{
			UserID:   userID,
			UserName: "Alice",
		})

		assert.Equal(t, userID, attr.UserID)
		assert.Nil(t, attr.HouseholdID)
		assert.Equal(t, userID, attr.CreatedByUserID)
		assert.Equal(t, "Alice", attr.CreatedByName)
	})

	t.Run("household context keeps author attribution", func(t *testing.T) {
		attr := household.NewAttribution(&domain.HouseholdContext{
			UserID:      userID,
			HouseholdID: &householdID,
			UserName:    "Bob",
		})

		assert.Equal(t, &householdID, attr.HouseholdID)
		assert.Equal(t, userID, attr.CreatedByUserID)
		assert.Equal(t, "Bob", attr.CreatedByName)
	})
}
