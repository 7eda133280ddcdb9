package handlers

import (
	"errors"
	"testing"

	"pantrypal-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"pantry item not found", domain.ErrPantryItemNotFound, fiber.StatusNotFound},
		{"household not found", domain.ErrHouseholdNotFound, fiber.StatusNotFound},
		{"invite code not found", domain.ErrInviteCodeNotFound, fiber.StatusNotFound},
		{"duplicate recipe title", domain.ErrDuplicateRecipe, fiber.StatusConflict},
		{"duplicate email", domain.ErrEmailAlreadyExists, fiber.StatusBadRequest},
		{"already in household", domain.ErrAlreadyInHousehold, fiber.StatusBadRequest},
		{"expired invite code", domain.ErrInviteCodeExpired, fiber.StatusBadRequest},
		{"empty pantry", domain.ErrEmptyPantry, fiber.StatusBadRequest},
		{"password login on oauth account", domain.ErrPasswordLogin, fiber.StatusBadRequest},
		{"invalid verification token", domain.ErrVerificationInvalid, fiber.StatusBadRequest},
		{"bad uuid", domain.ErrParseUUID, fiber.StatusBadRequest},
		{"not household owner", domain.ErrNotHouseholdOwner, fiber.StatusForbidden},
		{"unverified account", domain.ErrAccountNotVerified, fiber.StatusForbidden},
		{"wrong credentials", domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{"gemini failure", domain.ErrGeminiAPIFailed, fiber.StatusInternalServerError},
		{"malformed model output", domain.ErrMalformedRecipes, fiber.StatusInternalServerError},
		{"unexpected error", errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}
