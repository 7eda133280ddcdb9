package handlers

import (
	"errors"

	"pantrypal-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps domain sentinels to HTTP status codes so every
// handler reports the same code for the same condition.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrHistoryNotFound),
		errors.Is(err, domain.ErrFeedbackNotFound),
		errors.Is(err, domain.ErrHouseholdNotFound),
		errors.Is(err, domain.ErrInviteCodeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateRecipe):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotHouseholdOwner),
		errors.Is(err, domain.ErrNotHouseholdMember),
		errors.Is(err, domain.ErrOwnerCannotBeRemoved),
		errors.Is(err, domain.ErrAccountNotVerified),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrGoogleTokenInvalid),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidMealDate),
		errors.Is(err, domain.ErrEmptyPantry),
		errors.Is(err, domain.ErrVerificationInvalid),
		errors.Is(err, domain.ErrAccountAlreadyVerified),
		errors.Is(err, domain.ErrPasswordLogin),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyInHousehold),
		errors.Is(err, domain.ErrInviteCodeExpired):
		return fiber.StatusBadRequest
	default:
		// Gemini failures, malformed model output, raw DB errors and
		// anything else unexpected.
		return fiber.StatusInternalServerError
	}
}
