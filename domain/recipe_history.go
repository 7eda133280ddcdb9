package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetHistory    = "recipe history retrieved successfully"
	MessageSuccessDeleteHistory = "recipe history entry deleted successfully"

	MessageFailedGetHistory    = "failed to retrieve recipe history"
	MessageFailedDeleteHistory = "failed to delete recipe history entry"

	ErrHistoryNotFound = errors.New("recipe history entry not found")
)

// HistoryReadCap limits how many entries a list read returns.
const HistoryReadCap = 50

type RecipeHistoryResponse struct {
	ID              string            `json:"id"`
	Prompt          string            `json:"prompt,omitempty"`
	Recipes         []GeneratedRecipe `json:"recipes"`
	HouseholdID     string            `json:"household_id,omitempty"`
	CreatedByUserID string            `json:"created_by_user_id"`
	CreatedByName   string            `json:"created_by_name"`
	CreatedAt       time.Time         `json:"created_at"`
}
