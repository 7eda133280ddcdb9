package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveRecipe     = "recipe saved successfully"
	MessageSuccessUpdateRecipe   = "recipe updated successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessToggleFavorite = "recipe favorite toggled successfully"

	MessageFailedSaveRecipe     = "failed to save recipe"
	MessageFailedUpdateRecipe   = "failed to update recipe"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedToggleFavorite = "failed to toggle recipe favorite"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrDuplicateRecipe = errors.New("a recipe with this title already exists")
)

type (
	SaveRecipeRequest struct {
		Title       string   `json:"title" validate:"required"`
		Calories    float64  `json:"calories" validate:"omitempty,min=0"`
		Protein     float64  `json:"protein" validate:"omitempty,min=0"`
		Carbs       float64  `json:"carbs" validate:"omitempty,min=0"`
		Fat         float64  `json:"fat" validate:"omitempty,min=0"`
		Ingredients []string `json:"ingredients" validate:"omitempty"`
		Steps       []string `json:"steps" validate:"omitempty"`
		IsCustom    bool     `json:"is_custom"`
		Notes       string   `json:"notes" validate:"omitempty"`
	}

	// UpdateRecipeRequest is a patch: nil fields are left untouched.
	UpdateRecipeRequest struct {
		Title       *string   `json:"title" validate:"omitempty"`
		Calories    *float64  `json:"calories" validate:"omitempty,min=0"`
		Protein     *float64  `json:"protein" validate:"omitempty,min=0"`
		Carbs       *float64  `json:"carbs" validate:"omitempty,min=0"`
		Fat         *float64  `json:"fat" validate:"omitempty,min=0"`
		Ingredients *[]string `json:"ingredients" validate:"omitempty"`
		Steps       *[]string `json:"steps" validate:"omitempty"`
		Notes       *string   `json:"notes" validate:"omitempty"`
	}

	SavedRecipeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Calories    float64   `json:"calories"`
		Protein     float64   `json:"protein"`
		Carbs       float64   `json:"carbs"`
		Fat         float64   `json:"fat"`
		Ingredients []string  `json:"ingredients"`
		Steps       []string  `json:"steps"`
		IsFavorite  bool      `json:"is_favorite"`
		IsCustom    bool      `json:"is_custom"`
		Notes       string    `json:"notes,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
