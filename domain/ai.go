package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateText    = "text generated successfully"
	MessageSuccessGenerateRecipes = "recipes generated successfully"

	MessageFailedGenerateText    = "failed to generate text"
	MessageFailedGenerateRecipes = "failed to generate recipes"

	ErrEmptyPantry      = errors.New("pantry is empty or fully expired")
	ErrGeminiAPIFailed  = errors.New("gemini processing failed")
	ErrMalformedRecipes = errors.New("failed to parse generated recipes")
)

type (
	GenerateTextRequest struct {
		Prompt string `json:"prompt" validate:"required"`
	}

	GenerateTextResponse struct {
		Text string `json:"text"`
	}

	GenerateRecipesRequest struct {
		MealType string `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		Servings int    `json:"servings" validate:"omitempty,min=1"`
	}

	GeneratedRecipe struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Calories    float64  `json:"calories"`
		Protein     float64  `json:"protein"`
		Carbs       float64  `json:"carbs"`
		Fat         float64  `json:"fat"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}

	GenerateRecipesResponse struct {
		Recipes       []GeneratedRecipe `json:"recipes"`
		ExpiringItems int               `json:"expiring_items"`
		HistoryID     string            `json:"history_id"`
	}
)
