package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddMealPlan      = "meal plan added successfully"
	MessageSuccessUpdateMealPlan   = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan   = "meal plan deleted successfully"
	MessageSuccessGetMealPlans     = "meal plans retrieved successfully"
	MessageSuccessToggleMealPlan   = "meal plan toggled successfully"
	MessageSuccessPlanShoppingList = "shopping list generated from meal plans"

	MessageFailedAddMealPlan      = "failed to add meal plan"
	MessageFailedUpdateMealPlan   = "failed to update meal plan"
	MessageFailedDeleteMealPlan   = "failed to delete meal plan"
	MessageFailedGetMealPlans     = "failed to retrieve meal plans"
	MessageFailedToggleMealPlan   = "failed to toggle meal plan"
	MessageFailedPlanShoppingList = "failed to generate shopping list from meal plans"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidMealDate  = errors.New("invalid meal plan date")
)

type (
	MealPlanRecipe struct {
		Title       string   `json:"title" validate:"required"`
		Calories    float64  `json:"calories" validate:"omitempty,min=0"`
		Protein     float64  `json:"protein" validate:"omitempty,min=0"`
		Carbs       float64  `json:"carbs" validate:"omitempty,min=0"`
		Fat         float64  `json:"fat" validate:"omitempty,min=0"`
		Ingredients []string `json:"ingredients" validate:"omitempty"`
		Steps       []string `json:"steps" validate:"omitempty"`
	}

	AddMealPlanRequest struct {
		Date     string         `json:"date" validate:"required"`
		MealType string         `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		Recipe   MealPlanRecipe `json:"recipe" validate:"required"`
		Notes    string         `json:"notes" validate:"omitempty"`
	}

	// UpdateMealPlanRequest is a patch: nil fields are left untouched.
	UpdateMealPlanRequest struct {
		Date      *string         `json:"date" validate:"omitempty"`
		MealType  *string         `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		Recipe    *MealPlanRecipe `json:"recipe" validate:"omitempty"`
		Completed *bool           `json:"completed" validate:"omitempty"`
		Notes     *string         `json:"notes" validate:"omitempty"`
	}

	GeneratePlanShoppingRequest struct {
		StartDate string `json:"start_date" validate:"required"`
		EndDate   string `json:"end_date" validate:"required"`
	}

	MealPlanResponse struct {
		ID        string         `json:"id"`
		Date      time.Time      `json:"date"`
		MealType  string         `json:"meal_type"`
		Recipe    MealPlanRecipe `json:"recipe"`
		Completed bool           `json:"completed"`
		Notes     string         `json:"notes,omitempty"`
		CreatedAt time.Time      `json:"created_at"`
	}
)
