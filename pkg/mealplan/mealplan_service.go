package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/pkg/household"
	"pantrypal-backend/pkg/pantry"
	"pantrypal-backend/pkg/shoppinglist"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		GetMealPlans(ctx context.Context, userID, startDate, endDate string) ([]domain.MealPlanResponse, error)
		UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		ToggleMealPlan(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error)
		DeleteMealPlan(ctx context.Context, id string, userID string) error
		GenerateShoppingList(ctx context.Context, req domain.GeneratePlanShoppingRequest, userID string) (domain.GenerateShoppingResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		pantryRepository   pantry.PantryRepository
		shoppingRepository shoppinglist.ShoppingListRepository
		contexts           household.ContextResolver
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, pantryRepository pantry.PantryRepository, shoppingRepository shoppinglist.ShoppingListRepository, contexts household.ContextResolver) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		pantryRepository:   pantryRepository,
		shoppingRepository: shoppingRepository,
		contexts:           contexts,
	}
}

func (s *mealPlanService) AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidMealDate
	}

	plan := entities.MealPlan{
		ID:          uuid.New(),
		UserID:      uid,
		Date:        date,
		MealType:    req.MealType,
		RecipeTitle: req.Recipe.Title,
		Calories:    req.Recipe.Calories,
		Protein:     req.Recipe.Protein,
		Carbs:       req.Recipe.Carbs,
		Fat:         req.Recipe.Fat,
		Ingredients: marshalList(req.Recipe.Ingredients),
		Steps:       marshalList(req.Recipe.Steps),
		Notes:       req.Notes,
	}

	if err := s.mealPlanRepository.AddMealPlan(ctx, &plan); err != nil {
		logger.Log.Errorw("failed to add meal plan", "error", err)
		return domain.MealPlanResponse{}, err
	}

	return buildMealPlanResponse(&plan), nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, userID, startDate, endDate string) ([]domain.MealPlanResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var start, end *time.Time
	if startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, domain.ErrInvalidMealDate
		}
		start = &parsed
	}
	if endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, domain.ErrInvalidMealDate
		}
		end = &parsed
	}

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, uid, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, buildMealPlanResponse(plan))
	}
	return responses, nil
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return domain.MealPlanResponse{}, domain.ErrInvalidMealDate
		}
		plan.Date = date
	}
	if req.MealType != nil {
		plan.MealType = *req.MealType
	}
	if req.Recipe != nil {
		plan.RecipeTitle = req.Recipe.Title
		plan.Calories = req.Recipe.Calories
		plan.Protein = req.Recipe.Protein
		plan.Carbs = req.Recipe.Carbs
		plan.Fat = req.Recipe.Fat
		plan.Ingredients = marshalList(req.Recipe.Ingredients)
		plan.Steps = marshalList(req.Recipe.Steps)
	}
	if req.Completed != nil {
		plan.Completed = *req.Completed
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}

	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		logger.Log.Errorw("failed to update meal plan", "id", id, "error", err)
		return domain.MealPlanResponse{}, err
	}

	return buildMealPlanResponse(plan), nil
}

func (s *mealPlanService) ToggleMealPlan(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanResponse{}, err
	}

	plan.Completed = !plan.Completed
	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return buildMealPlanResponse(plan), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.mealPlanRepository.GetMealPlanByID(ctx, id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}

	return s.mealPlanRepository.DeleteMealPlan(ctx, id, uid)
}

// GenerateShoppingList diffs the ingredients of the meal plans in the
// given date range against what the pantry and the shopping list already
// hold, and adds an entry for everything still missing.
func (s *mealPlanService) GenerateShoppingList(ctx context.Context, req domain.GeneratePlanShoppingRequest, userID string) (domain.GenerateShoppingResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.GenerateShoppingResponse{}, domain.ErrInvalidMealDate
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || end.Before(start) {
		return domain.GenerateShoppingResponse{}, domain.ErrInvalidMealDate
	}

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, hctx.UserID, &start, &end)
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}

	scope := household.ScopeFromContext(hctx)
	pantryItems, err := s.pantryRepository.GetItems(ctx, scope, "", "", "")
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}
	shoppingItems, err := s.shoppingRepository.GetItems(ctx, scope)
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}

	stocked := make([]string, 0, len(pantryItems)+len(shoppingItems))
	for _, item := range pantryItems {
		stocked = append(stocked, strings.ToLower(item.Name))
	}
	for _, item := range shoppingItems {
		stocked = append(stocked, strings.ToLower(item.Name))
	}

	attr := household.NewAttribution(hctx)
	response := domain.GenerateShoppingResponse{Created: []domain.ShoppingItemResponse{}}
	added := make(map[string]bool)
	for _, plan := range plans {
		for _, ingredient := range unmarshalList(plan.Ingredients) {
			key := strings.ToLower(strings.TrimSpace(ingredient))
			if key == "" || added[key] {
				continue
			}
			if isStocked(key, stocked) {
				response.Skipped++
				added[key] = true
				continue
			}

			item := entities.ShoppingListItem{
				ID:              uuid.New(),
				Name:            strings.TrimSpace(ingredient),
				Quantity:        1,
				Priority:        "medium",
				UserID:          attr.UserID,
				HouseholdID:     attr.HouseholdID,
				CreatedByUserID: attr.CreatedByUserID,
				CreatedByName:   attr.CreatedByName,
			}
			if err := s.shoppingRepository.AddItem(ctx, &item); err != nil {
				logger.Log.Errorw("failed to add shopping item from meal plan", "name", item.Name, "error", err)
				return domain.GenerateShoppingResponse{}, err
			}
			added[key] = true
			response.Created = append(response.Created, domain.ShoppingItemResponse{
				ID:              item.ID.String(),
				Name:            item.Name,
				Quantity:        item.Quantity,
				Priority:        item.Priority,
				CreatedByUserID: item.CreatedByUserID.String(),
				CreatedByName:   item.CreatedByName,
				CreatedAt:       item.CreatedAt,
			})
		}
	}

	return response, nil
}

// isStocked matches loosely: "chicken breast" is covered by a pantry
// item named "chicken", and vice versa.
func isStocked(ingredient string, stocked []string) bool {
	for _, name := range stocked {
		if name == "" {
			continue
		}
		if strings.Contains(ingredient, name) || strings.Contains(name, ingredient) {
			return true
		}
	}
	return false
}

func marshalList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func unmarshalList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func buildMealPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	return domain.MealPlanResponse{
		ID:       plan.ID.String(),
		Date:     plan.Date,
		MealType: plan.MealType,
		Recipe: domain.MealPlanRecipe{
			Title:       plan.RecipeTitle,
			Calories:    plan.Calories,
			Protein:     plan.Protein,
			Carbs:       plan.Carbs,
			Fat:         plan.Fat,
			Ingredients: unmarshalList(plan.Ingredients),
			Steps:       unmarshalList(plan.Steps),
		},
		Completed: plan.Completed,
		Notes:     plan.Notes,
		CreatedAt: plan.CreatedAt,
	}
}
