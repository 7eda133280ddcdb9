package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SavedRecipeService interface {
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error)
		GetRecipes(ctx context.Context, userID string, favoritesOnly bool) ([]domain.SavedRecipeResponse, error)
		GetRecipeByID(ctx context.Context, id string, userID string) (domain.SavedRecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.SavedRecipeResponse, error)
		ToggleFavorite(ctx context.Context, id string, userID string) (domain.SavedRecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
	}

	savedRecipeService struct {
		recipeRepository SavedRecipeRepository
	}
)

func NewSavedRecipeService(recipeRepository SavedRecipeRepository) SavedRecipeService {
	return &savedRecipeService{recipeRepository: recipeRepository}
}

func (s *savedRecipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	title := strings.TrimSpace(req.Title)
	if _, err := s.recipeRepository.GetRecipeByTitle(ctx, strings.ToLower(title), uid); err == nil {
		return domain.SavedRecipeResponse{}, domain.ErrDuplicateRecipe
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SavedRecipeResponse{}, err
	}

	recipe := entities.SavedRecipe{
		ID:          uuid.New(),
		UserID:      uid,
		Title:       title,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Ingredients: marshalList(req.Ingredients),
		Steps:       marshalList(req.Steps),
		IsCustom:    req.IsCustom,
		Notes:       req.Notes,
	}

	if err := s.recipeRepository.SaveRecipe(ctx, &recipe); err != nil {
		logger.Log.Errorw("failed to save recipe", "title", title, "error", err)
		return domain.SavedRecipeResponse{}, err
	}

	return buildRecipeResponse(&recipe), nil
}

func (s *savedRecipeService) GetRecipes(ctx context.Context, userID string, favoritesOnly bool) ([]domain.SavedRecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	saved, err := s.recipeRepository.GetRecipes(ctx, uid, favoritesOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.SavedRecipeResponse, 0, len(saved))
	for _, recipe := range saved {
		responses = append(responses, buildRecipeResponse(recipe))
	}
	return responses, nil
}

func (s *savedRecipeService) GetRecipeByID(ctx context.Context, id string, userID string) (domain.SavedRecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SavedRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.SavedRecipeResponse{}, err
	}

	return buildRecipeResponse(recipe), nil
}

func (s *savedRecipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.SavedRecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SavedRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.SavedRecipeResponse{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if !strings.EqualFold(title, recipe.Title) {
			if _, err := s.recipeRepository.GetRecipeByTitle(ctx, strings.ToLower(title), uid); err == nil {
				return domain.SavedRecipeResponse{}, domain.ErrDuplicateRecipe
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.SavedRecipeResponse{}, err
			}
		}
		recipe.Title = title
	}
	if req.Calories != nil {
		recipe.Calories = *req.Calories
	}
	if req.Protein != nil {
		recipe.Protein = *req.Protein
	}
	if req.Carbs != nil {
		recipe.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		recipe.Fat = *req.Fat
	}
	if req.Ingredients != nil {
		recipe.Ingredients = marshalList(*req.Ingredients)
	}
	if req.Steps != nil {
		recipe.Steps = marshalList(*req.Steps)
	}
	if req.Notes != nil {
		recipe.Notes = *req.Notes
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		logger.Log.Errorw("failed to update recipe", "id", id, "error", err)
		return domain.SavedRecipeResponse{}, err
	}

	return buildRecipeResponse(recipe), nil
}

func (s *savedRecipeService) ToggleFavorite(ctx context.Context, id string, userID string) (domain.SavedRecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SavedRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.SavedRecipeResponse{}, err
	}

	recipe.IsFavorite = !recipe.IsFavorite
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	return buildRecipeResponse(recipe), nil
}

func (s *savedRecipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.DeleteRecipe(ctx, id, uid)
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

func buildRecipeResponse(recipe *entities.SavedRecipe) domain.SavedRecipeResponse {
	return domain.SavedRecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Calories:    recipe.Calories,
		Protein:     recipe.Protein,
		Carbs:       recipe.Carbs,
		Fat:         recipe.Fat,
		Ingredients: unmarshalList(recipe.Ingredients),
		Steps:       unmarshalList(recipe.Steps),
		IsFavorite:  recipe.IsFavorite,
		IsCustom:    recipe.IsCustom,
		Notes:       recipe.Notes,
		CreatedAt:   recipe.CreatedAt,
	}
}
