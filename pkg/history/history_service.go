package history

import (
	"context"
	"encoding/json"
	"errors"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeHistoryService interface {
		RecordGeneration(ctx context.Context, hctx *domain.HouseholdContext, prompt string, recipes []domain.GeneratedRecipe) (*entities.RecipeHistory, error)
		GetHistory(ctx context.Context, userID string) ([]domain.RecipeHistoryResponse, error)
		GetHistoryByID(ctx context.Context, id string, userID string) (domain.RecipeHistoryResponse, error)
		DeleteHistory(ctx context.Context, id string, userID string) error
	}

	recipeHistoryService struct {
		historyRepository RecipeHistoryRepository
		contexts          household.ContextResolver
	}
)

func NewRecipeHistoryService(historyRepository RecipeHistoryRepository, contexts household.ContextResolver) RecipeHistoryService {
	return &recipeHistoryService{
		historyRepository: historyRepository,
		contexts:          contexts,
	}
}

// RecordGeneration appends a snapshot of a generation run. The caller
// already resolved the household context, so it is passed in directly.
func (s *recipeHistoryService) RecordGeneration(ctx context.Context, hctx *domain.HouseholdContext, prompt string, recipes []domain.GeneratedRecipe) (*entities.RecipeHistory, error) {
	raw, err := json.Marshal(recipes)
	if err != nil {
		return nil, err
	}

	attr := household.NewAttribution(hctx)
	entry := entities.RecipeHistory{
		ID:              uuid.New(),
		Prompt:          prompt,
		Recipes:         string(raw),
		UserID:          attr.UserID,
		HouseholdID:     attr.HouseholdID,
		CreatedByUserID: attr.CreatedByUserID,
		CreatedByName:   attr.CreatedByName,
	}

	if err := s.historyRepository.AddEntry(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *recipeHistoryService) GetHistory(ctx context.Context, userID string) ([]domain.RecipeHistoryResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.historyRepository.GetEntries(ctx, household.ScopeFromContext(hctx), domain.HistoryReadCap)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, buildHistoryResponse(entry))
	}
	return responses, nil
}

func (s *recipeHistoryService) GetHistoryByID(ctx context.Context, id string, userID string) (domain.RecipeHistoryResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.RecipeHistoryResponse{}, err
	}

	entry, err := s.historyRepository.GetEntryByID(ctx, id, household.ScopeFromContext(hctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeHistoryResponse{}, domain.ErrHistoryNotFound
		}
		return domain.RecipeHistoryResponse{}, err
	}

	return buildHistoryResponse(entry), nil
}

func (s *recipeHistoryService) DeleteHistory(ctx context.Context, id string, userID string) error {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return err
	}

	scope := household.ScopeFromContext(hctx)
	if _, err := s.historyRepository.GetEntryByID(ctx, id, scope); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrHistoryNotFound
		}
		return err
	}

	return s.historyRepository.DeleteEntry(ctx, id, scope)
}

func buildHistoryResponse(entry *entities.RecipeHistory) domain.RecipeHistoryResponse {
	var recipes []domain.GeneratedRecipe
	if entry.Recipes != "" {
		_ = json.Unmarshal([]byte(entry.Recipes), &recipes)
	}

	res := domain.RecipeHistoryResponse{
		ID:              entry.ID.String(),
		Prompt:          entry.Prompt,
		Recipes:         recipes,
		CreatedByUserID: entry.CreatedByUserID.String(),
		CreatedByName:   entry.CreatedByName,
		CreatedAt:       entry.CreatedAt,
	}
	if entry.HouseholdID != nil {
		res.HouseholdID = entry.HouseholdID.String()
	}
	return res
}
