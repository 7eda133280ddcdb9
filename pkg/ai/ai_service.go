package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/pkg/history"
	"pantrypal-backend/pkg/household"
	"pantrypal-backend/pkg/pantry"
	"pantrypal-backend/pkg/user"

	"github.com/google/uuid"
)

type (
	AIService interface {
		GenerateText(ctx context.Context, req domain.GenerateTextRequest) (domain.GenerateTextResponse, error)
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error)
	}

	aiService struct {
		gemini           GeminiClient
		pantryRepository pantry.PantryRepository
		userRepository   user.UserRepository
		historyService   history.RecipeHistoryService
		contexts         household.ContextResolver
	}
)

func NewAIService(gemini GeminiClient, pantryRepository pantry.PantryRepository, userRepository user.UserRepository, historyService history.RecipeHistoryService, contexts household.ContextResolver) AIService {
	return &aiService{
		gemini:           gemini,
		pantryRepository: pantryRepository,
		userRepository:   userRepository,
		historyService:   historyService,
		contexts:         contexts,
	}
}

func (s *aiService) GenerateText(ctx context.Context, req domain.GenerateTextRequest) (domain.GenerateTextResponse, error) {
	text, err := s.gemini.GenerateContent(ctx, req.Prompt)
	if err != nil {
		return domain.GenerateTextResponse{}, err
	}
	return domain.GenerateTextResponse{Text: stripCodeFences(text)}, nil
}

// GenerateRecipes builds a prompt from the non-expired pantry inventory
// and the user's dietary profile, asks Gemini for recipe suggestions and
// records the run in the generation history. An empty or fully expired
// pantry fails before the model is ever called.
func (s *aiService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	scope := household.ScopeFromContext(hctx)
	items, err := s.pantryRepository.GetItems(ctx, scope, "", "", "")
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	now := time.Now()
	expired, err := s.pantryRepository.GetItemsExpiringBefore(ctx, scope, now)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}
	expiredIDs := make(map[uuid.UUID]bool, len(expired))
	for _, item := range expired {
		expiredIDs[item.ID] = true
	}

	usable := make([]*entities.PantryItem, 0, len(items))
	for _, item := range items {
		if expiredIDs[item.ID] {
			continue
		}
		usable = append(usable, item)
	}
	if len(usable) == 0 {
		return domain.GenerateRecipesResponse{}, domain.ErrEmptyPantry
	}

	profile, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	prompt, expiringItems := buildRecipePrompt(usable, profile, req, now)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	recipes, err := parseGeneratedRecipes(text)
	if err != nil {
		logger.Log.Errorw("failed to parse generated recipes", "error", err)
		return domain.GenerateRecipesResponse{}, domain.ErrMalformedRecipes
	}

	entry, err := s.historyService.RecordGeneration(ctx, hctx, prompt, recipes)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	return domain.GenerateRecipesResponse{
		Recipes:       recipes,
		ExpiringItems: expiringItems,
		HistoryID:     entry.ID.String(),
	}, nil
}

// buildRecipePrompt sorts the inventory into urgency buckets so the
// model favors ingredients about to expire. It returns the prompt and
// the number of items expiring within a week.
func buildRecipePrompt(items []*entities.PantryItem, profile *entities.User, req domain.GenerateRecipesRequest, now time.Time) (string, int) {
	var urgent, soon, later []string
	for _, item := range items {
		line := fmt.Sprintf("%s (%.1f %s)", item.Name, item.Quantity, item.Unit)
		if item.ExpirationDate == nil {
			later = append(later, line)
			continue
		}
		days := item.ExpirationDate.Sub(now).Hours() / 24
		switch {
		case days <= 3:
			urgent = append(urgent, line)
		case days <= 7:
			soon = append(soon, line)
		default:
			later = append(later, line)
		}
	}

	var b strings.Builder
	b.WriteString("You are a professional chef generating recipes from a household pantry. ")
	b.WriteString("Available ingredients, grouped by urgency:\n")
	if len(urgent) > 0 {
		b.WriteString("Expiring within 3 days (use these first): " + strings.Join(urgent, ", ") + "\n")
	}
	if len(soon) > 0 {
		b.WriteString("Expiring within a week: " + strings.Join(soon, ", ") + "\n")
	}
	if len(later) > 0 {
		b.WriteString("Fresh or long-lived: " + strings.Join(later, ", ") + "\n")
	}

	if allergies := splitCSV(profile.Allergies); len(allergies) > 0 {
		b.WriteString("The user is allergic to: " + strings.Join(allergies, ", ") + ". Never include these.\n")
	}
	if prefs := splitCSV(profile.DietaryPreferences); len(prefs) > 0 {
		b.WriteString("Dietary preferences: " + strings.Join(prefs, ", ") + ".\n")
	}
	if cuisines := splitCSV(profile.PreferredCuisines); len(cuisines) > 0 {
		b.WriteString("Preferred cuisines: " + strings.Join(cuisines, ", ") + ".\n")
	}

	if req.MealType != "" {
		b.WriteString("The recipes should be suitable for " + req.MealType + ".\n")
	}
	servings := req.Servings
	if servings <= 0 {
		servings = 2
	}
	fmt.Fprintf(&b, "Each recipe should serve %d.\n", servings)

	b.WriteString("Generate 3 unique recipes using mostly the listed ingredients, prioritizing the ones closest to expiry. ")
	b.WriteString("Respond with a valid JSON array of 3 recipe objects with exactly these fields: ")
	b.WriteString("title, description, calories, protein, carbs, fat, ingredients (array of strings), steps (array of strings). ")
	b.WriteString("Do not include any explanations or text outside of the JSON array.")

	return b.String(), len(urgent) + len(soon)
}

func parseGeneratedRecipes(text string) ([]domain.GeneratedRecipe, error) {
	text = stripCodeFences(text)

	// A bare object carries arrays in its ingredients/steps fields, so
	// pick the branch by whichever bracket opens first.
	arrIdx := strings.Index(text, "[")
	objIdx := strings.Index(text, "{")
	switch {
	case arrIdx != -1 && (objIdx == -1 || arrIdx < objIdx):
		endIdx := strings.LastIndex(text, "]")
		if endIdx < arrIdx {
			return nil, fmt.Errorf("invalid response format: %s", text)
		}
		text = text[arrIdx : endIdx+1]
	case objIdx != -1:
		endIdx := strings.LastIndex(text, "}")
		if endIdx < objIdx {
			return nil, fmt.Errorf("invalid response format: %s", text)
		}
		text = "[" + text[objIdx:endIdx+1] + "]"
	default:
		return nil, fmt.Errorf("invalid response format: %s", text)
	}

	var recipes []domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(text), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
