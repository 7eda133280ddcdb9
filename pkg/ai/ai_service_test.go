package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGemini struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeGemini) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.response, f.err
}

type fakeContextResolver struct {
	hctx *domain.HouseholdContext
}

func (f *fakeContextResolver) ResolveContext(_ context.Context, _ string) (*domain.HouseholdContext, error) {
	return f.hctx, nil
}

type fakePantryRepository struct {
	items []*entities.PantryItem
}

func (f *fakePantryRepository) AddItem(context.Context, *entities.PantryItem) error { return nil }

func (f *fakePantryRepository) GetItemByID(context.Context, string, household.Scope) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePantryRepository) GetItems(context.Context, household.Scope, string, string, string) ([]*entities.PantryItem, error) {
	return f.items, nil
}

func (f *fakePantryRepository) GetLowStockItems(context.Context, household.Scope, float64) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (f *fakePantryRepository) GetItemsExpiringBefore(_ context.Context, _ household.Scope, deadline time.Time) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range f.items {
		if item.ExpirationDate != nil && !item.ExpirationDate.After(deadline) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakePantryRepository) UpdateItem(context.Context, *entities.PantryItem) error { return nil }

func (f *fakePantryRepository) DeleteItem(context.Context, string, household.Scope) error {
	return nil
}

type fakeUserRepository struct {
	user *entities.User
}

func (f *fakeUserRepository) CreateUser(context.Context, *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByID(context.Context, string) (*entities.User, error) {
	return f.user, nil
}

func (f *fakeUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByGoogleID(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByVerificationToken(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(context.Context, *entities.User) error { return nil }

type fakeHistoryService struct {
	recorded []domain.GeneratedRecipe
	entry    *entities.RecipeHistory
}

func (f *fakeHistoryService) RecordGeneration(_ context.Context, _ *domain.HouseholdContext, _ string, recipes []domain.GeneratedRecipe) (*entities.RecipeHistory, error) {
	f.recorded = recipes
	if f.entry == nil {
		f.entry = &entities.RecipeHistory{ID: uuid.New()}
	}
	return f.entry, nil
}

func (f *fakeHistoryService) GetHistory(context.Context, string) ([]domain.RecipeHistoryResponse, error) {
	return nil, nil
}

func (f *fakeHistoryService) GetHistoryByID(context.Context, string, string) (domain.RecipeHistoryResponse, error) {
	return domain.RecipeHistoryResponse{}, nil
}

func (f *fakeHistoryService) DeleteHistory(context.Context, string, string) error { return nil }

const recipesJSON = `[
	{"title":"Veggie Omelette","description":"Quick","calories":320,"protein":18,"carbs":6,"fat":24,"ingredients":["eggs","spinach"],"steps":["whisk","fry"]},
	{"title":"Fried Rice","description":"Classic","calories":500,"protein":14,"carbs":70,"fat":16,"ingredients":["rice","eggs"],"steps":["cook","fry"]},
	{"title":"Spinach Soup","description":"Light","calories":180,"protein":6,"carbs":20,"fat":8,"ingredients":["spinach"],"steps":["boil"]}
]`

func newTestAIService(gemini *fakeGemini, pantryRepo *fakePantryRepository, profile *entities.User) (AIService, *fakeHistoryService) {
	historySvc := &fakeHistoryService{}
	resolver := &fakeContextResolver{hctx: &domain.HouseholdContext{UserID: uuid.New(), UserName: "Alice"}}
	svc := NewAIService(gemini, pantryRepo, &fakeUserRepository{user: profile}, historySvc, resolver)
	return svc, historySvc
}

func TestGenerateRecipes(t *testing.T) {
	gemini := &fakeGemini{response: "```json\n" + recipesJSON + "\n```"}
	soonDate := time.Now().AddDate(0, 0, 2)
	pantryRepo := &fakePantryRepository{items: []*entities.PantryItem{
		{ID: uuid.New(), Name: "Eggs", Quantity: 6, Unit: "pcs", ExpirationDate: &soonDate},
		{ID: uuid.New(), Name: "Rice", Quantity: 2, Unit: "kg"},
	}}
	profile := &entities.User{ID: uuid.New(), Allergies: "peanuts", DietaryPreferences: "vegetarian"}

	svc, historySvc := newTestAIService(gemini, pantryRepo, profile)

	res, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{MealType: "dinner"}, uuid.NewString())
	require.NoError(t, err)

	require.Len(t, res.Recipes, 3)
	assert.Equal(t, "Veggie Omelette", res.Recipes[0].Title)
	assert.Equal(t, 1, res.ExpiringItems)
	assert.NotEmpty(t, res.HistoryID)
	assert.Len(t, historySvc.recorded, 3)

	assert.Contains(t, gemini.prompt, "Eggs")
	assert.Contains(t, gemini.prompt, "peanuts")
	assert.Contains(t, gemini.prompt, "vegetarian")
	assert.Contains(t, gemini.prompt, "dinner")
}

func TestGenerateRecipesEmptyPantry(t *testing.T) {
	gemini := &fakeGemini{response: recipesJSON}
	expired := time.Now().AddDate(0, 0, -1)
	pantryRepo := &fakePantryRepository{items: []*entities.PantryItem{
		{ID: uuid.New(), Name: "Old milk", Quantity: 1, Unit: "l", ExpirationDate: &expired},
	}}
	svc, _ := newTestAIService(gemini, pantryRepo, &entities.User{ID: uuid.New()})

	_, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEmptyPantry)
	assert.Zero(t, gemini.calls)
}

func TestGenerateRecipesMalformedResponse(t *testing.T) {
	gemini := &fakeGemini{response: "Sorry, I can't help with that."}
	pantryRepo := &fakePantryRepository{items: []*entities.PantryItem{
		{ID: uuid.New(), Name: "Rice", Quantity: 2, Unit: "kg"},
	}}
	svc, _ := newTestAIService(gemini, pantryRepo, &entities.User{ID: uuid.New()})

	_, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMalformedRecipes)
}

func TestParseGeneratedRecipes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{
			name:    "plain array",
			input:   recipesJSON,
			wantLen: 3,
		},
		{
			name:    "fenced array",
			input:   "```json\n" + recipesJSON + "\n```",
			wantLen: 3,
		},
		{
			name:    "array with surrounding prose",
			input:   "Here are your recipes:\n" + recipesJSON + "\nEnjoy!",
			wantLen: 3,
		},
		{
			name:    "single object wrapped into array",
			input:   `{"title":"Soup","ingredients":["water"],"steps":["boil"]}`,
			wantLen: 1,
		},
		{
			name:    "single object with surrounding prose",
			input:   "Best match:\n" + `{"title":"Soup","ingredients":["water"],"steps":["boil"]}` + "\nEnjoy!",
			wantLen: 1,
		},
		{
			name:    "fenced single object",
			input:   "```json\n" + `{"title":"Soup","ingredients":["water"],"steps":["boil"]}` + "\n```",
			wantLen: 1,
		},
		{
			name:    "no json at all",
			input:   "I cannot generate recipes right now.",
			wantErr: true,
		},
		{
			name:    "broken json",
			input:   `[{"title":"Soup",]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := parseGeneratedRecipes(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, recipes, tt.wantLen)
		})
	}
}

func TestBuildRecipePromptBuckets(t *testing.T) {
	now := time.Now()
	in2Days := now.AddDate(0, 0, 2)
	in5Days := now.AddDate(0, 0, 5)
	in30Days := now.AddDate(0, 0, 30)

	items := []*entities.PantryItem{
		{Name: "Milk", Quantity: 1, Unit: "l", ExpirationDate: &in2Days},
		{Name: "Yogurt", Quantity: 2, Unit: "pcs", ExpirationDate: &in5Days},
		{Name: "Pasta", Quantity: 1, Unit: "kg", ExpirationDate: &in30Days},
		{Name: "Salt", Quantity: 1, Unit: "kg"},
	}

	prompt, expiring := buildRecipePrompt(items, &entities.User{}, domain.GenerateRecipesRequest{Servings: 4}, now)

	assert.Equal(t, 2, expiring)
	assert.Contains(t, prompt, "Expiring within 3 days")
	assert.Contains(t, prompt, "Milk")
	assert.Contains(t, prompt, "Expiring within a week")
	assert.Contains(t, prompt, "Yogurt")
	assert.Contains(t, prompt, "Fresh or long-lived")
	assert.Contains(t, prompt, "serve 4")
	assert.True(t, strings.Contains(prompt, "JSON array"))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
	assert.Equal(t, "", stripCodeFences("   "))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV("a, b"))
	assert.Equal(t, []string{"a"}, splitCSV("a,,  "))
	assert.Nil(t, splitCSV(""))
}
