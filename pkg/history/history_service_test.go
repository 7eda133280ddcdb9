package history_test

import (
	"context"
	"testing"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/history"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeContextResolver struct {
	hctx *domain.HouseholdContext
}

func (f *fakeContextResolver) ResolveContext(_ context.Context, _ string) (*domain.HouseholdContext, error) {
	return f.hctx, nil
}

type fakeHistoryRepository struct {
	entries   map[string]*entities.RecipeHistory
	lastLimit int
	deleted   []string
}

func newFakeHistoryRepository() *fakeHistoryRepository {
	return &fakeHistoryRepository{entries: map[string]*entities.RecipeHistory{}}
}

func (f *fakeHistoryRepository) AddEntry(_ context.Context, entry *entities.RecipeHistory) error {
	f.entries[entry.ID.String()] = entry
	return nil
}

func (f *fakeHistoryRepository) GetEntryByID(_ context.Context, id string, _ household.Scope) (*entities.RecipeHistory, error) {
	if entry, ok := f.entries[id]; ok {
		return entry, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHistoryRepository) GetEntries(_ context.Context, _ household.Scope, limit int) ([]*entities.RecipeHistory, error) {
	f.lastLimit = limit
	out := make([]*entities.RecipeHistory, 0, len(f.entries))
	for _, entry := range f.entries {
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeHistoryRepository) DeleteEntry(_ context.Context, id string, _ household.Scope) error {
	f.deleted = append(f.deleted, id)
	delete(f.entries, id)
	return nil
}

func newTestService(repo *fakeHistoryRepository, userID uuid.UUID) history.RecipeHistoryService {
	resolver := &fakeContextResolver{hctx: &domain.HouseholdContext{UserID: userID, UserName: "Alice"}}
	return history.NewRecipeHistoryService(repo, resolver)
}

func TestRecordGeneration(t *testing.T) {
	userID := uuid.New()
	repo := newFakeHistoryRepository()
	svc := newTestService(repo, userID)

	recipes := []domain.GeneratedRecipe{
		{Title: "Fried rice", Ingredients: []string{"rice", "eggs"}, Steps: []string{"fry"}},
	}
	hctx := &domain.HouseholdContext{UserID: userID, UserName: "Alice"}

	entry, err := svc.RecordGeneration(context.Background(), hctx, "use up the rice", recipes)
	require.NoError(t, err)

	assert.Equal(t, "use up the rice", entry.Prompt)
	assert.Equal(t, userID, entry.CreatedByUserID)
	assert.Contains(t, entry.Recipes, "Fried rice")

	// The snapshot survives the round trip through the read path.
	res, err := svc.GetHistoryByID(context.Background(), entry.ID.String(), userID.String())
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, "Fried rice", res.Recipes[0].Title)
}

func TestGetHistoryAppliesReadCap(t *testing.T) {
	userID := uuid.New()
	repo := newFakeHistoryRepository()
	svc := newTestService(repo, userID)

	_, err := svc.GetHistory(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryReadCap, repo.lastLimit)
}

func TestDeleteHistory(t *testing.T) {
	userID := uuid.New()
	repo := newFakeHistoryRepository()
	svc := newTestService(repo, userID)

	entry := &entities.RecipeHistory{ID: uuid.New(), UserID: userID}
	repo.entries[entry.ID.String()] = entry

	assert.ErrorIs(t,
		svc.DeleteHistory(context.Background(), uuid.NewString(), userID.String()),
		domain.ErrHistoryNotFound,
	)

	require.NoError(t, svc.DeleteHistory(context.Background(), entry.ID.String(), userID.String()))
	assert.Contains(t, repo.deleted, entry.ID.String())
}
