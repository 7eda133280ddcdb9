package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/pkg/dashboard"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContextResolver struct {
	hctx *domain.HouseholdContext
}

func (f *fakeContextResolver) ResolveContext(_ context.Context, _ string) (*domain.HouseholdContext, error) {
	return f.hctx, nil
}

type fakeDashboardRepository struct {
	totals        domain.DashboardOverviewResponse
	lowStockErr   error
	lastThreshold float64
	lastScope     household.Scope
}

func (f *fakeDashboardRepository) CountPantryItems(_ context.Context, scope household.Scope) (int64, error) {
	f.lastScope = scope
	return f.totals.TotalPantryItems, nil
}

func (f *fakeDashboardRepository) CountExpiringPantryItems(_ context.Context, _ household.Scope, _, _ time.Time) (int64, error) {
	return f.totals.ExpiringSoonItems, nil
}

func (f *fakeDashboardRepository) CountExpiredPantryItems(_ context.Context, _ household.Scope, _ time.Time) (int64, error) {
	return f.totals.ExpiredItems, nil
}

func (f *fakeDashboardRepository) CountLowStockPantryItems(_ context.Context, _ household.Scope, threshold float64) (int64, error) {
	f.lastThreshold = threshold
	return f.totals.LowStockItems, f.lowStockErr
}

func (f *fakeDashboardRepository) CountUncheckedShoppingItems(_ context.Context, _ household.Scope) (int64, error) {
	return f.totals.UncheckedShopping, nil
}

func (f *fakeDashboardRepository) CountMealPlansOnDate(_ context.Context, _ uuid.UUID, _ time.Time) (int64, error) {
	return f.totals.MealsPlannedToday, nil
}

func (f *fakeDashboardRepository) CountSavedRecipes(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.totals.SavedRecipes, nil
}

func TestGetOverview(t *testing.T) {
	userID := uuid.New()
	householdID := uuid.New()

	repo := &fakeDashboardRepository{
		totals: domain.DashboardOverviewResponse{
			TotalPantryItems:  12,
			ExpiringSoonItems: 3,
			ExpiredItems:      1,
			LowStockItems:     2,
			UncheckedShopping: 5,
			MealsPlannedToday: 2,
			SavedRecipes:      7,
		},
	}
	resolver := &fakeContextResolver{hctx: &domain.HouseholdContext{UserID: userID, HouseholdID: &householdID}}
	svc := dashboard.NewDashboardService(repo, resolver)

	overview, err := svc.GetOverview(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, repo.totals, overview)
	assert.Equal(t, float64(domain.LowStockThreshold), repo.lastThreshold)
	assert.True(t, repo.lastScope.IsHousehold())
}

func TestGetOverviewPropagatesRepositoryErrors(t *testing.T) {
	userID := uuid.New()
	repo := &fakeDashboardRepository{lowStockErr: errors.New("db down")}
	resolver := &fakeContextResolver{hctx: &domain.HouseholdContext{UserID: userID}}
	svc := dashboard.NewDashboardService(repo, resolver)

	_, err := svc.GetOverview(context.Background(), userID.String())
	assert.EqualError(t, err, "db down")
}
