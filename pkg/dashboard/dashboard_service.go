package dashboard

import (
	"context"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/pkg/household"
)

type (
	DashboardService interface {
		GetOverview(ctx context.Context, userID string) (domain.DashboardOverviewResponse, error)
	}

	dashboardService struct {
		dashboardRepository DashboardRepository
		contexts            household.ContextResolver
	}
)

func NewDashboardService(dashboardRepository DashboardRepository, contexts household.ContextResolver) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		contexts:            contexts,
	}
}

func (s *dashboardService) GetOverview(ctx context.Context, userID string) (domain.DashboardOverviewResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.DashboardOverviewResponse{}, err
	}

	scope := household.ScopeFromContext(hctx)
	now := time.Now()
	var overview domain.DashboardOverviewResponse

	if overview.TotalPantryItems, err = s.dashboardRepository.CountPantryItems(ctx, scope); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}
	if overview.ExpiringSoonItems, err = s.dashboardRepository.CountExpiringPantryItems(ctx, scope, now, now.AddDate(0, 0, 7)); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}
	if overview.ExpiredItems, err = s.dashboardRepository.CountExpiredPantryItems(ctx, scope, now); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}
	if overview.LowStockItems, err = s.dashboardRepository.CountLowStockPantryItems(ctx, scope, domain.LowStockThreshold); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}
	if overview.UncheckedShopping, err = s.dashboardRepository.CountUncheckedShoppingItems(ctx, scope); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}
	if overview.MealsPlannedToday, err = s.dashboardRepository.CountMealPlansOnDate(ctx, hctx.UserID, now); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}
	if overview.SavedRecipes, err = s.dashboardRepository.CountSavedRecipes(ctx, hctx.UserID); err != nil {
		return domain.DashboardOverviewResponse{}, err
	}

	return overview, nil
}
