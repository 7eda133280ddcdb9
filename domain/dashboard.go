package domain

var (
	MessageSuccessGetOverview = "dashboard overview retrieved successfully"
	MessageFailedGetOverview  = "failed to retrieve dashboard overview"
)

type DashboardOverviewResponse struct {
	TotalPantryItems  int64 `json:"total_pantry_items"`
	ExpiringSoonItems int64 `json:"expiring_soon_items"` // within 7 days
	ExpiredItems      int64 `json:"expired_items"`
	LowStockItems     int64 `json:"low_stock_items"`
	UncheckedShopping int64 `json:"unchecked_shopping_items"`
	MealsPlannedToday int64 `json:"meals_planned_today"`
	SavedRecipes      int64 `json:"saved_recipes"`
}
