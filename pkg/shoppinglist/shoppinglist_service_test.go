package shoppinglist_test

import (
	"context"
	"testing"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"
	"pantrypal-backend/pkg/shoppinglist"

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

type fakeShoppingRepository struct {
	items        map[string]*entities.ShoppingListItem
	cleared      bool
	movedPantry  *entities.PantryItem
	movedCreated bool
}

func newFakeShoppingRepository() *fakeShoppingRepository {
	return &fakeShoppingRepository{items: map[string]*entities.ShoppingListItem{}}
}

func (f *fakeShoppingRepository) AddItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeShoppingRepository) GetItemByID(_ context.Context, id string, _ household.Scope) (*entities.ShoppingListItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShoppingRepository) GetItems(_ context.Context, _ household.Scope) ([]*entities.ShoppingListItem, error) {
	out := make([]*entities.ShoppingListItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeShoppingRepository) GetLinkedPantryItemIDs(_ context.Context, _ household.Scope) (map[uuid.UUID]bool, error) {
	linked := map[uuid.UUID]bool{}
	for _, item := range f.items {
		if item.PantryItemID != nil {
			linked[*item.PantryItemID] = true
		}
	}
	return linked, nil
}

func (f *fakeShoppingRepository) UpdateItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeShoppingRepository) DeleteItem(_ context.Context, id string, _ household.Scope) error {
	delete(f.items, id)
	return nil
}

func (f *fakeShoppingRepository) DeleteCheckedItems(_ context.Context, _ household.Scope) error {
	f.cleared = true
	for id, item := range f.items {
		if item.Checked {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeShoppingRepository) MoveToPantry(_ context.Context, item *entities.ShoppingListItem, _ household.Scope, attr household.Attribution) (*entities.PantryItem, bool, error) {
	pantryItem := &entities.PantryItem{
		ID:              uuid.New(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		UserID:          attr.UserID,
		HouseholdID:     attr.HouseholdID,
		CreatedByUserID: attr.CreatedByUserID,
		CreatedByName:   attr.CreatedByName,
	}
	f.movedPantry = pantryItem
	f.movedCreated = true
	delete(f.items, item.ID.String())
	return pantryItem, true, nil
}

type fakeLowStockPantry struct {
	lowStock []*entities.PantryItem
}

func (f *fakeLowStockPantry) AddItem(context.Context, *entities.PantryItem) error { return nil }

func (f *fakeLowStockPantry) GetItemByID(context.Context, string, household.Scope) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLowStockPantry) GetItems(context.Context, household.Scope, string, string, string) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (f *fakeLowStockPantry) GetLowStockItems(context.Context, household.Scope, float64) ([]*entities.PantryItem, error) {
	return f.lowStock, nil
}

func (f *fakeLowStockPantry) GetItemsExpiringBefore(context.Context, household.Scope, time.Time) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (f *fakeLowStockPantry) UpdateItem(context.Context, *entities.PantryItem) error { return nil }

func (f *fakeLowStockPantry) DeleteItem(context.Context, string, household.Scope) error { return nil }

func newTestService(repo *fakeShoppingRepository, pantry *fakeLowStockPantry, userID uuid.UUID) shoppinglist.ShoppingListService {
	resolver := &fakeContextResolver{hctx: &domain.HouseholdContext{UserID: userID, UserName: "Alice"}}
	return shoppinglist.NewShoppingListService(repo, pantry, resolver)
}

func TestAddShoppingItemDefaults(t *testing.T) {
	userID := uuid.New()
	repo := newFakeShoppingRepository()
	svc := newTestService(repo, &fakeLowStockPantry{}, userID)

	res, err := svc.AddShoppingItem(context.Background(), domain.AddShoppingItemRequest{
		Name:     "Milk",
		Quantity: -3,
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "medium", res.Priority)
	assert.Equal(t, 0.0, res.Quantity)
	assert.False(t, res.Checked)
	assert.Equal(t, userID.String(), res.CreatedByUserID)
}

func TestToggleShoppingItem(t *testing.T) {
	userID := uuid.New()
	repo := newFakeShoppingRepository()
	svc := newTestService(repo, &fakeLowStockPantry{}, userID)

	item := &entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", UserID: userID}
	repo.items[item.ID.String()] = item

	res, err := svc.ToggleShoppingItem(context.Background(), item.ID.String(), userID.String())
	require.NoError(t, err)
	assert.True(t, res.Checked)

	res, err = svc.ToggleShoppingItem(context.Background(), item.ID.String(), userID.String())
	require.NoError(t, err)
	assert.False(t, res.Checked)

	_, err = svc.ToggleShoppingItem(context.Background(), uuid.NewString(), userID.String())
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestGenerateFromLowStock(t *testing.T) {
	userID := uuid.New()
	linkedID := uuid.New()

	lowStock := []*entities.PantryItem{
		{ID: uuid.New(), Name: "Rice", Quantity: 1, Unit: "kg", Category: "grains"},
		{ID: linkedID, Name: "Milk", Quantity: 0, Unit: "l", Category: "dairy"},
	}

	repo := newFakeShoppingRepository()
	existing := &entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", PantryItemID: &linkedID}
	repo.items[existing.ID.String()] = existing

	svc := newTestService(repo, &fakeLowStockPantry{lowStock: lowStock}, userID)

	res, err := svc.GenerateFromLowStock(context.Background(), userID.String())
	require.NoError(t, err)

	require.Len(t, res.Created, 1)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "Rice", res.Created[0].Name)
	assert.Equal(t, 1.0, res.Created[0].Quantity)
	assert.Equal(t, "medium", res.Created[0].Priority)
	assert.Equal(t, lowStock[0].ID.String(), res.Created[0].PantryItemID)

	// Second run: both pantry items now have open entries.
	res, err = svc.GenerateFromLowStock(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Equal(t, 2, res.Skipped)
}

func TestMoveToPantry(t *testing.T) {
	userID := uuid.New()
	repo := newFakeShoppingRepository()
	svc := newTestService(repo, &fakeLowStockPantry{}, userID)

	item := &entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Quantity: 2, Unit: "l", UserID: userID}
	repo.items[item.ID.String()] = item

	res, err := svc.MoveToPantry(context.Background(), item.ID.String(), userID.String())
	require.NoError(t, err)

	assert.True(t, res.Created)
	assert.Equal(t, 2.0, res.NewQuantity)
	assert.Equal(t, repo.movedPantry.ID.String(), res.PantryItemID)
	assert.NotContains(t, repo.items, item.ID.String())

	_, err = svc.MoveToPantry(context.Background(), item.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestClearCheckedItems(t *testing.T) {
	userID := uuid.New()
	repo := newFakeShoppingRepository()
	svc := newTestService(repo, &fakeLowStockPantry{}, userID)

	checked := &entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Checked: true}
	open := &entities.ShoppingListItem{ID: uuid.New(), Name: "Rice"}
	repo.items[checked.ID.String()] = checked
	repo.items[open.ID.String()] = open

	require.NoError(t, svc.ClearCheckedItems(context.Background(), userID.String()))
	assert.True(t, repo.cleared)
	assert.NotContains(t, repo.items, checked.ID.String())
	assert.Contains(t, repo.items, open.ID.String())
}
