package pantry_test

import (
	"context"
	"testing"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"
	"pantrypal-backend/pkg/pantry"

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

type fakePantryRepository struct {
	items     map[string]*entities.PantryItem
	lastScope household.Scope
	updated   *entities.PantryItem
	deleted   []string
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{items: map[string]*entities.PantryItem{}}
}

func (f *fakePantryRepository) AddItem(_ context.Context, item *entities.PantryItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakePantryRepository) GetItemByID(_ context.Context, id string, scope household.Scope) (*entities.PantryItem, error) {
	f.lastScope = scope
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePantryRepository) GetItems(_ context.Context, scope household.Scope, _, _, _ string) ([]*entities.PantryItem, error) {
	f.lastScope = scope
	out := make([]*entities.PantryItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakePantryRepository) GetLowStockItems(_ context.Context, scope household.Scope, threshold float64) ([]*entities.PantryItem, error) {
	f.lastScope = scope
	var out []*entities.PantryItem
	for _, item := range f.items {
		if item.Quantity <= threshold {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakePantryRepository) GetItemsExpiringBefore(_ context.Context, scope household.Scope, deadline time.Time) ([]*entities.PantryItem, error) {
	f.lastScope = scope
	var out []*entities.PantryItem
	for _, item := range f.items {
		if item.ExpirationDate != nil && item.ExpirationDate.Before(deadline) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakePantryRepository) UpdateItem(_ context.Context, item *entities.PantryItem) error {
	f.updated = item
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakePantryRepository) DeleteItem(_ context.Context, id string, scope household.Scope) error {
	f.lastScope = scope
	f.deleted = append(f.deleted, id)
	delete(f.items, id)
	return nil
}

func personalResolver(userID uuid.UUID) *fakeContextResolver {
	return &fakeContextResolver{hctx: &domain.HouseholdContext{UserID: userID, UserName: "Alice"}}
}

func TestAddPantryItem(t *testing.T) {
	userID := uuid.New()
	householdID := uuid.New()

	tests := []struct {
		name         string
		hctx         *domain.HouseholdContext
		req          domain.AddPantryItemRequest
		wantErr      error
		wantQuantity float64
		wantCategory string
		wantLocation string
	}{
		{
			name:         "defaults applied",
			hctx:         &domain.HouseholdContext{UserID: userID, UserName: "Alice"},
			req:          domain.AddPantryItemRequest{Name: "Rice", Quantity: 3, Unit: "kg"},
			wantQuantity: 3,
			wantCategory: "other",
			wantLocation: "pantry",
		},
		{
			name:         "negative quantity floored",
			hctx:         &domain.HouseholdContext{UserID: userID, UserName: "Alice"},
			req:          domain.AddPantryItemRequest{Name: "Milk", Quantity: -2, Unit: "l", Category: "dairy", StorageLocation: "fridge"},
			wantQuantity: 0,
			wantCategory: "dairy",
			wantLocation: "fridge",
		},
		{
			name:         "household attribution",
			hctx:         &domain.HouseholdContext{UserID: userID, HouseholdID: &householdID, UserName: "Alice"},
			req:          domain.AddPantryItemRequest{Name: "Eggs", Quantity: 12, Unit: "pcs"},
			wantQuantity: 12,
			wantCategory: "other",
			wantLocation: "pantry",
		},
		{
			name:    "bad expiration date",
			hctx:    &domain.HouseholdContext{UserID: userID, UserName: "Alice"},
			req:     domain.AddPantryItemRequest{Name: "Yogurt", Quantity: 1, Unit: "pcs", ExpirationDate: "12/31/2026"},
			wantErr: domain.ErrInvalidExpiryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePantryRepository()
			svc := pantry.NewPantryService(repo, &fakeContextResolver{hctx: tt.hctx})

			res, err := svc.AddPantryItem(context.Background(), tt.req, userID.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.items)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuantity, res.Quantity)
			assert.Equal(t, tt.wantCategory, res.Category)
			assert.Equal(t, tt.wantLocation, res.StorageLocation)
			assert.Equal(t, userID.String(), res.CreatedByUserID)
			assert.Equal(t, "Alice", res.CreatedByName)

			stored := repo.items[res.ID]
			require.NotNil(t, stored)
			if tt.hctx.HouseholdID != nil {
				require.NotNil(t, stored.HouseholdID)
				assert.Equal(t, *tt.hctx.HouseholdID, *stored.HouseholdID)
			} else {
				assert.Nil(t, stored.HouseholdID)
			}
		})
	}
}

func TestUpdatePantryItem(t *testing.T) {
	userID := uuid.New()
	repo := newFakePantryRepository()
	svc := pantry.NewPantryService(repo, personalResolver(userID))

	item := &entities.PantryItem{
		ID:       uuid.New(),
		Name:     "Rice",
		Quantity: 3,
		Unit:     "kg",
		Category: "grains",
		UserID:   userID,
	}
	repo.items[item.ID.String()] = item

	t.Run("patches only provided fields", func(t *testing.T) {
		q := -1.5
		name := "Brown rice"
		res, err := svc.UpdatePantryItem(context.Background(), item.ID.String(), domain.UpdatePantryItemRequest{
			Name:     &name,
			Quantity: &q,
		}, userID.String())
		require.NoError(t, err)

		assert.Equal(t, "Brown rice", res.Name)
		assert.Equal(t, 0.0, res.Quantity)
		assert.Equal(t, "kg", res.Unit)
		assert.Equal(t, "grains", res.Category)
	})

	t.Run("clears expiration with empty string", func(t *testing.T) {
		deadline := time.Now().AddDate(0, 0, 3)
		item.ExpirationDate = &deadline

		empty := ""
		res, err := svc.UpdatePantryItem(context.Background(), item.ID.String(), domain.UpdatePantryItemRequest{
			ExpirationDate: &empty,
		}, userID.String())
		require.NoError(t, err)
		assert.Nil(t, res.ExpirationDate)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := svc.UpdatePantryItem(context.Background(), uuid.NewString(), domain.UpdatePantryItemRequest{}, userID.String())
		assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
	})
}

func TestDeletePantryItem(t *testing.T) {
	userID := uuid.New()
	repo := newFakePantryRepository()
	svc := pantry.NewPantryService(repo, personalResolver(userID))

	item := &entities.PantryItem{ID: uuid.New(), Name: "Rice", UserID: userID}
	repo.items[item.ID.String()] = item

	assert.ErrorIs(t,
		svc.DeletePantryItem(context.Background(), uuid.NewString(), userID.String()),
		domain.ErrPantryItemNotFound,
	)

	require.NoError(t, svc.DeletePantryItem(context.Background(), item.ID.String(), userID.String()))
	assert.Contains(t, repo.deleted, item.ID.String())
	assert.False(t, repo.lastScope.IsHousehold())
}
