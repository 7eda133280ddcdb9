package shoppinglist

import (
	"context"
	"errors"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/pkg/household"
	"pantrypal-backend/pkg/pantry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		GetShoppingItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error)
		UpdateShoppingItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		ToggleShoppingItem(ctx context.Context, id string, userID string) (domain.ShoppingItemResponse, error)
		DeleteShoppingItem(ctx context.Context, id string, userID string) error
		ClearCheckedItems(ctx context.Context, userID string) error
		GenerateFromLowStock(ctx context.Context, userID string) (domain.GenerateShoppingResponse, error)
		MoveToPantry(ctx context.Context, id string, userID string) (domain.MoveToPantryResponse, error)
	}

	shoppingListService struct {
		shoppingRepository ShoppingListRepository
		pantryRepository   pantry.PantryRepository
		contexts           household.ContextResolver
	}
)

func NewShoppingListService(shoppingRepository ShoppingListRepository, pantryRepository pantry.PantryRepository, contexts household.ContextResolver) ShoppingListService {
	return &shoppingListService{
		shoppingRepository: shoppingRepository,
		pantryRepository:   pantryRepository,
		contexts:           contexts,
	}
}

func (s *shoppingListService) AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	attr := household.NewAttribution(hctx)
	item := entities.ShoppingListItem{
		ID:              uuid.New(),
		Name:            req.Name,
		Quantity:        floorQuantity(req.Quantity),
		Unit:            req.Unit,
		Priority:        priority,
		Category:        req.Category,
		UserID:          attr.UserID,
		HouseholdID:     attr.HouseholdID,
		CreatedByUserID: attr.CreatedByUserID,
		CreatedByName:   attr.CreatedByName,
	}

	if err := s.shoppingRepository.AddItem(ctx, &item); err != nil {
		logger.Log.Errorw("failed to add shopping list item", "error", err)
		return domain.ShoppingItemResponse{}, err
	}

	return buildShoppingResponse(&item), nil
}

func (s *shoppingListService) GetShoppingItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.shoppingRepository.GetItems(ctx, household.ScopeFromContext(hctx))
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, buildShoppingResponse(item))
	}
	return responses, nil
}

func (s *shoppingListService) UpdateShoppingItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	item, err := s.shoppingRepository.GetItemByID(ctx, id, household.ScopeFromContext(hctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.ShoppingItemResponse{}, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = floorQuantity(*req.Quantity)
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Checked != nil {
		item.Checked = *req.Checked
	}
	if req.Priority != nil {
		item.Priority = *req.Priority
	}
	if req.Category != nil {
		item.Category = *req.Category
	}

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		logger.Log.Errorw("failed to update shopping list item", "id", id, "error", err)
		return domain.ShoppingItemResponse{}, err
	}

	return buildShoppingResponse(item), nil
}

func (s *shoppingListService) ToggleShoppingItem(ctx context.Context, id string, userID string) (domain.ShoppingItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	item, err := s.shoppingRepository.GetItemByID(ctx, id, household.ScopeFromContext(hctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.ShoppingItemResponse{}, err
	}

	item.Checked = !item.Checked
	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return buildShoppingResponse(item), nil
}

func (s *shoppingListService) DeleteShoppingItem(ctx context.Context, id string, userID string) error {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return err
	}

	scope := household.ScopeFromContext(hctx)
	if _, err := s.shoppingRepository.GetItemByID(ctx, id, scope); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}

	return s.shoppingRepository.DeleteItem(ctx, id, scope)
}

func (s *shoppingListService) ClearCheckedItems(ctx context.Context, userID string) error {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return err
	}

	return s.shoppingRepository.DeleteCheckedItems(ctx, household.ScopeFromContext(hctx))
}

// GenerateFromLowStock adds a shopping entry for every pantry item at or
// below the restock threshold. Pantry items that already have an open
// shopping entry are skipped, so calling it twice changes nothing.
func (s *shoppingListService) GenerateFromLowStock(ctx context.Context, userID string) (domain.GenerateShoppingResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}

	scope := household.ScopeFromContext(hctx)
	lowStock, err := s.pantryRepository.GetLowStockItems(ctx, scope, domain.LowStockThreshold)
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}

	linked, err := s.shoppingRepository.GetLinkedPantryItemIDs(ctx, scope)
	if err != nil {
		return domain.GenerateShoppingResponse{}, err
	}

	attr := household.NewAttribution(hctx)
	response := domain.GenerateShoppingResponse{Created: []domain.ShoppingItemResponse{}}
	for _, pantryItem := range lowStock {
		if linked[pantryItem.ID] {
			response.Skipped++
			continue
		}

		pantryItemID := pantryItem.ID
		item := entities.ShoppingListItem{
			ID:              uuid.New(),
			Name:            pantryItem.Name,
			Quantity:        1,
			Unit:            pantryItem.Unit,
			Priority:        "medium",
			Category:        pantryItem.Category,
			PantryItemID:    &pantryItemID,
			UserID:          attr.UserID,
			HouseholdID:     attr.HouseholdID,
			CreatedByUserID: attr.CreatedByUserID,
			CreatedByName:   attr.CreatedByName,
		}
		if err := s.shoppingRepository.AddItem(ctx, &item); err != nil {
			logger.Log.Errorw("failed to add generated shopping item", "name", item.Name, "error", err)
			return domain.GenerateShoppingResponse{}, err
		}
		response.Created = append(response.Created, buildShoppingResponse(&item))
	}

	return response, nil
}

func (s *shoppingListService) MoveToPantry(ctx context.Context, id string, userID string) (domain.MoveToPantryResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.MoveToPantryResponse{}, err
	}

	scope := household.ScopeFromContext(hctx)
	item, err := s.shoppingRepository.GetItemByID(ctx, id, scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MoveToPantryResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.MoveToPantryResponse{}, err
	}

	pantryItem, created, err := s.shoppingRepository.MoveToPantry(ctx, item, scope, household.NewAttribution(hctx))
	if err != nil {
		logger.Log.Errorw("failed to move shopping item to pantry", "id", id, "error", err)
		return domain.MoveToPantryResponse{}, err
	}

	return domain.MoveToPantryResponse{
		PantryItemID: pantryItem.ID.String(),
		NewQuantity:  pantryItem.Quantity,
		Created:      created,
	}, nil
}

func floorQuantity(q float64) float64 {
	if q < 0 {
		return 0
	}
	return q
}

func buildShoppingResponse(item *entities.ShoppingListItem) domain.ShoppingItemResponse {
	res := domain.ShoppingItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Checked:         item.Checked,
		Priority:        item.Priority,
		Category:        item.Category,
		CreatedByUserID: item.CreatedByUserID.String(),
		CreatedByName:   item.CreatedByName,
		CreatedAt:       item.CreatedAt,
	}
	if item.PantryItemID != nil {
		res.PantryItemID = item.PantryItemID.String()
	}
	if item.HouseholdID != nil {
		res.HouseholdID = item.HouseholdID.String()
	}
	return res
}
