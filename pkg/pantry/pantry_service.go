package pantry

import (
	"context"
	"errors"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context, userID, category, location, search string) ([]domain.PantryItemResponse, error)
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string, userID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		contexts         household.ContextResolver
	}
)

func NewPantryService(pantryRepository PantryRepository, contexts household.ContextResolver) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		contexts:         contexts,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	var expiration *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiration = &parsed
	}

	category := req.Category
	if category == "" {
		category = "other"
	}
	location := req.StorageLocation
	if location == "" {
		location = "pantry"
	}

	attr := household.NewAttribution(hctx)
	item := &entities.PantryItem{
		ID:              uuid.New(),
		Name:            req.Name,
		Quantity:        floorQuantity(req.Quantity),
		Unit:            req.Unit,
		ExpirationDate:  expiration,
		Category:        category,
		StorageLocation: location,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Carbs:           req.Carbs,
		Fat:             req.Fat,
		UserID:          attr.UserID,
		HouseholdID:     attr.HouseholdID,
		CreatedByUserID: attr.CreatedByUserID,
		CreatedByName:   attr.CreatedByName,
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		logger.Log.Errorw("failed to add pantry item", "err", err)
		return domain.PantryItemResponse{}, err
	}

	return buildItemResponse(item), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID, category, location, search string) ([]domain.PantryItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.pantryRepository.GetItems(ctx, household.ScopeFromContext(hctx), category, location, search)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, buildItemResponse(item))
	}
	return response, nil
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item, err := s.pantryRepository.GetItemByID(ctx, id, household.ScopeFromContext(hctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	return buildItemResponse(item), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item, err := s.pantryRepository.GetItemByID(ctx, id, household.ScopeFromContext(hctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
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
	if req.ExpirationDate != nil {
		if *req.ExpirationDate == "" {
			item.ExpirationDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.ExpirationDate)
			if err != nil {
				return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
			}
			item.ExpirationDate = &parsed
		}
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.StorageLocation != nil {
		item.StorageLocation = *req.StorageLocation
	}
	if req.Calories != nil {
		item.Calories = req.Calories
	}
	if req.Protein != nil {
		item.Protein = req.Protein
	}
	if req.Carbs != nil {
		item.Carbs = req.Carbs
	}
	if req.Fat != nil {
		item.Fat = req.Fat
	}

	if err := s.pantryRepository.UpdateItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return buildItemResponse(item), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	hctx, err := s.contexts.ResolveContext(ctx, userID)
	if err != nil {
		return err
	}

	scope := household.ScopeFromContext(hctx)
	if _, err := s.pantryRepository.GetItemByID(ctx, id, scope); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	return s.pantryRepository.DeleteItem(ctx, id, scope)
}

// floorQuantity enforces the schema-level floor: quantities never go
// negative.
func floorQuantity(q float64) float64 {
	if q < 0 {
		return 0
	}
	return q
}

func buildItemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	res := domain.PantryItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		ExpirationDate:  item.ExpirationDate,
		Category:        item.Category,
		StorageLocation: item.StorageLocation,
		Calories:        item.Calories,
		Protein:         item.Protein,
		Carbs:           item.Carbs,
		Fat:             item.Fat,
		CreatedByUserID: item.CreatedByUserID.String(),
		CreatedByName:   item.CreatedByName,
		CreatedAt:       item.CreatedAt,
	}
	if item.HouseholdID != nil {
		res.HouseholdID = item.HouseholdID.String()
	}
	return res
}
