package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/shoppinglist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		AddShoppingItem(c *fiber.Ctx) error
		GetShoppingItems(c *fiber.Ctx) error
		UpdateShoppingItem(c *fiber.Ctx) error
		ToggleShoppingItem(c *fiber.Ctx) error
		DeleteShoppingItem(c *fiber.Ctx) error
		ClearCheckedItems(c *fiber.Ctx) error
		GenerateFromLowStock(c *fiber.Ctx) error
		MoveToPantry(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingService shoppinglist.ShoppingListService
		validator       *validator.Validate
	}
)

func NewShoppingListHandler(shoppingService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingListHandler) AddShoppingItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingService.AddShoppingItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingListHandler) GetShoppingItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.shoppingService.GetShoppingItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetShoppingItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetShoppingItems)
}

func (h *shoppingListHandler) UpdateShoppingItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	res, err := h.shoppingService.UpdateShoppingItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingListHandler) ToggleShoppingItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.shoppingService.ToggleShoppingItem(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedToggleShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleShoppingItem)
}

func (h *shoppingListHandler) DeleteShoppingItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.shoppingService.DeleteShoppingItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingItem)
}

func (h *shoppingListHandler) ClearCheckedItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.shoppingService.ClearCheckedItems(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedClearChecked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearChecked)
}

func (h *shoppingListHandler) GenerateFromLowStock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.GenerateFromLowStock(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGenerateShopping, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateShopping)
}

func (h *shoppingListHandler) MoveToPantry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.shoppingService.MoveToPantry(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedMoveToPantry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMoveToPantry)
}
