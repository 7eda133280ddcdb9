package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/history"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHistoryHandler interface {
		GetHistory(c *fiber.Ctx) error
		GetHistoryDetails(c *fiber.Ctx) error
		DeleteHistory(c *fiber.Ctx) error
	}

	recipeHistoryHandler struct {
		historyService history.RecipeHistoryService
	}
)

func NewRecipeHistoryHandler(historyService history.RecipeHistoryService) RecipeHistoryHandler {
	return &recipeHistoryHandler{historyService: historyService}
}

func (h *recipeHistoryHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.historyService.GetHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *recipeHistoryHandler) GetHistoryDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	historyID := c.Params("id")

	res, err := h.historyService.GetHistoryByID(c.Context(), historyID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *recipeHistoryHandler) DeleteHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	historyID := c.Params("id")

	if err := h.historyService.DeleteHistory(c.Context(), historyID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteHistory)
}
