package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		AddMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		ToggleMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		GenerateShoppingList(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) AddMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	res, err := h.mealPlanService.AddMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMealPlan)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	plans, err := h.mealPlanService.GetMealPlans(c.Context(), userID, startDate, endDate)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.UpdateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	res, err := h.mealPlanService.UpdateMealPlan(c.Context(), planID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) ToggleMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	res, err := h.mealPlanService.ToggleMealPlan(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedToggleMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) GenerateShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GeneratePlanShoppingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlanShoppingList, err)
	}

	res, err := h.mealPlanService.GenerateShoppingList(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedPlanShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPlanShoppingList)
}
