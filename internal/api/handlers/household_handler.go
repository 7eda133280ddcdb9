package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/household"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HouseholdHandler interface {
		CreateHousehold(c *fiber.Ctx) error
		GetMyHousehold(c *fiber.Ctx) error
		UpdateHousehold(c *fiber.Ctx) error
		JoinHousehold(c *fiber.Ctx) error
		LeaveHousehold(c *fiber.Ctx) error
		DeleteHousehold(c *fiber.Ctx) error
		RegenerateInviteCode(c *fiber.Ctx) error
		RemoveMember(c *fiber.Ctx) error
	}

	householdHandler struct {
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewHouseholdHandler(householdService household.HouseholdService, validator *validator.Validate) HouseholdHandler {
	return &householdHandler{
		householdService: householdService,
		validator:        validator,
	}
}

func (h *householdHandler) CreateHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateHousehold, err)
	}

	res, err := h.householdService.CreateHousehold(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateHousehold)
}

func (h *householdHandler) GetMyHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.householdService.GetMyHousehold(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHousehold)
}

func (h *householdHandler) UpdateHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateHousehold, err)
	}

	res, err := h.householdService.UpdateHousehold(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateHousehold)
}

func (h *householdHandler) JoinHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.JoinHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinHousehold, err)
	}

	res, err := h.householdService.JoinHousehold(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedJoinHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessJoinHousehold)
}

func (h *householdHandler) LeaveHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.householdService.LeaveHousehold(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedLeaveHousehold, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLeaveHousehold)
}

func (h *householdHandler) DeleteHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.householdService.DeleteHousehold(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteHousehold, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteHousehold)
}

func (h *householdHandler) RegenerateInviteCode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.householdService.RegenerateInviteCode(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRegenerateInvite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRegenerateInvite)
}

func (h *householdHandler) RemoveMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RemoveMemberRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMember, err)
	}

	if err := h.householdService.RemoveMember(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRemoveMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMember)
}
