package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/feedback"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FeedbackHandler interface {
		AddFeedback(c *fiber.Ctx) error
		GetFeedback(c *fiber.Ctx) error
		UpdateFeedback(c *fiber.Ctx) error
		DeleteFeedback(c *fiber.Ctx) error
	}

	feedbackHandler struct {
		feedbackService feedback.FeedbackService
		validator       *validator.Validate
	}
)

func NewFeedbackHandler(feedbackService feedback.FeedbackService, validator *validator.Validate) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

func (h *feedbackHandler) AddFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFeedback, err)
	}

	res, err := h.feedbackService.AddFeedback(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFeedback)
}

func (h *feedbackHandler) GetFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.feedbackService.GetFeedback(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeedback)
}

func (h *feedbackHandler) UpdateFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	feedbackID := c.Params("id")
	req := new(domain.UpdateFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeedback, err)
	}

	res, err := h.feedbackService.UpdateFeedback(c.Context(), feedbackID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFeedback)
}

func (h *feedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	feedbackID := c.Params("id")

	if err := h.feedbackService.DeleteFeedback(c.Context(), feedbackID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteFeedback, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFeedback)
}
