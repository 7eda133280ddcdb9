package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/ai"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		GenerateText(c *fiber.Ctx) error
		GenerateRecipes(c *fiber.Ctx) error
	}

	aiHandler struct {
		aiService ai.AIService
		validator *validator.Validate
	}
)

func NewAIHandler(aiService ai.AIService, validator *validator.Validate) AIHandler {
	return &aiHandler{
		aiService: aiService,
		validator: validator,
	}
}

func (h *aiHandler) GenerateText(c *fiber.Ctx) error {
	req := new(domain.GenerateTextRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateText, err)
	}

	res, err := h.aiService.GenerateText(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGenerateText, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateText)
}

func (h *aiHandler) GenerateRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateRecipesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipes, err)
	}

	res, err := h.aiService.GenerateRecipes(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGenerateRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipes)
}
