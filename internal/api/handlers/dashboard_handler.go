package handlers

import (
	"pantrypal-backend/domain"
	"pantrypal-backend/internal/api/presenters"
	"pantrypal-backend/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetOverview(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

func (h *dashboardHandler) GetOverview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.dashboardService.GetOverview(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetOverview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOverview)
}
