package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := handler.dashboardService.BuildDashboard(currentUser(c).ID, time.Now())
	if err != nil {
		handler.logger.Error("build dashboard", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(dashboard)
}
