package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmatehq/mindmate/internal/models"
	"github.com/mindmatehq/mindmate/internal/services"
	"go.uber.org/zap"
)

const contextUserKey = "currentUser"

// AuthRequired resolves the bearer credential into the calling user and
// stores it on the request context for downstream handlers.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return apiError(c, fiber.StatusUnauthorized, "authorization header required")
	}

	rawToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	user, err := handler.authService.Authenticate(rawToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			return apiError(c, fiber.StatusUnauthorized, "token expired")
		case errors.Is(err, services.ErrUserNotFound):
			return apiError(c, fiber.StatusUnauthorized, "user not found")
		case errors.Is(err, services.ErrTokenInvalid):
			return apiError(c, fiber.StatusUnauthorized, "invalid token")
		default:
			handler.logger.Error("authenticate request", zap.Error(err))
			return apiError(c, fiber.StatusUnauthorized, "invalid token")
		}
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(contextUserKey).(models.User)
	return user
}
