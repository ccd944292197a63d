package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmatehq/mindmate/internal/models"
	"github.com/mindmatehq/mindmate/internal/services"
	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	token, user, err := handler.authService.Register(input.Email, input.Password, input.FullName, input.Age)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return apiError(c, fiber.StatusConflict, "email already registered")
		}
		handler.logger.Error("register user", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	token, user, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		handler.logger.Error("login user", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	return c.JSON(tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}
