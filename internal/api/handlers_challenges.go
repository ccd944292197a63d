package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mindmatehq/mindmate/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) CreateChallenge(c *fiber.Ctx) error {
	var input challengeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	challenge, err := handler.challengeService.CreateChallenge(currentUser(c).ID, services.ChallengeSpec{
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		DurationDays: input.DurationDays,
	})
	if err != nil {
		handler.logger.Error("create challenge", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create challenge")
	}

	return c.Status(fiber.StatusCreated).JSON(challenge)
}

func (handler *Handler) ListChallenges(c *fiber.Ctx) error {
	challenges, err := handler.challengeService.ListChallenges()
	if err != nil {
		handler.logger.Error("list challenges", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list challenges")
	}
	return c.JSON(challenges)
}

func (handler *Handler) JoinChallenge(c *fiber.Ctx) error {
	challengeID := c.Params("id")
	if challengeID == "" {
		return apiError(c, fiber.StatusBadRequest, "challenge id required")
	}
	if err := handler.challengeService.JoinChallenge(challengeID, currentUser(c).ID); err != nil {
		handler.logger.Error("join challenge", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to join challenge")
	}
	return apiMessage(c, "Joined challenge successfully")
}
