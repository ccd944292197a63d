package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	var input moodInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	} else if rawLevel := c.Query("mood_level"); rawLevel != "" {
		parsed, err := strconv.Atoi(rawLevel)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid mood_level")
		}
		input.MoodLevel = parsed
		if rawNotes := c.Query("notes"); rawNotes != "" {
			input.Notes = &rawNotes
		}
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	entry, err := handler.wellnessService.LogMood(currentUser(c).ID, input.MoodLevel, input.Notes)
	if err != nil {
		handler.logger.Error("log mood", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to record mood")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) LogStress(c *fiber.Ctx) error {
	var input stressInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	entry, err := handler.wellnessService.LogStress(
		currentUser(c).ID, input.StressLevel, input.Triggers, input.CopingStrategies, input.Notes)
	if err != nil {
		handler.logger.Error("log stress", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to record stress")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) LogProductivity(c *fiber.Ctx) error {
	var input productivityInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	entry, err := handler.wellnessService.LogProductivity(
		currentUser(c).ID, input.ProductivityScore, input.TasksCompleted, input.FocusTimeMinutes, input.Notes)
	if err != nil {
		handler.logger.Error("log productivity", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to record productivity")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
