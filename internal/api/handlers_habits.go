package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmatehq/mindmate/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	var input habitInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	// A habit starts active unless the caller says otherwise.
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	habit, err := handler.habitService.CreateHabit(currentUser(c).ID, services.HabitSpec{
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		TargetFrequency: input.TargetFrequency,
		IsActive:        isActive,
	})
	if err != nil {
		handler.logger.Error("create habit", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	habits, err := handler.habitService.ListHabits(currentUser(c).ID)
	if err != nil {
		handler.logger.Error("list habits", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list habits")
	}
	return c.JSON(habits)
}

func (handler *Handler) CheckInHabit(c *fiber.Ctx) error {
	var input checkInInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	// Check-in parameters also arrive as query strings from older clients.
	completed := true
	if input.Completed != nil {
		completed = *input.Completed
	} else if rawCompleted := c.Query("completed"); rawCompleted != "" {
		parsed, err := strconv.ParseBool(rawCompleted)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid completed flag")
		}
		completed = parsed
	}

	notes := input.Notes
	if notes == nil {
		if rawNotes := c.Query("notes"); rawNotes != "" {
			notes = &rawNotes
		}
	}

	checkIn, err := handler.habitService.CheckIn(currentUser(c).ID, c.Params("id"), completed, notes)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		handler.logger.Error("check in habit", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to record check-in")
	}

	return c.Status(fiber.StatusCreated).JSON(checkIn)
}
