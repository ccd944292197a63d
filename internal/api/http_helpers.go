package api

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// validationMessage condenses a validator error to the first offending
// field so the caller gets one actionable reason.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		if first.Param() != "" {
			return fmt.Sprintf("invalid %s: failed %s=%s", first.Field(), first.Tag(), first.Param())
		}
		return fmt.Sprintf("invalid %s: failed %s", first.Field(), first.Tag())
	}
	return "invalid input"
}
