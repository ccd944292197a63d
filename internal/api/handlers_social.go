package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.socialService.ListOtherUsers(currentUser(c).ID)
	if err != nil {
		handler.logger.Error("list users", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}

func (handler *Handler) AddFriend(c *fiber.Ctx) error {
	friendID := c.Params("id")
	if friendID == "" {
		return apiError(c, fiber.StatusBadRequest, "friend id required")
	}
	if err := handler.socialService.AddFriend(currentUser(c).ID, friendID); err != nil {
		handler.logger.Error("add friend", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to add friend")
	}
	return apiMessage(c, "Friend added successfully")
}

func (handler *Handler) ListFriends(c *fiber.Ctx) error {
	friends, err := handler.socialService.ListFriends(currentUser(c).ID)
	if err != nil {
		handler.logger.Error("list friends", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list friends")
	}
	return c.JSON(friends)
}
