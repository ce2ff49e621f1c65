package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/middleware"
	"github.com/workbridge/jobboard-backend/internal/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	unreadOnly := c.QueryBool("unread")
	items, err := h.notifications.List(userID, unreadOnly)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.notifications.MarkRead(userID, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	changed, err := h.notifications.MarkAllRead(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "changed": changed})
}
