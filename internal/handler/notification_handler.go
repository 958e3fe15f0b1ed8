package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("User not found")
	}

	unreadOnly := c.Query("unread_only") == "true"
	params := getPaginationParams(c)

	result, err := h.notifService.List(c.Context(), userID, unreadOnly, params)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("User not found")
	}

	count, err := h.notifService.GetUnreadCount(c.Context(), userID)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("User not found")
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.MarkAsRead(c.Context(), userID, notifID); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("User not found")
	}

	if err := h.notifService.MarkAllAsRead(c.Context(), userID); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

// NotifyUpcoming is the admin-gated trigger for the reminder batch; the
// operator CLI invokes the same service method.
func (h *NotificationHandler) NotifyUpcoming(c *fiber.Ctx) error {
	summary, err := h.notifService.NotifyUpcomingEvents(c.Context())
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Members notified about upcoming events",
		"summary": summary,
	})
}
