package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/service/event"
)

type EventHandler struct {
	eventService event.Service
}

func NewEventHandler(eventService event.Service) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.EventDate.IsZero() {
		return middleware.BadRequest("Event name and date are required")
	}

	created, err := h.eventService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	var status *domain.EventStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.EventStatus(raw)
		if !s.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		status = &s
	}

	result, err := h.eventService.List(c.Context(), status, getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	found, err := h.eventService.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	var input domain.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return middleware.BadRequest("Invalid event status")
	}

	updated, err := h.eventService.Update(c.Context(), id, input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *EventHandler) Finish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	finished, err := h.eventService.Finish(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(finished)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	if err := h.eventService.Delete(c.Context(), id); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
