package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/service/knowledge"
)

type KnowledgeHandler struct {
	knowledgeService knowledge.Service
}

func NewKnowledgeHandler(knowledgeService knowledge.Service) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	if c.Query("active_only") == "true" {
		entries, err := h.knowledgeService.ListActive(c.Context())
		if err != nil {
			return mapDomainError(err)
		}
		return c.Status(fiber.StatusOK).JSON(entries)
	}

	entries, err := h.knowledgeService.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *KnowledgeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid knowledge entry ID")
	}

	entry, err := h.knowledgeService.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateKnowledgeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Category == "" || input.Keywords == "" || input.Response == "" {
		return middleware.BadRequest("Category, keywords, and response are required")
	}

	entry, err := h.knowledgeService.Create(c.Context(), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Knowledge entry created successfully",
		"data":    entry,
	})
}

func (h *KnowledgeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid knowledge entry ID")
	}

	var input domain.UpdateKnowledgeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	entry, err := h.knowledgeService.Update(c.Context(), id, input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Knowledge entry updated successfully",
		"data":    entry,
	})
}

func (h *KnowledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid knowledge entry ID")
	}

	if err := h.knowledgeService.Delete(c.Context(), id); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Knowledge entry deleted successfully",
	})
}

func (h *KnowledgeHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid knowledge entry ID")
	}

	entry, err := h.knowledgeService.ToggleActive(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	message := "Knowledge entry deactivated successfully"
	if entry.IsActive {
		message = "Knowledge entry activated successfully"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   message,
		"is_active": entry.IsActive,
	})
}
