package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/service/user"
)

const maxProfilePictureSize = 5 * 1024 * 1024

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("User not found")
	}

	profile, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) UploadProfilePicture(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("User not found")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file")
	}
	if fileHeader.Size > maxProfilePictureSize {
		return middleware.BadRequest("File exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read file")
	}
	defer file.Close()

	url, err := h.userService.UploadProfilePicture(
		c.Context(), userID,
		fileHeader.Filename, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"), file,
	)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"profile_picture": url})
}

func (h *UserHandler) ListPending(c *fiber.Ctx) error {
	status := domain.UserStatus(c.Query("status", string(domain.StatusPending)))
	if status != domain.StatusPending && status != domain.StatusApproved {
		return middleware.BadRequest("Invalid status filter")
	}

	result, err := h.userService.ListByStatus(c.Context(), status, getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	approved, err := h.userService.Approve(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User approved",
		"user":    approved,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}
	if id == middleware.GetCurrentUserID(c) {
		return middleware.BadRequest("Cannot delete your own account")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
