package handler

import (
	"github.com/gofiber/fiber/v2"

	"gpsphere-backend/internal/domain"
	"gpsphere-backend/internal/middleware"
	"gpsphere-backend/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Email == "" || len(input.Password) < 8 {
		return middleware.BadRequest("Name, email and a password of at least 8 characters are required")
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created and pending approval",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Email and password are required")
	}

	challenge, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(challenge)
}

func (h *AuthHandler) VerifyTAC(c *fiber.Ctx) error {
	var input domain.VerifyTACInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Code == "" {
		return middleware.BadRequest("Email and code are required")
	}

	token, err := h.authService.VerifyTAC(c.Context(), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" {
		return middleware.BadRequest("Email is required")
	}

	result, err := h.authService.RequestPasswordReset(c.Context(), input.Email)
	if err != nil {
		return mapDomainError(err)
	}

	resp := fiber.Map{"message": "If the account exists, a reset code has been sent"}
	if result != nil && !result.Delivered && result.Captured != "" {
		// Test mode / unconfigured transport: surface the captured code.
		resp["test_code"] = result.Captured
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input domain.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Code == "" || len(input.NewPassword) < 8 {
		return middleware.BadRequest("Email, code and a new password of at least 8 characters are required")
	}

	if err := h.authService.ResetPassword(c.Context(), input); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password reset successfully"})
}
