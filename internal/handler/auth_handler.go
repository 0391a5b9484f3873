package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Username == "" || input.Password == "" {
		return middleware.BadRequest("Username and password are required")
	}

	tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid username or password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// Logout is stateless: tokens are short-lived and the client discards its
// copy. The endpoint exists so clients have a uniform sign-out call.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}
