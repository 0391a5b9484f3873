package handler

import (
	"github.com/gofiber/fiber/v2"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) GetPreferences(c *fiber.Ctx) error {
	pref, err := h.notifService.GetPreferences(c.Context(), middleware.GetSessionKey(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(pref)
}

func (h *NotificationHandler) SavePreferences(c *fiber.Ctx) error {
	var input domain.NotificationPreferenceInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	pref, err := h.notifService.SavePreferences(c.Context(), middleware.GetSessionKey(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(pref)
}

func (h *NotificationHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.notifService.Alerts(c.Context(), middleware.GetSessionKey(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"alerts": alerts,
		"count":  len(alerts),
	})
}
