package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PublicHandler struct {
	log *zap.Logger
}

func NewPublicHandler(log *zap.Logger) *PublicHandler {
	return &PublicHandler{log: log}
}

// ClientError accepts browser error reports. Payloads are logged and
// acknowledged regardless of shape; a broken client must not see a 4xx
// while reporting its own failure.
func (h *PublicHandler) ClientError(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		h.log.Warn("unparseable client error report", zap.Error(err))
	} else {
		h.log.Warn("client error report", zap.Any("report", payload))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}
