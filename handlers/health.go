package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h Handlers) HealthHandler(c *fiber.Ctx) error {
	h.Logger.Debug("HealthHandler", zap.String("ip", c.IP()))
	return c.JSON(fiber.Map{"status": "ok"})
}
