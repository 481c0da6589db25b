package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthPingTimeout = 2 * time.Second

func (handler *Handler) Health(c *fiber.Ctx) error {
	handler.ensureDependencies()

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()

	if err := handler.repositories.Ping(ctx); err != nil {
		handler.logger.Warn().Err(err).Msg("database ping failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
