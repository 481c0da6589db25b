package api

import "github.com/gofiber/fiber/v2"

// SessionRequired rejects requests without a session cookie before any
// storage access and exposes the session id to the next handler.
func (handler *Handler) SessionRequired(c *fiber.Ctx) error {
	sessionID := sessionFromCookie(c)
	if sessionID == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextSessionKey, sessionID)
	return c.Next()
}
