package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookieName = "sessionId"
	contextSessionKey = "session_id"
)

// guardedSession returns the id stored by SessionRequired.
func guardedSession(c *fiber.Ctx) string {
	sessionID, _ := c.Locals(contextSessionKey).(string)
	return sessionID
}

func sessionFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(sessionCookieName))
}
