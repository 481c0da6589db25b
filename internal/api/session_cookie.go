package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// resolveSession returns the caller's session id, minting one and setting the
// cookie when the request carries none. An existing cookie is never rewritten.
func (handler *Handler) resolveSession(c *fiber.Ctx) string {
	if sessionID := sessionFromCookie(c); sessionID != "" {
		return sessionID
	}

	sessionID := uuid.NewString()
	handler.setSessionCookie(c, sessionID)
	return sessionID
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL / time.Second),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
