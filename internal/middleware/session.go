package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionContextKey = "session_key"

	sessionCookieName = "ct_session"
	sessionCookieAge  = 365 * 24 * time.Hour
)

// Session assigns every visitor an opaque session key, carried in a
// long-lived cookie. Bookmarks, reminders and notification preferences are
// all scoped to this key; no account is required.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Cookies(sessionCookieName)
		if key == "" {
			key = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookieName,
				Value:    key,
				Expires:  time.Now().Add(sessionCookieAge),
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}

		c.Locals(SessionContextKey, key)

		return c.Next()
	}
}

// GetSessionKey falls back to the remote address for clients that refuse
// cookies, so session-scoped writes still have a stable key within one
// connection.
func GetSessionKey(c *fiber.Ctx) string {
	key, ok := c.Locals(SessionContextKey).(string)
	if !ok || key == "" {
		return c.IP()
	}
	return key
}
