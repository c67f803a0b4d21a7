package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// HeaderClientID is the header the storefront client sends to identify the
// caller.
const HeaderClientID = "x-user-id"

// DefaultClientID is used when the header is absent.
const DefaultClientID = "guest"

// ClientIdentity reads the caller identifier from the request and stores it
// in the request context. No query is scoped by it yet; the cart is a single
// shared cart and the identifier is only carried for request attribution.
func ClientIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(HeaderClientID)
		if userID == "" {
			userID = DefaultClientID
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}
