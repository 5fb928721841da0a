package middleware

import (
	"careerpath/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	HeaderRequestID = "X-Request-ID"
	localRequestID  = "request_id"
)

// RequestID tags every request with a ULID. A valid ULID sent by the client
// is kept so calls can be correlated across services.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if !util.IsValidULID(id) {
			id = util.NewULID()
		}
		c.Locals(localRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestIDFromCtx returns the request ID, or "" outside the RequestID middleware.
func RequestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}
