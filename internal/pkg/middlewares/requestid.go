package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/flog"
)

// RequestID copies the id assigned by the logger chain into ctx.Locals for handlers
// that do not read the user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
