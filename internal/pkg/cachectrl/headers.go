package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn marks the response as publicly cacheable for an hour, last modified at t.
func OptIn(ctx *fiber.Ctx, t time.Time) {
	OptInCustom(ctx, t, time.Hour)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, maxAge time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	ctx.Set(fiber.HeaderExpires, time.Now().Add(maxAge).UTC().Format(time.RFC1123))
	ctx.Response().Header.SetLastModified(t)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
