package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/pkg/bininfo"
	"courtside.dev/backend/internal/pkg/cachectrl"
	"courtside.dev/backend/internal/server/svr"
	"courtside.dev/backend/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
	SeasonService *service.Season
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)
	meta.Get("/dataset", c.Dataset)

	// probes hit this often; a second of caching keeps them off redis
	meta.Get("/health", cache.New(cache.Config{
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Dataset(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)
	return ctx.JSON(fiber.Map{
		"seasons":  c.SeasonService.List(),
		"loadedAt": c.SeasonService.LastModified(),
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
