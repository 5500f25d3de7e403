package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/flog"
)

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", constant.RequestIDHeaderKey),
		flog.RemoteAddrHandler("ip"),
		flog.MethodHandler("method"),
		flog.URLHandler("url"),
		flog.UserAgentHandler("user_agent"),
		requestLogger(),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, duration time.Duration) {
		flog.InfoFrom(ctx).
			Str("component", "httpreq").
			Int("status", ctx.Response().StatusCode()).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
