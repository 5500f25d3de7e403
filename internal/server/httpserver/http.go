package httpserver

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/bininfo"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/pkg/middlewares"
	"courtside.dev/backend/internal/pkg/observability"
)

var registerPromOnce sync.Once

func isChartRequest(c *fiber.Ctx) bool {
	return strings.Contains(c.Path(), "/charts/")
}

func Create(conf *appconfig.Config, tp trace.TracerProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Courtside Backend",
		ServerHeader: fmt.Sprintf("Courtside/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
		Immutable:               true,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, OPTIONS",
		AllowHeaders:  "Content-Type, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + constant.RequestIDHeaderKey + ", " + constant.CacheHeaderKey,
	}))
	middlewares.Logger(app)
	// the logger chain puts the request id into the user context; handlers read it from ctx.Locals
	app.Use(middlewares.RequestID())

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:            31356000,
		HSTSPreloadEnabled:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data:; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'; frame-ancestors 'none'",
		PermissionPolicy:      "interest-cohort=()",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	registerPromOnce.Do(func() {
		fiberprom := fiberprometheus.New(observability.ServiceName)
		fiberprom.RegisterAt(app, "/metrics")
		app.Use(fiberprom.Middleware)
	})

	if conf.TracingEnabled {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithSpanNameFormatter(func(c *fiber.Ctx) string {
				return "HTTP " + c.Method() + " " + c.Route().Path
			}),
		))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
		return app
	}

	app.Use(middlewares.EnrichSentry())

	// charts are the expensive responses: rate limit them per client and keep rendered
	// documents around for a while
	app.Use(limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return !isChartRequest(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return cserr.New(fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS",
				"Your client is requesting charts too frequently. Charts only change when the dataset is reloaded.")
		},
		Max:        120,
		Expiration: time.Minute,
	}))
	app.Use(cache.New(cache.Config{
		Next: func(c *fiber.Ctx) bool {
			return !isChartRequest(c)
		},
		CacheHeader:  constant.CacheHeaderKey,
		CacheControl: true,
		Expiration:   time.Minute * 5,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.CopyString(c.OriginalURL())
		},
	}))

	return app
}
