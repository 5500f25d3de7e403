package app

import (
	"time"

	"go.uber.org/fx"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/app/appcontext"
	"courtside.dev/backend/internal/controller"
	"courtside.dev/backend/internal/infra"
	"courtside.dev/backend/internal/pkg/logger"
	"courtside.dev/backend/internal/repo"
	"courtside.dev/backend/internal/server"
	"courtside.dev/backend/internal/service"
	"courtside.dev/backend/internal/workers/warmwkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits
		fx.Invoke(infra.SentryInit),
		fx.Invoke(infra.DevOps),

		// fx Extra Options
		fx.StartTimeout(5 * time.Minute),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		fx.StopTimeout(conf.HTTPServerShutdownTimeout + 5*time.Second),
	}

	if ctx.Env != appcontext.EnvCLI {
		baseOpts = append(baseOpts,
			// Servers
			server.Module(),

			// Controllers are fx#Invoke functions too, so they run after the inits above.
			controller.Module(),

			// Workers
			fx.Invoke(warmwkr.Start),
		)
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
