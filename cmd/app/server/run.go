package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/app"
	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/app/appcontext"
)

// Run blocks until the process receives SIGINT or SIGTERM.
func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run)).Run()
}

func run(app *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			go func() {
				log.Info().Str("address", conf.ServiceAddress).Msg("server listening")
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return app.ShutdownWithTimeout(conf.HTTPServerShutdownTimeout)
		},
	})
}
