package testentry

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/app"
	"courtside.dev/backend/internal/app/appcontext"
)

// Populate starts the server graph and fills targets from it. Callers set COURTSIDE_*
// environment variables beforehand, typically COURTSIDE_DATASET_SOURCE.
func Populate(t zerolog.TestingLog, targets ...any) *fx.App {
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := app.Options(appcontext.Declare(appcontext.EnvServer), fx.NopLogger)
	opts = append(opts, fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	a := fx.New(opts...)

	if err := a.Start(context.Background()); err != nil {
		panic(err)
	}
	return a
}
