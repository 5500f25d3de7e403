package cli

import (
	"context"

	"go.uber.org/fx"

	"courtside.dev/backend/internal/app"
	"courtside.dev/backend/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// DepsFn resolves T from the CLI graph when called. Commands call it from their Action so
// flag parsing and --help do not load the dataset.
func DepsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := Start(fx.Populate(&deps))
		return deps, err
	}
}
