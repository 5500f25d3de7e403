package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "courtside.dev/backend/cmd/app/cli"
	"courtside.dev/backend/cmd/app/cli/charts"
	"courtside.dev/backend/cmd/app/cli/pipeline"
	"courtside.dev/backend/cmd/app/server"
	"courtside.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "courtside",
		Description: "Top scorer impact dashboards for NBA regular seasons. Built with Go, fiber, go-chart and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			pipeline.Command(cliapp.DepsFn[pipeline.CommandDeps]()),
			charts.Command(cliapp.DepsFn[charts.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
