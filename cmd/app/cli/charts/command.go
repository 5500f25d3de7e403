package charts

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "courtside.dev/backend/cmd/app/cli"
	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/render"
	"courtside.dev/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	ChartService *service.Chart
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:        "render",
		Usage:       "render season charts as SVG files",
		Description: "writes summary.svg, scatter.svg and trend.svg for one season into the output directory",
		Flags: append(cliapp.QueryFlags(),
			&cli.PathFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory",
				Value:   ".",
			},
			&cli.IntFlag{
				Name:  "width",
				Value: constant.ChartDefaultWidth,
			},
			&cli.IntFlag{
				Name:  "height",
				Value: constant.ChartDefaultHeight,
			},
		),
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			dir := c.Path("out")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			q := cliapp.Query(c)
			opts := render.Options{Width: c.Int("width"), Height: c.Int("height")}
			for _, chart := range constant.Charts {
				path := filepath.Join(dir, chart+".svg")
				if err := writeChart(c, deps.ChartService, chart, path, q, opts); err != nil {
					return err
				}
				log.Info().Str("chart", chart).Str("path", path).Msg("chart written")
			}
			return nil
		},
	}
}

func writeChart(c *cli.Context, s *service.Chart, chart, path string, q model.DashboardQuery, opts render.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return s.Render(c.Context, q, chart, opts, f)
}
