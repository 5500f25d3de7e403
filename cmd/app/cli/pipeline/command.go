package pipeline

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "courtside.dev/backend/cmd/app/cli"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	DashboardService *service.Dashboard
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:        "pipeline",
		Usage:       "compute a season dashboard",
		Description: "runs the top scorer pipeline for one season and prints the resulting dashboard",
		Flags: append(cliapp.QueryFlags(), &cli.StringFlag{
			Name:  "format",
			Usage: "output format, one of table or json",
			Value: "table",
		}),
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			d, err := deps.DashboardService.Get(c.Context, cliapp.Query(c))
			if err != nil {
				return err
			}

			switch format := c.String("format"); format {
			case "json":
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			case "table":
				return writeTable(c.App.Writer, d)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
}

func writeTable(out io.Writer, d *model.Dashboard) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "season %d\tmetric %s\n\n", d.Season, d.Metric)

	fmt.Fprintln(w, "RANK\tPLAYER\tPPG\tGAMES")
	for _, s := range d.TopScorers {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\n", s.Rank, s.Player, s.PPG, s.Games)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "PLAYER\tPPG\t"+d.Metric)
	if len(d.Scatter) == 0 {
		fmt.Fprintln(w, "(no players selected)")
	}
	for _, p := range d.Scatter {
		ppg := "-"
		if p.PPG.Valid {
			ppg = fmt.Sprintf("%.2f", p.PPG.Float64)
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\n", p.Player, ppg, p.Value)
	}

	return w.Flush()
}
