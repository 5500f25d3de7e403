package cli

import (
	"github.com/urfave/cli/v2"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

// QueryFlags are shared by every command that selects a dashboard.
func QueryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "season",
			Aliases:  []string{"s"},
			Usage:    "season to analyze, named by the year it started in",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "metric",
			Aliases: []string{"m"},
			Usage:   "impact metric, one of win_rate or plus_minus",
			Value:   constant.MetricWinRate,
		},
		&cli.StringSliceFlag{
			Name:    "player",
			Aliases: []string{"p"},
			Usage:   "restrict the selection to these top scorers; repeat for more players",
		},
	}
}

func Query(c *cli.Context) model.DashboardQuery {
	q := model.DashboardQuery{
		Season: c.Int("season"),
		Metric: c.String("metric"),
	}
	if c.IsSet("player") {
		q.Players = append([]string{}, c.StringSlice("player")...)
	}
	return q
}
