package server

import "github.com/urfave/cli/v2"

func Command() *cli.Command {
	return &cli.Command{
		Name:        "start",
		Usage:       "serve the dashboard API",
		Description: "loads the dataset once, then serves /api/v1 on COURTSIDE_SERVICE_ADDRESS until interrupted",
		Action: func(*cli.Context) error {
			Run()
			return nil
		},
	}
}
