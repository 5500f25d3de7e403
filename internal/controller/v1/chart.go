package v1

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/cachectrl"
	"courtside.dev/backend/internal/render"
	"courtside.dev/backend/internal/server/svr"
	"courtside.dev/backend/internal/service"
	"courtside.dev/backend/internal/util/rekuest"
)

type Chart struct {
	fx.In

	ChartService  *service.Chart
	SeasonService *service.Season
}

func RegisterChart(v1 *svr.V1, c Chart) {
	v1.Get("/seasons/:season/charts/:chart", c.GetChart)
}

func (c *Chart) GetChart(ctx *fiber.Ctx) error {
	chart := ctx.Params("chart")
	if err := rekuest.ValidVar(chart, "required,chart"); err != nil {
		return err
	}
	q, err := dashboardQuery(ctx)
	if err != nil {
		return err
	}

	width := ctx.QueryInt("width", constant.ChartDefaultWidth)
	height := ctx.QueryInt("height", constant.ChartDefaultHeight)
	if err := rekuest.ValidVar(width, "gte=160,lte=4096"); err != nil {
		return err
	}
	if err := rekuest.ValidVar(height, "gte=120,lte=4096"); err != nil {
		return err
	}

	var buf bytes.Buffer
	err = c.ChartService.Render(ctx.UserContext(), q, chart, render.Options{Width: width, Height: height}, &buf)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, c.SeasonService.LastModified())
	ctx.Type("svg")
	return ctx.Send(buf.Bytes())
}
