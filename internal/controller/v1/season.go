package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pkg/cachectrl"
	"courtside.dev/backend/internal/server/svr"
	"courtside.dev/backend/internal/service"
	"courtside.dev/backend/internal/util/rekuest"
)

type Season struct {
	fx.In

	SeasonService    *service.Season
	DashboardService *service.Dashboard
	SelectionService *service.Selection
}

func RegisterSeason(v1 *svr.V1, c Season) {
	v1.Get("/seasons", c.GetSeasons)

	season := v1.Group("/seasons/:season")
	season.Get("/top-scorers", c.GetTopScorers)
	season.Get("/dashboard", c.GetDashboard)
	season.Get("/summary", c.GetSummary)
	season.Get("/scatter", c.GetScatter)
	season.Get("/scatter/brush", c.GetScatterBrush)
	season.Get("/scatter/nearest", c.GetScatterNearest)
	season.Get("/trend", c.GetTrend)
}

type SummaryResponse struct {
	*model.MetricSummary
	Box []*model.BoxStats `json:"box"`
}

type NearestResponse struct {
	Point *model.ScatterPoint `json:"point"`
}

func (c *Season) dashboard(ctx *fiber.Ctx) (*model.Dashboard, error) {
	q, err := dashboardQuery(ctx)
	if err != nil {
		return nil, err
	}
	d, err := c.DashboardService.Get(ctx.UserContext(), q)
	if err != nil {
		return nil, err
	}
	cachectrl.OptIn(ctx, c.SeasonService.LastModified())
	return d, nil
}

func (c *Season) GetSeasons(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx, c.SeasonService.LastModified())
	return ctx.JSON(fiber.Map{
		"seasons": c.SeasonService.List(),
	})
}

func (c *Season) GetTopScorers(ctx *fiber.Ctx) error {
	d, err := c.dashboard(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(d.TopScorers)
}

func (c *Season) GetDashboard(ctx *fiber.Ctx) error {
	d, err := c.dashboard(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(d)
}

func (c *Season) GetSummary(ctx *fiber.Ctx) error {
	d, err := c.dashboard(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(SummaryResponse{
		MetricSummary: d.Summary,
		Box:           d.Box,
	})
}

func (c *Season) GetScatter(ctx *fiber.Ctx) error {
	d, err := c.dashboard(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(d.Scatter)
}

func (c *Season) GetTrend(ctx *fiber.Ctx) error {
	d, err := c.dashboard(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(d.Trend)
}

func (c *Season) GetScatterBrush(ctx *fiber.Ctx) error {
	q, err := dashboardQuery(ctx)
	if err != nil {
		return err
	}
	if err := requireQuery(ctx, "xmin", "xmax", "ymin", "ymax"); err != nil {
		return err
	}
	var rect model.Rect
	if err := rekuest.ValidQuery(ctx, &rect); err != nil {
		return err
	}

	points, err := c.SelectionService.Brush(ctx.UserContext(), q, rect)
	if err != nil {
		return err
	}
	return ctx.JSON(points)
}

func (c *Season) GetScatterNearest(ctx *fiber.Ctx) error {
	q, err := dashboardQuery(ctx)
	if err != nil {
		return err
	}
	if err := requireQuery(ctx, "x", "y", "threshold"); err != nil {
		return err
	}
	var near model.NearQuery
	if err := rekuest.ValidQuery(ctx, &near); err != nil {
		return err
	}

	p, err := c.SelectionService.Nearest(ctx.UserContext(), q, near)
	if err != nil {
		return err
	}
	return ctx.JSON(NearestResponse{Point: p})
}
