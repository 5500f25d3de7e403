package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/pkg/observability"
	"courtside.dev/backend/internal/render"
)

type Chart struct {
	dashboard *Dashboard
}

func NewChart(dashboardService *Dashboard) *Chart {
	return &Chart{
		dashboard: dashboardService,
	}
}

// Render writes the named chart of q's dashboard to w as SVG.
func (s *Chart) Render(ctx context.Context, q model.DashboardQuery, chart string, opts render.Options, w io.Writer) error {
	if !lo.Contains(constant.Charts, chart) {
		return cserr.ErrNotFound.Msg("chart %q does not exist, available charts are %v", chart, constant.Charts)
	}

	d, err := s.dashboard.Get(ctx, q)
	if err != nil {
		return err
	}

	if opts.Title == "" {
		opts.Title = chartTitle(d, chart)
	}

	start := time.Now()
	defer func() {
		observability.ChartRenderDuration.WithLabelValues(chart).Observe(time.Since(start).Seconds())
	}()

	switch chart {
	case constant.ChartSummary:
		return render.Summary(w, d, opts)
	case constant.ChartScatter:
		return render.Scatter(w, d.Scatter, d.Metric, opts)
	default:
		return render.Trend(w, d.Trend, opts)
	}
}

func chartTitle(d *model.Dashboard, chart string) string {
	season := fmt.Sprintf("%d-%02d", d.Season, (d.Season+1)%100)
	switch chart {
	case constant.ChartSummary:
		return fmt.Sprintf("%s %s by player", season, d.Metric)
	case constant.ChartScatter:
		return fmt.Sprintf("%s points per game vs %s", season, d.Metric)
	}
	return season + " cumulative win rate"
}
