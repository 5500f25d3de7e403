package render

import (
	"io"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"

	"courtside.dev/backend/internal/model"
)

// Scatter draws points-per-game against the metric value, one color per player. Points
// without a PPG are left out.
func Scatter(w io.Writer, points []*model.ScatterPoint, metric string, opts Options) error {
	opts = opts.withDefaults()

	plotted := lo.Filter(points, func(p *model.ScatterPoint, _ int) bool {
		return p.PPG.Valid
	})
	if len(plotted) == 0 {
		return Placeholder(w, opts, PlaceholderMessage)
	}

	players := lo.Uniq(lo.Map(plotted, func(p *model.ScatterPoint, _ int) string { return p.Player }))
	byPlayer := lo.GroupBy(plotted, func(p *model.ScatterPoint) string { return p.Player })

	series := make([]chart.Series, 0, len(players))
	for i, player := range players {
		ps := byPlayer[player]
		series = append(series, chart.ContinuousSeries{
			Name:    player,
			XValues: lo.Map(ps, func(p *model.ScatterPoint, _ int) float64 { return p.PPG.Float64 }),
			YValues: lo.Map(ps, func(p *model.ScatterPoint, _ int) float64 { return p.Value }),
			Style:   seriesStyle(i, false),
		})
	}

	xs := lo.Map(plotted, func(p *model.ScatterPoint, _ int) float64 { return p.PPG.Float64 })
	ys := lo.Map(plotted, func(p *model.ScatterPoint, _ int) float64 { return p.Value })

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(),
		XAxis: chart.XAxis{
			Name:  "Points per game",
			Range: paddedRange(lo.Min(xs), lo.Max(xs)),
		},
		YAxis: chart.YAxis{
			Name:  metric,
			Range: paddedRange(lo.Min(ys), lo.Max(ys)),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	return ch.Render(chart.SVG, w)
}
