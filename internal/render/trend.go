package render

import (
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"

	"courtside.dev/backend/internal/model"
)

// Trend draws the cumulative win rate of each player over the season. Points before a
// player's first known result carry no value and are skipped.
func Trend(w io.Writer, trend []*model.TrendSeries, opts Options) error {
	opts = opts.withDefaults()

	var (
		series      []chart.Series
		first, last time.Time
	)
	for i, s := range trend {
		known := lo.Filter(s.Points, func(p *model.TrendPoint, _ int) bool { return p.WinRate.Valid })
		if len(known) == 0 {
			continue
		}
		for _, p := range known {
			if first.IsZero() || p.Date.Before(first) {
				first = p.Date
			}
			if p.Date.After(last) {
				last = p.Date
			}
		}
		series = append(series, chart.TimeSeries{
			Name:    s.Player,
			XValues: lo.Map(known, func(p *model.TrendPoint, _ int) time.Time { return p.Date }),
			YValues: lo.Map(known, func(p *model.TrendPoint, _ int) float64 { return p.WinRate.Float64 }),
			Style:   seriesStyle(i, true),
		})
	}
	if len(series) == 0 {
		return Placeholder(w, opts, PlaceholderMessage)
	}
	if !last.After(first) {
		first, last = first.AddDate(0, 0, -1), last.AddDate(0, 0, 1)
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(),
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(first),
				Max: chart.TimeToFloat64(last),
			},
		},
		YAxis: chart.YAxis{
			Name:           "Cumulative win rate",
			Range:          &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: percentFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	return ch.Render(chart.SVG, w)
}
