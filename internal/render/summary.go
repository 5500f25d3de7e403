package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

// Summary draws the metric summary: win rate per player as bars on a fixed [0,1] axis,
// plus/minus as one box plot per player.
func Summary(w io.Writer, d *model.Dashboard, opts Options) error {
	opts = opts.withDefaults()
	if d == nil || d.Summary == nil || len(d.Summary.Rows) == 0 {
		return Placeholder(w, opts, PlaceholderMessage)
	}

	switch d.Summary.Metric {
	case constant.MetricWinRate:
		return winRateBars(w, d.Summary.Rows, opts)
	case constant.MetricPlusMinus:
		if len(d.Box) == 0 {
			return Placeholder(w, opts, PlaceholderMessage)
		}
		return BoxPlot(w, d.Box, opts)
	}
	return fmt.Errorf("render: unsupported metric %q", d.Summary.Metric)
}

func winRateBars(w io.Writer, rows []*model.MetricRow, opts Options) error {
	// bar widths must fit inside the canvas, so size them from the number of rows
	slot := float64(opts.Width-120) / float64(len(rows))
	barWidth := int(math.Max(slot*0.6, 4))
	spacing := int(math.Max(slot-float64(barWidth), 2))

	bc := chart.BarChart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(),
		BarWidth:   barWidth,
		BarSpacing: spacing,
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: percentFormatter,
		},
		Bars: lo.Map(rows, func(row *model.MetricRow, i int) chart.Value {
			return chart.Value{
				Label: row.Player,
				Value: row.Value,
				Style: chart.Style{
					FillColor:   chart.GetDefaultColor(i),
					StrokeColor: chart.GetDefaultColor(i),
				},
			}
		}),
	}
	return bc.Render(chart.SVG, w)
}

// BoxPlot draws one box per entry: whiskers at min and max, the box from Q1 to Q3 and a
// line at the median.
func BoxPlot(w io.Writer, boxes []*model.BoxStats, opts Options) error {
	opts = opts.withDefaults()
	if len(boxes) == 0 {
		return Placeholder(w, opts, PlaceholderMessage)
	}

	const (
		top    = 48
		bottom = 56
		left   = 56
		right  = 16
	)
	plotW := opts.Width - left - right
	plotH := opts.Height - top - bottom

	yr := paddedRange(
		lo.MinBy(boxes, func(a, b *model.BoxStats) bool { return a.Min < b.Min }).Min,
		lo.MaxBy(boxes, func(a, b *model.BoxStats) bool { return a.Max > b.Max }).Max,
	)
	y := func(v float64) int {
		return top + int(math.Round((yr.Max-v)/(yr.Max-yr.Min)*float64(plotH)))
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")
	canvas.Gstyle("font-family:Helvetica,Arial,sans-serif;font-size:12px")
	if opts.Title != "" {
		canvas.Text(opts.Width/2, 28, opts.Title, "font-size:18px;text-anchor:middle;fill:#333333")
	}

	// axis with a few ticks, plus the zero line when it is in view
	canvas.Line(left, top, left, top+plotH, "stroke:#999999")
	for i := 0; i <= 4; i++ {
		v := yr.Min + (yr.Max-yr.Min)*float64(i)/4
		canvas.Line(left-4, y(v), left, y(v), "stroke:#999999")
		canvas.Text(left-8, y(v)+4, fmt.Sprintf("%.1f", v), "text-anchor:end;fill:#666666")
	}
	if yr.Min < 0 && yr.Max > 0 {
		canvas.Line(left, y(0), left+plotW, y(0), "stroke:#cccccc;stroke-dasharray:4,4")
	}

	slot := plotW / len(boxes)
	boxW := int(math.Max(float64(slot)*0.5, 4))
	for i, b := range boxes {
		color := chart.GetDefaultColor(i).String()
		cx := left + slot*i + slot/2

		canvas.Line(cx, y(b.Max), cx, y(b.Q3), "stroke:"+color)
		canvas.Line(cx, y(b.Q1), cx, y(b.Min), "stroke:"+color)
		canvas.Line(cx-boxW/4, y(b.Max), cx+boxW/4, y(b.Max), "stroke:"+color)
		canvas.Line(cx-boxW/4, y(b.Min), cx+boxW/4, y(b.Min), "stroke:"+color)
		canvas.Rect(cx-boxW/2, y(b.Q3), boxW, max(y(b.Q1)-y(b.Q3), 1),
			"fill-opacity:0.3;fill:"+color+";stroke:"+color)
		canvas.Line(cx-boxW/2, y(b.Median), cx+boxW/2, y(b.Median), "stroke-width:2;stroke:"+color)
		canvas.Text(cx, top+plotH+20, b.Player, "text-anchor:middle;fill:#333333")
	}

	canvas.Gend()
	canvas.End()
	return nil
}
