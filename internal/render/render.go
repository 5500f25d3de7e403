// Package render draws dashboard tables as standalone SVG documents.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"courtside.dev/backend/internal/constant"
)

const PlaceholderMessage = "No data for this selection"

type Options struct {
	Width  int
	Height int
	Title  string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = constant.ChartDefaultWidth
	}
	if o.Height <= 0 {
		o.Height = constant.ChartDefaultHeight
	}
	return o
}

// Placeholder writes an otherwise empty chart carrying message.
func Placeholder(w io.Writer, opts Options, message string) error {
	opts = opts.withDefaults()

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white;stroke:#cccccc;stroke-width:1")
	canvas.Gstyle("font-family:Helvetica,Arial,sans-serif;fill:gray;text-anchor:middle")
	if opts.Title != "" {
		canvas.Text(opts.Width/2, 32, opts.Title, "font-size:18px;fill:#333333")
	}
	canvas.Text(opts.Width/2, opts.Height/2, message, "font-size:20px")
	canvas.Gend()
	canvas.End()
	return nil
}

func seriesStyle(i int, line bool) chart.Style {
	color := chart.GetDefaultColor(i)
	if line {
		return chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
			DotColor:    color,
			DotWidth:    3,
		}
	}
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotColor:    color.WithAlpha(200),
		DotWidth:    5,
	}
}

func background() chart.Style {
	return chart.Style{
		Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		FillColor: drawing.ColorWhite,
	}
}

// paddedRange spans lo..hi with a margin on both ends and is never empty.
func paddedRange(lo, hi float64) *chart.ContinuousRange {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(lo), 1)
	}
	margin := span * 0.08
	return &chart.ContinuousRange{Min: lo - margin, Max: hi + margin}
}

func percentFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f*100)
	}
	return ""
}
