package pipeline

import (
	"math"

	"github.com/samber/lo"

	"courtside.dev/backend/internal/model"
)

// Brush returns the points lying inside the inclusive rectangle. Points with a null PPG have no
// position on the plane and never match.
func Brush(points []*model.ScatterPoint, rect model.Rect) []*model.ScatterPoint {
	xmin, xmax := math.Min(rect.XMin, rect.XMax), math.Max(rect.XMin, rect.XMax)
	ymin, ymax := math.Min(rect.YMin, rect.YMax), math.Max(rect.YMin, rect.YMax)
	return lo.Filter(points, func(p *model.ScatterPoint, _ int) bool {
		if !p.PPG.Valid {
			return false
		}
		x := p.PPG.Float64
		return x >= xmin && x <= xmax && p.Value >= ymin && p.Value <= ymax
	})
}

// Nearest returns the point closest to (x, y) within threshold. The first point wins ties.
func Nearest(points []*model.ScatterPoint, q model.NearQuery) (*model.ScatterPoint, bool) {
	var (
		best     *model.ScatterPoint
		bestDist = math.Inf(1)
	)
	for _, p := range points {
		if !p.PPG.Valid {
			continue
		}
		d := math.Hypot(p.PPG.Float64-q.X, p.Value-q.Y)
		if d <= q.Threshold && d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, best != nil
}
