package pipeline

import (
	"slices"

	"github.com/samber/lo"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

// Box computes the five-number summary per player of a plus_minus summary, in first-appearance
// order. Other metrics have no box representation and yield an empty result.
func Box(summary *model.MetricSummary) []*model.BoxStats {
	stats := []*model.BoxStats{}
	if summary == nil || summary.Metric != constant.MetricPlusMinus {
		return stats
	}

	players := lo.Uniq(lo.Map(summary.Rows, func(r *model.MetricRow, _ int) string {
		return r.Player
	}))
	byPlayer := lo.GroupBy(summary.Rows, func(r *model.MetricRow) string {
		return r.Player
	})

	for _, player := range players {
		values := lo.Map(byPlayer[player], func(r *model.MetricRow, _ int) float64 {
			return r.Value
		})
		slices.Sort(values)
		stats = append(stats, &model.BoxStats{
			Player: player,
			Count:  len(values),
			Min:    values[0],
			Q1:     quantile(values, 0.25),
			Median: quantile(values, 0.5),
			Q3:     quantile(values, 0.75),
			Max:    values[len(values)-1],
		})
	}

	return stats
}
