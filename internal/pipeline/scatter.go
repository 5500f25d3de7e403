package pipeline

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/model"
)

// JoinScatter left-joins the season points-per-game of each player onto every summary row.
// A player without recorded points keeps a null PPG.
func JoinScatter(summary *model.MetricSummary, slice []*model.GameRecord) []*model.ScatterPoint {
	if summary == nil {
		return []*model.ScatterPoint{}
	}

	ppg := lo.Associate(PointsPerGame(slice), func(s *model.TopScorer) (string, float64) {
		return s.Player, s.PPG
	})

	return lo.Map(summary.Rows, func(row *model.MetricRow, _ int) *model.ScatterPoint {
		point := &model.ScatterPoint{
			Player: row.Player,
			Value:  row.Value,
			Date:   row.Date,
		}
		if v, ok := ppg[row.Player]; ok {
			point.PPG = null.FloatFrom(v)
		}
		return point
	})
}
