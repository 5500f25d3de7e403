package pipeline

import (
	"slices"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

// Trend computes the cumulative win rate of each selected player over the player's games in
// date order. It only applies to the win_rate metric; any other metric or an empty selection
// yields an empty result.
func Trend(slice []*model.GameRecord, metric string, players []string) []*model.TrendSeries {
	series := []*model.TrendSeries{}
	if metric != constant.MetricWinRate || len(players) == 0 {
		return series
	}

	byPlayer := lo.GroupBy(filterPlayers(slice, players), playerOf)
	for _, player := range lo.Uniq(players) {
		games := slices.Clone(byPlayer[player])
		slices.SortStableFunc(games, func(a, b *model.GameRecord) int {
			return a.GameDate.Compare(b.GameDate)
		})

		points := cumulativeWinRate(games)
		if points == nil {
			continue
		}
		series = append(series, &model.TrendSeries{
			Player: player,
			Points: points,
		})
	}

	return series
}

// cumulativeWinRate returns nil when none of the games has a recorded win value.
// Until the first recorded value, points carry a null win rate.
func cumulativeWinRate(games []*model.GameRecord) []*model.TrendPoint {
	var (
		wins    float64
		counted int
	)
	points := make([]*model.TrendPoint, 0, len(games))
	for _, g := range games {
		if g.Win.Valid {
			wins += g.Win.Float64
			counted++
		}
		point := &model.TrendPoint{Date: g.GameDate}
		if counted > 0 {
			point.WinRate = null.FloatFrom(wins / float64(counted))
		}
		points = append(points, point)
	}
	if counted == 0 {
		return nil
	}
	return points
}
