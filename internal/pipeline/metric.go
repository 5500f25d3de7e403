package pipeline

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

// Summarize computes the metric summary of the selected players.
//
// For win_rate there is one row per player, in the order of players, holding the mean of the
// player's recorded win values. For plus_minus there is one row per game carrying the raw
// plus/minus value, in slice order. Players without any usable value are absent.
func Summarize(slice []*model.GameRecord, metric string, players []string) *model.MetricSummary {
	summary := &model.MetricSummary{
		Metric: metric,
		Rows:   []*model.MetricRow{},
	}
	players = lo.Uniq(players)
	if len(players) == 0 {
		return summary
	}

	selected := filterPlayers(slice, players)

	switch metric {
	case constant.MetricWinRate:
		byPlayer := lo.GroupBy(selected, playerOf)
		for _, player := range players {
			rate, games := meanOf(lo.Map(byPlayer[player], func(r *model.GameRecord, _ int) null.Float {
				return r.Win
			}))
			if games == 0 {
				continue
			}
			summary.Rows = append(summary.Rows, &model.MetricRow{
				Player: player,
				Value:  rate,
				Games:  games,
			})
		}
	case constant.MetricPlusMinus:
		summary.Rows = lo.FilterMap(selected, func(r *model.GameRecord, _ int) (*model.MetricRow, bool) {
			if !r.PlusMinus.Valid {
				return nil, false
			}
			return &model.MetricRow{
				Player: r.Player,
				Value:  r.PlusMinus.Float64,
				Date:   null.TimeFrom(r.GameDate),
			}, true
		})
	}

	return summary
}
