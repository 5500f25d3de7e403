package pipeline

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/model"
)

// PointsPerGame computes the mean points of every player in first-encounter order.
// Players without a single recorded points value are left out.
func PointsPerGame(slice []*model.GameRecord) []*model.TopScorer {
	players := lo.Uniq(lo.Map(slice, func(r *model.GameRecord, _ int) string {
		return r.Player
	}))
	byPlayer := lo.GroupBy(slice, playerOf)

	return lo.FilterMap(players, func(player string, _ int) (*model.TopScorer, bool) {
		ppg, games := meanOf(lo.Map(byPlayer[player], func(r *model.GameRecord, _ int) null.Float {
			return r.Points
		}))
		if games == 0 {
			return nil, false
		}
		return &model.TopScorer{
			Player: player,
			PPG:    ppg,
			Games:  games,
		}, true
	})
}

// TopScorers ranks players by descending mean points and keeps the first limit of them.
// Equal means keep their first-encounter order.
func TopScorers(slice []*model.GameRecord, limit int) []*model.TopScorer {
	scorers := PointsPerGame(slice)
	slices.SortStableFunc(scorers, func(a, b *model.TopScorer) int {
		return cmp.Compare(b.PPG, a.PPG)
	})
	if len(scorers) > limit {
		scorers = scorers[:limit]
	}
	for i, s := range scorers {
		s.Rank = i + 1
	}
	return scorers
}

// SelectPlayers narrows the requested players down to the top scorer set, keeping the ranking
// order. A nil request selects every top scorer.
func SelectPlayers(top []*model.TopScorer, requested []string) []string {
	ranked := lo.Map(top, func(s *model.TopScorer, _ int) string {
		return s.Player
	})
	if requested == nil {
		return ranked
	}
	set := playerSet(requested)
	return lo.Filter(ranked, func(p string, _ int) bool {
		_, ok := set[p]
		return ok
	})
}
