package pipeline

import (
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/model"
)

// meanOf returns the mean of the valid values and the number of values counted.
// Missing values count neither toward the numerator nor the denominator.
func meanOf(values []null.Float) (float64, int) {
	valid := lo.FilterMap(values, func(v null.Float, _ int) (float64, bool) {
		return v.Float64, v.Valid
	})
	if len(valid) == 0 {
		return 0, 0
	}
	return sum(valid) / float64(len(valid)), len(valid)
}

func sum[T constraints.Integer | constraints.Float](values []T) T {
	var s T
	for _, v := range values {
		s += v
	}
	return s
}

// quantile expects sorted values and interpolates linearly between the closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	pos := q * float64(len(sorted)-1)
	below := int(math.Floor(pos))
	above := int(math.Ceil(pos))
	return sorted[below] + (sorted[above]-sorted[below])*(pos-float64(below))
}

func playerOf(r *model.GameRecord) string {
	return r.Player
}

func playerSet(players []string) map[string]struct{} {
	set := make(map[string]struct{}, len(players))
	for _, p := range players {
		set[p] = struct{}{}
	}
	return set
}

// filterPlayers keeps records of the given players, preserving input order.
func filterPlayers(records []*model.GameRecord, players []string) []*model.GameRecord {
	set := playerSet(players)
	return lo.Filter(records, func(r *model.GameRecord, _ int) bool {
		_, ok := set[r.Player]
		return ok
	})
}
