package pipeline

import (
	"github.com/samber/lo"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

// FilterSeason returns the regular season games of the given season in input order.
// The result is never nil.
func FilterSeason(records []*model.GameRecord, season int) []*model.GameRecord {
	return lo.Filter(records, func(r *model.GameRecord, _ int) bool {
		return r.Season == season && r.GameType == constant.GameTypeRegularSeason
	})
}
