package dataset

import (
	"time"

	"courtside.dev/backend/internal/constant"
)

// SeasonOf returns the season a game played at t belongs to: games from October onward belong
// to the year they are played in, earlier games to the previous year.
func SeasonOf(t time.Time) int {
	if int(t.Month()) >= constant.SeasonStartMonth {
		return t.Year()
	}
	return t.Year() - 1
}
