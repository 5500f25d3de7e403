package service

import (
	"time"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/pkg/cache"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/repo"
)

type Season struct {
	conf *appconfig.Config
	repo *repo.GameRecord

	seasons *cache.Singular[[]int]
}

func NewSeason(conf *appconfig.Config, gameRecordRepo *repo.GameRecord) *Season {
	return &Season{
		conf:    conf,
		repo:    gameRecordRepo,
		seasons: cache.NewSingular[[]int]("seasons"),
	}
}

// List returns the seasons that have at least one record and lie in the configured range.
func (s *Season) List() []int {
	// records never change after load
	seasons, _ := s.seasons.MutexGetSet(func() ([]int, error) {
		return s.repo.Seasons(s.conf.SeasonRange), nil
	}, cache.NoExpiration)
	return seasons
}

// Validate rejects seasons outside the configured range. A season inside the range
// without any games is valid and yields empty results.
func (s *Season) Validate(season int) error {
	if !s.conf.SeasonRange.Contains(season) {
		return cserr.ErrInvalidReq.Msg("season %d is out of range [%d, %d]", season, s.conf.SeasonRange.Min, s.conf.SeasonRange.Max)
	}
	return nil
}

func (s *Season) LastModified() time.Time {
	return s.repo.LoadedAt()
}
