package repo

import (
	"context"
	"time"

	"github.com/ahmetb/go-linq/v3"
	"github.com/rs/zerolog/log"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/dataset"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pkg/observability"
)

const datasetLoadTimeout = 5 * time.Minute

// GameRecord holds the normalized dataset in memory. It is loaded once and never mutated
// afterwards, so the slice it hands out may be shared across goroutines.
type GameRecord struct {
	records  []*model.GameRecord
	loadedAt time.Time
}

func NewGameRecord(conf *appconfig.Config, objects dataset.ObjectGetter) (*GameRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), datasetLoadTimeout)
	defer cancel()

	start := time.Now()
	records, err := dataset.Load(ctx, conf.DatasetSource, objects)
	if err != nil {
		log.Error().
			Err(err).
			Str("source", conf.DatasetSource).
			Msg("failed to load dataset")
		return nil, err
	}
	elapsed := time.Since(start)

	observability.DatasetRecords.Set(float64(len(records)))
	observability.DatasetLoadDuration.Set(elapsed.Seconds())

	log.Info().
		Str("evt.name", "dataset.loaded").
		Str("source", conf.DatasetSource).
		Int("records", len(records)).
		Dur("took", elapsed).
		Msg("dataset loaded")

	return NewGameRecordFrom(records, time.Now()), nil
}

// NewGameRecordFrom wraps records that were already loaded.
func NewGameRecordFrom(records []*model.GameRecord, loadedAt time.Time) *GameRecord {
	return &GameRecord{
		records:  records,
		loadedAt: loadedAt,
	}
}

// Records returns every loaded record in file order. Callers must not modify it.
func (r *GameRecord) Records() []*model.GameRecord {
	return r.records
}

func (r *GameRecord) LoadedAt() time.Time {
	return r.loadedAt
}

// Seasons returns the distinct seasons present in the data within rng, ascending.
func (r *GameRecord) Seasons(rng appconfig.SeasonRange) []int {
	seasons := []int{}
	linq.From(r.records).
		SelectT(func(record *model.GameRecord) int { return record.Season }).
		Distinct().
		WhereT(func(season int) bool { return rng.Contains(season) }).
		OrderByT(func(season int) int { return season }).
		ToSlice(&seasons)
	return seasons
}
