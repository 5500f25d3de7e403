package warmwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	SeasonService    *service.Season
	DashboardService *service.Dashboard
}

// Worker precomputes the default dashboard of every season and metric so the first
// request for each of them is served from cache.
type Worker struct {
	// count counts batches worker has completed so far
	count int

	// sep describes the separation time in-between different jobs
	sep time.Duration

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps, lc fx.Lifecycle) {
	if !conf.WorkerEnabled {
		log.Info().Msg("warm worker disabled")
		return
	}

	w := &Worker{
		sep:        conf.WorkerSeparation,
		interval:   conf.WorkerInterval,
		WorkerDeps: deps,
	}

	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			cancel = w.do()
			return nil
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			log.Info().
				Int("count", w.count).
				Msg("worker batch started")

			w.Batch(ctx)

			log.Info().Int("count", w.count).Msg("worker batch finished")
			w.count++

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

// Batch warms every season and metric once. It stops early when ctx is cancelled.
func (w *Worker) Batch(ctx context.Context) {
	for _, season := range w.SeasonService.List() {
		for _, metric := range constant.Metrics {
			if ctx.Err() != nil {
				return
			}

			q := model.DashboardQuery{Season: season, Metric: metric}
			err := observeWarmDuration("dashboard", func() error {
				_, err := w.DashboardService.Get(ctx, q)
				return err
			})
			if err != nil {
				log.Warn().Err(err).Int("season", season).Str("metric", metric).Msg("worker failed to warm dashboard")
				continue
			}
			log.Debug().Int("season", season).Str("metric", metric).Msg("worker warmed dashboard")

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.sep):
			}
		}
	}
}

func (w *Worker) Count() int {
	return w.count
}
