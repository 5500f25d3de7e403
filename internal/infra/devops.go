package infra

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/felixge/fgprof"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/app/appconfig"
)

// DevOps serves profiling endpoints on DevOpsAddress when it is set.
func DevOps(conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevOpsAddress == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/debug/fgprof", fgprof.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              conf.DevOpsAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("address", conf.DevOpsAddress).Msg("devops server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("devops server terminated unexpectedly")
				}
			}()
			return nil
		},
		OnStop: srv.Shutdown,
	})
}
