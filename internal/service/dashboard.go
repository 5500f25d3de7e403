package service

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pipeline"
	"courtside.dev/backend/internal/pkg/cache"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/pkg/observability"
	"courtside.dev/backend/internal/repo"
)

const dashboardCachePrefix = "courtside:dashboard"

// Dashboard computes season dashboards and memoizes them. Memoization never changes the
// result: a cached dashboard is identical to a freshly built one.
type Dashboard struct {
	conf   *appconfig.Config
	repo   *repo.GameRecord
	season *Season
	tracer trace.Tracer

	local  *cache.Keyed[*model.Dashboard]
	shared *cache.Set // nil without redis
	group  singleflight.Group
}

func NewDashboard(conf *appconfig.Config, gameRecordRepo *repo.GameRecord, seasonService *Season, tracer trace.Tracer, redisClient *redis.Client) *Dashboard {
	s := &Dashboard{
		conf:   conf,
		repo:   gameRecordRepo,
		season: seasonService,
		tracer: tracer,
		local:  cache.NewKeyed[*model.Dashboard](conf.DashboardCacheTTL),
	}
	if redisClient != nil {
		s.shared = cache.NewSet(redisClient, dashboardCachePrefix)
	}
	return s
}

// Normalize validates q and canonicalizes its player selection: duplicates are dropped
// while nil (the default selection) stays nil.
func (s *Dashboard) Normalize(q model.DashboardQuery) (model.DashboardQuery, error) {
	if err := s.season.Validate(q.Season); err != nil {
		return q, err
	}
	if !lo.Contains(constant.Metrics, q.Metric) {
		return q, cserr.ErrInvalidReq.Msg("metric must be one of %v, got %q", constant.Metrics, q.Metric)
	}
	if q.Players != nil {
		q.Players = lo.Uniq(q.Players)
	}
	return q, nil
}

func cacheKey(q model.DashboardQuery) string {
	return strconv.FormatUint(xxh3.HashString(q.String()), 16)
}

// Get returns the dashboard for q, computing it at most once per cache lifetime.
func (s *Dashboard) Get(ctx context.Context, q model.DashboardQuery) (*model.Dashboard, error) {
	q, err := s.Normalize(q)
	if err != nil {
		return nil, err
	}
	key := cacheKey(q)

	if d, ok := s.local.Get(key); ok {
		observability.DashboardCacheLookups.WithLabelValues("local", "hit").Inc()
		return d, nil
	}
	observability.DashboardCacheLookups.WithLabelValues("local", "miss").Inc()

	v, err, _ := s.group.Do(key, func() (any, error) {
		if d, ok := s.local.Get(key); ok {
			return d, nil
		}
		d := s.fromShared(ctx, key)
		if d == nil {
			d = s.Build(ctx, q)
			s.toShared(ctx, key, d)
		}
		s.local.Set(key, d)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Dashboard), nil
}

// Build runs the pipeline for q without consulting any cache.
func (s *Dashboard) Build(ctx context.Context, q model.DashboardQuery) *model.Dashboard {
	ctx, span := s.tracer.Start(ctx, "dashboard.build", trace.WithAttributes(
		attribute.Int("season", q.Season),
		attribute.String("metric", q.Metric),
		attribute.Bool("defaultSelection", q.Players == nil),
	))
	defer span.End()

	return pipeline.Build(s.repo.Records(), q, func(name string, fn func()) {
		_, stageSpan := s.tracer.Start(ctx, "pipeline."+name)
		start := time.Now()
		fn()
		observability.PipelineStageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		stageSpan.End()
	})
}

func (s *Dashboard) fromShared(ctx context.Context, key string) *model.Dashboard {
	if s.shared == nil {
		return nil
	}
	var d model.Dashboard
	err := s.shared.Get(ctx, key, &d)
	if errors.Is(err, cache.ErrNotFound) {
		observability.DashboardCacheLookups.WithLabelValues("shared", "miss").Inc()
		return nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("shared dashboard cache unavailable, recomputing")
		observability.DashboardCacheLookups.WithLabelValues("shared", "error").Inc()
		return nil
	}
	observability.DashboardCacheLookups.WithLabelValues("shared", "hit").Inc()
	return &d
}

func (s *Dashboard) toShared(ctx context.Context, key string, d *model.Dashboard) {
	if s.shared == nil {
		return
	}
	if err := s.shared.Set(ctx, key, d, s.conf.DashboardCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to store dashboard in shared cache")
	}
}

// Purge drops every memoized dashboard.
func (s *Dashboard) Purge(ctx context.Context) error {
	s.local.Flush()
	if s.shared != nil {
		return s.shared.Clear(ctx)
	}
	return nil
}
