package warmwkr_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"courtside.dev/backend/internal/pkg/observability"
	"courtside.dev/backend/internal/pkg/testentry"
	"courtside.dev/backend/internal/service"
	"courtside.dev/backend/internal/workers/warmwkr"
)

func newWorker(t *testing.T) *warmwkr.Worker {
	t.Helper()
	t.Setenv("COURTSIDE_DATASET_SOURCE", "../../dataset/testdata/players.csv")

	var (
		seasonService    *service.Season
		dashboardService *service.Dashboard
	)
	testentry.Populate(t, &seasonService, &dashboardService)

	return &warmwkr.Worker{
		WorkerDeps: warmwkr.WorkerDeps{
			SeasonService:    seasonService,
			DashboardService: dashboardService,
		},
	}
}

func TestBatch(t *testing.T) {
	w := newWorker(t)

	w.Batch(context.Background())

	assert.Greater(t, testutil.ToFloat64(observability.WorkerWarmDuration.WithLabelValues("dashboard")), 0.0)
}

func TestBatchStopsWhenCancelled(t *testing.T) {
	w := newWorker(t)
	observability.WorkerWarmDuration.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Batch(ctx)

	assert.Equal(t, 0, testutil.CollectAndCount(observability.WorkerWarmDuration))
}
