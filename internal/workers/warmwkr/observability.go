package warmwkr

import (
	"time"

	"courtside.dev/backend/internal/pkg/observability"
)

func observeWarmDuration(worker string, f func() error) error {
	start := time.Now()
	defer func() {
		observability.WorkerWarmDuration.WithLabelValues(worker).Set(time.Since(start).Seconds())
	}()
	return f()
}
