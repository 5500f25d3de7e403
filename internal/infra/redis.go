package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/app/appconfig"
)

// Redis connects to RedisURL. It returns a nil client when RedisURL is empty, which
// disables the shared dashboard cache.
func Redis(conf *appconfig.Config, lc fx.Lifecycle) (*redis.Client, error) {
	if conf.RedisURL == "" {
		log.Info().Msg("infra: redis: no url configured, shared cache disabled")
		return nil, nil
	}

	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to ping database")
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))

	return client, nil
}
