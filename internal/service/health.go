package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/repo"
)

var (
	ErrDatasetNotLoaded  = errors.New("dataset not loaded")
	ErrRedisNotReachable = errors.New("redis not reachable")
)

type Health struct {
	repo  *repo.GameRecord
	redis *redis.Client
}

func NewHealth(gameRecordRepo *repo.GameRecord, redisClient *redis.Client) *Health {
	return &Health{
		repo:  gameRecordRepo,
		redis: redisClient,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if s.repo == nil || s.repo.LoadedAt().IsZero() {
		return cserr.ErrUnavailable.Msg("%s", ErrDatasetNotLoaded)
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return cserr.ErrUnavailable.Msg("%s", errors.Wrap(ErrRedisNotReachable, err.Error()))
		}
	}

	return nil
}
