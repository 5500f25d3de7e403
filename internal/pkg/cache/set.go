package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Set is a msgpack-encoded, prefix-namespaced view over a Redis database.
type Set struct {
	client *redis.Client
	prefix string
}

func NewSet(client *redis.Client, prefix string) *Set {
	return &Set{
		client: client,
		prefix: prefix + ":",
	}
}

func (c *Set) key(key string) string {
	return c.prefix + key
}

// Get decodes the value stored at key into dest. A missing key yields ErrNotFound.
func (c *Set) Get(ctx context.Context, key string, dest any) error {
	key = c.key(key)
	resp, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	} else if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")
		return err
	}
	if err = msgpack.Unmarshal(resp, dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack from redis")
		return err
	}
	return nil
}

func (c *Set) Set(ctx context.Context, key string, value any, expire time.Duration) error {
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to redis")
	}
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	if err = c.client.Set(ctx, key, b, expire).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

// Clear deletes every key under the prefix.
func (c *Set) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 500).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Error().Err(err).Str("prefix", c.prefix).Msg("failed to scan cache keys")
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Str("prefix", c.prefix).Msg("failed to clear cache")
		return err
	}
	return nil
}
