package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Singular holds at most one value of type T in process memory.
type Singular[T any] struct {
	// m serializes the slow path of MutexGetSet
	m sync.Mutex

	key string
	c   *cache.Cache
}

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

func (c *Singular[T]) Get() (T, error) {
	v, ok := c.c.Get(c.key)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v.(T), nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) {
	c.c.Set(c.key, value, expire)
}

// MutexGetSet returns the cached value, or computes it with valueFunc while holding the
// lock so that concurrent misses compute it only once.
func (c *Singular[T]) MutexGetSet(valueFunc func() (T, error), expire time.Duration) (T, error) {
	if v, err := c.Get(); err == nil {
		return v, nil
	}

	c.m.Lock()
	defer c.m.Unlock()
	if v, err := c.Get(); err == nil {
		return v, nil
	}

	v, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return v, err
	}
	c.Set(v, expire)
	return v, nil
}

func (c *Singular[T]) Delete() {
	c.c.Flush()
}
