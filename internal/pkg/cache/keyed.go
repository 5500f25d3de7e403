package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// NoExpiration keeps an entry until it is deleted.
const NoExpiration = cache.NoExpiration

// Keyed is an in-process cache of T values addressed by string keys.
type Keyed[T any] struct {
	c *cache.Cache
}

func NewKeyed[T any](defaultExpiration time.Duration) *Keyed[T] {
	return &Keyed[T]{
		c: cache.New(defaultExpiration, defaultExpiration*2),
	}
}

func (k *Keyed[T]) Get(key string) (T, bool) {
	v, ok := k.c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Set stores value with the default expiration given to NewKeyed.
func (k *Keyed[T]) Set(key string, value T) {
	k.c.SetDefault(key, value)
}

func (k *Keyed[T]) Len() int {
	return k.c.ItemCount()
}

func (k *Keyed[T]) Flush() {
	k.c.Flush()
}
