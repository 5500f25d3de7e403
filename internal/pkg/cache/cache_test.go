package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularMutexGetSet(t *testing.T) {
	c := NewSingular[[]int]("seasons")

	_, err := c.Get()
	assert.ErrorIs(t, err, ErrNotFound)

	var calls atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.MutexGetSet(func() ([]int, error) {
				calls.Add(1)
				return []int{2021, 2022}, nil
			}, time.Minute)
			assert.NoError(t, err)
			assert.Equal(t, []int{2021, 2022}, v)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, calls.Load())

	c.Delete()
	_, err = c.Get()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSingularPropagatesValueFuncError(t *testing.T) {
	c := NewSingular[int]("broken")
	boom := errors.New("boom")

	_, err := c.MutexGetSet(func() (int, error) { return 0, boom }, time.Minute)
	assert.ErrorIs(t, err, boom)

	_, err = c.Get()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeyed(t *testing.T) {
	k := NewKeyed[string](time.Minute)

	_, ok := k.Get("a")
	assert.False(t, ok)

	k.Set("a", "alpha")
	v, ok := k.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)
	assert.Equal(t, 1, k.Len())

	k.Flush()
	assert.Equal(t, 0, k.Len())
}
