package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })

	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			dest.Name = "fetched"
			dest.Count = 7
			return nil
		}
	}

	var first cachedThing
	err := Aside(ctx, "thing:1", &first, time.Minute, fetch(&first))
	assert.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read comes from the cache, fetch is not called again.
	var second cachedThing
	err = Aside(ctx, "thing:1", &second, time.Minute, fetch(&second))
	assert.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 7, second.Count)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var dest cachedThing
	err := Aside(ctx, "thing:2", &dest, time.Minute, func() error {
		fetches++
		dest.Name = "direct"
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "direct", dest.Name)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "thing:3", cachedThing{Name: "stale"}, time.Minute))
	assert.True(t, mr.Exists("thing:3"))

	Invalidate(ctx, "thing:3")
	assert.False(t, mr.Exists("thing:3"))
}
