package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherCacheExpiry(t *testing.T) {
	c := newTestCache(t, time.Minute)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("visualcrossing", "a")
	v, ok := c.Get("visualcrossing")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	now = now.Add(61 * time.Second)
	_, ok = c.Get("visualcrossing")
	assert.False(t, ok)

	stats := c.GetStats()
	assert.Equal(t, 1, stats["hits"])
	assert.Equal(t, 1, stats["misses"])
	assert.Equal(t, 0, stats["items"])
}

func TestWeatherCacheKeysAreIndependent(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.Set("visualcrossing", "primary")
	c.Set("weatherapi", "secondary")

	v, ok := c.Get("visualcrossing")
	require.True(t, ok)
	assert.Equal(t, "primary", v)

	v, ok = c.Get("weatherapi")
	require.True(t, ok)
	assert.Equal(t, "secondary", v)

	c.Delete("weatherapi")
	_, ok = c.Get("weatherapi")
	assert.False(t, ok)
}

func TestWeatherCacheCleanup(t *testing.T) {
	c := newTestCache(t, time.Minute)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	c.Set("b", 2)
	now = now.Add(2 * time.Minute)
	c.Set("c", 3)

	c.cleanup()
	assert.Equal(t, 1, c.GetStats()["items"])
}

func TestWeatherCacheStopIsIdempotent(t *testing.T) {
	c := newTestCache(t, time.Minute)
	c.Stop()
	c.Stop()
}
