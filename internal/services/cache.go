package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type CacheItem struct {
	Data      interface{}
	FetchedAt time.Time
	ExpiresAt time.Time
}

// WeatherCache holds at most one entry per source identifier, each with its
// own expiry. Expired entries are dropped on read and by a janitor goroutine.
type WeatherCache struct {
	mu              sync.RWMutex
	items           map[string]CacheItem
	logger          *zap.Logger
	defaultDuration time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
	now             func() time.Time

	hits   int
	misses int
}

func NewWeatherCache(defaultDuration time.Duration, logger *zap.Logger) *WeatherCache {
	cache := &WeatherCache{
		items:           make(map[string]CacheItem),
		logger:          logger,
		defaultDuration: defaultDuration,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
		now:             time.Now,
	}

	go cache.startCleanup()

	return cache
}

func (c *WeatherCache) Set(key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.items[key] = CacheItem{
		Data:      data,
		FetchedAt: now,
		ExpiresAt: now.Add(c.defaultDuration),
	}

	c.logger.Debug("Weather cached",
		zap.String("key", key),
		zap.Time("expires_at", now.Add(c.defaultDuration)))
}

func (c *WeatherCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		c.misses++
		return nil, false
	}

	if c.now().After(item.ExpiresAt) {
		delete(c.items, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return item.Data, true
}

func (c *WeatherCache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *WeatherCache) startCleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *WeatherCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	expiredCount := 0

	for key, item := range c.items {
		if now.After(item.ExpiresAt) {
			delete(c.items, key)
			expiredCount++
		}
	}

	if expiredCount > 0 {
		c.logger.Debug("Cleaned expired cache items",
			zap.Int("count", expiredCount))
	}
}

func (c *WeatherCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCleanup)
	})
}

func (c *WeatherCache) GetStats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fetched := make(map[string]time.Time, len(c.items))
	for key, item := range c.items {
		fetched[key] = item.FetchedAt
	}

	return map[string]interface{}{
		"items":            len(c.items),
		"hits":             c.hits,
		"misses":           c.misses,
		"default_duration": c.defaultDuration.String(),
		"fetched_at":       fetched,
	}
}
