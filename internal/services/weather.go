package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/bobby-s-dev/city-guide-bot/internal/config"
	"github.com/bobby-s-dev/city-guide-bot/internal/models"
	"github.com/bobby-s-dev/city-guide-bot/pkg/client"
)

type CurrentSource interface {
	Name() string
	GetCurrentWeather(ctx context.Context) (*models.CurrentWeather, error)
}

type ForecastSource interface {
	Name() string
	GetForecast(ctx context.Context) (*models.WeatherForecast, error)
}

// WeatherService asks the primary source first and the secondary source only
// when the primary fails. The two calls are never issued concurrently.
type WeatherService struct {
	primary   CurrentSource
	secondary CurrentSource
	forecast  ForecastSource
	cache     *WeatherCache
	group     singleflight.Group
	logger    *zap.Logger

	mu               sync.RWMutex
	lastFetchTime    time.Time
	primaryCount     int
	fallbackCount    int
	failureCount     int
	forecastCount    int
	forecastFailures int
}

func NewWeatherService(cfg *config.Config, logger *zap.Logger) *WeatherService {
	clientConfig := client.ClientConfig{
		Timeout:        cfg.WeatherAPI.Timeout,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
		RateLimit:      cfg.RateLimit.RPS,
		Burst:          cfg.RateLimit.Burst,
	}

	loc := client.LocationConfig{
		Query:    cfg.Location.Query,
		City:     cfg.Location.Name,
		Country:  cfg.Location.Country,
		Language: cfg.WeatherAPI.Language,
	}

	visualCrossing := client.NewVisualCrossingClient(
		cfg.WeatherAPI.VisualCrossingAPIKey,
		cfg.WeatherAPI.VisualCrossingURL,
		loc,
		clientConfig,
		logger,
	)
	weatherAPI := client.NewWeatherAPIClient(
		cfg.WeatherAPI.WeatherAPIKey,
		cfg.WeatherAPI.WeatherAPIURL,
		loc,
		clientConfig,
		logger,
	)

	if client.IsPlaceholderKey(cfg.WeatherAPI.VisualCrossingAPIKey) {
		logger.Warn("Visual Crossing API key is not set; primary source and forecast will always fail")
	}
	if client.IsPlaceholderKey(cfg.WeatherAPI.WeatherAPIKey) {
		logger.Warn("WeatherAPI key is not set; fallback source will always fail")
	}

	var cache *WeatherCache
	if cfg.Cache.Duration > 0 {
		cache = NewWeatherCache(cfg.Cache.Duration, logger)
		logger.Info("Weather cache enabled", zap.Duration("ttl", cfg.Cache.Duration))
	}

	return NewWeatherServiceWithSources(visualCrossing, weatherAPI, visualCrossing, cache, logger)
}

// NewWeatherServiceWithSources wires explicit sources. cache may be nil.
func NewWeatherServiceWithSources(primary, secondary CurrentSource, forecast ForecastSource, cache *WeatherCache, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		primary:   primary,
		secondary: secondary,
		forecast:  forecast,
		cache:     cache,
		logger:    logger,
	}
}

// FetchCurrentWeather returns the primary result, or on any primary failure
// the secondary result verbatim. The primary error is logged and dropped.
func (s *WeatherService) FetchCurrentWeather(ctx context.Context) (*models.CurrentWeather, error) {
	s.touch()

	weather, err := s.current(ctx, s.primary, false)
	if err == nil {
		s.count(&s.primaryCount)
		return weather, nil
	}

	s.logger.Warn("Primary weather source failed, trying fallback",
		zap.String("source", s.primary.Name()),
		zap.Stringer("kind", client.KindOf(err)),
		zap.Error(err))

	weather, err = s.current(ctx, s.secondary, false)
	if err != nil {
		s.count(&s.failureCount)
		s.logger.Error("Fallback weather source failed",
			zap.String("source", s.secondary.Name()),
			zap.Stringer("kind", client.KindOf(err)),
			zap.Error(err))
		return nil, err
	}

	s.count(&s.fallbackCount)
	return weather, nil
}

// FetchForecast has no fallback: a forecast source failure is returned as is.
func (s *WeatherService) FetchForecast(ctx context.Context) (*models.WeatherForecast, error) {
	s.touch()

	forecast, err := s.loadForecast(ctx, false)
	if err != nil {
		s.count(&s.forecastFailures)
		s.logger.Error("Forecast source failed",
			zap.String("source", s.forecast.Name()),
			zap.Stringer("kind", client.KindOf(err)),
			zap.Error(err))
		return nil, err
	}

	s.count(&s.forecastCount)
	return forecast, nil
}

// Warm refreshes cached entries without reading them first. The secondary
// source is only refreshed when the primary refresh fails.
func (s *WeatherService) Warm(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	var errs error
	if _, err := s.current(ctx, s.primary, true); err != nil {
		errs = multierr.Append(errs, err)
		if _, err := s.current(ctx, s.secondary, true); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if _, err := s.loadForecast(ctx, true); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func (s *WeatherService) CacheEnabled() bool {
	return s.cache != nil
}

func (s *WeatherService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *WeatherService) current(ctx context.Context, src CurrentSource, force bool) (*models.CurrentWeather, error) {
	v, err := s.load(ctx, src.Name(), force, func(ctx context.Context) (interface{}, error) {
		return src.GetCurrentWeather(ctx)
	})
	if err != nil {
		return nil, err
	}
	weather := *v.(*models.CurrentWeather)
	return &weather, nil
}

func (s *WeatherService) loadForecast(ctx context.Context, force bool) (*models.WeatherForecast, error) {
	v, err := s.load(ctx, s.forecast.Name()+":forecast", force, func(ctx context.Context) (interface{}, error) {
		return s.forecast.GetForecast(ctx)
	})
	if err != nil {
		return nil, err
	}
	forecast := *v.(*models.WeatherForecast)
	forecast.Days = append([]models.ForecastDay(nil), forecast.Days...)
	return &forecast, nil
}

// load reads key from the cache unless force is set. Concurrent misses on the
// same key share one upstream call; failures are never cached.
func (s *WeatherService) load(ctx context.Context, key string, force bool, fetch func(context.Context) (interface{}, error)) (interface{}, error) {
	if s.cache == nil {
		return fetch(ctx)
	}

	if !force {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("Cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, v)
		return v, nil
	})
	if shared {
		s.logger.Debug("Shared in-flight fetch", zap.String("key", key))
	}
	return v, err
}

func (s *WeatherService) touch() {
	s.mu.Lock()
	s.lastFetchTime = time.Now()
	s.mu.Unlock()
}

func (s *WeatherService) count(counter *int) {
	s.mu.Lock()
	*counter++
	s.mu.Unlock()
}

func (s *WeatherService) GetLastFetchTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFetchTime
}

func (s *WeatherService) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"last_fetch_time":   s.lastFetchTime,
		"primary_source":    s.primary.Name(),
		"secondary_source":  s.secondary.Name(),
		"primary_success":   s.primaryCount,
		"fallback_success":  s.fallbackCount,
		"current_failures":  s.failureCount,
		"forecast_success":  s.forecastCount,
		"forecast_failures": s.forecastFailures,
	}
	if s.cache != nil {
		stats["cache_stats"] = s.cache.GetStats()
	}
	return stats
}
