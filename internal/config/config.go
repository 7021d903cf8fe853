package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

type Config struct {
	Telegram struct {
		Token         string `validate:"required"`
		Mode          string `validate:"oneof=polling webhook"`
		WebhookURL    string `validate:"required_if=Mode webhook"`
		WebhookSecret string `validate:"required_if=Mode webhook"`
		PollTimeout   int    `validate:"gte=0"`
		Debug         bool
	}

	Server struct {
		Port         string `validate:"required"`
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		LogLevel     string
	}

	WeatherAPI struct {
		VisualCrossingAPIKey string
		WeatherAPIKey        string
		VisualCrossingURL    string
		WeatherAPIURL        string
		Timeout              time.Duration `validate:"gt=0"`
		Language             string
	}

	Location struct {
		Query    string `validate:"required"`
		Name     string `validate:"required"`
		Country  string
		Timezone string
	}

	Cache struct {
		Duration time.Duration `validate:"gte=0"`
	}

	Scheduler struct {
		RefreshSchedule string
	}

	CircuitBreaker struct {
		Threshold int `validate:"gte=0"`
		Timeout   time.Duration
	}

	RateLimit struct {
		RPS   float64 `validate:"gte=0"`
		Burst int     `validate:"gte=0"`
	}
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Telegram configuration
	cfg.Telegram.Token = getEnv("TELEGRAM_BOT_TOKEN", "")
	cfg.Telegram.Mode = strings.ToLower(getEnv("BOT_MODE", ModePolling))
	cfg.Telegram.WebhookURL = getEnv("WEBHOOK_URL", "")
	cfg.Telegram.WebhookSecret = getEnv("WEBHOOK_SECRET", "")
	cfg.Telegram.PollTimeout = parseInt(getEnv("POLL_TIMEOUT", "60"))
	cfg.Telegram.Debug = parseBool(getEnv("TELEGRAM_DEBUG", "false"))

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "30s"))
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	// Weather API configuration
	cfg.WeatherAPI.VisualCrossingAPIKey = getEnv("VISUAL_CROSSING_API_KEY", "")
	cfg.WeatherAPI.WeatherAPIKey = getEnv("WEATHER_API_KEY", "")
	cfg.WeatherAPI.VisualCrossingURL = getEnv("VISUAL_CROSSING_URL", "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services")
	cfg.WeatherAPI.WeatherAPIURL = getEnv("WEATHERAPI_URL", "http://api.weatherapi.com")
	cfg.WeatherAPI.Timeout = parseDuration(getEnv("WEATHER_TIMEOUT", "10s"))
	cfg.WeatherAPI.Language = getEnv("WEATHER_LANG", "ru")

	// Location configuration
	cfg.Location.Query = getEnv("CITY_QUERY", "Ulan-Ude")
	cfg.Location.Name = getEnv("CITY_NAME", "Улан-Удэ")
	cfg.Location.Country = getEnv("CITY_COUNTRY", "Россия")
	cfg.Location.Timezone = getEnv("CITY_TIMEZONE", "Asia/Irkutsk")

	// Cache configuration
	cfg.Cache.Duration = parseDuration(getEnv("CACHE_DURATION", "0s"))

	// Scheduler configuration
	cfg.Scheduler.RefreshSchedule = getEnv("REFRESH_SCHEDULE", "@every 10m")

	// Circuit breaker configuration
	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "5"))
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	// Outbound rate limit configuration
	cfg.RateLimit.RPS = parseFloat(getEnv("RATE_LIMIT_RPS", "2"))
	cfg.RateLimit.Burst = parseInt(getEnv("RATE_LIMIT_BURST", "4"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Clock returns the configured city timezone, falling back to UTC.
func (c *Config) Clock() *time.Location {
	if c.Location.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Location.Timezone)
	if err != nil {
		zap.L().Warn("Unknown timezone, using UTC", zap.String("timezone", c.Location.Timezone), zap.Error(err))
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("Failed to parse bool", zap.String("value", value), zap.Error(err))
		return false
	}
	return boolValue
}
