package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModePolling, cfg.Telegram.Mode)
	assert.Equal(t, 60, cfg.Telegram.PollTimeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.WeatherAPI.Timeout)
	assert.Equal(t, "ru", cfg.WeatherAPI.Language)
	assert.Equal(t, "Ulan-Ude", cfg.Location.Query)
	assert.Equal(t, "Улан-Удэ", cfg.Location.Name)
	assert.Equal(t, "Россия", cfg.Location.Country)
	assert.Equal(t, time.Duration(0), cfg.Cache.Duration)
	assert.Equal(t, "@every 10m", cfg.Scheduler.RefreshSchedule)
	assert.Equal(t, 5, cfg.CircuitBreaker.Threshold)
	assert.Equal(t, 2.0, cfg.RateLimit.RPS)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("BOT_MODE", "Webhook")
	t.Setenv("WEBHOOK_URL", "https://bot.example.org")
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	t.Setenv("VISUAL_CROSSING_API_KEY", "vc")
	t.Setenv("WEATHER_API_KEY", "wa")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("CACHE_DURATION", "5m")
	t.Setenv("CITY_TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeWebhook, cfg.Telegram.Mode)
	assert.Equal(t, "https://bot.example.org", cfg.Telegram.WebhookURL)
	assert.Equal(t, "vc", cfg.WeatherAPI.VisualCrossingAPIKey)
	assert.Equal(t, "wa", cfg.WeatherAPI.WeatherAPIKey)
	assert.Equal(t, 3*time.Second, cfg.WeatherAPI.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.Duration)
	assert.Equal(t, time.UTC, cfg.Clock())
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing token", map[string]string{}},
		{"unknown mode", map[string]string{"TELEGRAM_BOT_TOKEN": "t", "BOT_MODE": "carrier-pigeon"}},
		{"webhook without url", map[string]string{"TELEGRAM_BOT_TOKEN": "t", "BOT_MODE": "webhook", "WEBHOOK_SECRET": "s"}},
		{"webhook without secret", map[string]string{"TELEGRAM_BOT_TOKEN": "t", "BOT_MODE": "webhook", "WEBHOOK_URL": "https://x"}},
		{"zero weather timeout", map[string]string{"TELEGRAM_BOT_TOKEN": "t", "WEATHER_TIMEOUT": "0s"}},
		{"negative cache", map[string]string{"TELEGRAM_BOT_TOKEN": "t", "CACHE_DURATION": "-1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestClockFallsBackToUTC(t *testing.T) {
	cfg := &Config{}
	cfg.Location.Timezone = "Mars/Olympus_Mons"
	assert.Equal(t, time.UTC, cfg.Clock())

	cfg.Location.Timezone = ""
	assert.Equal(t, time.UTC, cfg.Clock())
}
