package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bobby-s-dev/city-guide-bot/internal/models"
)

const weatherAPICurrent = `{
	"location": {"name": "Улан-Удэ", "country": "Россия"},
	"current": {
		"last_updated": "2024-01-10 14:30",
		"temp_c": -17.6, "feelslike_c": -24.5,
		"condition": {"text": "Небольшой снег"},
		"wind_kph": 14.4, "wind_dir": "NW",
		"pressure_mb": 1021.4, "humidity": 78,
		"vis_km": 8.5, "uv": 2
	}
}`

func TestWeatherAPICurrentWeather(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(weatherAPICurrent))
	}))
	defer srv.Close()

	c := NewWeatherAPIClient("wa-key", srv.URL, testLocation, testClientConfig(), zap.NewNop())
	w, err := c.GetCurrentWeather(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/v1/current.json", gotPath)
	assert.Equal(t, []string{"wa-key"}, gotQuery["key"])
	assert.Equal(t, []string{"Ulan-Ude"}, gotQuery["q"])
	assert.Equal(t, []string{"ru"}, gotQuery["lang"])

	assert.Equal(t, &models.CurrentWeather{
		City:          "Улан-Удэ",
		Country:       "Россия",
		Temperature:   -18,
		FeelsLike:     -25,
		Description:   "Небольшой снег",
		Humidity:      78,
		Pressure:      1021,
		WindSpeed:     4.0,
		Visibility:    8.5,
		UVIndex:       2,
		WindDirection: "NW",
		LastUpdated:   "2024-01-10 14:30",
		Source:        SourceWeatherAPI,
	}, w)
	assert.False(t, w.HasSunTimes())
	assert.True(t, w.HasStationDetails())
}

func TestWeatherAPIDefaultsUVToZero(t *testing.T) {
	body := `{"location":{"name":"a","country":"b"},"current":{"last_updated":"t","temp_c":0,"feelslike_c":0,"condition":{"text":"x"},"wind_kph":0,"wind_dir":"N","pressure_mb":1000,"humidity":50,"vis_km":10}}`
	srv, _ := jsonServer(t, http.StatusOK, body)
	c := NewWeatherAPIClient("k", srv.URL, testLocation, testClientConfig(), zap.NewNop())

	w, err := c.GetCurrentWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, w.UVIndex)
}

func TestWeatherAPIFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   ErrorKind
		text   string
	}{
		{"bad key", http.StatusForbidden, `{"error":{"code":2008,"message":"API key has been disabled."}}`, KindHTTPStatus, "HTTP 403"},
		{"no current", http.StatusOK, `{"location":{"name":"a","country":"b"}}`, KindSchema, `"current"`},
		{"no location", http.StatusOK, `{"current":{}}`, KindSchema, `"location"`},
		{"no condition text", http.StatusOK, `{"location":{"name":"a","country":"b"},"current":{"last_updated":"t","temp_c":0,"feelslike_c":0,"condition":{},"wind_kph":0,"wind_dir":"N","pressure_mb":1000,"humidity":50,"vis_km":10}}`, KindSchema, "condition.text"},
		{"truncated", http.StatusOK, `{"current":`, KindSchema, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := jsonServer(t, tt.status, tt.body)
			c := NewWeatherAPIClient("k", srv.URL, testLocation, testClientConfig(), zap.NewNop())

			_, err := c.GetCurrentWeather(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Contains(t, err.Error(), tt.text)

			var we *WeatherError
			require.ErrorAs(t, err, &we)
			assert.Equal(t, SourceWeatherAPI, we.Source)
		})
	}
}

func TestWeatherAPIPlaceholderKey(t *testing.T) {
	srv, hits := jsonServer(t, http.StatusOK, weatherAPICurrent)
	c := NewWeatherAPIClient("your_weatherapi_key", srv.URL, testLocation, testClientConfig(), zap.NewNop())

	_, err := c.GetCurrentWeather(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
	assert.Equal(t, int32(0), *hits)
}
