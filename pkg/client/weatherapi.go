package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/bobby-s-dev/city-guide-bot/internal/models"
)

const (
	SourceWeatherAPI = "weatherapi"

	DefaultWeatherAPIURL = "http://api.weatherapi.com"
)

type WeatherAPIClient struct {
	*BaseClient
	apiKey   string
	baseURL  string
	location string
	language string
}

type weatherAPIResponse struct {
	Location *struct {
		Name    *string `json:"name"`
		Country *string `json:"country"`
	} `json:"location"`
	Current *struct {
		TempC      *float64 `json:"temp_c"`
		FeelsLikeC *float64 `json:"feelslike_c"`
		Condition  *struct {
			Text *string `json:"text"`
		} `json:"condition"`
		Humidity    *float64 `json:"humidity"`
		PressureMb  *float64 `json:"pressure_mb"`
		WindKph     *float64 `json:"wind_kph"`
		WindDir     *string  `json:"wind_dir"`
		VisKm       *float64 `json:"vis_km"`
		UV          *float64 `json:"uv"`
		LastUpdated *string  `json:"last_updated"`
	} `json:"current"`
}

func NewWeatherAPIClient(apiKey, baseURL string, loc LocationConfig, config ClientConfig, logger *zap.Logger) *WeatherAPIClient {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIURL
	}
	return &WeatherAPIClient{
		BaseClient: NewBaseClient(SourceWeatherAPI, config, logger),
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		location:   loc.Query,
		language:   loc.Language,
	}
}

func (c *WeatherAPIClient) Name() string {
	return SourceWeatherAPI
}

func (c *WeatherAPIClient) currentURL() string {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", c.location)
	if c.language != "" {
		values.Set("lang", c.language)
	}
	return fmt.Sprintf("%s/v1/current.json?%s", c.baseURL, values.Encode())
}

// GetCurrentWeather reads the current and location objects of current.json.
// Visibility stays in kilometers; wind is converted to m/s.
func (c *WeatherAPIClient) GetCurrentWeather(ctx context.Context) (*models.CurrentWeather, error) {
	if IsPlaceholderKey(c.apiKey) {
		return nil, withOp(newError(KindUnknown, SourceWeatherAPI, nil, "API key is not configured"), SourceWeatherAPI, opCurrent)
	}

	data, err := c.Get(ctx, c.currentURL())
	if err != nil {
		return nil, withOp(err, SourceWeatherAPI, opCurrent)
	}

	var response weatherAPIResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, withOp(newError(KindSchema, SourceWeatherAPI, err, "failed to parse response: %v", err), SourceWeatherAPI, opCurrent)
	}

	if response.Current == nil {
		return nil, schemaError(SourceWeatherAPI, opCurrent, "current")
	}
	if response.Location == nil {
		return nil, schemaError(SourceWeatherAPI, opCurrent, "location")
	}

	cur := response.Current
	loc := response.Location
	if missing := missingFields("current", map[string]bool{
		"temp_c":         cur.TempC == nil,
		"feelslike_c":    cur.FeelsLikeC == nil,
		"condition.text": cur.Condition == nil || cur.Condition.Text == nil,
		"humidity":       cur.Humidity == nil,
		"pressure_mb":    cur.PressureMb == nil,
		"wind_kph":       cur.WindKph == nil,
		"wind_dir":       cur.WindDir == nil,
		"vis_km":         cur.VisKm == nil,
		"last_updated":   cur.LastUpdated == nil,
	}); missing != "" {
		return nil, schemaError(SourceWeatherAPI, opCurrent, missing)
	}
	if missing := missingFields("location", map[string]bool{
		"name":    loc.Name == nil,
		"country": loc.Country == nil,
	}); missing != "" {
		return nil, schemaError(SourceWeatherAPI, opCurrent, missing)
	}

	return &models.CurrentWeather{
		City:          *loc.Name,
		Country:       *loc.Country,
		Temperature:   roundInt(*cur.TempC),
		FeelsLike:     roundInt(*cur.FeelsLikeC),
		Description:   *cur.Condition.Text,
		Humidity:      roundInt(*cur.Humidity),
		Pressure:      float64(roundInt(*cur.PressureMb)),
		WindSpeed:     kmhToMS(*cur.WindKph),
		Visibility:    round1(*cur.VisKm),
		UVIndex:       float64Value(cur.UV, 0),
		WindDirection: *cur.WindDir,
		LastUpdated:   *cur.LastUpdated,
		Source:        SourceWeatherAPI,
	}, nil
}
