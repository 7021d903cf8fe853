package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/bobby-s-dev/city-guide-bot/internal/models"
)

const (
	SourceVisualCrossing = "visualcrossing"

	DefaultVisualCrossingURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services"

	// ForecastDays is the number of leading entries of the days array kept for a forecast.
	ForecastDays = 3

	opCurrent  = "Ошибка получения погоды"
	opForecast = "Ошибка получения прогноза"
)

type VisualCrossingClient struct {
	*BaseClient
	apiKey   string
	baseURL  string
	location string
	language string
	city     string
	country  string
}

// LocationConfig fixes the place every request is made for.
type LocationConfig struct {
	Query    string
	City     string
	Country  string
	Language string
}

type visualCrossingResponse struct {
	CurrentConditions *struct {
		Temp       *float64 `json:"temp"`
		FeelsLike  *float64 `json:"feelslike"`
		Conditions *string  `json:"conditions"`
		Humidity   *float64 `json:"humidity"`
		Pressure   *float64 `json:"pressure"`
		WindSpeed  *float64 `json:"windspeed"`
		Visibility *float64 `json:"visibility"`
		UVIndex    *float64 `json:"uvindex"`
	} `json:"currentConditions"`
	Days *[]visualCrossingDay `json:"days"`
}

type visualCrossingDay struct {
	Datetime   *string  `json:"datetime"`
	TempMax    *float64 `json:"tempmax"`
	TempMin    *float64 `json:"tempmin"`
	Conditions *string  `json:"conditions"`
	Humidity   *float64 `json:"humidity"`
	Precip     *float64 `json:"precip"`
	WindSpeed  *float64 `json:"windspeed"`
	Sunrise    string   `json:"sunrise"`
	Sunset     string   `json:"sunset"`
}

func NewVisualCrossingClient(apiKey, baseURL string, loc LocationConfig, config ClientConfig, logger *zap.Logger) *VisualCrossingClient {
	if baseURL == "" {
		baseURL = DefaultVisualCrossingURL
	}
	return &VisualCrossingClient{
		BaseClient: NewBaseClient(SourceVisualCrossing, config, logger),
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		location:   loc.Query,
		language:   loc.Language,
		city:       loc.City,
		country:    loc.Country,
	}
}

func (c *VisualCrossingClient) Name() string {
	return SourceVisualCrossing
}

func (c *VisualCrossingClient) timelineURL(include string) string {
	values := url.Values{}
	values.Set("unitGroup", "metric")
	values.Set("include", include)
	values.Set("key", c.apiKey)
	values.Set("contentType", "json")
	if c.language != "" {
		values.Set("lang", c.language)
	}
	return fmt.Sprintf("%s/timeline/%s?%s", c.baseURL, url.PathEscape(c.location), values.Encode())
}

func (c *VisualCrossingClient) fetch(ctx context.Context, include, op string) (*visualCrossingResponse, error) {
	if IsPlaceholderKey(c.apiKey) {
		return nil, withOp(newError(KindUnknown, SourceVisualCrossing, nil, "API key is not configured"), SourceVisualCrossing, op)
	}

	data, err := c.Get(ctx, c.timelineURL(include))
	if err != nil {
		return nil, withOp(err, SourceVisualCrossing, op)
	}

	var response visualCrossingResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, withOp(newError(KindSchema, SourceVisualCrossing, err, "failed to parse response: %v", err), SourceVisualCrossing, op)
	}
	return &response, nil
}

// GetCurrentWeather reads currentConditions plus the sun times of the first day.
func (c *VisualCrossingClient) GetCurrentWeather(ctx context.Context) (*models.CurrentWeather, error) {
	response, err := c.fetch(ctx, "current,days", opCurrent)
	if err != nil {
		return nil, err
	}

	cur := response.CurrentConditions
	if cur == nil {
		return nil, schemaError(SourceVisualCrossing, opCurrent, "currentConditions")
	}
	if missing := missingFields("currentConditions", map[string]bool{
		"temp":       cur.Temp == nil,
		"feelslike":  cur.FeelsLike == nil,
		"conditions": cur.Conditions == nil,
		"humidity":   cur.Humidity == nil,
		"pressure":   cur.Pressure == nil,
		"windspeed":  cur.WindSpeed == nil,
		"visibility": cur.Visibility == nil,
	}); missing != "" {
		return nil, schemaError(SourceVisualCrossing, opCurrent, missing)
	}

	sunrise, sunset := models.NotAvailable, models.NotAvailable
	if response.Days != nil && len(*response.Days) > 0 {
		today := (*response.Days)[0]
		sunrise = FormatClockTime(today.Sunrise)
		sunset = FormatClockTime(today.Sunset)
	}

	return &models.CurrentWeather{
		City:        c.city,
		Country:     c.country,
		Temperature: roundInt(*cur.Temp),
		FeelsLike:   roundInt(*cur.FeelsLike),
		Description: *cur.Conditions,
		Humidity:    fractionToPercent(*cur.Humidity),
		Pressure:    float64(roundInt(*cur.Pressure)),
		WindSpeed:   kmhToMS(*cur.WindSpeed),
		Visibility:  round1(*cur.Visibility),
		UVIndex:     float64Value(cur.UVIndex, 0),
		Sunrise:     sunrise,
		Sunset:      sunset,
		Source:      SourceVisualCrossing,
	}, nil
}

// GetForecast maps the first ForecastDays entries of the days array in their
// upstream order.
func (c *VisualCrossingClient) GetForecast(ctx context.Context) (*models.WeatherForecast, error) {
	response, err := c.fetch(ctx, "days", opForecast)
	if err != nil {
		return nil, err
	}
	if response.Days == nil {
		return nil, schemaError(SourceVisualCrossing, opForecast, "days")
	}

	days := *response.Days
	if len(days) > ForecastDays {
		days = days[:ForecastDays]
	}

	forecast := &models.WeatherForecast{
		City:   c.city,
		Days:   make([]models.ForecastDay, 0, len(days)),
		Source: SourceVisualCrossing,
	}

	for i, day := range days {
		prefix := fmt.Sprintf("days[%d]", i)
		if missing := missingFields(prefix, map[string]bool{
			"datetime":   day.Datetime == nil,
			"tempmax":    day.TempMax == nil,
			"tempmin":    day.TempMin == nil,
			"conditions": day.Conditions == nil,
			"humidity":   day.Humidity == nil,
			"windspeed":  day.WindSpeed == nil,
		}); missing != "" {
			return nil, schemaError(SourceVisualCrossing, opForecast, missing)
		}

		date, err := time.Parse("2006-01-02", *day.Datetime)
		if err != nil {
			return nil, withOp(newError(KindSchema, SourceVisualCrossing, err, "malformed %s.datetime %q", prefix, *day.Datetime), SourceVisualCrossing, opForecast)
		}

		forecast.Days = append(forecast.Days, models.ForecastDay{
			Date:          date,
			MaxTemp:       roundInt(*day.TempMax),
			MinTemp:       roundInt(*day.TempMin),
			Description:   *day.Conditions,
			Humidity:      fractionToPercent(*day.Humidity),
			Precipitation: float64Value(day.Precip, 0),
			WindSpeed:     kmhToMS(*day.WindSpeed),
		})
	}

	return forecast, nil
}

func schemaError(source, op, field string) *WeatherError {
	return withOp(newError(KindSchema, source, nil, "missing field %q", field), source, op)
}

// missingFields returns the first missing field name in a stable order, or "".
func missingFields(prefix string, fields map[string]bool) string {
	var names []string
	for name, isMissing := range fields {
		if isMissing {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	first := names[0]
	for _, n := range names[1:] {
		if n < first {
			first = n
		}
	}
	return prefix + "." + first
}
