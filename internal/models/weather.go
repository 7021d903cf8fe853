package models

import (
	"time"
)

// NotAvailable marks a sun time the source did not provide or that could not be parsed.
const NotAvailable = "N/A"

type CurrentWeather struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Temperature   int     `json:"temperature"`
	FeelsLike     int     `json:"feels_like"`
	Description   string  `json:"description"`
	Humidity      int     `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	Visibility    float64 `json:"visibility_km"`
	UVIndex       float64 `json:"uv_index"`
	Sunrise       string  `json:"sunrise,omitempty"`
	Sunset        string  `json:"sunset,omitempty"`
	WindDirection string  `json:"wind_direction,omitempty"`
	LastUpdated   string  `json:"last_updated,omitempty"`
	Source        string  `json:"source"`
}

// HasSunTimes reports whether both sunrise and sunset carry a real clock time.
func (w *CurrentWeather) HasSunTimes() bool {
	return present(w.Sunrise) && present(w.Sunset)
}

// HasStationDetails reports whether the record carries wind direction or a source update time.
func (w *CurrentWeather) HasStationDetails() bool {
	return w.WindDirection != "" || w.LastUpdated != ""
}

func present(s string) bool {
	return s != "" && s != NotAvailable
}

type ForecastDay struct {
	Date          time.Time `json:"date"`
	MaxTemp       int       `json:"max_temp"`
	MinTemp       int       `json:"min_temp"`
	Description   string    `json:"description"`
	Humidity      int       `json:"humidity"`
	Precipitation float64   `json:"precipitation"`
	WindSpeed     float64   `json:"wind_speed"`
}

type WeatherForecast struct {
	City   string        `json:"city"`
	Days   []ForecastDay `json:"days"`
	Source string        `json:"source"`
}
