package client

import (
	"math"
	"strings"
	"time"

	"github.com/bobby-s-dev/city-guide-bot/internal/models"
)

const kmhToMSFactor = 0.27778

func roundInt(v float64) int {
	return int(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// kmhToMS converts km/h to m/s rounded to one decimal.
func kmhToMS(kmh float64) float64 {
	return round1(kmh * kmhToMSFactor)
}

func fractionToPercent(v float64) int {
	return roundInt(v * 100)
}

var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"15:04:05",
	"15:04",
}

// FormatClockTime reduces a timestamp or clock time to HH:MM. Anything it
// cannot parse becomes models.NotAvailable.
func FormatClockTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.NotAvailable
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return models.NotAvailable
}

// IsPlaceholderKey reports whether an API key is empty or an obvious template value.
func IsPlaceholderKey(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	switch {
	case k == "", k == "0", k == "changeme", k == "none":
		return true
	case strings.HasPrefix(k, "your_"), strings.HasPrefix(k, "your-"), strings.HasPrefix(k, "<"):
		return true
	}
	return false
}

func float64Value(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
