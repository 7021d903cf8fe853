package content

import "strings"

// DefaultIcon is used when no pattern matches a description.
const DefaultIcon = "🌤️"

type iconRule struct {
	pattern string
	icon    string
}

// Order matters: the first matching pattern wins, so "небольшой дождь" never
// reaches its own rule because "дождь" is listed earlier.
var currentIcons = []iconRule{
	{"ясно", "☀️"},
	{"солнечно", "☀️"},
	{"облачно", "☁️"},
	{"пасмурно", "☁️"},
	{"дождь", "🌧️"},
	{"снег", "❄️"},
	{"гроза", "⛈️"},
	{"туман", "🌫️"},
	{"небольшой дождь", "🌦️"},
	{"небольшой снег", "🌨️"},
}

var forecastIcons = currentIcons[:8]

// WeatherIcon picks the symbol for a current-conditions description.
func WeatherIcon(description string) string {
	return matchIcon(currentIcons, description)
}

// ForecastIcon picks the symbol for a forecast day description.
func ForecastIcon(description string) string {
	return matchIcon(forecastIcons, description)
}

func matchIcon(rules []iconRule, description string) string {
	desc := strings.ToLower(description)
	for _, r := range rules {
		if strings.Contains(desc, r.pattern) {
			return r.icon
		}
	}
	return DefaultIcon
}
