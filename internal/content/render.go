// Package content holds the static city guide and renders bot replies as
// Telegram Markdown.
package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bobby-s-dev/city-guide-bot/internal/models"
)

var weekdays = [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// RenderWeather formats current conditions. now is the local time shown in
// the "Обновлено" footer.
func RenderWeather(w *models.CurrentWeather, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s *Погода в %s сейчас*\n\n", WeatherIcon(w.Description), cityName(w))
	fmt.Fprintf(&b, "🌡️ Температура: *%d°C*\n", w.Temperature)
	fmt.Fprintf(&b, "💭 Ощущается как: *%d°C*\n", w.FeelsLike)
	fmt.Fprintf(&b, "📝 *%s*\n", w.Description)
	fmt.Fprintf(&b, "💧 Влажность: *%d%%*\n", w.Humidity)
	fmt.Fprintf(&b, "📊 Давление: *%s hPa*\n", formatNumber(w.Pressure))
	fmt.Fprintf(&b, "💨 Ветер: *%.1f m/s*\n", w.WindSpeed)
	fmt.Fprintf(&b, "👁️ Видимость: *%s км*\n", formatNumber(w.Visibility))
	fmt.Fprintf(&b, "☀️ УФ-индекс: *%s*\n", formatNumber(w.UVIndex))

	if w.HasSunTimes() {
		fmt.Fprintf(&b, "\n🌅 Восход: %s\n🌇 Закат: %s\n", w.Sunrise, w.Sunset)
	}

	if w.HasStationDetails() {
		b.WriteString("\n")
		if w.WindDirection != "" {
			fmt.Fprintf(&b, "🧭 Направление ветра: %s\n", w.WindDirection)
		}
		if w.LastUpdated != "" {
			fmt.Fprintf(&b, "🛰️ Данные источника: %s\n", w.LastUpdated)
		}
	}

	fmt.Fprintf(&b, "\n*Обновлено:* %s", now.Format("15:04"))
	return b.String()
}

// RenderForecast formats up to three forecast days.
func RenderForecast(f *models.WeatherForecast) string {
	var b strings.Builder

	city := f.City
	if city == "" {
		city = "Улан-Удэ"
	}
	fmt.Fprintf(&b, "📅 *Прогноз погоды в %s на %s:*\n", city, pluralDays(len(f.Days)))

	for _, day := range f.Days {
		fmt.Fprintf(&b, "\n%s *%s, %s*\n", ForecastIcon(day.Description), weekdays[day.Date.Weekday()], day.Date.Format("02.01"))
		fmt.Fprintf(&b, "📈 Макс: *%d°C* | 📉 Мин: *%d°C*\n", day.MaxTemp, day.MinTemp)
		fmt.Fprintf(&b, "📝 %s\n", day.Description)
		fmt.Fprintf(&b, "💨 Ветер: %.1f m/s\n", day.WindSpeed)
		if day.Precipitation > 0 {
			fmt.Fprintf(&b, "💧 Осадки: %smm\n", formatNumber(day.Precipitation))
		}
	}
	return b.String()
}

// RenderError turns a failure into the single user-visible line.
func RenderError(err error) string {
	return "❌ " + err.Error()
}

func RenderAttractions() string {
	var b strings.Builder
	b.WriteString("🏛️ *Главные достопримечательности Улан-Удэ:*\n")
	for i, a := range Attractions {
		fmt.Fprintf(&b, "\n%d. %s *%s*\n", i+1, a.Emoji, a.Name)
		fmt.Fprintf(&b, "   📍 %s\n", a.Address)
		fmt.Fprintf(&b, "   ℹ️ %s\n", a.Description)
	}
	return b.String()
}

func RenderRestaurants() string {
	var b strings.Builder
	b.WriteString("🍽️ *Лучшие рестораны Улан-Удэ:*\n")
	for i, r := range Restaurants {
		fmt.Fprintf(&b, "\n%d. %s *%s*\n", i+1, r.Emoji, r.Name)
		fmt.Fprintf(&b, "   📍 %s\n", r.Address)
		fmt.Fprintf(&b, "   🍳 %s\n", r.Cuisine)
		fmt.Fprintf(&b, "   👑 %s\n", r.Specialty)
	}
	return b.String()
}

func RenderHotels() string {
	var b strings.Builder
	b.WriteString("🏨 *Отели Улан-Удэ:*\n")
	for i, h := range Hotels {
		fmt.Fprintf(&b, "\n%d. %s *%s*\n", i+1, h.Emoji, h.Name)
		fmt.Fprintf(&b, "   %s\n", h.Stars)
		fmt.Fprintf(&b, "   📍 %s\n", h.Address)
		fmt.Fprintf(&b, "   🎯 %s\n", h.Features)
		fmt.Fprintf(&b, "   💰 %s\n", h.Price)
	}
	return b.String()
}

func RenderShops() string {
	var b strings.Builder
	b.WriteString("🛍️ *Магазины и ТЦ Улан-Удэ:*\n")
	for i, s := range Shops {
		fmt.Fprintf(&b, "\n%d. %s *%s*\n", i+1, s.Emoji, s.Name)
		fmt.Fprintf(&b, "   🏬 %s\n", s.Kind)
		fmt.Fprintf(&b, "   📍 %s\n", s.Address)
		fmt.Fprintf(&b, "   🎯 %s\n", s.Features)
	}
	return b.String()
}

func RenderAbout() string {
	return About
}

func pluralDays(n int) string {
	switch {
	case n%10 == 1 && n%100 != 11:
		return fmt.Sprintf("%d день", n)
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
		return fmt.Sprintf("%d дня", n)
	default:
		return fmt.Sprintf("%d дней", n)
	}
}

func cityName(w *models.CurrentWeather) string {
	if w.City == "" {
		return "Улан-Удэ"
	}
	return w.City
}

// formatNumber prints the shortest representation, so 1033 stays "1033"
// and 9.5 stays "9.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
