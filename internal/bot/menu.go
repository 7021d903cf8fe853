package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Action identifies a menu button. The string form travels as callback data.
type Action int

const (
	ActionUnknown Action = iota
	ActionWeather
	ActionForecast
	ActionAttractions
	ActionRestaurants
	ActionHotels
	ActionShops
	ActionAbout
)

var actionNames = map[Action]string{
	ActionWeather:     "weather",
	ActionForecast:    "forecast",
	ActionAttractions: "attractions",
	ActionRestaurants: "restaurants",
	ActionHotels:      "hotels",
	ActionShops:       "shops",
	ActionAbout:       "about",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps callback data back to an Action.
func ParseAction(data string) Action {
	for a, name := range actionNames {
		if name == data {
			return a
		}
	}
	return ActionUnknown
}

var menuButtons = []struct {
	label  string
	action Action
}{
	{"🌤️ Погода сейчас", ActionWeather},
	{"📅 Прогноз на 3 дня", ActionForecast},
	{"🏛️ Достопримечательности", ActionAttractions},
	{"🍽️ Рестораны", ActionRestaurants},
	{"🏨 Отели", ActionHotels},
	{"🛍️ Магазины", ActionShops},
	{"ℹ️ О городе", ActionAbout},
}

// MainMenu builds the inline keyboard with one button per row.
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(menuButtons))
	for _, b := range menuButtons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.label, b.action.String()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
