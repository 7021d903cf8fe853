// Package bot dispatches Telegram updates to the city guide.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/bobby-s-dev/city-guide-bot/internal/content"
	"github.com/bobby-s-dev/city-guide-bot/internal/models"
)

// Sender is the subset of *tgbotapi.BotAPI the bot talks through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Weather is satisfied by *services.WeatherService.
type Weather interface {
	FetchCurrentWeather(ctx context.Context) (*models.CurrentWeather, error)
	FetchForecast(ctx context.Context) (*models.WeatherForecast, error)
}

type Bot struct {
	sender  Sender
	weather Weather
	clock   *time.Location
	now     func() time.Time
	logger  *zap.Logger
}

func New(sender Sender, weather Weather, clock *time.Location, logger *zap.Logger) *Bot {
	if clock == nil {
		clock = time.UTC
	}
	return &Bot{
		sender:  sender,
		weather: weather,
		clock:   clock,
		now:     time.Now,
		logger:  logger,
	}
}

// HandleUpdate routes one update. Upstream weather failures are rendered to
// the user; the returned error only reports failed Telegram calls.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	log := b.logger.With(
		zap.String("trace_id", ulid.Make().String()),
		zap.Int("update_id", update.UpdateID),
	)

	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(ctx, update.CallbackQuery, log)
	case update.Message != nil:
		return b.handleMessage(update.Message, log)
	default:
		log.Debug("Ignoring update without message or callback")
		return nil
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message, log *zap.Logger) error {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		log.Info("Command received", zap.String("command", msg.Command()), zap.Int64("chat_id", chatID))
		if msg.Command() == "start" {
			reply := tgbotapi.NewMessage(chatID, content.Welcome)
			reply.ReplyMarkup = MainMenu()
			return b.send(reply, "welcome")
		}
		reply := tgbotapi.NewMessage(chatID, content.Help)
		reply.ParseMode = tgbotapi.ModeMarkdown
		return b.send(reply, "help")
	}

	if msg.Text == "" {
		return nil
	}

	if mentionsCity(msg.Text) {
		return b.sendMenu(chatID)
	}

	reply := tgbotapi.NewMessage(chatID, content.OffTopic)
	reply.ParseMode = tgbotapi.ModeMarkdown
	return b.send(reply, "off-topic")
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery, log *zap.Logger) error {
	if _, err := b.sender.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Warn("Failed to answer callback", zap.Error(err))
	}

	if cq.Message == nil {
		log.Warn("Callback without originating message", zap.String("data", cq.Data))
		return nil
	}
	chatID := cq.Message.Chat.ID

	action := ParseAction(cq.Data)
	if action == ActionUnknown {
		log.Warn("Unknown menu action", zap.String("data", cq.Data))
		return b.sendMenu(chatID)
	}

	log.Info("Menu action", zap.Stringer("action", action), zap.Int64("chat_id", chatID))

	text, markdown := b.render(ctx, action, log)
	edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, text)
	if markdown {
		edit.ParseMode = tgbotapi.ModeMarkdown
	}
	if err := b.send(edit, action.String()); err != nil {
		return err
	}

	return b.sendMenu(chatID)
}

// render returns the reply text for an action and whether it is Markdown.
func (b *Bot) render(ctx context.Context, action Action, log *zap.Logger) (string, bool) {
	switch action {
	case ActionWeather:
		w, err := b.weather.FetchCurrentWeather(ctx)
		if err != nil {
			log.Error("Current weather unavailable", zap.Error(err))
			return content.RenderError(err), false
		}
		return content.RenderWeather(w, b.now().In(b.clock)), true
	case ActionForecast:
		f, err := b.weather.FetchForecast(ctx)
		if err != nil {
			log.Error("Forecast unavailable", zap.Error(err))
			return content.RenderError(err), false
		}
		return content.RenderForecast(f), true
	case ActionAttractions:
		return content.RenderAttractions(), true
	case ActionRestaurants:
		return content.RenderRestaurants(), true
	case ActionHotels:
		return content.RenderHotels(), true
	case ActionShops:
		return content.RenderShops(), true
	default:
		return content.RenderAbout(), true
	}
}

func (b *Bot) sendMenu(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, content.MenuPrompt)
	msg.ReplyMarkup = MainMenu()
	return b.send(msg, "menu")
}

func (b *Bot) send(c tgbotapi.Chattable, what string) error {
	if _, err := b.sender.Send(c); err != nil {
		return fmt.Errorf("failed to send %s: %w", what, err)
	}
	return nil
}

func mentionsCity(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range content.CityKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
