package api

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/bobby-s-dev/city-guide-bot/internal/models"
	"github.com/bobby-s-dev/city-guide-bot/pkg/client"
)

// WeatherProvider is satisfied by *services.WeatherService.
type WeatherProvider interface {
	FetchCurrentWeather(ctx context.Context) (*models.CurrentWeather, error)
	FetchForecast(ctx context.Context) (*models.WeatherForecast, error)
	GetLastFetchTime() time.Time
	GetStats() map[string]interface{}
}

// UpdateHandler is satisfied by *bot.Bot.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update) error
}

type Handler struct {
	weather       WeatherProvider
	bot           UpdateHandler
	webhookSecret string
	logger        *zap.Logger
}

// NewHandler wires the HTTP surface. bot may be nil when the process runs in
// polling mode; the webhook route then answers 404.
func NewHandler(weather WeatherProvider, bot UpdateHandler, webhookSecret string, logger *zap.Logger) *Handler {
	return &Handler{
		weather:       weather,
		bot:           bot,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleWebhook handles POST /telegram/webhook/:secret
func (h *Handler) HandleWebhook(c *fiber.Ctx) error {
	if h.bot == nil || h.webhookSecret == "" ||
		subtle.ConstantTimeCompare([]byte(c.Params("secret")), []byte(h.webhookSecret)) != 1 {
		return fiber.ErrNotFound
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		h.logger.Warn("Malformed webhook payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Malformed update",
		})
	}

	// Telegram redelivers on non-2xx, so handler failures are only logged.
	if err := h.bot.HandleUpdate(c.UserContext(), update); err != nil {
		h.logger.Error("Failed to handle webhook update",
			zap.Int("update_id", update.UpdateID),
			zap.Error(err))
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetCurrentWeather handles GET /api/v1/weather/current
func (h *Handler) GetCurrentWeather(c *fiber.Ctx) error {
	weather, err := h.weather.FetchCurrentWeather(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get current weather", zap.Error(err))
		return upstreamError(c, err)
	}

	return c.JSON(weather)
}

// GetForecast handles GET /api/v1/weather/forecast
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	forecast, err := h.weather.FetchForecast(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get forecast", zap.Error(err))
		return upstreamError(c, err)
	}

	return c.JSON(forecast)
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "healthy",
		"timestamp":  time.Now(),
		"last_fetch": h.weather.GetLastFetchTime(),
		"uptime":     time.Since(startTime).String(),
	})
}

// GetMetrics handles GET /api/v1/metrics
func (h *Handler) GetMetrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"metrics":   h.weather.GetStats(),
		"timestamp": time.Now(),
	})
}

func upstreamError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  client.KindOf(err).String(),
	})
}

var startTime = time.Now()
