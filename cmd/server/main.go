package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bobby-s-dev/city-guide-bot/internal/api"
	"github.com/bobby-s-dev/city-guide-bot/internal/bot"
	"github.com/bobby-s-dev/city-guide-bot/internal/config"
	"github.com/bobby-s-dev/city-guide-bot/internal/scheduler"
	"github.com/bobby-s-dev/city-guide-bot/internal/services"
)

func main() {
	// Initialize logger
	logConfig := zap.NewProductionConfig()
	logger, _ := logConfig.Build()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Ulan-Ude city guide bot")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	setLevel(logConfig.Level, cfg.Server.LogLevel, logger)

	// Weather service
	weather := services.NewWeatherService(cfg, logger)
	defer weather.Close()

	// Telegram
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal("Failed to connect to Telegram", zap.Error(err))
	}
	botAPI.Debug = cfg.Telegram.Debug
	logger.Info("Authorized on Telegram", zap.String("username", botAPI.Self.UserName))

	cityBot := bot.New(botAPI, weather, cfg.Clock(), logger)

	// Initialize scheduler
	refreshScheduler := scheduler.NewScheduler(weather, cfg.Scheduler.RefreshSchedule, cfg.Clock(), logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          api.ErrorHandler,
		DisableStartupMessage: true,
	})

	var webhookBot api.UpdateHandler
	if cfg.Telegram.Mode == config.ModeWebhook {
		webhookBot = cityBot
	}
	handler := api.NewHandler(weather, webhookBot, cfg.Telegram.WebhookSecret, logger)
	api.SetupRoutes(app, handler, logger)

	if err := refreshScheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pollDone := make(chan struct{})
	switch cfg.Telegram.Mode {
	case config.ModeWebhook:
		close(pollDone)
		if err := registerWebhook(botAPI, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			logger.Fatal("Failed to register webhook", zap.Error(err))
		}
		logger.Info("Webhook registered")
	default:
		if _, err := botAPI.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			logger.Warn("Failed to delete webhook before polling", zap.Error(err))
		}
		poller := bot.NewPoller(botAPI, cityBot, cfg.Telegram.PollTimeout, logger)
		go func() {
			defer close(pollDone)
			if err := poller.Run(ctx); err != nil {
				logger.Error("Polling stopped with error", zap.Error(err))
			}
		}()
	}

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	refreshScheduler.Stop()
	logger.Info("Scheduler stopped", zap.Any("status", refreshScheduler.GetStatus()))

	select {
	case <-pollDone:
	case <-shutdownCtx.Done():
		logger.Warn("Timed out waiting for in-flight updates")
	}

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Bot stopped")
}

func registerWebhook(botAPI *tgbotapi.BotAPI, baseURL, secret string) error {
	wh, err := tgbotapi.NewWebhook(strings.TrimRight(baseURL, "/") + api.WebhookPath(secret))
	if err != nil {
		return err
	}
	_, err = botAPI.Request(wh)
	return err
}

func setLevel(atom zap.AtomicLevel, level string, logger *zap.Logger) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		logger.Warn("Unknown log level, keeping info", zap.String("level", level))
		return
	}
	atom.SetLevel(lvl)
}
