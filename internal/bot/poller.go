package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// UpdateSource is the long-polling half of *tgbotapi.BotAPI.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Poller struct {
	source  UpdateSource
	bot     *Bot
	timeout int
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewPoller(source UpdateSource, bot *Bot, timeout int, logger *zap.Logger) *Poller {
	return &Poller{
		source:  source,
		bot:     bot,
		timeout: timeout,
		logger:  logger,
	}
}

// Run receives updates until ctx is cancelled or the channel closes, then
// waits for in-flight handlers.
func (p *Poller) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = p.timeout
	updates := p.source.GetUpdatesChan(u)

	p.logger.Info("Long polling started", zap.Int("timeout", p.timeout))
	defer p.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			p.source.StopReceivingUpdates()
			p.logger.Info("Long polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			p.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer p.wg.Done()
				if err := p.bot.HandleUpdate(ctx, update); err != nil {
					p.logger.Error("Failed to handle update", zap.Int("update_id", update.UpdateID), zap.Error(err))
				}
			}(update)
		}
	}
}
