package bot

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSource struct {
	ch      chan tgbotapi.Update
	config  tgbotapi.UpdateConfig
	stopped chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ch:      make(chan tgbotapi.Update, 4),
		stopped: make(chan struct{}),
	}
}

func (f *fakeSource) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	f.config = config
	return f.ch
}

func (f *fakeSource) StopReceivingUpdates() {
	close(f.stopped)
}

func TestPollerHandlesUpdatesUntilChannelCloses(t *testing.T) {
	b, sender := newTestBot(t, &fakeWeather{})
	source := newFakeSource()
	p := NewPoller(source, b, 30, zaptest.NewLogger(t))

	source.ch <- commandUpdate("/start")
	source.ch <- textUpdate("улан")
	close(source.ch)

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 30, source.config.Timeout)
	assert.Len(t, sender.Sent(), 2)
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	b, _ := newTestBot(t, &fakeWeather{})
	source := newFakeSource()
	p := NewPoller(source, b, 1, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}

	select {
	case <-source.stopped:
	default:
		t.Fatal("StopReceivingUpdates was not called")
	}
}
