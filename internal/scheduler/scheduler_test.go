package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeWarmer struct {
	enabled bool
	err     error
	block   chan struct{}
	calls   atomic.Int32
}

func (f *fakeWarmer) Warm(ctx context.Context) error {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	return f.err
}

func (f *fakeWarmer) CacheEnabled() bool {
	return f.enabled
}

func TestStartRunsImmediately(t *testing.T) {
	w := &fakeWarmer{enabled: true}
	s := NewScheduler(w, "@every 1h", time.UTC, zaptest.NewLogger(t))

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return w.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return s.GetStatus()["runs"] == 1 }, time.Second, 10*time.Millisecond)

	status := s.GetStatus()
	assert.Equal(t, true, status["running"])
	assert.Equal(t, "@every 1h", status["schedule"])
	assert.Contains(t, status, "next_run")
}

func TestStartDisabled(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		schedule string
	}{
		{"cache off", false, "@every 1m"},
		{"empty schedule", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWarmer{enabled: tt.enabled}
			s := NewScheduler(w, tt.schedule, nil, zaptest.NewLogger(t))

			require.NoError(t, s.Start())
			s.Stop()

			time.Sleep(20 * time.Millisecond)
			assert.Equal(t, int32(0), w.calls.Load())
			assert.Equal(t, false, s.GetStatus()["running"])
		})
	}
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(&fakeWarmer{enabled: true}, "every now and then", time.UTC, zaptest.NewLogger(t))

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh schedule")
}

func TestOverlappingRunsAreSkipped(t *testing.T) {
	w := &fakeWarmer{enabled: true, block: make(chan struct{})}
	s := NewScheduler(w, "@every 1h", time.UTC, zaptest.NewLogger(t))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.runWarm()
	}()
	require.Eventually(t, func() bool { return w.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	s.runWarm()
	close(w.block)
	wg.Wait()

	status := s.GetStatus()
	assert.Equal(t, int32(1), w.calls.Load())
	assert.Equal(t, 1, status["runs"])
	assert.Equal(t, 1, status["skipped"])
}

func TestFailedRunIsRecorded(t *testing.T) {
	w := &fakeWarmer{enabled: true, err: errors.New("Ошибка получения погоды: HTTP 503")}
	s := NewScheduler(w, "@every 1h", time.UTC, zaptest.NewLogger(t))

	s.runWarm()

	assert.Equal(t, "Ошибка получения погоды: HTTP 503", s.GetStatus()["last_error"])
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler(&fakeWarmer{enabled: true}, "@every 1h", time.UTC, zaptest.NewLogger(t))
	require.NoError(t, s.Start())
	s.Stop()
	s.Stop()
}
