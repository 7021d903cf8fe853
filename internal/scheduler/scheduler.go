package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = 60 * time.Second

// Warmer is satisfied by *services.WeatherService.
type Warmer interface {
	Warm(ctx context.Context) error
	CacheEnabled() bool
}

// Scheduler refreshes the weather cache on a cron schedule so that chat
// requests are served from warm entries.
type Scheduler struct {
	warmer   Warmer
	schedule string
	location *time.Location
	logger   *zap.Logger

	cron    *cron.Cron
	entryID cron.EntryID
	active  atomic.Bool
	manual  sync.WaitGroup

	mu        sync.Mutex
	running   bool
	lastRun   time.Time
	lastError error
	runs      int
	skipped   int
}

func NewScheduler(warmer Warmer, schedule string, location *time.Location, logger *zap.Logger) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		warmer:   warmer,
		schedule: schedule,
		location: location,
		logger:   logger,
	}
}

// Start registers the refresh job and runs it once immediately. It is a no-op
// when caching is off or the schedule is empty.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.schedule == "" || !s.warmer.CacheEnabled() {
		s.logger.Info("Scheduler disabled",
			zap.String("schedule", s.schedule),
			zap.Bool("cache_enabled", s.warmer.CacheEnabled()))
		return nil
	}

	cl := cronLogger{s.logger.Sugar()}
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	id, err := c.AddFunc(s.schedule, s.runWarm)
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	s.cron = c
	s.entryID = id
	s.running = true
	c.Start()

	s.logger.Info("Scheduler started",
		zap.String("schedule", s.schedule),
		zap.Time("next_run", c.Entry(id).Next))

	s.goRun()
	return nil
}

// Stop halts the schedule and waits for running refreshes to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	c := s.cron
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	<-c.Stop().Done()
	s.manual.Wait()
}

func (s *Scheduler) goRun() {
	s.manual.Add(1)
	go func() {
		defer s.manual.Done()
		s.runWarm()
	}()
}

// runWarm never overlaps with itself; a tick that finds a refresh in flight
// is skipped.
func (s *Scheduler) runWarm() {
	if !s.active.CompareAndSwap(false, true) {
		s.mu.Lock()
		s.skipped++
		s.mu.Unlock()
		s.logger.Debug("Skipping refresh, previous run still in progress")
		return
	}
	defer s.active.Store(false)

	startTime := time.Now()
	s.logger.Info("Starting scheduled cache refresh")

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	err := s.warmer.Warm(ctx)

	s.mu.Lock()
	s.lastRun = startTime
	s.lastError = err
	s.runs++
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Scheduled cache refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}
	s.logger.Info("Scheduled cache refresh completed",
		zap.Duration("duration", time.Since(startTime)))
}

func (s *Scheduler) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]interface{}{
		"running":  s.running,
		"schedule": s.schedule,
		"last_run": s.lastRun,
		"runs":     s.runs,
		"skipped":  s.skipped,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}
	if s.running {
		status["next_run"] = s.cron.Entry(s.entryID).Next
	}
	return status
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
