// Package workers contains the background jobs that drive the sync engine:
// the periodic ticker, the focus/reconnect triggers, and the follow-up drain
// for oversized pulls.
package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/service"
)

// SyncJob schedules sync cycles: a periodic ticker, debounced event triggers
// (app focus, network reconnect, explicit user request), and immediate
// follow-ups when a pull left remote data behind.
type SyncJob struct {
	orchestrator service.Orchestrator
	cfg          config.ClientSync
	userID       int64
	logger       *logger.Logger

	// trigger coalesces all cycle requests; buffered so triggers never block.
	trigger chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	lastRun time.Time
	stopped bool
	started bool
}

// NewSyncJob constructs the scheduler. Start must be called before any
// trigger has effect.
func NewSyncJob(orch service.Orchestrator, cfg config.ClientSync, userID int64, log *logger.Logger) *SyncJob {
	return &SyncJob{
		orchestrator: orch,
		cfg:          cfg,
		userID:       userID,
		logger:       log,
		trigger:      make(chan struct{}, 1),
	}
}

// Start launches the scheduling loop. Calling Start twice is a no-op.
func (j *SyncJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.started {
		return
	}
	j.started = true

	ctx, j.cancel = context.WithCancel(ctx)
	j.wg.Add(1)
	go j.run(ctx)

	j.logger.Info().
		Dur("interval", j.cfg.Interval).
		Dur("min_interval", j.cfg.MinInterval).
		Msg("sync job started")
}

// Stop cancels the loop and waits for an in-flight cycle to finish.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	if j.stopped || !j.started {
		j.mu.Unlock()
		return
	}
	j.stopped = true
	cancel := j.cancel
	j.mu.Unlock()

	cancel()
	j.wg.Wait()
	j.logger.Info().Msg("sync job stopped")
}

// ForceSync requests an immediate cycle, bypassing the debounce floor.
func (j *SyncJob) ForceSync() {
	j.mu.Lock()
	j.lastRun = time.Time{}
	j.mu.Unlock()
	j.requestCycle()
}

// Focus requests a cycle on an app-foreground event, when enabled.
func (j *SyncJob) Focus() {
	if !j.cfg.OnFocus {
		return
	}
	j.requestCycle()
}

// Reconnect marks the engine online again and requests a cycle, when
// enabled. Offline transitions go through Offline.
func (j *SyncJob) Reconnect() {
	j.orchestrator.SetOnlineStatus(true)
	if !j.cfg.OnReconnect {
		return
	}
	j.requestCycle()
}

// Offline marks the engine offline; cycles are skipped until Reconnect.
func (j *SyncJob) Offline() {
	j.orchestrator.SetOnlineStatus(false)
}

func (j *SyncJob) requestCycle() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

func (j *SyncJob) run(ctx context.Context) {
	defer j.wg.Done()

	interval := j.cfg.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.runCycle(ctx, false)
		case <-j.trigger:
			j.runCycle(ctx, false)
		case <-j.orchestrator.FollowUp():
			// A capped pull left data behind; drain it without waiting for
			// the next tick or the debounce floor.
			j.runCycle(ctx, true)
		}
	}
}

// runCycle applies the debounce floor, runs one cycle, and logs the outcome.
// Follow-up cycles skip the debounce so a large backlog drains continuously.
func (j *SyncJob) runCycle(ctx context.Context, isFollowUp bool) {
	if !isFollowUp && !j.debounceElapsed() {
		j.logger.Debug().
			Str("func", "SyncJob.runCycle").
			Msg("cycle skipped: min interval not elapsed")
		return
	}

	cycleCtx := j.logger.WithContext(ctx)
	result, err := j.orchestrator.RunFullCycle(cycleCtx, j.userID)

	// A rejected cycle never ran; it must not push the next eligible run
	// further out.
	if !errors.Is(err, service.ErrSyncInProgress) && !errors.Is(err, service.ErrOffline) {
		j.mu.Lock()
		j.lastRun = time.Now()
		j.mu.Unlock()
	}

	switch {
	case errors.Is(err, service.ErrSyncInProgress), errors.Is(err, service.ErrOffline):
		j.logger.Debug().
			Str("func", "SyncJob.runCycle").
			Err(err).
			Msg("cycle skipped")
	case err != nil:
		j.logger.Err(err).
			Str("func", "SyncJob.runCycle").
			Msg("sync cycle failed")
	default:
		var event *zerolog.Event
		if result.Success {
			event = j.logger.Debug()
		} else {
			event = j.logger.Warn()
		}
		event.
			Str("func", "SyncJob.runCycle").
			Bool("success", result.Success).
			Str("error", result.Error).
			Msg("sync cycle completed")
	}
}

func (j *SyncJob) debounceElapsed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	minInterval := j.cfg.MinInterval
	if minInterval <= 0 {
		return true
	}
	return j.lastRun.IsZero() || time.Since(j.lastRun) >= minInterval
}
