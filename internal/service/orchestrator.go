package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/models"
)

type orchestrator struct {
	push   PushEngine
	pull   PullEngine
	pruner TombstonePruner
	phases *phaseTracker
	logger *logger.Logger

	mu      sync.Mutex
	syncing bool
	online  bool

	followUp chan struct{}
}

// NewOrchestrator wires the push and pull engines into the single-flight
// cycle runner. The phases tracker must be the same one handed to the
// engines so per-stage progress is visible through Phase().
func NewOrchestrator(push PushEngine, pull PullEngine, pruner TombstonePruner, phases *phaseTracker, log *logger.Logger) Orchestrator {
	return &orchestrator{
		push:     push,
		pull:     pull,
		pruner:   pruner,
		phases:   phases,
		logger:   log,
		online:   true,
		followUp: make(chan struct{}, 1),
	}
}

// RunFullCycle runs one push-then-pull cycle. Only one cycle runs at a time;
// concurrent callers get ErrSyncInProgress instead of queueing, matching the
// trigger model where a skipped request is retried by the next trigger.
func (o *orchestrator) RunFullCycle(ctx context.Context, userID int64) (result models.CycleResult, err error) {
	log := logger.FromContext(ctx)

	if !o.acquire() {
		if !o.Online() {
			return models.CycleResult{}, ErrOffline
		}
		return models.CycleResult{}, ErrSyncInProgress
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "orchestrator.RunFullCycle").
				Interface("panic", r).
				Msg("sync cycle panicked")
			result.Success = false
			result.Error = fmt.Sprintf("sync cycle panicked: %v", r)
			err = fmt.Errorf("sync cycle panicked: %v", r)
		}
		if result.Success {
			o.phases.set(models.PhaseIdle)
		} else {
			o.phases.set(models.PhaseError)
		}
		o.release()
	}()

	// Retention sweep is best effort; a failed sweep never blocks the cycle.
	if _, pruneErr := o.pruner.PruneExpiredTombstones(ctx, userID); pruneErr != nil {
		log.Err(pruneErr).
			Str("func", "orchestrator.RunFullCycle").
			Int64("user_id", userID).
			Msg("tombstone retention sweep failed")
	}

	pushResult, pushErr := o.push.PushPendingChanges(ctx, userID)
	result.Push = &pushResult

	pullResult, pullErr := o.pull.PullIncrementalChanges(ctx, userID)
	result.Pull = &pullResult

	result.Success = pushResult.Success && pullResult.Success
	switch {
	case pushErr != nil:
		result.Error = pushErr.Error()
	case pullErr != nil:
		result.Error = pullErr.Error()
	case !pushResult.Success:
		result.Error = pushResult.Error
	case !pullResult.Success:
		result.Error = pullResult.Error
	}

	if pullResult.HasMore {
		o.scheduleFollowUp()
	}

	log.Info().
		Str("func", "orchestrator.RunFullCycle").
		Int64("user_id", userID).
		Bool("success", result.Success).
		Bool("has_more", pullResult.HasMore).
		Dur("duration", time.Since(start)).
		Msg("sync cycle finished")

	return result, nil
}

func (o *orchestrator) Phase() models.SyncPhase {
	return o.phases.get()
}

func (o *orchestrator) SetOnlineStatus(online bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.online = online
}

func (o *orchestrator) Online() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.online
}

func (o *orchestrator) FollowUp() <-chan struct{} {
	return o.followUp
}

// acquire takes the single-flight slot if the engine is online and idle.
func (o *orchestrator) acquire() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.online || o.syncing {
		return false
	}
	o.syncing = true
	return true
}

func (o *orchestrator) release() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.syncing = false
}

// scheduleFollowUp signals the sync worker without blocking; one queued
// follow-up is enough since a cycle drains everything it can.
func (o *orchestrator) scheduleFollowUp() {
	select {
	case o.followUp <- struct{}{}:
	default:
	}
}
