package service

import (
	"sync"

	"github.com/centavohq/centavo/models"
)

// phaseTracker holds the orchestrator's current phase. The push and pull
// engines advance it as they move through their own stages, so the UI sees
// pruning/planting/pulling rather than a single opaque "syncing".
type phaseTracker struct {
	mu      sync.RWMutex
	current models.SyncPhase
}

func newPhaseTracker() *phaseTracker {
	return &phaseTracker{current: models.PhaseIdle}
}

func (t *phaseTracker) set(phase models.SyncPhase) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = phase
}

func (t *phaseTracker) get() models.SyncPhase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}
