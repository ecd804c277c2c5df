package service

import (
	"github.com/centavohq/centavo/internal/adapter"
	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/store"
)

// ClientServices groups the engine's services into a single value the
// application wires once at startup.
type ClientServices struct {
	// Records is the local write path for UI mutations.
	Records RecordService

	// Conflicts lists surfaced conflicts and applies resolutions.
	Conflicts ConflictService

	// Orchestrator runs full sync cycles.
	Orchestrator Orchestrator

	// Pruner removes expired confirmed tombstones.
	Pruner TombstonePruner

	// Locks is shared between the write path and the push engine.
	Locks *MutationLockManager
}

// NewClientServices wires the full service layer on top of the local
// storages and the remote authority adapter.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteAuthority, cfg config.ClientSync, log *logger.Logger) *ClientServices {
	log.Info().Msg("creating new services...")

	locks := NewMutationLockManager()
	phases := newPhaseTracker()

	push := NewPushEngine(storages.Records, storages.Metadata, remote, locks, cfg, phases.set, log)
	pull := NewPullEngine(storages.Records, storages.Metadata, remote, cfg, phases.set, log)
	pruner := NewTombstonePruner(storages.Metadata, cfg, log)

	return &ClientServices{
		Records:      NewRecordService(storages.Records, locks, log),
		Conflicts:    NewConflictService(storages.Records, storages.Metadata, log),
		Orchestrator: NewOrchestrator(push, pull, pruner, phases, log),
		Pruner:       pruner,
		Locks:        locks,
	}
}
