package models

import "time"

// SyncPhase is the orchestrator's state-machine phase.
type SyncPhase string

const (
	PhaseIdle     SyncPhase = "idle"
	PhasePruning  SyncPhase = "pruning"
	PhasePlanting SyncPhase = "planting"
	PhasePulling  SyncPhase = "pulling"
	PhaseError    SyncPhase = "error"
)

// SyncMetadata is the durable per-table checkpoint entry. The effective
// global checkpoint exposed to callers is the minimum LastSyncedVersion
// across all table entries.
type SyncMetadata struct {
	UserID            int64     `json:"user_id"`
	Table             TableName `json:"table_name"`
	LastSyncedVersion int64     `json:"last_synced_version"`
	SyncError         *string   `json:"sync_error,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PendingBatch groups one table's locally pending records, partitioned into
// the prune set (soft-deleted) and the plant set (creates and updates).
type PendingBatch struct {
	Table TableName
	Prune []SyncRecord
	Plant []SyncRecord
}

// TableChanges groups one table's remote records fetched during a pull.
type TableChanges struct {
	Table          TableName
	Upserts        []RemoteRecord
	Tombstones     []RemoteRecord
	MaxVersion     int64
	Pages          int
	HitSafetyLimit bool
}

// Empty reports whether the fetch returned no rows for the table.
func (c TableChanges) Empty() bool {
	return len(c.Upserts) == 0 && len(c.Tombstones) == 0
}

// TablePushResult is the per-table outcome of one push cycle.
type TablePushResult struct {
	Table     TableName `json:"table_name"`
	Pushed    int       `json:"pushed"`
	Conflicts int       `json:"conflicts"`
	Failures  int       `json:"failures"`
	Skipped   int       `json:"skipped"` // chain-skipped, retried next cycle
	Error     string    `json:"error,omitempty"`
}

// PushResult is the outcome of one push cycle across all tables.
type PushResult struct {
	Success        bool                           `json:"success"`
	PerTable       map[TableName]*TablePushResult `json:"per_table"`
	TotalPushed    int                            `json:"total_pushed"`
	TotalConflicts int                            `json:"total_conflicts"`
	TotalFailures  int                            `json:"total_failures"`
	Duration       time.Duration                  `json:"duration"`
	Error          string                         `json:"error,omitempty"`
}

// TablePullStats is the per-table outcome of one pull cycle.
type TablePullStats struct {
	Table          TableName `json:"table_name"`
	Upserts        int       `json:"upserts"`
	Tombstones     int       `json:"tombstones"`
	Pages          int       `json:"pages"`
	MaxVersion     int64     `json:"max_version"`
	HitSafetyLimit bool      `json:"hit_safety_limit"`
}

// PullResult is the outcome of one pull cycle.
type PullResult struct {
	Success          bool                          `json:"success"`
	TableStats       map[TableName]*TablePullStats `json:"table_stats"`
	NewHighWaterMark int64                         `json:"new_high_water_mark"`
	Duration         time.Duration                 `json:"duration"`

	// HasMore signals that at least one table hit its safety limit and an
	// immediate follow-up cycle should be scheduled.
	HasMore bool   `json:"has_more"`
	Error   string `json:"error,omitempty"`
}

// PruneResult reports how many confirmed tombstones were physically removed.
type PruneResult struct {
	PrunedCount int               `json:"pruned_count"`
	ByTable     map[TableName]int `json:"by_table"`
}

// CycleResult is the outcome of one full orchestrated cycle (push then pull).
type CycleResult struct {
	Success bool        `json:"success"`
	Push    *PushResult `json:"push,omitempty"`
	Pull    *PullResult `json:"pull,omitempty"`
	Error   string      `json:"error,omitempty"`
}
