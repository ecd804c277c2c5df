package service

import (
	"sync"

	"github.com/centavohq/centavo/models"
)

type recordKey struct {
	Table models.TableName
	ID    string
}

// MutationLockManager guards records with an in-flight push. While a record
// is locked, local edits are buffered instead of written, so a late push
// acknowledgement can never overwrite a newer local edit. Releasing a lock
// hands the buffered edit (latest wins) back to the caller for replay.
type MutationLockManager struct {
	mu       sync.Mutex
	inFlight map[recordKey]struct{}
	buffered map[recordKey]models.SyncRecord
}

// NewMutationLockManager constructs an empty lock manager.
func NewMutationLockManager() *MutationLockManager {
	return &MutationLockManager{
		inFlight: make(map[recordKey]struct{}),
		buffered: make(map[recordKey]models.SyncRecord),
	}
}

// Lock marks the given records as having an in-flight push.
func (m *MutationLockManager) Lock(table models.TableName, ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		m.inFlight[recordKey{Table: table, ID: id}] = struct{}{}
	}
}

// Release unlocks the given records and returns any edits buffered while
// they were locked. Buffered edits must be re-persisted as pending by the
// caller after the push outcome has been applied.
func (m *MutationLockManager) Release(table models.TableName, ids []string) []models.SyncRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var replay []models.SyncRecord
	for _, id := range ids {
		key := recordKey{Table: table, ID: id}
		delete(m.inFlight, key)
		if rec, ok := m.buffered[key]; ok {
			replay = append(replay, rec)
			delete(m.buffered, key)
		}
	}
	return replay
}

// Submit offers a local edit for persistence. When the record is locked, the
// edit is buffered (replacing any earlier buffered edit for the same record)
// and true is returned; otherwise false is returned and the caller persists
// the edit itself.
func (m *MutationLockManager) Submit(rec models.SyncRecord) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{Table: rec.Table, ID: rec.ID}
	if _, locked := m.inFlight[key]; !locked {
		return false
	}
	m.buffered[key] = rec
	return true
}

// Locked reports whether a record currently has an in-flight push.
func (m *MutationLockManager) Locked(table models.TableName, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.inFlight[recordKey{Table: table, ID: id}]
	return ok
}
