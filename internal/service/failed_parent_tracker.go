package service

import "github.com/centavohq/centavo/models"

// failedParentTracker accumulates the records that failed, conflicted, or
// were skipped during the current push cycle. Dependents of a tracked record
// are chain-skipped in the same cycle so the authority never sees a child
// before its parent. The tracker lives for exactly one cycle and is not
// safe for concurrent use.
type failedParentTracker struct {
	failed map[recordKey]struct{}
}

func newFailedParentTracker() *failedParentTracker {
	return &failedParentTracker{failed: make(map[recordKey]struct{})}
}

func (t *failedParentTracker) Add(table models.TableName, id string) {
	t.failed[recordKey{Table: table, ID: id}] = struct{}{}
}

// BlockedBy returns the first parent of rec that failed this cycle, if any.
// Records whose payload cannot be decoded are treated as unblocked; the
// authority rejects them on its own terms.
func (t *failedParentTracker) BlockedBy(rec models.SyncRecord) (models.ParentRef, bool) {
	if len(t.failed) == 0 {
		return models.ParentRef{}, false
	}

	refs, err := rec.ParentRefs()
	if err != nil {
		return models.ParentRef{}, false
	}
	for _, ref := range refs {
		if _, ok := t.failed[recordKey{Table: ref.Table, ID: ref.ID}]; ok {
			return ref, true
		}
	}
	return models.ParentRef{}, false
}
