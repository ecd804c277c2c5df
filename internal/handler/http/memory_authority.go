package http

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/centavohq/centavo/models"
)

// MemoryAuthority is an in-memory implementation of the remote-authority
// contract: one monotonically increasing version counter per user, shared
// across all tables, with last-writer version checking on every upsert and
// delete. It backs the dev authority binary and the end-to-end tests; it is
// not a production backend.
type MemoryAuthority struct {
	mu    sync.Mutex
	users map[int64]*userSpace
}

type userSpace struct {
	nextVersion int64
	tables      map[models.TableName]map[string]*authorityRecord
}

type authorityRecord struct {
	id        string
	version   int64
	deletedAt *time.Time
	data      json.RawMessage
}

// NewMemoryAuthority constructs an empty in-memory authority.
func NewMemoryAuthority() *MemoryAuthority {
	return &MemoryAuthority{users: make(map[int64]*userSpace)}
}

func (a *MemoryAuthority) space(userID int64) *userSpace {
	space, ok := a.users[userID]
	if !ok {
		space = &userSpace{tables: make(map[models.TableName]map[string]*authorityRecord)}
		a.users[userID] = space
	}
	return space
}

func (s *userSpace) table(name models.TableName) map[string]*authorityRecord {
	t, ok := s.tables[name]
	if !ok {
		t = make(map[string]*authorityRecord)
		s.tables[name] = t
	}
	return t
}

// CheckForChanges answers the lightweight probe against the user's version
// counter.
func (a *MemoryAuthority) CheckForChanges(userID, sinceVersion int64) models.CheckChangesResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	latest := a.space(userID).nextVersion
	return models.CheckChangesResponse{
		HasChanges:          latest > sinceVersion,
		LatestServerVersion: latest,
	}
}

// ChangesSince returns up to limit of the table's records with versions
// strictly greater than sinceVersion, ordered by version ascending.
func (a *MemoryAuthority) ChangesSince(userID int64, table models.TableName, sinceVersion int64, limit int) []models.RemoteRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []models.RemoteRecord
	for _, rec := range a.space(userID).table(table) {
		if rec.version > sinceVersion {
			out = append(out, models.RemoteRecord{
				ID:        rec.id,
				Version:   rec.version,
				DeletedAt: rec.deletedAt,
				Data:      rec.data,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BatchUpsert applies one chunk with per-record version checking: a record
// whose stored version is higher than the submitted base version is rejected
// as a conflict; everything else is stored with a freshly assigned version.
func (a *MemoryAuthority) BatchUpsert(userID int64, table models.TableName, records []models.PushRecord) models.BatchUpsertResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	space := a.space(userID)
	stored := space.table(table)

	resp := models.BatchUpsertResponse{
		SyncedVersions:   make(map[string]int64),
		ConflictVersions: make(map[string]int64),
		ErrorMap:         make(map[string]string),
	}

	for _, rec := range records {
		if cur, ok := stored[rec.ID]; ok && cur.version > rec.Version {
			resp.ConflictIDs = append(resp.ConflictIDs, rec.ID)
			resp.ConflictVersions[rec.ID] = cur.version
			resp.ErrorMap[rec.ID] = "version conflict: remote version is newer"
			continue
		}

		space.nextVersion++
		stored[rec.ID] = &authorityRecord{
			id:        rec.ID,
			version:   space.nextVersion,
			deletedAt: rec.DeletedAt,
			data:      rec.Data,
		}
		resp.SyncedIDs = append(resp.SyncedIDs, rec.ID)
		resp.SyncedVersions[rec.ID] = space.nextVersion
	}

	return resp
}

// DeleteWithVersion tombstones a single record after checking the caller's
// version belief against the stored version.
func (a *MemoryAuthority) DeleteWithVersion(userID int64, table models.TableName, id string, expectedVersion int64) models.DeleteOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	space := a.space(userID)
	stored := space.table(table)

	cur, ok := stored[id]
	if !ok {
		return models.DeleteOutcome{Error: models.DeleteErrNotFound}
	}
	if cur.version > expectedVersion {
		return models.DeleteOutcome{
			Error:          models.DeleteErrVersionConflict,
			CurrentVersion: cur.version,
		}
	}

	now := time.Now().UTC()
	space.nextVersion++
	cur.version = space.nextVersion
	cur.deletedAt = &now
	cur.data = nil

	return models.DeleteOutcome{Success: true}
}

// Seed installs a record directly, bypassing version checks. Test helper.
func (a *MemoryAuthority) Seed(userID int64, table models.TableName, id string, data json.RawMessage, deletedAt *time.Time) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	space := a.space(userID)
	space.nextVersion++
	space.table(table)[id] = &authorityRecord{
		id:        id,
		version:   space.nextVersion,
		deletedAt: deletedAt,
		data:      data,
	}
	return space.nextVersion
}
