package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/mock"
	"github.com/centavohq/centavo/models"
)

const testUserID int64 = 7

func newTestPushEngine(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.ClientSync,
) (PushEngine, *mock.MockLocalRecordRepository, *mock.MockSyncMetadataRepository, *mock.MockRemoteAuthority, *MutationLockManager) {
	t.Helper()

	records := mock.NewMockLocalRecordRepository(ctrl)
	meta := mock.NewMockSyncMetadataRepository(ctrl)
	remote := mock.NewMockRemoteAuthority(ctrl)
	locks := NewMutationLockManager()

	engine := NewPushEngine(records, meta, remote, locks, cfg, nil, logger.Nop())
	return engine, records, meta, remote, locks
}

// expectNoPending stubs empty pending sets for every table in both phases,
// except the tables named in overrides.
func expectNoPending(records *mock.MockLocalRecordRepository, overrides ...models.TableName) {
	skip := make(map[models.TableName]bool)
	for _, table := range overrides {
		skip[table] = true
	}
	for _, table := range models.SyncOrder() {
		if skip[table] {
			continue
		}
		records.EXPECT().ListPending(gomock.Any(), testUserID, table, true).Return(nil, nil)
		records.EXPECT().ListPending(gomock.Any(), testUserID, table, false).Return(nil, nil)
	}
}

func pendingRecords(table models.TableName, count int) []models.SyncRecord {
	recs := make([]models.SyncRecord, count)
	for i := range recs {
		recs[i] = models.SyncRecord{
			ID:         fmt.Sprintf("%s-%d", table, i),
			UserID:     testUserID,
			Table:      table,
			SyncStatus: models.StatusPending,
			Data:       []byte(`{}`),
		}
	}
	return recs
}

func allSynced(records []models.PushRecord) models.BatchUpsertResponse {
	resp := models.BatchUpsertResponse{SyncedVersions: make(map[string]int64)}
	for i, rec := range records {
		resp.SyncedIDs = append(resp.SyncedIDs, rec.ID)
		resp.SyncedVersions[rec.ID] = int64(i + 1)
	}
	return resp
}

func TestPushEngine_ChunksByBatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PushBatchSize: 50}
	engine, records, _, remote, _ := newTestPushEngine(t, ctrl, cfg)

	expectNoPending(records, models.TableCategories)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, true).Return(nil, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, false).
		Return(pendingRecords(models.TableCategories, 120), nil)

	var batchSizes []int
	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableCategories, testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TableName, _ int64, recs []models.PushRecord) (models.BatchUpsertResponse, error) {
			batchSizes = append(batchSizes, len(recs))
			return allSynced(recs), nil
		}).Times(3)
	records.EXPECT().MarkSynced(gomock.Any(), testUserID, models.TableCategories, gomock.Any(), gomock.Any()).
		Return(nil).Times(120)

	result, err := engine.PushPendingChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, []int{50, 50, 20}, batchSizes)
	assert.True(t, result.Success)
	assert.Equal(t, 120, result.TotalPushed)
}

func TestPushEngine_TombstonesBeforeUpserts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PushBatchSize: 50}
	engine, records, _, remote, _ := newTestPushEngine(t, ctrl, cfg)

	tombstone := pendingRecords(models.TableCategories, 1)
	deletedAt := nowUTC()
	tombstone[0].DeletedAt = &deletedAt
	upsert := pendingRecords(models.TableCategories, 1)
	upsert[0].ID = "categories-live"

	expectNoPending(records, models.TableCategories)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, true).Return(tombstone, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, false).Return(upsert, nil)

	var order []string
	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableCategories, testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TableName, _ int64, recs []models.PushRecord) (models.BatchUpsertResponse, error) {
			if recs[0].DeletedAt != nil {
				order = append(order, "prune")
			} else {
				order = append(order, "plant")
			}
			return allSynced(recs), nil
		}).Times(2)
	records.EXPECT().MarkSynced(gomock.Any(), testUserID, models.TableCategories, gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	_, err := engine.PushPendingChanges(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"prune", "plant"}, order)
}

func TestPushEngine_ChainSkipsDependentsOfConflictedParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PushBatchSize: 50}
	engine, records, _, remote, _ := newTestPushEngine(t, ctrl, cfg)

	account := models.SyncRecord{
		ID: "acc-1", UserID: testUserID, Table: models.TableAccounts,
		SyncStatus: models.StatusPending, Data: []byte(`{"name":"Checking"}`),
	}
	txnBlocked := models.SyncRecord{
		ID: "txn-1", UserID: testUserID, Table: models.TableTransactions,
		SyncStatus: models.StatusPending,
		Data:       []byte(`{"account_id":"acc-1","amount_cents":-4250}`),
	}
	txnFree := models.SyncRecord{
		ID: "txn-2", UserID: testUserID, Table: models.TableTransactions,
		SyncStatus: models.StatusPending,
		Data:       []byte(`{"account_id":"acc-2","amount_cents":1500}`),
	}
	inboxBlocked := models.SyncRecord{
		ID: "inbox-1", UserID: testUserID, Table: models.TableInbox,
		SyncStatus: models.StatusPending,
		Data:       []byte(`{"transaction_id":"txn-1","raw_description":"COFFEE"}`),
	}

	for _, table := range models.SyncOrder() {
		records.EXPECT().ListPending(gomock.Any(), testUserID, table, true).Return(nil, nil)
	}
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableAccounts, false).
		Return([]models.SyncRecord{account}, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, false).Return(nil, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableTransactions, false).
		Return([]models.SyncRecord{txnBlocked, txnFree}, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableInbox, false).
		Return([]models.SyncRecord{inboxBlocked}, nil)

	// the account push is rejected as a conflict at remote version 9
	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableAccounts, testUserID, gomock.Any()).
		Return(models.BatchUpsertResponse{
			ConflictIDs:      []string{"acc-1"},
			ConflictVersions: map[string]int64{"acc-1": 9},
		}, nil)
	records.EXPECT().MarkConflict(gomock.Any(), testUserID, models.TableAccounts, "acc-1", gomock.Any(), int64(9)).
		Return(nil)

	// only the unblocked transaction reaches the wire
	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableTransactions, testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TableName, _ int64, recs []models.PushRecord) (models.BatchUpsertResponse, error) {
			require.Len(t, recs, 1)
			assert.Equal(t, "txn-2", recs[0].ID)
			return allSynced(recs), nil
		})
	records.EXPECT().MarkSynced(gomock.Any(), testUserID, models.TableTransactions, "txn-2", gomock.Any()).
		Return(nil)
	// inbox-1 depends on the skipped txn-1, so nothing is sent for inbox

	result, err := engine.PushPendingChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PerTable[models.TableAccounts].Conflicts)
	assert.Equal(t, 1, result.PerTable[models.TableTransactions].Skipped)
	assert.Equal(t, 1, result.PerTable[models.TableInbox].Skipped)
	assert.Equal(t, 1, result.TotalPushed)
	assert.Zero(t, result.TotalFailures)
}

func TestPushEngine_DeleteWithVersionOutcomes(t *testing.T) {
	deletedAt := nowUTC()

	tests := []struct {
		name          string
		outcome       models.DeleteOutcome
		outcomeErr    error
		wantSynced    bool
		wantConflict  bool
		wantPending   bool
		remoteVersion int64
	}{
		{
			name:       "acknowledged delete is synced",
			outcome:    models.DeleteOutcome{Success: true},
			wantSynced: true,
		},
		{
			name:       "not found is treated as already deleted",
			outcome:    models.DeleteOutcome{Error: models.DeleteErrNotFound},
			wantSynced: true,
		},
		{
			name:          "version conflict is surfaced",
			outcome:       models.DeleteOutcome{Error: models.DeleteErrVersionConflict, CurrentVersion: 12},
			wantConflict:  true,
			remoteVersion: 12,
		},
		{
			name:        "transport error stays pending",
			outcomeErr:  errors.New("connection refused"),
			wantPending: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := config.ClientSync{PushBatchSize: 50}
			engine, records, _, remote, _ := newTestPushEngine(t, ctrl, cfg)

			tombstone := models.SyncRecord{
				ID: "acc-1", UserID: testUserID, Table: models.TableAccounts,
				Version: 3, DeletedAt: &deletedAt, SyncStatus: models.StatusPending,
			}

			expectNoPending(records, models.TableAccounts)
			records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableAccounts, true).
				Return([]models.SyncRecord{tombstone}, nil)
			records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableAccounts, false).Return(nil, nil)

			remote.EXPECT().DeleteWithVersion(gomock.Any(), models.TableAccounts, testUserID, "acc-1", int64(3)).
				Return(tt.outcome, tt.outcomeErr)

			switch {
			case tt.wantSynced:
				records.EXPECT().MarkSynced(gomock.Any(), testUserID, models.TableAccounts, "acc-1", int64(3)).Return(nil)
			case tt.wantConflict:
				records.EXPECT().MarkConflict(gomock.Any(), testUserID, models.TableAccounts, "acc-1", gomock.Any(), tt.remoteVersion).Return(nil)
			case tt.wantPending:
				records.EXPECT().MarkPending(gomock.Any(), testUserID, models.TableAccounts, "acc-1", gomock.Any()).Return(nil)
			}

			result, err := engine.PushPendingChanges(context.Background(), testUserID)
			require.NoError(t, err)

			tr := result.PerTable[models.TableAccounts]
			assert.Equal(t, boolToInt(tt.wantSynced), tr.Pushed)
			assert.Equal(t, boolToInt(tt.wantConflict), tr.Conflicts)
			assert.Equal(t, boolToInt(tt.wantPending), tr.Failures)
		})
	}
}

func TestPushEngine_TableFailureDoesNotAbortCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PushBatchSize: 50}
	engine, records, meta, remote, _ := newTestPushEngine(t, ctrl, cfg)

	accounts := pendingRecords(models.TableAccounts, 2)
	categories := pendingRecords(models.TableCategories, 1)

	for _, table := range models.SyncOrder() {
		records.EXPECT().ListPending(gomock.Any(), testUserID, table, true).Return(nil, nil)
	}
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableAccounts, false).Return(accounts, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, false).Return(categories, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableTransactions, false).Return(nil, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableInbox, false).Return(nil, nil)

	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableAccounts, testUserID, gomock.Any()).
		Return(models.BatchUpsertResponse{}, errors.New("connection reset"))
	records.EXPECT().MarkPending(gomock.Any(), testUserID, models.TableAccounts, gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	meta.EXPECT().RecordError(gomock.Any(), testUserID, models.TableAccounts, gomock.Any()).Return(nil)

	// categories has no dependency on accounts and still pushes
	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableCategories, testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TableName, _ int64, recs []models.PushRecord) (models.BatchUpsertResponse, error) {
			return allSynced(recs), nil
		})
	records.EXPECT().MarkSynced(gomock.Any(), testUserID, models.TableCategories, gomock.Any(), gomock.Any()).Return(nil)

	result, err := engine.PushPendingChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.PerTable[models.TableAccounts].Failures)
	assert.Equal(t, 1, result.PerTable[models.TableCategories].Pushed)
}

func TestPushEngine_ReplaysEditBufferedDuringPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PushBatchSize: 50}
	engine, records, _, remote, locks := newTestPushEngine(t, ctrl, cfg)

	rec := pendingRecords(models.TableCategories, 1)[0]

	expectNoPending(records, models.TableCategories)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, true).Return(nil, nil)
	records.EXPECT().ListPending(gomock.Any(), testUserID, models.TableCategories, false).
		Return([]models.SyncRecord{rec}, nil)

	edited := rec
	edited.Data = []byte(`{"name":"Groceries"}`)

	remote.EXPECT().BatchUpsert(gomock.Any(), models.TableCategories, testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TableName, _ int64, recs []models.PushRecord) (models.BatchUpsertResponse, error) {
			// a local edit arrives mid-flight and must be buffered
			require.True(t, locks.Submit(edited))
			return allSynced(recs), nil
		})
	records.EXPECT().MarkSynced(gomock.Any(), testUserID, models.TableCategories, rec.ID, gomock.Any()).Return(nil)

	// after the outcome lands, the buffered edit is replayed as pending
	records.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved models.SyncRecord) error {
			assert.Equal(t, models.StatusPending, saved.SyncStatus)
			assert.JSONEq(t, `{"name":"Groceries"}`, string(saved.Data))
			return nil
		})

	_, err := engine.PushPendingChanges(context.Background(), testUserID)
	require.NoError(t, err)
	assert.False(t, locks.Locked(models.TableCategories, rec.ID))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
