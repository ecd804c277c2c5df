package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/mock"
	"github.com/centavohq/centavo/models"
)

func newTestPullEngine(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.ClientSync,
) (PullEngine, *mock.MockLocalRecordRepository, *mock.MockSyncMetadataRepository, *mock.MockRemoteAuthority) {
	t.Helper()

	records := mock.NewMockLocalRecordRepository(ctrl)
	meta := mock.NewMockSyncMetadataRepository(ctrl)
	remote := mock.NewMockRemoteAuthority(ctrl)

	engine := NewPullEngine(records, meta, remote, cfg, nil, logger.Nop())
	return engine, records, meta, remote
}

func expectEmptyTables(remote *mock.MockRemoteAuthority, checkpoint int64, except ...models.TableName) {
	skip := make(map[models.TableName]bool)
	for _, table := range except {
		skip[table] = true
	}
	for _, table := range models.SyncOrder() {
		if skip[table] {
			continue
		}
		remote.EXPECT().GetChangesSince(gomock.Any(), table, testUserID, checkpoint, gomock.Any()).
			Return(nil, nil)
	}
}

func TestPullEngine_QuietCheckIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PullPageSize: 500, MaxRecordsPerTable: 5000}
	engine, _, meta, remote := newTestPullEngine(t, ctrl, cfg)

	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(42), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(42)).
		Return(models.CheckChangesResponse{HasChanges: false, LatestServerVersion: 42}, nil)

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.HasMore)
	assert.Equal(t, int64(42), result.NewHighWaterMark)
	assert.Empty(t, result.TableStats)
}

func TestPullEngine_LatestVersionAtCheckpointIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PullPageSize: 500, MaxRecordsPerTable: 5000}
	engine, _, meta, remote := newTestPullEngine(t, ctrl, cfg)

	// the changes flag is set but the latest version does not exceed the
	// checkpoint: no per-table fetches may happen
	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(42), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(42)).
		Return(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 42}, nil)

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.HasMore)
	assert.Equal(t, int64(42), result.NewHighWaterMark)
	assert.Empty(t, result.TableStats)
}

func TestPullEngine_PaginatesWithVersionCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PullPageSize: 2, MaxRecordsPerTable: 100}
	engine, records, meta, remote := newTestPullEngine(t, ctrl, cfg)

	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(0), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(0)).
		Return(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 10}, nil)

	// full page [1,5], then the cursor resumes at 5 for a short page [10]
	remote.EXPECT().GetChangesSince(gomock.Any(), models.TableAccounts, testUserID, int64(0), 2).
		Return([]models.RemoteRecord{
			{ID: "acc-1", Version: 1, Data: []byte(`{}`)},
			{ID: "acc-2", Version: 5, Data: []byte(`{}`)},
		}, nil)
	remote.EXPECT().GetChangesSince(gomock.Any(), models.TableAccounts, testUserID, int64(5), 2).
		Return([]models.RemoteRecord{
			{ID: "acc-3", Version: 10, Data: []byte(`{}`)},
		}, nil)
	expectEmptyTables(remote, 0, models.TableAccounts)

	records.EXPECT().ApplyPullBatch(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, changes []models.TableChanges, advance map[models.TableName]int64) error {
			for _, table := range models.SyncOrder() {
				assert.Equal(t, int64(10), advance[table])
			}
			return nil
		})

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.HasMore)
	stats := result.TableStats[models.TableAccounts]
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Upserts)
	assert.Equal(t, 2, stats.Pages)
	assert.Equal(t, int64(10), stats.MaxVersion)
	assert.Equal(t, int64(10), result.NewHighWaterMark)
}

func TestPullEngine_SafetyLimitCapsAdvanceAndSignalsFollowUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// two full pages max per table this cycle
	cfg := config.ClientSync{PullPageSize: 2, MaxRecordsPerTable: 4}
	engine, records, meta, remote := newTestPullEngine(t, ctrl, cfg)

	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(0), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(0)).
		Return(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 100}, nil)

	remote.EXPECT().GetChangesSince(gomock.Any(), models.TableTransactions, testUserID, int64(0), 2).
		Return([]models.RemoteRecord{
			{ID: "txn-1", Version: 1, Data: []byte(`{}`)},
			{ID: "txn-2", Version: 2, Data: []byte(`{}`)},
		}, nil)
	remote.EXPECT().GetChangesSince(gomock.Any(), models.TableTransactions, testUserID, int64(2), 2).
		Return([]models.RemoteRecord{
			{ID: "txn-3", Version: 3, Data: []byte(`{}`)},
			{ID: "txn-4", Version: 4, Data: []byte(`{}`)},
		}, nil)
	expectEmptyTables(remote, 0, models.TableTransactions)

	records.EXPECT().ApplyPullBatch(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, changes []models.TableChanges, advance map[models.TableName]int64) error {
			// the capped table only advances to what it actually ingested
			assert.Equal(t, int64(4), advance[models.TableTransactions])
			// exhausted tables can jump to the authority's latest
			assert.Equal(t, int64(100), advance[models.TableAccounts])
			return nil
		})

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.HasMore)
	assert.True(t, result.TableStats[models.TableTransactions].HitSafetyLimit)
	assert.Equal(t, int64(4), result.NewHighWaterMark)
}

func TestPullEngine_StaleCheckpointAdvancesPastEmptyFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PullPageSize: 500, MaxRecordsPerTable: 5000}
	engine, records, meta, remote := newTestPullEngine(t, ctrl, cfg)

	// the check says there are changes above 50, but every fetch comes back
	// empty: the replica already holds them. The checkpoint must still move
	// to 100 so the probe goes quiet.
	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(50), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(50)).
		Return(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 100}, nil)
	expectEmptyTables(remote, 50)

	records.EXPECT().ApplyPullBatch(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ []models.TableChanges, advance map[models.TableName]int64) error {
			for _, table := range models.SyncOrder() {
				assert.Equal(t, int64(100), advance[table])
			}
			return nil
		})

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(100), result.NewHighWaterMark)
}

func TestPullEngine_FetchErrorAbortsWithoutApplying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PullPageSize: 500, MaxRecordsPerTable: 5000}
	engine, _, meta, remote := newTestPullEngine(t, ctrl, cfg)

	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(0), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(0)).
		Return(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 10}, nil)
	remote.EXPECT().GetChangesSince(gomock.Any(), models.TableAccounts, testUserID, int64(0), gomock.Any()).
		Return(nil, errors.New("connection reset"))
	meta.EXPECT().RecordError(gomock.Any(), testUserID, models.TableAccounts, gomock.Any()).Return(nil)

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestPullEngine_ApplyErrorFailsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ClientSync{PullPageSize: 500, MaxRecordsPerTable: 5000}
	engine, records, meta, remote := newTestPullEngine(t, ctrl, cfg)

	meta.EXPECT().Checkpoint(gomock.Any(), testUserID).Return(int64(0), nil)
	remote.EXPECT().CheckForChanges(gomock.Any(), testUserID, int64(0)).
		Return(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 3}, nil)
	remote.EXPECT().GetChangesSince(gomock.Any(), models.TableAccounts, testUserID, int64(0), gomock.Any()).
		Return([]models.RemoteRecord{{ID: "acc-1", Version: 3, Data: []byte(`{}`)}}, nil)
	expectEmptyTables(remote, 0, models.TableAccounts)

	records.EXPECT().ApplyPullBatch(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		Return(errors.New("database is locked"))

	result, err := engine.PullIncrementalChanges(context.Background(), testUserID)
	require.Error(t, err)
	assert.False(t, result.Success)
}
