package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/mock"
	"github.com/centavohq/centavo/internal/store"
	"github.com/centavohq/centavo/models"
)

func newTestRecordService(
	t *testing.T,
	ctrl *gomock.Controller,
) (RecordService, *mock.MockLocalRecordRepository, *MutationLockManager) {
	t.Helper()

	records := mock.NewMockLocalRecordRepository(ctrl)
	locks := NewMutationLockManager()
	return NewRecordService(records, locks, logger.Nop()), records, locks
}

func TestRecordService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records, _ := newTestRecordService(t, ctrl)

	records.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.SyncRecord) error {
			assert.Equal(t, models.StatusPending, rec.SyncStatus)
			assert.Zero(t, rec.Version, "never-synced records carry version zero")
			assert.Nil(t, rec.DeletedAt)
			return nil
		})

	rec, err := svc.Create(context.Background(), testUserID, models.TableAccounts, []byte(`{"name":"Checking"}`))
	require.NoError(t, err)

	_, parseErr := uuid.Parse(rec.ID)
	assert.NoError(t, parseErr, "IDs are client-generated UUIDs")
}

func TestRecordService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRecordService(t, ctrl)

	_, err := svc.Create(context.Background(), testUserID, "budgets", []byte(`{}`))
	assert.ErrorIs(t, err, store.ErrUnknownTable)

	_, err = svc.Create(context.Background(), testUserID, models.TableAccounts, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestRecordService_Update_MarksPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records, _ := newTestRecordService(t, ctrl)

	existing := models.SyncRecord{
		ID: "acc-1", UserID: testUserID, Table: models.TableAccounts,
		Version: 4, SyncStatus: models.StatusSynced, Data: []byte(`{"name":"old"}`),
	}
	records.EXPECT().Get(gomock.Any(), testUserID, models.TableAccounts, "acc-1").Return(existing, nil)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.SyncRecord) error {
			assert.Equal(t, models.StatusPending, rec.SyncStatus)
			assert.Equal(t, int64(4), rec.Version, "base version is preserved for the push")
			assert.JSONEq(t, `{"name":"new"}`, string(rec.Data))
			return nil
		})

	_, err := svc.Update(context.Background(), testUserID, models.TableAccounts, "acc-1", []byte(`{"name":"new"}`))
	assert.NoError(t, err)
}

func TestRecordService_Update_Rejections(t *testing.T) {
	deletedAt := time.Now().UTC()

	tests := []struct {
		name     string
		existing models.SyncRecord
		wantErr  error
	}{
		{
			name: "conflicted record must be resolved first",
			existing: models.SyncRecord{
				ID: "acc-1", Table: models.TableAccounts, SyncStatus: models.StatusConflict,
			},
			wantErr: ErrRecordConflicted,
		},
		{
			name: "tombstoned record cannot be edited",
			existing: models.SyncRecord{
				ID: "acc-1", Table: models.TableAccounts,
				SyncStatus: models.StatusPending, DeletedAt: &deletedAt,
			},
			wantErr: ErrRecordDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, records, _ := newTestRecordService(t, ctrl)
			records.EXPECT().Get(gomock.Any(), testUserID, models.TableAccounts, "acc-1").
				Return(tt.existing, nil)

			_, err := svc.Update(context.Background(), testUserID, models.TableAccounts, "acc-1", []byte(`{}`))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordService_SoftDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records, _ := newTestRecordService(t, ctrl)

	existing := models.SyncRecord{
		ID: "txn-1", UserID: testUserID, Table: models.TableTransactions,
		Version: 2, SyncStatus: models.StatusSynced, Data: []byte(`{}`),
	}
	records.EXPECT().Get(gomock.Any(), testUserID, models.TableTransactions, "txn-1").Return(existing, nil)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.SyncRecord) error {
			assert.True(t, rec.IsTombstone())
			assert.Equal(t, models.StatusPending, rec.SyncStatus)
			return nil
		})

	err := svc.SoftDelete(context.Background(), testUserID, models.TableTransactions, "txn-1")
	assert.NoError(t, err)
}

func TestRecordService_SoftDelete_AlreadyTombstonedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records, _ := newTestRecordService(t, ctrl)

	deletedAt := time.Now().UTC()
	existing := models.SyncRecord{
		ID: "txn-1", UserID: testUserID, Table: models.TableTransactions,
		SyncStatus: models.StatusPending, DeletedAt: &deletedAt,
	}
	records.EXPECT().Get(gomock.Any(), testUserID, models.TableTransactions, "txn-1").Return(existing, nil)

	err := svc.SoftDelete(context.Background(), testUserID, models.TableTransactions, "txn-1")
	assert.NoError(t, err)
}

func TestRecordService_EditDuringPushIsBuffered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records, locks := newTestRecordService(t, ctrl)

	existing := models.SyncRecord{
		ID: "acc-1", UserID: testUserID, Table: models.TableAccounts,
		Version: 1, SyncStatus: models.StatusPending, Data: []byte(`{"name":"old"}`),
	}
	records.EXPECT().Get(gomock.Any(), testUserID, models.TableAccounts, "acc-1").Return(existing, nil)
	// no Save expectation: the edit must be buffered, not written

	locks.Lock(models.TableAccounts, []string{"acc-1"})

	_, err := svc.Update(context.Background(), testUserID, models.TableAccounts, "acc-1", []byte(`{"name":"new"}`))
	require.NoError(t, err)

	replay := locks.Release(models.TableAccounts, []string{"acc-1"})
	require.Len(t, replay, 1)
	assert.JSONEq(t, `{"name":"new"}`, string(replay[0].Data))
}
