package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavohq/centavo/models"
)

func TestMutationLockManager_SubmitWithoutLockPersistsDirectly(t *testing.T) {
	locks := NewMutationLockManager()

	rec := models.SyncRecord{ID: "acc-1", Table: models.TableAccounts}
	assert.False(t, locks.Submit(rec), "unlocked records are persisted by the caller")
}

func TestMutationLockManager_BuffersLatestEditWhileLocked(t *testing.T) {
	locks := NewMutationLockManager()
	locks.Lock(models.TableAccounts, []string{"acc-1", "acc-2"})

	first := models.SyncRecord{ID: "acc-1", Table: models.TableAccounts, Data: []byte(`{"name":"old"}`)}
	second := models.SyncRecord{ID: "acc-1", Table: models.TableAccounts, Data: []byte(`{"name":"new"}`)}

	assert.True(t, locks.Submit(first))
	assert.True(t, locks.Submit(second))
	assert.True(t, locks.Locked(models.TableAccounts, "acc-1"))

	replay := locks.Release(models.TableAccounts, []string{"acc-1", "acc-2"})
	require.Len(t, replay, 1, "only the latest buffered edit survives")
	assert.JSONEq(t, `{"name":"new"}`, string(replay[0].Data))
	assert.False(t, locks.Locked(models.TableAccounts, "acc-1"))
}

func TestMutationLockManager_LocksAreScopedToTable(t *testing.T) {
	locks := NewMutationLockManager()
	locks.Lock(models.TableAccounts, []string{"id-1"})

	// same ID in another table is unrelated
	rec := models.SyncRecord{ID: "id-1", Table: models.TableCategories}
	assert.False(t, locks.Submit(rec))

	replay := locks.Release(models.TableAccounts, []string{"id-1"})
	assert.Empty(t, replay)
}
