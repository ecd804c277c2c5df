package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/models"
)

func newTestAuthority(t *testing.T, handler http.HandlerFunc) RemoteAuthority {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPRemoteAuthority(config.ClientRemote{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
		Token:          "test-token",
	}, logger.Nop())
}

func TestHTTPRemoteAuthority_CheckForChanges(t *testing.T) {
	authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/check", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("since"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.CheckChangesResponse{HasChanges: true, LatestServerVersion: 99})
	})

	resp, err := authority.CheckForChanges(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.True(t, resp.HasChanges)
	assert.Equal(t, int64(99), resp.LatestServerVersion)
}

func TestHTTPRemoteAuthority_GetChangesSince(t *testing.T) {
	authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/transactions/changes", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("since"))
		assert.Equal(t, "500", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(models.ChangesPage{Records: []models.RemoteRecord{
			{ID: "txn-1", Version: 11, Data: []byte(`{"amount_cents":-4250}`)},
		}})
	})

	records, err := authority.GetChangesSince(context.Background(), models.TableTransactions, 7, 10, 500)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "txn-1", records[0].ID)
	assert.Equal(t, int64(11), records[0].Version)
}

func TestHTTPRemoteAuthority_GetChangesSince_UnknownTable(t *testing.T) {
	authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unknown table")
	})

	_, err := authority.GetChangesSince(context.Background(), "budgets", 7, 0, 500)
	assert.Error(t, err)
}

func TestHTTPRemoteAuthority_BatchUpsert(t *testing.T) {
	authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/inbox/batch", r.URL.Path)

		var req models.BatchUpsertRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Records, 2)

		_ = json.NewEncoder(w).Encode(models.BatchUpsertResponse{
			SyncedIDs:        []string{"in-1"},
			SyncedVersions:   map[string]int64{"in-1": 5},
			ConflictIDs:      []string{"in-2"},
			ConflictVersions: map[string]int64{"in-2": 9},
		})
	})

	resp, err := authority.BatchUpsert(context.Background(), models.TableInbox, 7, []models.PushRecord{
		{ID: "in-1", Version: 0, Data: []byte(`{}`)},
		{ID: "in-2", Version: 3, Data: []byte(`{}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"in-1"}, resp.SyncedIDs)
	assert.Equal(t, int64(5), resp.SyncedVersions["in-1"])
	assert.Equal(t, int64(9), resp.ConflictVersions["in-2"])
}

func TestHTTPRemoteAuthority_DeleteWithVersion(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       models.DeleteOutcome
		wantErr    bool
		wantErrVal string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   models.DeleteOutcome{Success: true},
		},
		{
			name:       "conflict outcome decoded from 409 body",
			status:     http.StatusConflict,
			body:       models.DeleteOutcome{Error: models.DeleteErrVersionConflict, CurrentVersion: 12},
			wantErrVal: models.DeleteErrVersionConflict,
		},
		{
			name:       "not found outcome",
			status:     http.StatusOK,
			body:       models.DeleteOutcome{Error: models.DeleteErrNotFound},
			wantErrVal: models.DeleteErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/sync/accounts/acc-1", r.URL.Path)
				assert.Equal(t, "3", r.URL.Query().Get("version"))

				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			})

			outcome, err := authority.DeleteWithVersion(context.Background(), models.TableAccounts, 7, "acc-1", 3)
			require.NoError(t, err)
			assert.Equal(t, tt.body.Success, outcome.Success)
			assert.Equal(t, tt.wantErrVal, outcome.Error)
			assert.Equal(t, tt.body.CurrentVersion, outcome.CurrentVersion)
		})
	}
}

func TestHTTPRemoteAuthority_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "401 maps to unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "409 maps to version conflict", status: http.StatusConflict, wantErr: ErrVersionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			})

			_, err := authority.CheckForChanges(context.Background(), 7, 0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPRemoteAuthority_ServerErrorIsOpaque(t *testing.T) {
	authority := newTestAuthority(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := authority.CheckForChanges(context.Background(), 7, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrVersionConflict)
	assert.Contains(t, err.Error(), "500")
}

func TestUserIDFromToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "7",
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	userID, err := UserIDFromToken(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	_, err = UserIDFromToken("not-a-token")
	assert.Error(t, err)
}
