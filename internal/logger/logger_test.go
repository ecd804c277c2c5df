package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntriesCarryRoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("centavo-devserver")
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	entry := logEntry(t, &buf)
	assert.Equal(t, "centavo-devserver", entry["role"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_CallerFieldIsFunc(t *testing.T) {
	// sync engine call sites filter on the "func" field
	NewLogger("centavo-client")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewClientLogger_EntriesCarryRole(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("centavo-client")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("sync cycle completed")

	entry := logEntry(t, &buf)
	assert.Equal(t, "centavo-client", entry["role"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("never written")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsRole(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("sync-worker")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.Output(&buf)
	child.Info().Msg("cycle scheduled")

	entry := logEntry(t, &buf)
	assert.Equal(t, "sync-worker", entry["role"])
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("centavo-client")
	l.Logger = l.Output(&buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("pull cycle finished")

	entry := logEntry(t, &buf)
	assert.Equal(t, "centavo-client", entry["role"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("centavo-devserver")
	l.Logger = l.Output(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/check", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("handled")

	entry := logEntry(t, &buf)
	assert.Equal(t, "centavo-devserver", entry["role"])
}
