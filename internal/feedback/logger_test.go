package feedback

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesNDJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.ndjson")
	logger, err := NewLogger(path, 16, slog.Default())
	require.NoError(t, err)

	logger.Log(NewEvent("helpful", "msg-1", 4))
	logger.Log(NewEvent("not helpful", "msg-2", 6))
	require.NoError(t, logger.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, events, 2)
	assert.Equal(t, "helpful", events[0].Feedback)
	assert.Equal(t, "msg-1", events[0].MsgID)
	assert.Equal(t, 4, events[0].SessionTurns)

	// ISO-8601 UTC timestamp.
	ts, err := time.Parse(time.RFC3339, events[0].Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestLoggerAppendsAcrossReopens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.ndjson")

	first, err := NewLogger(path, 4, slog.Default())
	require.NoError(t, err)
	first.Log(NewEvent("good", "m1", 2))
	require.NoError(t, first.Close())

	second, err := NewLogger(path, 4, slog.Default())
	require.NoError(t, err)
	second.Log(NewEvent("bad", "m2", 2))
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "m1")
	assert.Contains(t, string(data), "m2")
}
