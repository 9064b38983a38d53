package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp(time.Date(2026, 8, 28, 9, 30, 15, 7000, time.UTC))
	assert.Equal(t, "2026-08-28T09:30:15.000007Z", ts)
}

func TestTimestamp_FixedWidthSortsInTimeOrder(t *testing.T) {
	base := time.Date(2026, 8, 28, 9, 30, 15, 0, time.UTC)
	stamps := []string{
		Timestamp(base),
		Timestamp(base.Add(10 * time.Microsecond)),
		Timestamp(base.Add(100 * time.Millisecond)),
		Timestamp(base.Add(2 * time.Second)),
	}

	sorted := append([]string(nil), stamps...)
	sort.Strings(sorted)
	assert.Equal(t, stamps, sorted, "lexicographic order must equal time order")
}

func TestAppend_OneLinePerEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "events.jsonl")
	l := &Log{Path: path}

	for i := 0; i < 3; i++ {
		err := l.Append(Event{
			Timestamp: Timestamp(time.Now()),
			OverallOK: i%2 == 0,
			Status:    map[string]bool{"service-active": true},
		})
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "line %q must parse independently", line)
		assert.NotEmpty(t, ev.Timestamp)
	}
}

func TestAppend_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "events.jsonl")
	l := &Log{Path: path}

	require.NoError(t, l.Append(Event{Timestamp: Timestamp(time.Now())}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestAppend_StorageFaultPropagates(t *testing.T) {
	dir := t.TempDir()

	// Occupy the parent path with a regular file so MkdirAll fails.
	blocker := filepath.Join(dir, "logs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	l := &Log{Path: filepath.Join(blocker, "events.jsonl")}
	err := l.Append(Event{Timestamp: Timestamp(time.Now())})
	require.Error(t, err)
}

func TestAppend_FaultOnOneWriteDoesNotCorruptPriorLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	l := &Log{Path: path}

	require.NoError(t, l.Append(Event{Timestamp: "2026-08-28T00:00:00.000000Z", OverallOK: true}))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Simulate a torn write from a crashed later run.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"timestamp":"2026-08-28T00:0`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(after), string(before)), "prior line must be untouched")

	events, err := Tail(path, 0)
	require.NoError(t, err)
	require.Len(t, events, 1, "torn line must be skipped, prior line must parse")
	assert.True(t, events[0].OverallOK)
}
