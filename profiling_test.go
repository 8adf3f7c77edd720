package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPGORecordingWritesProfileAndStopsOnce(t *testing.T) {
	// Not parallel: the process-wide CPU profiler allows one capture at a time.
	path := filepath.Join(t.TempDir(), "default.pgo")
	stop, err := startDefaultPGORecording(path, time.Hour)
	require.NoError(t, err)

	stop()
	stop() // second call is a no-op

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, info.Size(), int64(0))
}

func TestPGORecordingRejectsBadPath(t *testing.T) {
	_, err := startDefaultPGORecording(filepath.Join(t.TempDir(), "missing", "default.pgo"), time.Hour)
	require.Error(t, err)
}
