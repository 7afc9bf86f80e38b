package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sevens/internal/simulator"
	"github.com/lox/sevens/internal/statistics"
)

func TestWriteStats(t *testing.T) {
	stats, err := simulator.RunSimulation(context.Background(), 5, 2, 3, quietLogger())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, writeStats(path, stats))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report statistics.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 5, report.Games)
	assert.Len(t, report.WinsBySeat, 2)
}

func TestSimulateCmdInvalidLogLevel(t *testing.T) {
	cmd := &SimulateCmd{Games: 1, Players: 2, LogLevel: "loud"}
	assert.ErrorContains(t, cmd.Run(), "invalid log level")
}
