package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sevens/internal/config"
	"github.com/lox/sevens/internal/display"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestPlayComputerSeats(t *testing.T) {
	cfg := config.Default()
	cfg.Seats = []config.Seat{
		{Name: "North", Kind: config.KindComputer},
		{Name: "South", Kind: config.KindComputer},
		{Name: "East", Kind: config.KindComputer},
	}

	var out bytes.Buffer
	err := play(context.Background(), strings.NewReader(""), &out, cfg, display.ModeAsk, "", quietLogger())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "SEVENS")
	assert.Contains(t, text, "Game started: 3 players")
	assert.Contains(t, text, "Thanks for playing!")
}

func TestPlayInvalidMenuChoice(t *testing.T) {
	err := play(context.Background(), strings.NewReader("9\n"), io.Discard, config.Default(), display.ModeAsk, "", quietLogger())
	assert.ErrorIs(t, err, display.ErrInvalidMode)
}

func TestPlayHumanWithoutInput(t *testing.T) {
	// With stdin closed every human turn passes, so the game still ends
	var out bytes.Buffer
	err := play(context.Background(), strings.NewReader(""), &out, config.Default(), display.ModeTwoPlayers, "Alice", quietLogger())
	assert.ErrorIs(t, err, io.EOF, "second name cannot be read")

	cfg := config.Default()
	cfg.Seats = []config.Seat{{Name: "Alice", Kind: config.KindHuman}, {Name: "Bob", Kind: config.KindHuman}}
	out.Reset()
	require.NoError(t, play(context.Background(), strings.NewReader(""), &out, cfg, display.ModeAsk, "", quietLogger()))
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestPlayCmdInvalidMode(t *testing.T) {
	cmd := &PlayCmd{Mode: 3}
	assert.ErrorIs(t, cmd.Run(), display.ErrInvalidMode)
}

func TestPlayCmdLoadConfig(t *testing.T) {
	cmd := &PlayCmd{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		LogFile:  "other.log",
		LogLevel: "debug",
		NoColor:  true,
	}
	cfg, err := cmd.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "other.log", cfg.LogFile)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.False(t, cfg.ColorEnabled())

	cmd = &PlayCmd{LogLevel: "shouty"}
	_, err = cmd.loadConfig()
	assert.ErrorContains(t, err, "invalid log level")
}
