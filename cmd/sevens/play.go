package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/bot"
	"github.com/lox/sevens/internal/config"
	"github.com/lox/sevens/internal/display"
	"github.com/lox/sevens/internal/game"
	"github.com/lox/sevens/internal/randutil"
)

type PlayCmd struct {
	Config   string `short:"c" type:"path" help:"HCL config file with log settings and seats"`
	Mode     int    `short:"m" default:"0" help:"1 to play the computer, 2 for two players, 0 to ask"`
	Name     string `short:"n" help:"Name of the first human player"`
	NoColor  bool   `help:"Disable colored output"`
	LogFile  string `help:"Log file (default sevens.log)"`
	LogLevel string `help:"Log level: debug, info, warn, error"`
}

func (c *PlayCmd) Run() error {
	if c.Mode < int(display.ModeAsk) || c.Mode > int(display.ModeTwoPlayers) {
		return fmt.Errorf("%w: %d", display.ErrInvalidMode, c.Mode)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "SEVENS",
		Level:           cfg.Level(),
	})

	return play(context.Background(), os.Stdin, os.Stdout, cfg, display.Mode(c.Mode), c.Name, logger)
}

// loadConfig reads the config file, if any, and applies flag overrides
func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.NoColor {
		off := false
		cfg.Color = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// play seats the players, deals and runs one interactive game
func play(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, mode display.Mode, name string, logger *log.Logger) error {
	renderer := display.NewRenderer(out, cfg.ColorEnabled())
	prompter := display.NewPrompter(in, renderer)
	renderer.Title()

	seats := cfg.Seats
	if len(seats) == 0 {
		var err error
		if seats, err = prompter.Seats(mode, name); err != nil {
			return err
		}
	}

	names := make([]string, len(seats))
	agents := make([]game.Agent, len(seats))
	for i, seat := range seats {
		names[i] = seat.Name
		if seat.IsHuman() {
			agents[i] = display.NewHumanAgent(prompter, renderer, logger)
		} else {
			agents[i] = bot.NewRandBot(randutil.NewEntropy(), logger)
		}
	}

	bus := game.NewEventBus()
	bus.Subscribe(display.NewEventPrinter(renderer))

	g, err := game.NewGame(len(seats),
		game.WithPlayerNames(names...),
		game.WithLogger(logger),
		game.WithEventBus(bus),
	)
	if err != nil {
		return err
	}
	logger.Info("Starting game", "game", g.ID(), "players", names)

	if err := g.Deal(); err != nil {
		return err
	}

	status, err := display.NewSession(g, agents, renderer, logger).Play(ctx)
	if err != nil {
		return err
	}
	logger.Info("Game finished", "game", g.ID(), "state", status.State, "winner", g.Name(status.Winner))
	return nil
}
