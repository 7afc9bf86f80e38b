package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/fileutil"
	"github.com/lox/sevens/internal/simulator"
	"github.com/lox/sevens/internal/statistics"
)

type SimulateCmd struct {
	Games     int           `short:"g" default:"1000" help:"Number of games to simulate"`
	Players   int           `short:"p" default:"2" help:"Players per game (1-36)"`
	Workers   int           `short:"w" default:"0" help:"Games played in parallel (0 for GOMAXPROCS)"`
	Timeout   time.Duration `default:"30s" help:"Timeout per game"`
	NoColor   bool          `help:"Disable colored output"`
	StatsFile string        `help:"Write the summary as JSON to this file"`
	LogLevel  string        `default:"warn" help:"Log level: debug, info, warn, error"`
}

func (c *SimulateCmd) Run() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "SIMULATE",
		Level:           level,
	})

	ctx := setupSignalHandler(logger)

	sim := simulator.New(simulator.Config{
		Games:   c.Games,
		Players: c.Players,
		Workers: c.Workers,
		Timeout: c.Timeout,
		Logger:  logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	if c.StatsFile != "" {
		if err := writeStats(c.StatsFile, stats); err != nil {
			return err
		}
		logger.Info("Stats written to file", "file", c.StatsFile)
	}

	simulator.PrintSummary(os.Stdout, stats, !c.NoColor)
	fmt.Printf("\nCompleted in %v (%.0f games/sec)\n",
		time.Since(start).Round(time.Millisecond), float64(stats.Games)/time.Since(start).Seconds())
	return nil
}

// writeStats saves the JSON report atomically so readers never see a partial file
func writeStats(filename string, stats *statistics.Statistics) error {
	err := fileutil.WriteAtomic(filename, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats.Report())
	})
	if err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}
