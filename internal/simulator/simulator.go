package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/lox/sevens/internal/bot"
	"github.com/lox/sevens/internal/game"
	"github.com/lox/sevens/internal/randutil"
	"github.com/lox/sevens/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players int
	Workers int           // Games played at once, defaults to GOMAXPROCS
	Seed    int64         // Zero seeds from system entropy
	Timeout time.Duration // Per game, zero for none
	Logger  *log.Logger
}

// Simulator plays computer-only games in parallel
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Each game is
// owned by a single goroutine; results are only combined after all finish.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.Players < 1 || s.config.Players > game.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidPlayerCount, s.config.Players)
	}

	master := randutil.NewEntropy()
	if s.config.Seed != 0 {
		master = randutil.New(s.config.Seed)
	}
	seeds := make([]int64, s.config.Games)
	for i := range seeds {
		seeds[i] = master.Int64()
	}

	s.config.Logger.Info("Starting simulation", "games", s.config.Games, "players", s.config.Players, "workers", s.config.Workers)
	start := time.Now()

	results := make([]statistics.GameResult, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i, seed := range seeds {
		g.Go(func() error {
			result, err := s.playGame(ctx, seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New(s.config.Players)
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete", "games", stats.Games, "stalemates", stats.Stalemates, "duration", time.Since(start))
	return stats, nil
}

// playGame deals and plays one game between random bots
func (s *Simulator) playGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	rng := randutil.New(seed)
	g, err := game.NewGame(s.config.Players,
		game.WithRand(rng),
		game.WithLogger(s.config.Logger),
	)
	if err != nil {
		return statistics.GameResult{}, err
	}
	if err := g.Deal(); err != nil {
		return statistics.GameResult{}, err
	}

	agents := make([]game.Agent, s.config.Players)
	for i := range agents {
		agents[i] = bot.NewRandBot(randutil.New(rng.Int64()), s.config.Logger)
	}

	status, err := g.Run(ctx, agents)
	if err != nil {
		return statistics.GameResult{}, err
	}

	return statistics.GameResult{
		Players:     s.config.Players,
		State:       status.State,
		Winner:      status.Winner,
		Turns:       g.Turn(),
		WinnerCards: g.HandSize(status.Winner),
	}, nil
}

// RunSimulation is a convenience function for running a simulation
func RunSimulation(ctx context.Context, games, players int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Games:   games,
		Players: players,
		Seed:    seed,
		Timeout: 30 * time.Second,
		Logger:  logger,
	}).Run(ctx)
}

// PrintSummary writes a summary of simulation results to w
func PrintSummary(w io.Writer, stats *statistics.Statistics, color bool) {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	heading := r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	label := r.NewStyle().Foreground(lipgloss.Color("#626262")).Width(14)
	value := r.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))

	row := func(name, format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", label.Render(name), value.Render(fmt.Sprintf(format, args...)))
	}

	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n%s\n", heading.Render("=== SIMULATION RESULTS ==="))
	row("Games", "%d", stats.Games)
	row("Outright wins", "%d", stats.Outright)
	row("Stalemates", "%d (%.1f%%)", stats.Stalemates, stats.StalemateRate()*100)
	if stats.Stalemates > 0 {
		row("Cards left", "%.2f per stalemate winner", stats.MeanWinnerCards())
	}

	fmt.Fprintf(w, "\n%s\n", heading.Render("=== GAME LENGTH (turns) ==="))
	row("Mean", "%.2f", stats.Mean())
	row("Median", "%.1f", stats.Median())
	row("Std Dev", "%.2f", stats.StdDev())
	row("95% CI", "[%.2f, %.2f]", low, high)
	row("Percentiles", "P5=%.0f P25=%.0f P75=%.0f P95=%.0f",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n%s\n", heading.Render("=== WINS BY SEAT ==="))
	for seat, wins := range stats.Wins {
		row(fmt.Sprintf("Seat %d", seat+1), "%d (%.1f%%)", wins, stats.WinRate(seat)*100)
	}
}
