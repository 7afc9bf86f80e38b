package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/sevens/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Players     int
	State       game.State // Won or Stalemate
	Winner      int        // Winning seat
	Turns       int        // Turns taken, passes included
	WinnerCards int        // Cards the winner still held (0 unless stalemate)
}

// Statistics aggregates simulated games: wins per seat, how games ended and
// how long they lasted in turns.
type Statistics struct {
	Games      int
	Wins       []int // Wins per seat
	Outright   int   // Games ended by an empty hand
	Stalemates int   // Games ended with every player passing

	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Turns     []float64 // Every game's length for median/percentile calculation

	SumWinnerCards int // Cards held by stalemate winners
}

// New creates statistics for a table of the given size
func New(players int) *Statistics {
	return &Statistics{Wins: make([]int, players)}
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	if result.Players > len(s.Wins) {
		s.Wins = append(s.Wins, make([]int, result.Players-len(s.Wins))...)
	}

	s.Games++
	if result.Winner >= 0 && result.Winner < len(s.Wins) {
		s.Wins[result.Winner]++
	}

	switch result.State {
	case game.Won:
		s.Outright++
	case game.Stalemate:
		s.Stalemates++
		s.SumWinnerCards += result.WinnerCards
	}

	turns := float64(result.Turns)
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, turns)
}

// Mean returns the mean game length in turns
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean game length
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Turns)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of games won from a seat
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.Wins) {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Games)
}

// StalemateRate returns the share of games that ended in a stalemate
func (s *Statistics) StalemateRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Stalemates) / float64(s.Games)
}

// MeanWinnerCards returns how many cards a stalemate winner held on average
func (s *Statistics) MeanWinnerCards() float64 {
	if s.Stalemates == 0 {
		return 0
	}
	return float64(s.SumWinnerCards) / float64(s.Stalemates)
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Turns) != s.Games {
		return fmt.Errorf("turns array length (%d) does not match games count (%d)", len(s.Turns), s.Games)
	}
	if s.Outright+s.Stalemates != s.Games {
		return fmt.Errorf("endings (%d outright + %d stalemates) do not match games count (%d)",
			s.Outright, s.Stalemates, s.Games)
	}

	totalWins := 0
	for _, w := range s.Wins {
		totalWins += w
	}
	if totalWins != s.Games {
		return fmt.Errorf("seat wins total (%d) does not match games count (%d)", totalWins, s.Games)
	}
	return nil
}

// Report is the JSON form of a simulation summary
type Report struct {
	Games           int         `json:"games"`
	Outright        int         `json:"outright"`
	Stalemates      int         `json:"stalemates"`
	StalemateRate   float64     `json:"stalemate_rate"`
	MeanWinnerCards float64     `json:"mean_winner_cards"`
	Turns           TurnSummary `json:"turns"`
	WinsBySeat      []int       `json:"wins_by_seat"`
}

// TurnSummary describes the distribution of game lengths
type TurnSummary struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	CI95Low  float64 `json:"ci95_low"`
	CI95High float64 `json:"ci95_high"`
	P5       float64 `json:"p5"`
	P95      float64 `json:"p95"`
}

// Report summarises the statistics for export
func (s *Statistics) Report() Report {
	low, high := s.ConfidenceInterval95()
	return Report{
		Games:           s.Games,
		Outright:        s.Outright,
		Stalemates:      s.Stalemates,
		StalemateRate:   s.StalemateRate(),
		MeanWinnerCards: s.MeanWinnerCards(),
		Turns: TurnSummary{
			Mean:     s.Mean(),
			Median:   s.Median(),
			StdDev:   s.StdDev(),
			CI95Low:  low,
			CI95High: high,
			P5:       s.Percentile(0.05),
			P95:      s.Percentile(0.95),
		},
		WinsBySeat: slices.Clone(s.Wins),
	}
}
