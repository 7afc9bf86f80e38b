package game

import "fmt"

// State is the phase of a game
type State int

const (
	InProgress State = iota
	Won
	Stalemate
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Status is the game's state plus, once terminal, the winning seat
type Status struct {
	State  State
	Winner int // -1 while in progress
}

// Terminal returns true once the game has a winner
func (s Status) Terminal() bool {
	return s.State != InProgress
}

func (s Status) String() string {
	if !s.Terminal() {
		return s.State.String()
	}
	return fmt.Sprintf("%s (winner %d)", s.State, s.Winner)
}

var inProgress = Status{State: InProgress, Winner: -1}
