package game

import "github.com/lox/sevens/internal/deck"

// Decision is a strategy's answer for one turn: either a card to play or a pass
type Decision struct {
	Pass      bool
	Card      deck.Card
	Reasoning string // Human-readable explanation
}

// PlayCard returns a decision to play c
func PlayCard(c deck.Card, reasoning string) Decision {
	return Decision{Card: c, Reasoning: reasoning}
}

// PassTurn returns a decision to pass
func PassTurn(reasoning string) Decision {
	return Decision{Pass: true, Reasoning: reasoning}
}

// View is the read-only state handed to a strategy. Only the acting player's
// own cards are included.
type View struct {
	GameID    string
	Seat      int
	Name      string
	Hand      []deck.Card
	Table     map[deck.Suit]Interval
	HandSizes []int
	Passes    []int
	Turn      int
}

// Agent is anything (human or computer) that picks moves for a seat.
// Agents receive an immutable view and the legal moves in hand order; the
// engine validates and applies the decision.
type Agent interface {
	ChooseMove(view View, legal []deck.Card) Decision
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(view View, legal []deck.Card) Decision

// ChooseMove calls f
func (f AgentFunc) ChooseMove(view View, legal []deck.Card) Decision {
	return f(view, legal)
}
