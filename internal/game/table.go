package game

import (
	"errors"
	"fmt"

	"github.com/lox/sevens/internal/deck"
)

// ErrIllegalPlacement is returned when a card is not adjacent to its suit's run
var ErrIllegalPlacement = errors.New("illegal placement")

// Interval is the inclusive run of ranks played for one suit
type Interval struct {
	Min deck.Rank
	Max deck.Rank
}

// Len returns the number of cards in the run
func (iv Interval) Len() int {
	return int(iv.Max-iv.Min) + 1
}

// Table tracks, per suit, the contiguous run of ranks played so far. A suit
// is absent until its 7 is played; afterwards Min <= 7 <= Max and the run
// only grows.
type Table struct {
	runs [deck.NumSuits]Interval
	open [deck.NumSuits]bool
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{}
}

// Open returns the run for a suit and whether the suit has been opened
func (t *Table) Open(s deck.Suit) (Interval, bool) {
	if !s.Valid() || !t.open[s] {
		return Interval{}, false
	}
	return t.runs[s], true
}

// IsOpen reports whether the suit's 7 has been played
func (t *Table) IsOpen(s deck.Suit) bool {
	_, ok := t.Open(s)
	return ok
}

// CanPlace reports whether c may be placed: a 7 of an unopened suit, or a
// card one below or one above its suit's run.
func (t *Table) CanPlace(c deck.Card) bool {
	if !c.Valid() {
		return false
	}
	iv, ok := t.Open(c.Suit)
	if !ok {
		return c.Rank == deck.Seven
	}
	return c.Rank == iv.Min-1 || c.Rank == iv.Max+1
}

// Place puts c on the table, widening exactly one bound of its suit's run.
// The table is left unchanged when the placement is illegal.
func (t *Table) Place(c deck.Card) error {
	if !t.CanPlace(c) {
		return fmt.Errorf("%w: %s", ErrIllegalPlacement, c)
	}

	iv, ok := t.Open(c.Suit)
	switch {
	case !ok:
		t.runs[c.Suit] = Interval{Min: c.Rank, Max: c.Rank}
		t.open[c.Suit] = true
	case c.Rank < iv.Min:
		t.runs[c.Suit].Min = c.Rank
	default:
		t.runs[c.Suit].Max = c.Rank
	}
	return nil
}

// Cards returns the run for a suit in ascending rank order
func (t *Table) Cards(s deck.Suit) []deck.Card {
	iv, ok := t.Open(s)
	if !ok {
		return nil
	}
	cards := make([]deck.Card, 0, iv.Len())
	for r := iv.Min; r <= iv.Max; r++ {
		cards = append(cards, deck.NewCard(r, s))
	}
	return cards
}

// Len returns the total number of cards on the table
func (t *Table) Len() int {
	n := 0
	for _, s := range deck.Suits {
		if iv, ok := t.Open(s); ok {
			n += iv.Len()
		}
	}
	return n
}

// Empty returns true before any 7 has been played
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Runs returns a snapshot of every opened suit's run
func (t *Table) Runs() map[deck.Suit]Interval {
	runs := make(map[deck.Suit]Interval, deck.NumSuits)
	for _, s := range deck.Suits {
		if iv, ok := t.Open(s); ok {
			runs[s] = iv
		}
	}
	return runs
}
