package game

import (
	"slices"

	"github.com/lox/sevens/internal/deck"
)

// Hand is a single player's cards, always kept sorted by suit then rank.
// The ordering is for display only and carries no rules meaning.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{}
	h.Add(cards...)
	return h
}

// Add inserts cards and re-sorts the hand
func (h *Hand) Add(cards ...deck.Card) {
	h.cards = append(h.cards, cards...)
	deck.SortCards(h.cards)
}

// RemoveAt removes and returns the card at index i
func (h *Hand) RemoveAt(i int) (deck.Card, bool) {
	if i < 0 || i >= len(h.cards) {
		return deck.Card{}, false
	}
	c := h.cards[i]
	h.cards = slices.Delete(h.cards, i, i+1)
	return c, true
}

// Remove removes the given card, reporting whether it was held
func (h *Hand) Remove(c deck.Card) bool {
	i := h.Index(c)
	if i < 0 {
		return false
	}
	h.RemoveAt(i)
	return true
}

// Index returns the position of c in the hand, or -1
func (h *Hand) Index(c deck.Card) int {
	return slices.Index(h.cards, c)
}

// Contains reports whether the hand holds c
func (h *Hand) Contains(c deck.Card) bool {
	return h.Index(c) >= 0
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Empty returns true once every card has been played
func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the hand in display order
func (h *Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// LegalMoves returns the cards that can be placed on the table, in hand order
func (h *Hand) LegalMoves(t *Table) []deck.Card {
	var moves []deck.Card
	for _, c := range h.cards {
		if t.CanPlace(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// LegalIndices is LegalMoves expressed as hand positions
func (h *Hand) LegalIndices(t *Table) []int {
	var idx []int
	for i, c := range h.cards {
		if t.CanPlace(c) {
			idx = append(idx, i)
		}
	}
	return idx
}
