package deck

import (
	rand "math/rand/v2"
	"slices"
)

// Size is the number of cards in a full deck: ranks 6..A in four suits
const Size = NumSuits * int(MaxRank-MinRank+1)

// Deck represents the 36-card deck. Cards are dealt from the front and the
// deck only ever shrinks.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new unshuffled 36-card deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns up to n cards. Fewer are returned once the deck
// runs out.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}

	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Empty returns true if the deck has no cards left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// SortCards sorts cards by suit, then rank
func SortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}
