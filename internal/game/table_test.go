package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sevens/internal/deck"
)

func card(s string) deck.Card {
	c, err := deck.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestTablePlace(t *testing.T) {
	t.Parallel()

	t.Run("seven opens a suit", func(t *testing.T) {
		tbl := NewTable()
		assert.True(t, tbl.Empty())
		require.NoError(t, tbl.Place(card("7h")))

		iv, ok := tbl.Open(deck.Hearts)
		require.True(t, ok)
		assert.Equal(t, Interval{Min: deck.Seven, Max: deck.Seven}, iv)
		assert.False(t, tbl.IsOpen(deck.Spades))
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("extension moves exactly one bound", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Place(card("7c")))

		require.NoError(t, tbl.Place(card("8c")))
		iv, _ := tbl.Open(deck.Clubs)
		assert.Equal(t, Interval{Min: deck.Seven, Max: deck.Eight}, iv)

		require.NoError(t, tbl.Place(card("6c")))
		iv, _ = tbl.Open(deck.Clubs)
		assert.Equal(t, Interval{Min: deck.Six, Max: deck.Eight}, iv)

		assert.Equal(t, deck.MustParseCards("6c 7c 8c"), tbl.Cards(deck.Clubs))
	})

	t.Run("illegal placements leave the table unchanged", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Place(card("7s")))
		require.NoError(t, tbl.Place(card("8s")))

		for _, s := range []string{"8h", "7s", "8s", "10s", "6h", "As"} {
			err := tbl.Place(card(s))
			assert.ErrorIs(t, err, ErrIllegalPlacement, s)
		}
		assert.ErrorIs(t, tbl.Place(deck.Card{Rank: 15, Suit: deck.Spades}), ErrIllegalPlacement)

		assert.Equal(t, map[deck.Suit]Interval{deck.Spades: {Min: deck.Seven, Max: deck.Eight}}, tbl.Runs())
	})

	t.Run("runs stop at six and ace", func(t *testing.T) {
		tbl := NewTable()
		for _, s := range []string{"7d", "6d", "8d", "9d", "10d", "Jd", "Qd", "Kd", "Ad"} {
			require.NoError(t, tbl.Place(card(s)))
		}
		for r := deck.MinRank; r <= deck.MaxRank; r++ {
			assert.False(t, tbl.CanPlace(deck.NewCard(r, deck.Diamonds)))
		}
		assert.Len(t, tbl.Cards(deck.Diamonds), 9)
	})
}

func TestTableCanPlace(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Place(card("7h")))
	require.NoError(t, tbl.Place(card("8h")))
	require.NoError(t, tbl.Place(card("9h")))

	tests := []struct {
		card string
		want bool
	}{
		{"6h", true},
		{"10h", true},
		{"7h", false},
		{"8h", false},
		{"Jh", false},
		{"7d", true},
		{"7c", true},
		{"6d", false},
		{"8s", false},
	}
	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.CanPlace(card(tt.card)))
		})
	}
}

func TestHandLegalMoves(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Place(card("7d")))

	h := NewHand(deck.MustParseCards("As 8d 7h 6d 9d 7d")...)
	assert.Equal(t, deck.MustParseCards("7h 6d 7d 8d 9d As"), h.Cards(), "hand is sorted by suit then rank")

	// 7d is already on the table in this contrived hand, so only 7h, 6d and 8d qualify
	assert.Equal(t, deck.MustParseCards("7h 6d 8d"), h.LegalMoves(tbl))
	assert.Equal(t, []int{0, 1, 3}, h.LegalIndices(tbl))

	assert.True(t, h.Remove(card("8d")))
	assert.False(t, h.Remove(card("8d")))
	c, ok := h.RemoveAt(0)
	require.True(t, ok)
	assert.Equal(t, card("7h"), c)
	_, ok = h.RemoveAt(10)
	assert.False(t, ok)
	assert.Equal(t, 4, h.Len())
}
