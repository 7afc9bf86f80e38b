package sevens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sevens/internal/deck"
)

func newGame(t *testing.T, players int) Handle {
	t.Helper()
	h, err := Create(players)
	require.NoError(t, err)
	t.Cleanup(func() { Destroy(h) })
	return h
}

// dealHands replaces the shuffle with fixed hands
func dealHands(t *testing.T, h Handle, hands ...string) {
	t.Helper()
	parsed := make([][]deck.Card, len(hands))
	for i, s := range hands {
		parsed[i] = deck.MustParseCards(s)
	}
	require.NoError(t, lookup(h).game.DealHands(parsed))
}

func card(s string) Card {
	return fromDeck(deck.MustParseCards(s)[0])
}

func TestCreate(t *testing.T) {
	for _, n := range []int{0, -1, 37} {
		_, err := Create(n)
		assert.Error(t, err, "players=%d", n)
	}

	a := newGame(t, 2)
	b := newGame(t, 2)
	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
}

func TestDealCards(t *testing.T) {
	for n := 1; n <= 36; n++ {
		h := newGame(t, n)
		require.NoError(t, DealCards(h))

		st, ok := GetState(h)
		require.True(t, ok)
		assert.Equal(t, n, st.NumPlayers)
		assert.Equal(t, 0, st.CurrentPlayer)

		seen := map[Card]bool{}
		total := 0
		for p := range n {
			assert.Equal(t, 36/n, st.PlayerCardCount[p])
			cards := GetPlayerCards(h, p, 36)
			assert.Len(t, cards, st.PlayerCardCount[p])
			for i, c := range cards {
				assert.False(t, seen[c], "card %s dealt twice", c)
				seen[c] = true
				if i > 0 {
					assert.True(t, cards[i-1].toDeck().Less(c.toDeck()), "hand sorted by suit then rank")
				}
			}
			total += len(cards)
		}
		assert.Equal(t, 36-36%n, total)
	}

	h := newGame(t, 2)
	require.NoError(t, DealCards(h))
	assert.Error(t, DealCards(h), "second deal is rejected")
}

func TestGetPlayerCards(t *testing.T) {
	h := newGame(t, 2)
	dealHands(t, h, "7h 8h 9h", "6s")

	assert.Equal(t, []Card{card("7h"), card("8h")}, GetPlayerCards(h, 0, 2))
	assert.Len(t, GetPlayerCards(h, 0, 10), 3)
	assert.Empty(t, GetPlayerCards(h, 0, 0))
	assert.Empty(t, GetPlayerCards(h, 5, 10))
}

func TestCanPlayCard(t *testing.T) {
	h := newGame(t, 2)
	dealHands(t, h, "7h 8h 6d", "6h 9h 7d")

	assert.True(t, CanPlayCard(h, 0, card("7h")))
	assert.False(t, CanPlayCard(h, 0, card("8h")), "suit not open")
	assert.False(t, CanPlayCard(h, 0, card("7s")), "not held")
	assert.True(t, CanPlayCard(h, 1, card("7d")), "turn does not matter")

	require.True(t, PlayCard(h, 0, card("7h")))
	assert.True(t, CanPlayCard(h, 1, card("6h")))
	assert.False(t, CanPlayCard(h, 1, card("9h")), "gap")
	assert.False(t, CanPlayCard(h, 0, Card{Rank: 5, Suit: 0}), "invalid rank")
}

func TestPlayCard(t *testing.T) {
	h := newGame(t, 2)
	dealHands(t, h, "7h 8h 6d", "6h 9h 7d")

	before, _ := GetState(h)
	assert.False(t, PlayCard(h, 0, card("8h")), "illegal card")
	assert.False(t, PlayCard(h, 1, card("7d")), "not player 1's turn")
	after, _ := GetState(h)
	assert.Equal(t, before, after, "rejected plays change nothing")

	PassTurn(h)
	assert.Equal(t, 1, CurrentPlayer(h))
	require.True(t, PlayCard(h, 1, card("7d")))
	assert.Equal(t, 0, CurrentPlayer(h))
	assert.Equal(t, 0, lookup(h).game.Passes(1))

	require.True(t, PlayCard(h, 0, card("6d")))
	st, _ := GetState(h)
	assert.Equal(t, []Card{card("6d"), card("7d")}, st.TableCards[deck.Diamonds])
	assert.Equal(t, 2, st.TableCount[deck.Diamonds])
	assert.Equal(t, 0, st.TableCount[deck.Hearts])
	assert.Equal(t, []int{2, 2}, st.PlayerCardCount)
}

func TestComputerMovePassesWithoutMoves(t *testing.T) {
	h := newGame(t, 2)
	dealHands(t, h, "6h 8s 9c", "7d 10d")

	for _, c := range GetPlayerCards(h, 0, 36) {
		assert.False(t, CanPlayCard(h, 0, c))
	}

	_, ok := ComputerMove(h)
	assert.False(t, ok)
	assert.Equal(t, 1, lookup(h).game.Passes(0))
	assert.Equal(t, 1, CurrentPlayer(h))

	c, ok := ComputerMove(h)
	require.True(t, ok)
	assert.Equal(t, card("7d"), c)
	assert.Equal(t, NoWinner, CheckWinner(h))
}

func TestStalemateWinner(t *testing.T) {
	t.Run("fewer cards wins", func(t *testing.T) {
		h := newGame(t, 2)
		dealHands(t, h, "6h 8s 9c", "6d 8d")
		PassTurn(h)
		assert.Equal(t, NoWinner, CheckWinner(h))
		PassTurn(h)
		assert.Equal(t, 1, CheckWinner(h))
	})

	t.Run("tie goes to player 0", func(t *testing.T) {
		h := newGame(t, 2)
		dealHands(t, h, "6h 8s", "6d 8d")
		PassTurn(h)
		PassTurn(h)
		assert.Equal(t, 0, CheckWinner(h))
	})
}

func TestEmptyHandWins(t *testing.T) {
	h := newGame(t, 2)
	dealHands(t, h, "7h", "6s 6d")
	require.True(t, PlayCard(h, 0, card("7h")))
	assert.Equal(t, 0, CheckWinner(h))

	assert.False(t, PlayCard(h, 1, card("6s")), "game over")
}

func TestComputerGamesFinish(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 6} {
		h := newGame(t, n)
		require.NoError(t, DealCards(h))
		for turns := 0; CheckWinner(h) == NoWinner; turns++ {
			require.Less(t, turns, 10000, "game did not finish")
			ComputerMove(h)
		}
		winner := CheckWinner(h)
		assert.GreaterOrEqual(t, winner, 0)
		assert.Less(t, winner, n)
	}
}

func TestUnknownHandle(t *testing.T) {
	h := newGame(t, 2)
	Destroy(h)
	Destroy(h)

	assert.NoError(t, DealCards(h))
	_, ok := GetState(h)
	assert.False(t, ok)
	assert.Nil(t, GetPlayerCards(h, 0, 10))
	assert.False(t, CanPlayCard(h, 0, card("7h")))
	assert.False(t, PlayCard(h, 0, card("7h")))
	PassTurn(h)
	assert.Equal(t, NoWinner, CheckWinner(h))
	assert.Equal(t, -1, CurrentPlayer(h))
	_, ok = ComputerMove(h)
	assert.False(t, ok)
}
