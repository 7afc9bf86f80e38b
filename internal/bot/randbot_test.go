package bot

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/game"
	"github.com/lox/sevens/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRandBotPassesWithoutMoves(t *testing.T) {
	bot := NewRandBot(randutil.New(1), quietLogger())
	d := bot.ChooseMove(game.View{}, nil)
	assert.True(t, d.Pass)
}

func TestRandBotPicksUniformly(t *testing.T) {
	bot := NewRandBot(randutil.New(99), quietLogger())
	legal := deck.MustParseCards("7h 6d 8d 7s")

	counts := make(map[deck.Card]int)
	const draws = 4000
	for range draws {
		d := bot.ChooseMove(game.View{}, legal)
		require.False(t, d.Pass)
		require.Contains(t, legal, d.Card)
		counts[d.Card]++
	}

	require.Len(t, counts, len(legal))
	for c, n := range counts {
		// Expected 1000 each; allow a generous band
		assert.InDelta(t, draws/len(legal), n, 150, "card %s", c)
	}
}

func TestRandBotsFinishGames(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, err := game.NewGame(3, game.WithRand(randutil.New(seed)))
		require.NoError(t, err)
		require.NoError(t, g.Deal())

		rng := randutil.New(seed)
		agents := []game.Agent{
			NewRandBot(rng, quietLogger()),
			NewRandBot(rng, quietLogger()),
			NewRandBot(rng, quietLogger()),
		}
		status, err := g.Run(context.Background(), agents)
		require.NoError(t, err)
		assert.True(t, status.Terminal())
	}
}
