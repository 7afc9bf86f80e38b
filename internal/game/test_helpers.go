package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/randutil"
)

// TestGameOption configures test game creation
type TestGameOption func(*testGameBuilder)

type testGameBuilder struct {
	seed  int64
	hands []string
	opts  []Option
}

// WithSeed sets the shuffle seed for a dealt test game
func WithSeed(seed int64) TestGameOption {
	return func(b *testGameBuilder) { b.seed = seed }
}

// WithHands deals the given hands (in ParseCards notation) instead of shuffling
func WithHands(hands ...string) TestGameOption {
	return func(b *testGameBuilder) { b.hands = hands }
}

// WithOptions passes extra engine options through
func WithOptions(opts ...Option) TestGameOption {
	return func(b *testGameBuilder) { b.opts = append(b.opts, opts...) }
}

// NewTestGame creates a dealt game for testing with a quiet logger and a
// fixed seed. With WithHands the player count is taken from the hands.
func NewTestGame(players int, opts ...TestGameOption) *Game {
	b := &testGameBuilder{seed: 42}
	for _, opt := range opts {
		opt(b)
	}
	if b.hands != nil {
		players = len(b.hands)
	}

	gameOpts := append([]Option{
		WithRand(randutil.New(b.seed)),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})),
		WithID("test-game"),
	}, b.opts...)

	g, err := NewGame(players, gameOpts...)
	if err != nil {
		panic(err)
	}

	if b.hands == nil {
		if err := g.Deal(); err != nil {
			panic(err)
		}
		return g
	}

	hands := make([][]deck.Card, len(b.hands))
	for i, h := range b.hands {
		hands[i] = deck.MustParseCards(h)
	}
	if err := g.DealHands(hands); err != nil {
		panic(err)
	}
	return g
}

// randomTestAgent picks uniformly among legal moves
func randomTestAgent(rng *rand.Rand) Agent {
	return AgentFunc(func(_ View, legal []deck.Card) Decision {
		return PlayCard(legal[rng.IntN(len(legal))], "test random")
	})
}
