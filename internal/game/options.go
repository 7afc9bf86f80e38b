package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/gameid"
	"github.com/lox/sevens/internal/randutil"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	id     string
	names  []string
	rng    *rand.Rand
	deck   *deck.Deck // If provided, used instead of a fresh deck from rng
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

func defaultConfig() *gameConfig {
	return &gameConfig{}
}

// fill supplies defaults for anything the options left unset
func (c *gameConfig) fill(numPlayers int) {
	if c.id == "" {
		c.id = gameid.New()
	}
	if c.rng == nil {
		c.rng = randutil.NewEntropy()
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.bus == nil {
		c.bus = NewEventBus()
	}
	names := make([]string, numPlayers)
	for i := range names {
		if i < len(c.names) && c.names[i] != "" {
			names[i] = c.names[i]
		} else {
			names[i] = defaultPlayerName(i)
		}
	}
	c.names = names
}

// WithRand sets the random source used to shuffle the deck.
// Without it the game seeds itself from system entropy.
func WithRand(rng *rand.Rand) Option {
	return func(c *gameConfig) {
		c.rng = rng
	}
}

// WithDeck sets a specific deck. Deal still shuffles it.
func WithDeck(d *deck.Deck) Option {
	return func(c *gameConfig) {
		c.deck = d
	}
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) {
		c.clock = clock
	}
}

// WithEventBus sets the bus events are published on
func WithEventBus(bus EventBus) Option {
	return func(c *gameConfig) {
		c.bus = bus
	}
}

// WithPlayerNames names the seats in order. Missing names fall back to
// "Player N".
func WithPlayerNames(names ...string) Option {
	return func(c *gameConfig) {
		c.names = names
	}
}

// WithID sets the game ID instead of generating one
func WithID(id string) Option {
	return func(c *gameConfig) {
		c.id = id
	}
}
