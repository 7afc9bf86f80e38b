package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/sevens/internal/deck"
)

// MaxPlayers is the largest table that still deals every seat a card
const MaxPlayers = deck.Size

var (
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrInvalidPlayer      = errors.New("invalid player")
	ErrAlreadyDealt       = errors.New("cards already dealt")
	ErrNotDealt           = errors.New("cards not dealt")
	ErrGameOver           = errors.New("game is over")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidDeal        = errors.New("invalid deal")
)

// Game is the turn engine for one game of Sevens. It owns every hand, the
// table, the turn pointer and the per-player consecutive pass counters.
//
// A Game is not safe for concurrent use; callers serialise access.
type Game struct {
	id      string
	names   []string
	hands   []*Hand
	table   *Table
	passes  []int
	current int
	turn    int
	dealt   bool
	status  Status

	deck   *deck.Deck
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

// NewGame creates a game for numPlayers seats. Nothing is dealt until Deal
// or DealHands is called.
func NewGame(numPlayers int, opts ...Option) (*Game, error) {
	if numPlayers < 1 || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidPlayerCount, numPlayers, MaxPlayers)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.fill(numPlayers)

	d := cfg.deck
	if d == nil {
		d = deck.NewDeck(cfg.rng)
	}

	g := &Game{
		id:     cfg.id,
		names:  cfg.names,
		hands:  make([]*Hand, numPlayers),
		table:  NewTable(),
		passes: make([]int, numPlayers),
		status: inProgress,
		deck:   d,
		logger: cfg.logger.With("game", cfg.id),
		clock:  cfg.clock,
		bus:    cfg.bus,
	}
	for i := range g.hands {
		g.hands[i] = NewHand()
	}
	return g, nil
}

func defaultPlayerName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

// Deal shuffles the deck and gives each player ⌊36/n⌋ cards in seat order.
// The remaining 36 mod n cards stay in the deck and take no part in play.
func (g *Game) Deal() error {
	if g.dealt {
		return ErrAlreadyDealt
	}

	g.deck.Shuffle()
	perPlayer := deck.Size / len(g.hands)
	for _, h := range g.hands {
		h.Add(g.deck.Deal(perPlayer)...)
	}

	g.logger.Debug("Dealt cards", "players", len(g.hands), "perPlayer", perPlayer, "undealt", g.deck.Remaining())
	g.start()
	return nil
}

// DealHands deals explicit hands instead of shuffling. Hands must be made of
// valid, distinct cards; the deck is not consulted.
func (g *Game) DealHands(hands [][]deck.Card) error {
	if g.dealt {
		return ErrAlreadyDealt
	}
	if len(hands) != len(g.hands) {
		return fmt.Errorf("%w: %d hands for %d players", ErrInvalidDeal, len(hands), len(g.hands))
	}

	seen := make(map[deck.Card]bool)
	for p, cards := range hands {
		for _, c := range cards {
			if !c.Valid() {
				return fmt.Errorf("%w: player %d has invalid card %v", ErrInvalidDeal, p, c)
			}
			if seen[c] {
				return fmt.Errorf("%w: %s dealt twice", ErrInvalidDeal, c)
			}
			seen[c] = true
		}
	}

	for p, cards := range hands {
		g.hands[p].Add(cards...)
	}
	g.start()
	return nil
}

func (g *Game) start() {
	g.dealt = true
	g.publish(GameStartEvent{
		GameID:    g.id,
		Players:   slices.Clone(g.names),
		HandSizes: g.HandSizes(),
		Undealt:   deck.Size - g.cardsInPlay(),
		timestamp: g.clock.Now(),
	})
	g.evaluate()
}

func (g *Game) cardsInPlay() int {
	n := g.table.Len()
	for _, h := range g.hands {
		n += h.Len()
	}
	return n
}

// ID returns the game's identifier
func (g *Game) ID() string { return g.id }

// NumPlayers returns the number of seats
func (g *Game) NumPlayers() int { return len(g.hands) }

// CurrentPlayer returns the seat whose turn it is
func (g *Game) CurrentPlayer() int { return g.current }

// Turn returns the number of turns (plays and passes) taken so far
func (g *Game) Turn() int { return g.turn }

// Dealt reports whether cards have been dealt
func (g *Game) Dealt() bool { return g.dealt }

// Status returns the current game status
func (g *Game) Status() Status { return g.status }

// Table returns the table. Callers must treat it as read-only.
func (g *Game) Table() *Table { return g.table }

// Logger returns the game's logger, already tagged with the game ID
func (g *Game) Logger() *log.Logger { return g.logger }

// EventBus returns the bus events are published on
func (g *Game) EventBus() EventBus { return g.bus }

// Name returns a seat's display name
func (g *Game) Name(p int) string {
	if !g.validPlayer(p) {
		return ""
	}
	return g.names[p]
}

// Hand returns a copy of a player's cards in display order
func (g *Game) Hand(p int) []deck.Card {
	if !g.validPlayer(p) {
		return nil
	}
	return g.hands[p].Cards()
}

// HandSize returns how many cards a player holds
func (g *Game) HandSize(p int) int {
	if !g.validPlayer(p) {
		return 0
	}
	return g.hands[p].Len()
}

// HandSizes returns every player's card count in seat order
func (g *Game) HandSizes() []int {
	sizes := make([]int, len(g.hands))
	for i, h := range g.hands {
		sizes[i] = h.Len()
	}
	return sizes
}

// Passes returns a player's consecutive pass counter
func (g *Game) Passes(p int) int {
	if !g.validPlayer(p) {
		return 0
	}
	return g.passes[p]
}

func (g *Game) validPlayer(p int) bool {
	return p >= 0 && p < len(g.hands)
}

// LegalMoves returns the cards p could legally play right now, in hand order
func (g *Game) LegalMoves(p int) []deck.Card {
	if !g.validPlayer(p) {
		return nil
	}
	return g.hands[p].LegalMoves(g.table)
}

// CanPlay reports whether p holds c and c may be placed on the table. It does
// not consider whose turn it is.
func (g *Game) CanPlay(p int, c deck.Card) bool {
	if !g.validPlayer(p) {
		return false
	}
	return g.hands[p].Contains(c) && g.table.CanPlace(c)
}

// Play places c from p's hand onto the table and advances the turn. Nothing
// changes when an error is returned.
func (g *Game) Play(p int, c deck.Card) error {
	return g.play(p, c, "")
}

func (g *Game) play(p int, c deck.Card, reasoning string) error {
	if err := g.checkActive(p); err != nil {
		return err
	}
	if !g.CanPlay(p, c) {
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, g.names[p], c)
	}

	// Validated above, neither step can fail
	g.hands[p].Remove(c)
	if err := g.table.Place(c); err != nil {
		panic(fmt.Sprintf("validated placement rejected: %v", err))
	}

	g.passes[p] = 0
	g.turn++
	g.current = (g.current + 1) % len(g.hands)

	g.logger.Debug("Card played", "player", g.names[p], "card", c, "left", g.hands[p].Len())
	g.publish(CardPlayedEvent{
		GameID:    g.id,
		Player:    p,
		Name:      g.names[p],
		Card:      c,
		Turn:      g.turn,
		HandSize:  g.hands[p].Len(),
		Reasoning: reasoning,
		timestamp: g.clock.Now(),
	})
	g.evaluate()
	return nil
}

func (g *Game) checkActive(p int) error {
	switch {
	case !g.dealt:
		return ErrNotDealt
	case g.status.Terminal():
		return ErrGameOver
	case !g.validPlayer(p):
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	case p != g.current:
		return fmt.Errorf("%w: %s (current is %s)", ErrNotYourTurn, g.names[p], g.names[g.current])
	}
	return nil
}

// Pass records a pass for the current player and advances the turn. It does
// not check whether the player had a legal move.
func (g *Game) Pass() error {
	return g.pass(false, "")
}

func (g *Game) pass(forced bool, reasoning string) error {
	if err := g.checkActive(g.current); err != nil {
		return err
	}

	p := g.current
	g.passes[p]++
	g.turn++
	g.current = (g.current + 1) % len(g.hands)

	g.logger.Debug("Player passed", "player", g.names[p], "passes", g.passes[p], "forced", forced)
	g.publish(PassEvent{
		GameID:    g.id,
		Player:    p,
		Name:      g.names[p],
		Turn:      g.turn,
		Passes:    g.passes[p],
		Forced:    forced,
		Reasoning: reasoning,
		timestamp: g.clock.Now(),
	})
	g.evaluate()
	return nil
}

// CheckWinner returns the winning seat, if any. An empty hand wins outright;
// otherwise, once every player has passed since their last play, the player
// holding the fewest cards wins (lowest seat on ties).
func (g *Game) CheckWinner() (int, bool) {
	if !g.dealt {
		return -1, false
	}
	for i, h := range g.hands {
		if h.Empty() {
			return i, true
		}
	}
	if !g.allPassed() {
		return -1, false
	}
	return g.fewestCards(), true
}

func (g *Game) allPassed() bool {
	for _, n := range g.passes {
		if n == 0 {
			return false
		}
	}
	return true
}

func (g *Game) fewestCards() int {
	winner := 0
	for i, h := range g.hands {
		if h.Len() < g.hands[winner].Len() {
			winner = i
		}
	}
	return winner
}

// evaluate moves the game to a terminal status once CheckWinner finds one
func (g *Game) evaluate() {
	if g.status.Terminal() {
		return
	}
	winner, ok := g.CheckWinner()
	if !ok {
		return
	}

	state := Stalemate
	if g.hands[winner].Empty() {
		state = Won
	}
	g.status = Status{State: state, Winner: winner}

	g.logger.Info("Game over", "state", state, "winner", g.names[winner], "turns", g.turn)
	g.publish(GameEndEvent{
		GameID:     g.id,
		Status:     g.status,
		WinnerName: g.names[winner],
		HandSizes:  g.HandSizes(),
		Turns:      g.turn,
		timestamp:  g.clock.Now(),
	})
}

// View builds the read-only snapshot handed to p's strategy
func (g *Game) View(p int) View {
	return View{
		GameID:    g.id,
		Seat:      p,
		Name:      g.Name(p),
		Hand:      g.Hand(p),
		Table:     g.table.Runs(),
		HandSizes: g.HandSizes(),
		Passes:    slices.Clone(g.passes),
		Turn:      g.turn,
	}
}

func (g *Game) publish(event GameEvent) {
	g.bus.Publish(event)
}
