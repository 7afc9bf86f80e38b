// Package sevens exposes the Sevens rules engine through flat, handle-based
// calls suitable for embedding in a host application or exporting over cgo.
//
// Every call takes the Handle returned by Create. Errors from the engine are
// folded into booleans and -1 results, and an unknown handle behaves as a
// no-op. The handle registry is safe for concurrent use, but calls against a
// single handle must be serialised by the host.
package sevens

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/bot"
	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/game"
	"github.com/lox/sevens/internal/randutil"
)

// NoWinner is returned by CheckWinner while the game is still in progress
const NoWinner = -1

// NumSuits is the number of table rows in a State
const NumSuits = deck.NumSuits

// Handle identifies a game created by Create. The zero Handle is never valid.
type Handle uint64

// Card is a card as seen across the embedding boundary: rank 6-14 (J=11,
// Q=12, K=13, A=14) and suit 0-3 (hearts, diamonds, clubs, spades).
type Card struct {
	Rank int
	Suit int
}

func (c Card) toDeck() deck.Card {
	return deck.NewCard(deck.Rank(c.Rank), deck.Suit(c.Suit))
}

func fromDeck(c deck.Card) Card {
	return Card{Rank: int(c.Rank), Suit: int(c.Suit)}
}

// String formats the card like "10♥"
func (c Card) String() string {
	return c.toDeck().String()
}

// State is a snapshot of a game
type State struct {
	CurrentPlayer   int
	NumPlayers      int
	PlayerCardCount []int
	TableCards      [NumSuits][]Card // Each suit's run, lowest rank first
	TableCount      [NumSuits]int
}

type entry struct {
	game *game.Game
	bot  *bot.RandBot
}

var (
	mu     sync.Mutex
	games  = map[Handle]*entry{}
	next   Handle
	logger = log.NewWithOptions(io.Discard, log.Options{})
)

// SetLogger sets the logger used by games created afterwards
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Create registers a new game for numPlayers seats (1-36). Cards are not
// dealt until DealCards.
func Create(numPlayers int) (Handle, error) {
	mu.Lock()
	l := logger
	mu.Unlock()

	g, err := game.NewGame(numPlayers, game.WithLogger(l))
	if err != nil {
		return 0, err
	}
	e := &entry{
		game: g,
		bot:  bot.NewRandBot(randutil.NewEntropy(), l),
	}

	mu.Lock()
	defer mu.Unlock()
	next++
	games[next] = e
	l.Debug("Game created", "handle", next, "game", g.ID(), "players", numPlayers)
	return next, nil
}

func lookup(h Handle) *entry {
	mu.Lock()
	defer mu.Unlock()
	return games[h]
}

// DealCards shuffles and deals 36/numPlayers cards to every player. The
// remainder stays undealt.
func DealCards(h Handle) error {
	e := lookup(h)
	if e == nil {
		return nil
	}
	return e.game.Deal()
}

// GetState returns a snapshot of the game. ok is false for an unknown handle.
func GetState(h Handle) (State, bool) {
	e := lookup(h)
	if e == nil {
		return State{}, false
	}
	g := e.game

	st := State{
		CurrentPlayer:   g.CurrentPlayer(),
		NumPlayers:      g.NumPlayers(),
		PlayerCardCount: g.HandSizes(),
	}
	for _, s := range deck.Suits {
		run := g.Table().Cards(s)
		cards := make([]Card, len(run))
		for i, c := range run {
			cards[i] = fromDeck(c)
		}
		st.TableCards[s] = cards
		st.TableCount[s] = len(cards)
	}
	return st, true
}

// GetPlayerCards returns up to maxCards of the player's cards in hand order
func GetPlayerCards(h Handle, player, maxCards int) []Card {
	e := lookup(h)
	if e == nil || maxCards <= 0 {
		return nil
	}
	hand := e.game.Hand(player)
	if len(hand) > maxCards {
		hand = hand[:maxCards]
	}
	cards := make([]Card, len(hand))
	for i, c := range hand {
		cards[i] = fromDeck(c)
	}
	return cards
}

// CanPlayCard reports whether player holds c and it may go on the table
func CanPlayCard(h Handle, player int, c Card) bool {
	e := lookup(h)
	if e == nil {
		return false
	}
	return e.game.CanPlay(player, c.toDeck())
}

// PlayCard plays c for player. It returns false, changing nothing, when the
// move is not legal or it is not that player's turn.
func PlayCard(h Handle, player int, c Card) bool {
	e := lookup(h)
	if e == nil {
		return false
	}
	if err := e.game.Play(player, c.toDeck()); err != nil {
		e.game.Logger().Debug("Play rejected", "player", player, "card", c, "error", err)
		return false
	}
	return true
}

// PassTurn passes for the current player whether or not they could play
func PassTurn(h Handle) {
	e := lookup(h)
	if e == nil {
		return
	}
	if err := e.game.Pass(); err != nil {
		e.game.Logger().Debug("Pass ignored", "error", err)
	}
}

// CheckWinner returns the winning player, or NoWinner while the game goes on
func CheckWinner(h Handle) int {
	e := lookup(h)
	if e == nil {
		return NoWinner
	}
	if winner, ok := e.game.CheckWinner(); ok {
		return winner
	}
	return NoWinner
}

// CurrentPlayer returns whose turn it is, or -1 for an unknown handle
func CurrentPlayer(h Handle) int {
	e := lookup(h)
	if e == nil {
		return -1
	}
	return e.game.CurrentPlayer()
}

// ComputerMove plays a random legal card for the current player and returns
// it. Without a legal card the player passes and ok is false.
func ComputerMove(h Handle) (Card, bool) {
	e := lookup(h)
	if e == nil {
		return Card{}, false
	}
	res, err := e.game.PlayTurn(e.bot)
	if err != nil {
		e.game.Logger().Debug("Computer move skipped", "error", err)
		return Card{}, false
	}
	if res.Decision.Pass {
		return Card{}, false
	}
	return fromDeck(res.Decision.Card), true
}

// Destroy releases the game. Later calls with h are no-ops.
func Destroy(h Handle) {
	mu.Lock()
	defer mu.Unlock()
	if e, ok := games[h]; ok {
		e.game.Logger().Debug("Game destroyed", "handle", h)
		delete(games, h)
	}
}
