// Command libsevens builds the Sevens engine as a C shared library:
//
//	go build -buildmode=c-shared -o libsevens.so ./cmd/libsevens
//
// Set SEVENS_LOG_LEVEL (debug, info, warn, error) to log to stderr.
package main

/*
#include <stdint.h>

typedef struct {
    int rank;
    int suit;
} Card;

typedef struct {
    int current_player;
    int num_players;
    int player_cards_count[36];
    Card table_state[4][9];
    int table_card_count[4];
} GameState;
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/sevens"
)

func init() {
	level, ok := os.LookupEnv("SEVENS_LOG_LEVEL")
	if !ok {
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	sevens.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
		Level:           parsed,
		Prefix:          "libsevens",
		ReportTimestamp: true,
	}))
}

func handle(h C.uintptr_t) sevens.Handle {
	return sevens.Handle(h)
}

func toCard(c C.Card) sevens.Card {
	return sevens.Card{Rank: int(c.rank), Suit: int(c.suit)}
}

func fromCard(c sevens.Card) C.Card {
	return C.Card{rank: C.int(c.Rank), suit: C.int(c.Suit)}
}

func boolInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

//export game_create
func game_create(numPlayers C.int) C.uintptr_t {
	h, err := sevens.Create(int(numPlayers))
	if err != nil {
		log.Error("Failed to create game", "players", int(numPlayers), "error", err)
		return 0
	}
	return C.uintptr_t(h)
}

//export game_deal_cards
func game_deal_cards(h C.uintptr_t) {
	if err := sevens.DealCards(handle(h)); err != nil {
		log.Warn("Deal ignored", "handle", uint64(h), "error", err)
	}
}

//export game_get_state
func game_get_state(h C.uintptr_t, state *C.GameState) {
	if state == nil {
		return
	}
	st, ok := sevens.GetState(handle(h))
	if !ok {
		return
	}

	state.current_player = C.int(st.CurrentPlayer)
	state.num_players = C.int(st.NumPlayers)
	for i, n := range st.PlayerCardCount {
		if i >= len(state.player_cards_count) {
			break
		}
		state.player_cards_count[i] = C.int(n)
	}
	for s := range sevens.NumSuits {
		state.table_card_count[s] = C.int(st.TableCount[s])
		for i, c := range st.TableCards[s] {
			state.table_state[s][i] = fromCard(c)
		}
	}
}

//export game_get_player_cards
func game_get_player_cards(h C.uintptr_t, player C.int, cards *C.Card, maxCards C.int) C.int {
	if cards == nil || maxCards <= 0 {
		return 0
	}
	got := sevens.GetPlayerCards(handle(h), int(player), int(maxCards))
	out := unsafe.Slice(cards, int(maxCards))
	for i, c := range got {
		out[i] = fromCard(c)
	}
	return C.int(len(got))
}

//export game_can_play_card
func game_can_play_card(h C.uintptr_t, player C.int, card C.Card) C.int {
	return boolInt(sevens.CanPlayCard(handle(h), int(player), toCard(card)))
}

//export game_play_card
func game_play_card(h C.uintptr_t, player C.int, card C.Card) C.int {
	return boolInt(sevens.PlayCard(handle(h), int(player), toCard(card)))
}

//export game_pass_turn
func game_pass_turn(h C.uintptr_t) {
	sevens.PassTurn(handle(h))
}

//export game_check_winner
func game_check_winner(h C.uintptr_t) C.int {
	return C.int(sevens.CheckWinner(handle(h)))
}

//export game_get_current_player
func game_get_current_player(h C.uintptr_t) C.int {
	return C.int(sevens.CurrentPlayer(handle(h)))
}

//export game_computer_move
func game_computer_move(h C.uintptr_t, played *C.Card) C.int {
	c, ok := sevens.ComputerMove(handle(h))
	if ok && played != nil {
		*played = fromCard(c)
	}
	return boolInt(ok)
}

//export game_destroy
func game_destroy(h C.uintptr_t) {
	sevens.Destroy(handle(h))
}

func main() {}
