package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/game"
)

// RandBot plays a uniformly random legal card and passes only when it has none
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) ChooseMove(view game.View, legal []deck.Card) game.Decision {
	if len(legal) == 0 {
		return game.PassTurn("rand-bot no legal moves")
	}

	choice := legal[r.rng.IntN(len(legal))]
	r.logger.Debug("rand-bot move", "seat", view.Seat, "card", choice, "options", len(legal))
	return game.PlayCard(choice, "rand-bot random card")
}
