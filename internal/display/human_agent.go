package display

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/game"
)

// HumanAgent asks a person at the console for each move. It keeps asking
// until it gets 0 (pass) or the number of a legal card, so the engine never
// sees an illegal choice.
type HumanAgent struct {
	prompter *Prompter
	renderer *Renderer
	logger   *log.Logger
}

// NewHumanAgent creates a console agent
func NewHumanAgent(prompter *Prompter, renderer *Renderer, logger *log.Logger) *HumanAgent {
	return &HumanAgent{prompter: prompter, renderer: renderer, logger: logger}
}

// ChooseMove shows the hand and legal moves and reads a selection
func (h *HumanAgent) ChooseMove(view game.View, legal []deck.Card) game.Decision {
	h.renderer.Hand(view.Name, view.Hand)

	indices := make([]int, 0, len(legal))
	for _, c := range legal {
		if i := slices.Index(view.Hand, c); i >= 0 {
			indices = append(indices, i)
		}
	}
	h.renderer.LegalMoves(indices)

	for {
		line, err := h.prompter.Ask("Choose a card (number) or 0 to pass: ")
		if err != nil {
			// Nothing more to read; passing lets the game reach a stalemate
			h.logger.Warn("Input unavailable, passing", "player", view.Name, "error", err)
			return game.PassTurn("input unavailable")
		}

		choice, err := strconv.Atoi(line)
		switch {
		case err != nil:
			h.logger.Debug("Non-numeric input", "player", view.Name, "input", line)
		case choice == 0:
			return game.PassTurn("player passed")
		case slices.Contains(indices, choice-1):
			return game.PlayCard(view.Hand[choice-1], "player choice")
		}
		h.renderer.Errorf("Invalid choice! Try again.")
	}
}
