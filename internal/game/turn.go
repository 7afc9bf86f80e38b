package game

import (
	"context"
	"fmt"
	"slices"
)

// TurnResult describes what happened on one turn
type TurnResult struct {
	Player   int
	Decision Decision
	Forced   bool // Passed because no legal move existed
	Status   Status
}

// PlayTurn runs a single turn for the current player. A player without a
// legal move passes without the agent being consulted. A card the agent
// chooses outside the legal set is a contract violation: ErrIllegalMove is
// returned and the game is left unchanged.
func (g *Game) PlayTurn(agent Agent) (TurnResult, error) {
	p := g.current
	if err := g.checkActive(p); err != nil {
		return TurnResult{}, err
	}

	legal := g.LegalMoves(p)
	if len(legal) == 0 {
		d := PassTurn("no legal moves")
		if err := g.pass(true, d.Reasoning); err != nil {
			return TurnResult{}, err
		}
		return TurnResult{Player: p, Decision: d, Forced: true, Status: g.status}, nil
	}

	d := agent.ChooseMove(g.View(p), slices.Clone(legal))
	if d.Pass {
		if err := g.pass(false, d.Reasoning); err != nil {
			return TurnResult{}, err
		}
		return TurnResult{Player: p, Decision: d, Status: g.status}, nil
	}

	if !slices.Contains(legal, d.Card) {
		g.logger.Error("Agent chose an illegal card", "player", g.names[p], "card", d.Card, "legal", legal)
		return TurnResult{}, fmt.Errorf("%w: %s chose %s", ErrIllegalMove, g.names[p], d.Card)
	}
	if err := g.play(p, d.Card, d.Reasoning); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Player: p, Decision: d, Status: g.status}, nil
}

// Run plays turns until the game ends, asking agents[seat] for each move.
// Cancellation is checked between turns.
func (g *Game) Run(ctx context.Context, agents []Agent) (Status, error) {
	if len(agents) != len(g.hands) {
		return g.status, fmt.Errorf("%w: %d agents for %d players", ErrInvalidPlayerCount, len(agents), len(g.hands))
	}
	if !g.dealt {
		return g.status, ErrNotDealt
	}

	g.logger.Debug("Starting game loop", "players", len(agents))
	for !g.status.Terminal() {
		if err := ctx.Err(); err != nil {
			return g.status, err
		}
		if _, err := g.PlayTurn(agents[g.current]); err != nil {
			return g.status, err
		}
	}
	return g.status, nil
}
