package display

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/sevens/internal/game"
)

// EventPrinter renders game events as they are published
type EventPrinter struct {
	renderer *Renderer
}

// NewEventPrinter creates a printer that writes through r
func NewEventPrinter(r *Renderer) *EventPrinter {
	return &EventPrinter{renderer: r}
}

// OnEvent implements game.EventSubscriber
func (p *EventPrinter) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.GameStartEvent:
		p.renderer.printf("\nGame started: %d players, %d undealt card(s)\n", len(e.Players), e.Undealt)
	case game.CardPlayedEvent:
		p.renderer.Played(e.Name, e.Card)
	case game.PassEvent:
		p.renderer.Passed(e.Name, e.Forced)
	case game.GameEndEvent:
		left := 0
		if e.Status.Winner >= 0 && e.Status.Winner < len(e.HandSizes) {
			left = e.HandSizes[e.Status.Winner]
		}
		p.renderer.Result(e.Status, e.WinnerName, left)
	}
}

// Session drives an interactive game turn by turn, showing the table before
// every move.
type Session struct {
	game     *game.Game
	agents   []game.Agent
	renderer *Renderer
	logger   *log.Logger
}

// NewSession creates a session for a dealt game
func NewSession(g *game.Game, agents []game.Agent, r *Renderer, logger *log.Logger) *Session {
	return &Session{game: g, agents: agents, renderer: r, logger: logger}
}

// Play runs turns until the game ends
func (s *Session) Play(ctx context.Context) (game.Status, error) {
	g := s.game
	if len(s.agents) != g.NumPlayers() {
		return g.Status(), fmt.Errorf("%w: %d agents for %d players", game.ErrInvalidPlayerCount, len(s.agents), g.NumPlayers())
	}

	for !g.Status().Terminal() {
		if err := ctx.Err(); err != nil {
			return g.Status(), err
		}

		p := g.CurrentPlayer()
		s.renderer.TurnHeader(g.Name(p), g.HandSize(p))
		s.renderer.Table(g.Table().Runs())

		res, err := g.PlayTurn(s.agents[p])
		if err != nil {
			s.logger.Error("Turn failed", "player", g.Name(p), "error", err)
			return g.Status(), err
		}
		s.logger.Debug("Turn complete", "player", g.Name(p), "pass", res.Decision.Pass, "forced", res.Forced, "reasoning", res.Decision.Reasoning)
	}
	return g.Status(), nil
}
