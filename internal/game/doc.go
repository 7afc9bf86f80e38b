// Package game implements the rules engine for Sevens, a shedding game for a
// 36-card deck (ranks 6 to Ace).
//
// The main type is Game, which owns the hands, the Table (one contiguous run
// of ranks per suit, opened by that suit's 7), the turn pointer and each
// player's consecutive pass counter.
//
// # Basic Usage
//
//	g, _ := game.NewGame(2, game.WithPlayerNames("Alice", "Bob"))
//	_ = g.Deal()
//	status, err := g.Run(ctx, []game.Agent{human, computer})
//
// Individual moves can also be applied directly:
//
//	if g.CanPlay(0, card) {
//	    _ = g.Play(0, card)
//	}
//	_ = g.Pass()
//	winner, ok := g.CheckWinner()
//
// # Deterministic Testing
//
// Deals use an injected random source. Tests pass a fixed seed:
//
//	g, _ := game.NewGame(3, game.WithRand(randutil.New(42)))
//
// or deal explicit hands with DealHands.
//
// # End of game
//
// A player whose hand becomes empty wins immediately. Otherwise, once every
// player has passed at least once since their own last play, the player
// with the fewest cards wins, the lowest seat breaking ties.
package game
