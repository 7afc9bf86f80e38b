package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/sevens/internal/deck"
	"github.com/lox/sevens/internal/game"
)

// cardsPerLine matches the width of one suit
const cardsPerLine = 9

// Renderer writes the textual board: table runs, hands, prompts and results
type Renderer struct {
	out    io.Writer
	styles *Styles
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{
		out:    out,
		styles: NewStyles(NewLipglossRenderer(out, color)),
	}
}

// Writer returns the underlying writer
func (r *Renderer) Writer() io.Writer {
	return r.out
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Card renders a single card, red suits in red
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return r.styles.CardRed.Render(c.String())
	}
	return r.styles.CardBlack.Render(c.String())
}

func (r *Renderer) cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Title prints the program banner
func (r *Renderer) Title() {
	r.printf("%s\n\n", r.styles.Header.Render("🎴 SEVENS (СІМ) 🎴"))
}

// TurnHeader announces whose turn it is
func (r *Renderer) TurnHeader(name string, cards int) {
	r.printf("\n%s\n", r.styles.TurnLine.Render(fmt.Sprintf(">>> Turn: %s (%d cards) <<<", name, cards)))
}

// Table prints every opened suit's run in suit order
func (r *Renderer) Table(runs map[deck.Suit]game.Interval) {
	r.printf("\n%s\n", r.styles.Separator.Render("========== TABLE =========="))
	if len(runs) == 0 {
		r.printf("%s\n", r.styles.Info.Render("Table is empty. Play a 7 to start!"))
	}
	for _, s := range deck.Suits {
		iv, ok := runs[s]
		if !ok {
			continue
		}
		run := make([]deck.Card, 0, iv.Len())
		for rank := iv.Min; rank <= iv.Max; rank++ {
			run = append(run, deck.NewCard(rank, s))
		}
		r.printf("%s: %s\n", r.styles.SuitName.Render(s.Name()), r.cards(run))
	}
	r.printf("%s\n\n", r.styles.Separator.Render("==========================="))
}

// Hand prints a player's cards with 1-based indices
func (r *Renderer) Hand(name string, cards []deck.Card) {
	r.printf("\n%s has %d card(s):\n", name, len(cards))
	for i, c := range cards {
		r.printf("%s %s  ", r.styles.Index.Render(fmt.Sprintf("%d.", i+1)), r.Card(c))
		if (i+1)%cardsPerLine == 0 {
			r.printf("\n")
		}
	}
	r.printf("\n")
}

// LegalMoves prints the 1-based indices the player may choose
func (r *Renderer) LegalMoves(indices []int) {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx+1)
	}
	r.printf("Possible moves: %s\n", r.styles.Legal.Render(strings.Join(parts, " ")))
}

// Errorf prints an input error
func (r *Renderer) Errorf(format string, args ...any) {
	r.printf("%s\n", r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Played announces a played card
func (r *Renderer) Played(name string, c deck.Card) {
	r.printf("%s\n", r.styles.Action.Render(fmt.Sprintf("%s plays %s", name, c)))
}

// Passed announces a pass
func (r *Renderer) Passed(name string, forced bool) {
	if forced {
		r.printf("%s\n", r.styles.Action.Render(fmt.Sprintf("%s has no legal moves and passes.", name)))
		return
	}
	r.printf("%s\n", r.styles.Action.Render(fmt.Sprintf("%s passes.", name)))
}

// Result prints the end of game
func (r *Renderer) Result(status game.Status, winner string, cardsLeft int) {
	switch status.State {
	case game.Won:
		r.printf("\n%s\n", r.styles.Winner.Render(fmt.Sprintf("🎉 %s WINS! 🎉", winner)))
	case game.Stalemate:
		r.printf("\nAll players passed. Game over!\n")
		r.printf("\n%s\n", r.styles.Winner.Render(fmt.Sprintf("🏆 Winner: %s (%d cards left) 🏆", winner, cardsLeft)))
	}
	r.printf("\nThanks for playing!\n")
}
