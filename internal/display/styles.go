package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the console game
type Styles struct {
	Header    lipgloss.Style
	TurnLine  lipgloss.Style
	SuitName  lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Index     lipgloss.Style
	Legal     lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles builds the styles for a lipgloss renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		TurnLine: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		SuitName: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Index: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Legal: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Action: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// NewLipglossRenderer returns a lipgloss renderer for out. With color
// disabled the ASCII profile is forced so no escape codes are written.
func NewLipglossRenderer(out io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
