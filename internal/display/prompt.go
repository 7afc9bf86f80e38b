package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/sevens/internal/config"
)

// ErrInvalidMode is returned when the startup menu gets anything but 1 or 2
var ErrInvalidMode = errors.New("invalid game mode")

// Mode is the startup menu choice
type Mode int

const (
	ModeAsk        Mode = 0
	ModeVsComputer Mode = 1
	ModeTwoPlayers Mode = 2
)

// Prompter reads line-oriented answers from the player
type Prompter struct {
	scanner  *bufio.Scanner
	renderer *Renderer
}

// NewPrompter creates a prompter reading from in and echoing prompts via r
func NewPrompter(in io.Reader, r *Renderer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), renderer: r}
}

// Ask prints prompt and returns the next trimmed line. io.EOF is returned
// once input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	p.renderer.printf("%s", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// ChooseMode shows the mode menu and reads the answer
func (p *Prompter) ChooseMode() (Mode, error) {
	p.renderer.printf("Choose a game mode:\n")
	p.renderer.printf("1. Play against the computer\n")
	p.renderer.printf("2. Play against another player\n")
	answer, err := p.Ask("Your choice: ")
	if err != nil {
		return ModeAsk, err
	}
	switch answer {
	case "1":
		return ModeVsComputer, nil
	case "2":
		return ModeTwoPlayers, nil
	default:
		return ModeAsk, fmt.Errorf("%w: %q", ErrInvalidMode, answer)
	}
}

// askName reads a player name, falling back when the line is blank
func (p *Prompter) askName(prompt, fallback string) (string, error) {
	name, err := p.Ask(prompt)
	if err != nil {
		return "", err
	}
	if name == "" {
		return fallback, nil
	}
	return name, nil
}

// Seats runs the startup menu: mode (unless already given) and names.
// A preset name is used for the first human instead of asking.
func (p *Prompter) Seats(mode Mode, presetName string) ([]config.Seat, error) {
	if mode == ModeAsk {
		var err error
		if mode, err = p.ChooseMode(); err != nil {
			return nil, err
		}
	}

	first := presetName
	switch mode {
	case ModeVsComputer:
		if first == "" {
			name, err := p.askName("\nEnter your name: ", "Player")
			if err != nil {
				return nil, err
			}
			first = name
		}
		return []config.Seat{
			{Name: first, Kind: config.KindHuman},
			{Name: "Computer", Kind: config.KindComputer},
		}, nil
	case ModeTwoPlayers:
		if first == "" {
			name, err := p.askName("\nEnter the first player's name: ", "Player 1")
			if err != nil {
				return nil, err
			}
			first = name
		}
		second, err := p.askName("Enter the second player's name: ", "Player 2")
		if err != nil {
			return nil, err
		}
		return []config.Seat{
			{Name: first, Kind: config.KindHuman},
			{Name: second, Kind: config.KindHuman},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}
}
