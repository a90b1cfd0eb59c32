package player

import (
	"bufio"
	"fmt"
	"io"
	"reversi/game"
	"strings"

	"golang.org/x/exp/slices"
)

type humanPlayer struct {
	color game.Color
	in    *bufio.Scanner
	out   io.Writer
}

// NewHuman reads coordinates such as "D3" from in, one per line, and
// writes prompts to out. "Q" gives up the game.
func NewHuman(color game.Color, in io.Reader, out io.Writer) *humanPlayer {
	return &humanPlayer{color: color, in: bufio.NewScanner(in), out: out}
}

func (p *humanPlayer) Color() game.Color {
	return p.color
}

func (p *humanPlayer) FindMove(board game.Board) (game.Action, bool, error) {
	legal := board.LegalActions(p.color)
	if len(legal) == 0 {
		fmt.Fprintf(p.out, "%s (%v) has no legal move and passes.\n", p.color.Name(), p.color)
		return game.Action{}, false, nil
	}

	for {
		fmt.Fprintf(p.out, "%s (%v), enter a legal coordinate (e.g. D3) or Q to quit: ", p.color.Name(), p.color)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Action{}, false, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Action{}, false, fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
		}

		line := strings.TrimSpace(p.in.Text())
		if strings.EqualFold(line, "q") {
			return game.Action{}, false, ErrQuit
		}

		action, err := game.ParseAction(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v, try again.\n", err)
			continue
		}
		if !slices.Contains(legal, action) {
			fmt.Fprintf(p.out, "%v is not a legal move, try again.\n", action)
			continue
		}
		return action, true, nil
	}
}
