package main

import (
	"fmt"
	"io"
	"reversi/game"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/exp/slices"
)

// renderer draws an Othello board with colored discs. The last move is
// bold and hints mark the squares the next side may play.
type renderer struct {
	out   *termenv.Output
	black termenv.Color
	white termenv.Color
	hint  termenv.Color
}

func newRenderer(w io.Writer, options ...termenv.OutputOption) *renderer {
	out := termenv.NewOutput(w, options...)
	return &renderer{
		out:   out,
		black: out.Color("9"),
		white: out.Color("12"),
		hint:  out.Color("8"),
	}
}

func (r *renderer) render(board *game.Othello, last *game.Action, hints []game.Action) string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H\n")
	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < game.Size; col++ {
			a := game.Action{Row: row, Col: col}
			sb.WriteByte(' ')
			sb.WriteString(r.square(board, a, last, hints))
		}
		sb.WriteByte('\n')
	}

	black, white := board.Counts()
	fmt.Fprintf(&sb, "%s %d  %s %d\n",
		r.out.String(game.Black.String()).Foreground(r.black), black,
		r.out.String(game.White.String()).Foreground(r.white), white)
	return sb.String()
}

func (r *renderer) square(board *game.Othello, a game.Action, last *game.Action, hints []game.Action) string {
	color, ok := board.At(a)
	if !ok {
		if slices.Contains(hints, a) {
			return r.out.String("*").Foreground(r.hint).String()
		}
		return "."
	}

	style := r.out.String(color.String()).Foreground(r.black)
	if color == game.White {
		style = r.out.String(color.String()).Foreground(r.white)
	}
	if last != nil && *last == a {
		style = style.Bold()
	}
	return style.String()
}

func (r *renderer) print(s string) {
	fmt.Fprint(r.out, s)
}
