package game

import (
	"fmt"
	"strings"
)

type square int8

const (
	empty square = iota
	blackDisc
	whiteDisc
)

func disc(c Color) square {
	switch c {
	case Black:
		return blackDisc
	case White:
		return whiteDisc
	}
	panic(fmt.Sprintf("invalid color %d", c))
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Othello is the standard 8x8 Reversi board. The zero value is an empty
// grid; use NewOthello for the starting position.
type Othello struct {
	cells [Size][Size]square
}

// NewOthello returns the starting position: D5 and E4 black, D4 and E5
// white.
func NewOthello() *Othello {
	b := &Othello{}
	mid := Size / 2
	b.cells[mid-1][mid-1], b.cells[mid][mid] = whiteDisc, whiteDisc
	b.cells[mid-1][mid], b.cells[mid][mid-1] = blackDisc, blackDisc
	return b
}

// Copy returns a value copy of the board.
func (b *Othello) Copy() Board {
	c := *b
	return &c
}

// Set places a disc of color at a, without flipping. Used to build
// positions in tests and tools.
func (b *Othello) Set(a Action, color Color) {
	b.cells[a.Row][a.Col] = disc(color)
}

// At returns the color of the disc at a, false when the square is empty.
func (b *Othello) At(a Action) (Color, bool) {
	switch b.cells[a.Row][a.Col] {
	case blackDisc:
		return Black, true
	case whiteDisc:
		return White, true
	}
	return 0, false
}

func (b *Othello) LegalActions(color Color) []Action {
	own := disc(color)
	var actions []Action
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			a := Action{Row: row, Col: col}
			if b.cells[row][col] == empty && b.flanks(a, own) {
				actions = append(actions, a)
			}
		}
	}
	return actions
}

func (b *Othello) flanks(a Action, own square) bool {
	for _, d := range directions {
		if b.run(a, d, own) > 0 {
			return true
		}
	}
	return false
}

// run counts the opponent discs between a and the next own disc in
// direction d, zero when the line is not closed by own.
func (b *Othello) run(a Action, d [2]int, own square) int {
	n := 0
	p := Action{Row: a.Row + d[0], Col: a.Col + d[1]}
	for p.onBoard() {
		switch b.cells[p.Row][p.Col] {
		case empty:
			return 0
		case own:
			return n
		}
		n++
		p = Action{Row: p.Row + d[0], Col: p.Col + d[1]}
	}
	return 0
}

// Apply places a disc for color at a and flips every flanked line.
func (b *Othello) Apply(a Action, color Color) {
	own := disc(color)
	if !a.onBoard() || b.cells[a.Row][a.Col] != empty {
		panic(fmt.Sprintf("illegal move %v for %v", a, color))
	}

	flipped := 0
	for _, d := range directions {
		n := b.run(a, d, own)
		for i := 1; i <= n; i++ {
			b.cells[a.Row+i*d[0]][a.Col+i*d[1]] = own
		}
		flipped += n
	}
	if flipped == 0 {
		panic(fmt.Sprintf("illegal move %v for %v", a, color))
	}
	b.cells[a.Row][a.Col] = own
}

// Counts returns the number of black and white discs.
func (b *Othello) Counts() (black, white int) {
	for row := range b.cells {
		for _, sq := range b.cells[row] {
			switch sq {
			case blackDisc:
				black++
			case whiteDisc:
				white++
			}
		}
	}
	return black, white
}

func (b *Othello) Winner() (Outcome, int) {
	black, white := b.Counts()
	switch {
	case black > white:
		return BlackWins, black - white
	case white > black:
		return WhiteWins, white - black
	}
	return Draw, 0
}

func (b *Othello) String() string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < Size; col++ {
			switch b.cells[row][col] {
			case blackDisc:
				sb.WriteString(" X")
			case whiteDisc:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
