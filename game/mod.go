package game

import "fmt"

// Color is one of the two sides of the board.
type Color int8

const (
	Black Color = iota // 'X', moves first
	White              // 'O'
)

// Opponent returns the other color. Any value other than Black or White
// is a programming error.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("invalid color %d", c))
}

func (c Color) Valid() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	}
	return fmt.Sprintf("Color(%d)", c)
}

// Name is the human-readable side name
func (c Color) Name() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// ParseColor accepts "X"/"O" in either case, or "black"/"white".
func ParseColor(s string) (Color, error) {
	switch s {
	case "X", "x", "black", "Black":
		return Black, nil
	case "O", "o", "white", "White":
		return White, nil
	}
	return 0, fmt.Errorf("unknown color %q: want X or O", s)
}

// Outcome of a (possibly unfinished) game as reported by Board.Winner.
type Outcome int

const (
	BlackWins Outcome = iota
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black"
	case WhiteWins:
		return "white"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// Board is the game state consumed by the searcher. Implementations own
// their cells: Copy must return a value copy that shares no mutable
// memory with the receiver.
type Board interface {
	// LegalActions lists the squares color may play on. Empty means the
	// side has to pass.
	LegalActions(color Color) []Action
	// Apply plays action for color in place. The action must be legal.
	Apply(action Action, color Color)
	// Winner reports who is ahead and by how many discs. Valid on any
	// state, finished or not.
	Winner() (Outcome, int)
	Copy() Board
}

// Terminal reports whether neither side has a legal action.
func Terminal(board Board) bool {
	return len(board.LegalActions(Black)) == 0 && len(board.LegalActions(White)) == 0
}
