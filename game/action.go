package game

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board
const Size = 8

// Action is a board coordinate. Row and Col are zero based; the text
// form is the column letter followed by the row number, e.g. "D3".
type Action struct {
	Row int
	Col int
}

func (a Action) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(a.Col), a.Row+1)
}

func (a Action) onBoard() bool {
	return a.Row >= 0 && a.Row < Size && a.Col >= 0 && a.Col < Size
}

// ParseAction reads a coordinate such as "d3" or "D3".
func ParseAction(s string) (Action, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Action{}, fmt.Errorf("invalid coordinate %q: want a letter A-H and a digit 1-8", s)
	}
	col, row := s[0], s[1]
	if col < 'A' || col > 'H' || row < '1' || row > '8' {
		return Action{}, fmt.Errorf("invalid coordinate %q: want a letter A-H and a digit 1-8", s)
	}
	return Action{Row: int(row - '1'), Col: int(col - 'A')}, nil
}
