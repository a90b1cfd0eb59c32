package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Action {
	t.Helper()
	a, err := ParseAction(s)
	require.NoError(t, err)
	return a
}

func TestOthelloLegalActions(t *testing.T) {
	t.Run("opening moves for black", func(t *testing.T) {
		b := NewOthello()

		got := b.LegalActions(Black)

		want := []Action{mustParse(t, "D3"), mustParse(t, "C4"), mustParse(t, "F5"), mustParse(t, "E6")}
		require.Equal(t, want, got, "Black should have the four symmetric opening moves")
	})

	t.Run("opening moves for white", func(t *testing.T) {
		b := NewOthello()

		got := b.LegalActions(White)

		want := []Action{mustParse(t, "E3"), mustParse(t, "F4"), mustParse(t, "C5"), mustParse(t, "D6")}
		require.Equal(t, want, got, "White should have the four symmetric opening moves")
	})

	t.Run("no moves on an empty board", func(t *testing.T) {
		b := &Othello{}

		require.Empty(t, b.LegalActions(Black))
		require.Empty(t, b.LegalActions(White))
		require.True(t, Terminal(b), "Empty board should be terminal")
	})
}

func TestOthelloApply(t *testing.T) {
	t.Run("flipping a single line", func(t *testing.T) {
		b := NewOthello()

		b.Apply(mustParse(t, "D3"), Black)

		black, white := b.Counts()
		require.Equal(t, 4, black, "Black should own the new disc and the flipped one")
		require.Equal(t, 1, white, "White should lose one disc")
		color, ok := b.At(mustParse(t, "D4"))
		require.True(t, ok)
		require.Equal(t, Black, color, "D4 should be flipped")
	})

	t.Run("flipping several directions at once", func(t *testing.T) {
		b := &Othello{}
		b.Set(mustParse(t, "A1"), Black)
		b.Set(mustParse(t, "B2"), White)
		b.Set(mustParse(t, "C1"), Black)
		b.Set(mustParse(t, "C2"), White)

		b.Apply(mustParse(t, "C3"), Black)

		black, white := b.Counts()
		require.Equal(t, 5, black, "Both white discs should be flipped")
		require.Equal(t, 0, white)
	})

	t.Run("illegal move panics", func(t *testing.T) {
		b := NewOthello()

		require.Panics(t, func() { b.Apply(mustParse(t, "A1"), Black) }, "Move without flips should panic")
		require.Panics(t, func() { b.Apply(mustParse(t, "D4"), Black) }, "Move on an occupied square should panic")
	})
}

func TestOthelloCopy(t *testing.T) {
	b := NewOthello()

	c := b.Copy()
	c.Apply(mustParse(t, "D3"), Black)

	black, white := b.Counts()
	require.Equal(t, 2, black, "Original should not see moves applied to the copy")
	require.Equal(t, 2, white, "Original should not see moves applied to the copy")
}

func TestOthelloWinner(t *testing.T) {
	t.Run("draw at the start", func(t *testing.T) {
		outcome, diff := NewOthello().Winner()

		require.Equal(t, Draw, outcome)
		require.Equal(t, 0, diff)
	})

	t.Run("black ahead", func(t *testing.T) {
		b := NewOthello()
		b.Apply(mustParse(t, "D3"), Black)

		outcome, diff := b.Winner()

		require.Equal(t, BlackWins, outcome)
		require.Equal(t, 3, diff)
	})

	t.Run("white ahead on an unfinished board", func(t *testing.T) {
		b := &Othello{}
		b.Set(mustParse(t, "A1"), White)
		b.Set(mustParse(t, "H8"), White)
		b.Set(mustParse(t, "D4"), Black)

		outcome, diff := b.Winner()

		require.Equal(t, WhiteWins, outcome)
		require.Equal(t, 1, diff)
	})
}

func TestTerminalIsStable(t *testing.T) {
	b := &Othello{}
	b.Set(mustParse(t, "A1"), Black)

	for i := 0; i < 3; i++ {
		require.True(t, Terminal(b), "Terminal should not change without a move")
	}
}

func TestParseAction(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		a, err := ParseAction("d3")

		require.NoError(t, err)
		require.Equal(t, Action{Row: 2, Col: 3}, a)
		require.Equal(t, "D3", a.String())
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		for _, s := range []string{"", "Z1", "A9", "A10", "33"} {
			_, err := ParseAction(s)
			require.Error(t, err, "Should reject %q", s)
		}
	})
}

func TestColor(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Panics(t, func() { Color(7).Opponent() }, "Unknown colors are a contract violation")

	c, err := ParseColor("o")
	require.NoError(t, err)
	require.Equal(t, White, c)
	_, err = ParseColor("red")
	require.Error(t, err)
}
