package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Run("new game", func(t *testing.T) {
		s := New()

		require.Equal(t, X, s.Player())
		require.Len(t, s.LegalMoves(), Size*Size)
		require.Equal(t, Move{Row: 0, Col: 0}, s.LegalMoves()[0], "Moves should be listed in row-major order")
		require.Equal(t, 0.0, s.Evaluate(X))
		require.False(t, s.IsOver())
	})

	t.Run("play is immutable", func(t *testing.T) {
		s := New()

		next := s.Play(Move{Row: 1, Col: 1})

		require.Equal(t, None, s.Board.Cell(1, 1), "Original state should not change")
		require.Equal(t, X, next.Board.Cell(1, 1))
		require.Equal(t, O, next.Player())
		require.Len(t, next.LegalMoves(), 8)
	})

	t.Run("playing a taken cell panics", func(t *testing.T) {
		s := New().Play(Move{Row: 0, Col: 0})

		require.Panics(t, func() { s.Play(Move{Row: 0, Col: 0}) })
	})

	t.Run("win ends the game", func(t *testing.T) {
		s := New()
		for _, move := range []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
			s = s.Play(move)
		}

		require.Equal(t, X, s.Winner())
		require.True(t, s.IsOver())
		require.Empty(t, s.LegalMoves())
		require.Equal(t, float64(WinScore), s.Evaluate(X))
		require.Equal(t, float64(LossScore), s.Evaluate(O))
	})

	t.Run("full board without line is a draw", func(t *testing.T) {
		s := New()
		for _, move := range []Move{{2, 0}, {0, 0}, {0, 2}, {1, 1}, {0, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 0}} {
			s = s.Play(move)
		}

		require.Equal(t, None, s.Winner())
		require.True(t, s.IsOver())
		require.Empty(t, s.LegalMoves())
		require.Equal(t, 0.0, s.Evaluate(X))
	})

	t.Run("shuffled moves are a permutation", func(t *testing.T) {
		s := NewShuffled(42)

		require.ElementsMatch(t, New().LegalMoves(), s.LegalMoves())
	})

	t.Run("zero scores ignore lines", func(t *testing.T) {
		s := NewZeroScores()
		for _, move := range []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
			s = s.Play(move)
		}

		require.Equal(t, X, s.Winner())
		require.Equal(t, 0.0, s.Evaluate(X))
		require.Equal(t, 0.0, s.Evaluate(O))
	})
}

func TestBoard(t *testing.T) {
	var b Board
	b[2][0], b[1][1], b[0][2] = O, O, O

	require.True(t, b.HasLine(O), "Anti-diagonal should count")
	require.False(t, b.HasLine(X))
	require.False(t, Board{}.HasLine(None), "Empty cells never form a line")
	require.Equal(t, 6, b.Count(None))
	require.Equal(t, "  o\n o \no  \n", b.String())
}

func TestPlayer(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())
	require.Equal(t, None, None.Opponent())
	require.True(t, X.IsFriendsWith(X))
	require.False(t, X.IsFriendsWith(O))
}
