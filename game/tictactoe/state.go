// Package tictactoe is a 3x3 marking game, small enough to be solved by the
// minimax engine from the empty board.
package tictactoe

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	WinScore  = 999
	LossScore = -WinScore
)

type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// State is everything needed to know the game at a specific point in time:
// the board and whose turn it is. From that it derives wins, scores and the
// possible moves.
type State struct {
	Board Board
	turn  Player

	// Variants for testing the engine
	shuffle    *rand.Rand
	zeroScores bool
}

// New returns an empty board with X to move
func New() State {
	return State{turn: X}
}

// NewShuffled returns a game that lists its possible moves in random order, to
// rule out engine results that depend on move order by coincidence.
func NewShuffled(seed uint64) State {
	return State{turn: X, shuffle: rand.New(rand.NewSource(seed))}
}

// NewZeroScores returns a game whose states always score 0, regardless of the
// board. The engine must still pick a move.
func NewZeroScores() State {
	return State{turn: X, zeroScores: true}
}

// Player returns the player that moves next
func (s State) Player() Player {
	return s.turn
}

func (s State) LegalMoves() []Move {
	if s.IsOver() {
		return nil
	}
	moves := s.Board.EmptyCells()
	if s.shuffle != nil {
		s.shuffle.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}
	return moves
}

// Play marks the cell for the player to move. The receiver is a copy, so the
// original state is left untouched.
func (s State) Play(move Move) State {
	if s.Board[move.Row][move.Col] != None {
		panic(fmt.Sprintf("cell %v is already taken by %v", move, s.Board[move.Row][move.Col]))
	}
	s.Board[move.Row][move.Col] = s.turn
	s.turn = s.turn.Opponent()
	return s
}

func (s State) Evaluate(player Player) float64 {
	if s.zeroScores {
		return 0
	}
	switch {
	case s.Board.HasLine(player):
		return WinScore
	case s.Board.HasLine(player.Opponent()):
		return LossScore
	default:
		return 0
	}
}

// Winner returns None while the game is undecided or drawn
func (s State) Winner() Player {
	switch {
	case s.Board.HasLine(X):
		return X
	case s.Board.HasLine(O):
		return O
	default:
		return None
	}
}

func (s State) IsOver() bool {
	return s.Winner() != None || s.Board.Count(None) == 0
}

func (s State) String() string {
	return s.Board.String()
}
