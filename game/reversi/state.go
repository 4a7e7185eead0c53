// Package reversi is an 8x8 disk-flipping game. Its search space is much
// larger than tictactoe's, which makes it suited to measure pruning.
package reversi

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrIllegalPass  = errors.New("cannot pass after the previous player passed")
	ErrPassWithMove = errors.New("cannot pass while a placement is possible")
)

type Move struct {
	Row  int
	Col  int
	Pass bool
}

var PassMove = Move{Pass: true}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

type State struct {
	Board Board
	turn  Player
	// lastPassed is set when the previous player could not place a disk. A
	// second pass in a row ends the game.
	lastPassed bool
}

// New returns the starting position with Blue to move
func New() State {
	return State{Board: NewBoard(), turn: Blue}
}

func (s State) Player() Player {
	return s.turn
}

// LegalMoves lists placements in row-major order. A player without placements
// must pass, unless the previous player passed too: then the game is over.
func (s State) LegalMoves() []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if len(s.Board.flips(row, col, s.turn)) > 0 {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	if len(moves) == 0 && !s.lastPassed {
		moves = append(moves, PassMove)
	}
	return moves
}

// Play applies a move produced by LegalMoves and panics on anything else. Use
// MakeMove or Pass for unchecked input.
func (s State) Play(move Move) State {
	var next State
	var err error
	if move.Pass {
		next, err = s.Pass()
	} else {
		next, err = s.MakeMove(move.Row, move.Col)
	}
	if err != nil {
		panic(fmt.Sprintf("playing %v: %v", move, err))
	}
	return next
}

// MakeMove places a disk for the player to move and flips the captured disks
func (s State) MakeMove(row, col int) (State, error) {
	if !IsWithinBounds(row, col) {
		return s, fmt.Errorf("(%d, %d) is off the board: %w", row, col, ErrIllegalMove)
	}
	captured := s.Board.flips(row, col, s.turn)
	if len(captured) == 0 {
		return s, fmt.Errorf("(%d, %d) captures nothing for %v: %w", row, col, s.turn, ErrIllegalMove)
	}

	s.Board[row][col] = s.turn
	for _, cell := range captured {
		s.Board[cell[0]][cell[1]] = s.turn
	}
	s.lastPassed = false
	s.turn = s.turn.Opponent()
	return s, nil
}

func (s State) Pass() (State, error) {
	if s.canPlace() {
		return s, ErrPassWithMove
	}
	if s.lastPassed {
		return s, ErrIllegalPass
	}
	s.lastPassed = true
	s.turn = s.turn.Opponent()
	return s, nil
}

func (s State) canPlace() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if len(s.Board.flips(row, col, s.turn)) > 0 {
				return true
			}
		}
	}
	return false
}

// Evaluate returns the disk difference from player's perspective
func (s State) Evaluate(player Player) float64 {
	return float64(s.Board.Count(player) - s.Board.Count(player.Opponent()))
}

// Winner returns None unless the game is over and one player owns more disks
func (s State) Winner() Player {
	if len(s.LegalMoves()) > 0 {
		return None
	}
	blue, red := s.Board.Count(Blue), s.Board.Count(Red)
	switch {
	case blue > red:
		return Blue
	case red > blue:
		return Red
	default:
		return None
	}
}

func (s State) String() string {
	return s.Board.String()
}
