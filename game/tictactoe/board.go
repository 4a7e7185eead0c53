package tictactoe

import "strings"

const Size = 3

// Board tracks which player owns which cell. It is an array, so assigning a
// Board copies it.
type Board [Size][Size]Player

func (b Board) Cell(row, col int) Player {
	return b[row][col]
}

// EmptyCells lists the free cells in row-major order
func (b Board) EmptyCells() []Move {
	var cells []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == None {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (b Board) Count(player Player) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == player {
				count++
			}
		}
	}
	return count
}

// HasLine reports whether player owns a whole row, column or diagonal
func (b Board) HasLine(player Player) bool {
	if player == None {
		return false
	}
	for i := 0; i < Size; i++ {
		if b[i][0] == player && b[i][1] == player && b[i][2] == player {
			return true
		}
		if b[0][i] == player && b[1][i] == player && b[2][i] == player {
			return true
		}
	}
	if b[0][0] == player && b[1][1] == player && b[2][2] == player {
		return true
	}
	return b[2][0] == player && b[1][1] == player && b[0][2] == player
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
