package reversi

const Size = 8

// Board tracks which player owns which cell
type Board [Size][Size]Player

// NewBoard returns the starting position with two disks per player in the
// center.
func NewBoard() Board {
	var b Board
	b[3][3] = Blue
	b[3][4] = Red
	b[4][3] = Red
	b[4][4] = Blue
	return b
}

func (b Board) Cell(row, col int) Player {
	return b[row][col]
}

func IsWithinBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsOwnedBy is false for cells outside of the board
func (b Board) IsOwnedBy(row, col int, player Player) bool {
	if !IsWithinBounds(row, col) {
		return false
	}
	return b[row][col] == player
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

// directions enumerates the eight neighbors of a cell
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flips returns the opponent disks captured when player places a disk at
// (row, col). The placement is legal iff the result is non-empty.
func (b Board) flips(row, col int, player Player) [][2]int {
	if b[row][col] != None {
		return nil
	}
	opponent := player.Opponent()

	var captured [][2]int
	for _, d := range directions {
		// Bordering an opponent, look in that direction for our anchor disk
		r, c := row+d[0], col+d[1]
		var line [][2]int
		for b.IsOwnedBy(r, c, opponent) {
			line = append(line, [2]int{r, c})
			r, c = r+d[0], c+d[1]
		}
		if len(line) > 0 && b.IsOwnedBy(r, c, player) {
			captured = append(captured, line...)
		}
	}
	return captured
}

func (b Board) String() string {
	buf := make([]byte, 0, Size*(Size+1))
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			buf = append(buf, b[row][col].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
