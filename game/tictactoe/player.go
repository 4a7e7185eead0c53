package tictactoe

type Player int8

const (
	None Player = iota
	X
	O
)

func (p Player) Equals(other Player) bool {
	return p == other
}

// Two-player game, nobody has friends
func (p Player) IsFriendsWith(other Player) bool {
	return p.Equals(other)
}

func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return " "
	}
}
