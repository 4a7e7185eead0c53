package reversi

type Player int8

const (
	None Player = iota
	Blue
	Red
)

func (p Player) Equals(other Player) bool {
	return p == other
}

func (p Player) IsFriendsWith(other Player) bool {
	return p.Equals(other)
}

func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Blue:
		return "B"
	case Red:
		return "R"
	default:
		return "."
	}
}
