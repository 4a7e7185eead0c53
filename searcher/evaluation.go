package searcher

import (
	"fmt"
	"math"
)

// Evaluation is the outcome of a tree node from the objective player's point
// of view.
type Evaluation struct {
	Score float64
	// Age is the depth budget left when the score was found. Higher means
	// earlier, so a win is not delayed without reason.
	Age int
}

// IsBetterThan compares scores first and falls back to age when the scores are
// within Epsilon of each other.
func (e Evaluation) IsBetterThan(other Evaluation) bool {
	if math.Abs(e.Score-other.Score) < Epsilon {
		return e.Age > other.Age
	}
	return e.Score > other.Score
}

// Best returns the better of a and b, a on a tie
func Best(a, b Evaluation) Evaluation {
	if b.IsBetterThan(a) {
		return b
	}
	return a
}

// Worst returns the worse of a and b, a on a tie
func Worst(a, b Evaluation) Evaluation {
	if a.IsBetterThan(b) {
		return b
	}
	return a
}

func (e Evaluation) String() string {
	return fmt.Sprintf("<score: %v age: %d>", e.Score, e.Age)
}
