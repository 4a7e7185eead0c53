package searcher

import (
	"fmt"
	"math"
)

// Bound is the alpha/beta window of one path from the root. It is a value
// type: every child node receives its own copy.
type Bound struct {
	// Alpha is the score the maximizing side is already guaranteed
	Alpha float64
	// Beta is the score the minimizing side is already guaranteed
	Beta float64
}

func InitialBound() Bound {
	return Bound{Alpha: math.Inf(-1), Beta: math.Inf(1)}
}

// Update tightens the bound with the evaluation of a child of a node of the
// given type.
func (b *Bound) Update(evaluation Evaluation, t NodeType) {
	switch t {
	case Max:
		b.Alpha = math.Max(b.Alpha, evaluation.Score)
	case Min:
		b.Beta = math.Min(b.Beta, evaluation.Score)
	}
}

// IsPositiveRange reports whether alpha..inf and -inf..beta still overlap.
// If not, the remaining siblings cannot change the outcome seen by the parent.
func (b Bound) IsPositiveRange() bool {
	return b.Alpha < b.Beta
}

func (b Bound) String() string {
	return fmt.Sprintf("(%v, %v)", b.Alpha, b.Beta)
}
