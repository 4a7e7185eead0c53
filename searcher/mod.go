// Package searcher implements a depth-limited minimax search with alpha-beta
// pruning over any game implementing the game.State contract.
package searcher

import "fmt"

// Scores closer than Epsilon are considered equal
const Epsilon = 0.00001

// NodeType tells whether a node picks the most or the least favorable outcome
// for the objective player.
type NodeType int

const (
	Max NodeType = iota
	Min
)

// Alternate returns the opposite node type
func (t NodeType) Alternate() NodeType {
	switch t {
	case Max:
		return Min
	case Min:
		return Max
	default:
		panic(fmt.Sprintf("unknown node type %d", int(t)))
	}
}

// prefers reports whether candidate should replace current as the ideal
// outcome of a node of this type. Equal evaluations never replace. An inexact
// candidate comes from a subtree that was cut off, its score is only a bound
// and it replaces current on a strictly better score alone.
func (t NodeType) prefers(candidate, current Evaluation, exact bool) bool {
	if !exact {
		switch t {
		case Max:
			return candidate.Score-current.Score >= Epsilon
		case Min:
			return current.Score-candidate.Score >= Epsilon
		}
	}

	switch t {
	case Max:
		return candidate.IsBetterThan(current)
	case Min:
		return current.IsBetterThan(candidate)
	default:
		panic(fmt.Sprintf("unknown node type %d", int(t)))
	}
}

func (t NodeType) String() string {
	switch t {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}
