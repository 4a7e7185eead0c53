package searcher

import (
	"minimax/game"

	"github.com/rs/zerolog/log"
)

// result is what a node hands back to its parent. move is only set for
// internal nodes: the caller at the root needs it, the parents above do not.
type result[M any] struct {
	move       M
	hasMove    bool
	evaluation Evaluation

	// exact is false if the evaluation was found in a subtree that skipped
	// moves after a cutoff
	exact     bool
	analytics Analytics
}

type node[S game.State[S, M, P], M any, P game.Player[P]] struct {
	objective P
	state     S
	depthLeft int
	nodeType  NodeType
	bound     Bound
	pruning   bool
}

// traverse determines the ideal move of this node: the best outcome if the
// objective player (or a friend) is to move, the worst otherwise, since the
// opponent is assumed to play optimally as well.
func (n *node[S, M, P]) traverse() result[M] {
	if n.depthLeft == 0 {
		return n.leaf()
	}

	moves := n.state.LegalMoves()
	if len(moves) == 0 { // Terminal node
		return n.leaf()
	}

	analytics := internalAnalytics()
	var ideal result[M]
	cutoff := false
	for i, move := range moves {
		if n.pruning && !n.bound.IsPositiveRange() {
			cutoff = true
			// Remaining siblings cannot change what the parent sees
			log.Trace().
				Stringer("type", n.nodeType).
				Stringer("bound", n.bound).
				Int("depthLeft", n.depthLeft).
				Int("skipped", len(moves)-i).
				Msg("cutoff")
			break
		}

		child := n.child(move)
		analytics.Add(child.analytics)
		n.bound.Update(child.evaluation, n.nodeType)

		if !ideal.hasMove || n.nodeType.prefers(child.evaluation, ideal.evaluation, child.exact) {
			ideal = result[M]{move: move, hasMove: true, evaluation: child.evaluation, exact: child.exact}
		}
	}

	ideal.exact = ideal.exact && !cutoff
	ideal.analytics = analytics
	return ideal
}

func (n *node[S, M, P]) leaf() result[M] {
	return result[M]{
		evaluation: Evaluation{
			Score: n.state.Evaluate(n.objective),
			Age:   n.depthLeft,
		},
		exact:     true,
		analytics: leafAnalytics(),
	}
}

// child plays move and searches the resulting state one level deeper
func (n *node[S, M, P]) child(move M) result[M] {
	state := n.state.Play(move)
	next := &node[S, M, P]{
		objective: n.objective,
		state:     state,
		depthLeft: n.depthLeft - 1,
		nodeType:  nodeTypeFor(state.Player(), n.objective),
		bound:     n.bound, // Copy: siblings must not see each other's updates
		pruning:   n.pruning,
	}
	return next.traverse()
}

// nodeTypeFor returns Max if next is allied with the objective player. In team
// games polarity does not simply alternate every ply.
func nodeTypeFor[P game.Player[P]](next, objective P) NodeType {
	if next.IsFriendsWith(objective) {
		return Max
	}
	return Min
}
