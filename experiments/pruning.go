package experiments

import (
	"fmt"
	"math"

	"minimax/game"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
)

// PruningComparison holds the outcome of one position searched with and
// without alpha-beta pruning
type PruningComparison struct {
	Depth           int
	PrunedNodes     int
	ExhaustiveNodes int
	PrunedScore     float64
	ExhaustiveScore float64
	// SameMove is false when both searches found equally scored moves but
	// picked different ones
	SameMove bool
}

// Saved is the share of nodes the pruned search did not have to evaluate
func (c PruningComparison) Saved() float64 {
	if c.ExhaustiveNodes == 0 {
		return 0
	}
	return 1 - float64(c.PrunedNodes)/float64(c.ExhaustiveNodes)
}

// ScoresMatch is true when pruning did not change the evaluation of state
func (c PruningComparison) ScoresMatch() bool {
	return math.Abs(c.PrunedScore-c.ExhaustiveScore) < searcher.Epsilon
}

// ComparePruning searches state for objective twice, once pruned and once
// exhaustively, at the given depth.
func ComparePruning[S game.State[S, M, P], M comparable, P game.Player[P]](state S, objective P, depth int) (PruningComparison, error) {
	pruned := searcher.NewEngine[S, M](objective, depth)
	exhaustive := searcher.NewEngine[S, M](objective, depth, searcher.WithoutPruning())

	prunedMove, err := pruned.Decide(state)
	if err != nil {
		return PruningComparison{}, fmt.Errorf("pruned search: %w", err)
	}
	exhaustiveMove, err := exhaustive.Decide(state)
	if err != nil {
		return PruningComparison{}, fmt.Errorf("exhaustive search: %w", err)
	}

	// Neither can fail after a successful Decide
	prunedAnalytics, _ := pruned.Analytics()
	exhaustiveAnalytics, _ := exhaustive.Analytics()
	prunedEval, _ := pruned.Evaluation()
	exhaustiveEval, _ := exhaustive.Evaluation()

	c := PruningComparison{
		Depth:           depth,
		PrunedNodes:     prunedAnalytics.NodesEvaluated,
		ExhaustiveNodes: exhaustiveAnalytics.NodesEvaluated,
		PrunedScore:     prunedEval.Score,
		ExhaustiveScore: exhaustiveEval.Score,
		SameMove:        prunedMove == exhaustiveMove,
	}

	log.Info().
		Int("depth", depth).
		Int("pruned", c.PrunedNodes).
		Int("exhaustive", c.ExhaustiveNodes).
		Bool("sameMove", c.SameMove).
		Msgf("pruning saved %.1f%% of the nodes", 100*c.Saved())

	return c, nil
}
