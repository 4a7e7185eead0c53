package searcher

import (
	"errors"
	"fmt"

	"minimax/experiments/metrics"
	"minimax/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotOurTurn      = errors.New("it is not this player's turn")
	ErrNoPossibleMoves = errors.New("there are no possible moves")
	ErrInvalidDepth    = errors.New("max depth must be at least 1")
	ErrNoAnalytics     = errors.New("no decision has been made yet, call Decide first")
)

type Option func(o *options)

type options struct {
	pruning bool
	metrics metrics.Collector
}

// WithoutPruning makes the engine search the full tree. The resulting score
// does not change, only the number of evaluated nodes does.
func WithoutPruning() Option {
	return func(o *options) {
		o.pruning = false
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

// Engine decides moves for one player. Construct it with the player to
// optimize for and call Decide whenever it is that player's turn.
//
// An Engine is not safe for concurrent use, it remembers the analytics of the
// last decision.
type Engine[S game.State[S, M, P], M any, P game.Player[P]] struct {
	objective P
	maxDepth  int
	options

	last   *result[M]
	metric metrics.SearchMetric
}

// NewEngine returns an engine maximizing the score of objective, looking
// maxDepth moves ahead. The depth is validated by Decide.
func NewEngine[S game.State[S, M, P], M any, P game.Player[P]](objective P, maxDepth int, opts ...Option) *Engine[S, M, P] {
	e := &Engine[S, M, P]{ // Default values
		objective: objective,
		maxDepth:  maxDepth,
		options: options{
			pruning: true,
			metrics: metrics.NewDummyCollector(),
		},
	}
	for _, option := range opts {
		option(&e.options)
	}
	return e
}

func (e *Engine[S, M, P]) Objective() P {
	return e.objective
}

func (e *Engine[S, M, P]) MaxDepth() int {
	return e.maxDepth
}

func (e *Engine[S, M, P]) Pruning() bool {
	return e.pruning
}

// Decide evaluates the possible moves of state and returns the best one. The
// objective player must be the one to move in state. The state itself is left
// untouched, playing the move is up to the caller.
func (e *Engine[S, M, P]) Decide(state S) (M, error) {
	var none M
	if !state.Player().Equals(e.objective) {
		return none, fmt.Errorf("cannot decide for %v: %w", e.objective, ErrNotOurTurn)
	}
	if e.maxDepth < 1 {
		return none, fmt.Errorf("cannot decide with max depth %d: %w", e.maxDepth, ErrInvalidDepth)
	}
	if len(state.LegalMoves()) == 0 {
		return none, fmt.Errorf("cannot decide for %v: %w", e.objective, ErrNoPossibleMoves)
	}

	root := &node[S, M, P]{
		objective: e.objective,
		state:     state,
		depthLeft: e.maxDepth,
		nodeType:  Max,
		bound:     InitialBound(),
		pruning:   e.pruning,
	}

	e.metrics.Start(e.maxDepth, e.pruning)
	r := root.traverse()
	e.last = &r
	e.metric = e.metrics.Complete(
		r.analytics.NodesEvaluated,
		r.analytics.LeafNodesEvaluated,
		r.analytics.InternalNodesEvaluated,
		r.evaluation.Score,
	)

	if !r.hasMove {
		panic(fmt.Sprintf("could not find a move even though there are moves (max depth %d)", e.maxDepth))
	}

	log.Debug().
		Str("objective", fmt.Sprint(e.objective)).
		Int("depth", e.maxDepth).
		Bool("pruning", e.pruning).
		Int("nodes", r.analytics.NodesEvaluated).
		Stringer("evaluation", r.evaluation).
		Msgf("decided on move %v", r.move)

	return r.move, nil
}

// Analytics returns the node counts of the last decision
func (e *Engine[S, M, P]) Analytics() (Analytics, error) {
	if e.last == nil {
		return Analytics{}, ErrNoAnalytics
	}
	return e.last.analytics, nil
}

// Evaluation returns the root evaluation of the last decision
func (e *Engine[S, M, P]) Evaluation() (Evaluation, error) {
	if e.last == nil {
		return Evaluation{}, ErrNoAnalytics
	}
	return e.last.evaluation, nil
}

// Metric returns the search metric of the last decision. It is empty unless
// the engine was created WithMetrics.
func (e *Engine[S, M, P]) Metric() metrics.SearchMetric {
	return e.metric
}
