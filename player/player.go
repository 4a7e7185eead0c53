package player

import (
	"errors"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"

	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no possible moves")

// Agent picks the move to play for the player whose turn it is
type Agent[S any, M any] interface {
	// FindMove returns a move and performance metrics (if collected) of the search
	FindMove(state S) (M, metrics.SearchMetric, error)
}

type minimaxAgent[S game.State[S, M, P], M any, P game.Player[P]] struct {
	engine *searcher.Engine[S, M, P]
}

// NewMinimaxAgent returns an agent that lets engine decide every move
func NewMinimaxAgent[S game.State[S, M, P], M any, P game.Player[P]](engine *searcher.Engine[S, M, P]) Agent[S, M] {
	return minimaxAgent[S, M, P]{engine: engine}
}

func (a minimaxAgent[S, M, P]) FindMove(state S) (M, metrics.SearchMetric, error) {
	move, err := a.engine.Decide(state)
	if err != nil {
		return move, metrics.SearchMetric{}, err
	}
	return move, a.engine.Metric(), nil
}

type randomAgent[S game.State[S, M, P], M any, P game.Player[P]] struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves. The same seed yields the same game.
func NewRandomAgent[S game.State[S, M, P], M any, P game.Player[P]](seed uint64) Agent[S, M] {
	return &randomAgent[S, M, P]{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, M, P]) FindMove(state S) (M, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		var none M
		return none, metrics.SearchMetric{}, ErrNoMoves
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
