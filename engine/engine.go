package engine

import (
	"errors"

	"minimax/experiments/metrics"
)

var (
	ErrNoAgent     = errors.New("no agent plays for this player")
	ErrIllegalMove = errors.New("illegal move")
)

type Engine[S any] interface {
	// Run plays a game till no moves are left or a max number of turns is reached
	Run() (final S, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
