package engine

import (
	"fmt"
	"time"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"minimax/player"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Seat binds an agent to the player it moves for
type Seat[S any, M any, P any] struct {
	Player P
	Agent  player.Agent[S, M]
}

type localEngine[S game.State[S, M, P], M comparable, P game.Player[P]] struct {
	state    S
	seats    []Seat[S, M, P]
	maxTurns int
}

// LocalEngine runs a game in-process, starting from state. Every player that
// can be on turn needs a seat.
func LocalEngine[S game.State[S, M, P], M comparable, P game.Player[P]](state S, seats []Seat[S, M, P]) *localEngine[S, M, P] {
	if len(seats) < 2 {
		panic("need at least two seats")
	}
	return &localEngine[S, M, P]{
		state:    state,
		seats:    seats,
		maxTurns: meta.MaxTurns,
	}
}

// WithMaxTurns overrides meta.MaxTurns
func (e *localEngine[S, M, P]) WithMaxTurns(turns int) *localEngine[S, M, P] {
	if turns > 0 {
		e.maxTurns = turns
	}
	return e
}

func (e *localEngine[S, M, P]) State() S {
	return e.state
}

// Run executes the game loop until no moves are left or maxTurns is reached
func (e *localEngine[S, M, P]) Run() (S, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: fmt.Sprint(e.state.Player()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %v is starting", e.state.Player())

	turn := 1
	for ; turn <= e.maxTurns; turn++ {
		legalMoves := e.state.LegalMoves()
		if len(legalMoves) == 0 {
			break
		}

		current := e.state.Player()
		seat, err := e.seatFor(current)
		if err != nil {
			return e.state, gameMetric, moveMetrics, err
		}

		move, searchMetric, err := seat.Agent.FindMove(e.state)
		if err != nil {
			return e.state, gameMetric, moveMetrics, fmt.Errorf("turn %d, player %v: %w", turn, current, err)
		}
		if !lo.Contains(legalMoves, move) {
			return e.state, gameMetric, moveMetrics, fmt.Errorf("turn %d, player %v played %v: %w", turn, current, move, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       fmt.Sprint(current),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: player %v chose move %v", turn, current, move)

		e.state = e.state.Play(move)
	}

	if turn > e.maxTurns && len(e.state.LegalMoves()) > 0 {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = e.winner()
	return e.state, gameMetric, moveMetrics, nil
}

func (e *localEngine[S, M, P]) seatFor(p P) (Seat[S, M, P], error) {
	for _, seat := range e.seats {
		if seat.Player.Equals(p) {
			return seat, nil
		}
	}
	return Seat[S, M, P]{}, fmt.Errorf("player %v: %w", p, ErrNoAgent)
}

// winner is the seated player with a positive score once the game is over
func (e *localEngine[S, M, P]) winner() string {
	if len(e.state.LegalMoves()) > 0 {
		return ""
	}
	for _, seat := range e.seats {
		if e.state.Evaluate(seat.Player) > 0 {
			return fmt.Sprint(seat.Player)
		}
	}
	return ""
}
