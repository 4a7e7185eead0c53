package engine

import (
	"testing"

	"minimax/experiments/metrics"
	"minimax/game/reversi"
	"minimax/game/tictactoe"
	"minimax/player"
	"minimax/searcher"

	"github.com/stretchr/testify/require"
)

type ticTacToeSeat = Seat[tictactoe.State, tictactoe.Move, tictactoe.Player]

func minimaxSeat(p tictactoe.Player, depth int) ticTacToeSeat {
	engine := searcher.NewEngine[tictactoe.State, tictactoe.Move](p, depth, searcher.WithMetrics())
	return ticTacToeSeat{Player: p, Agent: player.NewMinimaxAgent(engine)}
}

// fixedAgent always plays the same move, legal or not
type fixedAgent struct {
	move tictactoe.Move
}

func (a fixedAgent) FindMove(tictactoe.State) (tictactoe.Move, metrics.SearchMetric, error) {
	return a.move, metrics.SearchMetric{}, nil
}

var _ Engine[tictactoe.State] = LocalEngine(tictactoe.New(), []ticTacToeSeat{{}, {}})

func TestLocalEngineRun(t *testing.T) {
	t.Run("perfect play is a draw", func(t *testing.T) {
		e := LocalEngine(tictactoe.New(), []ticTacToeSeat{
			minimaxSeat(tictactoe.X, 6),
			minimaxSeat(tictactoe.O, 6),
		})

		final, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, final.IsOver())
		require.Equal(t, 0, final.Board.Count(tictactoe.None))
		require.Equal(t, final, e.State())
		require.Equal(t, "x", gameMetric.StartingPlayer)
		require.Empty(t, gameMetric.Winner, "Draw should have no winner")
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 9)
		require.Equal(t, 1, moveMetrics[0].Step)
		require.Equal(t, "x", moveMetrics[0].Player)
		require.Equal(t, "o", moveMetrics[1].Player)
		require.Equal(t, 6, moveMetrics[0].Depth)
		require.Positive(t, moveMetrics[0].Nodes)
	})

	t.Run("engine beats a random player or draws", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			e := LocalEngine(tictactoe.New(), []ticTacToeSeat{
				{Player: tictactoe.X, Agent: player.NewRandomAgent[tictactoe.State, tictactoe.Move, tictactoe.Player](seed)},
				minimaxSeat(tictactoe.O, 6),
			})

			_, gameMetric, _, err := e.Run()

			require.NoError(t, err)
			require.NotEqual(t, "x", gameMetric.Winner, "seed %d", seed)
		}
	})

	t.Run("illegal move aborts the game", func(t *testing.T) {
		e := LocalEngine(tictactoe.New(), []ticTacToeSeat{
			{Player: tictactoe.X, Agent: fixedAgent{move: tictactoe.Move{Row: 1, Col: 1}}},
			{Player: tictactoe.O, Agent: fixedAgent{move: tictactoe.Move{Row: 1, Col: 1}}},
		})

		final, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Len(t, moveMetrics, 1, "X's move should be recorded")
		require.Equal(t, tictactoe.X, final.Board.Cell(1, 1))
	})

	t.Run("missing seat", func(t *testing.T) {
		e := LocalEngine(tictactoe.New(), []ticTacToeSeat{
			minimaxSeat(tictactoe.O, 2),
			minimaxSeat(tictactoe.O, 2),
		})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, ErrNoAgent)
	})

	t.Run("max turns stops the game", func(t *testing.T) {
		e := LocalEngine(tictactoe.New(), []ticTacToeSeat{
			minimaxSeat(tictactoe.X, 2),
			minimaxSeat(tictactoe.O, 2),
		}).WithMaxTurns(3)

		final, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.False(t, final.IsOver())
		require.Empty(t, gameMetric.Winner)
	})

	t.Run("too few seats", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(tictactoe.New(), []ticTacToeSeat{minimaxSeat(tictactoe.X, 1)})
		})
	})

	t.Run("reversi game ends with a winner or a draw", func(t *testing.T) {
		e := LocalEngine(reversi.New(), []Seat[reversi.State, reversi.Move, reversi.Player]{
			{Player: reversi.Blue, Agent: player.NewMinimaxAgent(searcher.NewEngine[reversi.State, reversi.Move](reversi.Blue, 1))},
			{Player: reversi.Red, Agent: player.NewRandomAgent[reversi.State, reversi.Move, reversi.Player](7)},
		})

		final, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Empty(t, final.LegalMoves())
		require.Equal(t, "B", gameMetric.StartingPlayer)
		require.Equal(t, final.Winner().String(), map[reversi.Player]string{
			reversi.Blue: "B",
			reversi.Red:  "R",
			reversi.None: ".",
		}[final.Winner()])
		if final.Winner() == reversi.None {
			require.Empty(t, gameMetric.Winner)
		} else {
			require.Equal(t, final.Winner().String(), gameMetric.Winner)
		}
	})
}
