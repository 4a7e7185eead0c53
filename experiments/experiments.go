package experiments

import (
	"context"
	"fmt"

	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/game/reversi"
	"minimax/game/tictactoe"
	"minimax/player"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Result summarizes the games of one matchup
type Result struct {
	MatchUp
	FirstWins  int
	SecondWins int
	Draws      int

	// AvgNodes is the mean number of evaluated nodes per searched move
	AvgNodes float64
}

type job struct {
	id      int
	matchUp MatchUp
	game    int
}

// Run plays every matchup cfg.Games times. Games are independent, so up to
// cfg.Concurrency of them run at the same time, each with its own engines.
// Records are written to writer unless it is nil.
func Run(ctx context.Context, cfg Config, writer *metrics.Writer) ([]Result, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	jobs := []job{}
	for _, m := range cfg.MatchUps {
		for i := 0; i < cfg.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: m, game: i})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(jobs))

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			gameMetric, moveMetrics, err := playGame(cfg, j.matchUp, uint64(j.game))
			if err != nil {
				return fmt.Errorf("game %d (agent %d vs agent %d): %w", j.id, j.matchUp.First, j.matchUp.Second, err)
			}

			gameRecords[i] = metrics.GameRecord{
				ID:         j.id,
				Agent1:     j.matchUp.First,
				Agent2:     j.matchUp.Second,
				GameMetric: gameMetric,
			}
			moveRecords[i] = lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
				return metrics.MoveRecord{Game: j.id, MoveMetric: mm}
			})

			log.Debug().Msgf("completed game %d with winner: %q", j.id, gameMetric.Winner)
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	results := summarize(cfg, gameRecords, lo.Flatten(moveRecords))
	for _, r := range results {
		log.Info().Msgf("agent %d vs agent %d: %d-%d with %d draws, %.1f nodes per move",
			r.First, r.Second, r.FirstWins, r.SecondWins, r.Draws, r.AvgNodes)
	}

	if writer == nil {
		return results, nil
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return results, fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return results, fmt.Errorf("failed to store game records: %w", err)
	}
	err = writer.WriteMoveRecords(lo.Flatten(moveRecords))
	if err != nil {
		return results, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return results, nil
}

// Duplicate matchups are summarized together
func summarize(cfg Config, games []metrics.GameRecord, moves []metrics.MoveRecord) []Result {
	gamesByID := lo.KeyBy(games, func(r metrics.GameRecord) int { return r.ID })

	results := make([]Result, 0, len(cfg.MatchUps))
	for _, m := range cfg.MatchUps {
		ofMatchUp := lo.Filter(games, func(r metrics.GameRecord, _ int) bool {
			return r.Agent1 == m.First && r.Agent2 == m.Second
		})
		searched := lo.Filter(moves, func(r metrics.MoveRecord, _ int) bool {
			g := gamesByID[r.Game]
			return g.Agent1 == m.First && g.Agent2 == m.Second && r.Nodes > 0
		})

		result := Result{
			MatchUp: m,
			FirstWins: lo.CountBy(ofMatchUp, func(g metrics.GameRecord) bool {
				return g.Winner != "" && g.Winner == g.StartingPlayer
			}),
			SecondWins: lo.CountBy(ofMatchUp, func(g metrics.GameRecord) bool {
				return g.Winner != "" && g.Winner != g.StartingPlayer
			}),
			Draws: lo.CountBy(ofMatchUp, func(g metrics.GameRecord) bool {
				return g.Winner == ""
			}),
		}
		if len(searched) > 0 {
			nodes := lo.SumBy(searched, func(r metrics.MoveRecord) int { return r.Nodes })
			result.AvgNodes = float64(nodes) / float64(len(searched))
		}
		results = append(results, result)
	}
	return results
}

func playGame(cfg Config, m MatchUp, round uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	first, second := cfg.agent(m.First), cfg.agent(m.Second)
	switch cfg.Game {
	case TicTacToe:
		return play[tictactoe.State, tictactoe.Move](tictactoe.New(), tictactoe.X, tictactoe.O, first, second, round)
	case Reversi:
		return play[reversi.State, reversi.Move](reversi.New(), reversi.Blue, reversi.Red, first, second, round)
	default:
		return metrics.GameMetric{}, nil, fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, cfg.Game)
	}
}

func play[S game.State[S, M, P], M comparable, P game.Player[P]](initial S, p1, p2 P, first, second metrics.AgentConfig, round uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	seats := []engine.Seat[S, M, P]{
		{Player: p1, Agent: newAgent[S, M](first, p1, round)},
		{Player: p2, Agent: newAgent[S, M](second, p2, round)},
	}
	_, gameMetric, moveMetrics, err := engine.LocalEngine(initial, seats).Run()
	return gameMetric, moveMetrics, err
}

func newAgent[S game.State[S, M, P], M any, P game.Player[P]](config metrics.AgentConfig, p P, round uint64) player.Agent[S, M] {
	if config.Random {
		// Vary the seed per game, otherwise every game of a matchup is the same
		return player.NewRandomAgent[S, M, P](config.Seed + round)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return player.NewMinimaxAgent(searcher.NewEngine[S, M](p, config.Depth, options...))
}
