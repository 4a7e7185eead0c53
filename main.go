package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"minimax/experiments"
	"minimax/experiments/metrics"
	"minimax/game/reversi"
	"minimax/game/tictactoe"
	"minimax/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config (defaults to a tictactoe experiment)")
	out := flag.String("out", "results", "Directory to store the records in, empty to skip")
	debug := flag.Bool("debug", false, "Enable debug logging")
	compare := flag.String("compare", "", "Compare pruned and exhaustive search for a game instead (tictactoe or reversi)")
	depth := flag.Int("depth", meta.DefaultDepth, "Max depth for -compare")
	flag.Parse()

	setupLogging(*debug)

	if *compare != "" {
		err := comparePruning(*compare, *depth)
		if err != nil {
			log.Fatal().Err(err).Msg("comparison failed")
		}
		return
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load config")
		}
	}

	var writer *metrics.Writer
	if *out != "" {
		var err error
		writer, err = metrics.NewWriter(*out, cfg.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create experiment writer")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := experiments.Run(ctx, cfg, writer)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

func comparePruning(name string, maxDepth int) error {
	for d := 1; d <= maxDepth; d++ {
		var err error
		switch name {
		case experiments.TicTacToe:
			_, err = experiments.ComparePruning[tictactoe.State, tictactoe.Move](tictactoe.New(), tictactoe.X, d)
		case experiments.Reversi:
			_, err = experiments.ComparePruning[reversi.State, reversi.Move](reversi.New(), reversi.Blue, d)
		default:
			return fmt.Errorf("unknown game %q", name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
