package experiments

import (
	"errors"
	"fmt"
	"os"

	"minimax/experiments/metrics"
	"minimax/meta"

	"gopkg.in/yaml.v3"
)

const (
	TicTacToe = "tictactoe"
	Reversi   = "reversi"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// MatchUp pairs two agents by ID, First moves first
type MatchUp struct {
	First  int `yaml:"first"`
	Second int `yaml:"second"`
}

type Config struct {
	Name        string                `yaml:"name"`
	Game        string                `yaml:"game"`
	Games       int                   `yaml:"games"` // Per matchup
	Concurrency int                   `yaml:"concurrency"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    []MatchUp             `yaml:"matchups"`
}

// DefaultConfig pits a random agent and a shallow engine against a deep
// tictactoe engine, and the deep engine against itself.
func DefaultConfig() Config {
	return Config{
		Name:        "default",
		Game:        TicTacToe,
		Games:       meta.GamesPerMatchUp,
		Concurrency: 4,
		Agents: []metrics.AgentConfig{
			{ID: 1, Random: true, Seed: 1},
			{ID: 2, Depth: 2, Pruning: true},
			{ID: 3, Depth: 6, Pruning: true},
		},
		MatchUps: []MatchUp{
			{First: 1, Second: 3},
			{First: 2, Second: 3},
			{First: 3, Second: 3},
		},
	}
}

// LoadConfig reads a YAML experiment description. Missing values fall back to
// the defaults of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	defaults := DefaultConfig()
	cfg := Config{}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Name == "" {
		cfg.Name = defaults.Name
	}
	if cfg.Game == "" {
		cfg.Game = defaults.Game
	}
	if cfg.Games <= 0 {
		cfg.Games = defaults.Games
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaults.Concurrency
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = defaults.Agents
		cfg.MatchUps = defaults.MatchUps
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Game != TicTacToe && c.Game != Reversi {
		return fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, c.Game)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true
		if !agent.Random && agent.Depth < 1 {
			return fmt.Errorf("%w: agent %d needs a depth of at least 1", ErrInvalidConfig, agent.ID)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for _, m := range c.MatchUps {
		if !ids[m.First] || !ids[m.Second] {
			return fmt.Errorf("%w: matchup %d vs %d references an unknown agent", ErrInvalidConfig, m.First, m.Second)
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("agent %d not found", id))
}
