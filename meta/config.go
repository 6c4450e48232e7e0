package meta

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings that may be overridden from the environment.
type Config struct {
	First        string        `env:"REVERSI_FIRST"         envDefault:"human"`
	Second       string        `env:"REVERSI_SECOND"        envDefault:"greedy"`
	Games        int           `env:"REVERSI_GAMES"         envDefault:"1"`
	Bombs        int           `env:"REVERSI_BOMBS"         envDefault:"3"`
	Unflippables int           `env:"REVERSI_UNFLIPPABLES"  envDefault:"2"`
	Goroutines   int           `env:"REVERSI_MCTS_GOROUTINES" envDefault:"8"`
	Duration     time.Duration `env:"REVERSI_MCTS_DURATION" envDefault:"100ms"`
	Cutoff       int           `env:"REVERSI_MCTS_CUTOFF"   envDefault:"20"`
	Seed         uint64        `env:"REVERSI_SEED"`
	LogLevel     string        `env:"REVERSI_LOG_LEVEL"     envDefault:"info"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		First:        "human",
		Second:       "greedy",
		Games:        1,
		Bombs:        STARTING_BOMBS,
		Unflippables: STARTING_UNFLIPPABLES,
		Goroutines:   GO_ROUTINES,
		Duration:     SEARCH_DURATION,
		Cutoff:       WITH_CUTOFF,
		LogLevel:     "info",
	}
}

// LoadConfig parses the REVERSI_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot honour.
func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Bombs < 0 || c.Unflippables < 0 {
		return fmt.Errorf("special disc allowances cannot be negative (bombs=%d, unflippables=%d)", c.Bombs, c.Unflippables)
	}
	if c.Duration < 0 {
		return fmt.Errorf("mcts duration cannot be negative, got %s", c.Duration)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("mcts goroutines must be positive, got %d", c.Goroutines)
	}
	return nil
}
