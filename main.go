package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, cfgErr := meta.LoadConfig()

	first := flag.String("first", cfg.First, "first seat: human, greedy, random or mcts")
	second := flag.String("second", cfg.Second, "second seat: human, greedy, random or mcts")
	games := flag.Int("games", cfg.Games, "number of games to play")
	bombs := flag.Int("bombs", cfg.Bombs, "bombs per player per game")
	unflippables := flag.Int("unflippables", cfg.Unflippables, "unflippable discs per player per game")
	goroutines := flag.Int("goroutines", cfg.Goroutines, "number of goroutines for parallel playouts")
	duration := flag.Duration("duration", cfg.Duration, "duration of playouts per move, 0 for a fixed number of episodes")
	cutoff := flag.Int("cutoff", cfg.Cutoff, "max random playout depth before evaluation")
	seed := flag.Uint64("seed", cfg.Seed, "seed for random players, 0 for a time-based seed")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	experiment := flag.String("experiment", "", "run an experiment instead: baseline, parallelization or cutoff")
	csv := flag.Bool("csv", false, "print experiment records as CSV on stdout")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Warn().Err(err).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("invalid environment, using defaults")
	}

	cfg = meta.Config{
		First:        *first,
		Second:       *second,
		Games:        *games,
		Bombs:        *bombs,
		Unflippables: *unflippables,
		Goroutines:   *goroutines,
		Duration:     *duration,
		Cutoff:       *cutoff,
		Seed:         *seed,
		LogLevel:     level.String(),
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if *experiment != "" {
		if err := runExperiment(*experiment, cfg.Goroutines, *csv); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}
	if err := runMatches(cfg); err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
}

func runExperiment(name string, goroutines int, csv bool) error {
	var summary experiments.Summary
	var err error
	switch name {
	case "baseline":
		summary, err = experiments.RunBaselineExperiment(goroutines)
	case "parallelization":
		summary, err = experiments.RunParallelizationExperiment()
	case "cutoff":
		summary, err = experiments.RunCutoffExperiment()
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	if csv {
		return summary.Write(os.Stdout)
	}
	return nil
}

func runMatches(cfg meta.Config) error {
	seats, err := newSeats(cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(seats, engine.WithAllowance(cfg.Bombs, cfg.Unflippables))
	for i := 0; i < cfg.Games; i++ {
		result, err := e.Run()
		if err != nil {
			return err
		}
		log.Info().Msgf("game %d of %d: winner %s, score %d-%d", i+1, cfg.Games, result.Winner, result.Game.FirstDiscs, result.Game.SecondDiscs)
	}

	p1, p2 := e.Players()
	log.Info().Msgf("wins: %s %d, %s %d", p1.Name(), p1.Wins(), p2.Name(), p2.Wins())
	return nil
}

// newSeats builds both seats. Human seats share one reader over in so that
// neither buffers lines meant for the other.
func newSeats(cfg meta.Config, in io.Reader, out io.Writer) ([]engine.Seat, error) {
	var human *player.Human
	seats := make([]engine.Seat, 0, 2)
	for i, strategy := range []string{cfg.First, cfg.Second} {
		name := fmt.Sprintf("%s (%s)", strategy, game.FirstSeat)
		if i == 1 {
			name = fmt.Sprintf("%s (%s)", strategy, game.SecondSeat)
		}

		if strategy == "human" {
			if human == nil {
				human = player.NewHuman(in, out)
			}
			seats = append(seats, engine.Seat{Name: name, Strategy: human, Interactive: true})
			continue
		}

		s, err := newStrategy(strategy, cfg, cfg.Seed+uint64(i))
		if err != nil {
			return nil, err
		}
		seats = append(seats, engine.Seat{Name: name, Strategy: s})
	}
	return seats, nil
}

func newStrategy(strategy string, cfg meta.Config, seed uint64) (game.Strategy, error) {
	config := metrics.AgentConfig{
		Strategy:   strategy,
		Goroutines: cfg.Goroutines,
		Duration:   cfg.Duration,
		Cutoff:     cfg.Cutoff,
	}
	if config.Duration == 0 {
		config.Episodes = meta.EPISODES
	}
	return experiments.NewStrategy(config, seed)
}
