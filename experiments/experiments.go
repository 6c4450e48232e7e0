package experiments

import (
	"fmt"
	"io"
	"time"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 10 // Per match up
	TimeBudget = 10 * time.Millisecond
)

// Summary holds everything an experiment produced. Wins are keyed by
// AgentConfig.ID.
type Summary struct {
	Name    string
	Configs []metrics.AgentConfig
	Wins    map[int]int
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// Write renders the summary as CSV tables.
func (s Summary) Write(out io.Writer) error {
	writer := metrics.NewWriter(out)
	if err := writer.WriteAgentConfigs(s.Configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(s.Games); err != nil {
		return err
	}
	return writer.WriteMoveRecords(s.Moves)
}

func RunBaselineExperiment(goroutines int) (Summary, error) {
	mcts := metrics.AgentConfig{ID: 1, Strategy: "mcts", Goroutines: goroutines, Duration: TimeBudget}
	greedy := metrics.AgentConfig{ID: 2, Strategy: "greedy"}
	random := metrics.AgentConfig{ID: 3, Strategy: "random"}

	matchUps := [][]metrics.AgentConfig{{mcts, greedy}, {mcts, random}, {greedy, random}}
	return Run("baseline", matchUps, NumGames)
}

func RunParallelizationExperiment() (Summary, error) {
	// Each matchup pairs an agent against the baseline sequential agent
	baseline := metrics.AgentConfig{ID: 0, Strategy: "mcts", Goroutines: 1, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8, 16} {
		config := metrics.AgentConfig{ID: i + 1, Strategy: "mcts", Goroutines: goroutines, Duration: TimeBudget}
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return Run("parallelization", matchUps, NumGames)
}

func RunCutoffExperiment() (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: "mcts", Goroutines: 8, Duration: TimeBudget, Cutoff: 60} // Full playout
	matchUps := [][]metrics.AgentConfig{}
	for i, cutoff := range []int{5, 10, 20, 40} {
		config := baseline
		config.ID, config.Cutoff = i+1, cutoff
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return Run("cutoff", matchUps, NumGames)
}

// Run plays every match-up games times. Seats alternate every game so both
// agents open equally often.
func Run(name string, matchUps [][]metrics.AgentConfig, games int) (Summary, error) {
	summary := Summary{Name: name, Wins: make(map[int]int)}
	seen := make(map[int]bool)
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		if len(matchUp) != 2 {
			panic("a match up needs exactly two agents")
		}
		for _, config := range matchUp {
			if !seen[config.ID] {
				seen[config.ID] = true
				summary.Configs = append(summary.Configs, config)
			}
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			count++

			result, err := runGame(first, second, uint64(count))
			if err != nil {
				return summary, fmt.Errorf("%s experiment, matchup %d game %d: %w", name, mi+1, i+1, err)
			}

			summary.Games = append(summary.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				summary.Moves = append(summary.Moves, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}
			switch result.Winner {
			case game.FirstSeat:
				summary.Wins[first.ID]++
			case game.SecondSeat:
				summary.Wins[second.ID]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, games, result.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment: wins %v", name, summary.Wins)
	return summary, nil
}

// runGame executes a single game between two agents
func runGame(first, second metrics.AgentConfig, seed uint64) (engine.Result, error) {
	firstStrategy, err := NewStrategy(first, seed)
	if err != nil {
		return engine.Result{}, err
	}
	secondStrategy, err := NewStrategy(second, seed+1)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.LocalEngine([]engine.Seat{
		{Name: fmt.Sprintf("%s#%d", first.Strategy, first.ID), Strategy: firstStrategy},
		{Name: fmt.Sprintf("%s#%d", second.Strategy, second.ID), Strategy: secondStrategy},
	})
	return e.Run()
}

// NewStrategy builds the automated strategy described by config.
func NewStrategy(config metrics.AgentConfig, seed uint64) (game.Strategy, error) {
	switch config.Strategy {
	case "mcts":
		return agent.NewEvaluationAgent(CreateMCTS(config)), nil
	case "greedy":
		return player.NewGreedy(), nil
	case "random":
		return player.NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
}

func CreateMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(config.Evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
