package agent

import (
	"cmp"
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"slices"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
	last        metrics.SearchMetric
}

// NewTrainingAgent returns a new agent for self-play during training. It
// samples moves in proportion to visits^(1/temperature).
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(view game.View) (game.Move, error) {
	visits, metric := a.mcts.Simulate(view.Snapshot())
	a.last = metric
	if len(visits) == 0 {
		return game.Move{}, game.ErrNoMove
	}

	policy := adjustTemperature(visits, a.temperature)
	return toMove(view, sample(policy, a.rng.Float64()))
}

func (a *trainingAgent) LastMetric() metrics.SearchMetric {
	return a.last
}

func adjustTemperature(policy map[game.Action]float64, temperature float64) map[game.Action]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Action]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	// Normalize
	for move := range adjusted {
		if sum == 0 {
			adjusted[move] = 1 / float64(len(adjusted))
		} else {
			adjusted[move] /= sum
		}
	}
	return adjusted
}

// sample walks the actions in a fixed order so that the same draw always
// selects the same action.
func sample(policy map[game.Action]float64, sampled float64) game.Action {
	moves := sortedActions(policy)
	cumulative := 0.0
	for _, move := range moves {
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return moves[len(moves)-1] // Fallback in case of rounding errors
}

func sortedActions(policy map[game.Action]float64) []game.Action {
	moves := make([]game.Action, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	slices.SortFunc(moves, func(a, b game.Action) int {
		return cmp.Or(
			cmp.Compare(a.Position.Row(), b.Position.Row()),
			cmp.Compare(a.Position.Col(), b.Position.Col()),
			cmp.Compare(a.Kind, b.Kind),
		)
	})
	return moves
}
