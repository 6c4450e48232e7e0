package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
	last metrics.SearchMetric
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return &evaluationAgent{mcts: mcts}
}

func (a *evaluationAgent) FindMove(view game.View) (game.Move, error) {
	policy, metric := a.mcts.Simulate(view.Snapshot())
	a.last = metric

	action, ok := findMax(policy)
	if !ok {
		return game.Move{}, game.ErrNoMove
	}
	return toMove(view, action)
}

func (a *evaluationAgent) LastMetric() metrics.SearchMetric {
	return a.last
}

// findMax breaks ties in visits by the first action in board order.
func findMax(policy map[game.Action]float64) (game.Action, bool) {
	var maxMove game.Action
	maxVisit := -1.0
	for _, move := range sortedActions(policy) {
		if visit := policy[move]; visit > maxVisit {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove, maxVisit >= 0
}
