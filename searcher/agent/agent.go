package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Agent is a strategy backed by a tree search.
type Agent interface {
	game.Strategy
	// LastMetric returns the performance metrics (if collected) of the most recent search
	LastMetric() metrics.SearchMetric
}

// toMove turns a search action into a move for the player to move.
func toMove(view game.View, action game.Action) (game.Move, error) {
	if action.Pass {
		return game.Move{}, game.ErrNoMove
	}
	return game.Move{
		Position: action.Position,
		Disc:     game.NewDisc(view.CurrentPlayer(), action.Kind),
	}, nil
}
