package engine

import (
	"reversi/experiments/metrics"
	"reversi/meta"
)

const MaxTurns = meta.MAX_TURNS

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (Result, error)
}

// Result of one game. Winner is the winning seat, or "" when the game was
// stopped by the turn limit.
type Result struct {
	Winner string
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}
