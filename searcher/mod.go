package searcher

import "reversi/game"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)

// How far a reused subtree may lie below the previous root: our move, then
// the opponent's reply.
const reuseDepth = 2

type Node interface {
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	Backup(player string, score float64) Node
	Visits() float64
	applyLoss()
	score(policy *uct) float64
}

// reward returns score from the perspective of node owner, given that score
// was measured from player's perspective.
func reward(owner, player string, score float64) float64 {
	if owner == player {
		return score
	}
	return -score
}
