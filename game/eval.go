package game

// positionalWeights scores cells by how hard they are to lose: corners are
// permanent, cells next to an empty corner give it away.
var positionalWeights = [Size][Size]float64{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

func snapshotOf(s State) *Snapshot {
	snapshot, ok := s.(*Snapshot)
	if !ok {
		panic("unexpected state type")
	}
	return snapshot
}

// EvaluateDiscs compares disc counts, from the current player's perspective.
func EvaluateDiscs(s State) float64 {
	g := snapshotOf(s).g
	current := g.CurrentPlayer()
	return normalize(float64(g.board.Count(current)), float64(g.board.Count(g.other(current))))
}

// EvaluateMobility compares the number of valid moves of both players.
func EvaluateMobility(s State) float64 {
	g := snapshotOf(s).g
	current := g.CurrentPlayer()
	mine := len(g.validMovesFor(current))
	theirs := len(g.validMovesFor(g.other(current)))
	return normalize(float64(mine), float64(theirs))
}

// EvaluatePositional blends weighted cell ownership, mobility and remaining
// special discs into a score between -1 and 1.
func EvaluatePositional(s State) float64 {
	g := snapshotOf(s).g
	current := g.CurrentPlayer()
	opponent := g.other(current)

	var mine, theirs float64
	for row := range g.board.cells {
		for col, disc := range g.board.cells[row] {
			if disc == nil {
				continue
			}
			// Shift weights to be positive so normalize stays within [-1, 1]
			weight := positionalWeights[row][col] + 51
			if disc.kind == Unflippable {
				weight += 10
			}
			if disc.owner == current {
				mine += weight
			} else {
				theirs += weight
			}
		}
	}
	positional := normalize(mine, theirs)

	specials := normalize(
		float64(current.bombs+current.unflippables),
		float64(opponent.bombs+opponent.unflippables),
	)

	return (2*positional + EvaluateMobility(s) + specials) / 4
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
