package searcher

import (
	"math"
	"reversi/game"
	"sync"

	"golang.org/x/exp/rand"
)

// decision is a node reached by a deterministic action. player is the seat
// that played into the node, so its rewards are what the parent maximizes.
type decision struct {
	sync.RWMutex
	parent     *decision
	player     string
	hash       game.StateHash
	unexplored []game.Action
	explored   []game.Action
	children   []Node
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, player string, state game.State) *decision {
	moves := state.LegalMoves()
	unexplored := make([]game.Action, len(moves))
	copy(unexplored, moves)
	rand.Shuffle(len(unexplored), func(i, j int) {
		unexplored[i], unexplored[j] = unexplored[j], unexplored[i]
	})

	return &decision{
		parent:     parent,
		player:     player,
		hash:       state.Hash(),
		unexplored: unexplored,
		explored:   make([]game.Action, 0, len(moves)),
		children:   make([]Node, 0, len(moves)),
	}
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.expand(state)
		child.applyLoss()
		return child, childState, false
	}

	if len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) expand(state game.State) (Node, game.State) {
	last := len(d.unexplored) - 1
	action := d.unexplored[last]
	d.unexplored = d.unexplored[:last]

	childState := state.Play(action)
	child := newDecision(d, state.Player(), childState)
	d.explored = append(d.explored, action)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	// Children carry virtual visits before the parent is backed up
	policy := newUCT(CSquared, math.Max(d.visits, 1))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(policy *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.evaluate(d.rewards, d.visits)
}

func (d *decision) Backup(player string, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.player, player, score)
	d.visits++

	if d.parent == nil {
		return nil // avoid returning a typed nil
	}
	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy maps every explored action to its visit count.
func (d *decision) Policy() map[game.Action]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Action]float64, len(d.children))
	for i, child := range d.children {
		policy[d.explored[i]] = child.Visits()
	}
	return policy
}

// find returns the descendant within depth plies whose state hashes to hash.
func (d *decision) find(hash game.StateHash, depth int) *decision {
	if d.hash == hash {
		return d
	}
	if depth == 0 {
		return nil
	}

	d.RLock()
	defer d.RUnlock()
	for _, child := range d.children {
		if found := child.(*decision).find(hash, depth-1); found != nil {
			return found
		}
	}
	return nil
}
