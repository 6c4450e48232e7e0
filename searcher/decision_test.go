package searcher

import (
	"reversi/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests parallel MCTS (tree parallelization with virtual loss) on decision nodes
sequential:
- selection: fully expanded node -> max UCT child + loss, child state
- expansion: expandable node -> new added child + loss, child state
- terminal node -> same node, same state
- backup: reverse loss on non-root nodes, reward from the node owner's perspective
concurrent: 3 race conditions
- shared expansion
- shared backup
- shared selection + backup
*/

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("selecting fully expanded node", func(t *testing.T) {
		maxMove := action(0, 1)
		maxChild := &decision{rewards: 1, visits: 1}
		otherChild := &decision{rewards: 0, visits: 1}
		node := &decision{
			explored: []game.Action{action(0, 0), maxMove},
			children: []Node{otherChild, maxChild},
			rewards:  1,
			visits:   2,
		}
		state := mockState{}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, maxChild, gotChild, "Node should select child with max policy value")
		require.Equal(t, 1+Loss, maxChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, maxChild.visits, "Child should apply a temporary loss")
		require.Equal(t, []game.Action{maxMove}, gotState.(mockState).played,
			"State should update by the move to the max policy child")
		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, 1.0, node.rewards, "Node stats should not change")
		require.Equal(t, 2.0, node.visits, "Node stats should not change")
	})

	t.Run("selecting before the parent is backed up", func(t *testing.T) {
		child := &decision{rewards: Loss, visits: 1}
		node := &decision{
			explored: []game.Action{action(0, 0)},
			children: []Node{child},
		}

		gotChild, _, gotSelected := node.SelectOrExpand(mockState{})

		require.Equal(t, child, gotChild)
		require.True(t, gotSelected)
	})

	t.Run("expanding node with unexplored moves", func(t *testing.T) {
		unexploredMove := action(0, 1)
		node := &decision{
			unexplored: []game.Action{unexploredMove},
			explored:   []game.Action{action(0, 0)},
			children:   []Node{&decision{rewards: 1, visits: 1}},
			visits:     1,
		}
		state := mockState{player: game.FirstSeat}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.IsType(t, &decision{}, gotChild, "Child should be a decision node")
		child := gotChild.(*decision)
		require.Equal(t, Loss, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 1.0, child.visits, "Child should apply a temporary loss")
		require.Equal(t, game.FirstSeat, child.player, "Child belongs to the player who moved into it")
		require.Equal(t, node, child.parent)
		require.Equal(t, 2, len(node.children), "Node should add a new child")
		require.Empty(t, node.unexplored)
		require.Equal(t, []game.Action{action(0, 0), unexploredMove}, node.explored)
		require.Equal(t, []game.Action{unexploredMove}, gotState.(mockState).played,
			"State should update by the move to the unexplored child")
		require.False(t, gotSelected, "Node should perform expansion")
	})

	t.Run("stagnating on terminal node", func(t *testing.T) {
		node := &decision{}
		state := mockState{winner: game.FirstSeat}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, node, gotChild, "Should return the same node")
		require.Equal(t, state, gotState, "Should return the same state")
		require.False(t, gotSelected, "Should not select any child or expand")
	})
}

func TestNewDecision(t *testing.T) {
	moves := []game.Action{action(0, 0), action(0, 1), action(0, 2)}
	state := mockState{moves: moves, hash: 42}

	node := newDecision(nil, game.SecondSeat, state)

	require.ElementsMatch(t, moves, node.unexplored, "All legal moves start unexplored")
	require.Equal(t, []game.Action{action(0, 0), action(0, 1), action(0, 2)}, moves, "Shuffling must not touch the state's moves")
	require.Equal(t, game.StateHash(42), node.hash)
	require.Equal(t, game.SecondSeat, node.player)
}

func TestDecisionBackup(t *testing.T) {
	t.Run("recording win on root node", func(t *testing.T) {
		node := &decision{player: game.FirstSeat}

		got := node.Backup(game.FirstSeat, Win)

		require.Nil(t, got, "Should return no parent")
		require.Equal(t, Win, node.rewards, "Should apply a win reward")
		require.Equal(t, 1.0, node.visits, "Should add a visit")
	})

	t.Run("recording win on child node", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  game.FirstSeat,
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup(game.FirstSeat, Win)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, Win, node.rewards, "Should reverse virtual loss and add a win")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording loss on child node", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  game.FirstSeat,
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup(game.SecondSeat, Win)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, Loss, node.rewards, "Should reverse virtual loss and add a loss")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording evaluation of the opponent", func(t *testing.T) {
		node := &decision{parent: &decision{}, player: game.FirstSeat, rewards: Loss, visits: 1}

		node.Backup(game.SecondSeat, 0.25)

		require.Equal(t, -0.25, node.rewards, "Evaluation should be negated for the other player")
	})

	t.Run("backup walks to the root", func(t *testing.T) {
		root := &decision{}
		child := &decision{parent: root, player: game.FirstSeat, rewards: Loss, visits: 1}
		grandChild := &decision{parent: child, player: game.SecondSeat, rewards: Loss, visits: 1}

		backup(grandChild, game.SecondSeat, Win)

		require.Equal(t, Win, grandChild.rewards)
		require.Equal(t, Loss, child.rewards)
		require.Equal(t, 1.0, root.visits)
	})
}

func TestDecisionFind(t *testing.T) {
	root := &decision{hash: 1}
	child := &decision{parent: root, hash: 2}
	grandChild := &decision{parent: child, hash: 3}
	root.children = []Node{child}
	child.children = []Node{grandChild}

	require.Equal(t, root, root.find(1, reuseDepth))
	require.Equal(t, grandChild, root.find(3, reuseDepth))
	require.Nil(t, root.find(3, 1), "Should not search below the depth")
	require.Nil(t, root.find(99, reuseDepth))
}

func TestDecisionPolicy(t *testing.T) {
	node := &decision{
		explored: []game.Action{action(0, 0), game.PassAction},
		children: []Node{&decision{visits: 3}, &decision{visits: 5}},
	}

	require.Equal(t, map[game.Action]float64{action(0, 0): 3, game.PassAction: 5}, node.Policy())
}

func TestDecisionRaceConditions(t *testing.T) {
	t.Run("concurrent expansion", func(t *testing.T) {
		node := &decision{
			unexplored: []game.Action{action(0, 0), action(0, 1)},
			explored:   []game.Action{},
			children:   []Node{},
		}

		var wg sync.WaitGroup
		type result struct {
			child    Node
			state    mockState
			selected bool
		}
		var got [2]result

		for i := 0; i < 2; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				gotChild, gotState, gotSelected := node.SelectOrExpand(mockState{})
				got[i] = result{gotChild, gotState.(mockState), gotSelected}
			}()
		}
		wg.Wait()

		require.Equal(t, 2, len(node.children), "Node should have two children")
		for i := 0; i < 2; i++ {
			require.Equal(t, Loss, got[i].child.(*decision).rewards, "Child should apply a temporary loss")
			require.Equal(t, 1.0, got[i].child.(*decision).visits, "Child should apply a temporary loss")
			require.False(t, got[i].selected, "Node should be expanded")
			require.Contains(t, []game.Action{action(0, 0), action(0, 1)}, got[i].state.played[0],
				"Node should expand with a legal move")
		}
		require.NotEqual(t, got[0].state.played[0], got[1].state.played[0],
			"Node should expand with different moves")
	})

	t.Run("concurrent backup", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  game.FirstSeat,
			rewards: Loss * 2, // 2 virtual losses
			visits:  2,
		}

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				node.Backup(game.FirstSeat, Win)
			}()
		}
		wg.Wait()

		require.Equal(t, Win*2, node.rewards, "Node should reverse virtual losses and add two wins")
		require.Equal(t, 2.0, node.visits, "Node should reverse virtual losses and add two visits")
	})

	t.Run("concurrent selection and backup", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  game.FirstSeat,
			rewards: Loss,
			visits:  3,
		}
		child := &decision{parent: node, visits: 1}
		move := action(0, 0)
		node.explored = []game.Action{move}
		node.children = []Node{child}

		var wg sync.WaitGroup
		wg.Add(2)
		var selected Node
		go func() {
			defer wg.Done()
			selected, _, _ = node.SelectOrExpand(mockState{})
		}()
		go func() {
			defer wg.Done()
			node.Backup(game.FirstSeat, Win)
		}()
		wg.Wait()

		require.Equal(t, child, selected, "Node should select the child")
		require.Equal(t, Loss, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, child.visits, "Child should apply a temporary loss")
		require.Equal(t, Win, node.rewards, "Node should reverse virtual loss and add a win")
		require.Equal(t, 3.0, node.visits, "Node should reverse virtual loss and add a visit")
	})
}
