package searcher

import "reversi/game"

func action(row, col int) game.Action {
	return game.Action{Position: game.NewPosition(row, col)}
}

type mockState struct {
	player string
	moves  []game.Action
	played []game.Action
	hash   game.StateHash
	winner string
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Action {
	return m.moves
}

func (m mockState) Play(move game.Action) game.State {
	played := append(append([]game.Action{}, m.played...), move)
	return mockState{played: played}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return m.winner
}
