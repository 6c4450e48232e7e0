package player

import "reversi/game"

// bombThreshold is the flip count above which a greedy player spends a bomb.
const bombThreshold = 3

// Greedy plays the valid move that flips the most discs, the first in
// row-major order on ties. It spends a bomb when any valid move flips more
// than bombThreshold discs, otherwise an unflippable disc while any remain.
type Greedy struct{}

func NewGreedy() Greedy {
	return Greedy{}
}

func (Greedy) FindMove(view game.View) (game.Move, error) {
	moves := view.ValidMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoMove
	}

	me := view.CurrentPlayer()
	best, maxFlips := moves[0], -1
	useBomb := false
	for _, pos := range moves {
		flips := view.CountFlips(pos)
		if flips > maxFlips {
			best, maxFlips = pos, flips
		}
		if flips > bombThreshold && me.CanPlace(game.Bomb) {
			useBomb = true
		}
	}

	kind := game.Ordinary
	switch {
	case useBomb:
		kind = game.Bomb
	case me.CanPlace(game.Unflippable):
		kind = game.Unflippable
	}
	return game.Move{Position: best, Disc: game.NewDisc(me, kind)}, nil
}
