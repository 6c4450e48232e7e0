package player

import (
	"reversi/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random valid move. It tries a bomb with
// probability ½ while bombs remain, then an unflippable disc with
// probability ½ while those remain.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(view game.View) (game.Move, error) {
	moves := view.ValidMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoMove
	}
	pos := moves[r.rng.Intn(len(moves))]

	me := view.CurrentPlayer()
	kind := game.Ordinary
	if me.CanPlace(game.Bomb) && r.coin() {
		kind = game.Bomb
	} else if me.CanPlace(game.Unflippable) && r.coin() {
		kind = game.Unflippable
	}
	return game.Move{Position: pos, Disc: game.NewDisc(me, kind)}, nil
}

func (r *Random) coin() bool {
	return r.rng.Intn(2) == 0
}
