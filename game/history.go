package game

// Move is a successful placement: where, and the disc that was placed.
type Move struct {
	Position Position
	Disc     Disc
}

type placement struct {
	pos   Position
	disc  *Disc
	mover *Player
}

// history keeps the move log and the flip stack in lockstep: one entry each
// per successful placement.
type history struct {
	moves []placement
	flips [][]flip
}

func (h *history) push(p placement, flips []flip) {
	h.moves = append(h.moves, p)
	if len(flips) > 0 {
		h.flips = append(h.flips, flips)
	}
}

func (h *history) popMove() (placement, bool) {
	if len(h.moves) == 0 {
		return placement{}, false
	}
	last := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return last, true
}

func (h *history) popFlips() ([]flip, bool) {
	if len(h.flips) == 0 {
		return nil, false
	}
	last := h.flips[len(h.flips)-1]
	h.flips = h.flips[:len(h.flips)-1]
	return last, true
}

func (h *history) clear() {
	h.moves = nil
	h.flips = nil
}

func positionsOf(flips []flip) []Position {
	positions := make([]Position, len(flips))
	for i, f := range flips {
		positions[i] = f.pos
	}
	return positions
}
