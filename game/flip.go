package game

// flip is a disc that changes owner, together with where it sits.
type flip struct {
	pos  Position
	disc *Disc
}

// flipsFor returns every disc that changes owner when mover places at origin.
// Rays are all-or-nothing per direction; bombs among the candidates spread to
// their neighbours through a work list. Each disc appears at most once.
func (b *Board) flipsFor(origin Position, mover *Player) []flip {
	var union []flip
	seen := make(map[*Disc]bool)
	var bombs []flip

	add := func(f flip) {
		if seen[f.disc] {
			return
		}
		seen[f.disc] = true
		union = append(union, f)
		if f.disc.kind.Cascades() {
			bombs = append(bombs, f)
		}
	}

	for _, dir := range directions {
		for _, f := range b.ray(origin, dir, mover) {
			add(f)
		}
	}

	for len(bombs) > 0 {
		bomb := bombs[len(bombs)-1]
		bombs = bombs[:len(bombs)-1]
		for _, dir := range directions {
			pos, ok := bomb.pos.neighbour(dir)
			if !ok {
				continue
			}
			disc := b.At(pos)
			if disc == nil || disc.owner == mover || !disc.kind.Flippable() {
				continue
			}
			add(flip{pos: pos, disc: disc})
		}
	}

	return union
}

// ray walks from origin in dir over discs not owned by mover. The collected
// candidates count only if the walk ends on a disc owned by mover.
func (b *Board) ray(origin Position, dir [2]int, mover *Player) []flip {
	var candidates []flip
	pos, ok := origin.neighbour(dir)
	for ok {
		disc := b.At(pos)
		if disc == nil {
			return nil
		}
		if disc.owner == mover {
			return candidates
		}
		if disc.kind.Flippable() {
			candidates = append(candidates, flip{pos: pos, disc: disc})
		}
		pos, ok = pos.neighbour(dir)
	}
	return nil
}

// countFlips is the propagator in count mode.
func (b *Board) countFlips(origin Position, mover *Player) int {
	return len(b.flipsFor(origin, mover))
}

// applyFlips is the propagator in apply mode: every candidate now belongs to mover.
func (b *Board) applyFlips(origin Position, mover *Player) []flip {
	flips := b.flipsFor(origin, mover)
	for _, f := range flips {
		f.disc.owner = mover
	}
	return flips
}
