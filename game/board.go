package game

// Board is the fixed-size grid. It only knows about bounds; the rules live in
// the propagator and the engine.
type Board struct {
	cells [Size][Size]*Disc
}

func (b *Board) Size() int { return Size }

// At returns the disc at pos, or nil for an empty cell.
func (b *Board) At(pos Position) *Disc {
	return b.cells[pos.row][pos.col]
}

func (b *Board) set(pos Position, disc *Disc) {
	b.cells[pos.row][pos.col] = disc
}

func (b *Board) clear(pos Position) {
	b.cells[pos.row][pos.col] = nil
}

// Count returns the number of discs currently owned by owner.
func (b *Board) Count(owner *Player) int {
	count := 0
	for row := range b.cells {
		for _, disc := range b.cells[row] {
			if disc != nil && disc.owner == owner {
				count++
			}
		}
	}
	return count
}
