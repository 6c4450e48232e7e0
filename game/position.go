package game

import (
	"fmt"

	"reversi/meta"
)

// Size is the fixed side length of the board.
const Size = meta.BOARD_SIZE

// directions lists the eight neighbours of a cell as (row, col) deltas.
var directions = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// Position is an in-bounds board coordinate. The zero value is (0, 0).
type Position struct {
	row int
	col int
}

// NewPosition returns the position at row, col. It panics when the coordinate
// lies outside the board: callers check InBounds first when handling input.
func NewPosition(row, col int) Position {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("position (%d, %d) is out of bounds", row, col))
	}
	return Position{row: row, col: col}
}

// InBounds reports whether row, col addresses a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (p Position) Row() int { return p.row }

func (p Position) Col() int { return p.col }

// neighbour returns the adjacent position in direction dir, if any.
func (p Position) neighbour(dir [2]int) (Position, bool) {
	row, col := p.row+dir[0], p.col+dir[1]
	if !InBounds(row, col) {
		return Position{}, false
	}
	return Position{row: row, col: col}, true
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.row, p.col)
}
