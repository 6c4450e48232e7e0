package player

import (
	"fmt"
	"io"
	"strings"

	"reversi/game"
)

// Render draws the board with row and column indices. Discs of the first
// player are X, of the second O, followed by b for bombs and u for
// unflippable discs. Valid moves of the player to move are marked with *.
func Render(w io.Writer, view game.View) {
	size := view.BoardSize()
	valid := make(map[game.Position]bool)
	for _, pos := range view.ValidMoves() {
		valid[pos] = true
	}

	var b strings.Builder
	b.WriteString("  ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&b, " %d ", col)
	}
	b.WriteString("\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&b, "%d ", row)
		for col := 0; col < size; col++ {
			pos := game.NewPosition(row, col)
			b.WriteString(" ")
			b.WriteString(cell(view, pos, valid[pos]))
		}
		b.WriteString("\n")
	}

	for _, p := range []*game.Player{view.FirstPlayer(), view.SecondPlayer()} {
		fmt.Fprintf(&b, "%s: %d%s %d%s\n", p.Name(), p.Bombs(), game.Bomb.Symbol(), p.Unflippables(), game.Unflippable.Symbol())
	}
	io.WriteString(w, b.String())
}

func cell(view game.View, pos game.Position, valid bool) string {
	disc, ok := view.DiscAt(pos)
	if !ok {
		if valid {
			return "* "
		}
		return ". "
	}

	mark := "O"
	if disc.Owner().IsFirst() {
		mark = "X"
	}
	switch disc.Kind() {
	case game.Bomb:
		return mark + "b"
	case game.Unflippable:
		return mark + "u"
	}
	return mark + " "
}
