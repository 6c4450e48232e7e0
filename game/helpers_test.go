package game

import "testing"

// newTestGame returns a reset game with two players.
func newTestGame(t *testing.T, interactive bool, options ...Option) *Game {
	t.Helper()
	var playerOptions []PlayerOption
	if interactive {
		playerOptions = append(playerOptions, Interactive())
	}
	g := New(options...)
	g.SetPlayers(NewPlayer(true, playerOptions...), NewPlayer(false, playerOptions...))
	g.Reset()
	return g
}

// bareGame returns a game with players and an empty board, first to move.
func bareGame(t *testing.T, interactive bool) *Game {
	t.Helper()
	g := newTestGame(t, interactive)
	g.board = Board{}
	return g
}

func put(g *Game, row, col int, owner *Player, kind Kind) {
	g.board.set(NewPosition(row, col), &Disc{owner: owner, kind: kind})
}

func positions(coords ...[2]int) []Position {
	out := make([]Position, len(coords))
	for i, c := range coords {
		out[i] = NewPosition(c[0], c[1])
	}
	return out
}

type cell struct {
	seat string
	kind Kind
}

// capture records everything an undo must restore.
type captured struct {
	cells        map[Position]cell
	firstBombs   int
	firstUnflips int
	secondBombs  int
	secondUnflip int
	moves        int
	flips        int
	firstTurn    bool
}

func capture(g *Game) captured {
	c := captured{
		cells:        make(map[Position]cell),
		firstBombs:   g.first.Bombs(),
		firstUnflips: g.first.Unflippables(),
		secondBombs:  g.second.Bombs(),
		secondUnflip: g.second.Unflippables(),
		moves:        len(g.Moves()),
		flips:        len(g.FlipHistory()),
		firstTurn:    g.IsFirstPlayerTurn(),
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := NewPosition(row, col)
			if disc, ok := g.DiscAt(pos); ok {
				c.cells[pos] = cell{seat: disc.Owner().Seat(), kind: disc.Kind()}
			}
		}
	}
	return c
}
