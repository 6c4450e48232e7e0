package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/game"
	"reversi/utils"
)

// ErrUndoRequested is returned by Human when the user asks to take back the
// last move.
var ErrUndoRequested = errors.New("undo requested")

// Human reads moves from a line-oriented stream. Each line is either
// "row col [o|b|u]" or "undo". Malformed or unplayable input is reported on
// out and asked for again.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) FindMove(view game.View) (game.Move, error) {
	me := view.CurrentPlayer()
	Render(h.out, view)

	for {
		fmt.Fprintf(h.out, "%s to move (row col [o|b|u], undo): ", me.Name())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Move{}, fmt.Errorf("read move: %w", err)
			}
			return game.Move{}, fmt.Errorf("read move: %w", io.EOF)
		}

		line := strings.TrimSpace(h.in.Text())
		if line == "undo" {
			return game.Move{}, ErrUndoRequested
		}

		move, err := parseMove(line, me)
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if utils.FindIndex(view.ValidMoves(), move.Position) < 0 {
			fmt.Fprintf(h.out, "%s is not a valid move\n", move.Position)
			continue
		}
		if !me.CanPlace(move.Disc.Kind()) {
			fmt.Fprintf(h.out, "no %s discs left\n", move.Disc.Kind())
			continue
		}
		return move, nil
	}
}

func parseMove(line string, me *game.Player) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return game.Move{}, fmt.Errorf("expected row col [kind], got %q", line)
	}

	var coords [2]int
	for i, field := range fields[:2] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return game.Move{}, fmt.Errorf("invalid coordinate %q", field)
		}
		coords[i] = n
	}
	if !game.InBounds(coords[0], coords[1]) {
		return game.Move{}, fmt.Errorf("(%d, %d) is off the board", coords[0], coords[1])
	}

	kind := game.Ordinary
	if len(fields) == 3 {
		var err error
		if kind, err = game.ParseKind(fields[2]); err != nil {
			return game.Move{}, err
		}
	}
	return game.Move{
		Position: game.NewPosition(coords[0], coords[1]),
		Disc:     game.NewDisc(me, kind),
	}, nil
}
