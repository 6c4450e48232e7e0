package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Snapshot is an immutable copy of a game used by the searcher. Play returns
// a new Snapshot and never touches the game it was taken from.
type Snapshot struct {
	g *Game
}

// NewSnapshot deep-copies the board, players and turn of g. Histories and
// listeners are not copied.
func NewSnapshot(g *Game) *Snapshot {
	g.mustHavePlayers()
	return &Snapshot{g: g.clone()}
}

func (g *Game) clone() *Game {
	first, second := *g.first, *g.second
	c := &Game{
		first:     &first,
		second:    &second,
		firstTurn: g.firstTurn,
	}
	for row := range g.board.cells {
		for col, disc := range g.board.cells[row] {
			if disc == nil {
				continue
			}
			owner := c.first
			if disc.owner == g.second {
				owner = c.second
			}
			c.board.cells[row][col] = &Disc{owner: owner, kind: disc.kind}
		}
	}
	return c
}

// Player returns the seat name of the player to move.
func (s *Snapshot) Player() string {
	return s.g.CurrentPlayer().Seat()
}

// Opponent returns the seat name of the player not to move.
func (s *Snapshot) Opponent() string {
	return s.g.other(s.g.CurrentPlayer()).Seat()
}

// LegalMoves lists a placement per valid cell and affordable kind, a single
// pass when the player to move is blocked, and nothing once the game is over.
func (s *Snapshot) LegalMoves() []Action {
	mover := s.g.CurrentPlayer()
	positions := s.g.validMovesFor(mover)
	if len(positions) == 0 {
		if s.g.hasValidMove(s.g.other(mover)) {
			return []Action{PassAction}
		}
		return nil
	}

	actions := make([]Action, 0, len(positions)*len(Kinds))
	for _, pos := range positions {
		for _, kind := range Kinds {
			if mover.CanPlace(kind) {
				actions = append(actions, Action{Position: pos, Kind: kind})
			}
		}
	}
	return actions
}

// Play applies action to a copy of the state. Illegal actions panic: they
// can only come from a searcher bug.
func (s *Snapshot) Play(action Action) State {
	next := s.g.clone()
	if action.Pass {
		if !next.Pass() {
			panic(fmt.Sprintf("illegal pass for %s", s.Player()))
		}
		return &Snapshot{g: next}
	}
	if !next.LocateDisc(action.Position, NewDisc(next.CurrentPlayer(), action.Kind)) {
		panic(fmt.Sprintf("illegal action %s for %s", action, s.Player()))
	}
	return &Snapshot{g: next}
}

// Winner returns the winning seat once neither player can move, "" before.
func (s *Snapshot) Winner() string {
	winner, over := s.g.Winner()
	if !over {
		return ""
	}
	return winner.Seat()
}

func (s *Snapshot) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, s.g.firstTurn)

	// Hash cells: owner seat and kind
	for row := range s.g.board.cells {
		for _, disc := range s.g.board.cells[row] {
			cell := int8(-1)
			if disc != nil {
				cell = int8(disc.kind) * 2
				if disc.owner == s.g.second {
					cell++
				}
			}
			binary.Write(hasher, binary.LittleEndian, cell)
		}
	}

	// Hash allowances
	for _, p := range []*Player{s.g.first, s.g.second} {
		binary.Write(hasher, binary.LittleEndian, int32(p.bombs))
		binary.Write(hasher, binary.LittleEndian, int32(p.unflippables))
	}

	return StateHash(hasher.Sum64())
}

// Game exposes the copied engine read-only for evaluation functions.
func (s *Snapshot) Game() View {
	return s.g
}
