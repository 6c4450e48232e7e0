package game

import "errors"

// ErrNoMove is returned by strategies that have nothing to play.
var ErrNoMove = errors.New("no move available")

type Option func(g *Game)

// WithListener subscribes l to the engine's event stream.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

// Game is the rule engine. It exclusively owns the board, both players'
// mutable state and the histories; it is not safe for concurrent use.
type Game struct {
	board     Board
	first     *Player
	second    *Player
	firstTurn bool
	history   history
	awarded   *Player // winner credited for the current game, if any
	listeners []Listener
}

// New returns an engine without players. Call SetPlayers then Reset before playing.
func New(options ...Option) *Game {
	g := &Game{firstTurn: true}
	for _, option := range options {
		option(g)
	}
	return g
}

// SetPlayers registers both seats, in either order.
func (g *Game) SetPlayers(a, b *Player) {
	if a == nil || b == nil {
		panic("both players must be set")
	}
	if a == b || a.first == b.first {
		panic("players must occupy different seats")
	}
	if !a.first {
		a, b = b, a
	}
	g.first, g.second = a, b
}

func (g *Game) mustHavePlayers() {
	if g.first == nil || g.second == nil {
		panic("players have not been set")
	}
}

// Reset starts a new game: empty histories, full allowances, the four centre
// discs, and the first player to move.
func (g *Game) Reset() {
	g.mustHavePlayers()

	g.board = Board{}
	g.history.clear()
	g.first.resetAllowance()
	g.second.resetAllowance()
	g.awarded = nil

	mid := Size / 2
	g.board.set(NewPosition(mid-1, mid-1), &Disc{owner: g.first, kind: Ordinary})
	g.board.set(NewPosition(mid, mid), &Disc{owner: g.first, kind: Ordinary})
	g.board.set(NewPosition(mid-1, mid), &Disc{owner: g.second, kind: Ordinary})
	g.board.set(NewPosition(mid, mid-1), &Disc{owner: g.second, kind: Ordinary})
	g.firstTurn = true

	g.emit(Event{Type: EventReset, Player: g.first})
}

func (g *Game) FirstPlayer() *Player { return g.first }

func (g *Game) SecondPlayer() *Player { return g.second }

func (g *Game) IsFirstPlayerTurn() bool { return g.firstTurn }

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() *Player {
	if g.firstTurn {
		return g.first
	}
	return g.second
}

func (g *Game) other(p *Player) *Player {
	if p == g.first {
		return g.second
	}
	return g.first
}

func (g *Game) BoardSize() int { return g.board.Size() }

// DiscAt returns a copy of the disc at pos and whether the cell is occupied.
func (g *Game) DiscAt(pos Position) (Disc, bool) {
	disc := g.board.At(pos)
	if disc == nil {
		return Disc{}, false
	}
	return *disc, true
}

// CountFlips returns how many discs would change owner if the player to move
// placed at pos. Occupied cells flip nothing.
func (g *Game) CountFlips(pos Position) int {
	g.mustHavePlayers()
	if g.board.At(pos) != nil {
		return 0
	}
	return g.board.countFlips(pos, g.CurrentPlayer())
}

// ValidMoves lists, in row-major order, the cells where the player to move may place.
func (g *Game) ValidMoves() []Position {
	g.mustHavePlayers()
	return g.validMovesFor(g.CurrentPlayer())
}

func (g *Game) validMovesFor(p *Player) []Position {
	var moves []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position{row: row, col: col}
			if g.isValid(pos, p) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

func (g *Game) hasValidMove(p *Player) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g.isValid(Position{row: row, col: col}, p) {
				return true
			}
		}
	}
	return false
}

func (g *Game) isValid(pos Position, p *Player) bool {
	return g.board.At(pos) == nil && g.board.countFlips(pos, p) > 0
}

// LocateDisc places disc at pos for the player to move. It reports false and
// leaves the game untouched when the move is invalid, when the disc is not
// owned by the player to move, or when a special disc has no allowance left.
func (g *Game) LocateDisc(pos Position, disc Disc) bool {
	g.mustHavePlayers()

	mover := g.CurrentPlayer()
	if disc.owner != mover || !disc.kind.valid() {
		return false
	}
	if !g.isValid(pos, mover) {
		return false
	}
	if !mover.spend(disc.kind) {
		return false
	}

	placed := &Disc{owner: mover, kind: disc.kind}
	g.board.set(pos, placed)
	g.emit(Event{Type: EventPlaced, Player: mover, Position: pos, Kind: placed.kind})

	flips := g.board.applyFlips(pos, mover)
	g.history.push(placement{pos: pos, disc: placed, mover: mover}, flips)
	g.firstTurn = !g.firstTurn

	g.emit(Event{Type: EventFlipped, Player: mover, Position: pos, Kind: placed.kind, Positions: positionsOf(flips)})
	return true
}

// Pass hands the turn over when the player to move is blocked but the game is
// not over. Passes are not recorded in the history.
func (g *Game) Pass() bool {
	g.mustHavePlayers()

	mover := g.CurrentPlayer()
	if g.hasValidMove(mover) || !g.hasValidMove(g.other(mover)) {
		return false
	}
	g.firstTurn = !g.firstTurn
	g.emit(Event{Type: EventPassed, Player: mover})
	return true
}

// over reports whether neither player can move, without side effects.
func (g *Game) over() bool {
	return !g.hasValidMove(g.first) && !g.hasValidMove(g.second)
}

// Score returns the number of discs owned by each player.
func (g *Game) Score() (first, second int) {
	g.mustHavePlayers()
	return g.board.Count(g.first), g.board.Count(g.second)
}

// Winner returns the player with the greater-or-equal disc count once the
// game is over. Equal counts favour the first player.
func (g *Game) Winner() (*Player, bool) {
	g.mustHavePlayers()
	if !g.over() {
		return nil, false
	}
	first, second := g.Score()
	if first >= second {
		return g.first, true
	}
	return g.second, true
}

// IsGameFinished reports whether neither player can move. The first time it
// returns true for a game, the winner's win counter is incremented.
func (g *Game) IsGameFinished() bool {
	winner, over := g.Winner()
	if !over {
		return false
	}
	if g.awarded == nil {
		g.awarded = winner
		winner.wins++
		first, second := g.Score()
		g.emit(Event{Type: EventGameOver, Player: winner, FirstDiscs: first, SecondDiscs: second})
	}
	return true
}

// UndoLastMove takes back the most recent placement when both players are
// interactive. It reports whether a move was undone.
func (g *Game) UndoLastMove() bool {
	g.mustHavePlayers()

	if !g.first.interactive || !g.second.interactive {
		return false
	}
	last, ok := g.history.popMove()
	if !ok {
		return false
	}

	g.board.clear(last.pos)
	var restored []Position
	if flips, ok := g.history.popFlips(); ok {
		for _, f := range flips {
			f.disc.owner = g.other(f.disc.owner)
		}
		restored = positionsOf(flips)
	}
	last.mover.refund(last.disc.kind)

	if g.awarded != nil {
		g.awarded.wins--
		g.awarded = nil
	}
	g.firstTurn = last.mover == g.first

	g.emit(Event{Type: EventUndone, Player: last.mover, Position: last.pos, Kind: last.disc.kind, Positions: restored})
	return true
}

// Moves returns the placements of the current game, oldest first, each with
// the disc as it was placed.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.history.moves))
	for i, p := range g.history.moves {
		moves[i] = Move{Position: p.pos, Disc: Disc{owner: p.mover, kind: p.disc.kind}}
	}
	return moves
}

// FlipHistory returns the positions flipped by each placement, oldest first.
func (g *Game) FlipHistory() [][]Position {
	entries := make([][]Position, len(g.history.flips))
	for i, flips := range g.history.flips {
		entries[i] = positionsOf(flips)
	}
	return entries
}

// Snapshot returns an independent search state for the current position.
func (g *Game) Snapshot() State {
	return NewSnapshot(g)
}

func (g *Game) emit(e Event) {
	for _, l := range g.listeners {
		l(e)
	}
}
