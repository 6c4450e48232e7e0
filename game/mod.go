package game

// StateHash identifies a position for search tree reuse.
type StateHash uint64

// Action is a search move: a placement of Kind at Position, or a pass.
type Action struct {
	Position Position
	Kind     Kind
	Pass     bool
}

// PassAction is the only legal action of a blocked player.
var PassAction = Action{Pass: true}

func (a Action) String() string {
	if a.Pass {
		return "pass"
	}
	return a.Kind.String() + " " + a.Position.String()
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Action
	Play(Action) State
	Hash() StateHash
	Winner() string
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

// View is the read-only surface strategies poll. *Game implements it.
type View interface {
	BoardSize() int
	DiscAt(Position) (Disc, bool)
	ValidMoves() []Position
	CountFlips(Position) int
	FirstPlayer() *Player
	SecondPlayer() *Player
	CurrentPlayer() *Player
	IsFirstPlayerTurn() bool
	Snapshot() State
}

// Strategy selects a move for the player to move. The disc of the returned
// move must be owned by view.CurrentPlayer(). Strategies return ErrNoMove
// when they have nothing to play.
type Strategy interface {
	FindMove(view View) (Move, error)
}
