package game

// EventType identifies what happened in the engine.
type EventType int

const (
	EventReset EventType = iota
	EventPlaced
	EventFlipped
	EventPassed
	EventUndone
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventReset:
		return "reset"
	case EventPlaced:
		return "placed"
	case EventFlipped:
		return "flipped"
	case EventPassed:
		return "passed"
	case EventUndone:
		return "undone"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is one entry of the engine's narration stream.
//
//   - Placed: Player placed a disc of Kind at Position.
//   - Flipped: Positions changed owner to Player.
//   - Passed: Player had no valid move.
//   - Undone: the disc at Position was removed and Positions went back to the
//     opponent of Player.
//   - GameOver: Player won with the given scores.
type Event struct {
	Type        EventType
	Player      *Player
	Position    Position
	Kind        Kind
	Positions   []Position
	FirstDiscs  int
	SecondDiscs int
}

// Listener consumes events. It runs synchronously inside the engine call that
// produced the event and must not call back into the engine.
type Listener func(Event)
