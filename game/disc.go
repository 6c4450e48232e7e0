package game

import "fmt"

// Kind is the behavioural kind of a disc, fixed when the disc is created.
type Kind int

const (
	Ordinary Kind = iota
	Bomb
	Unflippable
)

// Kinds lists every disc kind in declaration order.
var Kinds = [...]Kind{Ordinary, Bomb, Unflippable}

type behavior struct {
	name      string
	symbol    string
	flippable bool // may change owner as a result of a placement
	cascades  bool // flipping it spreads to its neighbours
}

// No kind blocks a ray; unflippable discs are skipped but scanned past.
var behaviors = [...]behavior{
	Ordinary:    {name: "ordinary", symbol: "⬤", flippable: true},
	Bomb:        {name: "bomb", symbol: "💣", flippable: true, cascades: true},
	Unflippable: {name: "unflippable", symbol: "⭕"},
}

func (k Kind) valid() bool {
	return k >= Ordinary && k <= Unflippable
}

// Flippable reports whether discs of this kind can change owner.
func (k Kind) Flippable() bool {
	return k.valid() && behaviors[k].flippable
}

// Cascades reports whether flipping a disc of this kind flips its neighbours too.
func (k Kind) Cascades() bool {
	return k.valid() && behaviors[k].cascades
}

// Special reports whether placing this kind consumes an allowance.
func (k Kind) Special() bool {
	return k == Bomb || k == Unflippable
}

// Symbol is the glyph presentation layers use for the kind.
func (k Kind) Symbol() string {
	if !k.valid() {
		return "?"
	}
	return behaviors[k].symbol
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return behaviors[k].name
}

// ParseKind maps a kind name or its first letter to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "o", "ordinary":
		return Ordinary, nil
	case "b", "bomb":
		return Bomb, nil
	case "u", "unflippable":
		return Unflippable, nil
	}
	return Ordinary, fmt.Errorf("unknown disc kind %q", s)
}

// Disc is a piece with an owner and a kind. Boards hold *Disc values they own;
// everything handed out of the engine is a copy.
type Disc struct {
	owner *Player
	kind  Kind
}

// NewDisc returns a disc of the given kind owned by owner.
func NewDisc(owner *Player, kind Kind) Disc {
	return Disc{owner: owner, kind: kind}
}

func (d Disc) Owner() *Player { return d.owner }

func (d Disc) Kind() Kind { return d.kind }

func (d Disc) String() string {
	if d.owner == nil {
		return d.kind.String()
	}
	return fmt.Sprintf("%s %s", d.owner.Seat(), d.kind)
}
