package game

import (
	"fmt"

	"reversi/meta"
)

// Seat names double as the player identifiers of the search State.
const (
	FirstSeat  = "first"
	SecondSeat = "second"
)

// Player is a seat at the table: identity, cumulative wins and the remaining
// special-disc allowances. Only the engine mutates a player.
type Player struct {
	name         string
	first        bool
	interactive  bool
	wins         int
	bombs        int
	unflippables int
	startBombs   int
	startUnflips int
}

type PlayerOption func(p *Player)

// WithName sets a display name; it defaults to the seat name.
func WithName(name string) PlayerOption {
	return func(p *Player) {
		if name != "" {
			p.name = name
		}
	}
}

// Interactive marks the player as driven by a person. Undo is only available
// when both players are interactive.
func Interactive() PlayerOption {
	return func(p *Player) {
		p.interactive = true
	}
}

// WithAllowance overrides the number of bombs and unflippable discs the player
// starts each game with. Negative values are ignored.
func WithAllowance(bombs, unflippables int) PlayerOption {
	return func(p *Player) {
		if bombs >= 0 {
			p.startBombs = bombs
		}
		if unflippables >= 0 {
			p.startUnflips = unflippables
		}
	}
}

// NewPlayer creates the first or second player.
func NewPlayer(first bool, options ...PlayerOption) *Player {
	p := &Player{
		first:        first,
		startBombs:   meta.STARTING_BOMBS,
		startUnflips: meta.STARTING_UNFLIPPABLES,
	}
	p.name = p.Seat()
	for _, option := range options {
		option(p)
	}
	p.resetAllowance()
	return p
}

func (p *Player) Name() string { return p.name }

func (p *Player) IsFirst() bool { return p.first }

func (p *Player) IsInteractive() bool { return p.interactive }

func (p *Player) Wins() int { return p.wins }

func (p *Player) Bombs() int { return p.bombs }

func (p *Player) Unflippables() int { return p.unflippables }

// Seat returns FirstSeat or SecondSeat.
func (p *Player) Seat() string {
	if p.first {
		return FirstSeat
	}
	return SecondSeat
}

// Remaining returns how many discs of kind the player may still place.
// Ordinary discs are unlimited and report -1.
func (p *Player) Remaining(kind Kind) int {
	switch kind {
	case Bomb:
		return p.bombs
	case Unflippable:
		return p.unflippables
	default:
		return -1
	}
}

// CanPlace reports whether the player still has an allowance for kind.
func (p *Player) CanPlace(kind Kind) bool {
	return !kind.Special() || p.Remaining(kind) > 0
}

// spend consumes one unit of allowance for special kinds. It reports false,
// leaving the player untouched, when nothing is left.
func (p *Player) spend(kind Kind) bool {
	switch kind {
	case Bomb:
		if p.bombs <= 0 {
			return false
		}
		p.bombs--
	case Unflippable:
		if p.unflippables <= 0 {
			return false
		}
		p.unflippables--
	case Ordinary:
	default:
		return false
	}
	return true
}

func (p *Player) refund(kind Kind) {
	switch kind {
	case Bomb:
		p.bombs++
	case Unflippable:
		p.unflippables++
	}
}

func (p *Player) resetAllowance() {
	p.bombs = p.startBombs
	p.unflippables = p.startUnflips
}

func (p *Player) String() string {
	return fmt.Sprintf("%s{seat=%s, interactive=%t, wins=%d, bombs=%d, unflippables=%d}",
		p.name, p.Seat(), p.interactive, p.wins, p.bombs, p.unflippables)
}
