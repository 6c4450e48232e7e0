package engine

import (
	"errors"
	"fmt"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Seat binds a strategy to one side of the board. Interactive seats are
// driven by a person: their rejected moves are asked for again and they may
// request an undo.
type Seat struct {
	Name        string
	Strategy    game.Strategy
	Interactive bool
}

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithAllowance(bombs, unflippables int) Option {
	return func(e *Local) {
		e.bombs, e.unflippables = bombs, unflippables
	}
}

// WithListener subscribes l to the events of every game, after narration.
func WithListener(l game.Listener) Option {
	return func(e *Local) {
		e.listeners = append(e.listeners, l)
	}
}

// Local runs games between two in-process strategies. Wins accumulate on the
// players across runs.
type Local struct {
	game         *game.Game
	seats        [2]Seat
	maxTurns     int
	bombs        int
	unflippables int
	listeners    []game.Listener
	logger       zerolog.Logger
}

func LocalEngine(seats []Seat, options ...Option) *Local {
	if len(seats) != 2 {
		panic("need exactly two seats")
	}
	for _, seat := range seats {
		if seat.Strategy == nil {
			panic("seat has no strategy")
		}
	}

	e := &Local{
		seats:        [2]Seat{seats[0], seats[1]},
		maxTurns:     MaxTurns,
		bombs:        meta.STARTING_BOMBS,
		unflippables: meta.STARTING_UNFLIPPABLES,
		logger:       log.Logger,
	}
	for _, option := range options {
		option(e)
	}

	gameOptions := []game.Option{game.WithListener(e.narrate)}
	for _, l := range e.listeners {
		gameOptions = append(gameOptions, game.WithListener(l))
	}
	e.game = game.New(gameOptions...)
	e.game.SetPlayers(e.newPlayer(true, seats[0]), e.newPlayer(false, seats[1]))
	return e
}

func (e *Local) newPlayer(first bool, seat Seat) *game.Player {
	options := []game.PlayerOption{
		game.WithName(seat.Name),
		game.WithAllowance(e.bombs, e.unflippables),
	}
	if seat.Interactive {
		options = append(options, game.Interactive())
	}
	return game.NewPlayer(first, options...)
}

// Players returns the first and second player, whose win counters span every run.
func (e *Local) Players() (*game.Player, *game.Player) {
	return e.game.FirstPlayer(), e.game.SecondPlayer()
}

func (e *Local) seatOf(p *game.Player) Seat {
	if p.IsFirst() {
		return e.seats[0]
	}
	return e.seats[1]
}

// Run resets the board and plays a game.
func (e *Local) Run() (Result, error) {
	matchID := uuid.NewString()
	e.logger = log.With().Str("match", matchID).Logger()

	e.game.Reset()
	gameMetric := metrics.GameMetric{MatchID: matchID, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	e.logger.Info().Msgf("%s is starting against %s", e.game.FirstPlayer().Name(), e.game.SecondPlayer().Name())

	turn := 0
	for !e.game.IsGameFinished() {
		if turn >= e.maxTurns {
			e.logger.Warn().Msgf("stopped after %d turns (no winner yet)", turn)
			break
		}
		turn++

		mover := e.game.CurrentPlayer()
		if len(e.game.ValidMoves()) == 0 {
			e.game.Pass()
			gameMetric.Passes++
			continue
		}

		seat := e.seatOf(mover)
		move, err := seat.Strategy.FindMove(e.game)
		switch {
		case errors.Is(err, player.ErrUndoRequested):
			if e.game.UndoLastMove() {
				gameMetric.Undos++
				if len(moveMetrics) > 0 {
					moveMetrics = moveMetrics[:len(moveMetrics)-1]
				}
			} else {
				e.logger.Info().Msgf("undo is not available to %s", mover.Name())
			}
			continue
		case errors.Is(err, game.ErrNoMove):
			gameMetric.Fallbacks++
			move = e.fallback(mover)
		case err != nil:
			return Result{}, fmt.Errorf("match %s: %s failed to find a move: %w", matchID, mover.Name(), err)
		}

		if !e.game.LocateDisc(move.Position, move.Disc) {
			if seat.Interactive {
				e.logger.Warn().Msgf("%s proposed an invalid move %s", mover.Name(), move.Position)
				continue
			}
			e.logger.Warn().Msgf("%s proposed an invalid move %s, playing the first valid move", mover.Name(), move.Position)
			gameMetric.Fallbacks++
			move = e.fallback(mover)
			if !e.game.LocateDisc(move.Position, move.Disc) {
				panic("first valid move was rejected")
			}
		}

		moveMetrics = append(moveMetrics, e.moveMetric(len(moveMetrics)+1, mover, move, seat.Strategy))
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.FirstDiscs, gameMetric.SecondDiscs = e.game.Score()

	result := Result{Game: gameMetric, Moves: moveMetrics}
	if winner, over := e.game.Winner(); over {
		result.Winner = winner.Seat()
		result.Game.Winner = winner.Seat()
	}
	return result, nil
}

func (e *Local) fallback(mover *game.Player) game.Move {
	return game.Move{
		Position: e.game.ValidMoves()[0],
		Disc:     game.NewDisc(mover, game.Ordinary),
	}
}

func (e *Local) moveMetric(step int, mover *game.Player, move game.Move, strategy game.Strategy) metrics.MoveMetric {
	history := e.game.FlipHistory()
	metric := metrics.MoveMetric{
		Step:   step,
		Player: mover.Seat(),
		Move:   fmt.Sprintf("%s %s", move.Disc.Kind(), move.Position),
		Flips:  len(history[len(history)-1]),
	}
	if reporter, ok := strategy.(metrics.Reporter); ok {
		metric.SearchMetric = reporter.LastMetric()
	}
	return metric
}

// narrate logs the engine's events for the current match.
func (e *Local) narrate(event game.Event) {
	switch event.Type {
	case game.EventPlaced:
		e.logger.Debug().Msgf("%s placed a %s disc at %s", event.Player.Name(), event.Kind, event.Position)
	case game.EventFlipped:
		e.logger.Debug().Msgf("%s flipped %d discs: %v", event.Player.Name(), len(event.Positions), event.Positions)
	case game.EventPassed:
		e.logger.Info().Msgf("%s has no valid move and passes", event.Player.Name())
	case game.EventUndone:
		e.logger.Info().Msgf("%s took back %s, %d discs restored", event.Player.Name(), event.Position, len(event.Positions))
	case game.EventGameOver:
		e.logger.Info().Msgf("game over, %s wins with %d-%d", event.Player.Name(), event.FirstDiscs, event.SecondDiscs)
	}
}
