// meta/meta.go
package meta

import "time"

// BOARD_SIZE is the side length of the square board.
const BOARD_SIZE = 8

// STARTING_BOMBS is the number of bomb discs each player may place per game.
const STARTING_BOMBS = 3

// STARTING_UNFLIPPABLES is the number of unflippable discs each player may place per game.
const STARTING_UNFLIPPABLES = 2

// MAX_TURNS bounds a single match, counting undo requests and rejected input.
const MAX_TURNS = 300

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 20

// SEARCH_DURATION is the default MCTS time budget per move.
const SEARCH_DURATION = 100 * time.Millisecond
