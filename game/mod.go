package game

import (
	"hash/fnv"

	"sandbox/grid"
)

// Player is one of the two participants. Numbers are zero-based.
type Player struct {
	Number int
	AI     bool
}

// Game is the capability set every variant offers to its host.
type Game interface {
	Name() string
	// SetUpBoard allocates players, places the initial pieces and starts the ledger.
	SetUpBoard()
	// StopGame clears every piece and resets game-local counters.
	StopGame()
	CurrentPlayer() Player
	CheckForWinner() (Player, bool)
	CheckForDraw() bool
	StateString() string
	SetStateString(state string) error
	InitialStateString() string
	HasAI() bool
	// UpdateAI computes and commits exactly one move for the AI player to act.
	UpdateAI()
	Ledger() *Ledger
}

// GridGame is a Game played by relocating or placing pieces on a grid.
type GridGame interface {
	Game
	Grid() *grid.Grid
	// CanMoveFrom reports whether the piece in src may be picked up.
	CanMoveFrom(src *grid.Cell) bool
	// CanMoveFromTo reports whether the piece in src may land on dst. It never mutates.
	CanMoveFromTo(src, dst *grid.Cell) bool
	// OnMoved applies the side effects of a committed move. The piece already sits on dst.
	OnMoved(src, dst *grid.Cell)
	// ActionForEmptyDestination handles a click on an empty cell, committing a placement when legal.
	ActionForEmptyDestination(dst *grid.Cell) bool
}

// Placer is implemented by grid games that create pieces in empty cells.
type Placer interface {
	CanPlaceAt(dst *grid.Cell) bool
}

// SelfContainedGame owns its board and is driven by column drops and frame ticks.
type SelfContainedGame interface {
	Game
	CanPlay(col int) bool
	PlayColumn(col int) bool
	Update(dt float64)
	CurrentPlayerNumber() int
	WinnerNumber() int
	IsDrawn() bool
	IsRunning() bool
	IsBusy() bool
}

type StateHash uint64

// Hash fingerprints a state string.
func Hash(state string) StateHash {
	h := fnv.New64a()
	h.Write([]byte(state))
	return StateHash(h.Sum64())
}
