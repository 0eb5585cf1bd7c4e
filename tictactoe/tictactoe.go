// Package tictactoe implements noughts and crosses on a 3x3 grid with a negamax AI.
package tictactoe

import (
	"strings"

	"github.com/rs/zerolog/log"

	"sandbox/game"
	"sandbox/grid"
	"sandbox/searcher"
)

const (
	XPlayer = 0
	OPlayer = 1
)

// Piece tags, also the state string digits.
const (
	X = 1
	O = 2
)

const Size = 3

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type Option func(t *TicTacToe)

func WithAIPlayer(player int) Option {
	return func(t *TicTacToe) {
		if player == XPlayer || player == OPlayer {
			t.aiPlayer = player
		}
	}
}

// WithoutAI seats two humans. UpdateAI still works when called directly.
func WithoutAI() Option {
	return func(t *TicTacToe) {
		t.aiPlayer = -1
	}
}

type TicTacToe struct {
	game.Base
	grid     *grid.Grid
	aiPlayer int
	search   *searcher.Negamax[board, int]
}

// New returns a game in which the AI plays O unless told otherwise.
func New(options ...Option) *TicTacToe {
	t := &TicTacToe{
		grid:     grid.New(Size, Size),
		aiPlayer: OPlayer,
		search:   searcher.NewNegamax[board, int](rules{}, searcher.WithDepth(Size*Size)),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *TicTacToe) Name() string { return "Tic-Tac-Toe" }

func (t *TicTacToe) Grid() *grid.Grid { return t.grid }

func (t *TicTacToe) HasAI() bool { return true }

func (t *TicTacToe) AIPlayer() int { return t.aiPlayer }

func (t *TicTacToe) SetUpBoard() {
	t.SetNumberOfPlayers(2)
	t.grid.Clear()
	t.SetAIPlayer(t.aiPlayer)
	t.StartGame(t.StateString())
}

func (t *TicTacToe) StopGame() {
	t.grid.Clear()
}

// Pieces never move once placed.
func (t *TicTacToe) CanMoveFrom(src *grid.Cell) bool        { return false }
func (t *TicTacToe) CanMoveFromTo(src, dst *grid.Cell) bool { return false }
func (t *TicTacToe) OnMoved(src, dst *grid.Cell)            {}

func (t *TicTacToe) CanPlaceAt(dst *grid.Cell) bool {
	if dst == nil || dst.Occupied() {
		return false
	}
	_, over := t.snapshot().outcome()
	return !over
}

func (t *TicTacToe) ActionForEmptyDestination(dst *grid.Cell) bool {
	if !t.CanPlaceAt(dst) {
		return false
	}
	current := t.CurrentPlayer().Number
	dst.Place(pieceFor(current))
	t.EndTurn(t.StateString())
	return true
}

// UpdateAI plays the negamax choice for the player to move.
func (t *TicTacToe) UpdateAI() {
	b := t.snapshot()
	if _, over := b.outcome(); over {
		return
	}
	player := t.CurrentPlayer().Number
	result := t.search.Search(b, sideFor(player))
	if !result.Found {
		return
	}
	x, y := t.grid.Coordinates(result.Move)
	log.Debug().Msgf("tictactoe: player %d plays (%d,%d) scoring %d", player, x, y, result.Score)
	t.ActionForEmptyDestination(t.grid.At(x, y))
}

func (t *TicTacToe) CheckForWinner() (game.Player, bool) {
	winner := t.snapshot().winner()
	if winner == 0 {
		return game.Player{}, false
	}
	return t.PlayerAt(int(winner) - 1), true
}

func (t *TicTacToe) CheckForDraw() bool {
	b := t.snapshot()
	return b.winner() == 0 && b.full()
}

func (t *TicTacToe) InitialStateString() string {
	return strings.Repeat("0", Size*Size)
}

func (t *TicTacToe) StateString() string {
	return t.grid.StateString()
}

// SetStateString rebuilds the board from 9 digits. Malformed input leaves the board unchanged.
func (t *TicTacToe) SetStateString(state string) error {
	if len(state) != Size*Size {
		return grid.ErrStateLength
	}
	for i := 0; i < len(state); i++ {
		if state[i] < '0' || state[i] > '0'+O {
			return grid.ErrStateDigit
		}
	}
	return t.grid.SetStateString(state, func(c *grid.Cell, tag int) {
		c.Place(pieceFor(tag - 1))
	})
}

func (t *TicTacToe) snapshot() board {
	var b board
	t.grid.ForEachCell(func(c *grid.Cell) {
		if p, ok := c.Piece(); ok {
			b[t.grid.Index(c.X, c.Y)] = int8(p.Tag)
		}
	})
	return b
}

func pieceFor(player int) grid.Piece {
	return grid.Piece{Owner: player, Tag: player + 1}
}

// X maximizes.
func sideFor(player int) searcher.Side {
	if player == XPlayer {
		return searcher.Max
	}
	return searcher.Min
}
