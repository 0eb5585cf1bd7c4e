// Package othello implements Othello with implicit passes and a greedy one-ply AI.
package othello

import (
	"strings"

	"github.com/rs/zerolog/log"

	"sandbox/game"
	"sandbox/grid"
)

const (
	BlackPlayer = 0
	WhitePlayer = 1
)

// Piece tags, also the state string digits.
const (
	Black = 1
	White = 2
)

const Size = 8

type Option func(o *Othello)

// WithAIPlayer lets the built-in AI play for the given player.
func WithAIPlayer(player int) Option {
	return func(o *Othello) {
		if player == BlackPlayer || player == WhitePlayer {
			o.ai = true
			o.aiPlayer = player
		}
	}
}

func WithoutAI() Option {
	return func(o *Othello) {
		o.ai = false
	}
}

type Othello struct {
	game.Base
	grid     *grid.Grid
	passes   int
	hints    bool
	ai       bool
	aiPlayer int
}

// New returns an Othello game. White is played by the AI unless options say otherwise.
func New(options ...Option) *Othello {
	o := &Othello{
		grid:     grid.New(Size, Size),
		ai:       true,
		aiPlayer: WhitePlayer,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *Othello) Name() string { return "Othello" }

func (o *Othello) Grid() *grid.Grid { return o.grid }

func (o *Othello) HasAI() bool { return o.ai }

func (o *Othello) SetUpBoard() {
	o.SetNumberOfPlayers(2)
	o.grid.Clear()
	o.place(3, 3, WhitePlayer)
	o.place(4, 4, WhitePlayer)
	o.place(4, 3, BlackPlayer)
	o.place(3, 4, BlackPlayer)
	o.passes = 0
	if o.ai {
		o.SetAIPlayer(o.aiPlayer)
	}
	o.StartGame(o.StateString())
}

func (o *Othello) StopGame() {
	o.grid.Clear()
	o.passes = 0
}

func (o *Othello) place(x, y, player int) {
	o.grid.At(x, y).Place(pieceFor(player))
}

// Passes is the number of consecutive implicit passes.
func (o *Othello) Passes() int {
	return o.passes
}

func (o *Othello) ShowHints()         { o.hints = true }
func (o *Othello) HideHints()         { o.hints = false }
func (o *Othello) ShowingHints() bool { return o.hints }

// Pieces never move in Othello.
func (o *Othello) CanMoveFrom(src *grid.Cell) bool        { return false }
func (o *Othello) CanMoveFromTo(src, dst *grid.Cell) bool { return false }
func (o *Othello) OnMoved(src, dst *grid.Cell)            {}

func (o *Othello) CanPlaceAt(dst *grid.Cell) bool {
	return dst != nil && o.isValidMove(dst.X, dst.Y, o.CurrentPlayer().Number)
}

// ActionForEmptyDestination places a disc for the current player and flips every sandwiched run.
// If the opponent then has no move the mover plays again; if neither can move the game ends.
func (o *Othello) ActionForEmptyDestination(dst *grid.Cell) bool {
	if dst == nil || dst.Occupied() {
		return false
	}
	current := o.CurrentPlayer().Number
	if !o.isValidMove(dst.X, dst.Y, current) {
		return false
	}

	dst.Place(pieceFor(current))
	flipped := o.flip(dst.X, dst.Y, current)
	o.passes = 0
	log.Debug().Msgf("othello: player %d placed at (%d,%d) flipping %d", current, dst.X, dst.Y, flipped)

	if !o.hasValidMove(1 - current) {
		o.passes++
		if o.hasValidMove(current) {
			log.Debug().Msgf("othello: player %d has no move, player %d plays again", 1-current, current)
			return true
		}
		o.passes = 2
	}

	o.EndTurn(o.StateString())
	return true
}

// UpdateAI plays the move that flips the most discs, first found in row-major order on ties.
func (o *Othello) UpdateAI() {
	if !o.ai {
		return
	}
	player := o.CurrentPlayer().Number
	moves := o.ValidMoves(player)
	if len(moves) == 0 {
		o.passes++
		o.EndTurn(o.StateString())
		return
	}

	best, maxFlips := moves[0], 0
	for _, m := range moves {
		if flips := o.countFlips(m.X, m.Y, player); flips > maxFlips {
			best, maxFlips = m, flips
		}
	}
	o.ActionForEmptyDestination(o.grid.AtCoord(best))
}

func (o *Othello) isValidMove(x, y, player int) bool {
	c := o.grid.At(x, y)
	if c == nil || c.Occupied() {
		return false
	}
	for _, d := range grid.Compass {
		if o.checkDirection(x, y, d, player) > 0 {
			return true
		}
	}
	return false
}

// checkDirection counts the opponent run starting next to (x, y) along d that is closed by one of
// player's discs. It returns 0 when the run is empty or left open.
func (o *Othello) checkDirection(x, y int, d grid.Direction, player int) int {
	count := 0
	for c := o.grid.Neighbor(d, x, y); c != nil; c = o.grid.Neighbor(d, c.X, c.Y) {
		if !c.Occupied() {
			return 0
		}
		if c.OwnedBy(player) {
			return count
		}
		count++
	}
	return 0
}

func (o *Othello) countFlips(x, y, player int) int {
	total := 0
	for _, d := range grid.Compass {
		total += o.checkDirection(x, y, d, player)
	}
	return total
}

func (o *Othello) flip(x, y, player int) int {
	total := 0
	for _, d := range grid.Compass {
		n := o.checkDirection(x, y, d, player)
		c := o.grid.At(x, y)
		for i := 0; i < n; i++ {
			c = o.grid.Neighbor(d, c.X, c.Y)
			p := pieceFor(player)
			c.Transfer(p.Owner, p.Tag)
		}
		total += n
	}
	return total
}

func (o *Othello) hasValidMove(player int) bool {
	found := false
	o.grid.ForEachCell(func(c *grid.Cell) {
		if !found && o.isValidMove(c.X, c.Y, player) {
			found = true
		}
	})
	return found
}

// ValidMoves lists the legal placements for player in row-major order.
func (o *Othello) ValidMoves(player int) []grid.Coord {
	var moves []grid.Coord
	o.grid.ForEachCell(func(c *grid.Cell) {
		if o.isValidMove(c.X, c.Y, player) {
			moves = append(moves, c.Coord())
		}
	})
	return moves
}

// Counts returns the number of black and white discs.
func (o *Othello) Counts() (black, white int) {
	o.grid.ForEachCell(func(c *grid.Cell) {
		switch {
		case c.OwnedBy(BlackPlayer):
			black++
		case c.OwnedBy(WhitePlayer):
			white++
		}
	})
	return black, white
}

func (o *Othello) boardFull() bool {
	full := true
	o.grid.ForEachCell(func(c *grid.Cell) {
		if !c.Occupied() {
			full = false
		}
	})
	return full
}

func (o *Othello) terminal() bool {
	return o.passes >= 2 ||
		(!o.hasValidMove(BlackPlayer) && !o.hasValidMove(WhitePlayer)) ||
		o.boardFull()
}

// CheckForWinner reports the majority holder once the game is over.
func (o *Othello) CheckForWinner() (game.Player, bool) {
	if !o.terminal() {
		return game.Player{}, false
	}
	black, white := o.Counts()
	switch {
	case black > white:
		return o.PlayerAt(BlackPlayer), true
	case white > black:
		return o.PlayerAt(WhitePlayer), true
	}
	return game.Player{}, false
}

func (o *Othello) CheckForDraw() bool {
	if !o.terminal() {
		return false
	}
	black, white := o.Counts()
	return black == white
}

func (o *Othello) InitialStateString() string {
	state := []byte(strings.Repeat("0", Size*Size))
	state[3*Size+3] = '0' + White
	state[4*Size+4] = '0' + White
	state[3*Size+4] = '0' + Black
	state[4*Size+3] = '0' + Black
	return string(state)
}

func (o *Othello) StateString() string {
	return o.grid.StateString()
}

// SetStateString rebuilds the board from 64 digits. Malformed input leaves the board unchanged.
func (o *Othello) SetStateString(state string) error {
	if len(state) != Size*Size {
		return grid.ErrStateLength
	}
	for i := 0; i < len(state); i++ {
		if state[i] < '0' || state[i] > '0'+White {
			return grid.ErrStateDigit
		}
	}
	return o.grid.SetStateString(state, func(c *grid.Cell, tag int) {
		c.Place(pieceFor(tag - 1))
	})
}

func pieceFor(player int) grid.Piece {
	return grid.Piece{Owner: player, Tag: player + 1}
}
