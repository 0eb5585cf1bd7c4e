// Package checkers implements 8x8 checkers with mandatory and chained captures.
package checkers

import (
	"strings"

	"github.com/rs/zerolog/log"

	"sandbox/game"
	"sandbox/grid"
)

const (
	RedPlayer    = 0
	YellowPlayer = 1
)

// Piece tags, also the state string digits.
const (
	RedMan     = 1
	RedKing    = 2
	YellowMan  = 3
	YellowKing = 4
)

const (
	Size          = 8
	PiecesPerSide = 12
	stateLength   = 32
)

// Checkers is the checkers state machine. Red starts on rows 0-2 and moves toward row 7.
type Checkers struct {
	game.Base
	grid *grid.Grid
	// jumping is the cell of the piece that must continue a capture chain, nil when no chain is open.
	jumping      *grid.Cell
	redPieces    int
	yellowPieces int
}

func New() *Checkers {
	c := &Checkers{
		grid:         grid.New(Size, Size),
		redPieces:    PiecesPerSide,
		yellowPieces: PiecesPerSide,
	}
	c.grid.ForEachCell(func(cell *grid.Cell) {
		c.grid.SetEnabled(cell.X, cell.Y, isDark(cell.X, cell.Y))
	})
	return c
}

func (c *Checkers) Name() string { return "Checkers" }

func (c *Checkers) Grid() *grid.Grid { return c.grid }

func (c *Checkers) HasAI() bool { return false }

func (c *Checkers) UpdateAI() {}

func (c *Checkers) SetUpBoard() {
	c.SetNumberOfPlayers(2)
	c.grid.Clear()
	c.grid.ForEachCell(func(cell *grid.Cell) {
		c.grid.SetEnabled(cell.X, cell.Y, isDark(cell.X, cell.Y))
	})
	c.grid.ForEachEnabledCell(func(cell *grid.Cell) {
		switch {
		case cell.Y < 3:
			cell.Place(pieceFor(RedMan))
		case cell.Y > 4:
			cell.Place(pieceFor(YellowMan))
		}
	})
	c.jumping = nil
	c.redPieces = PiecesPerSide
	c.yellowPieces = PiecesPerSide
	c.StartGame(c.StateString())
}

func (c *Checkers) StopGame() {
	c.grid.Clear()
	c.jumping = nil
	c.redPieces = PiecesPerSide
	c.yellowPieces = PiecesPerSide
}

// Pieces returns the number of red and yellow pieces still on the board.
func (c *Checkers) Pieces() (red, yellow int) {
	return c.redPieces, c.yellowPieces
}

// MustContinueJumping reports the cell of a piece that is in the middle of a capture chain.
func (c *Checkers) MustContinueJumping() (grid.Coord, bool) {
	if c.jumping == nil {
		return grid.Coord{}, false
	}
	return c.jumping.Coord(), true
}

func (c *Checkers) ActionForEmptyDestination(dst *grid.Cell) bool {
	return false
}

func (c *Checkers) CanMoveFrom(src *grid.Cell) bool {
	if src == nil {
		return false
	}
	p, ok := src.Piece()
	if !ok || p.Owner != c.CurrentPlayer().Number {
		return false
	}
	if c.jumping != nil && src != c.jumping {
		return false
	}
	if c.hasJumpAvailable(p.Owner) {
		return c.canJumpFrom(src)
	}
	return true
}

func (c *Checkers) CanMoveFromTo(src, dst *grid.Cell) bool {
	if src == nil || dst == nil || dst.Occupied() {
		return false
	}
	p, ok := src.Piece()
	if !ok {
		return false
	}

	if c.jumping == nil && !c.hasJumpAvailable(p.Owner) {
		for _, d := range directions(p) {
			if c.grid.Neighbor(d, src.X, src.Y) == dst {
				return true
			}
		}
		return false
	}

	if c.jumping != nil && src != c.jumping {
		return false
	}
	for _, d := range directions(p) {
		double, _ := d.Double()
		mid := c.grid.Neighbor(d, src.X, src.Y)
		if mid == nil || !mid.Occupied() || mid.OwnedBy(p.Owner) {
			continue
		}
		if c.grid.Neighbor(double, src.X, src.Y) == dst {
			return true
		}
	}
	return false
}

func (c *Checkers) OnMoved(src, dst *grid.Cell) {
	p, ok := dst.Piece()
	if !ok {
		return
	}

	var jumped *grid.Cell
	for _, d := range grid.Diagonals {
		double, _ := d.Double()
		if c.grid.Neighbor(double, src.X, src.Y) == dst {
			jumped = c.grid.Neighbor(d, src.X, src.Y)
			break
		}
	}

	if jumped != nil && jumped.Occupied() {
		captured, _ := jumped.Clear()
		if captured.Owner == RedPlayer {
			c.redPieces--
		} else {
			c.yellowPieces--
		}
		log.Debug().Msgf("checkers: player %d captured at (%d,%d)", p.Owner, jumped.X, jumped.Y)

		c.promote(dst)
		if c.canJumpFrom(dst) {
			c.jumping = dst
			return
		}
	} else {
		c.promote(dst)
	}

	c.jumping = nil
	c.EndTurn(c.StateString())
}

func (c *Checkers) promote(cell *grid.Cell) {
	p, _ := cell.Piece()
	switch {
	case p.Tag == RedMan && cell.Y == Size-1:
		cell.Retag(RedKing)
	case p.Tag == YellowMan && cell.Y == 0:
		cell.Retag(YellowKing)
	default:
		return
	}
	log.Debug().Msgf("checkers: promoted at (%d,%d)", cell.X, cell.Y)
}

func (c *Checkers) canJumpFrom(cell *grid.Cell) bool {
	p, ok := cell.Piece()
	if !ok {
		return false
	}
	for _, d := range directions(p) {
		double, _ := d.Double()
		mid := c.grid.Neighbor(d, cell.X, cell.Y)
		land := c.grid.Neighbor(double, cell.X, cell.Y)
		if mid != nil && mid.Occupied() && !mid.OwnedBy(p.Owner) && land != nil && !land.Occupied() {
			return true
		}
	}
	return false
}

func (c *Checkers) hasJumpAvailable(player int) bool {
	found := false
	c.grid.ForEachEnabledCell(func(cell *grid.Cell) {
		if !found && cell.OwnedBy(player) && c.canJumpFrom(cell) {
			found = true
		}
	})
	return found
}

func (c *Checkers) hasAnyMove(player int) bool {
	found := false
	c.grid.ForEachEnabledCell(func(cell *grid.Cell) {
		if found || !cell.OwnedBy(player) {
			return
		}
		p, _ := cell.Piece()
		for _, d := range directions(p) {
			if n := c.grid.Neighbor(d, cell.X, cell.Y); n != nil && !n.Occupied() {
				found = true
				return
			}
		}
		if c.canJumpFrom(cell) {
			found = true
		}
	})
	return found
}

// CheckForWinner declares a winner when a side has no pieces left or the player to move is stuck.
func (c *Checkers) CheckForWinner() (game.Player, bool) {
	if c.redPieces == 0 {
		return c.PlayerAt(YellowPlayer), true
	}
	if c.yellowPieces == 0 {
		return c.PlayerAt(RedPlayer), true
	}
	current := c.CurrentPlayer().Number
	if !c.hasAnyMove(current) {
		return c.PlayerAt(1 - current), true
	}
	return game.Player{}, false
}

// CheckForDraw never reports a draw: no repetition or no-progress rule is implemented.
func (c *Checkers) CheckForDraw() bool {
	return false
}

func (c *Checkers) InitialStateString() string {
	return strings.Repeat("1", PiecesPerSide) + strings.Repeat("0", stateLength-2*PiecesPerSide) + strings.Repeat("3", PiecesPerSide)
}

func (c *Checkers) StateString() string {
	return c.grid.StateString()
}

// SetStateString rebuilds the board from 32 digits. Malformed input leaves the board unchanged.
func (c *Checkers) SetStateString(state string) error {
	if len(state) != stateLength {
		return grid.ErrStateLength
	}
	for i := 0; i < len(state); i++ {
		if state[i] < '0' || state[i] > '0'+YellowKing {
			return grid.ErrStateDigit
		}
	}
	red, yellow := 0, 0
	err := c.grid.SetStateString(state, func(cell *grid.Cell, tag int) {
		p := pieceFor(tag)
		cell.Place(p)
		if p.Owner == RedPlayer {
			red++
		} else {
			yellow++
		}
	})
	if err != nil {
		return err
	}
	c.redPieces, c.yellowPieces = red, yellow
	c.jumping = nil
	return nil
}

func isDark(x, y int) bool {
	return (x+y)%2 == 1
}

func isKing(tag int) bool {
	return tag == RedKing || tag == YellowKing
}

func pieceFor(tag int) grid.Piece {
	owner := RedPlayer
	if tag == YellowMan || tag == YellowKing {
		owner = YellowPlayer
	}
	return grid.Piece{Owner: owner, Tag: tag}
}

var (
	redForward    = []grid.Direction{grid.SouthWest, grid.SouthEast}
	yellowForward = []grid.Direction{grid.NorthWest, grid.NorthEast}
)

// directions lists the diagonals a piece may travel: forward only for men, all four for kings.
func directions(p grid.Piece) []grid.Direction {
	if isKing(p.Tag) {
		return grid.Diagonals
	}
	if p.Owner == RedPlayer {
		return redForward
	}
	return yellowForward
}
