package gamemaster

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"sandbox/game"
	"sandbox/grid"
)

// gridGame returns the active game if it is played on a grid and a human is to move.
func (gm *GameMaster) gridGame() (game.GridGame, error) {
	if gm.game == nil {
		return nil, ErrNoGame
	}
	g, ok := gm.game.(game.GridGame)
	if !ok {
		return nil, ErrUnsupported
	}
	if gm.over() {
		return nil, ErrGameOver
	}
	if g.CurrentPlayer().AI {
		return nil, ErrNotYourTurn
	}
	return g, nil
}

// Selected returns the cell picked up for a pending move.
func (gm *GameMaster) Selected() (grid.Coord, bool) {
	if gm.selected == nil {
		return grid.Coord{}, false
	}
	return gm.selected.Coord(), true
}

// Pick selects the piece at at as the source of the next move.
func (gm *GameMaster) Pick(at grid.Coord) error {
	g, err := gm.gridGame()
	if err != nil {
		return err
	}
	src := g.Grid().AtCoord(at)
	if !g.CanMoveFrom(src) {
		return fmt.Errorf("%w: cannot move from (%d,%d)", ErrIllegalMove, at.X, at.Y)
	}
	gm.selected = src
	return nil
}

func (gm *GameMaster) Deselect() {
	gm.selected = nil
}

// Move relocates the piece at from to to.
func (gm *GameMaster) Move(from, to grid.Coord) error {
	g, err := gm.gridGame()
	if err != nil {
		return err
	}
	src, dst := g.Grid().AtCoord(from), g.Grid().AtCoord(to)
	if !game.Relocate(g, src, dst) {
		return fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrIllegalMove, from.X, from.Y, to.X, to.Y)
	}
	gm.selected = nil
	// A capture chain keeps the same piece selected.
	if c, ok := g.(interface{ MustContinueJumping() (grid.Coord, bool) }); ok {
		if at, latched := c.MustContinueJumping(); latched {
			gm.selected = g.Grid().AtCoord(at)
		}
	}
	log.Debug().Msgf("%s: moved (%d,%d) -> (%d,%d)", g.Name(), from.X, from.Y, to.X, to.Y)
	return nil
}

// Place hands a click on the empty cell at to the game.
func (gm *GameMaster) Place(at grid.Coord) error {
	g, err := gm.gridGame()
	if err != nil {
		return err
	}
	if !game.Place(g, g.Grid().AtCoord(at)) {
		return fmt.Errorf("%w: cannot place at (%d,%d)", ErrIllegalMove, at.X, at.Y)
	}
	gm.selected = nil
	return nil
}

// Click resolves a click on a cell: an occupied cell is picked up, an empty one
// receives the selected piece or a placement.
func (gm *GameMaster) Click(at grid.Coord) error {
	g, err := gm.gridGame()
	if err != nil {
		return err
	}
	c := g.Grid().AtCoord(at)
	if c == nil {
		return fmt.Errorf("%w: (%d,%d) is off the board", ErrIllegalMove, at.X, at.Y)
	}
	if c.Occupied() {
		return gm.Pick(at)
	}
	if gm.selected != nil {
		return gm.Move(gm.selected.Coord(), at)
	}
	return gm.Place(at)
}

// DropColumn plays col in a column-drop game.
func (gm *GameMaster) DropColumn(col int) error {
	if gm.game == nil {
		return ErrNoGame
	}
	g, ok := gm.game.(game.SelfContainedGame)
	if !ok {
		return ErrUnsupported
	}
	switch {
	case !g.IsRunning():
		return ErrNoGame
	case gm.over():
		return ErrGameOver
	case g.IsBusy():
		return ErrBusy
	case g.CurrentPlayer().AI:
		return ErrNotYourTurn
	}
	if !g.PlayColumn(col) {
		return fmt.Errorf("%w: column %d", ErrIllegalMove, col)
	}
	return nil
}
