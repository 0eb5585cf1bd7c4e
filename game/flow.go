package game

import "sandbox/grid"

// Move is either a relocation From -> To or, when Place is set, a placement at To.
type Move struct {
	From  grid.Coord
	To    grid.Coord
	Place bool
}

// Relocate runs the drag-and-drop flow: both legality checks, the move itself, then the game's side effects.
func Relocate(g GridGame, src, dst *grid.Cell) bool {
	if !g.CanMoveFrom(src) || !g.CanMoveFromTo(src, dst) {
		return false
	}
	if !g.Grid().Move(src, dst) {
		return false
	}
	g.OnMoved(src, dst)
	return true
}

// Place hands a click on an empty cell to the game.
func Place(g GridGame, dst *grid.Cell) bool {
	if dst == nil || dst.Occupied() {
		return false
	}
	return g.ActionForEmptyDestination(dst)
}

// Apply commits m through Relocate or Place.
func Apply(g GridGame, m Move) bool {
	if m.Place {
		return Place(g, g.Grid().AtCoord(m.To))
	}
	return Relocate(g, g.Grid().AtCoord(m.From), g.Grid().AtCoord(m.To))
}

// LegalMoves lists every move open to the player to act, relocations first, in row-major order.
// Placements are only listed for games implementing Placer.
func LegalMoves(g GridGame) []Move {
	var moves []Move
	board := g.Grid()
	board.ForEachEnabledCell(func(src *grid.Cell) {
		if !g.CanMoveFrom(src) {
			return
		}
		board.ForEachEnabledCell(func(dst *grid.Cell) {
			if g.CanMoveFromTo(src, dst) {
				moves = append(moves, Move{From: src.Coord(), To: dst.Coord()})
			}
		})
	})

	placer, ok := g.(Placer)
	if !ok {
		return moves
	}
	board.ForEachEnabledCell(func(dst *grid.Cell) {
		if placer.CanPlaceAt(dst) {
			moves = append(moves, Move{To: dst.Coord(), Place: true})
		}
	})
	return moves
}
