// Package grid provides the rectangular board shared by the grid-based games.
package grid

import (
	"errors"
	"strings"

	"sandbox/utils"
)

var (
	ErrStateLength = errors.New("state string length does not match enabled cells")
	ErrStateDigit  = errors.New("state string contains a non-digit")
)

// Grid is a width x height board stored row-major (index = y*width + x) with an enable mask.
// Disabled cells are invisible to lookups, iteration of enabled cells and state strings.
type Grid struct {
	width       int
	height      int
	cells       []Cell
	enabled     []bool
	connections map[int][]int
}

// New creates a grid with every cell enabled and empty.
func New(width, height int) *Grid {
	g := &Grid{
		width:       width,
		height:      height,
		cells:       make([]Cell, width*height),
		enabled:     make([]bool, width*height),
		connections: make(map[int][]int),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := g.Index(x, y)
			g.cells[i] = Cell{X: x, Y: y}
			g.enabled[i] = true
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) Coordinates(index int) (x, y int) {
	return index % g.width, index / g.width
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) IsEnabled(x, y int) bool {
	return g.InBounds(x, y) && g.enabled[g.Index(x, y)]
}

// SetEnabled masks a cell in or out. Masking a cell out discards its piece.
func (g *Grid) SetEnabled(x, y int, enabled bool) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.Index(x, y)
	g.enabled[i] = enabled
	if !enabled {
		g.cells[i].Clear()
	}
}

// At returns the cell at (x, y), or nil when out of range or disabled.
func (g *Grid) At(x, y int) *Cell {
	if !g.IsEnabled(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// AtCoord is At for a Coord.
func (g *Grid) AtCoord(c Coord) *Cell {
	return g.At(c.X, c.Y)
}

// AtIndex returns the cell at a row-major index, or nil when out of range or disabled.
func (g *Grid) AtIndex(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	x, y := g.Coordinates(index)
	return g.At(x, y)
}

// Neighbor returns the cell one step (or two diagonal steps for the double directions) away from (x, y).
// It returns nil at the board edge, for disabled cells and for out-of-range input.
func (g *Grid) Neighbor(d Direction, x, y int) *Cell {
	if !g.IsEnabled(x, y) {
		return nil
	}
	if step, ok := d.Single(); ok {
		mid := g.Neighbor(step, x, y)
		if mid == nil {
			return nil
		}
		return g.Neighbor(step, mid.X, mid.Y)
	}
	if d < North || d > NorthWest {
		return nil
	}
	dx, dy := d.Offset()
	return g.At(x+dx, y+dy)
}

// ForEachCell visits every cell, enabled or not, y outer and x inner.
func (g *Grid) ForEachCell(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// ForEachEnabledCell visits enabled cells in row-major order. State strings depend on this order.
func (g *Grid) ForEachEnabledCell(fn func(c *Cell)) {
	for i := range g.cells {
		if g.enabled[i] {
			fn(&g.cells[i])
		}
	}
}

func (g *Grid) EnabledCount() int {
	n := 0
	for _, on := range g.enabled {
		if on {
			n++
		}
	}
	return n
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Clear()
	}
}

// Move relocates the piece in src to an empty dst.
func (g *Grid) Move(src, dst *Cell) bool {
	if src == nil || dst == nil || src == dst || !src.Occupied() || dst.Occupied() {
		return false
	}
	p, _ := src.Clear()
	dst.Place(p)
	return true
}

// StateString writes one digit per enabled cell: '0' for empty, otherwise the piece tag.
func (g *Grid) StateString() string {
	var sb strings.Builder
	sb.Grow(len(g.cells))
	g.ForEachEnabledCell(func(c *Cell) {
		p, ok := c.Piece()
		if !ok {
			sb.WriteByte('0')
			return
		}
		sb.WriteByte(byte('0' + p.Tag))
	})
	return sb.String()
}

// SetStateString clears the board and calls place for every non-zero digit so the game can
// rebuild its own pieces. The grid is left untouched when the string is malformed.
func (g *Grid) SetStateString(state string, place func(c *Cell, tag int)) error {
	if len(state) != g.EnabledCount() {
		return ErrStateLength
	}
	for i := 0; i < len(state); i++ {
		if state[i] < '0' || state[i] > '9' {
			return ErrStateDigit
		}
	}
	g.Clear()
	i := 0
	g.ForEachEnabledCell(func(c *Cell) {
		tag := int(state[i] - '0')
		i++
		if tag != 0 && place != nil {
			place(c, tag)
		}
	})
	return nil
}

// AddConnection adds a one-way edge between two cell indices. Duplicates are ignored.
func (g *Grid) AddConnection(from, to int) {
	if utils.FindIndex(g.connections[from], to) < 0 {
		g.connections[from] = append(g.connections[from], to)
	}
}

// Connect adds edges in both directions between (fx, fy) and (tx, ty).
func (g *Grid) Connect(fx, fy, tx, ty int) {
	if !g.InBounds(fx, fy) || !g.InBounds(tx, ty) {
		return
	}
	a, b := g.Index(fx, fy), g.Index(tx, ty)
	g.AddConnection(a, b)
	g.AddConnection(b, a)
}

// ConnectedCells returns the enabled cells reachable by an explicit edge from (x, y).
func (g *Grid) ConnectedCells(x, y int) []*Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	var out []*Cell
	for _, i := range g.connections[g.Index(x, y)] {
		if c := g.AtIndex(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (g *Grid) AreConnected(fx, fy, tx, ty int) bool {
	if !g.InBounds(fx, fy) || !g.InBounds(tx, ty) {
		return false
	}
	return utils.FindIndex(g.connections[g.Index(fx, fy)], g.Index(tx, ty)) >= 0
}
