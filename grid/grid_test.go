package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func checkerboard() *Grid {
	g := New(8, 8)
	g.ForEachCell(func(c *Cell) {
		g.SetEnabled(c.X, c.Y, (c.X+c.Y)%2 == 1)
	})
	return g
}

func TestNeighbor(t *testing.T) {
	t.Run("offsets follow screen rows", func(t *testing.T) {
		g := New(3, 3)
		require.Equal(t, Coord{1, 0}, g.Neighbor(North, 1, 1).Coord())
		require.Equal(t, Coord{2, 0}, g.Neighbor(NorthEast, 1, 1).Coord())
		require.Equal(t, Coord{2, 1}, g.Neighbor(East, 1, 1).Coord())
		require.Equal(t, Coord{2, 2}, g.Neighbor(SouthEast, 1, 1).Coord())
		require.Equal(t, Coord{1, 2}, g.Neighbor(South, 1, 1).Coord())
		require.Equal(t, Coord{0, 2}, g.Neighbor(SouthWest, 1, 1).Coord())
		require.Equal(t, Coord{0, 1}, g.Neighbor(West, 1, 1).Coord())
		require.Equal(t, Coord{0, 0}, g.Neighbor(NorthWest, 1, 1).Coord())
	})

	t.Run("edges and bad input return nil", func(t *testing.T) {
		g := New(3, 3)
		require.Nil(t, g.Neighbor(North, 0, 0), "top edge has no north neighbor")
		require.Nil(t, g.Neighbor(West, 0, 0), "left edge has no west neighbor")
		require.Nil(t, g.Neighbor(SouthEast, 2, 2), "corner has no south-east neighbor")
		require.Nil(t, g.Neighbor(East, -5, 40), "out of range origin")
		require.Nil(t, g.Neighbor(Direction(99), 1, 1), "unknown direction")
	})

	t.Run("symmetry over every cell and direction", func(t *testing.T) {
		for _, g := range []*Grid{New(8, 8), New(5, 3), checkerboard()} {
			g.ForEachEnabledCell(func(c *Cell) {
				for _, d := range append(append([]Direction{}, Compass...), DoubleNorthEast, DoubleSouthEast, DoubleSouthWest, DoubleNorthWest) {
					n := g.Neighbor(d, c.X, c.Y)
					if n == nil {
						continue
					}
					back := g.Neighbor(d.Opposite(), n.X, n.Y)
					require.NotNil(t, back, "opposite of %s from %v should exist", d, n.Coord())
					require.Equal(t, c.Coord(), back.Coord(), "opposite of %s should return to origin", d)
				}
			})
		}
	})

	t.Run("double diagonals step twice", func(t *testing.T) {
		g := checkerboard()
		require.Equal(t, Coord{3, 4}, g.Neighbor(DoubleSouthEast, 1, 2).Coord())
		require.Equal(t, Coord{3, 0}, g.Neighbor(DoubleNorthEast, 1, 2).Coord())
		require.Nil(t, g.Neighbor(DoubleNorthWest, 1, 2), "first step lands off the board")
		require.Nil(t, g.Neighbor(DoubleSouthWest, 0, 1), "first step lands off the board")
	})

	t.Run("disabled cells are invisible", func(t *testing.T) {
		g := checkerboard()
		require.Nil(t, g.At(0, 0), "light square is masked out")
		require.Nil(t, g.Neighbor(East, 1, 0), "orthogonal step lands on a light square")
		require.NotNil(t, g.Neighbor(SouthWest, 1, 0))
	})
}

func TestIteration(t *testing.T) {
	t.Run("row-major order", func(t *testing.T) {
		g := New(3, 2)
		var got []Coord
		g.ForEachCell(func(c *Cell) { got = append(got, c.Coord()) })
		require.Equal(t, []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, got)
	})

	t.Run("enabled variant skips masked cells", func(t *testing.T) {
		g := checkerboard()
		var got []Coord
		g.ForEachEnabledCell(func(c *Cell) { got = append(got, c.Coord()) })
		require.Len(t, got, 32)
		require.Equal(t, Coord{1, 0}, got[0])
		require.Equal(t, Coord{0, 1}, got[4])
		require.Equal(t, Coord{6, 7}, got[31])
		require.Equal(t, 32, g.EnabledCount())
	})
}

func TestStateString(t *testing.T) {
	t.Run("digit per enabled cell", func(t *testing.T) {
		g := New(3, 1)
		g.At(1, 0).Place(Piece{Owner: 0, Tag: 4})
		require.Equal(t, "040", g.StateString())
	})

	t.Run("round trip rebuilds through the callback", func(t *testing.T) {
		g := checkerboard()
		g.At(1, 0).Place(Piece{Owner: 0, Tag: 1})
		g.At(2, 7).Place(Piece{Owner: 1, Tag: 4})
		state := g.StateString()

		other := checkerboard()
		err := other.SetStateString(state, func(c *Cell, tag int) {
			c.Place(Piece{Owner: tag / 3, Tag: tag})
		})
		require.NoError(t, err)
		require.Equal(t, state, other.StateString())
		p, ok := other.At(2, 7).Piece()
		require.True(t, ok)
		require.Equal(t, Piece{Owner: 1, Tag: 4}, p)
	})

	t.Run("without a callback the board is only cleared", func(t *testing.T) {
		g := New(2, 2)
		g.At(0, 0).Place(Piece{Tag: 1})
		require.NoError(t, g.SetStateString("1111", nil))
		require.Equal(t, "0000", g.StateString())
	})

	t.Run("malformed input leaves the board unchanged", func(t *testing.T) {
		g := New(2, 2)
		g.At(0, 0).Place(Piece{Tag: 2})
		require.ErrorIs(t, g.SetStateString("20", nil), ErrStateLength)
		require.ErrorIs(t, g.SetStateString("20x0", nil), ErrStateDigit)
		require.Equal(t, "2000", g.StateString())
	})
}

func TestMove(t *testing.T) {
	g := New(3, 3)
	src, dst := g.At(0, 0), g.At(2, 2)
	src.Place(Piece{Owner: 1, Tag: 3})

	require.False(t, g.Move(dst, src), "empty source cannot move")
	require.True(t, g.Move(src, dst))
	require.False(t, src.Occupied())
	require.True(t, dst.OwnedBy(1))

	g.At(1, 1).Place(Piece{Owner: 0, Tag: 1})
	require.False(t, g.Move(g.At(1, 1), dst), "occupied destination rejected")
}

func TestConnections(t *testing.T) {
	g := New(4, 4)
	g.AddConnection(g.Index(0, 0), g.Index(3, 3))
	g.AddConnection(g.Index(0, 0), g.Index(3, 3))
	g.Connect(1, 1, 2, 0)

	require.True(t, g.AreConnected(0, 0, 3, 3))
	require.False(t, g.AreConnected(3, 3, 0, 0), "AddConnection is one-way")
	require.True(t, g.AreConnected(2, 0, 1, 1), "Connect adds both directions")
	require.Len(t, g.ConnectedCells(0, 0), 1, "duplicate edges are ignored")

	g.SetEnabled(3, 3, false)
	require.Empty(t, g.ConnectedCells(0, 0), "disabled targets are skipped")
	require.False(t, g.AreConnected(9, 9, 0, 0))
}

func TestDirection(t *testing.T) {
	require.Equal(t, South, North.Opposite())
	require.Equal(t, NorthWest, SouthEast.Opposite())
	require.Equal(t, DoubleSouthWest, DoubleNorthEast.Opposite())
	d, ok := NorthWest.Double()
	require.True(t, ok)
	require.Equal(t, DoubleNorthWest, d)
	_, ok = North.Double()
	require.False(t, ok, "orthogonal directions have no double")
	require.Equal(t, "SESE", DoubleSouthEast.String())
}
