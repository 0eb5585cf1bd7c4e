package grid

// Coord addresses a cell by column and row.
type Coord struct {
	X, Y int
}

// Piece is a token owned by a player. Tag identifies its subtype and must be a single digit 1-9
// so that it survives the state string.
type Piece struct {
	Owner int
	Tag   int
}

// Cell holds at most one piece.
type Cell struct {
	X, Y     int
	piece    Piece
	occupied bool
}

func (c *Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

func (c *Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

func (c *Cell) Occupied() bool {
	return c.occupied
}

// OwnedBy reports whether the cell holds a piece of the given player.
func (c *Cell) OwnedBy(player int) bool {
	return c.occupied && c.piece.Owner == player
}

// Place puts p in the cell, replacing whatever was there.
func (c *Cell) Place(p Piece) {
	c.piece = p
	c.occupied = true
}

// Clear removes and returns the occupying piece.
func (c *Cell) Clear() (Piece, bool) {
	p, ok := c.piece, c.occupied
	c.piece = Piece{}
	c.occupied = false
	return p, ok
}

// Retag changes the subtype of the occupying piece in place.
func (c *Cell) Retag(tag int) {
	if c.occupied {
		c.piece.Tag = tag
	}
}

// Transfer hands the occupying piece to another owner with a new tag.
func (c *Cell) Transfer(owner, tag int) {
	if c.occupied {
		c.piece = Piece{Owner: owner, Tag: tag}
	}
}
