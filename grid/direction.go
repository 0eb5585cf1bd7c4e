package grid

// Direction names a step from a cell. Rows grow downward, so North is y-1.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// Two steps along a diagonal: the landing cell of a jump.
	DoubleNorthEast
	DoubleSouthEast
	DoubleSouthWest
	DoubleNorthWest
)

// Compass lists the eight single-step directions clockwise from North.
var Compass = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Diagonals lists the four single-step diagonal directions.
var Diagonals = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}

var offsets = [...][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var names = [...]string{
	"N", "NE", "E", "SE", "S", "SW", "W", "NW",
	"NENE", "SESE", "SWSW", "NWNW",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(names) {
		return "?"
	}
	return names[d]
}

// Offset returns the single-step displacement of a compass direction.
// Double directions report the displacement of their underlying diagonal.
func (d Direction) Offset() (dx, dy int) {
	if step, ok := d.Single(); ok {
		o := offsets[step]
		return o[0], o[1]
	}
	o := offsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing back, e.g. South for North.
func (d Direction) Opposite() Direction {
	if d.IsDouble() {
		return DoubleNorthEast + (d-DoubleNorthEast+2)%4
	}
	return (d + 4) % 8
}

// IsDouble reports whether d is one of the two-step diagonal lookups.
func (d Direction) IsDouble() bool {
	return d >= DoubleNorthEast && d <= DoubleNorthWest
}

// Single returns the diagonal that a double direction repeats.
func (d Direction) Single() (Direction, bool) {
	if !d.IsDouble() {
		return d, false
	}
	return Diagonals[d-DoubleNorthEast], true
}

// Double returns the two-step lookup for a diagonal.
func (d Direction) Double() (Direction, bool) {
	for i, diag := range Diagonals {
		if diag == d {
			return DoubleNorthEast + Direction(i), true
		}
	}
	return d, false
}
