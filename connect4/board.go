package connect4

import (
	"golang.org/x/exp/slices"

	"sandbox/utils"
)

const (
	Cols         = 7
	Rows         = 6
	CenterColumn = Cols / 2
	InARow       = 4
)

type Disc int8

const (
	Empty Disc = iota
	Red
	Yellow
)

func (d Disc) Opponent() Disc {
	switch d {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	}
	return "Empty"
}

// Board is column-major with row 0 at the bottom. Each column is filled
// contiguously from row 0 upward.
type Board [Cols][Rows]Disc

// axes are scanned in both directions around a placed disc.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func inside(col, row int) bool {
	return col >= 0 && col < Cols && row >= 0 && row < Rows
}

// CanPlay reports whether col exists and its top cell is empty.
func (b Board) CanPlay(col int) bool {
	if col < 0 || col >= Cols {
		return false
	}
	return b[col][Rows-1] == Empty
}

// Drop puts d on the lowest empty row of col.
func (b *Board) Drop(col int, d Disc) (row int, ok bool) {
	if !b.CanPlay(col) {
		return -1, false
	}
	for r := 0; r < Rows; r++ {
		if b[col][r] == Empty {
			b[col][r] = d
			return r, true
		}
	}
	return -1, false
}

// LegalMoves lists playable columns from left to right.
func (b Board) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if b.CanPlay(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// OrderedMoves lists playable columns nearest the center first.
func (b Board) OrderedMoves() []int {
	moves := b.LegalMoves()
	slices.SortStableFunc(moves, func(x, y int) int {
		return utils.Abs(CenterColumn-x) - utils.Abs(CenterColumn-y)
	})
	return moves
}

// WinAt reports whether the disc at (col, row) completes a line of four for d.
func (b Board) WinAt(col, row int, d Disc) bool {
	for _, axis := range axes {
		total := 1
		for c, r := col-axis[0], row-axis[1]; inside(c, r) && b[c][r] == d; c, r = c-axis[0], r-axis[1] {
			total++
		}
		for c, r := col+axis[0], row+axis[1]; inside(c, r) && b[c][r] == d; c, r = c+axis[0], r+axis[1] {
			total++
		}
		if total >= InARow {
			return true
		}
	}
	return false
}

// Winner scans the whole board for any line of four.
func (b Board) Winner() Disc {
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			d := b[c][r]
			if d == Empty {
				continue
			}
			for _, axis := range axes {
				need := InARow - 1
				for cc, rr := c+axis[0], r+axis[1]; need > 0 && inside(cc, rr) && b[cc][rr] == d; cc, rr = cc+axis[0], rr+axis[1] {
					need--
				}
				if need == 0 {
					return d
				}
			}
		}
	}
	return Empty
}

// Count returns the number of discs on the board.
func (b Board) Count() int {
	n := 0
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			if b[c][r] != Empty {
				n++
			}
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.Count() == Cols*Rows
}
