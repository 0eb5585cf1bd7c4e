package connect4

// Window weights.
const (
	fourScore       = 10000
	threeScore      = 100
	twoScore        = 12
	opponentThree   = -120
	opponentFour    = -10000
	centerDiscScore = 6
	winScore        = 100000
	neutralScore    = 0
	windowsPerBoard = Rows*(Cols-InARow+1) + Cols*(Rows-InARow+1) + 2*(Cols-InARow+1)*(Rows-InARow+1)
)

type window [InARow]Disc

// windows enumerates every 4-cell line on the board exactly once.
func windows(b *Board) []window {
	ws := make([]window, 0, windowsPerBoard)
	collect := func(col, row, dc, dr int) {
		var w window
		for i := 0; i < InARow; i++ {
			w[i] = b[col+i*dc][row+i*dr]
		}
		ws = append(ws, w)
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-InARow; c++ {
			collect(c, r, 1, 0)
		}
	}
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-InARow; r++ {
			collect(c, r, 0, 1)
		}
	}
	for c := 0; c <= Cols-InARow; c++ {
		for r := 0; r <= Rows-InARow; r++ {
			collect(c, r, 1, 1)
		}
		for r := InARow - 1; r < Rows; r++ {
			collect(c, r, 1, -1)
		}
	}
	return ws
}

func scoreWindow(w window, me Disc) int {
	opp := me.Opponent()
	mine, theirs, empty := 0, 0, 0
	for _, d := range w {
		switch d {
		case me:
			mine++
		case opp:
			theirs++
		default:
			empty++
		}
	}
	switch {
	case mine == 4:
		return fourScore
	case mine == 3 && empty == 1:
		return threeScore
	case mine == 2 && empty == 2:
		return twoScore
	case theirs == 3 && empty == 1:
		return opponentThree
	case theirs == 4:
		return opponentFour
	}
	return 0
}

func scoreFor(b *Board, ws []window, who Disc) int {
	s := 0
	for r := 0; r < Rows; r++ {
		if b[CenterColumn][r] == who {
			s += centerDiscScore
		}
	}
	for _, w := range ws {
		s += scoreWindow(w, who)
	}
	return s
}

// Evaluate scores a position for me: my window score minus the opponent's.
func Evaluate(b *Board, me Disc) int {
	ws := windows(b)
	return scoreFor(b, ws, me) - scoreFor(b, ws, me.Opponent())
}
