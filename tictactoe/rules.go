package tictactoe

import "sandbox/searcher"

const winScore = 10

// board holds one tag per cell in row-major order.
type board [Size * Size]int8

func (b board) winner() int8 {
	for _, l := range lines {
		if b[l[0]] != 0 && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			return b[l[0]]
		}
	}
	return 0
}

func (b board) empties() int {
	n := 0
	for _, v := range b {
		if v == 0 {
			n++
		}
	}
	return n
}

func (b board) full() bool {
	return b.empties() == 0
}

// outcome scores finished boards from X's point of view. Quicker wins score higher.
func (b board) outcome() (int, bool) {
	switch b.winner() {
	case X:
		return winScore + b.empties(), true
	case O:
		return -(winScore + b.empties()), true
	}
	if b.full() {
		return 0, true
	}
	return 0, false
}

type rules struct{}

func (rules) Moves(b board) []int {
	moves := make([]int, 0, b.empties())
	for i, v := range b {
		if v == 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

func (rules) Play(b board, move int, side searcher.Side) board {
	if side == searcher.Max {
		b[move] = X
	} else {
		b[move] = O
	}
	return b
}

func (rules) Outcome(b board) (int, bool) {
	return b.outcome()
}

func (rules) Evaluate(b board) int {
	return 0
}
