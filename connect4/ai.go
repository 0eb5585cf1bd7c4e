package connect4

import (
	"time"

	"sandbox/experiments/metrics"
	"sandbox/searcher"
)

// Columns tried in order when the search returns nothing.
var fallbackColumns = [Cols]int{3, 2, 4, 1, 5, 0, 6}

// searchRules plays the Board for me, who is always the maximizing side.
type searchRules struct {
	me Disc
}

func (s searchRules) Moves(b Board) []int {
	return b.OrderedMoves()
}

func (s searchRules) Play(b Board, col int, side searcher.Side) Board {
	d := s.me
	if side == searcher.Min {
		d = s.me.Opponent()
	}
	b.Drop(col, d)
	return b
}

func (s searchRules) Outcome(b Board) (int, bool) {
	switch b.Winner() {
	case s.me:
		return winScore, true
	case s.me.Opponent():
		return -winScore, true
	}
	if len(b.LegalMoves()) == 0 {
		return neutralScore, true
	}
	return 0, false
}

func (s searchRules) Evaluate(b Board) int {
	return Evaluate(&b, s.me)
}

// ChooseColumn runs a depth-limited alpha-beta search on a copy of b for me.
func ChooseColumn(b Board, me Disc, depth int, budget time.Duration) (int, metrics.SearchMetric) {
	m := searcher.NewMinimax[Board, int](searchRules{me: me},
		searcher.WithDepth(depth),
		searcher.WithDuration(budget),
		searcher.WithMetrics(),
	)
	result := m.Search(b)
	if result.Found {
		return result.Move, result.Metric
	}
	for _, c := range fallbackColumns {
		if b.CanPlay(c) {
			return c, result.Metric
		}
	}
	return CenterColumn, result.Metric
}
