package engine

import (
	"errors"

	"golang.org/x/exp/rand"

	"sandbox/experiments/metrics"
	"sandbox/game"
)

var (
	ErrNoAI    = errors.New("game has no built-in AI")
	ErrNoMoves = errors.New("no legal move for the player to act")
)

// Agent acts for one seat. Act commits exactly one move on g.
type Agent interface {
	Name() string
	Act(g game.Game) (metrics.SearchMetric, error)
}

type searchReporter interface {
	LastSearch() metrics.SearchMetric
}

type columnLister interface {
	LegalColumns() []int
}

// BuiltinAgent lets the game's own AI move.
type BuiltinAgent struct{}

func NewBuiltinAgent() *BuiltinAgent {
	return &BuiltinAgent{}
}

func (a *BuiltinAgent) Name() string { return "builtin" }

func (a *BuiltinAgent) Act(g game.Game) (metrics.SearchMetric, error) {
	if !g.HasAI() {
		return metrics.SearchMetric{}, ErrNoAI
	}
	g.UpdateAI()
	if r, ok := g.(searchReporter); ok {
		return r.LastSearch(), nil
	}
	return metrics.SearchMetric{}, nil
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) Act(g game.Game) (metrics.SearchMetric, error) {
	switch v := g.(type) {
	case game.GridGame:
		moves := game.LegalMoves(v)
		if len(moves) == 0 {
			return metrics.SearchMetric{}, ErrNoMoves
		}
		if !game.Apply(v, moves[a.rng.Intn(len(moves))]) {
			return metrics.SearchMetric{}, ErrNoMoves
		}
	case game.SelfContainedGame:
		lister, ok := g.(columnLister)
		if !ok {
			return metrics.SearchMetric{}, ErrNoMoves
		}
		cols := lister.LegalColumns()
		if len(cols) == 0 {
			return metrics.SearchMetric{}, ErrNoMoves
		}
		if !v.PlayColumn(cols[a.rng.Intn(len(cols))]) {
			return metrics.SearchMetric{}, ErrNoMoves
		}
	default:
		return metrics.SearchMetric{}, ErrNoMoves
	}
	return metrics.SearchMetric{}, nil
}
