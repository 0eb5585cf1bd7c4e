package searcher

import (
	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited alpha-beta search. The root player is Max.
type Minimax[S any, M any] struct {
	rules    Rules[S, M]
	settings settings
}

func NewMinimax[S any, M any](rules Rules[S, M], options ...Option) *Minimax[S, M] {
	return &Minimax[S, M]{
		rules:    rules,
		settings: newSettings(options),
	}
}

func (m *Minimax[S, M]) Depth() int {
	return m.settings.depth
}

// Search returns the best move for Max. Found is false when state has no
// legal moves.
func (m *Minimax[S, M]) Search(state S) Result[M] {
	collector := m.settings.metrics
	collector.Start(m.settings.depth)
	d := newDeadline(m.settings.duration)

	var best Result[M]
	alpha, beta := -Infinity, Infinity
	for _, move := range m.rules.Moves(state) {
		next := m.rules.Play(state, move, Max)
		score := m.minimax(next, m.settings.depth-1, alpha, beta, false, d)
		if !best.Found || score > best.Score {
			best.Move = move
			best.Score = score
			best.Found = true
		}
		alpha = max(alpha, score)
		if beta <= alpha {
			collector.AddCutoff()
			break
		}
	}

	best.Metric = collector.Complete()
	log.Debug().
		Int("score", best.Score).
		Bool("found", best.Found).
		Int("nodes", best.Metric.Nodes).
		Bool("deadline", best.Metric.DeadlineHit).
		Msg("Minimax search complete")
	return best
}

func (m *Minimax[S, M]) minimax(state S, depth, alpha, beta int, maximizing bool, d *deadline) int {
	collector := m.settings.metrics
	collector.AddNode()

	if score, terminal := m.rules.Outcome(state); terminal {
		return score
	}
	if depth <= 0 || d.expired(collector) {
		return m.rules.Evaluate(state)
	}

	if maximizing {
		value := -Infinity
		for _, move := range m.rules.Moves(state) {
			value = max(value, m.minimax(m.rules.Play(state, move, Max), depth-1, alpha, beta, false, d))
			alpha = max(alpha, value)
			if beta <= alpha {
				collector.AddCutoff()
				break
			}
		}
		return value
	}

	value := Infinity
	for _, move := range m.rules.Moves(state) {
		value = min(value, m.minimax(m.rules.Play(state, move, Min), depth-1, alpha, beta, true, d))
		beta = min(beta, value)
		if beta <= alpha {
			collector.AddCutoff()
			break
		}
	}
	return value
}
