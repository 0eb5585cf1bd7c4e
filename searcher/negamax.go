package searcher

import (
	"github.com/rs/zerolog/log"
)

// Negamax searches from the point of view of whichever side is to move.
// Result.Score is from that side's perspective.
type Negamax[S any, M any] struct {
	rules    Rules[S, M]
	settings settings
}

func NewNegamax[S any, M any](rules Rules[S, M], options ...Option) *Negamax[S, M] {
	return &Negamax[S, M]{
		rules:    rules,
		settings: newSettings(options),
	}
}

func (n *Negamax[S, M]) Search(state S, side Side) Result[M] {
	collector := n.settings.metrics
	collector.Start(n.settings.depth)
	d := newDeadline(n.settings.duration)

	var best Result[M]
	alpha, beta := -Infinity, Infinity
	for _, move := range n.rules.Moves(state) {
		next := n.rules.Play(state, move, side)
		score := -n.negamax(next, n.settings.depth-1, -beta, -alpha, side.Other(), d)
		if !best.Found || score > best.Score {
			best.Move = move
			best.Score = score
			best.Found = true
		}
		alpha = max(alpha, score)
	}

	best.Metric = collector.Complete()
	log.Debug().
		Int("side", int(side)).
		Int("score", best.Score).
		Bool("found", best.Found).
		Msg("Negamax search complete")
	return best
}

func (n *Negamax[S, M]) negamax(state S, depth, alpha, beta int, side Side, d *deadline) int {
	collector := n.settings.metrics
	collector.AddNode()

	if score, terminal := n.rules.Outcome(state); terminal {
		return int(side) * score
	}
	if depth <= 0 || d.expired(collector) {
		return int(side) * n.rules.Evaluate(state)
	}

	value := -Infinity
	for _, move := range n.rules.Moves(state) {
		value = max(value, -n.negamax(n.rules.Play(state, move, side), depth-1, -beta, -alpha, side.Other(), d))
		alpha = max(alpha, value)
		if alpha >= beta {
			collector.AddCutoff()
			break
		}
	}
	return value
}
