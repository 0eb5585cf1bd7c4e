package engine

import "sandbox/experiments/metrics"

// NoWinner is reported when a game ends drawn or hits the turn cap.
const NoWinner = -1

type Engine interface {
	// Run plays a game until there is a winner, a draw, or the turn cap is reached.
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
