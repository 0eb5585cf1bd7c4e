package searcher

import (
	"sandbox/experiments/metrics"
	"time"
)

// Infinity bounds every score a Rules implementation may return.
const Infinity = 1 << 30

const DefaultDepth = 6

// Side is the perspective a score is computed from.
type Side int

const (
	Max Side = 1
	Min Side = -1
)

func (s Side) Other() Side {
	return -s
}

// Rules describes a two-player zero-sum game over value states S and moves M.
// Scores are always from Max's point of view.
type Rules[S any, M any] interface {
	// Moves lists the legal moves in the order they should be searched.
	Moves(state S) []M
	Play(state S, move M, side Side) S
	// Outcome reports whether state is terminal and, if so, its score.
	// A state with no legal moves must be terminal.
	Outcome(state S) (score int, terminal bool)
	// Evaluate scores a non-terminal leaf.
	Evaluate(state S) int
}

type Result[M any] struct {
	Move   M
	Score  int
	Found  bool
	Metric metrics.SearchMetric
}

type Option func(s *settings)

type settings struct {
	depth    int
	duration time.Duration
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithDuration bounds a search by wall-clock time. Nodes visited after the
// deadline are scored with Evaluate instead of being expanded.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:   DefaultDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

type deadline struct {
	at      time.Time
	enabled bool
	hit     bool
}

func newDeadline(duration time.Duration) *deadline {
	if duration <= 0 {
		return &deadline{}
	}
	return &deadline{at: time.Now().Add(duration), enabled: true}
}

func (d *deadline) expired(collector metrics.Collector) bool {
	if !d.enabled {
		return false
	}
	if d.hit {
		return true
	}
	if time.Now().After(d.at) {
		d.hit = true
		collector.SetDeadlineHit()
	}
	return d.hit
}
