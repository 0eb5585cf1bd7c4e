package game

import (
	"errors"

	"github.com/google/uuid"
)

var ErrTurnOrder = errors.New("turn sequence numbers must be strictly increasing")

// Turn is an immutable snapshot taken at a turn boundary.
type Turn struct {
	BoardState string
	Sequence   int
	Score      int
	GameNumber int
}

func (t Turn) Hash() StateHash {
	return Hash(t.BoardState)
}

// Ledger is the append-only turn history of one game.
type Ledger struct {
	ID    uuid.UUID
	turns []Turn
}

func NewLedger() *Ledger {
	return &Ledger{ID: uuid.New()}
}

func (l *Ledger) Append(t Turn) error {
	if n := len(l.turns); n > 0 && t.Sequence <= l.turns[n-1].Sequence {
		return ErrTurnOrder
	}
	if len(l.turns) == 0 && t.Sequence != 0 {
		return ErrTurnOrder
	}
	l.turns = append(l.turns, t)
	return nil
}

// Turns returns a copy of the recorded history.
func (l *Ledger) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *Ledger) Len() int {
	return len(l.turns)
}

func (l *Ledger) Last() (Turn, bool) {
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}

// restart drops the history and records the start-of-game entry.
func (l *Ledger) restart(start Turn) {
	l.ID = uuid.New()
	l.turns = []Turn{start}
}
