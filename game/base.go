package game

import (
	"github.com/rs/zerolog/log"
)

// Base carries the player roster and turn bookkeeping shared by the variants.
// The current player is derived from the turn number, so a variant keeps the
// turn with the mover simply by not calling EndTurn.
type Base struct {
	players    []Player
	turnNo     int
	gameNumber int
	score      int
	ledger     *Ledger
}

// SetNumberOfPlayers creates players 0..n-1 and a fresh ledger holding the start-of-game entry.
func (b *Base) SetNumberOfPlayers(n int) {
	b.players = make([]Player, n)
	for i := range b.players {
		b.players[i] = Player{Number: i}
	}
	b.turnNo = 0
	b.gameNumber = 0
	b.score = 0
	b.ledger = NewLedger()
	b.ledger.restart(Turn{GameNumber: b.gameNumber})
}

func (b *Base) SetAIPlayer(n int) {
	if n >= 0 && n < len(b.players) {
		b.players[n].AI = true
	}
}

// StartGame records the opening position as turn 0.
func (b *Base) StartGame(state string) {
	b.turnNo = 0
	b.Ledger().restart(Turn{BoardState: state, Sequence: 0, Score: b.score, GameNumber: b.gameNumber})
}

// EndTurn advances the turn counter and appends a snapshot of state.
func (b *Base) EndTurn(state string) Turn {
	b.turnNo++
	t := Turn{
		BoardState: state,
		Sequence:   b.turnNo,
		Score:      b.score,
		GameNumber: b.gameNumber,
	}
	if err := b.Ledger().Append(t); err != nil {
		log.Warn().Err(err).Msgf("turn %d not recorded", t.Sequence)
	}
	log.Debug().Str("ledger", b.Ledger().ID.String()).Msgf("turn %d ended: %s", t.Sequence, state)
	return t
}

func (b *Base) CurrentPlayer() Player {
	if len(b.players) == 0 {
		return Player{}
	}
	return b.players[b.turnNo%len(b.players)]
}

func (b *Base) PlayerAt(n int) Player {
	if n < 0 || n >= len(b.players) {
		return Player{Number: n}
	}
	return b.players[n]
}

func (b *Base) NumberOfPlayers() int {
	return len(b.players)
}

func (b *Base) TurnNumber() int {
	return b.turnNo
}

func (b *Base) SetScore(score int) {
	b.score = score
}

func (b *Base) Ledger() *Ledger {
	if b.ledger == nil {
		b.ledger = NewLedger()
		b.ledger.restart(Turn{GameNumber: b.gameNumber})
	}
	return b.ledger
}
