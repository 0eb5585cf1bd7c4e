package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	t.Run("players are zero-based and alternate by turn", func(t *testing.T) {
		var b Base
		b.SetNumberOfPlayers(2)
		b.SetAIPlayer(1)
		b.StartGame("000")

		require.Equal(t, Player{Number: 0}, b.CurrentPlayer())
		b.EndTurn("100")
		require.Equal(t, Player{Number: 1, AI: true}, b.CurrentPlayer())
		b.EndTurn("120")
		require.Equal(t, 0, b.CurrentPlayer().Number)
		require.Equal(t, 2, b.TurnNumber())
	})

	t.Run("ledger starts with the opening and grows by one per turn", func(t *testing.T) {
		var b Base
		b.SetNumberOfPlayers(2)
		b.SetScore(7)
		b.StartGame("start")
		b.EndTurn("one")
		b.EndTurn("two")

		turns := b.Ledger().Turns()
		require.Len(t, turns, 3)
		for i, turn := range turns {
			require.Equal(t, i, turn.Sequence, "sequence numbers start at 0 and increase")
			require.Equal(t, 7, turn.Score)
		}
		require.Equal(t, "start", turns[0].BoardState)
		require.Equal(t, "two", turns[2].BoardState)
	})

	t.Run("setting up again starts a new ledger", func(t *testing.T) {
		var b Base
		b.SetNumberOfPlayers(2)
		first := b.Ledger().ID
		b.EndTurn("x")
		b.SetNumberOfPlayers(2)
		require.NotEqual(t, first, b.Ledger().ID)
		require.Equal(t, 1, b.Ledger().Len())
		require.Equal(t, 0, b.TurnNumber())
	})

	t.Run("out of range players", func(t *testing.T) {
		var b Base
		require.Equal(t, Player{}, b.CurrentPlayer(), "no roster yet")
		b.SetNumberOfPlayers(2)
		b.SetAIPlayer(5)
		require.False(t, b.PlayerAt(0).AI)
		require.False(t, b.PlayerAt(1).AI)
	})
}

func TestLedger(t *testing.T) {
	t.Run("rejects non-increasing sequences", func(t *testing.T) {
		l := NewLedger()
		require.ErrorIs(t, l.Append(Turn{Sequence: 3}), ErrTurnOrder, "history must start at 0")
		require.NoError(t, l.Append(Turn{Sequence: 0}))
		require.NoError(t, l.Append(Turn{Sequence: 1}))
		require.ErrorIs(t, l.Append(Turn{Sequence: 1}), ErrTurnOrder)
		require.Equal(t, 2, l.Len())
	})

	t.Run("turns are returned by copy", func(t *testing.T) {
		l := NewLedger()
		require.NoError(t, l.Append(Turn{BoardState: "a"}))
		turns := l.Turns()
		turns[0].BoardState = "mutated"
		last, ok := l.Last()
		require.True(t, ok)
		require.Equal(t, "a", last.BoardState)
	})

	t.Run("hash is stable per board", func(t *testing.T) {
		a := Turn{BoardState: "0102"}
		b := Turn{BoardState: "0102", Sequence: 4}
		require.Equal(t, a.Hash(), b.Hash())
		require.NotEqual(t, a.Hash(), Turn{BoardState: "0201"}.Hash())
	})
}
