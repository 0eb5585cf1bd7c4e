package connect4

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// state builds a state string from rows listed bottom first.
func state(player byte, rows ...string) string {
	var sb strings.Builder
	sb.WriteString("C4;")
	sb.WriteByte(player)
	sb.WriteByte(';')
	for _, r := range rows {
		sb.WriteString(r)
	}
	sb.WriteString(strings.Repeat("0", Cols*(Rows-len(rows))))
	return sb.String()
}

// drawnBoard has no line of four anywhere.
func drawnBoard() string {
	a, b := "1122112", "2211221"
	return state('1', a, b, a, b, a, b)
}

func newGame(t *testing.T, options ...Option) *Connect4 {
	t.Helper()
	c := New(options...)
	c.SetUpBoard()
	return c
}

func playAll(t *testing.T, c *Connect4, cols ...int) {
	t.Helper()
	for _, col := range cols {
		require.True(t, c.PlayColumn(col), "column %d should be playable", col)
	}
}

func settle(t *testing.T, c *Connect4) {
	t.Helper()
	for i := 0; i < 200 && c.IsBusy(); i++ {
		c.Update(0.02)
	}
	require.False(t, c.IsBusy(), "drop should land")
}

func TestSetUpBoard(t *testing.T) {
	c := newGame(t)

	require.Equal(t, c.InitialStateString(), c.StateString())
	require.Equal(t, 1, c.CurrentPlayerNumber())
	require.Equal(t, 0, c.CurrentPlayer().Number)
	require.True(t, c.IsRunning())
	require.False(t, c.HasAI())
	require.Equal(t, Idle, c.Phase())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, c.LegalColumns())
	require.Equal(t, 1, c.Ledger().Len())
}

func TestGravity(t *testing.T) {
	c := newGame(t, WithAnimation(false))
	playAll(t, c, 0, 0, 0)

	b := c.Board()
	require.Equal(t, Red, b[0][0])
	require.Equal(t, Yellow, b[0][1])
	require.Equal(t, Red, b[0][2])
	require.Equal(t, Empty, b[0][3])
	require.Equal(t, 2, c.CurrentPlayerNumber())

	playAll(t, c, 0, 0, 0)
	require.False(t, c.CanPlay(0), "full column")
	require.False(t, c.PlayColumn(0))
	require.False(t, c.PlayColumn(-1))
	require.False(t, c.PlayColumn(Cols))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, c.LegalColumns())
}

// requireContiguous checks that every column is filled from row 0 without gaps.
func requireContiguous(t *testing.T, b Board) {
	t.Helper()
	for col := 0; col < Cols; col++ {
		top := 0
		for top < Rows && b[col][top] != Empty {
			top++
		}
		for row := top; row < Rows; row++ {
			require.Equal(t, Empty, b[col][row], "column %d has a disc above a gap at row %d", col, row)
		}
	}
}

func TestGravityUnderRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c := newGame(t)
		for c.WinnerNumber() == 0 && !c.IsDrawn() {
			legal := c.LegalColumns()
			require.NotEmpty(t, legal, "seed %d: no legal column on a running board", seed)
			playAll(t, c, legal[rng.Intn(len(legal))])
			settle(t, c)
			requireContiguous(t, c.Board())
		}
		require.LessOrEqual(t, c.MovesMade(), Cols*Rows)
	}
}

func TestWinDetection(t *testing.T) {
	t.Run("four in the bottom row", func(t *testing.T) {
		c := newGame(t, WithAnimation(false))
		playAll(t, c, 0, 0, 1, 1, 2, 2, 3)

		require.Equal(t, 1, c.WinnerNumber())
		winner, ok := c.CheckForWinner()
		require.True(t, ok)
		require.Equal(t, 0, winner.Number)
		require.Equal(t, Terminal, c.Phase())
		require.Equal(t, 1, c.CurrentPlayerNumber(), "the turn does not pass after a win")
		require.False(t, c.PlayColumn(4), "no moves after the game ended")
		require.False(t, c.CheckForDraw())
	})

	t.Run("three blocked by the opponent", func(t *testing.T) {
		c := newGame(t)
		require.NoError(t, c.SetStateString(state('1', "1112000")))

		require.Equal(t, 0, c.WinnerNumber())
		_, ok := c.CheckForWinner()
		require.False(t, ok)
	})

	t.Run("vertical and diagonals", func(t *testing.T) {
		var b Board
		for r := 0; r < 4; r++ {
			b[6][r] = Yellow
		}
		require.Equal(t, Yellow, b.Winner())
		require.True(t, b.WinAt(6, 3, Yellow))

		var rising, falling Board
		for i := 0; i < 4; i++ {
			rising[i][i] = Red
			falling[6-i][i] = Yellow
		}
		require.True(t, rising.WinAt(2, 2, Red))
		require.Equal(t, Red, rising.Winner())
		require.True(t, falling.WinAt(4, 2, Yellow))
		require.Equal(t, Yellow, falling.Winner())
	})
}

func TestDraw(t *testing.T) {
	c := newGame(t)
	require.NoError(t, c.SetStateString(drawnBoard()))

	require.Equal(t, Cols*Rows, c.MovesMade())
	require.Equal(t, 0, c.WinnerNumber())
	require.True(t, c.IsDrawn())
	require.True(t, c.CheckForDraw())
	require.Empty(t, c.LegalColumns())
}

func TestStateString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		c := newGame(t, WithAnimation(false))
		playAll(t, c, 3, 3, 4)

		s := c.StateString()
		require.Equal(t, state('2', "0001100", "0002000"), s)

		other := newGame(t)
		require.NoError(t, other.SetStateString(s))
		require.Equal(t, s, other.StateString())
		require.Equal(t, 2, other.CurrentPlayerNumber())
		require.Equal(t, 3, other.MovesMade())
	})

	t.Run("unknown digits read as empty", func(t *testing.T) {
		c := newGame(t)
		require.NoError(t, c.SetStateString(state('1', "1x90000")))
		require.Equal(t, state('1', "1000000"), c.StateString())
	})

	t.Run("trailing characters are ignored", func(t *testing.T) {
		c := newGame(t)
		require.NoError(t, c.SetStateString(state('2', "1000000")+"junk"))
		require.Equal(t, state('2', "1000000"), c.StateString())
	})

	t.Run("malformed header resets the board", func(t *testing.T) {
		c := newGame(t, WithAnimation(false))
		playAll(t, c, 3)

		require.ErrorIs(t, c.SetStateString("XX;2;"+strings.Repeat("0", 42)), ErrStateHeader)
		require.Equal(t, c.InitialStateString(), c.StateString())
		require.Equal(t, 1, c.CurrentPlayerNumber())
	})

	t.Run("short body resets the board", func(t *testing.T) {
		c := newGame(t, WithAnimation(false))
		playAll(t, c, 3)

		require.Error(t, c.SetStateString("C4;2;1111"))
		require.Equal(t, c.InitialStateString(), c.StateString())
	})

	t.Run("loading a won position ends the game", func(t *testing.T) {
		c := newGame(t)
		require.NoError(t, c.SetStateString(state('2', "1111222")))

		require.Equal(t, 1, c.WinnerNumber())
		require.Equal(t, Terminal, c.Phase())
	})
}

func TestAnimation(t *testing.T) {
	t.Run("one disc falls at a time", func(t *testing.T) {
		c := newGame(t)
		require.True(t, c.PlayColumn(3))

		require.True(t, c.IsBusy())
		require.Equal(t, Dropping, c.Phase())
		require.Equal(t, Red, c.Board()[3][0], "board is updated at drop start")
		require.Equal(t, 1, c.CurrentPlayerNumber(), "turn passes on landing")
		require.False(t, c.PlayColumn(4))

		settle(t, c)
		require.Equal(t, 2, c.CurrentPlayerNumber())
		require.Equal(t, c.Animation().TargetY(), c.Animation().Y)
		require.Equal(t, 2, c.Ledger().Len())
		require.True(t, c.PlayColumn(4))
	})

	t.Run("disc starts above the board", func(t *testing.T) {
		c := newGame(t)
		require.True(t, c.PlayColumn(0))

		a := c.Animation()
		require.Equal(t, -CellSize/2, a.Y)
		require.Equal(t, 0, a.TargetRow)
		require.Equal(t, 5.5*CellSize, a.TargetY())

		c.Update(0.01)
		require.Greater(t, c.Animation().Y, a.Y)
	})

	t.Run("winning drop ends the game on landing", func(t *testing.T) {
		c := newGame(t)
		for _, col := range []int{0, 0, 1, 1, 2, 2} {
			require.True(t, c.PlayColumn(col))
			settle(t, c)
		}
		require.True(t, c.PlayColumn(3))
		settle(t, c)

		require.Equal(t, 1, c.WinnerNumber())
		require.Equal(t, Terminal, c.Phase())
		require.Equal(t, 1, c.CurrentPlayerNumber())
	})

	t.Run("disabled animation passes the turn at once", func(t *testing.T) {
		c := newGame(t)
		c.SetAnimate(false)
		require.True(t, c.PlayColumn(2))

		require.False(t, c.IsBusy())
		require.Equal(t, 2, c.CurrentPlayerNumber())
	})
}

func TestAI(t *testing.T) {
	t.Run("blocks an open three", func(t *testing.T) {
		c := newGame(t, WithAI(2), WithAnimation(false))
		require.NoError(t, c.SetStateString(state('2', "1110022")))

		require.False(t, c.PlayColumn(4), "humans cannot move for the AI")
		c.Update(1.0 / 60)

		require.Equal(t, Yellow, c.Board()[3][0])
		require.Equal(t, 1, c.CurrentPlayerNumber())
		require.Equal(t, 6, c.LastSearch().Depth)
		require.Positive(t, c.LastSearch().Nodes)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		c := newGame(t, WithAI(2), WithAnimation(false))
		require.NoError(t, c.SetStateString(state('2', "1110002", "0000002", "0000002")))

		c.Update(1.0 / 60)

		require.Equal(t, 2, c.WinnerNumber())
		winner, ok := c.CheckForWinner()
		require.True(t, ok)
		require.Equal(t, 1, winner.Number)
	})

	t.Run("plays red when asked", func(t *testing.T) {
		c := newGame(t, WithAnimation(false))
		c.StartGame(true, 1)

		require.True(t, c.HasAI())
		require.True(t, c.CurrentPlayer().AI)
		c.Update(1.0 / 60)

		require.Equal(t, 1, c.Board().Count())
		require.Equal(t, 2, c.CurrentPlayerNumber())
		require.False(t, c.CurrentPlayer().AI)
	})

	t.Run("waits for the drop to land", func(t *testing.T) {
		c := newGame(t, WithAI(2))
		require.True(t, c.PlayColumn(3))

		c.Update(0.001)
		require.Equal(t, 1, c.Board().Count())
		settle(t, c)
		c.Update(0.001)
		require.Equal(t, 2, c.Board().Count())
	})

	t.Run("opening move takes the center", func(t *testing.T) {
		col, metric := ChooseColumn(Board{}, Red, 4, 0)
		require.Equal(t, CenterColumn, col)
		require.Equal(t, 4, metric.Depth)
	})

	t.Run("full board falls back to the center", func(t *testing.T) {
		c := newGame(t)
		require.NoError(t, c.SetStateString(drawnBoard()))

		col, _ := ChooseColumn(c.Board(), Red, 6, 0)
		require.Equal(t, CenterColumn, col)
	})
}

func TestStopGame(t *testing.T) {
	c := newGame(t)
	require.True(t, c.PlayColumn(3))
	c.StopGame()

	require.False(t, c.IsRunning())
	require.False(t, c.IsBusy())
	require.Equal(t, 0, c.Board().Count())
	require.False(t, c.PlayColumn(3))

	c.Update(1)
	require.False(t, c.IsRunning())
}

func TestEvaluate(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, 0, Evaluate(&Board{}, Red))
	})

	t.Run("center disc", func(t *testing.T) {
		var b Board
		b[CenterColumn][0] = Red
		require.Equal(t, 6, Evaluate(&b, Red))
		require.Equal(t, -6, Evaluate(&b, Yellow))
	})

	t.Run("open two", func(t *testing.T) {
		var b Board
		b[0][0], b[1][0] = Red, Red
		require.Equal(t, 12, Evaluate(&b, Red))
	})

	t.Run("open three weighs the threat", func(t *testing.T) {
		var b Board
		b[0][0], b[1][0], b[2][0] = Red, Red, Red
		require.Equal(t, 232, Evaluate(&b, Red))
		require.Equal(t, -232, Evaluate(&b, Yellow))
	})

	t.Run("every window is counted once", func(t *testing.T) {
		require.Len(t, windows(&Board{}), 69)
	})
}

func TestOrderedMoves(t *testing.T) {
	var b Board
	require.Equal(t, []int{3, 2, 4, 1, 5, 0, 6}, b.OrderedMoves())

	for r := 0; r < Rows; r++ {
		b[3][r] = Red
	}
	require.Equal(t, []int{2, 4, 1, 5, 0, 6}, b.OrderedMoves())
}
