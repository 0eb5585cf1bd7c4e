package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sandbox/gamemaster"
)

func TestMatchUps(t *testing.T) {
	o := DefaultOptions()
	configs, matchUps := MatchUps(o)

	require.Len(t, configs, 8, "two agents per game")
	require.Len(t, matchUps, 7, "both seatings for the three games with an AI, one checkers matchup")

	for i, c := range configs {
		require.Equal(t, i+1, c.ID)
	}
	for _, m := range matchUps {
		if m.Kind == gamemaster.Checkers {
			require.Equal(t, Random, m.Agents[0].Kind)
			require.Equal(t, Random, m.Agents[1].Kind)
			require.NotEqual(t, m.Agents[0].Seed, m.Agents[1].Seed)
			continue
		}
		require.NotEqual(t, m.Agents[0].Kind, m.Agents[1].Kind, "builtin meets random")
	}
}

func TestRunSelfPlay(t *testing.T) {
	o := DefaultOptions()
	o.Games = 2
	o.Depth = 2
	o.OutputDir = t.TempDir()
	o.Kinds = []gamemaster.Kind{gamemaster.TicTacToe, gamemaster.Connect4}

	report, err := RunSelfPlay(o)
	require.NoError(t, err)
	require.NotEmpty(t, report.Run)
	require.Len(t, report.GameRecords, 8)
	require.NotEmpty(t, report.MoveRecords)

	for _, file := range []string{"agents.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(report.Dir, file))
		require.NoError(t, err, "missing %s", file)
	}

	random := map[int]bool{}
	for _, c := range report.Configs {
		if c.Kind == Random {
			random[c.ID] = true
		}
	}
	for _, g := range report.GameRecords {
		require.Equal(t, report.Run, g.Run)
		if g.Game != "Tic-Tac-Toe" {
			continue
		}
		if g.Winner == 0 {
			require.False(t, random[g.Agent1], "random play never beats the tic-tac-toe AI")
		}
		if g.Winner == 1 {
			require.False(t, random[g.Agent2], "random play never beats the tic-tac-toe AI")
		}
	}

	// Tic-tac-toe builtin has ID 1; it cannot have lost, so wins + draws cover its games.
	draws := 0
	for _, g := range report.GameRecords {
		if g.Game == "Tic-Tac-Toe" && g.Draw {
			draws++
		}
	}
	require.Equal(t, 4, report.Wins(1)+draws)
}
