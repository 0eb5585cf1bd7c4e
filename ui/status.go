package ui

import (
	"fmt"
	"strings"

	"sandbox/checkers"
	"sandbox/connect4"
	"sandbox/gamemaster"
	"sandbox/othello"
)

const controls = "hjkl/↑↓←→ move  ⏎ play  esc deselect\n1 tic-tac-toe  2 checkers  3 othello  4 connect 4  r reset  t hints  q quit"

var playerNames = map[gamemaster.Kind][2]string{
	gamemaster.TicTacToe: {"X", "O"},
	gamemaster.Checkers:  {"Red", "Yellow"},
	gamemaster.Othello:   {"Black", "White"},
	gamemaster.Connect4:  {"Red", "Yellow"},
}

func playerName(k gamemaster.Kind, player int) string {
	names, ok := playerNames[k]
	if !ok || player < 0 || player > 1 {
		return fmt.Sprintf("Player %d", player+1)
	}
	return names[player]
}

// statusText renders the status panel for the active game.
func statusText(gm *gamemaster.GameMaster, message string) string {
	s := gm.Status()
	if s.Game == "" {
		return "Pick a game\n" + controls
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  ", s.Game)
	switch {
	case s.Winner >= 0:
		fmt.Fprintf(&sb, "%s wins!", playerName(s.Kind, s.Winner))
	case s.Draw:
		sb.WriteString("Draw.")
	case !s.Running:
		sb.WriteString("Not running.")
	case s.AITurn:
		fmt.Fprintf(&sb, "%s (AI) is thinking...", playerName(s.Kind, s.CurrentPlayer))
	default:
		fmt.Fprintf(&sb, "%s to move", playerName(s.Kind, s.CurrentPlayer))
	}
	if score := scoreLine(gm); score != "" {
		sb.WriteString("  " + score)
	}
	sb.WriteString("\n")
	if message != "" {
		sb.WriteString(message)
	}
	sb.WriteString("\n")
	sb.WriteString(controls)
	return sb.String()
}

func scoreLine(gm *gamemaster.GameMaster) string {
	switch g := gm.Game().(type) {
	case *checkers.Checkers:
		red, yellow := g.Pieces()
		return fmt.Sprintf("Red %d · Yellow %d", red, yellow)
	case *othello.Othello:
		black, white := g.Counts()
		return fmt.Sprintf("Black %d · White %d", black, white)
	case *connect4.Connect4:
		line := fmt.Sprintf("moves %d", g.MovesMade())
		if m := g.LastSearch(); m.Nodes > 0 {
			line += fmt.Sprintf(" · last search %d nodes in %s", m.Nodes, m.Duration)
		}
		return line
	}
	return ""
}
