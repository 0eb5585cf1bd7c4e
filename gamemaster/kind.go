package gamemaster

import (
	"fmt"
	"strings"
	"time"

	"sandbox/checkers"
	"sandbox/connect4"
	"sandbox/game"
	"sandbox/meta"
	"sandbox/othello"
	"sandbox/tictactoe"
)

type Kind int

const (
	TicTacToe Kind = iota
	Checkers
	Othello
	Connect4
)

var Kinds = []Kind{TicTacToe, Checkers, Othello, Connect4}

func (k Kind) String() string {
	switch k {
	case TicTacToe:
		return "tictactoe"
	case Checkers:
		return "checkers"
	case Othello:
		return "othello"
	case Connect4:
		return "connect4"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names printed by Kind.String, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGame, name)
}

// Settings picks who the built-in AI plays in each game.
type Settings struct {
	TicTacToeAI        bool
	TicTacToeAIPlayer  int
	OthelloAI          bool
	OthelloAIPlayer    int
	Connect4VsAI       bool
	Connect4AISide     int // 1 red, 2 yellow
	Connect4Depth      int
	Connect4TimeBudget time.Duration
	Connect4Animate    bool
}

func DefaultSettings() Settings {
	return Settings{
		TicTacToeAI:       true,
		TicTacToeAIPlayer: tictactoe.OPlayer,
		OthelloAI:         true,
		OthelloAIPlayer:   othello.WhitePlayer,
		Connect4VsAI:      false,
		Connect4AISide:    int(connect4.Yellow),
		Connect4Depth:     meta.SEARCH_DEPTH,
		Connect4Animate:   true,
	}
}

// NewGame builds a game of kind k. The board is not set up yet.
func NewGame(k Kind, s Settings) (game.Game, error) {
	switch k {
	case TicTacToe:
		if !s.TicTacToeAI {
			return tictactoe.New(tictactoe.WithoutAI()), nil
		}
		return tictactoe.New(tictactoe.WithAIPlayer(s.TicTacToeAIPlayer)), nil
	case Checkers:
		return checkers.New(), nil
	case Othello:
		if !s.OthelloAI {
			return othello.New(othello.WithoutAI()), nil
		}
		return othello.New(othello.WithAIPlayer(s.OthelloAIPlayer)), nil
	case Connect4:
		options := []connect4.Option{
			connect4.WithAnimation(s.Connect4Animate),
			connect4.WithDepth(s.Connect4Depth),
			connect4.WithTimeBudget(s.Connect4TimeBudget),
		}
		if s.Connect4VsAI {
			options = append(options, connect4.WithAI(s.Connect4AISide))
		}
		return connect4.New(options...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownGame, k)
}
