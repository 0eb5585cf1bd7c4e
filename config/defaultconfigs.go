package config

import "sandbox/meta"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			Board:     22,
			PlayerOne: 196,
			PlayerTwo: 226,
			Cursor:    4,
			Selected:  2,
		},
		Symbols: ConfigSymbols{
			PlayerOne: '●',
			PlayerTwo: '●',
			King:      '◉',
			Empty:     '·',
			Hint:      '+',
		},
	}

	DefaultConfig = Config{
		LogLevel:  "info",
		FrameRate: meta.FRAME_RATE,
		TicTacToe: TicTacToeConfig{
			AI:       true,
			AIPlayer: 1,
		},
		Othello: OthelloConfig{
			AI:       true,
			AIPlayer: 1,
		},
		Connect4: Connect4Config{
			VsAI:    false,
			AISide:  2,
			Depth:   meta.SEARCH_DEPTH,
			Animate: true,
		},
		Experiments: ExperimentsConfig{
			Games:     meta.NUM_GAMES,
			OutputDir: "experiments",
			Seed:      1,
		},
		Theme: DefaultTheme,
	}
}
