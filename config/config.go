package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"sandbox/experiments"
	"sandbox/gamemaster"
)

var (
	cfgFile = "board-sandbox/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type TicTacToeConfig struct {
	AI       bool `json:"ai"`
	AIPlayer int  `json:"ai_player"`
}

type OthelloConfig struct {
	AI       bool `json:"ai"`
	AIPlayer int  `json:"ai_player"`
}

type Connect4Config struct {
	VsAI         bool `json:"vs_ai"`
	AISide       int  `json:"ai_side"`
	Depth        int  `json:"depth"`
	TimeBudgetMs int  `json:"time_budget_ms"`
	Animate      bool `json:"animate"`
}

type ExperimentsConfig struct {
	Games     int    `json:"games"`
	OutputDir string `json:"output_dir"`
	Seed      uint64 `json:"seed"`
}

type ConfigSymbols struct {
	PlayerOne rune `json:"player_one"`
	PlayerTwo rune `json:"player_two"`
	King      rune `json:"king"`
	Empty     rune `json:"empty"`
	Hint      rune `json:"hint"`
}

type ConfigColors struct {
	Board     int `json:"board"`
	PlayerOne int `json:"player_one"`
	PlayerTwo int `json:"player_two"`
	Cursor    int `json:"cursor"`
	Selected  int `json:"selected"`
}

type Theme struct {
	Colors  ConfigColors  `json:"colors"`
	Symbols ConfigSymbols `json:"symbols"`
}

type Config struct {
	LogLevel    string            `json:"log_level"`
	FrameRate   int               `json:"frame_rate"`
	TicTacToe   TicTacToeConfig   `json:"tictactoe"`
	Othello     OthelloConfig     `json:"othello"`
	Connect4    Connect4Config    `json:"connect4"`
	Experiments ExperimentsConfig `json:"experiments"`
	Theme       Theme             `json:"theme"`
}

// InitConfig starts from DefaultConfig and overlays the user's config file if there is one.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads the config at path over the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return &InvalidConfig{"frame_rate must be between 1 and 240"}
	}
	if c.TicTacToe.AIPlayer != 0 && c.TicTacToe.AIPlayer != 1 {
		return &InvalidConfig{"tictactoe.ai_player must be 0 or 1"}
	}
	if c.Othello.AIPlayer != 0 && c.Othello.AIPlayer != 1 {
		return &InvalidConfig{"othello.ai_player must be 0 or 1"}
	}
	if c.Connect4.AISide != 1 && c.Connect4.AISide != 2 {
		return &InvalidConfig{"connect4.ai_side must be 1 (red) or 2 (yellow)"}
	}
	if c.Connect4.Depth < 1 || c.Connect4.Depth > 12 {
		return &InvalidConfig{"connect4.depth must be between 1 and 12"}
	}
	if c.Connect4.TimeBudgetMs < 0 {
		return &InvalidConfig{"connect4.time_budget_ms must not be negative"}
	}
	if c.Experiments.Games < 1 {
		return &InvalidConfig{"experiments.games must be at least 1"}
	}
	if c.Experiments.OutputDir == "" {
		return &InvalidConfig{"experiments.output_dir must not be empty"}
	}
	s := c.Theme.Symbols
	for _, r := range []rune{s.PlayerOne, s.PlayerTwo, s.King, s.Empty, s.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// Level is the configured log level. Validate has already checked it.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// GameSettings maps the per-game sections onto the game master's settings.
func (c *Config) GameSettings() gamemaster.Settings {
	s := gamemaster.DefaultSettings()
	s.TicTacToeAI = c.TicTacToe.AI
	s.TicTacToeAIPlayer = c.TicTacToe.AIPlayer
	s.OthelloAI = c.Othello.AI
	s.OthelloAIPlayer = c.Othello.AIPlayer
	s.Connect4VsAI = c.Connect4.VsAI
	s.Connect4AISide = c.Connect4.AISide
	s.Connect4Depth = c.Connect4.Depth
	s.Connect4TimeBudget = time.Duration(c.Connect4.TimeBudgetMs) * time.Millisecond
	s.Connect4Animate = c.Connect4.Animate
	return s
}

// ExperimentOptions maps the experiments section onto self-play options.
func (c *Config) ExperimentOptions() experiments.Options {
	o := experiments.DefaultOptions()
	o.Games = c.Experiments.Games
	o.OutputDir = c.Experiments.OutputDir
	o.Seed = c.Experiments.Seed
	o.Depth = c.Connect4.Depth
	o.TimeBudget = time.Duration(c.Connect4.TimeBudgetMs) * time.Millisecond
	return o
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", filePath, err)
	}
	return nil
}
