package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sandbox/checkers"
	"sandbox/connect4"
	"sandbox/engine"
	"sandbox/experiments/metrics"
	"sandbox/game"
	"sandbox/gamemaster"
	"sandbox/meta"
	"sandbox/othello"
	"sandbox/tictactoe"
)

const (
	Builtin = "builtin"
	Random  = "random"
)

// Options configure a self-play run.
type Options struct {
	Games      int // per matchup
	OutputDir  string
	Seed       uint64
	Depth      int
	TimeBudget time.Duration
	Kinds      []gamemaster.Kind
}

func DefaultOptions() Options {
	return Options{
		Games:     meta.NUM_GAMES,
		OutputDir: "experiments",
		Seed:      1,
		Depth:     meta.SEARCH_DEPTH,
		Kinds:     gamemaster.Kinds,
	}
}

// MatchUp seats Agents[0] as player 0 and Agents[1] as player 1.
type MatchUp struct {
	Kind   gamemaster.Kind
	Agents [2]metrics.AgentConfig
}

// Report is what a run produced.
type Report struct {
	Run         string
	Dir         string
	Configs     []metrics.AgentConfig
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Wins counts the games agent id won.
func (r *Report) Wins(id int) int {
	wins := 0
	for _, g := range r.GameRecords {
		if (g.Winner == 0 && g.Agent1 == id) || (g.Winner == 1 && g.Agent2 == id) {
			wins++
		}
	}
	return wins
}

// MatchUps pairs the built-in AI of each game against a random agent from both seats.
// Checkers has no AI, so it is played random against random.
func MatchUps(o Options) ([]metrics.AgentConfig, []MatchUp) {
	configs := []metrics.AgentConfig{}
	matchUps := []MatchUp{}
	nextID := 1
	add := func(c metrics.AgentConfig) metrics.AgentConfig {
		c.ID = nextID
		nextID++
		configs = append(configs, c)
		return c
	}

	for _, k := range o.Kinds {
		name := k.String()
		if k == gamemaster.Checkers {
			r1 := add(metrics.AgentConfig{Game: name, Kind: Random, Seed: o.Seed})
			r2 := add(metrics.AgentConfig{Game: name, Kind: Random, Seed: o.Seed + 1})
			matchUps = append(matchUps, MatchUp{Kind: k, Agents: [2]metrics.AgentConfig{r1, r2}})
			continue
		}
		b := add(metrics.AgentConfig{Game: name, Kind: Builtin, Depth: o.Depth, Duration: o.TimeBudget})
		r := add(metrics.AgentConfig{Game: name, Kind: Random, Seed: o.Seed})
		matchUps = append(matchUps,
			MatchUp{Kind: k, Agents: [2]metrics.AgentConfig{b, r}},
			MatchUp{Kind: k, Agents: [2]metrics.AgentConfig{r, b}},
		)
	}
	return configs, matchUps
}

// RunSelfPlay plays every matchup and writes the CSV reports under o.OutputDir.
func RunSelfPlay(o Options) (*Report, error) {
	configs, matchUps := MatchUps(o)
	report, err := runExperiment(o, configs, matchUps)
	if err != nil {
		return nil, err
	}

	writer, err := metrics.NewWriter(o.OutputDir, "selfplay")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	report.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(report.Configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.GameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.MoveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return report, nil
}

func runExperiment(o Options, configs []metrics.AgentConfig, matchUps []MatchUp) (*Report, error) {
	report := &Report{
		Run:     uuid.New().String(),
		Configs: configs,
	}
	count := 0

	log.Info().Msgf("starting self-play run %s...", report.Run)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp.Agents[0], matchUp.Agents[1]
		log.Info().Msgf("starting matchup %d of %d (%s) between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), matchUp.Kind, config1, config2)

		for i := 0; i < o.Games; i++ {
			// Random agents get a fresh stream per game.
			offset := uint64(i)
			winner, gameMetric, moveMetrics, err := runGame(matchUp.Kind, config1, config2, offset)
			if err != nil {
				return nil, err
			}
			count++
			report.GameRecords = append(report.GameRecords, metrics.GameRecord{
				ID:         count,
				Run:        report.Run,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				report.MoveRecords = append(report.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed self-play run %s", report.Run)
	return report, nil
}

// runGame plays a single game between two agents and returns the winner.
func runGame(k gamemaster.Kind, config1, config2 metrics.AgentConfig, offset uint64) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	builtinSeat := -1
	switch {
	case config1.Kind == Builtin:
		builtinSeat = 0
	case config2.Kind == Builtin:
		builtinSeat = 1
	}
	builtin := config1
	if builtinSeat == 1 {
		builtin = config2
	}

	g, err := createGame(k, builtinSeat, builtin)
	if err != nil {
		return engine.NoWinner, metrics.GameMetric{}, nil, err
	}
	agents := []engine.Agent{createAgent(config1, offset), createAgent(config2, offset)}
	e := engine.NewLocalEngine(g, agents)

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// createGame builds k with the built-in AI seated at builtinSeat, or no AI when it is -1.
func createGame(k gamemaster.Kind, builtinSeat int, config metrics.AgentConfig) (game.Game, error) {
	switch k {
	case gamemaster.TicTacToe:
		if builtinSeat < 0 {
			return tictactoe.New(tictactoe.WithoutAI()), nil
		}
		return tictactoe.New(tictactoe.WithAIPlayer(builtinSeat)), nil
	case gamemaster.Checkers:
		return checkers.New(), nil
	case gamemaster.Othello:
		if builtinSeat < 0 {
			return othello.New(othello.WithoutAI()), nil
		}
		return othello.New(othello.WithAIPlayer(builtinSeat)), nil
	case gamemaster.Connect4:
		options := []connect4.Option{
			connect4.WithAnimation(false),
			connect4.WithDepth(config.Depth),
			connect4.WithTimeBudget(config.Duration),
		}
		if builtinSeat >= 0 {
			options = append(options, connect4.WithAI(builtinSeat+1))
		}
		return connect4.New(options...), nil
	}
	return nil, fmt.Errorf("%w: %s", gamemaster.ErrUnknownGame, k)
}

func createAgent(config metrics.AgentConfig, offset uint64) engine.Agent {
	if config.Kind == Builtin {
		return engine.NewBuiltinAgent()
	}
	return engine.NewRandomAgent(config.Seed + offset)
}
