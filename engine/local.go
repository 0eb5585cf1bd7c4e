package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"sandbox/experiments/metrics"
	"sandbox/game"
	"sandbox/meta"
)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine plays a game in-process, asking the agent seated at the current
// player's number for every move.
type LocalEngine struct {
	Game     game.Game
	Agents   []Agent
	MaxTurns int
}

func NewLocalEngine(g game.Game, agents []Agent) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &LocalEngine{
		Game:     g,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run sets up the board and plays until the game ends, an agent fails, or the turn cap is hit.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	g := e.Game
	g.SetUpBoard()

	gameMetric := metrics.GameMetric{
		Game:           g.Name(),
		StartingPlayer: g.CurrentPlayer().Number,
		Winner:         NoWinner,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s: player %d is starting", g.Name(), gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for ; step <= e.MaxTurns; step++ {
		if _, won := g.CheckForWinner(); won || g.CheckForDraw() {
			break
		}

		player := g.CurrentPlayer().Number
		agent := e.Agents[player]
		before := g.StateString()

		searchMetric, err := agent.Act(g)
		if err != nil {
			log.Warn().Err(err).Msgf("%s: %s agent for player %d could not move", g.Name(), agent.Name(), player)
			break
		}
		after := g.StateString()
		if after == before && g.CurrentPlayer().Number == player {
			log.Warn().Msgf("%s: %s agent for player %d made no progress", g.Name(), agent.Name(), player)
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Agent:        agent.Name(),
			StateHash:    uint64(game.Hash(after)),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("%s: step %d player %d (%s) -> %s", g.Name(), step, player, agent.Name(), after)
	}

	if winner, won := g.CheckForWinner(); won {
		gameMetric.Winner = winner.Number
	}
	gameMetric.Draw = g.CheckForDraw()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner == NoWinner && !gameMetric.Draw {
		log.Info().Msgf("%s: stopped after %d moves without a result", g.Name(), gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}
