package gamemaster

import (
	"errors"

	"github.com/rs/zerolog/log"

	"sandbox/game"
	"sandbox/grid"
)

var (
	ErrNoGame      = errors.New("no game is running")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrUnsupported = errors.New("action not supported by this game")
	ErrUnknownGame = errors.New("unknown game")
	ErrBusy        = errors.New("a disc is still dropping")
	ErrNotYourTurn = errors.New("the AI is to move")
)

// Status is a snapshot of the active game for display.
type Status struct {
	Game          string
	Kind          Kind
	Running       bool
	CurrentPlayer int  // zero-based
	AITurn        bool // the current player is played by the built-in AI
	Winner        int  // zero-based, -1 when nobody has won
	Draw          bool
	Over          bool
	Busy          bool
	Turns         int // ledger entries, including the start of game
	State         string
}

// GameMaster owns the single active game, the current selection and the per-frame dispatch.
type GameMaster struct {
	settings Settings
	kind     Kind
	game     game.Game
	selected *grid.Cell
}

// NewGameMaster initializes a GameMaster with no active game.
func NewGameMaster(settings Settings) *GameMaster {
	return &GameMaster{
		settings: settings,
	}
}

func (gm *GameMaster) Game() game.Game { return gm.game }

func (gm *GameMaster) Kind() Kind { return gm.kind }

func (gm *GameMaster) Settings() Settings { return gm.settings }

// Select stops the active game and starts a fresh game of kind k.
func (gm *GameMaster) Select(k Kind) error {
	g, err := NewGame(k, gm.settings)
	if err != nil {
		return err
	}
	if gm.game != nil {
		gm.game.StopGame()
	}
	gm.kind = k
	gm.game = g
	gm.selected = nil
	g.SetUpBoard()
	log.Info().Msgf("started %s", g.Name())
	return nil
}

// Reset restarts the active game with the current settings.
func (gm *GameMaster) Reset() error {
	if gm.game == nil {
		return ErrNoGame
	}
	return gm.Select(gm.kind)
}

// UpdateSettings applies s to games selected from now on.
func (gm *GameMaster) UpdateSettings(s Settings) {
	gm.settings = s
}

// Update runs one frame: Connect 4 steps its own state machine, grid games let the AI move when it is its turn.
func (gm *GameMaster) Update(dt float64) {
	switch g := gm.game.(type) {
	case nil:
		return
	case game.SelfContainedGame:
		g.Update(dt)
	default:
		if gm.over() || !g.HasAI() || !g.CurrentPlayer().AI {
			return
		}
		g.UpdateAI()
		gm.selected = nil
	}
}

func (gm *GameMaster) over() bool {
	if gm.game == nil {
		return false
	}
	_, won := gm.game.CheckForWinner()
	return won || gm.game.CheckForDraw()
}

func (gm *GameMaster) Status() Status {
	if gm.game == nil {
		return Status{Winner: -1}
	}
	g := gm.game
	s := Status{
		Game:          g.Name(),
		Kind:          gm.kind,
		Running:       true,
		CurrentPlayer: g.CurrentPlayer().Number,
		AITurn:        g.CurrentPlayer().AI,
		Winner:        -1,
		Draw:          g.CheckForDraw(),
		Turns:         g.Ledger().Len(),
		State:         g.StateString(),
	}
	if winner, ok := g.CheckForWinner(); ok {
		s.Winner = winner.Number
	}
	s.Over = s.Winner >= 0 || s.Draw
	if sc, ok := g.(game.SelfContainedGame); ok {
		s.Running = sc.IsRunning()
		s.Busy = sc.IsBusy()
	}
	return s
}
