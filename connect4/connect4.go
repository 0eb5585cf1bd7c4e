// Package connect4 implements Connect 4 on its own column-major board, with a
// drop animation state machine and a depth-limited alpha-beta AI.
package connect4

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sandbox/experiments/metrics"
	"sandbox/game"
	"sandbox/grid"
	"sandbox/meta"
)

var _ game.SelfContainedGame = (*Connect4)(nil)

var ErrStateHeader = errors.New("connect4: state string must start with \"C4;<player>;\"")

const statePrefix = "C4;"

// Drop animation constants, in pixels.
const (
	Gravity  = 2200.0
	CellSize = 64.0
)

type Phase int

const (
	Idle Phase = iota
	Dropping
	Terminal
)

func (p Phase) String() string {
	switch p {
	case Dropping:
		return "dropping"
	case Terminal:
		return "terminal"
	}
	return "idle"
}

// DropAnimation is the falling disc. Y grows downward from the top of the board.
type DropAnimation struct {
	Active    bool
	Col       int
	TargetRow int
	Y         float64
	VY        float64
	Disc      Disc
}

// TargetY is the resting height of the disc's center.
func (a DropAnimation) TargetY() float64 {
	return (float64(Rows-1-a.TargetRow) + 0.5) * CellSize
}

type Option func(c *Connect4)

// WithAI makes the engine play side (1 red, 2 yellow) on its own.
func WithAI(side int) Option {
	return func(c *Connect4) {
		c.vsAI = true
		c.aiSide = normalizeSide(side)
	}
}

func WithDepth(depth int) Option {
	return func(c *Connect4) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

// WithTimeBudget bounds each AI search. Zero leaves the search unbounded.
func WithTimeBudget(budget time.Duration) Option {
	return func(c *Connect4) {
		if budget > 0 {
			c.budget = budget
		}
	}
}

func WithAnimation(animate bool) Option {
	return func(c *Connect4) {
		c.animate = animate
	}
}

type Connect4 struct {
	game.Base
	board         Board
	running       bool
	vsAI          bool
	aiSide        int // 1 red, 2 yellow
	currentPlayer int // 1 red, 2 yellow
	gameOver      bool
	winner        int // 0 none or draw
	movesMade     int
	animate       bool
	anim          DropAnimation
	depth         int
	budget        time.Duration
	lastSearch    metrics.SearchMetric
}

// New returns a two-player game with animated drops unless options say otherwise.
func New(options ...Option) *Connect4 {
	c := &Connect4{
		aiSide:        int(Yellow),
		currentPlayer: int(Red),
		animate:       true,
		depth:         meta.SEARCH_DEPTH,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func normalizeSide(side int) int {
	if side == int(Red) {
		return int(Red)
	}
	return int(Yellow)
}

func (c *Connect4) Name() string { return "Connect 4" }

func (c *Connect4) HasAI() bool { return c.vsAI }

func (c *Connect4) VsAI() bool { return c.vsAI }

func (c *Connect4) AISide() int { return c.aiSide }

func (c *Connect4) SetUpBoard() {
	c.StartGame(c.vsAI, c.aiSide)
}

// StartGame resets the board and starts a new game. aiSide 1 means the AI is red, anything else yellow.
func (c *Connect4) StartGame(vsAI bool, aiSide int) {
	c.vsAI = vsAI
	c.aiSide = normalizeSide(aiSide)
	c.running = true
	c.gameOver = false
	c.winner = 0
	c.currentPlayer = int(Red)
	c.movesMade = 0
	c.anim = DropAnimation{}
	c.board = Board{}

	c.SetNumberOfPlayers(2)
	if c.vsAI {
		c.SetAIPlayer(c.aiSide - 1)
	}
	c.Base.StartGame(c.StateString())
	log.Debug().Bool("vs_ai", c.vsAI).Int("ai_side", c.aiSide).Msg("connect4: game started")
}

func (c *Connect4) StopGame() {
	c.running = false
	c.gameOver = false
	c.winner = 0
	c.anim = DropAnimation{}
	c.board = Board{}
	c.movesMade = 0
}

func (c *Connect4) SetAnimate(animate bool) { c.animate = animate }

func (c *Connect4) Animate() bool { return c.animate }

// Update advances the drop animation, or lets the AI move when it is its turn.
func (c *Connect4) Update(dt float64) {
	if !c.running {
		return
	}
	if c.anim.Active {
		c.stepDrop(dt)
		return
	}
	if c.gameOver {
		return
	}
	if c.aiTurn() {
		c.UpdateAI()
	}
}

// UpdateAI searches for and commits one AI move. It does nothing outside the AI's turn.
func (c *Connect4) UpdateAI() {
	if !c.running || c.gameOver || c.anim.Active || !c.aiTurn() {
		return
	}
	me := Disc(c.currentPlayer)
	col, metric := ChooseColumn(c.board, me, c.depth, c.budget)
	c.lastSearch = metric
	log.Debug().
		Int("column", col).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msgf("connect4: %s AI move", me)

	if c.commit(col) {
		return
	}
	for _, fallback := range c.board.LegalMoves() {
		if c.commit(fallback) {
			return
		}
	}
}

// PlayColumn commits a human move. It is rejected while a disc is falling,
// after the game ended, or when the AI is to move.
func (c *Connect4) PlayColumn(col int) bool {
	if !c.running || c.gameOver || c.anim.Active || c.aiTurn() {
		return false
	}
	return c.commit(col)
}

func (c *Connect4) aiTurn() bool {
	return c.vsAI && c.currentPlayer == c.aiSide
}

// commit drops a disc for the current player. The board is updated at once;
// the turn passes when the disc lands.
func (c *Connect4) commit(col int) bool {
	d := Disc(c.currentPlayer)
	row, ok := c.board.Drop(col, d)
	if !ok {
		return false
	}
	c.movesMade++
	if c.animate {
		c.anim = DropAnimation{
			Active:    true,
			Col:       col,
			TargetRow: row,
			Y:         -CellSize * 0.5,
			Disc:      d,
		}
	}
	c.concludeIfTerminal()
	if !c.animate {
		c.land()
	}
	return true
}

func (c *Connect4) stepDrop(dt float64) {
	c.anim.VY += Gravity * dt
	c.anim.Y += c.anim.VY * dt
	if target := c.anim.TargetY(); c.anim.Y >= target {
		c.anim.Y = target
		c.anim.Active = false
		c.land()
	}
}

func (c *Connect4) land() {
	c.concludeIfTerminal()
	if !c.gameOver {
		c.nextTurn()
	}
	c.EndTurn(c.StateString())
}

func (c *Connect4) nextTurn() {
	c.currentPlayer = int(Disc(c.currentPlayer).Opponent())
}

func (c *Connect4) concludeIfTerminal() {
	if w := c.board.Winner(); w != Empty {
		c.winner = int(w)
		c.gameOver = true
		log.Debug().Msgf("connect4: %s wins after %d moves", w, c.movesMade)
		return
	}
	if c.isDraw() {
		c.winner = 0
		c.gameOver = true
		log.Debug().Msg("connect4: board full, draw")
	}
}

func (c *Connect4) isDraw() bool {
	return c.movesMade >= Cols*Rows && c.winner == 0
}

func (c *Connect4) CanPlay(col int) bool {
	return c.board.CanPlay(col)
}

func (c *Connect4) LegalColumns() []int {
	return c.board.LegalMoves()
}

// Board returns a copy of the board.
func (c *Connect4) Board() Board {
	return c.board
}

func (c *Connect4) Animation() DropAnimation {
	return c.anim
}

func (c *Connect4) Phase() Phase {
	switch {
	case c.anim.Active:
		return Dropping
	case c.gameOver:
		return Terminal
	}
	return Idle
}

// LastSearch reports the metrics of the most recent AI search.
func (c *Connect4) LastSearch() metrics.SearchMetric {
	return c.lastSearch
}

func (c *Connect4) CurrentPlayerNumber() int { return c.currentPlayer }
func (c *Connect4) WinnerNumber() int        { return c.winner }
func (c *Connect4) IsDrawn() bool            { return c.isDraw() }
func (c *Connect4) IsRunning() bool          { return c.running }
func (c *Connect4) IsBusy() bool             { return c.anim.Active }
func (c *Connect4) MovesMade() int           { return c.movesMade }

func (c *Connect4) CurrentPlayer() game.Player {
	return c.PlayerAt(c.currentPlayer - 1)
}

func (c *Connect4) CheckForWinner() (game.Player, bool) {
	switch c.winner {
	case int(Red):
		return c.PlayerAt(0), true
	case int(Yellow):
		return c.PlayerAt(1), true
	}
	return game.Player{}, false
}

func (c *Connect4) CheckForDraw() bool {
	return (c.gameOver && c.winner == 0) || c.isDraw()
}

func (c *Connect4) InitialStateString() string {
	return statePrefix + "1;" + strings.Repeat("0", Cols*Rows)
}

// StateString writes the player to move and the cells row by row from the bottom.
func (c *Connect4) StateString() string {
	var sb strings.Builder
	sb.Grow(len(statePrefix) + 2 + Cols*Rows)
	sb.WriteString(statePrefix)
	if c.currentPlayer == int(Yellow) {
		sb.WriteByte('2')
	} else {
		sb.WriteByte('1')
	}
	sb.WriteByte(';')
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(byte('0' + c.board[col][r]))
		}
	}
	return sb.String()
}

// SetStateString loads a board. Unknown cell digits read as empty and trailing
// characters are ignored. On a malformed header or short body the board is reset
// to empty with red to move and the error is returned.
func (c *Connect4) SetStateString(state string) error {
	c.anim = DropAnimation{}
	b, player, err := parseState(state)
	if err != nil {
		c.board = Board{}
		c.currentPlayer = int(Red)
		c.movesMade = 0
		c.winner = 0
		c.gameOver = false
		return err
	}

	c.board = b
	c.currentPlayer = player
	c.movesMade = b.Count()
	c.winner = 0
	c.gameOver = false
	if w := b.Winner(); w != Empty {
		c.winner = int(w)
		c.gameOver = true
	}
	return nil
}

func parseState(state string) (Board, int, error) {
	var b Board
	if len(state) < len(statePrefix)+1 || !strings.HasPrefix(state, statePrefix) {
		return b, 0, ErrStateHeader
	}
	sep := strings.IndexByte(state[len(statePrefix):], ';')
	if sep < 0 {
		return b, 0, ErrStateHeader
	}
	player := int(Red)
	if state[len(statePrefix)] == '2' {
		player = int(Yellow)
	}
	cells := state[len(statePrefix)+sep+1:]
	if len(cells) < Cols*Rows {
		return b, 0, grid.ErrStateLength
	}
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			ch := cells[r*Cols+col]
			if ch >= '0' && ch <= '2' {
				b[col][r] = Disc(ch - '0')
			}
		}
	}
	return b, player, nil
}
