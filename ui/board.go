// Package ui hosts the game master in the terminal with tview.
package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"sandbox/checkers"
	"sandbox/config"
	"sandbox/connect4"
	"sandbox/game"
	"sandbox/gamemaster"
	"sandbox/grid"
	"sandbox/othello"
	"sandbox/tictactoe"
)

// style indices
const (
	styleBoard = iota
	stylePlayerOne
	stylePlayerTwo
	styleCursor
	styleSelected
)

type BoardUI struct {
	Box     *tview.Box
	gm      *gamemaster.GameMaster
	hint    *tview.TextView
	app     *tview.Application
	cfg     *config.Config
	styles  []tcell.Color
	selX    int
	selY    int
	message string
}

func NewBoard(app *tview.Application, gm *gamemaster.GameMaster, c *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:  tview.NewBox(),
		gm:   gm,
		hint: hint,
		app:  app,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		switch g := b.gm.Game().(type) {
		case nil:
			return x, y, width, height
		case *connect4.Connect4:
			return b.drawConnect4(screen, g, x, y)
		case game.GridGame:
			return b.drawGrid(screen, g, x, y)
		}
		return x, y, width, height
	})
	b.ResetSelection()
	b.refreshHint()
	return b
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.Board),     // 0
		tcell.PaletteColor(c.Theme.Colors.PlayerOne), // 1
		tcell.PaletteColor(c.Theme.Colors.PlayerTwo), // 2
		tcell.PaletteColor(c.Theme.Colors.Cursor),    // 3
		tcell.PaletteColor(c.Theme.Colors.Selected),  // 4
	}
	b.cfg = c
}

// dims is the size of the cursor area for the active game.
func (b *BoardUI) dims() (int, int) {
	switch g := b.gm.Game().(type) {
	case *connect4.Connect4:
		return connect4.Cols, 1
	case game.GridGame:
		return g.Grid().Width(), g.Grid().Height()
	}
	return 0, 0
}

func (b *BoardUI) Cursor() (int, int) {
	return b.selX, b.selY
}

func (b *BoardUI) ResetSelection() {
	w, h := b.dims()
	b.selX, b.selY = w/2, h/2
}

func (b *BoardUI) MoveSelection(h, v int) {
	w, ht := b.dims()
	if b.selX+h < 0 || b.selX+h >= w {
		return
	}
	if b.selY+v < 0 || b.selY+v >= ht {
		return
	}
	b.selX += h
	b.selY += v
}

// Activate plays at the cursor: a column drop in Connect 4, a click everywhere else.
func (b *BoardUI) Activate() {
	var err error
	if _, ok := b.gm.Game().(*connect4.Connect4); ok {
		err = b.gm.DropColumn(b.selX)
	} else {
		err = b.gm.Click(grid.Coord{X: b.selX, Y: b.selY})
	}
	b.report(err)
}

func (b *BoardUI) Deselect() {
	b.gm.Deselect()
	b.message = ""
	b.refreshHint()
}

func (b *BoardUI) SelectGame(k gamemaster.Kind) {
	b.report(b.gm.Select(k))
	b.ResetSelection()
}

func (b *BoardUI) Reset() {
	b.report(b.gm.Reset())
	b.ResetSelection()
}

// ToggleHints shows or hides the Othello legal-move markers.
func (b *BoardUI) ToggleHints() {
	o, ok := b.gm.Game().(*othello.Othello)
	if !ok {
		return
	}
	if o.ShowingHints() {
		o.HideHints()
	} else {
		o.ShowHints()
	}
}

// Tick advances the active game by one frame.
func (b *BoardUI) Tick(dt float64) {
	b.gm.Update(dt)
	b.refreshHint()
}

func (b *BoardUI) Message() string {
	return b.message
}

func (b *BoardUI) report(err error) {
	b.message = ""
	if err != nil {
		b.message = err.Error()
		if errors.Is(err, gamemaster.ErrUnknownGame) {
			log.Warn().Msgf("ui: %v", err)
		} else {
			log.Debug().Msgf("ui: %v", err)
		}
	}
	b.refreshHint()
}

func (b *BoardUI) refreshHint() {
	if b.hint == nil {
		return
	}
	b.hint.SetText(statusText(b.gm, b.message))
}

// HandleKey is the input capture for the board.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(0, -1)
	case tcell.KeyDown:
		b.MoveSelection(0, 1)
	case tcell.KeyLeft:
		b.MoveSelection(-1, 0)
	case tcell.KeyRight:
		b.MoveSelection(1, 0)
	case tcell.KeyEnter:
		b.Activate()
	case tcell.KeyEscape:
		b.Deselect()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			b.MoveSelection(-1, 0)
		case 'j':
			b.MoveSelection(0, 1)
		case 'k':
			b.MoveSelection(0, -1)
		case 'l':
			b.MoveSelection(1, 0)
		case ' ':
			b.Activate()
		case '1', '2', '3', '4':
			b.SelectGame(gamemaster.Kinds[event.Rune()-'1'])
		case 'r':
			b.Reset()
		case 't':
			b.ToggleHints()
		case 'q':
			if b.app != nil {
				b.app.Stop()
			}
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *BoardUI) drawGrid(screen tcell.Screen, g game.GridGame, x, y int) (int, int, int, int) {
	gr := g.Grid()
	selected, hasSelected := b.gm.Selected()
	hints := map[grid.Coord]bool{}
	if o, ok := g.(*othello.Othello); ok && o.ShowingHints() {
		for _, c := range o.ValidMoves(g.CurrentPlayer().Number) {
			hints[c] = true
		}
	}

	for cy := 0; cy < gr.Height(); cy++ {
		for cx := 0; cx < gr.Width(); cx++ {
			style := tcell.StyleDefault
			r := ' '
			if gr.IsEnabled(cx, cy) {
				style = style.Background(b.styles[styleBoard])
				r = b.cfg.Theme.Symbols.Empty
				if p, ok := gr.At(cx, cy).Piece(); ok {
					r = b.pieceRune(p)
					style = style.Foreground(b.ownerColor(p.Owner))
				} else if hints[grid.Coord{X: cx, Y: cy}] {
					r = b.cfg.Theme.Symbols.Hint
				}
			}
			switch {
			case cx == b.selX && cy == b.selY:
				style = style.Background(b.styles[styleCursor])
			case hasSelected && selected.X == cx && selected.Y == cy:
				style = style.Background(b.styles[styleSelected])
			}
			drawCell(screen, style, r, cx, cy, x, y)
		}
	}
	return x, y, gr.Width() * 2, gr.Height()
}

func (b *BoardUI) drawConnect4(screen tcell.Screen, g *connect4.Connect4, x, y int) (int, int, int, int) {
	board := g.Board()
	anim := g.Animation()
	falling := -1
	if anim.Active {
		falling = max(0, min(connect4.Rows-1, int(anim.Y/connect4.CellSize)))
	}

	for col := 0; col < connect4.Cols; col++ {
		marker := ' '
		if col == b.selX {
			marker = '▼'
		}
		drawCell(screen, tcell.StyleDefault.Foreground(b.styles[styleCursor]), marker, col, 0, x, y)

		for top := 0; top < connect4.Rows; top++ {
			row := connect4.Rows - 1 - top
			d := board[col][row]
			if anim.Active && col == anim.Col && row == anim.TargetRow {
				// Not landed yet.
				d = connect4.Empty
			}
			if anim.Active && col == anim.Col && top == falling {
				d = anim.Disc
			}
			style := tcell.StyleDefault.Background(b.styles[styleBoard])
			r := b.cfg.Theme.Symbols.Empty
			if d != connect4.Empty {
				r = b.discRune(d)
				style = style.Foreground(b.ownerColor(int(d) - 1))
			}
			drawCell(screen, style, r, col, top+1, x, y)
		}
	}
	return x, y, connect4.Cols * 2, connect4.Rows + 1
}

func (b *BoardUI) pieceRune(p grid.Piece) rune {
	switch b.gm.Kind() {
	case gamemaster.TicTacToe:
		if p.Tag == tictactoe.X {
			return 'X'
		}
		return 'O'
	case gamemaster.Checkers:
		if p.Tag == checkers.RedKing || p.Tag == checkers.YellowKing {
			return b.cfg.Theme.Symbols.King
		}
	}
	if p.Owner == 0 {
		return b.cfg.Theme.Symbols.PlayerOne
	}
	return b.cfg.Theme.Symbols.PlayerTwo
}

func (b *BoardUI) discRune(d connect4.Disc) rune {
	if d == connect4.Red {
		return b.cfg.Theme.Symbols.PlayerOne
	}
	return b.cfg.Theme.Symbols.PlayerTwo
}

func (b *BoardUI) ownerColor(owner int) tcell.Color {
	if owner == 0 {
		return b.styles[stylePlayerOne]
	}
	return b.styles[stylePlayerTwo]
}

// drawCell draws a cell 2 characters wide so the board looks square.
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// CreateLayout stacks the board above the status panel.
func CreateLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(nil, 2, 0, false)
	boardRow.AddItem(board.Box, 0, 1, true)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 7, 0, false)
	return mainFlex
}
