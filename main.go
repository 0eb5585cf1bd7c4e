// board-sandbox plays tic-tac-toe, checkers, othello and connect 4 in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sandbox/config"
	"sandbox/experiments"
	"sandbox/gamemaster"
	"sandbox/ui"
)

var (
	flagGame     = flag.String("game", "tictactoe", "Game to start with (tictactoe, checkers, othello, connect4)")
	flagSelfPlay = flag.Bool("selfplay", false, "Run built-in AI vs random self-play instead of the terminal UI")
	flagGames    = flag.Int("games", 0, "Self-play games per matchup")
	flagSeed     = flag.Uint64("seed", 0, "Self-play random seed")
	flagOut      = flag.String("out", "", "Self-play output directory")
	flagDebug    = flag.Bool("debug", false, "Log at debug level")
	flagConfig   = flag.String("config", "", "Config file to use instead of the XDG one")
	flagLog      = flag.String("log", "", "Write logs to this file while the terminal UI runs")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := cfg.Level()
	if *flagDebug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if *flagSelfPlay {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		if err := runSelfPlay(cfg); err != nil {
			log.Error().Err(err).Msg("self-play failed")
			os.Exit(1)
		}
		return
	}

	closeLog, err := uiLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := runUI(cfg); err != nil {
		log.Error().Err(err).Msg("terminal UI failed")
		closeLog()
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if *flagConfig != "" {
		return config.Load(*flagConfig)
	}
	return config.InitConfig()
}

// uiLogger keeps log output off the screen tview owns.
func uiLogger() (func(), error) {
	if *flagLog == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(*flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

func runSelfPlay(cfg *config.Config) error {
	o := cfg.ExperimentOptions()
	if *flagGames > 0 {
		o.Games = *flagGames
	}
	if *flagSeed > 0 {
		o.Seed = *flagSeed
	}
	if *flagOut != "" {
		o.OutputDir = *flagOut
	}
	// Every game plays unless -game was given explicitly.
	gameSet := false
	flag.Visit(func(f *flag.Flag) {
		gameSet = gameSet || f.Name == "game"
	})
	if gameSet {
		k, err := gamemaster.ParseKind(*flagGame)
		if err != nil {
			return err
		}
		o.Kinds = []gamemaster.Kind{k}
	}

	report, err := experiments.RunSelfPlay(o)
	if err != nil {
		return err
	}
	for _, c := range report.Configs {
		log.Info().Msgf("agent %d (%s %s): %d wins", c.ID, c.Game, c.Kind, report.Wins(c.ID))
	}
	log.Info().Msgf("reports written to %s", report.Dir)
	return nil
}

func runUI(cfg *config.Config) error {
	kind, err := gamemaster.ParseKind(*flagGame)
	if err != nil {
		return err
	}
	gm := gamemaster.NewGameMaster(cfg.GameSettings())
	if err := gm.Select(kind); err != nil {
		return err
	}

	app := tview.NewApplication()
	rootPage := tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" board sandbox ")

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	board := ui.NewBoard(app, gm, cfg, hint)
	board.Box.SetInputCapture(board.HandleKey)
	rootPage.AddPage("game", ui.CreateLayout(board, hint), true, true)

	// Ctrl-C goes through Stop so the terminal is restored.
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ui.Tick(ctx, func(f func()) { app.QueueUpdateDraw(f) }, cfg.FrameInterval(), board.Tick)

	log.Info().Msgf("starting terminal UI with %s", kind)
	return app.SetRoot(rootPage, true).SetFocus(board.Box).Run()
}
