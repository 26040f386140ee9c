// path: cmd/play/main.go
// Local hot-seat play in the terminal: both players share the
// keyboard and one engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"taklite_poc/internal/config"
	"taklite_poc/internal/game"
	"taklite_poc/internal/shared"
	"taklite_poc/internal/ui"
)

var (
	flagBoardSize = flag.Int("size", 0, "board size (3-8)")
	flagFirst     = flag.String("first", "", "starting color (white or black)")
	flagPlay      = flag.Bool("play", false, "skip setup and start with defaults")
	flagResetUI   = flag.Bool("resetui", false, "restore the default colors and symbols")
)

var (
	app       *tview.Application
	rootPage  *tview.Pages
	gameBoard *ui.TakBoardUI
	gameHint  *tview.TextView
	cfg       *config.Config
)

func main() {
	flag.Parse()

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagResetUI {
		cfg.Theme = config.DefaultTheme
		cfg.Save()
	}

	defaultSize := cfg.Game.DefaultBoardSize
	if *flagBoardSize > 0 {
		defaultSize = *flagBoardSize
	}
	defaultStarting, ok := shared.ParseColor(cfg.Game.StartingColor)
	if !ok {
		defaultStarting = shared.White
	}
	if *flagFirst != "" {
		if c, ok := shared.ParseColor(*flagFirst); ok {
			defaultStarting = c
		}
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" taklite ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewTakBoard(cfg, gameHint)

	gameFrame := tview.NewFlex().
		AddItem(gameBoard.Box, 0, 2, true).
		AddItem(gameHint, 0, 1, false)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.Carrying() {
				gameBoard.CancelCarry()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		if event.Key() == tcell.KeyEscape {
			gameBoard.CancelCarry()
			return nil
		}
		if event.Key() == tcell.KeyEnter {
			if gameBoard.Carrying() {
				gameBoard.SubmitMove()
			} else {
				gameBoard.StartCarry()
			}
			return nil
		}

		h, v, isMove := directionKey(event)
		if isMove {
			if gameBoard.Carrying() {
				dir, ok := vectorDirection(h, v)
				if ok {
					gameBoard.SetDirection(dir)
				}
			} else {
				// Screen v is inverted: up means increasing rank.
				gameBoard.MoveSelection(h, -v)
			}
			return nil
		}

		if event.Key() == tcell.KeyRune {
			r := event.Rune()
			switch {
			case r >= '0' && r <= '9' && gameBoard.Carrying():
				gameBoard.AppendDrop(int(r - '0'))
			case r == '+' || r == '=':
				gameBoard.AdjustCarry(1)
			case r == '-':
				gameBoard.AdjustCarry(-1)
			case r == 'f':
				gameBoard.PlaceStone(shared.Flat)
			case r == 'w':
				gameBoard.PlaceStone(shared.Wall)
			case r == 'c':
				gameBoard.PlaceStone(shared.Cap)
			}
			return nil
		}
		return event
	})

	setup := ui.NewGameSetup(defaultSize, defaultStarting, func(size int, starting shared.Color) {
		// The setup choices become the defaults for the next session.
		cfg.Game.DefaultBoardSize = size
		cfg.Game.StartingColor = starting.String()
		cfg.Save()
		startGame(size, starting)
		rootPage.SwitchToPage("game")
	})

	rootPage.AddPage("setup", setup.Root(), true, true)
	rootPage.AddPage("game", gameFrame, true, false)

	if *flagPlay || *flagBoardSize > 0 || *flagFirst != "" {
		startGame(defaultSize, defaultStarting)
		rootPage.SwitchToPage("game")
	}

	if err := app.SetRoot(rootPage, true).SetFocus(rootPage).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func startGame(size int, starting shared.Color) {
	eng, err := game.NewEngine(size, starting)
	if err != nil {
		app.Stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gameBoard.ConnectEngine(eng)
}

func directionKey(event *tcell.EventKey) (h, v int, ok bool) {
	switch event.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	}
	if event.Key() == tcell.KeyRune {
		switch event.Rune() {
		case 'k':
			return 0, -1, true
		case 'j':
			return 0, 1, true
		case 'h':
			return -1, 0, true
		case 'l':
			return 1, 0, true
		}
	}
	return 0, 0, false
}

func vectorDirection(h, v int) (shared.Direction, bool) {
	switch {
	case h == 1 && v == 0:
		return shared.DirRight, true
	case h == -1 && v == 0:
		return shared.DirLeft, true
	case h == 0 && v == -1:
		return shared.DirUp, true
	case h == 0 && v == 1:
		return shared.DirDown, true
	default:
		return 0, false
	}
}
