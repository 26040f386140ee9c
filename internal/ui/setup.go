package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"taklite_poc/internal/shared"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form    *tview.Form
	flex    *tview.Flex
	onStart func(size int, starting shared.Color)

	boardSize int
	starting  shared.Color
}

// NewGameSetup creates a new game setup form.
func NewGameSetup(defaultSize int, defaultStarting shared.Color, onStart func(size int, starting shared.Color)) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		boardSize: defaultSize,
		starting:  defaultStarting,
	}

	sizes := shared.BoardSizes()
	sizeOptions := make([]string, 0, len(sizes))
	defaultIndex := 0
	for i, s := range sizes {
		sizeOptions = append(sizeOptions, fmt.Sprintf("%dx%d", s, s))
		if s == defaultSize {
			defaultIndex = i
		}
	}
	colors := []string{"White plays first", "Black plays first"}
	colorIndex := 0
	if defaultStarting == shared.Black {
		colorIndex = 1
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeOptions, defaultIndex, func(option string, index int) {
		setup.boardSize = sizes[index]
	})

	form.AddDropDown("First Move", colors, colorIndex, func(option string, index int) {
		if index == 1 {
			setup.starting = shared.Black
		} else {
			setup.starting = shared.White
		}
	})

	form.AddButton("Start Game", func() {
		setup.onStart(setup.boardSize, setup.starting)
	})

	form.SetBorder(true).SetTitle(" New Game ").SetTitleAlign(tview.AlignLeft)
	setup.form = form

	setup.flex = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(form, 11, 0, true).
			AddItem(nil, 0, 1, false), 40, 0, true).
		AddItem(nil, 0, 1, false)
	return setup
}

// Root returns the primitive to mount on a page.
func (s *GameSetupUI) Root() tview.Primitive { return s.flex }
