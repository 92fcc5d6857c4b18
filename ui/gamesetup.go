package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cubeversi/config"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(size int, showHints bool)
	onCancel func()
	onColors func()

	boardSize int
	showHints bool
}

// NewGameSetup creates a new game setup form.
func NewGameSetup(cfg *config.Config, onStart func(size int, showHints bool), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		onColors:  onColors,
		boardSize: cfg.Game.DefaultBoardSize,
		showHints: cfg.Game.ShowHints,
	}

	boardSizes := []string{"4×4×4", "6×6×6", "8×8×8"}
	sizeIndex := 2
	switch setup.boardSize {
	case 4:
		sizeIndex = 0
	case 6:
		sizeIndex = 1
	default:
		setup.boardSize = 8
	}

	hintOptions := []string{"Show valid moves", "No hints"}
	hintIndex := 0
	if !setup.showHints {
		hintIndex = 1
	}

	form := tview.NewForm()

	form.AddDropDown("Cube Size", boardSizes, sizeIndex, func(option string, index int) {
		switch index {
		case 0:
			setup.boardSize = 4
		case 1:
			setup.boardSize = 6
		case 2:
			setup.boardSize = 8
		}
	})

	form.AddDropDown("Hints", hintOptions, hintIndex, func(option string, index int) {
		setup.showHints = index == 0
	})

	form.AddButton("Start Game", func() {
		onStart(setup.boardSize, setup.showHints)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkCyan)
	form.SetButtonTextColor(tcell.ColorWhite)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
