package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cubeversi/game"
)

// HistoryBrowserUI provides a screen for scrubbing through the in-memory
// move history of the current game. Selecting a ply rewinds or replays the
// engine to that position using only its undo/redo commands.
type HistoryBrowserUI struct {
	flex    *tview.Flex
	plyList *tview.List
	preview *tview.Box
	hint    *tview.TextView

	g        *game.Game
	entries  map[int]game.HistoryEntry // cached snapshot views
	selected int
	layer    int
	onDone   func()
}

// NewHistoryBrowser creates a new history browser screen.
func NewHistoryBrowser(onDone func()) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		onDone:  onDone,
		entries: make(map[int]game.HistoryEntry),
	}

	// Ply list (left panel)
	hb.plyList = tview.NewList()
	hb.plyList.SetBorder(true)
	hb.plyList.SetTitle(" Move History ")
	hb.plyList.ShowSecondaryText(false)
	hb.plyList.SetHighlightFullLine(true)
	hb.plyList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.plyList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	// Preview box (right panel)
	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Preview ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	// Hint bar
	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetBorder(false)
	hb.hint.SetText("  [dimgray]⏎[-] jump to position  [dimgray][ ][-] preview layer  [dimgray]q[-] back")

	hb.plyList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})
	hb.plyList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.jumpTo(index)
	})
	hb.plyList.SetInputCapture(hb.handleInput)

	// Layout: list left, preview right, hint bottom
	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.plyList, 38, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// SetGame points the browser at the active game and rebuilds the ply list.
func (hb *HistoryBrowserUI) SetGame(g *game.Game) {
	hb.g = g
	if g != nil {
		hb.layer = g.Size() / 2
	}
	hb.Refresh()
}

// Refresh rebuilds the ply list from the engine's history.
func (hb *HistoryBrowserUI) Refresh() {
	hb.plyList.Clear()
	hb.entries = make(map[int]game.HistoryEntry)
	hb.selected = 0

	if hb.g == nil {
		hb.plyList.AddItem("[dimgray]No game in progress[-]", "", 0, nil)
		return
	}

	for i := 0; i < hb.g.HistoryLen(); i++ {
		move, player, ok := hb.g.HistoryMove(i)
		if !ok {
			continue
		}
		label := "Start position"
		if i > 0 {
			stone := "●"
			if player == game.White {
				stone = "○"
			}
			label = fmt.Sprintf("%3d. %s %s", i, stone, game.FormatCoord(move))
		}
		if i == hb.g.HistoryPos() {
			label += "  [yellow]<[-]"
		}
		hb.plyList.AddItem(label, "", 0, nil)
	}
	hb.plyList.SetCurrentItem(hb.g.HistoryPos())
	hb.selected = hb.g.HistoryPos()
}

// jumpTo navigates the engine to the chosen history index by stepping
// through undo/redo, then leaves the browser.
func (hb *HistoryBrowserUI) jumpTo(index int) {
	if hb.g == nil {
		return
	}
	for hb.g.HistoryPos() > index {
		if !hb.g.Undo() {
			break
		}
	}
	for hb.g.HistoryPos() < index {
		if !hb.g.Redo() {
			break
		}
	}
	if hb.onDone != nil {
		hb.onDone()
	}
}

// handleInput processes keyboard input for the history browser.
func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if hb.onDone != nil {
				hb.onDone()
			}
			return nil
		case '[':
			if hb.layer > 0 {
				hb.layer--
			}
			return nil
		case ']':
			if hb.g != nil && hb.layer < hb.g.Size()-1 {
				hb.layer++
			}
			return nil
		}
	}
	return event
}

// drawPreview renders one layer of the selected snapshot plus metadata.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if hb.g == nil || hb.selected < 0 || hb.selected >= hb.g.HistoryLen() {
		return x, y, width, height
	}

	// Lazy-load and cache the snapshot view
	entry, ok := hb.entries[hb.selected]
	if !ok {
		e, found := hb.g.HistoryAt(hb.selected)
		if !found {
			return x, y, width, height
		}
		entry = e
		hb.entries[hb.selected] = entry
	}

	size := hb.g.Size()
	startX := x + 2
	startY := y + 1

	if width < size*2+4 || height < size+7 {
		return x, y, width, height
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(109))
	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
	whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))

	drawText(screen, startX, startY, fmt.Sprintf("Layer %d/%d", hb.layer+1, size), titleStyle)

	for by := 0; by < size; by++ {
		for bx := 0; bx < size; bx++ {
			ch := '·'
			style := emptyStyle
			switch entry.Board[bx][by][hb.layer] {
			case game.Black:
				ch = '●'
				style = blackStyle
			case game.White:
				ch = '○'
				style = whiteStyle
			}
			screen.SetContent(startX+bx*2, startY+1+by, ch, nil, style)
		}
	}

	// Metadata below the board
	infoY := startY + size + 2
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))

	black, white := countSnapshotStones(entry.Board)
	drawText(screen, startX, infoY, fmt.Sprintf("● %d  ○ %d", black, white), dimStyle)

	infoY++
	if hb.selected == 0 {
		drawText(screen, startX, infoY, "Seeded start position", dimStyle)
	} else {
		drawText(screen, startX, infoY, fmt.Sprintf("%s played %s", game.PlayerName(entry.Player), game.FormatCoord(entry.Move)), dimStyle)
	}

	return x, y, width, height
}

// countSnapshotStones tallies a snapshot board without touching the engine.
func countSnapshotStones(b game.Board) (black, white int) {
	for x := range b {
		for y := range b[x] {
			for z := range b[x][y] {
				switch b[x][y][z] {
				case game.Black:
					black++
				case game.White:
					white++
				}
			}
		}
	}
	return black, white
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
