package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"cubeversi/game"
)

// GameInfoPanel displays stone counts, turn state and the move list
// alongside the board.
type GameInfoPanel struct {
	box *tview.TextView
	g   *game.Game
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetGame points the panel at the active game and refreshes it.
func (p *GameInfoPanel) SetGame(g *game.Game) {
	p.g = g
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.g == nil {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	black, white := p.g.CountStones()
	text += fmt.Sprintf("[white]● Black:[-:-:-] %d\n", black)
	text += fmt.Sprintf("[white]○ White:[-:-:-] %d\n", white)
	text += fmt.Sprintf("[white]Turn:[-:-:-] %s\n", game.PlayerName(p.g.CurrentPlayer()))
	text += fmt.Sprintf("[white]Move:[-:-:-] %d/%d\n", p.g.HistoryPos(), p.g.HistoryLen()-1)

	undoMark := "[dimgray]u undo[-]"
	if p.g.HistoryPos() > 0 {
		undoMark = "[white]u undo[-]"
	}
	redoMark := "[dimgray]r redo[-]"
	if p.g.HistoryPos() < p.g.HistoryLen()-1 {
		redoMark = "[white]r redo[-]"
	}
	text += fmt.Sprintf("%s  %s\n", undoMark, redoMark)

	if p.g.HistoryLen() > 1 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		// Show the last N moves that fit.
		maxVisible := 12
		start := 1
		if p.g.HistoryLen() > maxVisible+1 {
			start = p.g.HistoryLen() - maxVisible
		}

		for i := start; i < p.g.HistoryLen(); i++ {
			move, player, ok := p.g.HistoryMove(i)
			if !ok {
				continue
			}

			colorStr := "[white]B[-]"
			if player == game.White {
				colorStr = "[dimgray]W[-]"
			}

			marker := " "
			if i == p.g.HistoryPos() {
				marker = "[yellow]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i, colorStr, game.FormatCoord(move))
		}

		if start > 1 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start-1)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *CubeBoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 3, 0, false)

	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info
// panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *CubeBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetGame(board.Game)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 3, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered
// layer grid.
func BuildFocusLayout(gameFrame *tview.Flex, board *CubeBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	boardWidth := 80
	boardHeight := 24
	if board.Game != nil {
		size := board.Game.Size()
		cols := size
		if cols > layersPerRow {
			cols = layersPerRow
		}
		rows := (size + layersPerRow - 1) / layersPerRow
		boardWidth = 4 + cols*(size*2+3)
		boardHeight = 1 + rows*(size+3)
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(hint, 1, 0, false)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}
