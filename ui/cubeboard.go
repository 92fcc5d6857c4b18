// Package ui specifies custom controls for tview to assist in playing 3D
// Reversi in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cubeversi/config"
	"cubeversi/game"
)

// layersPerRow controls how many z-slices are drawn side by side before
// wrapping to the next block row.
const layersPerRow = 4

// CubeBoardUI renders the cube as a grid of z-layer slices and routes move,
// pass, undo and redo commands into the engine.
type CubeBoardUI struct {
	Box  *tview.Box
	Game *game.Game

	hint      *tview.TextView
	cfg       *config.Config
	styles    []tcell.Color
	infoPanel *GameInfoPanel

	selX, selY, selZ int
	showHints        bool
	focusMode        bool
	finished         bool
	passNotice       game.Cell // player that had to pass last turn, Empty if none
}

// NewCubeBoard creates the board widget. The game is attached later through
// StartGame.
func NewCubeBoard(c *config.Config, hint *tview.TextView) *CubeBoardUI {
	board := &CubeBoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		selX: -1,
		selY: -1,
		selZ: 0,
	}
	board.SetConfig(c)
	board.showHints = c.Game.ShowHints
	board.Box.SetDrawFunc(board.draw)
	return board
}

// StartGame resets the widget onto a freshly constructed engine instance.
func (b *CubeBoardUI) StartGame(size int) {
	b.Game = game.New(size)
	b.finished = false
	b.passNotice = game.Empty
	b.showHints = b.cfg.Game.ShowHints
	b.ResetSelection()
	b.selZ = size / 2
	b.refreshHint()
}

// SelectedCell returns the cursor position, or nil when no cell is selected.
func (b *CubeBoardUI) SelectedCell() *game.Coord {
	if b.selX == -1 && b.selY == -1 {
		return nil
	}
	return &game.Coord{X: b.selX, Y: b.selY, Z: b.selZ}
}

// MoveSelection shifts the cursor within the current layer. The first call
// places the cursor on the last move, or the board center.
func (b *CubeBoardUI) MoveSelection(h, v int) {
	if b.Game == nil || b.finished {
		b.ResetSelection()
		return
	}
	if b.SelectedCell() == nil {
		if last, ok := b.Game.LastMove(); ok {
			b.selX, b.selY, b.selZ = last.X, last.Y, last.Z
		} else {
			mid := b.Game.Size() / 2
			b.selX, b.selY, b.selZ = mid, mid, mid
		}
		return
	}
	if b.selX+h < 0 || b.selX+h >= b.Game.Size() {
		return
	}
	if b.selY+v < 0 || b.selY+v >= b.Game.Size() {
		return
	}
	b.selX += h
	b.selY += v
}

// MoveLayer shifts the cursor along the z axis.
func (b *CubeBoardUI) MoveLayer(d int) {
	if b.Game == nil || b.finished {
		return
	}
	if b.selZ+d < 0 || b.selZ+d >= b.Game.Size() {
		return
	}
	b.selZ += d
	if b.SelectedCell() == nil {
		b.MoveSelection(0, 0)
	}
}

// ResetSelection clears the cursor.
func (b *CubeBoardUI) ResetSelection() {
	b.selX = -1
	b.selY = -1
}

// PlayMove plays the current player at the cursor. Illegal moves leave the
// game untouched; the engine signals that with a false return.
func (b *CubeBoardUI) PlayMove() {
	if b.Game == nil || b.finished {
		return
	}
	sel := b.SelectedCell()
	if sel == nil {
		return
	}
	player := b.Game.CurrentPlayer()
	if !b.Game.MakeMove(sel.X, sel.Y, sel.Z, player) {
		return
	}
	b.Game.SwitchPlayer()
	b.advanceTurn()
	b.refreshHint()
}

/// advanceTurn applies the pass rule: a player without a legal move forfeits
// the turn, and the game ends when neither side can move.
func (b *CubeBoardUI) advanceTurn() {
	b.passNotice = game.Empty
	cur := b.Game.CurrentPlayer()
	if b.Game.HasValidMove(cur) {
		return
	}
	if !b.Game.HasValidMove(game.Opponent(cur)) {
		b.finished = true
		b.ResetSelection()
		return
	}
	b.passNotice = cur
	b.Game.SwitchPlayer()
}

// alignTurn corrects the current player after history navigation. The
// engine reconstructs the turn by toggling once per step, which skews when
// a forced pass inserted an extra switch between two snapshots. When a redo
// branch exists, the recorded producer of the next move is authoritative;
// at the branch tip the pass rule decides.
func (b *CubeBoardUI) alignTurn() {
	if _, player, ok := b.Game.HistoryMove(b.Game.HistoryPos() + 1); ok {
		b.passNotice = game.Empty
		if b.Game.CurrentPlayer() != player {
			b.Game.SwitchPlayer()
		}
		return
	}
	b.advanceTurn()
}

// Undo rewinds one move. Returns false at the initial position.
func (b *CubeBoardUI) Undo() bool {
	if b.Game == nil {
		return false
	}
	if !b.Game.Undo() {
		return false
	}
	b.finished = false
	b.passNotice = game.Empty
	b.alignTurn()
	b.refreshHint()
	return true
}

// Redo replays one undone move. Returns false at the end of history.
func (b *CubeBoardUI) Redo() bool {
	if b.Game == nil {
		return false
	}
	if !b.Game.Redo() {
		return false
	}
	b.passNotice = game.Empty
	b.alignTurn()
	b.refreshHint()
	return true
}

// Resync refreshes derived state after the engine position was changed
// externally, e.g. by a history browser jump.
func (b *CubeBoardUI) Resync() {
	if b.Game == nil {
		return
	}
	b.finished = false
	b.passNotice = game.Empty
	b.alignTurn()
	b.refreshHint()
}

// ToggleHints flips valid-move highlighting and returns the new state.
func (b *CubeBoardUI) ToggleHints() bool {
	b.showHints = !b.showHints
	return b.showHints
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *CubeBoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *CubeBoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (b *CubeBoardUI) IsFocusMode() bool {
	return b.focusMode
}

// IsFinished returns true if the game is over.
func (b *CubeBoardUI) IsFinished() bool {
	return b.finished
}

func (b *CubeBoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.LayerLabelColor),   // 4
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 6
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 7
	}
	b.cfg = c
}

// draw renders every z-layer, wrapping into block rows of layersPerRow.
func (b *CubeBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if b.Game == nil {
		return x, y, 1, 1
	}
	size := b.Game.Size()
	last, hasLast := b.Game.LastMove()

	hints := map[game.Coord]bool{}
	if b.showHints && !b.finished {
		for _, m := range b.Game.ValidMoves(b.Game.CurrentPlayer()) {
			hints[m] = true
		}
	}

	layerW := size*2 + 3
	layerH := size + 3

	for z := 0; z < size; z++ {
		left := x + 4 + (z%layersPerRow)*layerW
		top := y + 1 + (z/layersPerRow)*layerH

		b.drawLayerCaption(screen, left, top-1, z)
		for by := 0; by < size; by++ {
			if z%layersPerRow == 0 {
				drawRowNumber(screen, x+1, top+by, by)
			}
			for bx := 0; bx < size; bx++ {
				b.drawCell(screen, left, top, bx, by, z, hints, last, hasLast)
			}
		}
		drawColumnLetters(screen, left, top+size, size)
	}

	rows := (size + layersPerRow - 1) / layersPerRow
	cols := size
	if cols > layersPerRow {
		cols = layersPerRow
	}
	return x, y, 4 + cols*layerW, 1 + rows*layerH
}

// drawCell paints one 2-character board cell.
func (b *CubeBoardUI) drawCell(screen tcell.Screen, left, top, bx, by, z int, hints map[game.Coord]bool, last game.Coord, hasLast bool) {
	cell := b.Game.At(bx, by, z)
	pos := game.Coord{X: bx, Y: by, Z: z}

	// Checkerboard background keeps the lattice readable.
	bgIdx := 0
	if (bx+by+z)%2 == 1 {
		bgIdx = 3
	}

	drawRune := b.cfg.Theme.Symbols.EmptyCell
	fgIdx := 4
	switch cell {
	case game.Black:
		drawRune = b.cfg.Theme.Symbols.BlackStone
		fgIdx = 1
	case game.White:
		drawRune = b.cfg.Theme.Symbols.WhiteStone
		fgIdx = 2
	default:
		if hints[pos] {
			drawRune = b.cfg.Theme.Symbols.HintMark
			fgIdx = 5
		}
	}

	if bx == b.selX && by == b.selY && z == b.selZ {
		if b.cfg.Theme.DrawCursorBackground {
			bgIdx = 7
		}
	} else if hasLast && pos == last {
		if b.cfg.Theme.DrawLastPlayedBackground {
			bgIdx = 6
		}
	}

	style := tcell.StyleDefault.Background(b.styles[bgIdx]).Foreground(b.styles[fgIdx])
	screen.SetContent(left+bx*2, top+by, drawRune, nil, style)
	screen.SetContent(left+bx*2+1, top+by, ' ', nil, style)
}

// drawLayerCaption writes the "L3" heading above a slice, highlighting the
// layer under the cursor.
func (b *CubeBoardUI) drawLayerCaption(screen tcell.Screen, x, y, z int) {
	style := tcell.StyleDefault.Foreground(b.styles[4])
	if z == b.selZ && b.SelectedCell() != nil {
		style = style.Bold(true).Background(b.styles[7])
	}
	label := fmt.Sprintf("L%d", z+1)
	for i, ch := range label {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func drawRowNumber(screen tcell.Screen, x, y, row int) {
	displayNum := row + 1
	tensRune := ' '
	if displayNum >= 10 {
		tensRune = rune('0' + displayNum/10)
	}
	style := tcell.StyleDefault
	screen.SetContent(x, y, tensRune, nil, style)
	screen.SetContent(x+1, y, rune('0'+displayNum%10), nil, style)
}

func drawColumnLetters(screen tcell.Screen, x, y, size int) {
	style := tcell.StyleDefault
	for i := 0; i < size; i++ {
		screen.SetContent(x+i*2, y, rune('A'+i), nil, style)
		screen.SetContent(x+i*2+1, y, ' ', nil, style)
	}
}

func (b *CubeBoardUI) refreshHint() {
	if b.infoPanel != nil {
		b.infoPanel.SetGame(b.Game)
	}

	if b.focusMode {
		b.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if b.finished {
		black, white := b.Game.CountStones()
		statusLine = "───────── Game Complete ─────────\n\n"
		switch {
		case black > white:
			turnLine = fmt.Sprintf("  Result: Black wins %d–%d\n", black, white)
		case white > black:
			turnLine = fmt.Sprintf("  Result: White wins %d–%d\n", white, black)
		default:
			turnLine = fmt.Sprintf("  Result: Draw %d–%d\n", black, white)
		}
		controlsLine = "\n  u · undo   q · return to menu"
	} else {
		if b.passNotice != game.Empty {
			statusLine = fmt.Sprintf("  ◌ %s had no move and passed\n\n", game.PlayerName(b.passNotice))
		}

		if b.Game != nil {
			stone := "●"
			if b.Game.CurrentPlayer() == game.White {
				stone = "○"
			}
			turnLine = fmt.Sprintf("  %s %s to move\n", stone, game.PlayerName(b.Game.CurrentPlayer()))
		}

		controlsLine = `
  hjkl/↑↓←→ move   [ ] layer   ⏎ play
  u undo   r redo   b browse   v hints   f focus   q quit`
	}

	b.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}
