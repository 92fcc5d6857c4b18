package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cubeversi/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoardColor int
	selectedHintColor  int
	editingHint        bool // true = editing hint color, false = editing board color
}

// Common board colors to choose from (felt and wood tones)
var boardColors = []struct {
	code int
	name string
}{
	{22, "Dark Green"},
	{28, "Green"},
	{29, "Sea Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{18, "Dark Blue"},
	{52, "Dark Maroon"},
	{88, "Dark Red"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{58, "Olive"},
	{232, "Black"},
	{234, "Charcoal"},
	{236, "Dark Gray"},
	{240, "Gray"},
}

// Hint colors (bright tones that stand out on the board)
var hintColors = []struct {
	code int
	name string
}{
	{178, "Gold"},
	{220, "Bright Yellow"},
	{214, "Orange"},
	{208, "Dark Orange"},
	{203, "Coral"},
	{211, "Pink"},
	{141, "Violet"},
	{117, "Sky Blue"},
	{87, "Cyan"},
	{120, "Light Green"},
	{255, "White"},
	{250, "Gray"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedHintColor:  cfg.Theme.Colors.HintColor,
		editingHint:        false,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Selection change previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			if index >= 0 && index < len(hintColors) {
				cc.selectedHintColor = hintColors[index].code
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.selectedBoardColor = boardColors[index].code
			}
		}
	})

	// Selection confirm applies and saves it
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			if index >= 0 && index < len(hintColors) {
				cc.cfg.Theme.Colors.HintColor = cc.selectedHintColor
				cc.cfg.Save()
				// Switch back to board color selection
				cc.editingHint = false
				cc.populateColorList()
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
				cc.cfg.Theme.Colors.BoardColorAlt = alternateShade(cc.selectedBoardColor)
				cc.cfg.Save()
				onDone()
			}
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Layer Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// alternateShade picks the checkerboard companion for a board color. The
// xterm 6x6x6 color cube advances in steps of 1 along blue, so +1 stays in
// the same hue family for the colors offered here.
func alternateShade(code int) int {
	if code >= 16 && code < 231 {
		return code + 1
	}
	return code
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingHint {
		cc.colorList.SetTitle(" Select Hint Color (Tab: switch to board) ")
		for i, c := range hintColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range hintColors {
			if c.code == cc.selectedHintColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: switch to hints) ")
		for i, c := range boardColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range boardColors {
			if c.code == cc.selectedBoardColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	boardAltColor := tcell.PaletteColor(alternateShade(cc.selectedBoardColor))
	blackColor := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)
	whiteColor := tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)
	hintColor := tcell.PaletteColor(cc.selectedHintColor)

	// Draw a single 6x6 layer preview
	startX := x + 2
	startY := y + 1
	size := 6

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	// Sample positions for preview
	stones := map[[2]int]int{
		{2, 2}: 1, // black
		{3, 3}: 1,
		{2, 3}: 2, // white
		{3, 2}: 2,
	}
	hints := map[[2]int]bool{
		{1, 2}: true,
		{4, 3}: true,
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := boardColor
			if (col+row)%2 == 1 {
				bg = boardAltColor
			}

			char := cc.cfg.Theme.Symbols.EmptyCell
			fg := hintColor
			if stoneColor, ok := stones[[2]int{col, row}]; ok {
				if stoneColor == 1 {
					char = cc.cfg.Theme.Symbols.BlackStone
					fg = blackColor
				} else {
					char = cc.cfg.Theme.Symbols.WhiteStone
					fg = whiteColor
				}
			} else if hints[[2]int{col, row}] {
				char = cc.cfg.Theme.Symbols.HintMark
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(startX+col*2, startY+row, char, nil, style)
			screen.SetContent(startX+col*2+1, startY+row, ' ', nil, style)
		}
	}

	// Draw color info
	infoStyle := tcell.StyleDefault
	var info string
	if cc.editingHint {
		info = fmt.Sprintf("Hint: %d  Board: %d", cc.selectedHintColor, cc.selectedBoardColor)
	} else {
		info = fmt.Sprintf("Board: %d  Hint: %d", cc.selectedBoardColor, cc.selectedHintColor)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and hint color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingHint = !cc.editingHint
	cc.populateColorList()
}
