package game

import "fmt"

// Display coordinate system:
// - Columns: A.. (left to right, X axis)
// - Rows: 1.. (top to bottom, Y axis)
// - Layers: L1.. (front to back, Z axis)
// - Example: D4·L2 for (3, 3, 1)

// FormatCoord converts a board coordinate to display notation like "D4·L2".
func FormatCoord(c Coord) string {
	if c == NoCoord {
		return "—"
	}
	return fmt.Sprintf("%s%d·L%d", columnLabel(c.X), c.Y+1, c.Z+1)
}

// columnLabel converts a zero-based column index to spreadsheet-style
// letters: A..Z, then AA, AB, and so on for boards wider than 26.
func columnLabel(x int) string {
	label := ""
	for x >= 0 {
		label = string(rune('A'+x%26)) + label
		x = x/26 - 1
	}
	return label
}

// PlayerName returns "Black", "White" or "Nobody" for a cell value.
func PlayerName(p Cell) string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Nobody"
}
