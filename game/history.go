package game

// snapshot is one immutable entry of the undo/redo history: a full copy of
// the board plus the move that produced it. The restore path uses only the
// board contents; move and player exist for display purposes.
type snapshot struct {
	board  Board
	move   Coord
	player Cell
}

// HistoryEntry is a read-only view of one history position.
type HistoryEntry struct {
	Board  Board
	Move   Coord
	Player Cell
}

// saveState truncates any redo branch beyond the current position, appends
// a snapshot of the board, and advances the history pointer. Called once at
// construction and once after every successful move.
func (g *Game) saveState(move Coord, p Cell) {
	if len(g.history) > 0 {
		g.history = g.history[:g.histPos+1]
	}
	g.history = append(g.history, snapshot{
		board:  g.board.Copy(),
		move:   move,
		player: p,
	})
	g.histPos = len(g.history) - 1
}

// restore overwrites the live board with the snapshot at the current
// history position and toggles the turn. Exactly one ply elapses between
// consecutive snapshots, so one toggle per navigation step reconstructs the
// turn correctly.
func (g *Game) restore() {
	s := g.history[g.histPos]
	g.board = s.board.Copy()
	g.lastMove = s.move
	g.SwitchPlayer()
}

// Undo steps back one move. Returns false without changes when already at
// the initial position.
func (g *Game) Undo() bool {
	if g.histPos == 0 {
		return false
	}
	g.histPos--
	g.restore()
	return true
}

// Redo steps forward one move. Returns false without changes when already
// at the latest position.
func (g *Game) Redo() bool {
	if g.histPos >= len(g.history)-1 {
		return false
	}
	g.histPos++
	g.restore()
	return true
}

// HistoryLen returns the number of history entries. Always at least 1.
func (g *Game) HistoryLen() int {
	return len(g.history)
}

// HistoryPos returns the index of the current position within the history.
func (g *Game) HistoryPos() int {
	return g.histPos
}

// HistoryMove returns the move and acting player recorded at history index
// i, without copying the board. Returns false when i is out of range. The
// initial entry reports NoCoord and Empty.
func (g *Game) HistoryMove(i int) (Coord, Cell, bool) {
	if i < 0 || i >= len(g.history) {
		return NoCoord, Empty, false
	}
	s := g.history[i]
	return s.move, s.player, true
}

// HistoryAt returns a copy of the history entry at index i, or false when i
// is out of range. Mutating the returned board does not affect the game.
func (g *Game) HistoryAt(i int) (HistoryEntry, bool) {
	if i < 0 || i >= len(g.history) {
		return HistoryEntry{}, false
	}
	s := g.history[i]
	return HistoryEntry{Board: s.board.Copy(), Move: s.move, Player: s.player}, true
}
