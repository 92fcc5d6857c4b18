package game

import "testing"

func TestHistoryStartsWithInitialSnapshot(t *testing.T) {
	g := New(8)
	if g.HistoryLen() != 1 {
		t.Fatalf("fresh game should have 1 history entry, got %d", g.HistoryLen())
	}
	if g.HistoryPos() != 0 {
		t.Fatalf("fresh game should point at entry 0, got %d", g.HistoryPos())
	}
}

func TestUndoAtInitialStateFails(t *testing.T) {
	g := New(8)
	before := g.board.Copy()
	if g.Undo() {
		t.Fatal("undo with no earlier state should return false")
	}
	if !boardsEqual(g.board, before) || g.CurrentPlayer() != Black {
		t.Fatal("failed undo must change nothing")
	}
}

func TestRedoAtLatestStateFails(t *testing.T) {
	g := New(8)
	if g.Redo() {
		t.Fatal("redo with no later state should return false")
	}
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()
	if g.Redo() {
		t.Fatal("redo at the end of history should return false")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	g := New(8)
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()
	boardAfter := g.board.Copy()
	playerAfter := g.CurrentPlayer()

	if !g.Undo() {
		t.Fatal("undo should succeed after a move")
	}
	if g.CurrentPlayer() != Black {
		t.Fatal("undo should hand the turn back to black")
	}
	black, white := g.CountStones()
	if black != 4 || white != 4 {
		t.Fatalf("undo should restore the seeded position, got %d/%d", black, white)
	}

	if !g.Redo() {
		t.Fatal("redo should succeed after an undo")
	}
	if !boardsEqual(g.board, boardAfter) {
		t.Fatal("redo must restore the exact board contents")
	}
	if g.CurrentPlayer() != playerAfter {
		t.Fatal("redo must restore the turn")
	}
}

func TestUndoRestoresLastMove(t *testing.T) {
	g := New(8)
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()
	reply := g.ValidMoves(White)[0]
	g.MakeMove(reply.X, reply.Y, reply.Z, White)
	g.SwitchPlayer()

	g.Undo()
	last, ok := g.LastMove()
	if !ok || last != (Coord{X: 2, Y: 3, Z: 3}) {
		t.Fatalf("after undo the last move should be (2,3,3), got %v ok=%v", last, ok)
	}

	g.Undo()
	if _, ok := g.LastMove(); ok {
		t.Fatal("at the initial position there is no last move")
	}
}

func TestNewMoveDiscardsRedoBranch(t *testing.T) {
	g := New(8)
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()

	if !g.Undo() {
		t.Fatal("undo should succeed")
	}
	if !g.Redo() {
		t.Fatal("redo should reach the discarded-to-be state")
	}
	if !g.Undo() {
		t.Fatal("second undo should succeed")
	}

	// A different move from the rewound position drops the old future.
	if !g.MakeMove(3, 2, 3, Black) {
		t.Fatal("(3,2,3) should be a legal black opening")
	}
	g.SwitchPlayer()

	if g.HistoryLen() != 2 {
		t.Fatalf("history should contain initial + new move, got %d entries", g.HistoryLen())
	}
	if g.Redo() {
		t.Fatal("redo must fail after the branch was discarded")
	}
	last, _ := g.LastMove()
	if last != (Coord{X: 3, Y: 2, Z: 3}) {
		t.Fatalf("current position should be the new move, got %v", last)
	}
}

func TestHistoryAt(t *testing.T) {
	g := New(8)
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()

	entry, ok := g.HistoryAt(0)
	if !ok {
		t.Fatal("entry 0 should exist")
	}
	if entry.Move != NoCoord || entry.Player != Empty {
		t.Fatal("the initial entry has no move")
	}

	entry, ok = g.HistoryAt(1)
	if !ok {
		t.Fatal("entry 1 should exist")
	}
	if entry.Move != (Coord{X: 2, Y: 3, Z: 3}) || entry.Player != Black {
		t.Fatalf("entry 1 should record black at (2,3,3), got %v by %v", entry.Move, entry.Player)
	}

	// Entries are copies: writing into one must not corrupt the history.
	entry.Board[0][0][0] = White
	g.Undo()
	if g.At(0, 0, 0) != Empty {
		t.Fatal("history snapshots must be isolated from callers")
	}

	if _, ok := g.HistoryAt(-1); ok {
		t.Fatal("negative index should not resolve")
	}
	if _, ok := g.HistoryAt(99); ok {
		t.Fatal("out-of-range index should not resolve")
	}
}

func TestHistoryMove(t *testing.T) {
	g := New(8)
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()

	move, player, ok := g.HistoryMove(0)
	if !ok || move != NoCoord || player != Empty {
		t.Fatalf("initial entry should report no move, got %v by %v ok=%v", move, player, ok)
	}

	move, player, ok = g.HistoryMove(1)
	if !ok || move != (Coord{X: 2, Y: 3, Z: 3}) || player != Black {
		t.Fatalf("entry 1 should record black at (2,3,3), got %v by %v ok=%v", move, player, ok)
	}

	if _, _, ok := g.HistoryMove(-1); ok {
		t.Fatal("negative index should not resolve")
	}
	if _, _, ok := g.HistoryMove(2); ok {
		t.Fatal("out-of-range index should not resolve")
	}
}

func TestSnapshotsAreIsolatedFromLiveBoard(t *testing.T) {
	g := New(8)
	g.MakeMove(2, 3, 3, Black)
	g.SwitchPlayer()

	// Mutate the live board through another legal move, then rewind twice.
	reply := g.ValidMoves(White)[0]
	g.MakeMove(reply.X, reply.Y, reply.Z, White)
	g.SwitchPlayer()
	g.Undo()
	g.Undo()

	black, white := g.CountStones()
	if black != 4 || white != 4 {
		t.Fatalf("rewinding to the start should restore the seeded cube, got %d/%d", black, white)
	}
}
