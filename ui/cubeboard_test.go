package ui

import (
	"testing"

	"github.com/rivo/tview"

	"cubeversi/config"
	"cubeversi/game"
)

func newTestBoard(t *testing.T, size int) *CubeBoardUI {
	t.Helper()
	cfg := config.DefaultConfig
	b := NewCubeBoard(&cfg, tview.NewTextView())
	b.StartGame(size)
	return b
}

func (b *CubeBoardUI) playAt(t *testing.T, x, y, z int) {
	t.Helper()
	player := b.Game.CurrentPlayer()
	b.selX, b.selY, b.selZ = x, y, z
	b.PlayMove()
	if last, ok := b.Game.LastMove(); !ok || last != (game.Coord{X: x, Y: y, Z: z}) {
		t.Fatalf("playing (%d,%d,%d) as %s did not register", x, y, z, game.PlayerName(player))
	}
}

func TestUndoAcrossPassRestoresMover(t *testing.T) {
	b := newTestBoard(t, 8)

	// Black opens, then White is forced to pass and Black moves again.
	// Both recorded moves belong to Black, so toggling the turn once per
	// undo step would hand the position to the wrong player.
	b.playAt(t, 2, 3, 3)
	if b.Game.CurrentPlayer() != game.White {
		t.Fatal("white should be on turn after black's opening")
	}
	b.Game.SwitchPlayer() // forced pass
	b.playAt(t, 3, 4, 5)

	if !b.Undo() {
		t.Fatal("undo to move 1 should succeed")
	}
	if b.Game.CurrentPlayer() != game.Black {
		t.Fatalf("after undoing move 2, black made it and should be on turn, got %s",
			game.PlayerName(b.Game.CurrentPlayer()))
	}

	if !b.Undo() {
		t.Fatal("undo to the start position should succeed")
	}
	if b.Game.HistoryPos() != 0 {
		t.Fatalf("expected history position 0, got %d", b.Game.HistoryPos())
	}
	if b.Game.CurrentPlayer() != game.Black {
		t.Fatalf("black opens the game, got %s at the start position",
			game.PlayerName(b.Game.CurrentPlayer()))
	}
}

func TestRedoAcrossPassRestoresMover(t *testing.T) {
	b := newTestBoard(t, 8)

	b.playAt(t, 2, 3, 3)
	b.Game.SwitchPlayer() // forced pass
	b.playAt(t, 3, 4, 5)
	b.Undo()
	b.Undo()

	if !b.Redo() {
		t.Fatal("redo to move 1 should succeed")
	}
	if b.Game.CurrentPlayer() != game.Black {
		t.Fatalf("black made move 2, expected black on turn after first redo, got %s",
			game.PlayerName(b.Game.CurrentPlayer()))
	}

	if !b.Redo() {
		t.Fatal("redo to move 2 should succeed")
	}
	if b.Game.CurrentPlayer() != game.White {
		t.Fatalf("expected white on turn at the history tip, got %s",
			game.PlayerName(b.Game.CurrentPlayer()))
	}
}

func TestResyncAlignsTurnAfterHistoryJump(t *testing.T) {
	b := newTestBoard(t, 8)

	b.playAt(t, 2, 3, 3)
	b.Game.SwitchPlayer() // forced pass
	b.playAt(t, 3, 4, 5)

	// Jump straight to the start position the way the history browser does,
	// stepping the engine directly.
	b.Game.Undo()
	b.Game.Undo()
	b.Resync()

	if b.Game.CurrentPlayer() != game.Black {
		t.Fatalf("resync at the start position should leave black on turn, got %s",
			game.PlayerName(b.Game.CurrentPlayer()))
	}
}
