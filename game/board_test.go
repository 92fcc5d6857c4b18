package game

import "testing"

func TestDirections(t *testing.T) {
	if len(directions) != 26 {
		t.Fatalf("expected 26 directions, got %d", len(directions))
	}
	seen := map[Coord]bool{}
	for _, d := range directions {
		if d.X == 0 && d.Y == 0 && d.Z == 0 {
			t.Fatal("zero vector must not be a direction")
		}
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 || d.Z < -1 || d.Z > 1 {
			t.Fatalf("direction out of range: %v", d)
		}
		if seen[d] {
			t.Fatalf("duplicate direction: %v", d)
		}
		seen[d] = true
	}
}

func TestOpponent(t *testing.T) {
	if Opponent(Black) != White {
		t.Fatal("opponent of black should be white")
	}
	if Opponent(White) != Black {
		t.Fatal("opponent of white should be black")
	}
	for _, p := range []Cell{Black, White} {
		if Opponent(Opponent(p)) != p {
			t.Fatalf("opponent should be an involution for %v", p)
		}
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard(4)
	b[1][2][3] = Black
	nb := b.Copy()
	if nb[1][2][3] != Black {
		t.Fatal("copy should preserve cell contents")
	}
	nb[1][2][3] = White
	if b[1][2][3] != Black {
		t.Fatal("mutating the copy must not affect the original")
	}
}

func TestOnBoard(t *testing.T) {
	g := New(8)
	cases := []struct {
		x, y, z int
		want    bool
	}{
		{0, 0, 0, true},
		{7, 7, 7, true},
		{3, 4, 5, true},
		{-1, 0, 0, false},
		{0, -1, 0, false},
		{0, 0, -1, false},
		{8, 0, 0, false},
		{0, 8, 0, false},
		{0, 0, 8, false},
	}
	for _, c := range cases {
		if got := g.OnBoard(c.x, c.y, c.z); got != c.want {
			t.Fatalf("OnBoard(%d,%d,%d) = %v, want %v", c.x, c.y, c.z, got, c.want)
		}
	}
}

func TestInitialSeeding(t *testing.T) {
	for _, size := range []int{4, 6, 8} {
		g := New(size)
		black, white := g.CountStones()
		if black != 4 || white != 4 {
			t.Fatalf("size %d: expected 4 black and 4 white, got %d/%d", size, black, white)
		}
		mid := size / 2
		for x := mid - 1; x <= mid; x++ {
			for y := mid - 1; y <= mid; y++ {
				for z := mid - 1; z <= mid; z++ {
					want := White
					if (x+y+z)%2 == 0 {
						want = Black
					}
					if g.At(x, y, z) != want {
						t.Fatalf("size %d: cell (%d,%d,%d) should alternate by parity", size, x, y, z)
					}
				}
			}
		}
	}
}

func TestInitialTurnAndLastMove(t *testing.T) {
	g := New(8)
	if g.CurrentPlayer() != Black {
		t.Fatal("black should move first")
	}
	if _, ok := g.LastMove(); ok {
		t.Fatal("a fresh game has no last move")
	}
}
