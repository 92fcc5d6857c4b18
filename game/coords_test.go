package game

import "testing"

func TestFormatCoord(t *testing.T) {
	cases := []struct {
		coord Coord
		want  string
	}{
		{Coord{X: 0, Y: 0, Z: 0}, "A1·L1"},
		{Coord{X: 3, Y: 3, Z: 1}, "D4·L2"},
		{Coord{X: 7, Y: 7, Z: 7}, "H8·L8"},
		{Coord{X: 25, Y: 0, Z: 0}, "Z1·L1"},
		{Coord{X: 26, Y: 26, Z: 26}, "AA27·L27"},
		{Coord{X: 51, Y: 0, Z: 0}, "AZ1·L1"},
		{Coord{X: 52, Y: 0, Z: 0}, "BA1·L1"},
		{NoCoord, "—"},
	}
	for _, c := range cases {
		if got := FormatCoord(c.coord); got != c.want {
			t.Fatalf("FormatCoord(%v) = %q, want %q", c.coord, got, c.want)
		}
	}
}

func TestPlayerName(t *testing.T) {
	if PlayerName(Black) != "Black" {
		t.Fatal("black should be named Black")
	}
	if PlayerName(White) != "White" {
		t.Fatal("white should be named White")
	}
	if PlayerName(Empty) != "Nobody" {
		t.Fatal("empty should be named Nobody")
	}
}
