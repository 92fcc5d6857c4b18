// Package game implements the 3D Reversi board engine: an N×N×N cell
// lattice, flip-rule move logic across all 26 spatial directions, turn
// state, and a linear undo/redo history of board snapshots.
package game

// Cell is the content of a single board position.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Coord identifies one cell of the cube.
type Coord struct {
	X int
	Y int
	Z int
}

// NoCoord marks "no position", e.g. before the first move has been played.
var NoCoord = Coord{X: -1, Y: -1, Z: -1}

// directions holds the 26 non-zero unit offsets of a 3D neighborhood.
// Built once at init and never modified.
var directions []Coord

func init() {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				directions = append(directions, Coord{X: dx, Y: dy, Z: dz})
			}
		}
	}
}

// Board is a dense cube of cells indexed [x][y][z].
type Board [][][]Cell

// NewBoard creates an empty size×size×size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for x := range b {
		b[x] = make([][]Cell, size)
		for y := range b[x] {
			b[x][y] = make([]Cell, size)
		}
	}
	return b
}

// Copy creates a deep copy of the board.
func (b Board) Copy() Board {
	nb := make(Board, len(b))
	for x := range b {
		nb[x] = make([][]Cell, len(b[x]))
		for y := range b[x] {
			nb[x][y] = make([]Cell, len(b[x][y]))
			copy(nb[x][y], b[x][y])
		}
	}
	return nb
}

// Opponent returns the opposing player color. Empty is returned unchanged.
func Opponent(p Cell) Cell {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return p
}
