package game

// Game owns one 3D Reversi match: the board, whose turn it is, and the
// undo/redo history. It is self-contained and synchronous; callers mutate
// state only through MakeMove, SwitchPlayer, Undo and Redo.
type Game struct {
	size     int
	board    Board
	player   Cell
	lastMove Coord

	history []snapshot
	histPos int
}

// New creates a game on a size×size×size board, seeded with the standard
// 2×2×2 starting cube centered on the midpoint, colors alternating by
// coordinate-sum parity. Black moves first. Sizes below 2 cannot be seeded
// legally and are not supported.
func New(size int) *Game {
	g := &Game{
		size:     size,
		board:    NewBoard(size),
		player:   Black,
		lastMove: NoCoord,
	}
	mid := size / 2
	for x := mid - 1; x <= mid; x++ {
		for y := mid - 1; y <= mid; y++ {
			for z := mid - 1; z <= mid; z++ {
				if !g.OnBoard(x, y, z) {
					continue
				}
				if (x+y+z)%2 == 0 {
					g.board[x][y][z] = Black
				} else {
					g.board[x][y][z] = White
				}
			}
		}
	}
	g.saveState(NoCoord, Empty)
	return g
}

// Size returns the board edge length.
func (g *Game) Size() int {
	return g.size
}

// At returns the content of cell (x, y, z). Coordinates must be on board.
func (g *Game) At(x, y, z int) Cell {
	return g.board[x][y][z]
}

// CurrentPlayer returns whose turn it is.
func (g *Game) CurrentPlayer() Cell {
	return g.player
}

// LastMove returns the coordinate of the most recent move and true, or
// NoCoord and false if the current position has no preceding move.
func (g *Game) LastMove() (Coord, bool) {
	return g.lastMove, g.lastMove != NoCoord
}

// OnBoard reports whether (x, y, z) lies within the cube.
func (g *Game) OnBoard(x, y, z int) bool {
	return x >= 0 && x < g.size &&
		y >= 0 && y < g.size &&
		z >= 0 && z < g.size
}

// runFrom walks from (x, y, z) in direction d and returns the contiguous
// run of opponent stones immediately adjacent to the origin, provided the
// run is closed off on board by a stone of p. Any other terminator (board
// edge, empty cell, or an immediate own stone) yields nil.
func (g *Game) runFrom(x, y, z int, d Coord, p Cell) []Coord {
	opp := Opponent(p)
	var run []Coord
	cx, cy, cz := x+d.X, y+d.Y, z+d.Z
	for g.OnBoard(cx, cy, cz) && g.board[cx][cy][cz] == opp {
		run = append(run, Coord{X: cx, Y: cy, Z: cz})
		cx, cy, cz = cx+d.X, cy+d.Y, cz+d.Z
	}
	if len(run) == 0 {
		return nil
	}
	if !g.OnBoard(cx, cy, cz) || g.board[cx][cy][cz] != p {
		return nil
	}
	return run
}

// CanFlip reports whether placing a stone of p at (x, y, z) would capture
// in at least one direction. Pure query, no mutation.
func (g *Game) CanFlip(x, y, z int, p Cell) bool {
	for _, d := range directions {
		if g.runFrom(x, y, z, d, p) != nil {
			return true
		}
	}
	return false
}

// flipsFor collects every stone captured by placing p at (x, y, z), across
// all 26 directions. Each cell is visited by at most one direction, so the
// result is duplicate-free.
func (g *Game) flipsFor(x, y, z int, p Cell) []Coord {
	var flips []Coord
	for _, d := range directions {
		flips = append(flips, g.runFrom(x, y, z, d, p)...)
	}
	return flips
}

// ValidMoves returns every empty cell where p could capture. The scan order
// is fixed (x, then y, then z), so the result is deterministic and free of
// duplicates.
func (g *Game) ValidMoves(p Cell) []Coord {
	var moves []Coord
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			for z := 0; z < g.size; z++ {
				if g.board[x][y][z] != Empty {
					continue
				}
				if g.CanFlip(x, y, z, p) {
					moves = append(moves, Coord{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return moves
}

// HasValidMove reports whether p has at least one legal move.
func (g *Game) HasValidMove(p Cell) bool {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			for z := 0; z < g.size; z++ {
				if g.board[x][y][z] == Empty && g.CanFlip(x, y, z, p) {
					return true
				}
			}
		}
	}
	return false
}

// MakeMove places a stone of p at (x, y, z) if the move captures in at
// least one direction, flips the captured stones, and appends a history
// snapshot. Returns false and leaves the board untouched when the move is
// illegal. The turn is not switched; callers do that explicitly.
func (g *Game) MakeMove(x, y, z int, p Cell) bool {
	if !g.OnBoard(x, y, z) || g.board[x][y][z] != Empty {
		return false
	}
	flips := g.flipsFor(x, y, z, p)
	if len(flips) == 0 {
		return false
	}
	g.board[x][y][z] = p
	for _, c := range flips {
		g.board[c.X][c.Y][c.Z] = p
	}
	g.lastMove = Coord{X: x, Y: y, Z: z}
	g.saveState(g.lastMove, p)
	return true
}

// SwitchPlayer flips the current turn.
func (g *Game) SwitchPlayer() {
	g.player = Opponent(g.player)
}

// CountStones returns the number of black and white stones on the board.
func (g *Game) CountStones() (black, white int) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			for z := 0; z < g.size; z++ {
				switch g.board[x][y][z] {
				case Black:
					black++
				case White:
					white++
				}
			}
		}
	}
	return black, white
}
