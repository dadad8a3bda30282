/*
Package mazegen generates and solves rectangular mazes.

A maze is a flat row-major map of cells, each cell a small bitmask of its
four walls. Generation uses Wilson's algorithm (loop-erased random walks),
which samples uniformly among all spanning trees of the grid, optionally
restricted to a heart-shaped mask or perforated with loops for imperfect
mazes. Solving is a breadth-first search from entry to exit.

Both the generator and the solver are explicit step machines: Start
returns a run whose Step method advances one unit of work and exposes the
intermediate state, and the Instant helpers simply drain the machine.
Draining step-by-step or running instantly yields bit-identical maps for
the same seed.
*/
package mazegen

import (
	"math/rand"
	"strings"
)

// Point is an (x, y) cell coordinate, x growing east and y growing south.
type Point struct {
	X int
	Y int
}

// Config holds the parameters for a new maze.
type Config struct {
	Width     int
	Height    int
	Entry     Point
	Exit      Point
	IsPerfect bool // no loops when true
	Heart     bool // restrict the maze to a heart-shaped mask
	FortyTwo  bool // carve the "42" obstacle pattern in the center
}

// Maze is the grid descriptor and result buffer. Entry and Exit are flat
// indices (y*Width + x). Map is owned by whichever algorithm is currently
// running over it: the generator writes it, the solver reads it.
type Maze struct {
	Width     int
	Height    int
	Entry     int
	Exit      int
	IsPerfect bool
	Heart     bool
	FortyTwo  bool
	Map       []uint8
}

// New validates the configuration and returns an empty maze. The map is
// allocated fully walled; a Generator populates it.
func New(cfg Config) (*Maze, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimension
	}
	if !inBound(cfg.Entry, cfg.Width, cfg.Height) || !inBound(cfg.Exit, cfg.Width, cfg.Height) {
		return nil, ErrOutOfBounds
	}

	m := &Maze{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Entry:     cfg.Entry.Y*cfg.Width + cfg.Entry.X,
		Exit:      cfg.Exit.Y*cfg.Width + cfg.Exit.X,
		IsPerfect: cfg.IsPerfect,
		Heart:     cfg.Heart,
		FortyTwo:  cfg.FortyTwo,
	}
	m.resetMap()
	return m, nil
}

// SetWidth changes the maze width. The map is reallocated fully walled and
// entry/exit are reset to opposite corners of the new grid.
func (m *Maze) SetWidth(width int) error {
	if width <= 0 {
		return ErrInvalidDimension
	}
	if width != m.Width {
		m.Width = width
		m.resetMap()
		m.resetEndpoints()
	}
	return nil
}

// SetHeight changes the maze height. The map is reallocated fully walled
// and entry/exit are reset to opposite corners of the new grid.
func (m *Maze) SetHeight(height int) error {
	if height <= 0 {
		return ErrInvalidDimension
	}
	if height != m.Height {
		m.Height = height
		m.resetMap()
		m.resetEndpoints()
	}
	return nil
}

func (m *Maze) resetMap() {
	m.Map = make([]uint8, m.Width*m.Height)
	for i := range m.Map {
		m.Map[i] = allWalls
	}
}

func (m *Maze) resetEndpoints() {
	m.Entry = 0
	m.Exit = m.Width*m.Height - 1
}

// CellPoint converts a flat cell index back to coordinates.
func (m *Maze) CellPoint(cell int) Point {
	return Point{X: cell % m.Width, Y: cell / m.Width}
}

// HasWall reports whether the cell's wall toward d is present.
func (m *Maze) HasWall(cell int, d Direction) bool {
	return m.Map[cell]&d.bit() != 0
}

// neighbor returns the flat index of the cell adjacent to c in direction d
// and whether that cell exists in the grid.
func (m *Maze) neighbor(c int, d Direction) (int, bool) {
	x, y := c%m.Width, c/m.Width
	switch d {
	case North:
		y--
	case South:
		y++
	case East:
		x++
	case West:
		x--
	}
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0, false
	}
	return y*m.Width + x, true
}

// removeWall knocks down the wall between c and its neighbor toward d,
// on both sides.
func (m *Maze) removeWall(c int, d Direction) {
	n, ok := m.neighbor(c, d)
	if !ok {
		return
	}
	m.Map[c] &^= d.bit()
	m.Map[n] &^= d.Opposite().bit()
}

// directionBetween returns the direction of the single step from a to b.
// The second result is false when a and b are not 4-neighbors.
func (m *Maze) directionBetween(a, b int) (Direction, bool) {
	sameRow := a/m.Width == b/m.Width
	switch {
	case sameRow && b == a+1:
		return East, true
	case sameRow && b == a-1:
		return West, true
	case b == a+m.Width && b < m.Width*m.Height:
		return South, true
	case b == a-m.Width && b >= 0:
		return North, true
	}
	return 0, false
}

// String renders the maze as ASCII art, one "+---+" block per cell.
func (m *Maze) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")
	for y := 0; y < m.Height; y++ {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < m.Width; x++ {
			cell := m.Map[y*m.Width+x]
			if cell&wallEast != 0 {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
			if cell&wallSouth != 0 {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(cellRow + "\n")
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}

// RandomSeed returns a seed from the process-level random source, for
// callers that do not need reproducible mazes.
func RandomSeed() int64 {
	return rand.Int63()
}

func inBound(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
