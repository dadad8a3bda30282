package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openEdgeCount counts carved passages, looking only east and south so
// each passage is counted once.
func openEdgeCount(m *Maze) int {
	count := 0
	for c := range m.Map {
		if !m.HasWall(c, East) {
			count++
		}
		if !m.HasWall(c, South) {
			count++
		}
	}
	return count
}

// reachableFrom runs an independent flood fill over the carved passages.
func reachableFrom(m *Maze, start int) map[int]bool {
	seen := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{North, South, East, West} {
			if m.HasWall(c, d) {
				continue
			}
			if n, ok := m.neighbor(c, d); ok && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

func mustGenerate(t *testing.T, cfg Config, seed int64) *Maze {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	var g Generator
	_, err = g.GenerateInstant(m, seed)
	require.NoError(t, err)
	return m
}

func TestGenerateSpanningTree(t *testing.T) {
	m := mustGenerate(t, Config{Width: 8, Height: 6, Exit: Point{7, 5}, IsPerfect: true}, 7)

	cells := m.Width * m.Height
	assert.Equal(t, cells-1, openEdgeCount(m), "a spanning tree has cells-1 edges")
	assert.Len(t, reachableFrom(m, m.Entry), cells, "every cell is reachable")
	for _, cell := range m.Map {
		assert.LessOrEqual(t, cell, allWalls, "no transient flags survive generation")
	}
}

func TestGenerateImperfect(t *testing.T) {
	m := mustGenerate(t, Config{Width: 6, Height: 6, Exit: Point{5, 5}}, 21)

	cells := m.Width * m.Height
	assert.Len(t, reachableFrom(m, m.Entry), cells)
	assert.Greater(t, openEdgeCount(m), cells-1, "loop carving adds at least one cycle")

	t.Run("boundary walls stay intact", func(t *testing.T) {
		for x := 0; x < m.Width; x++ {
			assert.True(t, m.HasWall(x, North))
			assert.True(t, m.HasWall((m.Height-1)*m.Width+x, South))
		}
		for y := 0; y < m.Height; y++ {
			assert.True(t, m.HasWall(y*m.Width, West))
			assert.True(t, m.HasWall(y*m.Width+m.Width-1, East))
		}
	})
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := Config{Width: 10, Height: 7, Exit: Point{9, 6}, IsPerfect: true}

	t.Run("same seed, same map", func(t *testing.T) {
		var g Generator
		a := mustGenerate(t, cfg, 1234)
		b := mustGenerate(t, cfg, 1234)
		assert.Equal(t, a.Map, b.Map)

		encodedA, err := a.EncodeMap()
		require.NoError(t, err)
		encodedB, err := g.GenerateInstant(b, 1234)
		require.NoError(t, err)
		assert.Equal(t, encodedA, encodedB)
	})

	t.Run("stepwise drain matches instant", func(t *testing.T) {
		instant := mustGenerate(t, cfg, 99)

		stepped, err := New(cfg)
		require.NoError(t, err)
		var g Generator
		run, err := g.Start(stepped, 99)
		require.NoError(t, err)

		steps := 0
		for {
			if _, done := run.Step(); done {
				break
			}
			steps++
		}
		assert.True(t, run.Done())
		assert.Positive(t, steps)
		assert.Equal(t, instant.Map, stepped.Map)
	})
}

func TestGenerateSnapshots(t *testing.T) {
	m, err := New(Config{Width: 5, Height: 5, Exit: Point{4, 4}, IsPerfect: true})
	require.NoError(t, err)

	var g Generator
	run, err := g.Start(m, 8)
	require.NoError(t, err)

	sawWalk := false
	lastFound := 1
	for {
		snap, done := run.Step()
		assert.GreaterOrEqual(t, len(snap.Found), lastFound, "tree never shrinks")
		lastFound = len(snap.Found)
		if len(snap.Walk) > 0 {
			sawWalk = true
		}
		if done {
			assert.Len(t, snap.Found, 25)
			assert.Empty(t, snap.Walk)
			break
		}
	}
	assert.True(t, sawWalk, "intermediate walks are observable")
}

func TestGenerateDegenerateGrids(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 1, Height: 9, Exit: Point{0, 8}, IsPerfect: true},
		{Width: 9, Height: 1, Exit: Point{8, 0}, IsPerfect: true},
		{Width: 1, Height: 1, IsPerfect: true},
	} {
		m := mustGenerate(t, cfg, 4)
		cells := m.Width * m.Height
		assert.Equal(t, cells-1, openEdgeCount(m))
		assert.Len(t, reachableFrom(m, m.Entry), cells)
	}
}

func TestGenerateSeed42(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Entry: Point{0, 0}, Exit: Point{4, 4}, IsPerfect: true}

	first := mustGenerate(t, cfg, 42)
	second := mustGenerate(t, cfg, 42)
	assert.Equal(t, first.Map, second.Map, "seed 42 pins the maze")

	var p PathFinder
	path, err := p.SolveInstant(first)
	require.NoError(t, err)

	directions, err := DirectionsString(first, path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(directions), 8, "path can never beat the Manhattan distance")
	for i := 0; i < len(directions); i++ {
		assert.Contains(t, "NSEW", string(directions[i]))
	}
}

func TestGenerateDisconnectedMask(t *testing.T) {
	m, err := New(Config{Width: 5, Height: 3, Exit: Point{4, 2}, IsPerfect: true})
	require.NoError(t, err)

	// Mask out the middle column, splitting entry and exit.
	g := Generator{Mask: func(x, y, width, height int) bool { return x != 2 }}
	_, err = g.Start(m, 5)
	assert.ErrorIs(t, err, ErrDisconnectedMask)

	for _, cell := range m.Map {
		assert.Equal(t, allWalls, cell, "no wall is touched on failure")
	}
}

func TestGenerateHeart(t *testing.T) {
	cfg := Config{
		Width:     20,
		Height:    20,
		Entry:     Point{10, 5},
		Exit:      Point{10, 15},
		IsPerfect: true,
		Heart:     true,
	}
	m := mustGenerate(t, cfg, 17)

	eligible := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := y*m.Width + x
			if heartMask(x, y, m.Width, m.Height) {
				eligible++
			} else {
				assert.Equal(t, allWalls, m.Map[c], "masked-out cells stay fully walled")
			}
		}
	}

	assert.Len(t, reachableFrom(m, m.Entry), eligible)
	assert.Equal(t, eligible-1, openEdgeCount(m))

	var p PathFinder
	path, err := p.SolveInstant(m)
	require.NoError(t, err)
	for _, c := range path {
		pt := m.CellPoint(c)
		assert.True(t, heartMask(pt.X, pt.Y, m.Width, m.Height), "path stays inside the mask")
	}
}

func TestGenerateFortyTwo(t *testing.T) {
	t.Run("rejects too-small grids", func(t *testing.T) {
		m, err := New(Config{Width: 8, Height: 6, Exit: Point{7, 5}, FortyTwo: true})
		require.NoError(t, err)
		var g Generator
		_, err = g.Start(m, 1)
		assert.ErrorIs(t, err, ErrGridTooSmall)
	})

	t.Run("pattern cells become obstacles", func(t *testing.T) {
		m := mustGenerate(t, Config{Width: 11, Height: 9, Exit: Point{10, 8}, IsPerfect: true, FortyTwo: true}, 2)

		blocked, err := fortyTwoCells(m.Width, m.Height)
		require.NoError(t, err)
		for _, c := range blocked {
			assert.Equal(t, allWalls, m.Map[c])
		}
		assert.Len(t, reachableFrom(m, m.Entry), m.Width*m.Height-len(blocked))
	})

	t.Run("rejects endpoints on the pattern", func(t *testing.T) {
		m, err := New(Config{Width: 11, Height: 9, Entry: Point{4, 4}, Exit: Point{10, 8}, FortyTwo: true})
		require.NoError(t, err)
		var g Generator
		_, err = g.Start(m, 1)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}
