package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bfsDistance is an independent shortest-distance computation used to
// cross-check the solver.
func bfsDistance(m *Maze, from, to int) int {
	dist := make([]int, len(m.Map))
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{North, South, East, West} {
			if m.HasWall(c, d) {
				continue
			}
			if n, ok := m.neighbor(c, d); ok && dist[n] == -1 {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist[to]
}

func TestSolveInstant(t *testing.T) {
	m := mustGenerate(t, Config{Width: 9, Height: 7, Exit: Point{8, 6}, IsPerfect: true}, 3)

	var p PathFinder
	path, err := p.SolveInstant(m)
	require.NoError(t, err)

	assert.Equal(t, m.Entry, path[0])
	assert.Equal(t, m.Exit, path[len(path)-1])
	assert.Equal(t, bfsDistance(m, m.Entry, m.Exit)+1, len(path), "BFS returns a shortest path")

	for i := 0; i < len(path)-1; i++ {
		d, ok := m.directionBetween(path[i], path[i+1])
		require.True(t, ok, "consecutive path cells are neighbors")
		assert.False(t, m.HasWall(path[i], d), "the path never crosses a wall")
	}
}

func TestSolveStepwise(t *testing.T) {
	m := mustGenerate(t, Config{Width: 7, Height: 7, Exit: Point{6, 6}}, 31)

	var p PathFinder
	instant, err := p.SolveInstant(m)
	require.NoError(t, err)

	search, err := p.Start(m)
	require.NoError(t, err)

	var last SearchSnapshot
	lastVisited := 0
	for {
		snap, done := search.Step()
		assert.GreaterOrEqual(t, len(snap.Visited), lastVisited, "frontier only grows")
		lastVisited = len(snap.Visited)
		if done {
			last = snap
			break
		}
		assert.Empty(t, snap.Path, "path appears only on completion")
	}

	assert.True(t, search.Done())
	stepped, err := search.Result()
	require.NoError(t, err)
	assert.Equal(t, instant, stepped)
	assert.Equal(t, instant, last.Path)
}

func TestSolveTrivial(t *testing.T) {
	m := mustGenerate(t, Config{Width: 4, Height: 4, Exit: Point{0, 0}, IsPerfect: true}, 6)

	var p PathFinder
	path, err := p.SolveInstant(m)
	require.NoError(t, err)
	assert.Equal(t, []int{m.Entry}, path, "entry equals exit")
}

func TestSolveUnreachable(t *testing.T) {
	// A never-generated maze is fully walled, so nothing is reachable.
	m, err := New(Config{Width: 3, Height: 3, Exit: Point{2, 2}})
	require.NoError(t, err)

	var p PathFinder
	_, err = p.SolveInstant(m)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSolveEmptyMap(t *testing.T) {
	var p PathFinder
	_, err := p.Start(&Maze{Width: 3, Height: 3, Exit: 8})
	assert.ErrorIs(t, err, ErrEmptyMap)
}

func TestDirectionsString(t *testing.T) {
	m := mustGenerate(t, Config{Width: 5, Height: 5, Exit: Point{4, 4}, IsPerfect: true}, 42)

	t.Run("round trip through symbols", func(t *testing.T) {
		var p PathFinder
		path, err := p.SolveInstant(m)
		require.NoError(t, err)

		directions, err := DirectionsString(m, path)
		require.NoError(t, err)
		assert.Len(t, directions, len(path)-1)

		replayed, err := FollowDirections(m, m.Entry, directions)
		require.NoError(t, err)
		assert.Equal(t, path, replayed)
	})

	t.Run("rejects non-adjacent cells", func(t *testing.T) {
		_, err := DirectionsString(m, []int{0, 2})
		assert.ErrorIs(t, err, ErrInvalidPath)

		_, err = DirectionsString(m, []int{0, 6}) // diagonal
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("rejects row-wrapping east steps", func(t *testing.T) {
		_, err := DirectionsString(m, []int{4, 5})
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("rejects unknown symbols and grid exits", func(t *testing.T) {
		_, err := FollowDirections(m, m.Entry, "X")
		assert.ErrorIs(t, err, ErrInvalidPath)

		_, err = FollowDirections(m, m.Entry, "N") // off the top edge
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("empty path encodes to empty string", func(t *testing.T) {
		directions, err := DirectionsString(m, nil)
		require.NoError(t, err)
		assert.Empty(t, directions)
	})
}
