package mazegen

// PathFinder finds the shortest entry-to-exit path through a generated
// maze with a breadth-first search over the open walls.
type PathFinder struct{}

// SearchSnapshot is the externally observable state after one search
// step: every cell visited so far, in visit order. Path is populated on
// the final snapshot only.
type SearchSnapshot struct {
	Visited []int
	Path    []int
}

// Search is an in-progress shortest-path search over a maze. The maze
// map must stay unchanged until the search completes.
type Search struct {
	maze *Maze

	queue   []int
	seen    []bool
	prev    []int
	visited []int

	done bool
	path []int
	err  error
}

// bfsOrder fixes the neighbor expansion order, which breaks ties between
// equal-length paths deterministically.
var bfsOrder = []Direction{North, South, East, West}

// Start prepares a search run over a generated maze.
func (p *PathFinder) Start(m *Maze) (*Search, error) {
	if len(m.Map) != m.Width*m.Height {
		return nil, ErrEmptyMap
	}

	s := &Search{
		maze: m,
		seen: make([]bool, len(m.Map)),
		prev: make([]int, len(m.Map)),
	}
	for i := range s.prev {
		s.prev[i] = -1
	}
	s.seen[m.Entry] = true
	s.queue = append(s.queue, m.Entry)
	return s, nil
}

// SolveInstant runs a full search and returns the shortest path from
// entry to exit, both inclusive. It fails with ErrUnreachable when the
// map does not connect them, which signals a defective map rather than a
// retryable condition.
func (p *PathFinder) SolveInstant(m *Maze) ([]int, error) {
	s, err := p.Start(m)
	if err != nil {
		return nil, err
	}
	for {
		if _, done := s.Step(); done {
			return s.Result()
		}
	}
}

// Done reports whether the search has finished.
func (s *Search) Done() bool {
	return s.done
}

// Step dequeues and expands one cell of the BFS frontier. It returns the
// observable state and whether the search is complete; the final
// snapshot carries the reconstructed path. Stepping a finished search is
// a no-op.
func (s *Search) Step() (SearchSnapshot, bool) {
	if s.done {
		return s.snapshot(), true
	}
	if len(s.queue) == 0 {
		s.done = true
		s.err = ErrUnreachable
		return s.snapshot(), true
	}

	cur := s.queue[0]
	s.queue = s.queue[1:]
	s.visited = append(s.visited, cur)

	if cur == s.maze.Exit {
		s.done = true
		s.path = s.reconstruct()
		return s.snapshot(), true
	}

	for _, d := range bfsOrder {
		if s.maze.HasWall(cur, d) {
			continue
		}
		n, ok := s.maze.neighbor(cur, d)
		if !ok || s.seen[n] {
			continue
		}
		s.seen[n] = true
		s.prev[n] = cur
		s.queue = append(s.queue, n)
	}

	return s.snapshot(), false
}

// Result returns the shortest path once the search is done.
func (s *Search) Result() ([]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.path, nil
}

func (s *Search) reconstruct() []int {
	var path []int
	for c := s.maze.Exit; c != -1; c = s.prev[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *Search) snapshot() SearchSnapshot {
	snap := SearchSnapshot{Visited: make([]int, len(s.visited))}
	copy(snap.Visited, s.visited)
	if s.done && s.err == nil {
		snap.Path = make([]int, len(s.path))
		copy(snap.Path, s.path)
	}
	return snap
}

// DirectionsString encodes a cell path as one N/S/E/W symbol per step. It
// fails with ErrInvalidPath when consecutive cells are not 4-neighbors.
func DirectionsString(m *Maze, path []int) (string, error) {
	if len(path) == 0 {
		return "", nil
	}

	symbols := make([]byte, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		d, ok := m.directionBetween(path[i], path[i+1])
		if !ok {
			return "", ErrInvalidPath
		}
		symbols = append(symbols, d.Symbol())
	}
	return string(symbols), nil
}

// FollowDirections replays a direction string from a start cell and
// returns the resulting cell path, start inclusive. It fails with
// ErrInvalidPath when a step leaves the grid or uses an unknown symbol.
func FollowDirections(m *Maze, start int, directions string) ([]int, error) {
	if start < 0 || start >= m.Width*m.Height {
		return nil, ErrOutOfBounds
	}

	path := []int{start}
	cur := start
	for i := 0; i < len(directions); i++ {
		var d Direction
		switch directions[i] {
		case 'N':
			d = North
		case 'S':
			d = South
		case 'E':
			d = East
		case 'W':
			d = West
		default:
			return nil, ErrInvalidPath
		}
		n, ok := m.neighbor(cur, d)
		if !ok {
			return nil, ErrInvalidPath
		}
		path = append(path, n)
		cur = n
	}
	return path, nil
}
