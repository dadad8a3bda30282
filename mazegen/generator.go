package mazegen

import (
	"math/bits"
	"math/rand"
)

// Generator builds mazes with Wilson's algorithm: repeated loop-erased
// random walks from cells outside the tree until the tree spans every
// eligible cell. Loop erasure is what keeps the sampling unbiased over
// all spanning trees.
type Generator struct {
	// Mask overrides the built-in heart mask when set. Mostly useful for
	// custom shapes and tests.
	Mask MaskFunc
}

// GenSnapshot is the externally observable state after one generation
// step: the cells committed to the tree so far, in commit order, and the
// uncommitted walk currently being carved.
type GenSnapshot struct {
	Found []int
	Walk  []int
}

// Generation is an in-progress maze generation. It is single-owner: the
// maze map must not be read or written by anyone else until Step reports
// done.
type Generation struct {
	maze *Maze
	rng  *rand.Rand

	eligible  []bool
	neighbors [][]int

	available    []int
	availablePos map[int]int

	inTree []bool
	found  []int

	walk    []int
	walkPos map[int]int
	cur     int

	done bool
}

// Start validates the maze against its masks and prepares a generation
// run. The map is reset to fully walled; no wall is touched until the
// first walk commits, so a DisconnectedMask failure leaves the map
// untouched. The seed fully determines the final map.
func (g *Generator) Start(m *Maze, seed int64) (*Generation, error) {
	m.resetMap()

	eligible, err := eligibleCells(m, g.Mask)
	if err != nil {
		return nil, err
	}
	if !eligible[m.Entry] || !eligible[m.Exit] {
		return nil, ErrOutOfBounds
	}
	if !maskConnected(m, eligible, m.Entry) {
		return nil, ErrDisconnectedMask
	}

	gen := &Generation{
		maze:         m,
		rng:          rand.New(rand.NewSource(seed)),
		eligible:     eligible,
		neighbors:    buildAdjacency(m, eligible),
		availablePos: make(map[int]int),
		inTree:       make([]bool, len(eligible)),
		walkPos:      make(map[int]int),
	}
	for c, ok := range eligible {
		if ok {
			gen.availablePos[c] = len(gen.available)
			gen.available = append(gen.available, c)
		}
	}

	// Seed the tree with one random eligible cell.
	root := gen.takeRandomAvailable()
	gen.inTree[root] = true
	gen.found = append(gen.found, root)

	return gen, nil
}

// GenerateInstant runs a full generation and returns the hex encoding of
// the final map.
func (g *Generator) GenerateInstant(m *Maze, seed int64) (string, error) {
	gen, err := g.Start(m, seed)
	if err != nil {
		return "", err
	}
	for {
		if _, done := gen.Step(); done {
			return m.EncodeMap()
		}
	}
}

// Done reports whether the run has finished.
func (gn *Generation) Done() bool {
	return gn.done
}

// Step advances the generation by one unit of work: starting a walk,
// extending it by one cell, erasing a loop, or committing a finished walk
// to the tree. It returns the observable state and whether the run is
// complete. Stepping a finished run is a no-op.
func (gn *Generation) Step() (GenSnapshot, bool) {
	if gn.done {
		return gn.snapshot(), true
	}

	if len(gn.walk) == 0 {
		if len(gn.available) == 0 {
			gn.finish()
			return gn.snapshot(), true
		}
		gn.startWalk()
		return gn.snapshot(), false
	}

	next := gn.neighbors[gn.cur][gn.rng.Intn(len(gn.neighbors[gn.cur]))]
	switch {
	case gn.inTree[next]:
		gn.walk = append(gn.walk, next)
		gn.commitWalk()
	case gn.onWalk(next):
		gn.eraseLoop(next)
	default:
		gn.extendWalk(next)
	}
	return gn.snapshot(), false
}

func (gn *Generation) startWalk() {
	start := gn.takeRandomAvailable()
	gn.walk = append(gn.walk, start)
	gn.walkPos[start] = 0
	gn.maze.Map[start] |= flagOnWalk
	gn.cur = start
}

func (gn *Generation) extendWalk(next int) {
	gn.walkPos[next] = len(gn.walk)
	gn.walk = append(gn.walk, next)
	gn.maze.Map[next] |= flagOnWalk
	gn.removeAvailable(next)
	gn.cur = next
}

func (gn *Generation) onWalk(cell int) bool {
	_, ok := gn.walkPos[cell]
	return ok
}

// eraseLoop truncates the walk back to the first occurrence of cell,
// returning the erased cells to the available pool.
func (gn *Generation) eraseLoop(cell int) {
	keep := gn.walkPos[cell] + 1
	for _, c := range gn.walk[keep:] {
		gn.maze.Map[c] &^= flagOnWalk
		delete(gn.walkPos, c)
		gn.addAvailable(c)
	}
	gn.walk = gn.walk[:keep]
	gn.cur = cell
}

// commitWalk carves the loop-erased walk into the map and marks its cells
// as part of the tree. The last walk cell is the tree cell the walk
// terminated on.
func (gn *Generation) commitWalk() {
	for i := 0; i < len(gn.walk)-1; i++ {
		d, _ := gn.maze.directionBetween(gn.walk[i], gn.walk[i+1])
		gn.maze.removeWall(gn.walk[i], d)
	}
	for _, c := range gn.walk[:len(gn.walk)-1] {
		gn.maze.Map[c] &^= flagOnWalk
		gn.inTree[c] = true
		gn.found = append(gn.found, c)
	}
	gn.walk = gn.walk[:0]
	gn.walkPos = make(map[int]int)
}

func (gn *Generation) finish() {
	if !gn.maze.IsPerfect {
		gn.carveLoops()
	}
	gn.done = true
}

// carveLoops perforates the spanning tree for imperfect mazes: every
// dead end (a cell with exactly three walls) gets one extra passage to a
// random still-walled eligible neighbor. Each removal closes exactly one
// cycle; boundary walls have no neighbor and are never candidates.
func (gn *Generation) carveLoops() {
	m := gn.maze
	for c := range m.Map {
		if !gn.inTree[c] || bits.OnesCount8(m.Map[c]&allWalls) != 3 {
			continue
		}
		var dirs []Direction
		for _, d := range []Direction{North, East, South, West} {
			n, ok := m.neighbor(c, d)
			if ok && gn.eligible[n] && m.HasWall(c, d) {
				dirs = append(dirs, d)
			}
		}
		if len(dirs) == 0 {
			continue
		}
		m.removeWall(c, dirs[gn.rng.Intn(len(dirs))])
	}
}

func (gn *Generation) snapshot() GenSnapshot {
	snap := GenSnapshot{
		Found: make([]int, len(gn.found)),
		Walk:  make([]int, len(gn.walk)),
	}
	copy(snap.Found, gn.found)
	copy(snap.Walk, gn.walk)
	return snap
}

func (gn *Generation) takeRandomAvailable() int {
	i := gn.rng.Intn(len(gn.available))
	cell := gn.available[i]
	gn.removeAvailable(cell)
	return cell
}

func (gn *Generation) addAvailable(cell int) {
	gn.availablePos[cell] = len(gn.available)
	gn.available = append(gn.available, cell)
}

func (gn *Generation) removeAvailable(cell int) {
	i := gn.availablePos[cell]
	last := len(gn.available) - 1
	gn.available[i] = gn.available[last]
	gn.availablePos[gn.available[i]] = i
	gn.available = gn.available[:last]
	delete(gn.availablePos, cell)
}

// buildAdjacency precomputes, per cell, the eligible 4-neighbors the
// random walk may move to.
func buildAdjacency(m *Maze, eligible []bool) [][]int {
	adj := make([][]int, m.Width*m.Height)
	for c := range adj {
		if !eligible[c] {
			continue
		}
		for _, d := range []Direction{North, East, South, West} {
			if n, ok := m.neighbor(c, d); ok && eligible[n] {
				adj[c] = append(adj[c], n)
			}
		}
	}
	return adj
}
