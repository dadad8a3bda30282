package mazegen

// MaskFunc reports whether the cell at (x, y) belongs to the maze. Cells
// outside the mask are permanently walled off and excluded from both
// generation and solving.
type MaskFunc func(x, y, width, height int) bool

// heartMask is the implicit-equation heart used when Maze.Heart is set:
// (px² + py² − 1)³ − px²·py³ ≤ 0 with the grid scaled so the shape fills
// most of it.
func heartMask(x, y, width, height int) bool {
	py := (float64(height)/2 - float64(y)) / (float64(height) / 2.5)
	px := (float64(x) - float64(width)/2) / (float64(width) / 2.5)
	py += 0.2

	eq := (px*px+py*py-1)*(px*px+py*py-1)*(px*px+py*py-1) - px*px*py*py*py
	return eq <= 0
}

// fortyTwoOffsets lists the blocked cells of the "42" pattern relative to
// the central cell, as (dx, dy) pairs.
var fortyTwoOffsets = [][2]int{
	// the "4"
	{-1, 0}, {-2, 0}, {-3, 0},
	{-3, -1}, {-3, -2},
	{-1, 1}, {-1, 2},
	// the "2"
	{1, 0}, {2, 0}, {3, 0},
	{3, -1}, {3, -2}, {2, -2}, {1, -2},
	{1, 1}, {1, 2}, {2, 2}, {3, 2},
}

// fortyTwoCells returns the flat indices blocked by the "42" pattern
// centered in a width×height grid. The grid must be at least 9×7.
func fortyTwoCells(width, height int) ([]int, error) {
	if width <= 8 || height <= 6 {
		return nil, ErrGridTooSmall
	}

	cx, cy := width/2, height/2
	cells := make([]int, 0, len(fortyTwoOffsets))
	for _, off := range fortyTwoOffsets {
		cells = append(cells, (cy+off[1])*width+cx+off[0])
	}
	return cells, nil
}

// eligibleCells computes which cells participate in the maze given the
// configured masks. It returns a per-cell membership slice.
func eligibleCells(m *Maze, mask MaskFunc) ([]bool, error) {
	eligible := make([]bool, m.Width*m.Height)
	for i := range eligible {
		eligible[i] = true
	}

	if mask == nil && m.Heart {
		mask = heartMask
	}
	if mask != nil {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				eligible[y*m.Width+x] = mask(x, y, m.Width, m.Height)
			}
		}
	}

	if m.FortyTwo {
		blocked, err := fortyTwoCells(m.Width, m.Height)
		if err != nil {
			return nil, err
		}
		for _, c := range blocked {
			eligible[c] = false
		}
	}

	return eligible, nil
}

// maskConnected verifies every eligible cell is reachable from start
// walking only through eligible 4-neighbors.
func maskConnected(m *Maze, eligible []bool, start int) bool {
	total := 0
	for _, ok := range eligible {
		if ok {
			total++
		}
	}
	if total == 0 || !eligible[start] {
		return false
	}

	seen := make([]bool, len(eligible))
	seen[start] = true
	queue := []int{start}
	count := 1
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{North, South, East, West} {
			n, ok := m.neighbor(c, d)
			if !ok || seen[n] || !eligible[n] {
				continue
			}
			seen[n] = true
			count++
			queue = append(queue, n)
		}
	}

	return count == total
}
