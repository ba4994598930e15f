package maze

// Solution is the unique route through a carved maze.
type Solution struct {
	// Path lists the route's cells ordered from the exit cell back to the
	// entrance cell. Callers wanting entrance-to-exit order walk it from the
	// last element toward index 0.
	Path []CellPosition

	// Steps is the number of edges on the route, len(Path) - 1.
	Steps int
}

// solveOrder fixes the neighbor exploration order. The path through a
// perfect maze is unique, so no shuffling is needed or wanted.
var solveOrder = []string{North, East, South, West}

// solveFrame is one cell of the search with the index of the next direction
// to try from it.
type solveFrame struct {
	pos  CellPosition
	next int
}

// Solve finds the unique path from the maze's entrance to its exit with a
// fixed-order depth-first search. It keeps its own visited set; the cells'
// Visited flags belong to play and are not touched.
//
// A generated maze is a spanning tree, so Solve always succeeds on one.
// ErrDisconnected therefore signals a broken maze invariant, not a solvable
// failure.
func Solve(m *Maze) (*Solution, error) {
	visited := make([][]bool, m.height)
	for i := range visited {
		visited[i] = make([]bool, m.width)
	}

	start := m.entrance.Pos
	visited[start.Row][start.Col] = true
	stack := []solveFrame{{pos: start}}

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]

		if frame.pos == m.exit.Pos {
			// The stack holds the entrance-to-exit branch; emit it reversed.
			path := make([]CellPosition, 0, len(stack))
			for i := len(stack) - 1; i >= 0; i-- {
				path = append(path, stack[i].pos)
			}
			return &Solution{Path: path, Steps: len(path) - 1}, nil
		}

		advanced := false
		for frame.next < len(solveOrder) {
			direction := solveOrder[frame.next]
			frame.next++

			if m.CellAt(frame.pos).HasWall(direction) {
				continue
			}
			to := frame.pos.Step(direction)
			// Open boundary walls (the doors) lead outside the grid.
			if !m.InBound(to.Row, to.Col) {
				continue
			}
			if visited[to.Row][to.Col] {
				continue
			}
			visited[to.Row][to.Col] = true
			stack = append(stack, solveFrame{pos: to})
			advanced = true
			break
		}

		if !advanced {
			// Dead branch; abandon it. The maze is a tree, so no other route
			// through these cells exists.
			stack = stack[:len(stack)-1]
		}
	}

	return nil, ErrDisconnected
}
