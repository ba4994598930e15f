package maze

import "math/rand"

// carveFrame holds one cell of the depth-first walk together with the moves
// out of it that have not been tried yet, in the shuffled order fixed when
// the cell was first reached.
type carveFrame struct {
	pos   CellPosition
	moves []Move
}

// Generate builds a perfect maze: every cell reachable, no cycles, exactly
// one open boundary wall on the entrance cell and one on the exit cell.
// The configuration is validated in full before anything is allocated, so a
// failed Generate leaves no state behind.
func Generate(cfg Config) (*Maze, error) {
	m, err := newMaze(cfg)
	if err != nil {
		return nil, err
	}
	m.carve()
	m.installDoors()
	return m, nil
}

// carve runs a randomized depth-first backtracker rooted at the exit cell.
// The walk keeps an explicit frame stack instead of recursing so that large
// grids do not exhaust the call stack, while preserving the traversal order
// of the recursive form: neighbors are shuffled once per cell and consumed
// in that order across backtracks.
func (m *Maze) carve() {
	visited := make(map[CellPosition]struct{}, m.width*m.height)
	visited[m.exit.Pos] = struct{}{}
	stack := []carveFrame{m.newCarveFrame(m.exit.Pos)}

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]

		advanced := false
		for len(frame.moves) > 0 {
			move := frame.moves[0]
			frame.moves = frame.moves[1:]

			if _, seen := visited[move.To]; seen {
				continue
			}
			m.OpenWall(move)
			visited[move.To] = struct{}{}
			stack = append(stack, m.newCarveFrame(move.To))
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// newCarveFrame builds a frame with the cell's neighbors in unbiased random
// order. rand.Shuffle performs a Fisher-Yates permutation, so every neighbor
// ordering is equally likely; branch density depends on this.
func (m *Maze) newCarveFrame(pos CellPosition) carveFrame {
	moves := m.Neighbors(pos)
	rand.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return carveFrame{pos: pos, moves: moves}
}

// installDoors opens the single designated boundary wall on the entrance
// cell and on the exit cell. These are the only outer walls ever opened.
func (m *Maze) installDoors() {
	m.CellAt(m.entrance.Pos).setWall(m.entrance.Side, false)
	m.CellAt(m.exit.Pos).setWall(m.exit.Side, false)
}
