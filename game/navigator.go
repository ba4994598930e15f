/*
Package game drives interactive play over a generated maze.

A Navigator owns one player's session: it validates and applies moves and
jumps, tracks the visited trail, detects completion, and answers the queries
a renderer needs for highlighting. A Playback replays the solved path on a
timer for the "show answer" feature.
*/
package game

import (
	"github.com/beka-birhanu/maze-quest/maze"
)

// FinishedPos is the sentinel position reported once the player has stepped
// out through the exit door. No further moves or jumps are accepted.
var FinishedPos = maze.CellPosition{Row: -1, Col: -1}

// Navigator is the state machine for one interactive play session. It is
// created in the playing state at the maze's entrance and reaches its
// terminal state when the player leaves through the exit door.
//
// Rejected moves and jumps are silent no-ops: they change no position and no
// counter, and the boolean result only tells the renderer whether anything
// needs redrawing.
type Navigator struct {
	maze     *maze.Maze
	solution *maze.Solution
	current  maze.CellPosition
	finished bool
	moves    int
	jumps    int
}

// NewNavigator starts a session at the maze's entrance cell, which counts as
// stood-on immediately.
func NewNavigator(m *maze.Maze, s *maze.Solution) *Navigator {
	n := &Navigator{
		maze:     m,
		solution: s,
		current:  m.Entrance().Pos,
	}
	m.CellAt(n.current).Visited = true
	return n
}

// Move attempts to step one cell in the given direction and reports whether
// the move was accepted.
//
// A move is rejected when the session is finished, when it would leave the
// maze back out through the entrance door, or when a wall blocks it. A move
// through the exit door from the exit cell finishes the session instead of
// changing the position.
func (n *Navigator) Move(direction string) bool {
	if n.finished {
		return false
	}
	if _, known := maze.Directions[direction]; !known {
		return false
	}

	// The entrance door is for coming in, never a way out.
	entrance := n.maze.Entrance()
	if n.current == entrance.Pos && direction == entrance.Side {
		return false
	}

	if n.maze.CellAt(n.current).HasWall(direction) {
		return false
	}

	exit := n.maze.Exit()
	if n.current == exit.Pos && direction == exit.Side {
		n.finished = true
		n.current = FinishedPos
		return true
	}

	to := n.current.Step(direction)
	if !n.maze.InBound(to.Row, to.Col) {
		return false
	}

	n.current = to
	n.maze.CellAt(to).Visited = true
	n.moves++
	return true
}

// JumpTo teleports the player onto a cell they have already stood on and
// reports whether the jump was accepted.
func (n *Navigator) JumpTo(pos maze.CellPosition) bool {
	if n.finished {
		return false
	}
	cell := n.maze.CellAt(pos)
	if cell == nil || !cell.Visited {
		return false
	}

	n.current = pos
	cell.Visited = true
	n.jumps++
	return true
}

// CurrentPos returns the player's position, or FinishedPos once the session
// has ended.
func (n *Navigator) CurrentPos() maze.CellPosition {
	return n.current
}

// Finished reports whether the player has left through the exit door.
func (n *Navigator) Finished() bool {
	return n.finished
}

// Moves returns the number of accepted single steps.
func (n *Navigator) Moves() int {
	return n.moves
}

// Jumps returns the number of accepted jumps.
func (n *Navigator) Jumps() int {
	return n.jumps
}

// StepsToSolve returns the length in edges of the maze's unique solution.
func (n *Navigator) StepsToSolve() int {
	return n.solution.Steps
}

// AccuracyPercent relates the optimal step count to the moves the player
// actually made. It is defined only once the session has finished and at
// least one move was counted; the second return value reports definedness.
func (n *Navigator) AccuracyPercent() (float64, bool) {
	if !n.finished || n.moves == 0 {
		return 0, false
	}
	return float64(n.solution.Steps) / float64(n.moves) * 100, true
}

// IsDecisionCell reports whether the cell offered the player an actual
// choice of direction: three or more open sides.
func (n *Navigator) IsDecisionCell(pos maze.CellPosition) bool {
	return n.maze.OpeningsCount(pos) >= 3
}

// IsOnVisitedPath reports whether the player has stood on the cell.
func (n *Navigator) IsOnVisitedPath(pos maze.CellPosition) bool {
	cell := n.maze.CellAt(pos)
	return cell != nil && cell.Visited
}
