package game

import (
	"testing"

	"github.com/beka-birhanu/maze-quest/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByOne builds the smallest playable maze: entrance at (0,0) opening
// west, exit at (0,1) opening east, the single internal wall carved away.
func twoByOne(t *testing.T) (*maze.Maze, *maze.Solution) {
	t.Helper()
	m, err := maze.Generate(maze.Config{
		Width:    2,
		Height:   1,
		Entrance: maze.Door{Pos: maze.CellPosition{Row: 0, Col: 0}, Side: maze.West},
		Exit:     maze.Door{Pos: maze.CellPosition{Row: 0, Col: 1}, Side: maze.East},
	})
	require.NoError(t, err)
	solution, err := maze.Solve(m)
	require.NoError(t, err)
	return m, solution
}

func TestNavigatorStartsAtEntrance(t *testing.T) {
	m, solution := twoByOne(t)
	nav := NewNavigator(m, solution)

	assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, nav.CurrentPos())
	assert.False(t, nav.Finished())
	assert.True(t, nav.IsOnVisitedPath(maze.CellPosition{Row: 0, Col: 0}))
	assert.False(t, nav.IsOnVisitedPath(maze.CellPosition{Row: 0, Col: 1}))
}

func TestNavigatorMove(t *testing.T) {
	t.Run("rejects moves into closed walls", func(t *testing.T) {
		m, solution := twoByOne(t)
		nav := NewNavigator(m, solution)

		assert.False(t, nav.Move(maze.North))
		assert.False(t, nav.Move(maze.South))
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, nav.CurrentPos())
		assert.Equal(t, 0, nav.Moves())
	})

	t.Run("rejects leaving back through the entrance door", func(t *testing.T) {
		m, solution := twoByOne(t)
		nav := NewNavigator(m, solution)

		// The entrance wall is open, the move is still refused.
		assert.False(t, m.CellAt(nav.CurrentPos()).HasWall(maze.West))
		assert.False(t, nav.Move(maze.West))
		assert.Equal(t, 0, nav.Moves())
	})

	t.Run("rejects unknown directions", func(t *testing.T) {
		m, solution := twoByOne(t)
		nav := NewNavigator(m, solution)

		assert.False(t, nav.Move("Sideways"))
		assert.Equal(t, 0, nav.Moves())
	})

	t.Run("steps through open walls and counts the move", func(t *testing.T) {
		m, solution := twoByOne(t)
		nav := NewNavigator(m, solution)

		assert.True(t, nav.Move(maze.East))
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 1}, nav.CurrentPos())
		assert.Equal(t, 1, nav.Moves())
		assert.True(t, nav.IsOnVisitedPath(maze.CellPosition{Row: 0, Col: 1}))
	})
}

func TestNavigatorFinish(t *testing.T) {
	m, solution := twoByOne(t)
	nav := NewNavigator(m, solution)

	require.True(t, nav.Move(maze.East))
	require.True(t, nav.Move(maze.East)) // out through the exit door

	assert.True(t, nav.Finished())
	assert.Equal(t, FinishedPos, nav.CurrentPos())
	assert.Equal(t, 1, nav.Moves())

	accuracy, ok := nav.AccuracyPercent()
	require.True(t, ok)
	assert.InDelta(t, 100.0, accuracy, 0.001)

	t.Run("everything is a no-op afterwards", func(t *testing.T) {
		assert.False(t, nav.Move(maze.East))
		assert.False(t, nav.Move(maze.West))
		assert.False(t, nav.JumpTo(maze.CellPosition{Row: 0, Col: 0}))
		assert.Equal(t, 1, nav.Moves())
		assert.Equal(t, 0, nav.Jumps())
		assert.Equal(t, FinishedPos, nav.CurrentPos())
	})
}

func TestNavigatorAccuracyUndefinedWhilePlaying(t *testing.T) {
	m, solution := twoByOne(t)
	nav := NewNavigator(m, solution)

	_, ok := nav.AccuracyPercent()
	assert.False(t, ok)

	nav.Move(maze.East)
	_, ok = nav.AccuracyPercent()
	assert.False(t, ok)
}

func TestNavigatorJumpTo(t *testing.T) {
	t.Run("rejects jumps onto unvisited cells", func(t *testing.T) {
		m, solution := twoByOne(t)
		nav := NewNavigator(m, solution)

		assert.False(t, nav.JumpTo(maze.CellPosition{Row: 0, Col: 1}))
		assert.False(t, nav.JumpTo(maze.CellPosition{Row: 9, Col: 9}))
		assert.Equal(t, 0, nav.Jumps())
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, nav.CurrentPos())
	})

	t.Run("jumps back onto the visited trail", func(t *testing.T) {
		m, solution := twoByOne(t)
		nav := NewNavigator(m, solution)

		require.True(t, nav.Move(maze.East))
		assert.True(t, nav.JumpTo(maze.CellPosition{Row: 0, Col: 0}))
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, nav.CurrentPos())
		assert.Equal(t, 1, nav.Jumps())
		assert.Equal(t, 1, nav.Moves())
	})
}

func TestNavigatorDecisionCells(t *testing.T) {
	m, err := maze.Generate(maze.Config{
		Width:    3,
		Height:   3,
		Entrance: maze.Door{Pos: maze.CellPosition{Row: 0, Col: 0}, Side: maze.West},
		Exit:     maze.Door{Pos: maze.CellPosition{Row: 2, Col: 2}, Side: maze.East},
	})
	require.NoError(t, err)
	solution, err := maze.Solve(m)
	require.NoError(t, err)
	nav := NewNavigator(m, solution)

	// Force a known junction: open three sides of the center cell.
	center := maze.CellPosition{Row: 1, Col: 1}
	for _, direction := range []string{maze.North, maze.East, maze.South} {
		m.OpenWall(maze.Move{From: center, To: center.Step(direction), Direction: direction})
	}
	assert.True(t, nav.IsDecisionCell(center))

	// A two-opening corridor cell is not a decision cell; the 2x1 maze has
	// exactly two openings per cell.
	m2, solution2 := twoByOne(t)
	nav2 := NewNavigator(m2, solution2)
	assert.Equal(t, 2, m2.OpeningsCount(maze.CellPosition{Row: 0, Col: 0}))
	assert.False(t, nav2.IsDecisionCell(maze.CellPosition{Row: 0, Col: 0}))
	assert.False(t, nav2.IsDecisionCell(maze.CellPosition{Row: 0, Col: 1}))
}
