package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration for a width x height maze with
// the entrance at the top-left opening west and the exit at the bottom-right
// opening east.
func testConfig(width, height int) Config {
	return Config{
		Width:    width,
		Height:   height,
		Entrance: Door{Pos: CellPosition{Row: 0, Col: 0}, Side: West},
		Exit:     Door{Pos: CellPosition{Row: height - 1, Col: width - 1}, Side: East},
	}
}

func TestNewMazeValidation(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, cfg := range []Config{testConfig(0, 5), testConfig(5, 0), testConfig(-1, 5)} {
			m, err := newMaze(cfg)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		}
	})

	t.Run("rejects entrance equal to exit", func(t *testing.T) {
		cfg := testConfig(4, 4)
		cfg.Exit = Door{Pos: cfg.Entrance.Pos, Side: North}
		m, err := newMaze(cfg)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("rejects door not on the boundary", func(t *testing.T) {
		cfg := testConfig(5, 5)
		cfg.Entrance = Door{Pos: CellPosition{Row: 2, Col: 2}, Side: North}
		m, err := newMaze(cfg)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("rejects door side facing inward", func(t *testing.T) {
		cfg := testConfig(5, 5)
		cfg.Entrance = Door{Pos: CellPosition{Row: 0, Col: 0}, Side: East}
		m, err := newMaze(cfg)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("rejects border and cell size violations", func(t *testing.T) {
		cfg := testConfig(4, 4)
		cfg.CellSize = 5
		cfg.Border = 5 // border must stay below cell size
		m, err := newMaze(cfg)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)

		cfg = testConfig(4, 4)
		cfg.CellSize = 2 // below minimum
		cfg.Border = 1
		m, err = newMaze(cfg)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("accepts a valid configuration with every wall up", func(t *testing.T) {
		m, err := newMaze(testConfig(3, 2))
		require.NoError(t, err)
		assert.Equal(t, 3, m.Width())
		assert.Equal(t, 2, m.Height())
		for row := 0; row < m.Height(); row++ {
			for col := 0; col < m.Width(); col++ {
				cell := m.CellAt(CellPosition{Row: row, Col: col})
				assert.Equal(t, 0, cell.Openings())
				assert.False(t, cell.Visited)
			}
		}
	})
}

func TestNeighbors(t *testing.T) {
	m, err := newMaze(testConfig(3, 3))
	require.NoError(t, err)

	t.Run("corner cell has two neighbors", func(t *testing.T) {
		moves := m.Neighbors(CellPosition{Row: 0, Col: 0})
		assert.Len(t, moves, 2)
	})

	t.Run("edge cell has three neighbors", func(t *testing.T) {
		moves := m.Neighbors(CellPosition{Row: 0, Col: 1})
		assert.Len(t, moves, 3)
	})

	t.Run("interior cell has four neighbors", func(t *testing.T) {
		moves := m.Neighbors(CellPosition{Row: 1, Col: 1})
		assert.Len(t, moves, 4)
		for _, move := range moves {
			assert.Equal(t, move.To, move.From.Step(move.Direction))
		}
	})
}

func TestOpenWall(t *testing.T) {
	t.Run("removes walls in matched pairs", func(t *testing.T) {
		m, err := newMaze(testConfig(3, 3))
		require.NoError(t, err)

		from := CellPosition{Row: 1, Col: 1}
		to := CellPosition{Row: 1, Col: 2}
		m.OpenWall(Move{From: from, To: to, Direction: East})

		assert.False(t, m.CellAt(from).EastWall)
		assert.False(t, m.CellAt(to).WestWall)
		assert.True(t, m.CellAt(from).WestWall)
		assert.True(t, m.CellAt(to).EastWall)
	})

	t.Run("ignores non-adjacent cells", func(t *testing.T) {
		m, err := newMaze(testConfig(3, 3))
		require.NoError(t, err)

		from := CellPosition{Row: 0, Col: 0}
		to := CellPosition{Row: 2, Col: 2}
		m.OpenWall(Move{From: from, To: to, Direction: East})

		assert.Equal(t, 0, m.CellAt(from).Openings())
		assert.Equal(t, 0, m.CellAt(to).Openings())
	})
}

func TestOpeningsCount(t *testing.T) {
	m, err := newMaze(testConfig(3, 3))
	require.NoError(t, err)

	center := CellPosition{Row: 1, Col: 1}
	assert.Equal(t, 0, m.OpeningsCount(center))

	m.OpenWall(Move{From: center, To: center.Step(North), Direction: North})
	m.OpenWall(Move{From: center, To: center.Step(East), Direction: East})
	m.OpenWall(Move{From: center, To: center.Step(South), Direction: South})
	assert.Equal(t, 3, m.OpeningsCount(center))

	// Out of bounds counts as no openings.
	assert.Equal(t, 0, m.OpeningsCount(CellPosition{Row: -1, Col: 0}))
}
