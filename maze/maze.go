/*
Package maze provides tools for creating and solving perfect rectangular
mazes.

A maze is a grid of cells with four wall flags each. Generation carves a
spanning tree over the grid with a randomized depth-first backtracker rooted
at the exit cell, then opens a single entrance door and a single exit door on
the boundary. Because the carved graph is a tree, exactly one path connects
the entrance to the exit; Solve recovers it.

Utility functions enable neighbor detection, paired wall removal, opening
counts, and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"strings"
)

const (
	defaultCellSize = 10
	defaultBorder   = 1
	minCellSize     = 3
)

// Maze construction errors.
var (
	ErrInvalidDimension     = errors.New("maze dimensions must be positive")
	ErrInvalidConfiguration = errors.New("invalid maze configuration")
	ErrDisconnected         = errors.New("maze has unreachable cells")
)

// Config carries everything needed to build a maze. It is validated up front;
// a rejected Config leaves no maze allocated.
type Config struct {
	Width  int // number of columns, > 0
	Height int // number of rows, > 0

	// Renderer sizing hints. Zero values take defaults. Validated here so a
	// bad configuration fails before carving, but nothing in this package
	// draws with them.
	CellSize int
	Border   int

	Entrance Door // boundary cell where play starts
	Exit     Door // boundary cell where carving roots and play ends
}

// Maze represents a rectangular maze of width x height cells.
type Maze struct {
	width    int
	height   int
	cellSize int
	border   int
	entrance Door
	exit     Door
	grid     [][]*Cell
}

// newMaze validates the configuration and allocates a grid with every wall
// present. Carving and door installation happen in Generate.
func newMaze(cfg Config) (*Maze, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimension
	}

	if cfg.CellSize == 0 {
		cfg.CellSize = defaultCellSize
	}
	if cfg.Border == 0 {
		cfg.Border = defaultBorder
	}
	if cfg.CellSize < minCellSize || cfg.Border < 1 || cfg.Border >= cfg.CellSize {
		return nil, ErrInvalidConfiguration
	}

	if cfg.Entrance.Pos == cfg.Exit.Pos {
		return nil, ErrInvalidConfiguration
	}
	for _, door := range []Door{cfg.Entrance, cfg.Exit} {
		if !facesOutward(door, cfg.Width, cfg.Height) {
			return nil, ErrInvalidConfiguration
		}
	}

	grid := make([][]*Cell, cfg.Height)
	for i := range grid {
		grid[i] = make([]*Cell, cfg.Width)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Maze{
		width:    cfg.Width,
		height:   cfg.Height,
		cellSize: cfg.CellSize,
		border:   cfg.Border,
		entrance: cfg.Entrance,
		exit:     cfg.Exit,
		grid:     grid,
	}, nil
}

// facesOutward reports whether the door sits on the grid boundary with its
// side pointing out of the grid.
func facesOutward(door Door, width, height int) bool {
	if door.Pos.Row < 0 || door.Pos.Row >= height || door.Pos.Col < 0 || door.Pos.Col >= width {
		return false
	}
	outside := door.Pos.Step(door.Side)
	_, known := Directions[door.Side]
	return known && (outside.Row < 0 || outside.Row >= height || outside.Col < 0 || outside.Col >= width)
}

// Width returns the number of columns in the maze.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows in the maze.
func (m *Maze) Height() int {
	return m.height
}

// CellSize returns the configured renderer cell size hint.
func (m *Maze) CellSize() int {
	return m.cellSize
}

// Border returns the configured renderer border hint.
func (m *Maze) Border() int {
	return m.border
}

// Entrance returns the maze's entrance door.
func (m *Maze) Entrance() Door {
	return m.entrance
}

// Exit returns the maze's exit door.
func (m *Maze) Exit() Door {
	return m.exit
}

// InBound reports whether the given coordinates fall inside the maze.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// CellAt returns the cell at the given position, or nil when out of bounds.
func (m *Maze) CellAt(pos CellPosition) *Cell {
	if !m.InBound(pos.Row, pos.Col) {
		return nil
	}
	return m.grid[pos.Row][pos.Col]
}

// Neighbors finds all in-bounds moves from a given cell position.
func (m *Maze) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, direction := range []string{North, East, South, West} {
		neighbor := pos.Step(direction)
		if m.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: direction})
		}
	}
	return result
}

// OpenWall removes the wall between two adjacent cells. Walls always come
// down in matched pairs; a move whose cells are not adjacent in the stated
// direction is ignored.
func (m *Maze) OpenWall(move Move) {
	if !m.InBound(move.From.Row, move.From.Col) || !m.InBound(move.To.Row, move.To.Col) {
		return
	}
	if move.From.Step(move.Direction) != move.To {
		return
	}

	m.grid[move.From.Row][move.From.Col].setWall(move.Direction, false)
	m.grid[move.To.Row][move.To.Col].setWall(opposites[move.Direction], false)
}

// OpeningsCount returns the number of open sides of the cell at the given
// position. Cells with three or more openings offered the player a choice of
// direction.
func (m *Maze) OpeningsCount(pos CellPosition) int {
	cell := m.CellAt(pos)
	if cell == nil {
		return 0
	}
	return cell.Openings()
}

// String provides a textual representation of the maze. Door gaps show on
// the outer boundary and player-visited cells are marked with an asterisk.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < m.width; col++ {
		if m.grid[0][col].NorthWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		if m.grid[row][0].WestWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]
			if cell.Visited {
				output.WriteString(" * ")
			} else {
				output.WriteString("   ")
			}
			if cell.EastWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.width; col++ {
			if m.grid[row][col].SouthWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
