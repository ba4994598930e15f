package maze

// Direction names, used for moves, door sides and wall lookups.
const (
	North = "North"
	South = "South"
	East  = "East"
	West  = "West"
)

var (
	// Directions maps each direction name to its grid delta.
	Directions = map[string]CellPosition{
		North: {Row: -1, Col: 0},
		South: {Row: 1, Col: 0},
		East:  {Row: 0, Col: 1},
		West:  {Row: 0, Col: -1},
	}

	opposites = map[string]string{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
)

// Cell represents a single cell in a maze grid.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool // Visited records that the player has stood on this cell during play.
}

// HasWall reports whether the wall on the given side of the cell is present.
// Unknown directions count as walled.
func (c *Cell) HasWall(direction string) bool {
	switch direction {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

// setWall sets the presence of the wall on the given side of the cell.
func (c *Cell) setWall(direction string, present bool) {
	switch direction {
	case North:
		c.NorthWall = present
	case South:
		c.SouthWall = present
	case East:
		c.EastWall = present
	case West:
		c.WestWall = present
	}
}

// Openings returns the number of sides of the cell whose wall has been
// removed (0 to 4).
func (c *Cell) Openings() int {
	count := 0
	for _, direction := range []string{North, South, East, West} {
		if !c.HasWall(direction) {
			count++
		}
	}
	return count
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away in the given direction.
func (cp CellPosition) Step(direction string) CellPosition {
	delta := Directions[direction]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Move represents a movement from one cell to another in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}

// Door identifies a boundary cell and the side of it that opens to the
// outside of the maze.
type Door struct {
	Pos  CellPosition
	Side string
}
