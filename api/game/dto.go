// Package gameapi exposes maze play sessions over HTTP: creation, state
// snapshots, moves, jumps, the solution, and the answer playback stream.
package gameapi

// CreateMazeRequest asks for a new maze session. Zero dimensions take the
// server defaults.
type CreateMazeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MoveRequest carries one directional step (North, South, East, West).
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// JumpRequest carries a jump target. Pointers keep row/col 0 bindable.
type JumpRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// Pos is a cell coordinate as the renderer sees it.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// DoorView identifies a boundary cell and its open side.
type DoorView struct {
	Pos  Pos    `json:"pos"`
	Side string `json:"side"`
}

// CellView is the per-cell state the renderer draws from.
type CellView struct {
	NorthWall bool `json:"north_wall"`
	SouthWall bool `json:"south_wall"`
	EastWall  bool `json:"east_wall"`
	WestWall  bool `json:"west_wall"`
	Visited   bool `json:"visited"`
	Decision  bool `json:"decision"`
}

// SessionResponse is the full snapshot of one play session.
type SessionResponse struct {
	ID           string       `json:"id"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	CellSize     int          `json:"cell_size"`
	Border       int          `json:"border"`
	Entrance     DoorView     `json:"entrance"`
	Exit         DoorView     `json:"exit"`
	State        string       `json:"state"`
	Current      *Pos         `json:"current,omitempty"`
	Moves        int          `json:"moves"`
	Jumps        int          `json:"jumps"`
	StepsToSolve int          `json:"steps_to_solve"`
	Accuracy     *float64     `json:"accuracy,omitempty"`
	Cells        [][]CellView `json:"cells"`
}

// ActionResponse reports the outcome of a move or jump.
type ActionResponse struct {
	Accepted bool     `json:"accepted"`
	State    string   `json:"state"`
	Current  *Pos     `json:"current,omitempty"`
	Moves    int      `json:"moves"`
	Jumps    int      `json:"jumps"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

// SolutionResponse is the unique path, exit-first, with its step count.
type SolutionResponse struct {
	Path  []Pos `json:"path"`
	Steps int   `json:"steps"`
}
