package i

import (
	"context"

	"github.com/beka-birhanu/maze-quest/game"
	"github.com/beka-birhanu/maze-quest/maze"
	"github.com/google/uuid"
)

// PlayManager owns the interactive maze sessions the API serves.
type PlayManager interface {
	// NewSession generates a maze, solves it, and opens a play session on it.
	// Zero dimensions take the configured defaults.
	NewSession(width, height int) (uuid.UUID, error)

	// Session returns the maze and navigator behind a session ID.
	Session(id uuid.UUID) (*maze.Maze, *game.Navigator, error)

	// Solution returns the session maze's unique solution.
	Solution(id uuid.UUID) (*maze.Solution, error)

	// Move applies a directional move and reports whether it was accepted.
	Move(id uuid.UUID, direction string) (bool, error)

	// JumpTo teleports onto a previously visited cell and reports whether
	// the jump was accepted.
	JumpTo(id uuid.UUID, pos maze.CellPosition) (bool, error)

	// StartPlayback begins an answer replay for the session, cancelling any
	// replay already running on it. The walk also stops when ctx is done.
	StartPlayback(ctx context.Context, id uuid.UUID) (<-chan maze.CellPosition, error)

	// EndSession stops any running playback and discards the session.
	EndSession(id uuid.UUID) error
}
