package game

import (
	"context"
	"time"

	"github.com/beka-birhanu/maze-quest/maze"
)

// Playback replays a maze's solution one cell per tick for the answer
// overlay. It never touches Navigator or maze state; it only reads the
// solved path.
type Playback struct {
	path     []maze.CellPosition
	interval time.Duration
}

// NewPlayback prepares a replay of the given solution paced at the given
// interval per step.
func NewPlayback(s *maze.Solution, interval time.Duration) *Playback {
	return &Playback{path: s.Path, interval: interval}
}

// Start begins a fresh walk over the solution and returns the channel it is
// delivered on. The solved path is stored exit-first, so the walk runs from
// its last element, the entrance, toward index 0, the exit — the viewer
// watches the answer traced entrance to exit.
//
// The channel closes when the walk completes or ctx is cancelled, whichever
// comes first. Each call starts an independent walk, so a replay is just
// another Start.
func (p *Playback) Start(ctx context.Context) <-chan maze.CellPosition {
	out := make(chan maze.CellPosition)

	go func() {
		defer close(out)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for i := len(p.path) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			select {
			case <-ctx.Done():
				return
			case out <- p.path[i]:
			}
		}
	}()

	return out
}
