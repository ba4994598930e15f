// Package service wires the maze engine to the API layer: it keeps the
// in-memory registry of play sessions and mediates every move, jump, and
// answer playback on them.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-quest/config"
	"github.com/beka-birhanu/maze-quest/game"
	"github.com/beka-birhanu/maze-quest/maze"
	"github.com/google/uuid"
)

const defaultPlaybackInterval = 100 * time.Millisecond

var ErrSessionNotFound = errors.New("no play session with that ID")

// playSession bundles everything one interactive maze owns.
type playSession struct {
	maze           *maze.Maze
	navigator      *game.Navigator
	solution       *maze.Solution
	playback       *game.Playback
	cancelPlayback context.CancelFunc
}

// PlayManager is the in-memory session registry. All state lives here for
// the duration of one generation and play; nothing is persisted.
type PlayManager struct {
	sessions         map[uuid.UUID]*playSession
	defaultWidth     int
	defaultHeight    int
	playbackInterval time.Duration
	logger           *log.Logger
	sync.RWMutex
}

// Config holds configuration settings for creating a new PlayManager.
type Config struct {
	DefaultWidth     int
	DefaultHeight    int
	PlaybackInterval time.Duration
	Logger           *log.Logger
}

// NewPlayManager creates a PlayManager with the given defaults.
func NewPlayManager(c *Config) (*PlayManager, error) {
	if c.DefaultWidth <= 0 || c.DefaultHeight <= 0 {
		return nil, maze.ErrInvalidDimension
	}
	interval := c.PlaybackInterval
	if interval <= 0 {
		interval = defaultPlaybackInterval
	}

	return &PlayManager{
		sessions:         make(map[uuid.UUID]*playSession),
		defaultWidth:     c.DefaultWidth,
		defaultHeight:    c.DefaultHeight,
		playbackInterval: interval,
		logger:           c.Logger,
	}, nil
}

// NewSession generates a fresh maze with the entrance at the top-left
// opening west and the exit at the bottom-right opening east, solves it, and
// registers a navigator on it.
func (p *PlayManager) NewSession(width, height int) (uuid.UUID, error) {
	if width == 0 {
		width = p.defaultWidth
	}
	if height == 0 {
		height = p.defaultHeight
	}

	m, err := maze.Generate(maze.Config{
		Width:    width,
		Height:   height,
		Entrance: maze.Door{Pos: maze.CellPosition{Row: 0, Col: 0}, Side: maze.West},
		Exit:     maze.Door{Pos: maze.CellPosition{Row: height - 1, Col: width - 1}, Side: maze.East},
	})
	if err != nil {
		p.logger.Printf("%s[ERROR]%s creating maze for a new session: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, err
	}

	solution, err := maze.Solve(m)
	if err != nil {
		// The generator guarantees a spanning tree; a solver failure here is
		// a generator bug, not a user error.
		p.logger.Printf("%s[ERROR]%s solving freshly generated maze: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, fmt.Errorf("generated maze failed to solve: %w", err)
	}

	session := &playSession{
		maze:      m,
		navigator: game.NewNavigator(m, solution),
		solution:  solution,
		playback:  game.NewPlayback(solution, p.playbackInterval),
	}

	id := p.saveSession(session)
	p.logger.Printf("%s[INFO]%s started %dx%d maze session: %s", config.LogInfoColor, config.LogColorReset, width, height, id)
	return id, nil
}

// saveSession registers the session under a fresh unique ID.
func (p *PlayManager) saveSession(session *playSession) uuid.UUID {
	p.Lock()
	defer p.Unlock()

	id := uuid.New()
	for {
		if _, ok := p.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	p.sessions[id] = session
	return id
}

// Session returns the maze and navigator behind a session ID.
func (p *PlayManager) Session(id uuid.UUID) (*maze.Maze, *game.Navigator, error) {
	p.RLock()
	defer p.RUnlock()

	session, ok := p.sessions[id]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	return session.maze, session.navigator, nil
}

// Solution returns the session maze's unique solution.
func (p *PlayManager) Solution(id uuid.UUID) (*maze.Solution, error) {
	p.RLock()
	defer p.RUnlock()

	session, ok := p.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.solution, nil
}

// Move applies a directional move on the session's navigator.
func (p *PlayManager) Move(id uuid.UUID, direction string) (bool, error) {
	p.Lock()
	defer p.Unlock()

	session, ok := p.sessions[id]
	if !ok {
		return false, ErrSessionNotFound
	}
	return session.navigator.Move(direction), nil
}

// JumpTo teleports the session's player onto a previously visited cell.
func (p *PlayManager) JumpTo(id uuid.UUID, pos maze.CellPosition) (bool, error) {
	p.Lock()
	defer p.Unlock()

	session, ok := p.sessions[id]
	if !ok {
		return false, ErrSessionNotFound
	}
	return session.navigator.JumpTo(pos), nil
}

// StartPlayback begins an answer replay for the session. A replay already
// running on the session is cancelled first, so at most one walk per session
// ticks at a time.
func (p *PlayManager) StartPlayback(ctx context.Context, id uuid.UUID) (<-chan maze.CellPosition, error) {
	p.Lock()
	defer p.Unlock()

	session, ok := p.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.cancelPlayback != nil {
		session.cancelPlayback()
	}
	playbackCtx, cancel := context.WithCancel(ctx)
	session.cancelPlayback = cancel

	p.logger.Printf("%s[INFO]%s starting answer playback for session: %s", config.LogInfoColor, config.LogColorReset, id)
	return session.playback.Start(playbackCtx), nil
}

// EndSession stops any running playback and discards the session.
func (p *PlayManager) EndSession(id uuid.UUID) error {
	p.Lock()
	defer p.Unlock()

	session, ok := p.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if session.cancelPlayback != nil {
		session.cancelPlayback()
	}
	delete(p.sessions, id)
	p.logger.Printf("%s[INFO]%s ended maze session: %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}
