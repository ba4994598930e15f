package gameapi

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/beka-birhanu/maze-quest/config"
	"github.com/beka-birhanu/maze-quest/game"
	"github.com/beka-birhanu/maze-quest/maze"
	"github.com/beka-birhanu/maze-quest/service"
	"github.com/beka-birhanu/maze-quest/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// PlayController serves interactive maze sessions.
type PlayController struct {
	playManager i.PlayManager
	upgrader    websocket.Upgrader
	logger      *log.Logger
}

// NewPlayController initializes a PlayController.
func NewPlayController(pm i.PlayManager, logger *log.Logger) (*PlayController, error) {
	return &PlayController{
		playManager: pm,
		logger:      logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Register registers the maze play routes.
func (pc *PlayController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", pc.create)
		mazes.GET("/:ID", pc.state)
		mazes.DELETE("/:ID", pc.end)
		mazes.POST("/:ID/moves", pc.move)
		mazes.POST("/:ID/jumps", pc.jump)
		mazes.GET("/:ID/solution", pc.solution)
		mazes.GET("/:ID/playback", pc.playback)
	}
}

// create handles new maze session requests.
func (pc *PlayController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := pc.playManager.NewSession(request.Width, request.Height)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimension) || errors.Is(err, maze.ErrInvalidConfiguration) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	response, err := pc.sessionResponse(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading new session"})
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

// state retrieves the full snapshot of a session.
func (pc *PlayController) state(ctx *gin.Context) {
	id, ok := pc.sessionID(ctx)
	if !ok {
		return
	}

	response, err := pc.sessionResponse(id)
	if err != nil {
		replySessionErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// end discards a session.
func (pc *PlayController) end(ctx *gin.Context) {
	id, ok := pc.sessionID(ctx)
	if !ok {
		return
	}

	if err := pc.playManager.EndSession(id); err != nil {
		replySessionErr(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// move applies a directional step to a session.
func (pc *PlayController) move(ctx *gin.Context) {
	id, ok := pc.sessionID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accepted, err := pc.playManager.Move(id, request.Direction)
	if err != nil {
		replySessionErr(ctx, err)
		return
	}
	pc.actionResponse(ctx, id, accepted)
}

// jump teleports the player onto a previously visited cell.
func (pc *PlayController) jump(ctx *gin.Context) {
	id, ok := pc.sessionID(ctx)
	if !ok {
		return
	}

	var request JumpRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accepted, err := pc.playManager.JumpTo(id, maze.CellPosition{Row: *request.Row, Col: *request.Col})
	if err != nil {
		replySessionErr(ctx, err)
		return
	}
	pc.actionResponse(ctx, id, accepted)
}

// solution returns the maze's unique path, exit-first.
func (pc *PlayController) solution(ctx *gin.Context) {
	id, ok := pc.sessionID(ctx)
	if !ok {
		return
	}

	sol, err := pc.playManager.Solution(id)
	if err != nil {
		replySessionErr(ctx, err)
		return
	}

	response := SolutionResponse{Path: make([]Pos, 0, len(sol.Path)), Steps: sol.Steps}
	for _, pos := range sol.Path {
		response.Path = append(response.Path, Pos{Row: pos.Row, Col: pos.Col})
	}
	ctx.JSON(http.StatusOK, response)
}

// playback upgrades to a websocket and streams the answer walk, one cell per
// playback tick. Closing the connection cancels the walk.
func (pc *PlayController) playback(ctx *gin.Context) {
	id, ok := pc.sessionID(ctx)
	if !ok {
		return
	}

	walkCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()

	steps, err := pc.playManager.StartPlayback(walkCtx, id)
	if err != nil {
		replySessionErr(ctx, err)
		return
	}

	conn, err := pc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		pc.logger.Printf("%s[ERROR]%s upgrading playback connection: %s", config.LogErrorColor, config.LogColorReset, err)
		return
	}
	defer func() { _ = conn.Close() }()

	// Drain control frames so a client close cancels the walk.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for pos := range steps {
		if err := conn.WriteJSON(Pos{Row: pos.Row, Col: pos.Col}); err != nil {
			cancel()
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// replySessionErr maps service errors to HTTP statuses.
func replySessionErr(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such maze"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while accessing maze"})
}

// sessionID parses the :ID route parameter, replying 400 on garbage.
func (pc *PlayController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// actionResponse replies with the session's post-action state.
func (pc *PlayController) actionResponse(ctx *gin.Context, id uuid.UUID, accepted bool) {
	_, nav, err := pc.playManager.Session(id)
	if err != nil {
		replySessionErr(ctx, err)
		return
	}

	response := ActionResponse{
		Accepted: accepted,
		State:    stateName(nav),
		Current:  currentPos(nav),
		Moves:    nav.Moves(),
		Jumps:    nav.Jumps(),
		Accuracy: accuracy(nav),
	}
	ctx.JSON(http.StatusOK, response)
}

// sessionResponse builds the full renderer snapshot for a session.
func (pc *PlayController) sessionResponse(id uuid.UUID) (*SessionResponse, error) {
	m, nav, err := pc.playManager.Session(id)
	if err != nil {
		return nil, err
	}

	cells := make([][]CellView, m.Height())
	for row := range cells {
		cells[row] = make([]CellView, m.Width())
		for col := range cells[row] {
			pos := maze.CellPosition{Row: row, Col: col}
			cell := m.CellAt(pos)
			cells[row][col] = CellView{
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
				Visited:   cell.Visited,
				Decision:  nav.IsDecisionCell(pos),
			}
		}
	}

	return &SessionResponse{
		ID:           id.String(),
		Width:        m.Width(),
		Height:       m.Height(),
		CellSize:     m.CellSize(),
		Border:       m.Border(),
		Entrance:     doorView(m.Entrance()),
		Exit:         doorView(m.Exit()),
		State:        stateName(nav),
		Current:      currentPos(nav),
		Moves:        nav.Moves(),
		Jumps:        nav.Jumps(),
		StepsToSolve: nav.StepsToSolve(),
		Accuracy:     accuracy(nav),
		Cells:        cells,
	}, nil
}

func doorView(door maze.Door) DoorView {
	return DoorView{Pos: Pos{Row: door.Pos.Row, Col: door.Pos.Col}, Side: door.Side}
}

func stateName(nav *game.Navigator) string {
	if nav.Finished() {
		return "finished"
	}
	return "playing"
}

func currentPos(nav *game.Navigator) *Pos {
	if nav.Finished() {
		return nil
	}
	pos := nav.CurrentPos()
	return &Pos{Row: pos.Row, Col: pos.Col}
}

func accuracy(nav *game.Navigator) *float64 {
	value, ok := nav.AccuracyPercent()
	if !ok {
		return nil
	}
	return &value
}

