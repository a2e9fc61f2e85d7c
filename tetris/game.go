// Package tetris implements a falling-block puzzle game: a grid derived from
// a store of locked cells, pieces that fall, move and rotate under collision
// checks, and completed rows that are cleared.
//
// The game loop runs as a sequence of engine systems, one per frame step:
//
//	GridSystem       rebuild the grid from the locked positions
//	GravitySystem    drop the piece one row per fall interval
//	InputSystem      apply the frame's actions
//	LockSystem       merge a landed piece and bring in the next one
//	LineClearSystem  clear full rows
//	ViewSystem       compose the grid and the falling piece for rendering
package tetris

import (
	"context"
	"time"

	"github.com/plus3/tetr/engine"
)

type config struct {
	source       PieceSource
	fallInterval time.Duration
	width        int
	height       int
	systems      []engine.System
	restart      bool
}

type Option func(*config)

// WithSource sets where pieces come from. The default is a RandomSource seeded from the clock.
func WithSource(source PieceSource) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithFallInterval sets how long a piece stays on a row before gravity moves it.
func WithFallInterval(interval time.Duration) Option {
	if interval <= 0 {
		panic("fall interval must be positive")
	}
	return func(c *config) {
		c.fallInterval = interval
	}
}

// WithSize overrides the grid dimensions. Pieces need at least 4 columns and 2 rows.
func WithSize(width, height int) Option {
	if width < 4 || height < 2 {
		panic("minimal grid size is 4x2")
	}
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithSystem appends a system that runs after the game's own systems every frame.
func WithSystem(system engine.System) Option {
	return func(c *config) {
		c.systems = append(c.systems, system)
	}
}

// WithRestart keeps the game loop running after GameOver so that ActionRestart
// can start a new round. Without it GameOver stops the loop.
func WithRestart() Option {
	return func(c *config) {
		c.restart = true
	}
}

// Game wires the board, pieces and game loop systems into one world.
type Game struct {
	world     *engine.World
	scheduler *engine.Scheduler

	board   *engine.Singleton[Board]
	pieces  *engine.Singleton[Pieces]
	gravity *engine.Singleton[Gravity]
	session *engine.Singleton[Session]
	rules   *engine.Singleton[Rules]
}

func NewGame(options ...Option) *Game {
	cfg := config{
		fallInterval: DefaultFallInterval,
		width:        GridWidth,
		height:       GridHeight,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = NewRandomSource(uint64(time.Now().UnixNano()))
	}

	world := engine.NewWorld()
	g := &Game{
		world:   world,
		board:   engine.NewSingleton[Board](world, Board{Width: cfg.width, Height: cfg.height}),
		pieces:  engine.NewSingleton[Pieces](world, Pieces{Source: cfg.source}),
		gravity: engine.NewSingleton[Gravity](world, Gravity{Interval: cfg.fallInterval}),
		session: engine.NewSingleton[Session](world),
		rules:   engine.NewSingleton[Rules](world, Rules{Restart: cfg.restart}),
	}

	g.scheduler = engine.NewScheduler(world)
	g.scheduler.Register(&GridSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&LockSystem{})
	g.scheduler.Register(&LineClearSystem{})
	g.scheduler.Register(&ViewSystem{})
	for _, system := range cfg.systems {
		g.scheduler.Register(system)
	}
	g.startRound()

	return g
}

// startRound begins a new round and stops the scheduler if its first piece is
// already blocked and restarts are disabled.
func (g *Game) startRound() {
	g.scheduler.Resume()
	if newRound(g.world) == GameOver && !g.rules.Get().Restart {
		g.scheduler.Stop()
	}
}

// newRound empties the board and deals fresh pieces, keeping the board size,
// piece source and fall interval. Every round gets its own locked-position store.
func newRound(world *engine.World) Status {
	var (
		board   *Board
		pieces  *Pieces
		gravity *Gravity
		session *Session
	)
	world.ReadSingleton(&board)
	world.ReadSingleton(&pieces)
	world.ReadSingleton(&gravity)
	world.ReadSingleton(&session)

	board.Locked = NewLockedPositions()
	board.Grid = NewGrid(board.Width, board.Height)
	board.View = NewGrid(board.Width, board.Height)

	pieces.Current = pieces.Source.Next()
	pieces.Current.Center(board.Width)
	pieces.Next = pieces.Source.Next()

	gravity.Elapsed = 0
	gravity.Lock = false

	*session = Session{Status: Falling}
	if !IsValidPosition(pieces.Current, board.Grid) {
		session.Status = GameOver
	}
	board.View.Paint(pieces.Current)
	return session.Status
}

// Step runs one frame: dt is the time since the previous frame and actions
// are the input events received since then, in order.
func (g *Game) Step(dt time.Duration, actions ...Action) {
	g.scheduler.Once(dt.Seconds(), actionEvents(actions)...)
}

// Run steps the game every interval until ctx is done, the player quits or
// the game is over with restarts disabled.
// poll is called once per frame for the actions received since the last one.
func (g *Game) Run(ctx context.Context, interval time.Duration, poll func() []Action) {
	g.scheduler.Run(ctx, interval, func() []any {
		return actionEvents(poll())
	})
}

func actionEvents(actions []Action) []any {
	events := make([]any, len(actions))
	for i, a := range actions {
		events[i] = a
	}
	return events
}

// Reset starts a new round immediately, whatever the current status.
func (g *Game) Reset() {
	g.startRound()
}

func (g *Game) Status() Status {
	return g.session.Get().Status
}

// Lines is the number of rows cleared this round.
func (g *Game) Lines() int {
	return g.session.Get().Lines
}

// Locked returns the live locked-position store.
func (g *Game) Locked() *LockedPositions {
	return g.board.Get().Locked
}

// View returns the most recent rendered frame. The grid is reused between frames.
func (g *Game) View() Grid {
	return g.board.Get().View
}

// Placed is the number of pieces locked this round.
func (g *Game) Placed() int {
	return g.session.Get().Pieces
}

func (g *Game) Current() Piece {
	return g.pieces.Get().Current
}

func (g *Game) Next() Piece {
	return g.pieces.Get().Next
}

func (g *Game) Size() (width, height int) {
	board := g.board.Get()
	return board.Width, board.Height
}

// Stopped reports whether the loop has ended, by quitting or by GameOver
// without restarts.
func (g *Game) Stopped() bool {
	return g.scheduler.Stopped()
}

// Stats returns the scheduler's per-system timings.
func (g *Game) Stats() *engine.SchedulerStats {
	return g.scheduler.GetStats()
}

func (g *Game) World() *engine.World {
	return g.world
}

func (g *Game) Scheduler() *engine.Scheduler {
	return g.scheduler
}
