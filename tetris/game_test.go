package tetris

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetr/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 100 * time.Millisecond

func newTestGame(options ...Option) *Game {
	options = append([]Option{WithFallInterval(testInterval)}, options...)
	return NewGame(options...)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(WithSource(NewSequenceSource(Spawn(ShapeT, Magenta), Spawn(ShapeO, Yellow))))

	assert.Equal(t, Falling, g.Status())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 0, g.Locked().Len())
	assert.True(t, g.Current().Shape.Equal(ShapeT))
	assert.True(t, g.Next().Shape.Equal(ShapeO))

	w, h := g.Size()
	assert.Equal(t, GridWidth, w)
	assert.Equal(t, GridHeight, h)

	view := g.View()
	assert.Equal(t, Magenta, view[0][5], "the first piece is visible before the first frame")
}

func TestGravity(t *testing.T) {
	g := newTestGame(WithSource(NewSequenceSource(Spawn(ShapeI, Cyan))))

	g.Step(50 * time.Millisecond)
	assert.Equal(t, 0, g.Current().Y)

	g.Step(50 * time.Millisecond)
	assert.Equal(t, 1, g.Current().Y)

	g.Step(50 * time.Millisecond)
	assert.Equal(t, 1, g.Current().Y, "elapsed time restarts after every drop")

	g.Step(testInterval)
	assert.Equal(t, 2, g.Current().Y)
}

func TestPieceLocksOnFloor(t *testing.T) {
	g := newTestGame(WithSource(NewSequenceSource(Spawn(ShapeO, Yellow), Spawn(ShapeT, Magenta))))

	for range 18 {
		g.Step(testInterval)
	}
	require.Equal(t, 18, g.Current().Y)
	require.Equal(t, 0, g.Locked().Len())

	g.Step(testInterval)

	assert.Equal(t, map[Point]Color{
		{X: 4, Y: 18}: Yellow,
		{X: 5, Y: 18}: Yellow,
		{X: 4, Y: 19}: Yellow,
		{X: 5, Y: 19}: Yellow,
	}, snapshot(g.Locked()))

	assert.Equal(t, Falling, g.Status())
	assert.True(t, g.Current().Shape.Equal(ShapeT))
	assert.Equal(t, 0, g.Current().Y)
	assert.True(t, g.Next().Shape.Equal(ShapeO))

	view := g.View()
	assert.Equal(t, Yellow, view[19][4])
	assert.Equal(t, Magenta, view[1][4])
}

func TestGameOver(t *testing.T) {
	g := newTestGame(WithSize(4, 2), WithSource(NewSequenceSource(Spawn(ShapeO, Yellow))))

	g.Step(testInterval)
	assert.Equal(t, GameOver, g.Status())
	assert.Equal(t, 4, g.Locked().Len())
	assert.True(t, g.Stopped(), "game over ends the loop")

	g.Step(testInterval, ActionLeft, ActionDown, ActionRestart)
	assert.Equal(t, GameOver, g.Status(), "nothing moves once the game is over")
	assert.Equal(t, 4, g.Locked().Len())
}

func TestRunEndsOnGameOver(t *testing.T) {
	g := newTestGame(WithSize(4, 2), WithSource(NewSequenceSource(Spawn(ShapeO, Yellow))))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g.Run(ctx, testInterval, func() []Action { return nil })

	assert.NoError(t, ctx.Err(), "Run returns before the deadline")
	assert.Equal(t, GameOver, g.Status())
	assert.True(t, g.Stopped())
}

func TestLineClear(t *testing.T) {
	g := newTestGame(WithSize(4, 2), WithSource(NewSequenceSource(Spawn(ShapeI, Cyan))))

	g.Step(testInterval)
	require.Equal(t, 1, g.Current().Y)

	g.Step(testInterval)
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 0, g.Locked().Len())
	assert.Equal(t, Falling, g.Status())

	view := g.View()
	for x := range 4 {
		assert.Equal(t, Cyan, view[0][x], "next piece at the top")
		assert.Equal(t, Background, view[1][x], "cleared row")
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame()

	g.Step(0, ActionQuit, ActionLeft)
	assert.Equal(t, Quit, g.Status())
	assert.True(t, g.Stopped())
}

func TestRestart(t *testing.T) {
	g := newTestGame(WithRestart(), WithSize(4, 2), WithSource(NewSequenceSource(Spawn(ShapeO, Yellow))))

	g.Step(0, ActionRestart)
	assert.Equal(t, Falling, g.Status(), "restart only applies after game over")

	g.Step(testInterval)
	require.Equal(t, GameOver, g.Status())
	assert.False(t, g.Stopped(), "the loop keeps running while restarts are enabled")
	old := g.Locked()

	g.Step(0, ActionRestart)
	assert.Equal(t, Falling, g.Status())
	assert.Equal(t, 0, g.Locked().Len())
	assert.NotSame(t, old, g.Locked(), "every round gets a fresh store")
	assert.Equal(t, 4, old.Len())
}

func TestReset(t *testing.T) {
	g := newTestGame()

	g.Step(0, ActionQuit)
	require.True(t, g.Stopped())

	g.Reset()
	assert.False(t, g.Stopped())
	assert.Equal(t, Falling, g.Status())

	over := newTestGame(WithSize(4, 2), WithSource(NewSequenceSource(Spawn(ShapeO, Yellow))))
	over.Step(testInterval)
	require.True(t, over.Stopped())

	over.Reset()
	assert.False(t, over.Stopped(), "a reset round plays again")
	assert.Equal(t, Falling, over.Status())
	assert.Equal(t, 0, over.Locked().Len())
}

func TestMoveToWall(t *testing.T) {
	g := newTestGame(WithFallInterval(time.Hour), WithSource(NewSequenceSource(Spawn(ShapeI, Cyan))))
	require.Equal(t, 3, g.Current().X)

	g.Step(0, ActionLeft, ActionLeft, ActionLeft)
	assert.Equal(t, 0, g.Current().X)

	g.Step(0, ActionLeft)
	assert.Equal(t, 0, g.Current().X, "blocked by the wall")

	for range 10 {
		g.Step(0, ActionRight)
	}
	assert.Equal(t, 6, g.Current().X)
}

func TestMoveDown(t *testing.T) {
	g := newTestGame(WithFallInterval(time.Hour), WithSource(NewSequenceSource(Spawn(ShapeO, Yellow))))

	for range 30 {
		g.Step(0, ActionDown)
	}
	assert.Equal(t, 18, g.Current().Y)
	assert.Equal(t, 0, g.Locked().Len(), "moving down never locks a piece")
}

func TestRotateBlockedByWall(t *testing.T) {
	g := newTestGame(WithFallInterval(time.Hour), WithSource(NewSequenceSource(Spawn(ShapeI, Cyan))))

	g.Step(0, ActionRotate)
	require.Equal(t, 4, g.Current().Shape.Height())

	for range 10 {
		g.Step(0, ActionRight)
	}
	require.Equal(t, 9, g.Current().X)

	g.Step(0, ActionRotate)
	assert.Equal(t, 4, g.Current().Shape.Height(), "rotation into the wall is undone")
	assert.Equal(t, 9, g.Current().X)
}

func TestViewShowsCurrentPiece(t *testing.T) {
	g := newTestGame(WithSource(NewSequenceSource(Spawn(ShapeI, Cyan))))

	g.Step(testInterval)
	view := g.View()
	for x := 3; x < 7; x++ {
		assert.Equal(t, Cyan, view[1][x])
		assert.Equal(t, Background, view[0][x])
	}
	assert.Equal(t, 0, g.Locked().Len(), "the falling piece is not part of the locked positions")
}

type frameCounter struct {
	Session engine.Singleton[Session]
	frames  int
	status  Status
}

func (s *frameCounter) Execute(frame *engine.UpdateFrame) {
	s.frames++
	s.status = s.Session.Get().Status
}

func TestWithSystem(t *testing.T) {
	counter := &frameCounter{}
	g := newTestGame(WithSystem(counter))

	g.Step(0)
	g.Step(0, ActionQuit)

	assert.Equal(t, 2, counter.frames)
	assert.Equal(t, Quit, counter.status, "extra systems run after the game's own")
	stats := g.Stats()
	assert.Equal(t, int64(2), stats.FrameCount)
	require.Len(t, stats.Systems, 7)
	assert.Equal(t, "GridSystem", stats.Systems[0].Name)
	assert.Equal(t, "frameCounter", stats.Systems[6].Name)
}

func TestOptionsValidate(t *testing.T) {
	assert.Panics(t, func() { WithFallInterval(0) })
	assert.Panics(t, func() { WithSize(3, 20) })
	assert.Panics(t, func() { WithSize(10, 1) })
}
