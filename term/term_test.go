package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetr/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want tetris.Action
		ok   bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), tetris.ActionLeft, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), tetris.ActionRight, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), tetris.ActionDown, true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), tetris.ActionRotate, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), tetris.ActionQuit, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), tetris.ActionQuit, true},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), tetris.ActionRestart, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyAction(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestRendererDrawsBoard(t *testing.T) {
	screen := newScreen(t)
	game := tetris.NewGame(
		tetris.WithFallInterval(time.Hour),
		tetris.WithSource(tetris.NewSequenceSource(tetris.Spawn(tetris.ShapeO, tetris.Yellow))),
		tetris.WithSystem(NewRenderer(screen)),
	)

	game.Step(0)

	// O spawns at x=4, so its cells start at terminal column 1+1+4*2.
	yellow := cellColor(tetris.Yellow)
	assert.Equal(t, yellow, background(screen, 10, 2))
	assert.Equal(t, yellow, background(screen, 11, 2))
	assert.Equal(t, yellow, background(screen, 13, 3))
	assert.NotEqual(t, yellow, background(screen, 8, 2))

	mainc, _, _, _ := screen.GetContent(1, 1)
	assert.Equal(t, '┌', mainc)

	// The side panel starts at column 1+10*2+4 with the next piece label.
	label, _, _, _ := screen.GetContent(25, 2)
	assert.Equal(t, 'N', label)
}

func TestInputPoll(t *testing.T) {
	screen := newScreen(t)
	input := Listen(screen)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))

	var actions []tetris.Action
	assert.Eventually(t, func() bool {
		actions = append(actions, input.Poll()...)
		return len(actions) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []tetris.Action{tetris.ActionLeft, tetris.ActionRotate}, actions)
}

func TestInputCloseReleasesReader(t *testing.T) {
	screen := newScreen(t)
	input := Listen(screen)

	ev := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	for range eventBuffer + 5 {
		require.Eventually(t, func() bool {
			return screen.PostEvent(ev) == nil
		}, time.Second, time.Millisecond)
	}
	require.Eventually(t, func() bool {
		return len(input.events) == eventBuffer
	}, time.Second, time.Millisecond)

	input.Close()

	select {
	case <-input.exited:
	case <-time.After(time.Second):
		t.Fatal("reader still blocked on a full buffer")
	}
}
