package render

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetr/tetris"
	"github.com/stretchr/testify/assert"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want tetris.Action
	}{
		{ebiten.KeyArrowLeft, tetris.ActionLeft},
		{ebiten.KeyArrowRight, tetris.ActionRight},
		{ebiten.KeyArrowDown, tetris.ActionDown},
		{ebiten.KeyArrowUp, tetris.ActionRotate},
		{ebiten.KeyQ, tetris.ActionQuit},
		{ebiten.KeyEscape, tetris.ActionQuit},
		{ebiten.KeyR, tetris.ActionRestart},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok := KeyAction(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := KeyAction(ebiten.KeyA)
	assert.False(t, ok)
}

func TestAppendActions(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyArrowLeft}
	got := AppendActions(nil, keys)
	assert.Equal(t, []tetris.Action{tetris.ActionLeft, tetris.ActionRotate, tetris.ActionLeft}, got)
}

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(tetris.GridWidth, tetris.GridHeight)
	assert.Equal(t, 300, w)
	assert.Equal(t, 600, h)
}

type fakeOverlay struct {
	layouts  int
	keyboard bool
}

func (o *fakeOverlay) BeginFrame()                            {}
func (o *fakeOverlay) EndFrame()                              {}
func (o *fakeOverlay) Draw(screen *ebiten.Image)              {}
func (o *fakeOverlay) Layout(outsideWidth, outsideHeight int) { o.layouts++ }
func (o *fakeOverlay) WantsKeyboard() bool                    { return o.keyboard }

func TestLayout(t *testing.T) {
	game := tetris.NewGame(tetris.WithSize(6, 8), tetris.WithFallInterval(time.Hour))

	w, h := New(game, nil).Layout(1000, 1000)
	assert.Equal(t, 6*CellSize, w)
	assert.Equal(t, 8*CellSize, h)

	overlay := &fakeOverlay{}
	w, h = New(game, overlay).Layout(1280, 720)
	assert.Equal(t, 1280, w, "the overlay gets the whole window")
	assert.Equal(t, 720, h)
	assert.Equal(t, 1, overlay.layouts)
}

func TestRunRejectsScale(t *testing.T) {
	assert.Error(t, Run(tetris.NewGame(), nil, 0))
}
