// Package render draws a tetris game in an ebiten window and feeds it keyboard input.
package render

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetr/tetris"
)

// CellSize is the side of one grid cell in pixels.
const CellSize = 30

// Overlay is drawn on top of the board every frame, e.g. a Dear ImGui backend.
// BeginFrame and EndFrame bracket the game step so the overlay can record
// widgets from inside the game's systems.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
	WantsKeyboard() bool
}

// Game implements ebiten.Game for a tetris.Game.
type Game struct {
	game    *tetris.Game
	overlay Overlay

	keys    []ebiten.Key
	actions []tetris.Action
}

// New wraps game for ebiten. overlay may be nil.
func New(game *tetris.Game, overlay Overlay) *Game {
	return &Game{
		game:    game,
		overlay: overlay,
	}
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	g.actions = g.actions[:0]
	if g.overlay == nil || !g.overlay.WantsKeyboard() {
		// Ebiten reports keys pressed within one tick in key code order, so
		// same-tick presses reach the game in that order, not press order.
		g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
		g.actions = AppendActions(g.actions, g.keys)
	}

	g.game.Step(time.Second/time.Duration(ebiten.TPS()), g.actions...)

	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if g.game.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.game.View())
	drawGameOver(screen, g.game)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenSize(g.game.Size())
}

// ScreenSize is the logical screen size for a grid of the given dimensions.
func ScreenSize(gridWidth, gridHeight int) (int, int) {
	return gridWidth * CellSize, gridHeight * CellSize
}

// Run opens a window and plays game until the player quits or closes it.
// Without an overlay the window is the board scaled by scale; an overlay
// is expected to have created its own window.
func Run(game *tetris.Game, overlay Overlay, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}

	if overlay == nil {
		w, h := ScreenSize(game.Size())
		ebiten.SetWindowSize(w*scale, h*scale)
		ebiten.SetWindowTitle("tetr")
	}

	if err := ebiten.RunGame(New(game, overlay)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
