// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetr/debugui"
	"github.com/plus3/tetr/engine"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It satisfies render.Overlay.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	input *engine.Singleton[debugui.ImguiInputState]
}

// New creates the ImGui window and stores the backend as a singleton of world.
func New(world *engine.World, title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return engine.NewSingleton[ImguiBackend](world, ImguiBackend{
		EbitenBackend: backend,
		input:         engine.NewSingleton[debugui.ImguiInputState](world),
	}).Get()
}

func (b *ImguiBackend) BeginFrame() {
	b.EbitenBackend.BeginFrame()
}

func (b *ImguiBackend) EndFrame() {
	b.EbitenBackend.EndFrame()
}

func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether ImGui captured the keyboard during the last frame.
func (b *ImguiBackend) WantsKeyboard() bool {
	return b.input.Get().WantCaptureKeyboard
}
