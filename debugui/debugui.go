// Package debugui provides immediate-mode GUI integration for engine worlds using Dear ImGui.
// It manages ImGui rendering and input state through singletons and a system.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetr/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiItems is the singleton list of items rendered every frame, in order.
type ImguiItems struct {
	Items []ImguiItem
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// AddItem appends an item to the world's ImguiItems.
func AddItem(world *engine.World, item ImguiItem) {
	items := engine.NewSingleton[ImguiItems](world).Get()
	items.Items = append(items.Items, item)
}

// ImguiSystem defers the render function of every ImguiItem so widgets are
// recorded after the frame's other systems ran. It also updates the
// ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Items      engine.Singleton[ImguiItems]
	InputState engine.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	items := i.Items.Get()
	if items == nil {
		return
	}
	for _, item := range items.Items {
		frame.Commands.Defer(item.Render)
	}
}
