package debugui

import "github.com/plus3/tetr/tetris"

// SpawnDebugUI adds the board inspector and performance windows to the game's world.
// The game must have an ImguiSystem registered for them to render.
func SpawnDebugUI(game *tetris.Game) {
	world := game.World()

	inspector := NewBoardInspector(game, 200)
	AddItem(world, ImguiItem{Render: inspector.Render})

	stats := NewPerformanceStats(120)
	timer := NewFrameTimer()
	AddItem(world, ImguiItem{Render: func() {
		stats.Render(game.Scheduler(), timer.GetDeltaTime())
	}})
}
