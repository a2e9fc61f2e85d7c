package engine

// UpdateFrame is handed to every system during a single Scheduler.Once call.
// Events holds the frame's input batch in the order it was received.
type UpdateFrame struct {
	DeltaTime float64
	Events    []any
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, events []any, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Events:    events,
		Commands:  newCommands(),
		World:     world,
	}
}
