package engine

// System represents one step of a frame.
// Systems are executed in registration order and may declare Singleton fields,
// which the Scheduler initializes when the system is registered. Any other
// fields are custom state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
