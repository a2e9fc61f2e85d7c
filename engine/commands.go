package engine

// Commands provides a buffer for deferred operations that are executed at the end of a frame,
// after every system has run. This prevents a system from changing world state that later
// systems in the same frame still depend on.
type Commands struct {
	defers []deferCommand
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Stop requests that the scheduler stops once the current frame completes.
func (c *Commands) Stop() {
	c.stop = true
}

// Flush runs all queued operations in order, resetting the buffer state.
// It reports whether a stop was requested.
func (c *Commands) Flush() bool {
	for _, df := range c.defers {
		df.fn()
	}

	stop := c.stop
	c.defers = c.defers[:0]
	c.stop = false
	return stop
}
