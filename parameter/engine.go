package parameter

import "time"

// Game loop timing
const (
	// TickInterval is the simulation step, one tick per presented frame (~60 FPS)
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta caps the delta fed to timers after a stall (suspend, slow terminal)
	MaxTickDelta = 250 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System priorities, lower runs first within a tick
const (
	PriorityMotion     = 100
	PriorityCollection = 200
	PriorityHint       = 300
)
