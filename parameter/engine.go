package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render and simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single simulation step after stalls (window drag, debugger)
	MaxTickDelta = 100 * time.Millisecond

	// ResumeCountdownDuration is the countdown shown after leaving a pause screen
	ResumeCountdownDuration = 3 * time.Second
)

// Event Queue
const (
	// EventQueueInitialCapacity is the preallocated event slice size per tick
	EventQueueInitialCapacity = 64
)

// Arena Defaults (world units)
const (
	// ArenaWidth is the default arena width
	ArenaWidth = 1200.0

	// ArenaHeight is the default arena height
	ArenaHeight = 800.0
)
