package engine

import (
	"sync"

	"github.com/lixenwraith/light-blaster/vmath"
)

// Action is a discrete player command
type Action uint8

const (
	ActionNone Action = iota
	ActionPrimaryPress
	ActionPrimaryRelease
	ActionSecondary
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionPause
	ActionReroll
	ActionToggleBlock
	ActionToggleFreeze
	ActionCard1
	ActionCard2
	ActionCard3
	ActionSkip
	ActionRestart
)

// CardAction returns the action selecting card slot (0-based)
func CardAction(slot int) Action {
	switch slot {
	case 0:
		return ActionCard1
	case 1:
		return ActionCard2
	case 2:
		return ActionCard3
	default:
		return ActionNone
	}
}

// card returns the 0-based slot of a card action, or -1
func (a Action) card() int {
	switch a {
	case ActionCard1:
		return 0
	case ActionCard2:
		return 1
	case ActionCard3:
		return 2
	default:
		return -1
	}
}

// slot returns the numbered ability slot of a slot action, or 0
func (a Action) slot() int {
	switch a {
	case ActionSlot1:
		return 1
	case ActionSlot2:
		return 2
	case ActionSlot3:
		return 3
	default:
		return 0
	}
}

// Intent is the input state consumed by one tick
// Move and Aim are continuous; Actions are edges in arrival order
type Intent struct {
	Move    vmath.Vec2
	Aim     vmath.Vec2
	Actions []Action
}

// IntentBuffer collects input from the frontend goroutine for the simulation goroutine
type IntentBuffer struct {
	mu      sync.Mutex
	move    vmath.Vec2
	aim     vmath.Vec2
	actions []Action
}

func NewIntentBuffer() *IntentBuffer {
	return &IntentBuffer{}
}

// SetMove replaces the held movement vector
func (b *IntentBuffer) SetMove(v vmath.Vec2) {
	b.mu.Lock()
	b.move = v
	b.mu.Unlock()
}

// SetAim replaces the aim point in world units
func (b *IntentBuffer) SetAim(v vmath.Vec2) {
	b.mu.Lock()
	b.aim = v
	b.mu.Unlock()
}

// Push queues a discrete action
func (b *IntentBuffer) Push(a Action) {
	if a == ActionNone {
		return
	}
	b.mu.Lock()
	b.actions = append(b.actions, a)
	b.mu.Unlock()
}

// Take returns the current intent and clears queued actions
func (b *IntentBuffer) Take() Intent {
	b.mu.Lock()
	defer b.mu.Unlock()
	in := Intent{Move: b.move, Aim: b.aim, Actions: b.actions}
	b.actions = nil
	return in
}
