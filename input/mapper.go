// Package input converts terminal key and mouse events into simulation intents
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/render"
	"github.com/lixenwraith/light-blaster/vmath"
)

// heldKey tracks a key that terminals report only as repeated presses
type heldKey struct {
	down     bool
	repeated bool
	last     time.Time
}

func (h *heldKey) press(now time.Time) {
	h.repeated = h.down
	h.down = true
	h.last = now
}

// expired reports whether the hold window since the last press has passed
func (h *heldKey) expired(now time.Time) bool {
	window := parameter.KeyHoldInitial
	if h.repeated {
		window = parameter.KeyHoldRepeat
	}
	return now.Sub(h.last) > window
}

// Mapper translates tcell events into the session's intent buffer
// All methods run on the frontend goroutine
type Mapper struct {
	table  *KeyTable
	buffer *engine.IntentBuffer
	now    func() time.Time

	dirs    [dirCount]heldKey
	primary heldKey // Keyboard primary

	mouseLeft  bool
	mouseRight bool

	// OnSystem receives frontend commands; nil ignores them
	OnSystem func(op SystemOp)
}

func NewMapper(table *KeyTable, buffer *engine.IntentBuffer) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table, buffer: buffer, now: time.Now}
}

// HandleKey applies a key event and reports whether it was bound
func (m *Mapper) HandleKey(ev *tcell.EventKey) bool {
	entry, ok := m.table.Lookup(ev)
	if !ok {
		return false
	}
	now := m.now()

	switch entry.Behavior {
	case BehaviorMove:
		m.dirs[entry.Move].press(now)
		// Opposite key cancels the held direction
		m.dirs[opposite(entry.Move)] = heldKey{}
		m.buffer.SetMove(m.moveVector())
	case BehaviorHold:
		if !m.primary.down && !m.mouseLeft {
			m.buffer.Push(entry.Action)
		}
		m.primary.press(now)
	case BehaviorAction:
		m.buffer.Push(entry.Action)
	case BehaviorSystem:
		if m.OnSystem != nil {
			m.OnSystem(entry.System)
		}
	default:
		return false
	}
	return true
}

// HandleMouse updates aim from the pointer and turns button edges into actions
func (m *Mapper) HandleMouse(ev *tcell.EventMouse, view render.Viewport) {
	x, y := ev.Position()
	if view.Contains(x, y) {
		m.buffer.SetAim(view.World(x, y))
	}

	buttons := ev.Buttons()
	left := buttons&tcell.Button1 != 0
	right := buttons&tcell.Button2 != 0

	if left && !m.mouseLeft && !m.primary.down {
		m.buffer.Push(engine.ActionPrimaryPress)
	}
	if !left && m.mouseLeft && !m.primary.down {
		m.buffer.Push(engine.ActionPrimaryRelease)
	}
	if right && !m.mouseRight {
		m.buffer.Push(engine.ActionSecondary)
	}
	m.mouseLeft, m.mouseRight = left, right
}

// Update expires held keys whose repeat stream stopped
// Called once per frame before the intent buffer is drained
func (m *Mapper) Update() {
	now := m.now()
	changed := false
	for i := range m.dirs {
		if m.dirs[i].down && m.dirs[i].expired(now) {
			m.dirs[i] = heldKey{}
			changed = true
		}
	}
	if changed {
		m.buffer.SetMove(m.moveVector())
	}

	if m.primary.down && m.primary.expired(now) {
		m.primary = heldKey{}
		if !m.mouseLeft {
			m.buffer.Push(engine.ActionPrimaryRelease)
		}
	}
}

// Release drops every held key and button, used when focus leaves the arena
func (m *Mapper) Release() {
	if m.primary.down || m.mouseLeft {
		m.buffer.Push(engine.ActionPrimaryRelease)
	}
	m.dirs = [dirCount]heldKey{}
	m.primary = heldKey{}
	m.mouseLeft, m.mouseRight = false, false
	m.buffer.SetMove(vmath.Vec2{})
}

// moveVector sums held directions into a unit or zero vector
func (m *Mapper) moveVector() vmath.Vec2 {
	var v vmath.Vec2
	if m.dirs[DirUp].down {
		v.Y--
	}
	if m.dirs[DirDown].down {
		v.Y++
	}
	if m.dirs[DirLeft].down {
		v.X--
	}
	if m.dirs[DirRight].down {
		v.X++
	}
	return v.Normalize()
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}
