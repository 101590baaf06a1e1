package entity

import (
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Target is a breakable arena object destroyed for score
type Target struct {
	Pos     vmath.Vec2
	Radius  float64
	HP      int
	Armored bool
	dead    bool
}

// NewTarget creates a plain or armored target
func NewTarget(pos vmath.Vec2, armored bool) *Target {
	t := &Target{Pos: pos, Radius: parameter.TargetRadius, HP: 1}
	if armored {
		t.Armored = true
		t.Radius = parameter.TargetArmoredRadius
		t.HP = parameter.TargetArmoredHP
	}
	return t
}

// Alive reports whether the target is still in play
func (t *Target) Alive() bool { return !t.dead }

// Hit applies damage and returns true when this hit destroyed the target
func (t *Target) Hit(damage int) bool {
	if t.dead {
		return false
	}
	t.HP -= damage
	if t.HP <= 0 {
		t.HP = 0
		t.dead = true
		return true
	}
	return false
}

// Destroy removes the target regardless of HP, returning false if already destroyed
func (t *Target) Destroy() bool {
	if t.dead {
		return false
	}
	t.HP = 0
	t.dead = true
	return true
}

// TargetSet holds breakable targets
// Destroyed targets stay in the slice until Sweep so iteration during combat is stable
type TargetSet struct {
	items []*Target
}

func (s *TargetSet) Add(t *Target) {
	s.items = append(s.items, t)
}

// ForEachAlive visits targets not yet destroyed
func (s *TargetSet) ForEachAlive(fn func(t *Target)) {
	for _, t := range s.items {
		if !t.dead {
			fn(t)
		}
	}
}

// Within returns live targets overlapping a circle
func (s *TargetSet) Within(center vmath.Vec2, radius float64) []*Target {
	var out []*Target
	for _, t := range s.items {
		if !t.dead && t.Pos.Dist(center) <= radius+t.Radius {
			out = append(out, t)
		}
	}
	return out
}

// Sweep drops destroyed targets
func (s *TargetSet) Sweep() {
	n := 0
	for _, t := range s.items {
		if !t.dead {
			s.items[n] = t
			n++
		}
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

// Len counts live targets
func (s *TargetSet) Len() int {
	n := 0
	for _, t := range s.items {
		if !t.dead {
			n++
		}
	}
	return n
}

// Clear removes all targets
func (s *TargetSet) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
