package entity

import (
	"time"

	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Boss is the view of a boss exposed to combat and abilities
// Boss AI lives behind this interface and is not inspected by callers
type Boss interface {
	Pos() vmath.Vec2
	Radius() float64
	Health() int
	MaxHealth() int
	Active() bool
	Tier() int
	Name() string

	// TakeDamage applies amount and returns true if the hit defeated the boss
	// src is nil for ability damage
	TakeDamage(amount int, src *ray.Ray) bool

	// ApplyFear makes the boss flee from the player for d
	ApplyFear(d time.Duration)

	// ApplyRecoil adds a knockback velocity that decays over time
	ApplyRecoil(v vmath.Vec2)
}

// ActiveBosses filters out defeated bosses
func ActiveBosses(all []Boss) []Boss {
	out := all[:0:0]
	for _, b := range all {
		if b.Active() {
			out = append(out, b)
		}
	}
	return out
}
