package physics

import (
	"math"

	"github.com/lixenwraith/light-blaster/vmath"
)

// TurnToward rotates a unit heading toward desired by at most maxTurn radians
func TurnToward(heading, desired vmath.Vec2, maxTurn float64) vmath.Vec2 {
	if desired.IsZero() {
		return heading
	}
	cur := heading.Angle()
	delta := vmath.WrapAngle(desired.Angle() - cur)
	if delta > maxTurn {
		delta = maxTurn
	} else if delta < -maxTurn {
		delta = -maxTurn
	}
	return vmath.FromAngle(cur + delta)
}

// AvoidNudge returns an angular offset (radians) steering heading away from a point
// Strength falls off linearly from the point's radius to radius+margin
func AvoidNudge(pos, heading, avoid vmath.Vec2, avoidRadius, margin, strength float64) float64 {
	away := pos.Sub(avoid)
	dist := away.Len()
	limit := avoidRadius + margin
	if dist >= limit || dist == 0 {
		return 0
	}
	falloff := (limit - dist) / margin
	if falloff > 1 {
		falloff = 1
	}
	// Steer toward whichever side of the heading the away vector lies on
	cross := heading.X*away.Y - heading.Y*away.X
	return math.Copysign(strength*falloff, cross)
}
