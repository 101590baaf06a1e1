package physics

import (
	"github.com/lixenwraith/light-blaster/vmath"
)

// PullAcceleration returns the linear pull toward center, proportional to (radius-dist)/radius
// Zero outside the pull radius
func PullAcceleration(pos, center vmath.Vec2, radius, strength float64) vmath.Vec2 {
	offset := center.Sub(pos)
	dist := offset.Len()
	if dist >= radius || dist == 0 {
		return vmath.Vec2{}
	}
	factor := (radius - dist) / radius
	return offset.Scale(strength * factor / dist)
}

// OrbitTangent returns the unit tangent for orbiting center, clockwise or counter-clockwise
func OrbitTangent(pos, center vmath.Vec2, clockwise bool) vmath.Vec2 {
	radial := pos.Sub(center)
	if radial.IsZero() {
		radial = vmath.Vec2{X: 1}
	}
	t := radial.Perpendicular().Normalize()
	if clockwise {
		t = t.Scale(-1)
	}
	return t
}

// OrbitVelocity blends vel toward a circular orbit of targetRadius around center
// The radial error is corrected by a spring term; blend is the per-second approach rate
func OrbitVelocity(pos, vel, center vmath.Vec2, targetRadius, speed, blend, dt float64, clockwise bool) vmath.Vec2 {
	radial := pos.Sub(center)
	dist := radial.Len()
	tangent := OrbitTangent(pos, center, clockwise)

	desired := tangent.Scale(speed)
	if dist > 0 {
		// Positive error means too far out: steer inward
		radialErr := dist - targetRadius
		desired = desired.Add(radial.Scale(-radialErr / dist * blend))
	}

	t := blend * dt
	if t > 1 {
		t = 1
	}
	return vel.Lerp(desired, t)
}
