package physics

import (
	"github.com/lixenwraith/light-blaster/vmath"
)

// CirclesOverlap reports whether two circles touch; collision radius is the sum of radii
func CirclesOverlap(a vmath.Vec2, ra float64, b vmath.Vec2, rb float64) bool {
	r := ra + rb
	return a.DistSq(b) <= r*r
}

// WithinRadius reports whether p lies inside the circle at center with radius r
func WithinRadius(p, center vmath.Vec2, r float64) bool {
	return p.DistSq(center) <= r*r
}

// SegmentPointDistance returns the shortest distance from p to the segment ab
func SegmentPointDistance(a, b, p vmath.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := vmath.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Dist(closest)
}

// SegmentHitsCircle reports whether a segment of half-width w intersects a circle
func SegmentHitsCircle(a, b vmath.Vec2, halfWidth float64, center vmath.Vec2, radius float64) bool {
	return SegmentPointDistance(a, b, center) <= halfWidth+radius
}
