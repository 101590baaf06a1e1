package physics

import (
	"github.com/lixenwraith/light-blaster/vmath"
)

// Bounds is the axis-aligned arena rectangle starting at the origin
type Bounds struct {
	Width, Height float64
}

// WallHit identifies which walls were struck during a reflection
type WallHit uint8

const (
	WallNone   WallHit = 0
	WallLeft   WallHit = 1 << 0
	WallRight  WallHit = 1 << 1
	WallTop    WallHit = 1 << 2
	WallBottom WallHit = 1 << 3
)

// Horizontal returns true when a left or right wall was struck
func (w WallHit) Horizontal() bool { return w&(WallLeft|WallRight) != 0 }

// Vertical returns true when a top or bottom wall was struck
func (w WallHit) Vertical() bool { return w&(WallTop|WallBottom) != 0 }

// Reflect performs an elastic wall bounce for a circle of radius r
// The velocity component of the struck axis flips sign only when moving into the wall,
// and position is clamped to [r, dimension-r] on that axis
func (b Bounds) Reflect(pos, dir *vmath.Vec2, r float64) WallHit {
	hit := WallNone

	if pos.X-r < 0 {
		pos.X = r
		if dir.X < 0 {
			dir.X = -dir.X
		}
		hit |= WallLeft
	} else if pos.X+r > b.Width {
		pos.X = b.Width - r
		if dir.X > 0 {
			dir.X = -dir.X
		}
		hit |= WallRight
	}

	if pos.Y-r < 0 {
		pos.Y = r
		if dir.Y < 0 {
			dir.Y = -dir.Y
		}
		hit |= WallTop
	} else if pos.Y+r > b.Height {
		pos.Y = b.Height - r
		if dir.Y > 0 {
			dir.Y = -dir.Y
		}
		hit |= WallBottom
	}

	return hit
}

// Clamp keeps a circle of radius r fully inside the bounds
func (b Bounds) Clamp(p vmath.Vec2, r float64) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, r, max(r, b.Width-r)),
		Y: vmath.Clamp(p.Y, r, max(r, b.Height-r)),
	}
}

// Outside reports whether a circle of radius r crosses any wall
func (b Bounds) Outside(p vmath.Vec2, r float64) bool {
	return p.X-r < 0 || p.X+r > b.Width || p.Y-r < 0 || p.Y+r > b.Height
}

// NearWall reports whether p is within margin of any wall
func (b Bounds) NearWall(p vmath.Vec2, margin float64) bool {
	return p.X < margin || p.Y < margin || p.X > b.Width-margin || p.Y > b.Height-margin
}
