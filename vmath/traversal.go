package vmath

import (
	"math"
)

// GridTraverser walks every cell a segment crosses (supercover DDA) without allocating
// Coordinates are Q32.32 so fractional cell positions step correctly
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     int64
	tDeltaX, tDeltaY int64

	started bool
	done    bool
}

func NewGridTraverser(x1, y1, x2, y2 int64) GridTraverser {
	t := GridTraverser{
		currX:   ToInt(x1), currY: ToInt(y1),
		targetX: ToInt(x2), targetY: ToInt(y2),
		stepX:   1, stepY: 1,
	}

	dx, dy := x2-x1, y2-y1
	if dx < 0 {
		t.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
	}

	t.tMaxX, t.tDeltaX = axisStart(x1, dx, t.stepX)
	t.tMaxY, t.tDeltaY = axisStart(y1, dy, t.stepY)
	return t
}

// axisStart returns the parametric distance to the first cell edge and between edges
func axisStart(p, d int64, step int) (tMax, tDelta int64) {
	if d == 0 {
		return math.MaxInt64, 0
	}
	tDelta = Div(Scale, d)
	if step > 0 {
		return Mul(Scale-(p&Mask), tDelta), tDelta
	}
	return Mul(p&Mask, tDelta), tDelta
}

// Next advances to the next cell; the first call yields the start cell
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	switch {
	case t.tMaxX < t.tMaxY:
		if t.currX != t.targetX {
			t.stepAlongX()
		} else {
			t.stepAlongY()
		}
	case t.tMaxX > t.tMaxY:
		if t.currY != t.targetY {
			t.stepAlongY()
		} else {
			t.stepAlongX()
		}
	default:
		if t.currX != t.targetX {
			t.stepAlongX()
		}
		if t.currY != t.targetY {
			t.stepAlongY()
		}
	}
	return true
}

func (t *GridTraverser) stepAlongX() {
	t.currX += t.stepX
	t.tMaxX += t.tDeltaX
}

func (t *GridTraverser) stepAlongY() {
	t.currY += t.stepY
	t.tMaxY += t.tDeltaY
}

func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}
