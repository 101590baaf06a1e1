package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/light-blaster/vmath"
)

// TestReflectIsElastic verifies only the struck axis flips sign and magnitude is preserved
func TestReflectIsElastic(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	pos := vmath.Vec2{X: 98, Y: 50}
	dir := vmath.Vec2{X: 0.6, Y: 0.8}

	hit := b.Reflect(&pos, &dir, 4)
	if !hit.Horizontal() || hit.Vertical() {
		t.Fatalf("Expected right wall hit only, got %b", hit)
	}
	if dir.X != -0.6 || dir.Y != 0.8 {
		t.Errorf("Expected (-0.6, 0.8), got %+v", dir)
	}
	if pos.X != 96 {
		t.Errorf("Expected clamped X=96, got %v", pos.X)
	}
}

// TestReflectCorner verifies both axes flip in a corner
func TestReflectCorner(t *testing.T) {
	b := Bounds{Width: 50, Height: 50}
	pos := vmath.Vec2{X: -3, Y: -10}
	dir := vmath.Vec2{X: -0.5, Y: -0.5}
	hit := b.Reflect(&pos, &dir, 2)
	if !hit.Horizontal() || !hit.Vertical() {
		t.Fatalf("Expected corner hit, got %b", hit)
	}
	if pos.X != 2 || pos.Y != 2 {
		t.Errorf("Expected clamp to (2,2), got %+v", pos)
	}
	if dir.X != 0.5 || dir.Y != 0.5 {
		t.Errorf("Expected reflected direction, got %+v", dir)
	}
}

// TestReflectNoDoubleFlip verifies a ray already moving away from the wall is not flipped back
func TestReflectNoDoubleFlip(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	pos := vmath.Vec2{X: 1, Y: 50}
	dir := vmath.Vec2{X: 1, Y: 0}
	b.Reflect(&pos, &dir, 4)
	if dir.X != 1 {
		t.Errorf("Expected direction unchanged when leaving wall, got %+v", dir)
	}
}

// TestTurnTowardClamp verifies heading change is limited by max turn
func TestTurnTowardClamp(t *testing.T) {
	h := TurnToward(vmath.Vec2{X: 1}, vmath.Vec2{Y: 1}, 0.1)
	if got := h.Angle(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Expected angle 0.1, got %v", got)
	}
}

// TestPullAccelerationFalloff verifies pull is zero outside radius and strongest near center
func TestPullAccelerationFalloff(t *testing.T) {
	c := vmath.Vec2{}
	if a := PullAcceleration(vmath.Vec2{X: 300}, c, 200, 100); !a.IsZero() {
		t.Errorf("Expected no pull outside radius, got %+v", a)
	}
	near := PullAcceleration(vmath.Vec2{X: 20}, c, 200, 100).Len()
	far := PullAcceleration(vmath.Vec2{X: 180}, c, 200, 100).Len()
	if near <= far {
		t.Errorf("Expected stronger pull near center: near=%v far=%v", near, far)
	}
	if math.Abs(near-90) > 1e-9 {
		t.Errorf("Expected 100*(180/200)=90, got %v", near)
	}
}

// TestSegmentHitsCircle verifies beam intersection against circles
func TestSegmentHitsCircle(t *testing.T) {
	a, b := vmath.Vec2{}, vmath.Vec2{X: 100}
	if !SegmentHitsCircle(a, b, 5, vmath.Vec2{X: 50, Y: 10}, 6) {
		t.Error("Expected hit within width+radius")
	}
	if SegmentHitsCircle(a, b, 5, vmath.Vec2{X: 50, Y: 20}, 6) {
		t.Error("Expected miss beyond width+radius")
	}
	if SegmentHitsCircle(a, b, 5, vmath.Vec2{X: 130, Y: 0}, 6) {
		t.Error("Expected miss past segment end")
	}
}
