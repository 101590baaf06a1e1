package vmath

import (
	"math"
	"testing"
)

// TestNormalizeZero verifies zero vector normalization does not produce NaN
func TestNormalizeZero(t *testing.T) {
	n := Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("Expected zero vector, got %+v", n)
	}
}

// TestWrapAngle verifies angles are folded into (-Pi, Pi]
func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{math.Pi / 2, math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tc := range cases {
		if got := WrapAngle(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestRoundPositive verifies rounding with a floor
func TestRoundPositive(t *testing.T) {
	if got := RoundPositive(0.2, 1); got != 1 {
		t.Errorf("Expected floor of 1, got %d", got)
	}
	if got := RoundPositive(2.5, 1); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

// TestFastRandFloat64Range verifies Float64 stays in [0, 1)
func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}

// TestFastRandShuffleIsPermutation verifies shuffle keeps every element
func TestFastRandShuffleIsPermutation(t *testing.T) {
	r := NewFastRand(7)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct elements, got %d", len(seen))
	}
}

// TestGridTraverserCoversSegment verifies every cell is 4-connected to the previous and the walk ends on the target
func TestGridTraverserCoversSegment(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"horizontal", 0.5, 0.5, 6.5, 0.5},
		{"reverse diagonal", 5.2, 4.7, 0.3, 0.1},
		{"steep", 1.5, 0.5, 2.5, 9.5},
		{"single cell", 3.1, 3.9, 3.8, 3.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewGridTraverser(FromFloat(tt.x1), FromFloat(tt.y1), FromFloat(tt.x2), FromFloat(tt.y2))
			var cells [][2]int
			for tr.Next() {
				x, y := tr.Pos()
				cells = append(cells, [2]int{x, y})
				if len(cells) > 100 {
					t.Fatal("traversal did not terminate")
				}
			}
			first, last := cells[0], cells[len(cells)-1]
			if first != [2]int{int(tt.x1), int(tt.y1)} || last != [2]int{int(tt.x2), int(tt.y2)} {
				t.Fatalf("walk from %v to %v, want %v to %v", first, last, [2]int{int(tt.x1), int(tt.y1)}, [2]int{int(tt.x2), int(tt.y2)})
			}
			for i := 1; i < len(cells); i++ {
				dx := math.Abs(float64(cells[i][0] - cells[i-1][0]))
				dy := math.Abs(float64(cells[i][1] - cells[i-1][1]))
				if dx > 1 || dy > 1 || dx+dy == 0 {
					t.Errorf("step %d jumps from %v to %v", i, cells[i-1], cells[i])
				}
			}
		})
	}
}

// TestFixedPointRoundTrip verifies Mul and Div agree with float arithmetic
func TestFixedPointRoundTrip(t *testing.T) {
	a, b := FromFloat(3.5), FromFloat(-1.25)
	if got := ToFloat(Mul(a, b)); math.Abs(got+4.375) > 1e-6 {
		t.Errorf("Mul = %v, want -4.375", got)
	}
	if got := ToFloat(Div(a, b)); math.Abs(got+2.8) > 1e-6 {
		t.Errorf("Div = %v, want -2.8", got)
	}
	if Div(a, 0) != 0 {
		t.Error("Div by zero should return 0")
	}
	if ToInt(FromInt(-3)) != -3 {
		t.Error("FromInt/ToInt should round trip negatives")
	}
}
