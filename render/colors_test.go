package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		wantZero bool // true if expecting black (unfilled)
	}{
		{"Negative progress", -0.1, true},
		{"Zero progress", 0.0, true},
		{"Small progress", 0.01, false},
		{"Yellow midpoint", 0.5, false},
		{"Max progress", 1.0, false},
		{"Over max progress", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HealthColor(tt.progress).RGB()
			isZero := r == 0 && g == 0 && b == 0
			if isZero != tt.wantZero {
				t.Errorf("HealthColor(%v) = (%d,%d,%d), wantZero %v", tt.progress, r, g, b, tt.wantZero)
			}
		})
	}
}

func TestHealthColorGradient(t *testing.T) {
	lowR, lowG, _ := HealthColor(0.01).RGB()
	if lowR <= lowG {
		t.Errorf("low health should be red dominant, got r=%d g=%d", lowR, lowG)
	}
	highR, highG, _ := HealthColor(1.0).RGB()
	if highG <= highR {
		t.Errorf("full health should be green dominant, got r=%d g=%d", highR, highG)
	}
	if HealthColor(1.5) != HealthColor(1.0) {
		t.Error("progress above 1 should clamp to full")
	}
}

func TestDim(t *testing.T) {
	c := tcell.NewRGBColor(200, 100, 50)

	r, g, b := Dim(c, 0.5).RGB()
	if r != 100 || g != 50 || b != 25 {
		t.Errorf("Dim(0.5) = (%d,%d,%d), want (100,50,25)", r, g, b)
	}
	if Dim(c, 2) != c {
		t.Error("factor above 1 should leave the color unchanged")
	}
	r, g, b = Dim(c, -1).RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("negative factor should give black, got (%d,%d,%d)", r, g, b)
	}
}
