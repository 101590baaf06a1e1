package entity

import (
	"testing"
	"time"

	"github.com/lixenwraith/light-blaster/vmath"
)

// TestTargetHit verifies plain targets break on the first hit and armored ones take several
func TestTargetHit(t *testing.T) {
	plain := NewTarget(vmath.V(0, 0), false)
	if !plain.Hit(1) {
		t.Errorf("plain target should break on one damage")
	}
	if plain.Hit(1) {
		t.Errorf("destroyed target reported a second destruction")
	}

	armored := NewTarget(vmath.V(0, 0), true)
	if armored.Hit(1) || armored.Hit(1) {
		t.Errorf("armored target broke early")
	}
	if !armored.Hit(1) {
		t.Errorf("armored target should break on third hit")
	}
}

// TestTargetSetSweep verifies destroyed targets are skipped then removed
func TestTargetSetSweep(t *testing.T) {
	var s TargetSet
	a := NewTarget(vmath.V(0, 0), false)
	b := NewTarget(vmath.V(100, 0), false)
	s.Add(a)
	s.Add(b)

	a.Destroy()
	visited := 0
	s.ForEachAlive(func(*Target) { visited++ })
	if visited != 1 || s.Len() != 1 {
		t.Errorf("expected one live target, visited %d len %d", visited, s.Len())
	}

	if got := s.Within(vmath.V(95, 0), 1); len(got) != 1 || got[0] != b {
		t.Errorf("Within returned %v", got)
	}

	s.Sweep()
	if len(s.items) != 1 {
		t.Errorf("sweep kept %d items", len(s.items))
	}
}

// TestEffectExpiry verifies effects drop once their duration elapses
func TestEffectExpiry(t *testing.T) {
	var l EffectList
	l.Add(EffectImpact, vmath.V(1, 1), 10, 100*time.Millisecond)
	l.Add(EffectChain, vmath.V(1, 1), 10, 300*time.Millisecond)

	l.Update(100 * time.Millisecond)
	if len(l.Items()) != 1 || l.Items()[0].Kind != EffectChain {
		t.Fatalf("unexpected effects after update: %v", l.Items())
	}
	if p := l.Items()[0].Progress(); p < 0.33 || p > 0.34 {
		t.Errorf("unexpected progress %v", p)
	}
}
