package status

import (
	"strings"
	"testing"
)

// TestRegistryCachedPointer verifies Get returns the same pointer for a key
func TestRegistryCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyRaysActive)
	a.Store(5)
	if r.Ints.Get(KeyRaysActive).Load() != 5 {
		t.Errorf("expected cached pointer to hold 5")
	}
}

// TestLinesSorted verifies overlay lines are sorted within kind
func TestLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTargets).Store(3)
	r.Ints.Get(KeyBosses).Store(1)
	r.Bools.Get(KeyPaused).Store(true)

	lines := r.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], KeyBosses) {
		t.Errorf("expected %s first, got %q", KeyBosses, lines[0])
	}
	if !strings.HasSuffix(lines[2], "true") {
		t.Errorf("expected bool line last, got %q", lines[2])
	}
}

// TestSmooth verifies the first sample seeds the gauge
func TestSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(60, 0.1); got != 60 {
		t.Errorf("expected seed 60, got %v", got)
	}
	if got := f.Smooth(50, 0.5); got != 55 {
		t.Errorf("expected 55, got %v", got)
	}
}

// TestMetricMapKeyOrder verifies Range visits keys sorted regardless of registration order
func TestMetricMapKeyOrder(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "b", "a"} {
		*m.Get(k)++
	}
	var got []string
	m.Range(func(k string, v *int) { got = append(got, k) })
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("expected a,b,c, got %v", got)
	}
	if m.Count() != 3 || *m.Get("a") != 2 {
		t.Errorf("expected 3 keys with a=2, got %d keys a=%d", m.Count(), *m.Get("a"))
	}
}
