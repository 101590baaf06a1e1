package status

import (
	"fmt"
	"sync/atomic"
)

// Telemetry keys written by the simulation and read by the debug overlay
const (
	KeyRaysActive    = "rays.active"
	KeyRaysPooled    = "rays.pooled"
	KeyRaysOverflow  = "rays.overflow"
	KeyTargets       = "entities.targets"
	KeyBosses        = "entities.bosses"
	KeyEventsPerTick = "events.tick"
	KeyFrame         = "engine.frame"
	KeyTickMillis    = "engine.tick_ms"
	KeyFPS           = "engine.fps"
	KeyPaused        = "engine.paused"
)

// Registry holds debug telemetry shared between the simulation and the renderer
// Writers cache pointers once; the render goroutine reads atomics without locking the session
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key value" in sorted order per kind
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Bools.Count()+r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%-18s %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%-18s %.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%-18s %t", k, v.Load()))
	})
	return lines
}
