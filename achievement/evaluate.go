package achievement

import (
	"github.com/lixenwraith/light-blaster/event"
)

// Snapshot is the per-tick game state visible to conditions
type Snapshot struct {
	Score            int
	Path             string
	MaxBossTier      int
	Counters         map[string]int
	EvolutionClasses map[string]int
}

// Evaluate returns the ids newly satisfied this tick, in definition order
// Already unlocked ids are never returned; inputs are not modified
func Evaluate(defs []Definition, snap Snapshot, events []event.GameEvent, unlocked map[string]bool) []string {
	var out []string
	for i := range defs {
		d := &defs[i]
		if unlocked[d.ID] {
			continue
		}
		if d.Condition.met(snap, events) {
			out = append(out, d.ID)
		}
	}
	return out
}

func (c *Condition) met(snap Snapshot, events []event.GameEvent) bool {
	switch c.Kind {
	case KindScore:
		return snap.Score >= c.Threshold
	case KindCounter:
		return snap.Counters[c.Counter] >= c.Threshold
	case KindEvolutionClass:
		return snap.EvolutionClasses[c.Class] >= c.Threshold
	case KindPath:
		return snap.Path == c.Path
	case KindBossTier:
		return snap.MaxBossTier >= c.Tier
	case KindEvent:
		for _, ev := range events {
			if ev.Type != c.eventType {
				continue
			}
			if c.Min > 0 && event.Amount(ev) < c.Min {
				continue
			}
			if c.Flag != "" && !event.HasFlag(ev, c.Flag) {
				continue
			}
			return true
		}
	}
	return false
}
