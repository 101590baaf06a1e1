package entity

import (
	"time"

	"github.com/lixenwraith/light-blaster/vmath"
)

// EffectKind selects how a visual effect is drawn
type EffectKind uint8

const (
	EffectImpact EffectKind = iota
	EffectChain
	EffectSlam
	EffectHowl
	EffectDetonate
	EffectAegis
	EffectEmp
	EffectTeleport
)

// Effect is a timed visual marker with no gameplay state
type Effect struct {
	Kind     EffectKind
	Pos      vmath.Vec2
	Radius   float64
	Timer    time.Duration
	Duration time.Duration
}

// Progress returns elapsed fraction in [0,1]
func (e *Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(e.Timer) / float64(e.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// EffectList holds live effects
type EffectList struct {
	items []Effect
}

func (l *EffectList) Add(kind EffectKind, pos vmath.Vec2, radius float64, d time.Duration) {
	l.items = append(l.items, Effect{Kind: kind, Pos: pos, Radius: radius, Duration: d})
}

// Update ages effects and drops expired ones
func (l *EffectList) Update(dt time.Duration) {
	n := 0
	for i := range l.items {
		l.items[i].Timer += dt
		if l.items[i].Timer < l.items[i].Duration {
			l.items[n] = l.items[i]
			n++
		}
	}
	l.items = l.items[:n]
}

// Items returns live effects for drawing
func (l *EffectList) Items() []Effect { return l.items }

func (l *EffectList) Clear() { l.items = l.items[:0] }
