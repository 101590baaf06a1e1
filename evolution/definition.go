package evolution

import (
	"fmt"

	"github.com/lixenwraith/light-blaster/player"
)

// Class groups evolutions for statistics and achievements
type Class string

const (
	ClassTank    Class = "tank"
	ClassAttack  Class = "attack"
	ClassAbility Class = "ability"
	ClassUtility Class = "utility"
)

// Definition is one master-list entry
// Tiered entries scale Values by tier; core entries apply Core regardless of tier
type Definition struct {
	ID           string
	Name         string
	Class        Class
	Tiered       bool
	Values       [tierCount]float64
	Core         float64
	RequiresPath player.Path
	MaxLevel     int // Zero for unlimited

	// Describe renders card text for a magnitude at the player's current state
	Describe func(p *player.Player, v float64) string
	// Apply mutates the player by magnitude v
	Apply func(p *player.Player, v float64)
	// Maxed is an optional stat-based cap in addition to MaxLevel
	Maxed func(p *player.Player) bool
}

// Value returns the magnitude for a rolled tier
func (d *Definition) Value(t Tier) float64 {
	if !d.Tiered || t >= tierCount {
		return d.Core
	}
	return d.Values[t]
}

// IsMaxed reports whether the entry can no longer be offered
func (d *Definition) IsMaxed(p *player.Player) bool {
	if d.MaxLevel > 0 && p.Level(d.ID) >= d.MaxLevel {
		return true
	}
	return d.Maxed != nil && d.Maxed(p)
}

// Available reports whether the path gate allows the entry
func (d *Definition) Available(p *player.Player) bool {
	return d.RequiresPath == player.PathNone || d.RequiresPath == p.Path
}

// Text renders the card text for tier t
func (d *Definition) Text(p *player.Player, t Tier) string {
	if d.Describe == nil {
		return d.Name
	}
	return d.Describe(p, d.Value(t))
}

func pct(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }
