package entity

import (
	"time"

	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/vmath"
)

// PickupKind identifies what a ground drop grants
type PickupKind uint8

const (
	PickupHeal PickupKind = iota
	PickupBossLoot
)

// Pickup is a ground drop collected by touching it
type Pickup struct {
	Kind   PickupKind
	Pos    vmath.Vec2
	Radius float64
	Amount int
	Tier   int // Boss tier for loot drops
	Life   time.Duration
}

// NewHealPickup creates a heal drop at pos
func NewHealPickup(pos vmath.Vec2) *Pickup {
	return &Pickup{
		Kind:   PickupHeal,
		Pos:    pos,
		Radius: parameter.LootDropRadius,
		Amount: parameter.HealDropAmount,
		Life:   parameter.LootDropLifetime,
	}
}

// NewBossLoot creates a boss reward drop; it does not expire
func NewBossLoot(pos vmath.Vec2, tier int) *Pickup {
	return &Pickup{
		Kind:   PickupBossLoot,
		Pos:    pos,
		Radius: parameter.LootDropRadius * 1.5,
		Tier:   tier,
	}
}

// Expired reports whether a timed drop ran out
func (p *Pickup) Expired() bool {
	return p.Kind == PickupHeal && p.Life <= 0
}
