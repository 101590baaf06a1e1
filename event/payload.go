package event

import (
	"time"

	"github.com/lixenwraith/light-blaster/vmath"
)

// SoundType identifies a synthesized sound cue
type SoundType uint8

const (
	SoundShoot SoundType = iota
	SoundHit
	SoundPickup
	SoundUI
	SoundCharge
	SoundImpact
	SoundDetonate
	SoundLevelUp
	SoundCount
)

// SoundRequestPayload contains the cue to play
type SoundRequestPayload struct {
	Sound SoundType
}

// AbilityUsedPayload identifies the activated ability by name
type AbilityUsedPayload struct {
	Ability string
	Path    string
}

// TemporalEchoPayload contains the trigger and how many cooldowns were shortened
type TemporalEchoPayload struct {
	Trigger  string
	Refunded int
	Readied  int // Cooldowns that reached zero from the refund
}

// KineticConsumedPayload contains the damage bonus granted by a consumption
type KineticConsumedPayload struct {
	Bonus float64
	Spent float64
}

// WellDetonatedPayload contains the number of relaunched rays
type WellDetonatedPayload struct {
	Launched int
}

// EmpBurstPayload contains the number of rays cleared
type EmpBurstPayload struct {
	Cleared int
}

// ShieldAbsorbPayload contains the running absorb count of the current overcharge
type ShieldAbsorbPayload struct {
	Count int
}

// AegisImpactPayload contains aegis dash impact results
type AegisImpactPayload struct {
	Damage        int
	Hits          int
	Kills         int
	AfterTeleport bool
}

// AreaHitPayload contains the results of an area ability
type AreaHitPayload struct {
	Damage           int
	Hits             int
	TargetsDestroyed int
}

// TargetDestroyedPayload contains target destruction details
type TargetDestroyedPayload struct {
	ByAbility bool
	Score     int
	Pos       vmath.Vec2
}

// ChainReactionPayload contains the number of entities swept
type ChainReactionPayload struct {
	Hits int
}

// DamagePayload contains a damage or heal amount
type DamagePayload struct {
	Amount int
	HP     int
}

// BossPayload contains boss identity details
type BossPayload struct {
	Tier      int
	Name      string
	Elapsed   time.Duration // Spawn to defeat
	ByAbility bool
}

// EvolutionPayload contains evolution identity details
type EvolutionPayload struct {
	ID    string
	Class string
	Tier  string
}

// PathChosenPayload contains the selected path name
type PathChosenPayload struct {
	Path string
}

// LootPayload contains the applied loot id
type LootPayload struct {
	ID string
}

// RunEndedPayload contains final run numbers
type RunEndedPayload struct {
	Score    int
	Duration time.Duration
}

// Amount extracts the numeric magnitude of a payload for threshold conditions
// Returns 1 for payloads without a natural magnitude
func Amount(ev GameEvent) float64 {
	switch p := ev.Payload.(type) {
	case *WellDetonatedPayload:
		return float64(p.Launched)
	case *EmpBurstPayload:
		return float64(p.Cleared)
	case *ShieldAbsorbPayload:
		return float64(p.Count)
	case *AegisImpactPayload:
		return float64(p.Kills)
	case *AreaHitPayload:
		return float64(p.Hits)
	case *ChainReactionPayload:
		return float64(p.Hits)
	case *TemporalEchoPayload:
		return float64(p.Readied)
	case *DamagePayload:
		return float64(p.Amount)
	case *KineticConsumedPayload:
		return p.Bonus
	case *BossPayload:
		return float64(p.Tier)
	default:
		return 1
	}
}

// HasFlag reports a named boolean attribute of a payload for achievement conditions
func HasFlag(ev GameEvent, flag string) bool {
	switch p := ev.Payload.(type) {
	case *AegisImpactPayload:
		return flag == "after_teleport" && p.AfterTeleport
	case *TargetDestroyedPayload:
		return flag == "by_ability" && p.ByAbility
	case *BossPayload:
		return flag == "by_ability" && p.ByAbility
	default:
		return false
	}
}
