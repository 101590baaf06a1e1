package player

import (
	"time"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
)

// AbilityID identifies an ability slot
type AbilityID uint8

const (
	AbilityOmegaLaser AbilityID = iota
	AbilityShieldOvercharge
	AbilityAegisCharge
	AbilitySeismicSlam
	AbilityBloodpact
	AbilitySavageHowl
	AbilityEmpBurst
	AbilityMiniWell
	AbilityTeleport
	abilityCount
)

var abilityNames = [abilityCount]string{
	AbilityOmegaLaser:       "omega_laser",
	AbilityShieldOvercharge: "shield_overcharge",
	AbilityAegisCharge:      "aegis_charge",
	AbilitySeismicSlam:      "seismic_slam",
	AbilityBloodpact:        "bloodpact",
	AbilitySavageHowl:       "savage_howl",
	AbilityEmpBurst:         "emp_burst",
	AbilityMiniWell:         "mini_well",
	AbilityTeleport:         "teleport",
}

func (id AbilityID) String() string {
	if id < abilityCount {
		return abilityNames[id]
	}
	return "unknown"
}

// Slot reports whether the ability is a numbered slot ability
func (id AbilityID) Slot() bool {
	return id == AbilityEmpBurst || id == AbilityMiniWell || id == AbilityTeleport
}

// AbilityState is the lifecycle stage of an ability
type AbilityState uint8

const (
	StateIdle AbilityState = iota
	StateCharging
	StateActive
	StateCooldown
)

// canTransition lists the legal successor states
// Instant abilities go Idle to Cooldown directly
var canTransition = map[AbilityState][]AbilityState{
	StateIdle:     {StateCharging, StateActive, StateCooldown},
	StateCharging: {StateActive, StateIdle},
	StateActive:   {StateCooldown},
	StateCooldown: {StateIdle},
}

// Ability holds one ability's state machine and timers
type Ability struct {
	ID           AbilityID
	State        AbilityState
	Unlocked     bool
	BaseCooldown time.Duration
	Duration     time.Duration // Zero for instant or externally ended abilities

	// Cooldown is the remaining cooldown while in StateCooldown
	Cooldown time.Duration
	// Timer counts down the active window, or counts up accumulated charge
	Timer time.Duration
	// JustReady is set when a temporal echo finished the cooldown; cleared on next activation
	JustReady bool
}

var abilityDefaults = [abilityCount]struct {
	cooldown time.Duration
	duration time.Duration
}{
	AbilityOmegaLaser:       {parameter.OmegaLaserCooldown, parameter.OmegaLaserDuration},
	AbilityShieldOvercharge: {parameter.ShieldOverchargeCooldown, parameter.ShieldOverchargeDuration},
	AbilityAegisCharge:      {parameter.AegisChargeCooldown, 0},
	AbilitySeismicSlam:      {parameter.SeismicSlamCooldown, 0},
	AbilityBloodpact:        {parameter.BloodpactCooldown, parameter.BloodpactDuration},
	AbilitySavageHowl:       {parameter.SavageHowlCooldown, 0},
	AbilityEmpBurst:         {parameter.EmpBurstCooldown, 0},
	AbilityMiniWell:         {parameter.MiniWellCooldown, 0},
	AbilityTeleport:         {parameter.TeleportCooldown, 0},
}

func newAbilities() [abilityCount]Ability {
	var out [abilityCount]Ability
	for i := range out {
		out[i] = Ability{
			ID:           AbilityID(i),
			BaseCooldown: abilityDefaults[i].cooldown,
			Duration:     abilityDefaults[i].duration,
		}
	}
	return out
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to AbilityState) bool {
	for _, s := range canTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Ready reports whether the ability can be activated now
func (a *Ability) Ready() bool {
	return a.Unlocked && a.State == StateIdle
}

// CooldownFraction returns remaining cooldown as a fraction of full, for UI bars
func (a *Ability) CooldownFraction(full time.Duration) float64 {
	if a.State != StateCooldown || full <= 0 {
		return 0
	}
	return float64(a.Cooldown) / float64(full)
}

// Ability returns the ability state for id
func (p *Player) Ability(id AbilityID) *Ability {
	return &p.abilities[id]
}

// transition moves an ability to a new state and initializes that state's timers
// Returns false if the transition is invalid
func (p *Player) transition(id AbilityID, to AbilityState) bool {
	a := &p.abilities[id]
	if !CanTransition(a.State, to) {
		return false
	}
	a.State = to
	switch to {
	case StateIdle:
		a.Cooldown = 0
		a.Timer = 0
	case StateCharging:
		a.Timer = 0
		a.JustReady = false
	case StateActive:
		a.Timer = a.Duration
		a.JustReady = false
	case StateCooldown:
		a.Timer = 0
		a.JustReady = false
		a.Cooldown = p.EffectiveCooldown(id)
		if a.Cooldown <= 0 {
			a.State = StateIdle
		}
	}
	return true
}

// EffectiveCooldown applies cooldown reduction, capped at 90%, and the slot penalty
func (p *Player) EffectiveCooldown(id AbilityID) time.Duration {
	a := &p.abilities[id]
	divisor := max(parameter.MinCooldownDivisor, 1-p.CooldownReduction)
	cd := float64(a.BaseCooldown) * divisor
	if id.Slot() && p.HasUltimateConfiguration {
		cd *= parameter.UltimateConfigurationSlotPenalty
	}
	return time.Duration(cd)
}

// ageAbilities decrements cooldowns and active windows
// Runs before any activation in the same tick
func (p *Player) ageAbilities(dt time.Duration, env *Env) {
	for i := range p.abilities {
		a := &p.abilities[i]
		switch a.State {
		case StateCooldown:
			a.Cooldown -= dt
			if a.Cooldown <= 0 {
				p.transition(a.ID, StateIdle)
			}
		case StateCharging:
			a.Timer = min(a.Timer+dt, parameter.AegisChargeMaxChargeTime)
		case StateActive:
			if a.Duration > 0 {
				a.Timer -= dt
				if a.Timer <= 0 {
					p.endActive(a.ID, env)
				}
			}
		}
	}
}

// endActive finishes a duration ability
func (p *Player) endActive(id AbilityID, env *Env) {
	switch id {
	case AbilityOmegaLaser:
		p.laserBoost = 0
	case AbilityShieldOvercharge:
		p.ShieldAbsorbCount = 0
	}
	p.transition(id, StateCooldown)
}

// activated records a successful activation and rolls temporal echo
func (p *Player) activated(id AbilityID, env *Env) {
	p.Stats.AbilityUses++
	env.push(event.EventAbilityUsed, &event.AbilityUsedPayload{Ability: id.String(), Path: p.Path.String()})
	p.rollTemporalEcho(id, env)
}

// rollTemporalEcho refunds cooldown on every other cooling ability on success
func (p *Player) rollTemporalEcho(trigger AbilityID, env *Env) {
	chance := min(p.TemporalEchoChance, parameter.TemporalEchoMaxChance)
	if chance <= 0 || env.Rng == nil || !env.Rng.Chance(chance) {
		return
	}
	refunded, readied := p.applyTemporalEcho(trigger)
	env.push(event.EventTemporalEcho, &event.TemporalEchoPayload{
		Trigger:  trigger.String(),
		Refunded: refunded,
		Readied:  readied,
	})
}

// applyTemporalEcho shortens cooldowns of abilities other than trigger
func (p *Player) applyTemporalEcho(trigger AbilityID) (refunded, readied int) {
	for i := range p.abilities {
		a := &p.abilities[i]
		if a.ID == trigger || a.State != StateCooldown {
			continue
		}
		refunded++
		a.Cooldown -= parameter.TemporalEchoRefund
		if a.Cooldown <= 0 {
			p.transition(a.ID, StateIdle)
			a.JustReady = true
			readied++
		}
	}
	return refunded, readied
}

// UnlockedAbilities returns the abilities the player can use, in id order
func (p *Player) UnlockedAbilities() []AbilityID {
	var out []AbilityID
	for i := range p.abilities {
		if p.abilities[i].Unlocked {
			out = append(out, p.abilities[i].ID)
		}
	}
	return out
}
