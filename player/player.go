package player

import (
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
	"github.com/lixenwraith/light-blaster/well"
)

// Path is the permanent specialization chosen after the first boss
type Path uint8

const (
	PathNone Path = iota
	PathMage
	PathAegis
	PathBerserker
)

func (p Path) String() string {
	switch p {
	case PathMage:
		return "mage"
	case PathAegis:
		return "aegis"
	case PathBerserker:
		return "berserker"
	default:
		return "none"
	}
}

// ParsePath converts a path name; unknown names return PathNone
func ParsePath(s string) Path {
	switch s {
	case "mage":
		return PathMage
	case "aegis":
		return PathAegis
	case "berserker":
		return PathBerserker
	default:
		return PathNone
	}
}

// Source classifies incoming damage for reductions
type Source uint8

const (
	SourceNeutral Source = iota
	SourceBossProjectile
	SourceContact
	SourceTrue // Bypasses the damage-taken multiplier
)

// Env carries the collaborators an ability may touch during one call
type Env struct {
	Pool    *ray.Pool
	Bosses  []entity.Boss
	Targets *entity.TargetSet
	Effects *entity.EffectList
	Events  *event.EventQueue
	Rng     *vmath.FastRand
	Bounds  physics.Bounds
	Aim     vmath.Vec2

	// AddScore credits points for targets destroyed by abilities
	AddScore func(points int)
}

func (e *Env) push(t event.EventType, payload any) {
	if e.Events != nil {
		e.Events.Push(t, payload)
	}
}

func (e *Env) sound(s event.SoundType) {
	if e.Events != nil {
		e.Events.Sound(s)
	}
}

func (e *Env) effect(kind entity.EffectKind, pos vmath.Vec2, radius float64, d time.Duration) {
	if e.Effects != nil {
		e.Effects.Add(kind, pos, radius, d)
	}
}

func (e *Env) score(points int) {
	if e.AddScore != nil {
		e.AddScore(points)
	}
}

// Stats are run totals kept for the high-score snapshot
type Stats struct {
	ShotsFired       int
	DamageDealt      int
	DamageTaken      int
	Healed           int
	TargetsDestroyed int
	AbilityUses      int
	RaysAbsorbed     int
}

// Player is the single long-lived player instance of a run
type Player struct {
	Pos        vmath.Vec2
	Radius     float64
	SizeBonus  float64
	HP         int
	MaxHP      int
	Path       Path
	SpeedBonus float64

	// Offense
	RayDamageBonus          float64
	AbilityDamageMultiplier float64
	CritChance              float64
	CritMultiplier          float64
	ChainReactionChance     float64
	ExtraShots              int
	ExtraBounces            int
	MomentumPerBounce       float64
	FireRateBonus           float64
	PierceEnabled           bool

	// Defense and utility
	DamageTakenMultiplier float64
	CooldownReduction     float64
	TemporalEchoChance    float64

	// Loot gear
	HasPhaseStabilizer       bool
	HasAblativeSublayer      bool
	HasUltimateConfiguration bool
	HasPerfectHarmony        bool

	// Kinetic charge (mage)
	KineticCharge     float64
	KineticChargeRate float64
	KineticMaxBonus   float64
	kineticUptime     time.Duration

	// Timers
	ImmunityTimer         time.Duration
	TeleportImmunityTimer time.Duration
	TimeSinceLastHit      time.Duration
	HowlBuffTimer         time.Duration
	ShakeTimer            time.Duration
	shootTimer            time.Duration

	// Ability state
	abilities             [abilityCount]Ability
	ShieldAbsorbCount     int
	TeleportImpactPending bool
	LaserEnd              vmath.Vec2
	laserBoost            float64
	laserTick             time.Duration
	dashTarget            vmath.Vec2
	dashTimer             time.Duration
	dashChargeFraction    float64
	Well                  *well.PlayerGravityWell

	// Progression bookkeeping
	Progress Progress
	Stats    Stats
}

// New creates a fresh player at pos
func New(pos vmath.Vec2) *Player {
	p := &Player{
		Pos:                     pos,
		Radius:                  parameter.PlayerBaseRadius,
		HP:                      parameter.PlayerBaseHP,
		MaxHP:                   parameter.PlayerBaseHP,
		AbilityDamageMultiplier: 1,
		CritMultiplier:          parameter.BaseCritMultiplier,
		DamageTakenMultiplier:   1,
		KineticChargeRate:       parameter.BaseKineticChargeRate,
		KineticMaxBonus:         parameter.InitialKineticDamageBonus,
		abilities:               newAbilities(),
		Progress:                newProgress(),
	}
	return p
}

// Reset reinitializes the player for a replay
func (p *Player) Reset(pos vmath.Vec2) {
	*p = *New(pos)
}

// Alive reports whether hp is above zero
func (p *Player) Alive() bool { return p.HP > 0 }

// Dashing reports whether an aegis dash is in progress
func (p *Player) Dashing() bool {
	return p.abilities[AbilityAegisCharge].State == StateActive
}

// Speed returns movement speed including berserker rage
func (p *Player) Speed() float64 {
	return parameter.PlayerBaseSpeed * (1 + p.SpeedBonus) * p.EchoSpeedMultiplier()
}

// Update advances timers, abilities, movement and the gravity well
func (p *Player) Update(dt time.Duration, env *Env, move vmath.Vec2) {
	sec := dt.Seconds()

	p.ImmunityTimer = max(0, p.ImmunityTimer-dt)
	p.TeleportImmunityTimer = max(0, p.TeleportImmunityTimer-dt)
	p.HowlBuffTimer = max(0, p.HowlBuffTimer-dt)
	p.ShakeTimer = max(0, p.ShakeTimer-dt)
	p.shootTimer = max(0, p.shootTimer-dt)
	p.TimeSinceLastHit += dt

	p.ageAbilities(dt, env)

	if p.Dashing() {
		p.updateDash(dt, env)
	} else if !move.IsZero() {
		p.Pos = p.Pos.Add(move.Normalize().Scale(p.Speed() * sec))
		if p.Path == PathMage {
			p.KineticCharge = min(parameter.KineticChargeMax, p.KineticCharge+p.KineticChargeRate*sec)
		}
	}
	p.Radius = min(parameter.PlayerMaxRadius, parameter.PlayerBaseRadius+p.SizeBonus)
	p.Pos = env.Bounds.Clamp(p.Pos, p.Radius)

	if p.Path == PathMage {
		p.kineticUptime += dt
		for p.kineticUptime >= parameter.KineticScalingInterval {
			p.kineticUptime -= parameter.KineticScalingInterval
			p.KineticMaxBonus *= parameter.KineticScalingFactor
			p.KineticChargeRate *= parameter.KineticScalingFactor
		}
	}

	if p.abilities[AbilityOmegaLaser].State == StateActive {
		p.updateLaser(dt, env)
	}

	if p.Well != nil {
		if p.Well.Active() {
			p.Well.Update(dt, env.Pool, env.Bosses)
		} else {
			p.Well = nil
		}
	}
}

// TakeDamage applies incoming damage and returns the amount applied
// Immunity windows return 0; an active shield overcharge converts the hit to healing
func (p *Player) TakeDamage(amount int, src Source, env *Env) int {
	if !p.Alive() || amount <= 0 {
		return 0
	}
	if p.ImmunityTimer > 0 || p.TeleportImmunityTimer > 0 {
		return 0
	}
	if p.ShieldActive() {
		p.absorbRay(env)
		return 0
	}

	dmg := float64(amount)
	if src != SourceTrue {
		dmg *= p.DamageTakenMultiplier
		if p.Dashing() {
			dmg *= 1 - parameter.AegisChargeDashDamageReduction
		}
	}
	if src == SourceBossProjectile && p.HasAblativeSublayer {
		dmg *= 1 - parameter.AblativeSublayerReduction
	}
	applied := vmath.RoundPositive(dmg, 1)

	p.HP = max(0, p.HP-applied)
	p.TimeSinceLastHit = 0
	p.ImmunityTimer = parameter.PlayerPostDamageImmunity
	p.ShakeTimer = parameter.ScreenShakeDuration
	p.Stats.DamageTaken += applied

	env.push(event.EventPlayerDamaged, &event.DamagePayload{Amount: applied, HP: p.HP})
	env.sound(event.SoundHit)
	return applied
}

// Heal restores hp up to max and returns the amount healed
func (p *Player) Heal(amount int, env *Env) int {
	if amount <= 0 || !p.Alive() {
		return 0
	}
	healed := min(amount, p.MaxHP-p.HP)
	if healed <= 0 {
		return 0
	}
	p.HP += healed
	p.Stats.Healed += healed
	env.push(event.EventPlayerHealed, &event.DamagePayload{Amount: healed, HP: p.HP})
	return healed
}

// AddMaxHP raises max hp and heals the same amount
func (p *Player) AddMaxHP(amount int) {
	p.MaxHP += amount
	p.HP = min(p.MaxHP, p.HP+amount)
}

// HarmonyActive reports whether the no-damage streak bonus applies
func (p *Player) HarmonyActive() bool {
	return p.HasPerfectHarmony && p.TimeSinceLastHit >= parameter.HarmonyStreakDuration
}

// HarmonyMultiplier returns the damage multiplier from the streak bonus
func (p *Player) HarmonyMultiplier() float64 {
	if p.HarmonyActive() {
		return parameter.HarmonyDamageBonus
	}
	return 1
}

// ChoosePath sets the one-time path and unlocks its abilities
// Returns false if a path was already chosen
func (p *Player) ChoosePath(path Path, env *Env) bool {
	if p.Path != PathNone || path == PathNone {
		return false
	}
	p.Path = path
	for _, id := range PathAbilities(path) {
		p.abilities[id].Unlocked = true
	}
	env.push(event.EventPathChosen, &event.PathChosenPayload{Path: path.String()})
	return true
}

// PathAbilities returns the primary and secondary abilities of a path
func PathAbilities(path Path) []AbilityID {
	switch path {
	case PathMage:
		return []AbilityID{AbilityOmegaLaser, AbilityShieldOvercharge}
	case PathAegis:
		return []AbilityID{AbilityAegisCharge, AbilitySeismicSlam}
	case PathBerserker:
		return []AbilityID{AbilityBloodpact, AbilitySavageHowl}
	default:
		return nil
	}
}

// OnDamageDealt records outgoing damage and applies bloodpact lifesteal
func (p *Player) OnDamageDealt(amount int, env *Env) {
	if amount <= 0 {
		return
	}
	p.Stats.DamageDealt += amount
	if p.abilities[AbilityBloodpact].State == StateActive {
		p.Heal(vmath.RoundPositive(float64(amount)*parameter.BloodpactLifesteal, 0), env)
	}
}

// abilityDamage composes ability damage from a base value
func (p *Player) abilityDamage(base float64) int {
	dmg := float64(vmath.RoundPositive(base, 1)) * p.AbilityDamageMultiplier
	if p.HasUltimateConfiguration {
		dmg *= parameter.UltimateConfigurationAbilityBonus
	}
	dmg *= p.HarmonyMultiplier()
	return vmath.RoundPositive(dmg, 1)
}

// areaResult summarizes an area hit
type areaResult struct {
	hits      int
	kills     int
	destroyed int
	dealt     int
}

// hitArea damages bosses and targets overlapping a circle
func (p *Player) hitArea(env *Env, center vmath.Vec2, radius float64, dmg int, knockback float64) areaResult {
	var res areaResult
	for _, b := range env.Bosses {
		if !b.Active() || !physics.CirclesOverlap(center, radius, b.Pos(), b.Radius()) {
			continue
		}
		res.hits++
		res.dealt += dmg
		if knockback > 0 {
			b.ApplyRecoil(vmath.Direction(center, b.Pos(), vmath.V(1, 0)).Scale(knockback))
		}
		if b.TakeDamage(dmg, nil) {
			res.kills++
		}
	}
	if env.Targets != nil {
		for _, t := range env.Targets.Within(center, radius) {
			res.hits++
			res.dealt += dmg
			if t.Hit(dmg) {
				res.kills++
				res.destroyed++
				p.destroyedTarget(t, env)
			}
		}
	}
	p.OnDamageDealt(res.dealt, env)
	return res
}

// destroyedTarget credits score for a target broken by an ability
func (p *Player) destroyedTarget(t *entity.Target, env *Env) {
	p.Stats.TargetsDestroyed++
	env.score(parameter.ScoreTargetDestroyed)
	env.push(event.EventTargetDestroyed, &event.TargetDestroyedPayload{
		ByAbility: true,
		Score:     parameter.ScoreTargetDestroyed,
		Pos:       t.Pos,
	})
}
