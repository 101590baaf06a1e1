package player

import (
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/vmath"
)

func (p *Player) startAegisCharge(env *Env) bool {
	a := &p.abilities[AbilityAegisCharge]
	if !a.Ready() || !p.transition(AbilityAegisCharge, StateCharging) {
		return false
	}
	env.sound(event.SoundCharge)
	return true
}

// AegisChargeFraction returns accumulated charge in [0,1]
func (p *Player) AegisChargeFraction() float64 {
	a := &p.abilities[AbilityAegisCharge]
	switch a.State {
	case StateCharging:
		return float64(a.Timer) / float64(parameter.AegisChargeMaxChargeTime)
	case StateActive:
		return p.dashChargeFraction
	default:
		return 0
	}
}

func (p *Player) releaseAegisCharge(env *Env) bool {
	a := &p.abilities[AbilityAegisCharge]
	if a.State != StateCharging {
		return false
	}
	p.dashChargeFraction = p.AegisChargeFraction()
	if !p.transition(AbilityAegisCharge, StateActive) {
		return false
	}
	p.dashTarget = env.Bounds.Clamp(env.Aim, p.Radius)
	p.dashTimer = 0
	p.activated(AbilityAegisCharge, env)
	return true
}

// AegisImpactDamage returns the impact damage for a charge fraction before ability multipliers
func AegisImpactDamage(fraction float64) float64 {
	maxSeconds := parameter.AegisChargeMaxChargeTime.Seconds()
	return parameter.AegisChargeMinDamage * (1 + fraction*parameter.AegisChargeMaxDamageScalePerSecondCharged*maxSeconds)
}

// updateDash moves toward the dash target and resolves the impact on arrival or timeout
func (p *Player) updateDash(dt time.Duration, env *Env) {
	p.dashTimer += dt
	step := p.Speed() * parameter.AegisChargeDashSpeedMultiplier * dt.Seconds()
	remaining := p.Pos.Dist(p.dashTarget)
	if step >= remaining {
		p.Pos = p.dashTarget
	} else {
		p.Pos = p.Pos.Add(vmath.Direction(p.Pos, p.dashTarget, vmath.V(1, 0)).Scale(step))
	}

	if p.Pos.Dist(p.dashTarget) <= parameter.AegisChargeArrivalDistance ||
		p.dashTimer >= parameter.AegisChargeDashMaxDuration {
		p.aegisImpact(env)
	}
}

func (p *Player) aegisImpact(env *Env) {
	dmg := p.abilityDamage(AegisImpactDamage(p.dashChargeFraction))
	res := p.hitArea(env, p.Pos, parameter.AegisChargeImpactRadius, dmg, 0)

	env.push(event.EventAegisImpact, &event.AegisImpactPayload{
		Damage:        dmg,
		Hits:          res.hits,
		Kills:         res.kills,
		AfterTeleport: p.TeleportImpactPending && res.kills > 0,
	})
	env.effect(entity.EffectAegis, p.Pos, parameter.AegisChargeImpactRadius, parameter.ImpactEffectDuration)
	env.sound(event.SoundImpact)

	p.TeleportImpactPending = false
	p.dashChargeFraction = 0
	p.transition(AbilityAegisCharge, StateCooldown)
}

func (p *Player) seismicSlam(env *Env) bool {
	a := &p.abilities[AbilitySeismicSlam]
	if !a.Ready() || !p.transition(AbilitySeismicSlam, StateCooldown) {
		return false
	}
	base := parameter.SeismicSlamBaseDamage +
		float64(p.MaxHP)*parameter.SeismicSlamHPScale +
		p.Radius*parameter.SeismicSlamRadiusScale
	radius := parameter.SeismicSlamRadiusBase + p.Radius*parameter.SeismicSlamRadiusPerSize
	dmg := p.abilityDamage(base)

	res := p.hitArea(env, p.Pos, radius, dmg, parameter.SeismicSlamKnockback)
	env.push(event.EventSlamImpact, &event.AreaHitPayload{Damage: dmg, Hits: res.hits, TargetsDestroyed: res.destroyed})
	env.effect(entity.EffectSlam, p.Pos, radius, parameter.ImpactEffectDuration)
	env.sound(event.SoundImpact)
	p.activated(AbilitySeismicSlam, env)
	return true
}
