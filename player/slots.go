package player

import (
	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
	"github.com/lixenwraith/light-blaster/well"
)

// empBurst clears every ray not owned by a gravity well and not absorbed by the player well
func (p *Player) empBurst(env *Env) bool {
	a := &p.abilities[AbilityEmpBurst]
	if !a.Ready() || !p.transition(AbilityEmpBurst, StateCooldown) {
		return false
	}
	cleared := 0
	env.Pool.ForEachActive(func(r *ray.Ray) {
		if r.IsGravityWellRay || r.IsCorruptedByPlayerWell {
			return
		}
		r.Deactivate()
		cleared++
	})
	env.push(event.EventEmpBurst, &event.EmpBurstPayload{Cleared: cleared})
	env.effect(entity.EffectEmp, p.Pos, env.Bounds.Width, parameter.ImpactEffectDuration)
	env.sound(event.SoundDetonate)
	p.activated(AbilityEmpBurst, env)
	return true
}

// toggleMiniWell deploys the well on first press and detonates it on the second
func (p *Player) toggleMiniWell(env *Env) bool {
	a := &p.abilities[AbilityMiniWell]
	if p.Well.Active() {
		p.DetonateWell(env, env.Aim)
		return true
	}
	if !a.Ready() {
		return false
	}
	if !p.DeployWell(env) {
		return false
	}
	p.activated(AbilityMiniWell, env)
	return true
}

// DeployWell places a gravity well at the player position; no-op if one is active
func (p *Player) DeployWell(env *Env) bool {
	if p.Well.Active() {
		return false
	}
	if !p.transition(AbilityMiniWell, StateActive) {
		return false
	}
	p.Well = well.New(p.Pos, parameter.WellDuration, env.Rng)
	env.push(event.EventWellDeployed, nil)
	env.sound(event.SoundCharge)
	return true
}

// DetonateWell launches absorbed rays toward target and starts the well cooldown
// Returns the number of rays launched
func (p *Player) DetonateWell(env *Env, target vmath.Vec2) int {
	if !p.Well.Active() {
		return 0
	}
	boost := 0.0
	if bonus := p.consumeKinetic(env); bonus > 0 {
		boost = 1 + bonus
	}
	pos := p.Well.Pos
	n := p.Well.Detonate(target, p.PierceEnabled, boost)
	p.Well = nil
	p.transition(AbilityMiniWell, StateCooldown)

	env.push(event.EventWellDetonated, &event.WellDetonatedPayload{Launched: n})
	env.effect(entity.EffectDetonate, pos, parameter.WellVisualRadius*2, parameter.ImpactEffectDuration)
	env.sound(event.SoundDetonate)
	return n
}

// teleport relocates to the aim point with a short immunity window
func (p *Player) teleport(env *Env) bool {
	a := &p.abilities[AbilityTeleport]
	if !a.Ready() || !p.transition(AbilityTeleport, StateCooldown) {
		return false
	}
	aegis := p.abilities[AbilityAegisCharge].State
	if aegis == StateCharging || aegis == StateActive {
		p.TeleportImpactPending = true
	}

	env.effect(entity.EffectTeleport, p.Pos, p.Radius*2, parameter.ImpactEffectDuration)
	p.Pos = env.Bounds.Clamp(env.Aim, p.Radius)
	if p.Dashing() {
		p.dashTarget = p.Pos
	}
	p.TeleportImmunityTimer = parameter.TeleportImmunityDuration
	env.effect(entity.EffectTeleport, p.Pos, p.Radius*2, parameter.ImpactEffectDuration)
	env.push(event.EventTeleport, nil)
	env.sound(event.SoundUI)
	p.activated(AbilityTeleport, env)
	return true
}
