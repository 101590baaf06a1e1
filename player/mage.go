package player

import (
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/vmath"
)

// ConsumeKineticCharge spends up to the consumption threshold and returns the damage bonus
// The bonus scales linearly with the fraction of the threshold available
func (p *Player) ConsumeKineticCharge() float64 {
	spent := min(p.KineticCharge, parameter.KineticChargeConsumption)
	if spent <= 0 {
		return 0
	}
	p.KineticCharge = max(0, p.KineticCharge-spent)
	return p.KineticMaxBonus * spent / parameter.KineticChargeConsumption
}

// consumeKinetic spends charge for a mage ability and reports it
func (p *Player) consumeKinetic(env *Env) float64 {
	if p.Path != PathMage {
		return 0
	}
	before := p.KineticCharge
	bonus := p.ConsumeKineticCharge()
	if bonus > 0 {
		env.push(event.EventKineticConsumed, &event.KineticConsumedPayload{Bonus: bonus, Spent: before - p.KineticCharge})
	}
	return bonus
}

func (p *Player) activateOmegaLaser(env *Env) bool {
	a := &p.abilities[AbilityOmegaLaser]
	if !a.Ready() || !p.transition(AbilityOmegaLaser, StateActive) {
		return false
	}
	p.laserBoost = p.consumeKinetic(env)
	p.laserTick = 0
	p.LaserEnd = p.Pos
	env.sound(event.SoundCharge)
	p.activated(AbilityOmegaLaser, env)
	return true
}

// LaserActive reports whether the beam is firing
func (p *Player) LaserActive() bool {
	return p.abilities[AbilityOmegaLaser].State == StateActive
}

// updateLaser aims the beam and applies tick damage along its segment
func (p *Player) updateLaser(dt time.Duration, env *Env) {
	dir := vmath.Direction(p.Pos, env.Aim, vmath.V(1, 0))
	p.LaserEnd = p.Pos.Add(dir.Scale(parameter.OmegaLaserLength))

	p.laserTick -= dt
	if p.laserTick > 0 {
		return
	}
	p.laserTick += parameter.OmegaLaserTickInterval

	dmg := p.abilityDamage(parameter.OmegaLaserTickDamage * (1 + p.laserBoost))
	dealt := 0
	for _, b := range env.Bosses {
		if b.Active() && physics.SegmentHitsCircle(p.Pos, p.LaserEnd, parameter.OmegaLaserWidth, b.Pos(), b.Radius()) {
			b.TakeDamage(dmg, nil)
			dealt += dmg
		}
	}
	if env.Targets != nil {
		env.Targets.ForEachAlive(func(t *entity.Target) {
			if physics.SegmentHitsCircle(p.Pos, p.LaserEnd, parameter.OmegaLaserWidth, t.Pos, t.Radius) {
				dealt += dmg
				if t.Hit(dmg) {
					p.destroyedTarget(t, env)
				}
			}
		})
	}
	p.OnDamageDealt(dealt, env)
}

func (p *Player) activateShieldOvercharge(env *Env) bool {
	a := &p.abilities[AbilityShieldOvercharge]
	if !a.Ready() || !p.transition(AbilityShieldOvercharge, StateActive) {
		return false
	}
	p.ShieldAbsorbCount = 0
	env.effect(entity.EffectImpact, p.Pos, p.Radius*2, parameter.ImpactEffectDuration)
	p.activated(AbilityShieldOvercharge, env)
	return true
}

// ShieldActive reports whether shield overcharge is absorbing hits
func (p *Player) ShieldActive() bool {
	return p.abilities[AbilityShieldOvercharge].State == StateActive
}

// absorbRay converts a hostile hit into healing
func (p *Player) absorbRay(env *Env) {
	p.ShieldAbsorbCount++
	p.Stats.RaysAbsorbed++
	p.Heal(parameter.ShieldOverchargeHealPerRay, env)
	env.push(event.EventShieldAbsorb, &event.ShieldAbsorbPayload{Count: p.ShieldAbsorbCount})
	env.sound(event.SoundPickup)
}
