package player

import (
	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
)

// RageLevel returns berserker rage in 10% steps of missing hp
func (p *Player) RageLevel() int {
	if p.Path != PathBerserker || p.MaxHP <= 0 {
		return 0
	}
	missing := (p.MaxHP - p.HP) * 100 / p.MaxHP
	return missing / parameter.RageStepPercent
}

// EchoDamageMultiplier is the berserker's echo damage bonus for non-ability rays
func (p *Player) EchoDamageMultiplier() float64 {
	return 1 + float64(p.RageLevel())*parameter.RageDamagePerLevel
}

// EchoSpeedMultiplier is the berserker's echo movement bonus
func (p *Player) EchoSpeedMultiplier() float64 {
	return 1 + float64(p.RageLevel())*parameter.RageSpeedPerLevel
}

func (p *Player) activateBloodpact(env *Env) bool {
	a := &p.abilities[AbilityBloodpact]
	if !a.Ready() || !p.transition(AbilityBloodpact, StateActive) {
		return false
	}
	env.effect(entity.EffectImpact, p.Pos, p.Radius*2, parameter.ImpactEffectDuration)
	env.sound(event.SoundCharge)
	p.activated(AbilityBloodpact, env)
	return true
}

// BloodpactActive reports whether lifesteal is on
func (p *Player) BloodpactActive() bool {
	return p.abilities[AbilityBloodpact].State == StateActive
}

func (p *Player) savageHowl(env *Env) bool {
	a := &p.abilities[AbilitySavageHowl]
	if !a.Ready() || !p.transition(AbilitySavageHowl, StateCooldown) {
		return false
	}
	hits := 0
	for _, b := range env.Bosses {
		if b.Active() && physics.CirclesOverlap(p.Pos, parameter.SavageHowlRadius, b.Pos(), b.Radius()) {
			b.ApplyFear(parameter.SavageHowlFearDuration)
			hits++
		}
	}
	p.HowlBuffTimer = parameter.SavageHowlBuffDuration

	env.push(event.EventHowl, &event.AreaHitPayload{Hits: hits})
	env.effect(entity.EffectHowl, p.Pos, parameter.SavageHowlRadius, parameter.ImpactEffectDuration)
	env.sound(event.SoundImpact)
	p.activated(AbilitySavageHowl, env)
	return true
}
