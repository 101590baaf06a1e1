package combat

import (
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// RayDamage composes the outgoing damage of a player ray
// Plain shots scale with harmony and berserker echo; ability rays use the ability multiplier chain
// A crit is rolled only when rng is non-nil
func RayDamage(p *player.Player, r *ray.Ray, rng *vmath.FastRand) (damage int, crit bool) {
	base := 1 + p.RayDamageBonus

	var dmg float64
	if r.IsPlayerAbilityRay {
		dmg = base * p.AbilityDamageMultiplier
		if p.HasUltimateConfiguration {
			dmg *= 2
		}
		dmg *= p.HarmonyMultiplier()
	} else {
		dmg = base * p.HarmonyMultiplier() * p.EchoDamageMultiplier()
	}

	boost := r.KineticBoost
	if boost <= 0 {
		boost = 1
	}
	dmg *= boost * (1 + r.MomentumBonus)

	if rng != nil && p.CritChance > 0 && rng.Chance(p.CritChance) {
		dmg *= p.CritMultiplier
		crit = true
	}
	return vmath.RoundPositive(dmg, 1), crit
}

// ChainDamage is the damage applied to each entity swept by a chain reaction
func ChainDamage(trigger int) int {
	return vmath.RoundPositive(float64(trigger)/2, 1)
}

// incomingDamage returns the damage a ray deals to the player and its source class
func incomingDamage(r *ray.Ray, fallback int) (int, player.Source) {
	dmg := r.Damage
	if dmg <= 0 {
		dmg = fallback
	}
	if r.IsBossProjectile || r.IsGravityWellRay {
		return dmg, player.SourceBossProjectile
	}
	return dmg, player.SourceNeutral
}
