package evolution

import (
	"fmt"
	"math"

	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
)

// Catalog returns a fresh master list
// Entries are immutable; per-run levels live on the player
func Catalog() []*Definition {
	return []*Definition{
		// === Tank ===
		{
			ID:     "vitality",
			Name:   "Vitality",
			Class:  ClassTank,
			Tiered: true,
			Values: [tierCount]float64{10, 20, 35, 50},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Max HP +%.0f (now %d)", v, p.MaxHP)
			},
			Apply: func(p *player.Player, v float64) { p.AddMaxHP(int(v)) },
		},
		{
			ID:     "plating",
			Name:   "Reactive Plating",
			Class:  ClassTank,
			Tiered: true,
			Values: [tierCount]float64{0.04, 0.07, 0.10, 0.15},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Damage taken -%s (now %s)", pct(v), pct(p.DamageTakenMultiplier))
			},
			Apply: func(p *player.Player, v float64) { p.DamageTakenMultiplier *= 1 - v },
			Maxed: func(p *player.Player) bool { return p.DamageTakenMultiplier <= 0.4 },
		},
		{
			ID:     "growth",
			Name:   "Growth",
			Class:  ClassTank,
			Tiered: true,
			Values: [tierCount]float64{2, 3, 5, 8},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Size +%.0f and Max HP +%.0f", v, v*2)
			},
			Apply: func(p *player.Player, v float64) {
				p.SizeBonus += v
				p.AddMaxHP(int(v * 2))
			},
			Maxed: func(p *player.Player) bool {
				return parameter.PlayerBaseRadius+p.SizeBonus >= parameter.PlayerMaxRadius
			},
		},
		{
			ID:           "juggernaut",
			Name:         "Juggernaut",
			Class:        ClassTank,
			Tiered:       true,
			RequiresPath: player.PathAegis,
			Values:       [tierCount]float64{20, 35, 50, 80},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Max HP +%.0f, slam grows with it", v)
			},
			Apply: func(p *player.Player, v float64) {
				p.AddMaxHP(int(v))
				p.SizeBonus += 1
			},
		},

		// === Attack ===
		{
			ID:     "power",
			Name:   "Focused Light",
			Class:  ClassAttack,
			Tiered: true,
			Values: [tierCount]float64{0.25, 0.5, 0.75, 1.0},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Ray damage +%.2f (now %.2f)", v, 1+p.RayDamageBonus)
			},
			Apply: func(p *player.Player, v float64) { p.RayDamageBonus += v },
		},
		{
			ID:     "precision",
			Name:   "Precision",
			Class:  ClassAttack,
			Tiered: true,
			Values: [tierCount]float64{0.03, 0.05, 0.08, 0.12},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Crit chance +%s (now %s)", pct(v), pct(p.CritChance))
			},
			Apply: func(p *player.Player, v float64) { p.CritChance = math.Min(1, p.CritChance+v) },
			Maxed: func(p *player.Player) bool { return p.CritChance >= 1 },
		},
		{
			ID:     "lethality",
			Name:   "Lethality",
			Class:  ClassAttack,
			Tiered: true,
			Values: [tierCount]float64{0.2, 0.35, 0.5, 0.75},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Crit damage +%s (now x%.2f)", pct(v), p.CritMultiplier)
			},
			Apply: func(p *player.Player, v float64) { p.CritMultiplier += v },
		},
		{
			ID:       "multishot",
			Name:     "Prism Split",
			Class:    ClassAttack,
			Core:     1,
			MaxLevel: 4,
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Fire %d rays per shot", p.ExtraShots+1+int(v))
			},
			Apply: func(p *player.Player, v float64) { p.ExtraShots += int(v) },
		},
		{
			ID:       "ricochet",
			Name:     "Ricochet",
			Class:    ClassAttack,
			Core:     1,
			MaxLevel: 3,
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Rays bounce %d more times", p.ExtraBounces+int(v))
			},
			Apply: func(p *player.Player, v float64) { p.ExtraBounces += int(v) },
		},
		{
			ID:     "momentum",
			Name:   "Momentum",
			Class:  ClassAttack,
			Tiered: true,
			Values: [tierCount]float64{0.1, 0.15, 0.25, 0.4},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Rays gain +%s damage per bounce", pct(p.MomentumPerBounce+v))
			},
			Apply: func(p *player.Player, v float64) { p.MomentumPerBounce += v },
		},
		{
			ID:       "piercing",
			Name:     "Piercing Light",
			Class:    ClassAttack,
			Core:     1,
			MaxLevel: 1,
			Describe: func(*player.Player, float64) string { return "Rays pass through one target" },
			Apply:    func(p *player.Player, _ float64) { p.PierceEnabled = true },
		},

		// === Ability ===
		{
			ID:     "amplifier",
			Name:   "Amplifier",
			Class:  ClassAbility,
			Tiered: true,
			Values: [tierCount]float64{0.1, 0.2, 0.3, 0.5},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Ability damage +%s (now x%.2f)", pct(v), p.AbilityDamageMultiplier)
			},
			Apply: func(p *player.Player, v float64) { p.AbilityDamageMultiplier += v },
		},
		{
			ID:     "haste",
			Name:   "Haste",
			Class:  ClassAbility,
			Tiered: true,
			Values: [tierCount]float64{0.04, 0.07, 0.10, 0.15},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Cooldowns -%s (now -%s)", pct(v), pct(p.CooldownReduction))
			},
			Apply: func(p *player.Player, v float64) { p.CooldownReduction += v },
			Maxed: func(p *player.Player) bool { return p.CooldownReduction >= 1-parameter.MinCooldownDivisor },
		},
		{
			ID:     "temporal_echo",
			Name:   "Temporal Echo",
			Class:  ClassAbility,
			Tiered: true,
			Values: [tierCount]float64{0.03, 0.05, 0.08, 0.12},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("+%s chance to refund other cooldowns by %s",
					pct(v), parameter.TemporalEchoRefund)
			},
			Apply: func(p *player.Player, v float64) { p.TemporalEchoChance += v },
			Maxed: func(p *player.Player) bool { return p.TemporalEchoChance >= parameter.TemporalEchoMaxChance },
		},
		{
			ID:     "chain_reaction",
			Name:   "Chain Reaction",
			Class:  ClassAbility,
			Tiered: true,
			Values: [tierCount]float64{0.05, 0.08, 0.12, 0.18},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("+%s chance for hits to burst (now %s)", pct(v), pct(p.ChainReactionChance))
			},
			Apply: func(p *player.Player, v float64) {
				p.ChainReactionChance = math.Min(parameter.ChainReactionMaxChance, p.ChainReactionChance+v)
			},
			Maxed: func(p *player.Player) bool { return p.ChainReactionChance >= parameter.ChainReactionMaxChance },
		},
		{
			ID:           "kinetic_mastery",
			Name:         "Kinetic Mastery",
			Class:        ClassAbility,
			Tiered:       true,
			RequiresPath: player.PathMage,
			Values:       [tierCount]float64{0.1, 0.2, 0.3, 0.5},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Kinetic charge rate +%s (now %.1f/s)", pct(v), p.KineticChargeRate)
			},
			Apply: func(p *player.Player, v float64) { p.KineticChargeRate *= 1 + v },
		},

		// === Utility ===
		{
			ID:     "swiftness",
			Name:   "Swiftness",
			Class:  ClassUtility,
			Tiered: true,
			Values: [tierCount]float64{0.05, 0.08, 0.12, 0.18},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Move speed +%s", pct(v))
			},
			Apply: func(p *player.Player, v float64) { p.SpeedBonus += v },
		},
		{
			ID:     "rapid_fire",
			Name:   "Rapid Fire",
			Class:  ClassUtility,
			Tiered: true,
			Values: [tierCount]float64{0.1, 0.15, 0.25, 0.35},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Fire rate +%s (now %s between shots)", pct(v), p.ShootCooldown())
			},
			Apply: func(p *player.Player, v float64) { p.FireRateBonus += v },
		},
		{
			ID:           "frenzy",
			Name:         "Frenzy",
			Class:        ClassUtility,
			Tiered:       true,
			RequiresPath: player.PathBerserker,
			Values:       [tierCount]float64{0.15, 0.25, 0.4, 0.6},
			Describe: func(p *player.Player, v float64) string {
				return fmt.Sprintf("Fire rate +%s and move speed +%s", pct(v), pct(v/4))
			},
			Apply: func(p *player.Player, v float64) {
				p.FireRateBonus += v
				p.SpeedBonus += v / 4
			},
		},
	}
}
