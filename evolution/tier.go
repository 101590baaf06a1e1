package evolution

import (
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Tier is the rarity bucket of an offer
type Tier uint8

const (
	TierCommon Tier = iota
	TierRare
	TierEpic
	TierLegendary
	tierCount

	// TierNone marks core offers whose effect does not scale by tier
	TierNone Tier = 255
)

var tierNames = [tierCount]string{"common", "rare", "epic", "legendary"}

func (t Tier) String() string {
	if t < tierCount {
		return tierNames[t]
	}
	return ""
}

// ParseTier converts a tier name; unknown names return TierNone
func ParseTier(s string) Tier {
	for i, name := range tierNames {
		if name == s {
			return Tier(i)
		}
	}
	return TierNone
}

// TierOdds returns the per-tier percentages for legendary, epic and rare
// Common is the remainder to 100
func TierOdds(unlockedAchievements int) (legendary, epic, rare float64) {
	bracket := min(max(unlockedAchievements, 0)/parameter.TierBracketSize, parameter.TierMaxBrackets)
	b := float64(bracket)
	legendary = parameter.TierLegendaryBase + parameter.TierLegendaryPerBracket*b
	epic = parameter.TierEpicBase + parameter.TierEpicPerBracket*b
	rare = parameter.TierRareBase + parameter.TierRarePerBracket*b
	return legendary, epic, rare
}

// RollTier draws a tier with odds improving per bracket of unlocked achievements
func RollTier(rng *vmath.FastRand, unlockedAchievements int) Tier {
	legendary, epic, rare := TierOdds(unlockedAchievements)
	roll := rng.Float64() * 100
	switch {
	case roll < legendary:
		return TierLegendary
	case roll < legendary+epic:
		return TierEpic
	case roll < legendary+epic+rare:
		return TierRare
	default:
		return TierCommon
	}
}
