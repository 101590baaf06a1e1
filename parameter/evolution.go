package parameter

// Evolution Meta Budgets
const (
	// MaxEvolutionRerolls is the per-run reroll budget
	MaxEvolutionRerolls = 3

	// MaxEvolutionBlocks is the per-run block budget
	MaxEvolutionBlocks = 3

	// MaxEvolutionFreezes is the per-run freeze budget
	MaxEvolutionFreezes = 3

	// EvolutionOfferCount is the number of offer slots per screen
	EvolutionOfferCount = 3
)

// Tier Rolling (percent)
const (
	// TierBracketSize is the number of unlocked achievements per bracket
	TierBracketSize = 15

	// TierMaxBrackets caps the bracket count used for probability scaling
	TierMaxBrackets = 4

	// TierLegendaryBase is the legendary probability at bracket 0
	TierLegendaryBase = 5.0

	// TierLegendaryPerBracket is the legendary probability gain per bracket
	TierLegendaryPerBracket = 2.5

	// TierEpicBase is the epic probability at bracket 0
	TierEpicBase = 10.0

	// TierEpicPerBracket is the epic probability gain per bracket
	TierEpicPerBracket = 5.0

	// TierRareBase is the rare probability at bracket 0
	TierRareBase = 35.0

	// TierRarePerBracket is the rare probability gain per bracket
	TierRarePerBracket = 5.0
)

// Evolution Score Thresholds
const (
	// EvolutionFirstThreshold is the score at which the first evolution screen opens
	EvolutionFirstThreshold = 300

	// EvolutionThresholdBase is the base score gap between evolution screens
	EvolutionThresholdBase = 400

	// EvolutionThresholdGrowth is the extra gap added per evolution already taken
	EvolutionThresholdGrowth = 100
)
