package parameter

// Loot Pool
const (
	// LootOfferCount is the number of options on a boss loot screen
	LootOfferCount = 3

	// KineticOverloadBonus is the extra kinetic damage bonus granted by the Kinetic Overload gear
	KineticOverloadBonus = 0.5
)
