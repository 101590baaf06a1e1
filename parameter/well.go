package parameter

import "time"

// Player Gravity Well
const (
	// WellVisualRadius is the capture radius; rays reaching it start orbiting
	WellVisualRadius = 30.0

	// WellPullRadius is the radius within which rays are pulled toward the well
	WellPullRadius = 220.0

	// WellPullStrength is the pull acceleration at the well center (units/sec²)
	WellPullStrength = 900.0

	// WellDuration is the default well lifetime before forced detonation
	WellDuration = 5 * time.Second

	// WellOrbitSpeedFactor scales the speed of a captured ray while orbiting
	WellOrbitSpeedFactor = 0.5

	// WellOrbitRadiusMin is the minimum assigned orbit radius as a fraction of visual radius
	WellOrbitRadiusMin = 0.6

	// WellOrbitRadiusMax is the maximum assigned orbit radius as a fraction of visual radius
	WellOrbitRadiusMax = 1.3

	// WellOrbitBlend is the per-second blend rate toward the tangential orbit velocity
	WellOrbitBlend = 6.0

	// WellDetonateSpeedMultiplier scales the prior ray speed on detonation
	WellDetonateSpeedMultiplier = 2.0

	// WellDetonateLifetime is the fresh life timer given to relaunched rays
	WellDetonateLifetime = 4 * time.Second
)
