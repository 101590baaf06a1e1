package parameter

import "time"

// Incoming Damage
const (
	// NeutralRayDamage is the damage of a neutral ray hitting the player
	NeutralRayDamage = 8

	// BossRayDamage is the base damage of a boss projectile
	BossRayDamage = 12

	// GravityBallDamage is the damage of a boss gravity ball detonating on the player
	GravityBallDamage = 25

	// BossContactDamage is the true damage dealt on body contact with a boss
	BossContactDamage = 15
)

// Chain Reaction
const (
	// ChainReactionRadius is the sweep radius of a chain reaction
	ChainReactionRadius = 80.0

	// ChainReactionDuration is the visual lifetime of a chain reaction effect
	ChainReactionDuration = 300 * time.Millisecond

	// ChainReactionMaxChance caps the proc chance from evolutions
	ChainReactionMaxChance = 0.6
)

// Breakable Targets
const (
	// TargetRadius is the collision radius of a breakable target
	TargetRadius = 10.0

	// TargetArmoredRadius is the radius of an armored target
	TargetArmoredRadius = 14.0

	// TargetArmoredHP is the hit points of an armored target
	TargetArmoredHP = 3
)

// Effects
const (
	// ImpactEffectDuration is the lifetime of AOE impact visuals (slam, aegis, howl)
	ImpactEffectDuration = 400 * time.Millisecond

	// ScreenShakeDuration is the screen-shake time after the player takes damage
	ScreenShakeDuration = 200 * time.Millisecond
)
