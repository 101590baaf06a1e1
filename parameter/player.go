package parameter

import "time"

// Player Base Stats
const (
	// PlayerBaseHP is the starting max hit points
	PlayerBaseHP = 100

	// PlayerBaseRadius is the starting collision radius
	PlayerBaseRadius = 12.0

	// PlayerMaxRadius caps size growth from tank evolutions
	PlayerMaxRadius = 40.0

	// PlayerBaseSpeed is the movement speed (units/sec)
	PlayerBaseSpeed = 280.0

	// PlayerShootCooldown is the delay between primary shots
	PlayerShootCooldown = 250 * time.Millisecond

	// PlayerPostDamageImmunity is the invulnerability window after taking damage
	PlayerPostDamageImmunity = 600 * time.Millisecond
)

// Perfect Harmony
const (
	// HarmonyStreakDuration is the time without damage after which Perfect Harmony activates
	HarmonyStreakDuration = 10 * time.Second

	// HarmonyDamageBonus is the damage multiplier while Perfect Harmony is active
	HarmonyDamageBonus = 1.25
)

// Berserker's Echo (rage)
const (
	// RageStepPercent is the missing-HP percentage per rage level
	RageStepPercent = 10

	// RageDamagePerLevel is the damage bonus per rage level
	RageDamagePerLevel = 0.05

	// RageSpeedPerLevel is the movement speed bonus per rage level
	RageSpeedPerLevel = 0.03
)

// Kinetic Charge (mage resource)
const (
	// KineticChargeMax is the charge ceiling
	KineticChargeMax = 100.0

	// BaseKineticChargeRate is the charge gained per second of movement
	BaseKineticChargeRate = 10.0

	// KineticChargeConsumption is the charge spent per consumption
	KineticChargeConsumption = 50.0

	// InitialKineticDamageBonus is the damage bonus at a full consumption
	InitialKineticDamageBonus = 1.0

	// KineticScalingInterval is the mage uptime between resource scaling steps
	KineticScalingInterval = 60 * time.Second

	// KineticScalingFactor multiplies max bonus and charge rate each interval
	KineticScalingFactor = 1.1
)

// Global Modifier Caps
const (
	// MinCooldownDivisor is the floor of (1 - cooldown reduction), capping reduction at 90%
	MinCooldownDivisor = 0.1

	// BaseCritMultiplier is the starting crit multiplier
	BaseCritMultiplier = 1.5

	// UltimateConfigurationSlotPenalty multiplies numbered-slot cooldowns
	UltimateConfigurationSlotPenalty = 1.5

	// UltimateConfigurationAbilityBonus multiplies ability ray damage
	UltimateConfigurationAbilityBonus = 2.0

	// AblativeSublayerReduction is the boss-projectile damage reduction of the gear
	AblativeSublayerReduction = 0.25
)
