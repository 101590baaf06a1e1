package parameter

import "time"

// Omega Laser (mage LMB)
const (
	OmegaLaserCooldown = 15 * time.Second
	OmegaLaserDuration = 3 * time.Second

	// OmegaLaserTickInterval is the damage tick period of the beam
	OmegaLaserTickInterval = 100 * time.Millisecond

	// OmegaLaserTickDamage is the base damage per tick before multipliers
	OmegaLaserTickDamage = 2.0

	// OmegaLaserWidth is the beam half-width used for segment intersection
	OmegaLaserWidth = 10.0

	// OmegaLaserLength is the beam length from the player
	OmegaLaserLength = 1600.0
)

// Shield Overcharge (mage RMB)
const (
	ShieldOverchargeCooldown = 20 * time.Second
	ShieldOverchargeDuration = 4 * time.Second

	// ShieldOverchargeHealPerRay is the heal granted per absorbed ray
	ShieldOverchargeHealPerRay = 2
)

// Aegis Charge (aegis LMB)
const (
	AegisChargeCooldown = 8 * time.Second

	// AegisChargeMaxChargeTime caps accumulated charge time
	AegisChargeMaxChargeTime = 2000 * time.Millisecond

	// AegisChargeMinDamage is the impact damage at zero charge
	AegisChargeMinDamage = 20.0

	// AegisChargeMaxDamageScalePerSecondCharged is the damage scale per second of charge
	AegisChargeMaxDamageScalePerSecondCharged = 1.5

	// AegisChargeDashSpeedMultiplier multiplies base speed during the dash
	AegisChargeDashSpeedMultiplier = 8.0

	// AegisChargeDashMaxDuration times out a dash that does not reach its target
	AegisChargeDashMaxDuration = 600 * time.Millisecond

	// AegisChargeDashDamageReduction is the incoming damage reduction while dashing
	AegisChargeDashDamageReduction = 0.5

	// AegisChargeImpactRadius is the AOE radius on dash completion
	AegisChargeImpactRadius = 120.0

	// AegisChargeArrivalDistance is the distance at which the dash counts as arrived
	AegisChargeArrivalDistance = 8.0
)

// Seismic Slam (aegis RMB)
const (
	SeismicSlamCooldown = 10 * time.Second

	// SeismicSlamBaseDamage is the flat damage component
	SeismicSlamBaseDamage = 10.0

	// SeismicSlamHPScale is the damage per point of max HP
	SeismicSlamHPScale = 0.1

	// SeismicSlamRadiusScale is the damage per unit of player radius
	SeismicSlamRadiusScale = 0.5

	// SeismicSlamRadiusBase is the base AOE radius
	SeismicSlamRadiusBase = 100.0

	// SeismicSlamRadiusPerSize is the extra AOE radius per unit of player radius
	SeismicSlamRadiusPerSize = 3.0

	// SeismicSlamKnockback is the recoil speed applied to hit bosses (units/sec)
	SeismicSlamKnockback = 400.0
)

// Bloodpact (berserker LMB)
const (
	BloodpactCooldown = 18 * time.Second
	BloodpactDuration = 6 * time.Second

	// BloodpactLifesteal is the fraction of damage dealt returned as healing
	BloodpactLifesteal = 0.2
)

// Savage Howl (berserker RMB)
const (
	SavageHowlCooldown = 14 * time.Second

	// SavageHowlRadius is the fear AOE radius
	SavageHowlRadius = 250.0

	// SavageHowlFearDuration is the fear status duration applied to bosses
	SavageHowlFearDuration = 3 * time.Second

	// SavageHowlAttackSpeedBuff divides the shoot cooldown while active
	SavageHowlAttackSpeedBuff = 1.5

	// SavageHowlBuffDuration is the attack-speed buff duration
	SavageHowlBuffDuration = 5 * time.Second
)

// Numbered Slot Abilities
const (
	EmpBurstCooldown = 12 * time.Second
	MiniWellCooldown = 16 * time.Second
	TeleportCooldown = 6 * time.Second

	// TeleportImmunityDuration is the invulnerability window after teleport
	TeleportImmunityDuration = 500 * time.Millisecond
)

// Temporal Echo
const (
	// TemporalEchoRefund is the cooldown removed from every other cooling ability
	TemporalEchoRefund = 2000 * time.Millisecond

	// TemporalEchoMaxChance caps the proc chance from evolutions
	TemporalEchoMaxChance = 0.5
)
