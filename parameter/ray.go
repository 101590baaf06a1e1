package parameter

import "time"

// Ray Geometry & Motion
const (
	// RayRadius is the collision radius of an ordinary ray
	RayRadius = 4.0

	// RaySpeed is the base travel speed of player and neutral rays (units/sec)
	RaySpeed = 420.0

	// BossRaySpeed is the base travel speed of boss projectiles (units/sec)
	BossRaySpeed = 300.0

	// RayTrailLength is the number of historical positions kept per ray
	RayTrailLength = 8

	// RayPoolInitialSize is the preallocated ray pool capacity
	RayPoolInitialSize = 256
)

// Ray Lifetime
const (
	// RayLifetime is the default life timer of a moving ray
	RayLifetime = 6 * time.Second

	// AbsoluteMaxRayLifetime is the hard age cap after which any ray fades
	AbsoluteMaxRayLifetime = 15 * time.Second

	// RayFadeDuration is the time a fading ray takes to reach zero opacity
	RayFadeDuration = 400 * time.Millisecond

	// RaySpawnGracePeriod is the post-spawn window in which a ray ignores entity collisions
	RaySpawnGracePeriod = 250 * time.Millisecond
)

// Wall Bounces
const (
	// MaxBouncesPlayerRay is the bounce budget of player-fired rays before fading
	MaxBouncesPlayerRay = 3

	// MaxBouncesNeutralRay is the bounce budget of neutral arena rays
	MaxBouncesNeutralRay = 4

	// MaxBouncesBossRay is the bounce budget of boss projectiles
	MaxBouncesBossRay = 2

	// MaxBouncesGravityBall is the bounce budget of boss gravity balls before detonation
	MaxBouncesGravityBall = 5

	// MomentumBonusPerBounce is the default damage bonus accrued per wall bounce (only with momentum evolution)
	MomentumBonusPerBounce = 0.0
)

// Phase Stabilizer
const (
	// PhaseStabilizerWallProximity is the distance from a wall within which phasing may happen
	PhaseStabilizerWallProximity = 12.0

	// PhaseStabilizerChance is the probability an eligible ray passes through a wall instead of bouncing
	PhaseStabilizerChance = 0.15
)

// Gravity Ball (boss projectile)
const (
	// GravityBallFormingDuration is the time a gravity ball takes to grow to full radius
	GravityBallFormingDuration = 1200 * time.Millisecond

	// GravityBallRadius is the full radius of a formed gravity ball
	GravityBallRadius = 18.0

	// GravityBallSpeed is the travel speed of a formed gravity ball (units/sec)
	GravityBallSpeed = 160.0

	// GravityBallMaxTurnRate is the maximum heading change (radians/sec)
	GravityBallMaxTurnRate = 2.2

	// GravityBallSelfAvoidGrace is the delay before the spawning-boss avoidance nudge activates
	GravityBallSelfAvoidGrace = 500 * time.Millisecond

	// GravityBallSelfAvoidRadius is the margin beyond the boss radius where avoidance applies
	GravityBallSelfAvoidRadius = 60.0

	// GravityBallSelfAvoidStrength is the heading nudge strength away from the owner (radians/sec)
	GravityBallSelfAvoidStrength = 3.0

	// GravityBallCorruptRadius is the radius within which a gravity ball corrupts player rays
	GravityBallCorruptRadius = 70.0
)
