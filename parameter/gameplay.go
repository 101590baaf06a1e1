package parameter

import "time"

// Scoring
const (
	// ScoreTargetDestroyed is the score for destroying a breakable target
	ScoreTargetDestroyed = 10

	// ScoreBossDefeatedPerTier is the score per tier of a defeated boss
	ScoreBossDefeatedPerTier = 250
)

// Arena Spawning
const (
	// TargetSpawnInterval is the base interval between breakable target spawns
	TargetSpawnInterval = 1500 * time.Millisecond

	// TargetSpawnMinInterval is the floor of the target spawn interval
	TargetSpawnMinInterval = 500 * time.Millisecond

	// TargetMaxCount caps concurrently alive breakable targets
	TargetMaxCount = 24

	// TargetArmoredChance is the probability a spawned target is armored
	TargetArmoredChance = 0.2

	// NeutralRaySpawnInterval is the base interval between neutral ray emissions
	NeutralRaySpawnInterval = 2 * time.Second

	// NeutralRaySpawnMinInterval is the floor of the neutral emission interval
	NeutralRaySpawnMinInterval = 400 * time.Millisecond

	// SpawnIntervalScoreStep is the score per interval reduction step
	SpawnIntervalScoreStep = 500

	// SpawnIntervalReduction is the interval reduction per score step
	SpawnIntervalReduction = 100 * time.Millisecond

	// SpawnPlayerClearance is the minimum distance from the player for spawns
	SpawnPlayerClearance = 120.0
)

// Bosses
const (
	// BossFirstScore is the score at which the first boss spawns
	BossFirstScore = 1000

	// BossScoreInterval is the score gap between boss spawns
	BossScoreInterval = 1500

	// BossBaseHP is the hit points of a tier-1 boss
	BossBaseHP = 120

	// BossHPPerTier is the extra hit points per tier
	BossHPPerTier = 80

	// BossRadius is the collision radius of a boss
	BossRadius = 36.0

	// BossSpeed is the boss chase speed (units/sec)
	BossSpeed = 70.0

	// BossFireInterval is the interval between boss volleys
	BossFireInterval = 2 * time.Second

	// BossVolleySize is the number of rays in a ring volley
	BossVolleySize = 10

	// BossGravityBallInterval is the interval between gravity balls for singularity bosses
	BossGravityBallInterval = 6 * time.Second

	// BossRecoilDamping is the per-second decay of boss recoil velocity
	BossRecoilDamping = 4.0

	// GravityBallBurstSize is the number of rays released when a gravity ball detonates
	GravityBallBurstSize = 8
)

// Loot Drops
const (
	// LootDropRadius is the pickup radius of a loot drop
	LootDropRadius = 14.0

	// LootDropLifetime is the time before an uncollected drop expires
	LootDropLifetime = 20 * time.Second

	// HealDropChance is the chance a destroyed target drops a heal
	HealDropChance = 0.1

	// HealDropAmount is the heal granted by a heal drop
	HealDropAmount = 15
)

// High Scores
const (
	// HighScoreEntriesPerCategory caps the stored entries per category
	HighScoreEntriesPerCategory = 10
)
