package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never pushed
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests playback of a sound cue
	// Trigger: Any subsystem requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Ability Event ===

	// EventAbilityUsed signals a successful ability activation
	// Trigger: Player ability controller
	// Consumer: AchievementTracker | Payload: *AbilityUsedPayload
	EventAbilityUsed

	// EventTemporalEcho signals a temporal echo proc refunding other cooldowns
	// Trigger: Player ability controller on activation roll success
	// Consumer: AchievementTracker, UI | Payload: *TemporalEchoPayload
	EventTemporalEcho

	// EventKineticConsumed signals kinetic charge spent for a damage boost
	// Trigger: Omega Laser activation, well detonation (mage)
	// Consumer: AchievementTracker | Payload: *KineticConsumedPayload
	EventKineticConsumed

	// EventWellDeployed signals a player gravity well deployment
	// Trigger: Mini Gravity Well first press
	// Consumer: AchievementTracker | Payload: nil
	EventWellDeployed

	// EventWellDetonated signals a player gravity well detonation
	// Trigger: Mini Gravity Well second press, timer expiry, boss collision
	// Consumer: AchievementTracker | Payload: *WellDetonatedPayload
	EventWellDetonated

	// EventEmpBurst signals rays cleared by an EMP burst
	// Trigger: EMP Burst activation
	// Consumer: AchievementTracker | Payload: *EmpBurstPayload
	EventEmpBurst

	// EventShieldAbsorb signals a ray converted to healing by Shield Overcharge
	// Trigger: Combat resolver
	// Consumer: AchievementTracker | Payload: *ShieldAbsorbPayload
	EventShieldAbsorb

	// EventAegisImpact signals an Aegis Charge dash impact
	// Trigger: Player ability controller on dash completion
	// Consumer: AchievementTracker | Payload: *AegisImpactPayload
	EventAegisImpact

	// EventSlamImpact signals a Seismic Slam resolution
	// Trigger: Player ability controller
	// Consumer: AchievementTracker | Payload: *AreaHitPayload
	EventSlamImpact

	// EventHowl signals a Savage Howl resolution
	// Trigger: Player ability controller
	// Consumer: AchievementTracker | Payload: *AreaHitPayload
	EventHowl

	// EventTeleport signals a teleport relocation
	// Trigger: Teleport activation
	// Consumer: AchievementTracker | Payload: nil
	EventTeleport

	// === Combat Event ===

	// EventTargetDestroyed signals a breakable target removed for score
	// Trigger: Combat resolver, area abilities
	// Consumer: AchievementTracker | Payload: *TargetDestroyedPayload
	EventTargetDestroyed

	// EventChainReaction signals a chain reaction sweep
	// Trigger: Combat resolver on proc
	// Consumer: AchievementTracker | Payload: *ChainReactionPayload
	EventChainReaction

	// EventCriticalHit signals a critical ray hit
	// Trigger: Combat resolver
	// Consumer: AchievementTracker | Payload: *DamagePayload
	EventCriticalHit

	// EventBossSpawned signals a boss entering the arena
	// Trigger: Boss manager
	// Consumer: AchievementTracker, AudioSystem | Payload: *BossPayload
	EventBossSpawned

	// EventBossDefeated signals a boss reaching zero health
	// Trigger: Boss manager
	// Consumer: Session (loot), AchievementTracker | Payload: *BossPayload
	EventBossDefeated

	// EventPlayerDamaged signals damage applied to the player
	// Trigger: Player TakeDamage
	// Consumer: AchievementTracker, Renderer (shake) | Payload: *DamagePayload
	EventPlayerDamaged

	// EventPlayerHealed signals healing applied to the player
	// Trigger: Shield absorb, lifesteal, heal pickups
	// Consumer: AchievementTracker | Payload: *DamagePayload
	EventPlayerHealed

	// === Progression Event ===

	// EventEvolutionAcquired signals an evolution selection
	// Trigger: Evolution manager
	// Consumer: AchievementTracker | Payload: *EvolutionPayload
	EventEvolutionAcquired

	// EventEvolutionRerolled signals an offer reroll
	// Trigger: Evolution manager | Payload: nil
	EventEvolutionRerolled

	// EventEvolutionBlocked signals an evolution permanently excluded
	// Trigger: Evolution manager | Payload: *EvolutionPayload
	EventEvolutionBlocked

	// EventEvolutionFrozen signals an evolution held for later screens
	// Trigger: Evolution manager | Payload: *EvolutionPayload
	EventEvolutionFrozen

	// EventPathChosen signals the one-time path selection
	// Trigger: Loot manager | Payload: *PathChosenPayload
	EventPathChosen

	// EventLootCollected signals a boss loot upgrade applied
	// Trigger: Loot manager | Payload: *LootPayload
	EventLootCollected

	// EventPickupAtFullHealth signals a heal pickup collected with no missing HP
	// Trigger: Session pickup collision | Payload: nil
	EventPickupAtFullHealth

	// === Session Event ===

	// EventRunEnded signals hp reaching zero
	// Trigger: Session | Payload: *RunEndedPayload
	EventRunEnded

	// EventGameReset signals a replay reset
	// Trigger: Session Reset | Payload: nil
	EventGameReset

	// eventTypeCount is the sentinel for iteration
	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
