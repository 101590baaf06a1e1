package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// registerType maps a snake_case name to an EventType
func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	return et, ok
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "none"
}

func init() {
	registerType("sound_request", EventSoundRequest)

	registerType("ability_used", EventAbilityUsed)
	registerType("temporal_echo", EventTemporalEcho)
	registerType("kinetic_consumed", EventKineticConsumed)
	registerType("well_deployed", EventWellDeployed)
	registerType("well_detonated", EventWellDetonated)
	registerType("emp_burst", EventEmpBurst)
	registerType("shield_absorb", EventShieldAbsorb)
	registerType("aegis_impact", EventAegisImpact)
	registerType("slam_impact", EventSlamImpact)
	registerType("howl", EventHowl)
	registerType("teleport", EventTeleport)

	registerType("target_destroyed", EventTargetDestroyed)
	registerType("chain_reaction", EventChainReaction)
	registerType("critical_hit", EventCriticalHit)
	registerType("boss_spawned", EventBossSpawned)
	registerType("boss_defeated", EventBossDefeated)
	registerType("player_damaged", EventPlayerDamaged)
	registerType("player_healed", EventPlayerHealed)

	registerType("evolution_acquired", EventEvolutionAcquired)
	registerType("evolution_rerolled", EventEvolutionRerolled)
	registerType("evolution_blocked", EventEvolutionBlocked)
	registerType("evolution_frozen", EventEvolutionFrozen)
	registerType("path_chosen", EventPathChosen)
	registerType("loot_collected", EventLootCollected)
	registerType("pickup_at_full_health", EventPickupAtFullHealth)

	registerType("run_ended", EventRunEnded)
	registerType("game_reset", EventGameReset)
}
