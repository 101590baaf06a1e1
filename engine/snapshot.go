package engine

import (
	"time"

	"github.com/lixenwraith/light-blaster/achievement"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/status"
	"github.com/lixenwraith/light-blaster/storage"
)

// counters exposes run totals under the names achievement rules reference
func (s *GameSession) counters() map[string]int {
	st := s.Player.Stats
	return map[string]int{
		"shots_fired":       st.ShotsFired,
		"damage_dealt":      st.DamageDealt,
		"damage_taken":      st.DamageTaken,
		"healed":            st.Healed,
		"targets_destroyed": st.TargetsDestroyed,
		"ability_uses":      st.AbilityUses,
		"rays_absorbed":     st.RaysAbsorbed,
		"loot_collected":    len(s.Player.Progress.Loot),
		"seconds_alive":     int(s.elapsed / time.Second),
	}
}

func (s *GameSession) achievementSnapshot() achievement.Snapshot {
	classes := make(map[string]int)
	for _, a := range s.Player.Progress.Acquired {
		classes[a.Class]++
	}
	return achievement.Snapshot{
		Score:            s.score,
		Path:             s.Player.Path.String(),
		MaxBossTier:      s.Bosses.MaxDefeatedTier(),
		Counters:         s.counters(),
		EvolutionClasses: classes,
	}
}

// runSnapshot captures the player for the high-score table
func (s *GameSession) runSnapshot() storage.RunSnapshot {
	p := s.Player
	snap := storage.RunSnapshot{
		Score:       s.score,
		DurationMs:  s.elapsed.Milliseconds(),
		Path:        p.Path.String(),
		MaxHP:       p.MaxHP,
		Radius:      p.Radius,
		MaxBossTier: s.Bosses.MaxDefeatedTier(),
		Counters:    s.counters(),
	}
	for _, a := range p.Progress.Acquired {
		snap.Evolutions = append(snap.Evolutions, storage.EvolutionRecord{ID: a.ID, Tier: a.Tier, Class: a.Class})
	}
	for id := range p.Progress.Loot {
		snap.Loot = append(snap.Loot, id)
	}
	for _, id := range p.UnlockedAbilities() {
		snap.Abilities = append(snap.Abilities, id.String())
	}
	return snap
}

// refreshUI pushes hud values to the frontend
func (s *GameSession) refreshUI() {
	if s.ui == nil {
		return
	}
	p := s.Player
	s.ui.SetScore(s.score)
	s.ui.SetHealth(p.HP, p.MaxHP)

	bp := p.Ability(player.AbilityBloodpact)
	s.ui.SetBuffIndicator("bloodpact", p.BloodpactActive(), bp.Timer)
	so := p.Ability(player.AbilityShieldOvercharge)
	s.ui.SetBuffIndicator("shield", p.ShieldActive(), so.Timer)
	s.ui.SetBuffIndicator("howl", p.HowlBuffTimer > 0, p.HowlBuffTimer)
	s.ui.SetBuffIndicator("harmony", p.HarmonyActive(), 0)
	s.ui.RefreshAbilityCooldowns(p)
}

// publishStatus stores per-tick telemetry
func (s *GameSession) publishStatus(took time.Duration) {
	r := s.Status
	r.Ints.Get(status.KeyRaysActive).Store(int64(s.Pool.ActiveCount()))
	r.Ints.Get(status.KeyRaysPooled).Store(int64(s.Pool.Len()))
	r.Ints.Get(status.KeyRaysOverflow).Store(int64(s.Pool.Grown()))
	r.Ints.Get(status.KeyTargets).Store(int64(s.Targets.Len()))
	r.Ints.Get(status.KeyBosses).Store(int64(len(s.Bosses.ActiveBosses())))
	r.Ints.Get(status.KeyEventsPerTick).Store(int64(len(s.lastEvents)))
	r.Ints.Get(status.KeyFrame).Store(s.frame)
	r.Floats.Get(status.KeyTickMillis).Smooth(float64(took.Microseconds())/1000, 0.1)
	r.Bools.Get(status.KeyPaused).Store(s.phase.Suspended())
}
