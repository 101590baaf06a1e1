package loot

import (
	"testing"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/vmath"
)

func setup() (*Manager, *player.Player, *player.Env) {
	q := event.NewEventQueue()
	rng := vmath.NewFastRand(42)
	env := &player.Env{Events: q, Rng: rng}
	return NewManager(rng, q), player.New(vmath.V(100, 100)), env
}

// TestFirstBossOffersPath verifies the first reward is the path choice
func TestFirstBossOffersPath(t *testing.T) {
	m, p, env := setup()
	s := m.OnBossDefeated(p, 1)
	if s.Kind != ScreenPath || len(s.Options) != 3 {
		t.Fatalf("expected path screen with 3 options, got %s/%d", s.Kind, len(s.Options))
	}
	if !m.Apply(p, s.Options[1], env) || p.Path != player.PathAegis {
		t.Fatalf("path not applied, got %s", p.Path)
	}
	if m.Apply(p, s.Options[0], env) {
		t.Errorf("second path choice accepted")
	}

	s = m.OnBossDefeated(p, 2)
	if s.Kind != ScreenLoot {
		t.Errorf("expected loot screen after path chosen, got %s", s.Kind)
	}
}

// TestLootFilteredByOwnershipAndPath verifies owned gear and foreign-path gear never appear
func TestLootFilteredByOwnershipAndPath(t *testing.T) {
	m, p, env := setup()
	p.ChoosePath(player.PathBerserker, env)
	p.HasPhaseStabilizer = true

	for i := 0; i < 200; i++ {
		s := m.OnBossDefeated(p, 2)
		if len(s.Options) > parameter.LootOfferCount {
			t.Fatalf("too many options: %d", len(s.Options))
		}
		seen := map[string]bool{}
		for _, o := range s.Options {
			if o.ID == "phase_stabilizer" || o.ID == "kinetic_overload" {
				t.Fatalf("filtered option %s offered", o.ID)
			}
			if seen[o.ID] {
				t.Fatalf("duplicate option %s", o.ID)
			}
			seen[o.ID] = true
		}
	}
}

// TestApplyGear verifies gear effects and the collected event
func TestApplyGear(t *testing.T) {
	m, p, env := setup()
	p.ChoosePath(player.PathMage, env)
	env.Events.Consume()

	base := p.KineticMaxBonus
	if !m.Apply(p, Option{ID: "kinetic_overload"}, env) {
		t.Fatalf("kinetic overload rejected")
	}
	if p.KineticMaxBonus != base+parameter.KineticOverloadBonus {
		t.Errorf("kinetic bonus %v, want %v", p.KineticMaxBonus, base+parameter.KineticOverloadBonus)
	}
	if m.Apply(p, Option{ID: "kinetic_overload"}, env) {
		t.Errorf("duplicate gear accepted")
	}

	if !m.Apply(p, Option{ID: "teleport"}, env) || !p.Ability(player.AbilityTeleport).Unlocked {
		t.Errorf("teleport slot not unlocked")
	}

	collected := 0
	for _, ev := range env.Events.Consume() {
		if ev.Type == event.EventLootCollected {
			collected++
		}
	}
	if collected != 2 {
		t.Errorf("expected 2 collected events, got %d", collected)
	}
}

// TestExhaustedPoolOffersFreeUpgrade verifies the fallback screen
func TestExhaustedPoolOffersFreeUpgrade(t *testing.T) {
	m, p, env := setup()
	p.ChoosePath(player.PathMage, env)
	for _, o := range m.Available(p) {
		m.Apply(p, o, env)
	}
	if n := len(m.Available(p)); n != 0 {
		t.Fatalf("pool not exhausted, %d left", n)
	}
	if s := m.OnBossDefeated(p, 5); s.Kind != ScreenFreeUpgrade || len(s.Options) != 0 {
		t.Errorf("expected free upgrade screen, got %s", s.Kind)
	}
}

// TestUnknownOptionIgnored verifies invalid loot degrades to a no-op
func TestUnknownOptionIgnored(t *testing.T) {
	m, p, env := setup()
	if m.Apply(p, Option{ID: "does_not_exist"}, env) {
		t.Errorf("unknown option accepted")
	}
	if len(p.Progress.Loot) != 0 {
		t.Errorf("loot recorded for unknown option")
	}
}
