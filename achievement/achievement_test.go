package achievement

import (
	"strings"
	"testing"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/storage"
)

// TestDefaultsParse verifies the embedded table is valid
func TestDefaultsParse(t *testing.T) {
	defs := Defaults()
	if len(defs) < 20 {
		t.Fatalf("expected the built-in table, got %d entries", len(defs))
	}
	for _, d := range defs {
		if d.Name == "" || d.Description == "" {
			t.Errorf("%s missing display text", d.ID)
		}
	}
}

// TestParseRejectsInvalid covers table validation errors
func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"duplicate", `achievements: [{id: a, condition: {kind: score, threshold: 1}}, {id: a, condition: {kind: score, threshold: 2}}]`, "duplicate"},
		{"unknown kind", `achievements: [{id: a, condition: {kind: luck}}]`, "unknown kind"},
		{"unknown event", `achievements: [{id: a, condition: {kind: event, event: nope}}]`, "unknown event"},
		{"unknown path", `achievements: [{id: a, condition: {kind: path, path: rogue}}]`, "unknown path"},
		{"missing threshold", `achievements: [{id: a, condition: {kind: score}}]`, "threshold"},
		{"bad yaml", `achievements: [`, "parse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func mustParse(t *testing.T, src string) []Definition {
	t.Helper()
	defs, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return defs
}

// TestEvaluateKinds verifies each condition kind against a snapshot
func TestEvaluateKinds(t *testing.T) {
	defs := mustParse(t, `
achievements:
  - {id: score, condition: {kind: score, threshold: 500}}
  - {id: counter, condition: {kind: counter, counter: targets_destroyed, threshold: 3}}
  - {id: class, condition: {kind: evolution_class, class: tank, threshold: 2}}
  - {id: path, condition: {kind: path, path: aegis}}
  - {id: boss, condition: {kind: boss_tier, tier: 2}}
  - {id: unmet, condition: {kind: score, threshold: 9999}}
`)
	snap := Snapshot{
		Score:            500,
		Path:             "aegis",
		MaxBossTier:      3,
		Counters:         map[string]int{"targets_destroyed": 3},
		EvolutionClasses: map[string]int{"tank": 2},
	}
	got := Evaluate(defs, snap, nil, map[string]bool{})
	want := []string{"score", "counter", "class", "path", "boss"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestEvaluateEvents verifies event conditions with amount and flag filters
func TestEvaluateEvents(t *testing.T) {
	defs := mustParse(t, `
achievements:
  - {id: any_boss, condition: {kind: event, event: boss_defeated}}
  - {id: big_chain, condition: {kind: event, event: chain_reaction, min: 4}}
  - {id: blink, condition: {kind: event, event: aegis_impact, min: 1, flag: after_teleport}}
`)
	events := []event.GameEvent{
		{Type: event.EventChainReaction, Payload: &event.ChainReactionPayload{Hits: 3}},
		{Type: event.EventAegisImpact, Payload: &event.AegisImpactPayload{Kills: 1}},
	}
	if got := Evaluate(defs, Snapshot{}, events, nil); len(got) != 0 {
		t.Errorf("nothing should unlock, got %v", got)
	}

	events = append(events,
		event.GameEvent{Type: event.EventChainReaction, Payload: &event.ChainReactionPayload{Hits: 4}},
		event.GameEvent{Type: event.EventAegisImpact, Payload: &event.AegisImpactPayload{Kills: 1, AfterTeleport: true}},
		event.GameEvent{Type: event.EventBossDefeated, Payload: &event.BossPayload{Tier: 1}},
	)
	got := Evaluate(defs, Snapshot{}, events, nil)
	if strings.Join(got, ",") != "any_boss,big_chain,blink" {
		t.Errorf("got %v", got)
	}
}

// TestTrackerMonotonic verifies unlocks persist, survive reload and never repeat
func TestTrackerMonotonic(t *testing.T) {
	defs := mustParse(t, `achievements: [{id: s, condition: {kind: score, threshold: 10}}]`)
	store := storage.NewMemoryStore()

	tr := NewTracker(defs, store)
	if got := tr.Update(Snapshot{Score: 5}, nil); len(got) != 0 {
		t.Fatalf("premature unlock %v", got)
	}
	if got := tr.Update(Snapshot{Score: 10}, nil); len(got) != 1 {
		t.Fatalf("expected unlock, got %v", got)
	}
	if got := tr.Update(Snapshot{Score: 20}, nil); len(got) != 0 {
		t.Errorf("unlock repeated: %v", got)
	}
	if tr.Update(Snapshot{Score: 0}, nil); !tr.Unlocked("s") {
		t.Errorf("achievement re-locked")
	}
	if recent := tr.TakeRecent(); len(recent) != 1 || len(tr.TakeRecent()) != 0 {
		t.Errorf("recent unlocks not drained once")
	}

	reloaded := NewTracker(defs, store)
	if !reloaded.Unlocked("s") || reloaded.Count() != 1 {
		t.Errorf("unlock not persisted")
	}
}

// TestTrackerCorruptStore verifies a corrupt id list starts empty
func TestTrackerCorruptStore(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set(storage.KeyAchievements, []byte(`{"oops": true}`))
	tr := NewTracker(Defaults(), store)
	if tr.Count() != 0 {
		t.Errorf("expected empty unlock set, got %d", tr.Count())
	}
}
