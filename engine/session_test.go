package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/evolution"
	"github.com/lixenwraith/light-blaster/loot"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/storage"
	"github.com/lixenwraith/light-blaster/vmath"
	"github.com/lixenwraith/light-blaster/well"
)

const step = 100 * time.Millisecond

// recordingUI captures what the session shows
type recordingUI struct {
	score      int
	hp, maxHP  int
	phases     []Phase
	evolutions [][]evolution.Offer
	loot       [][]loot.Option
	free       [][]evolution.Offer
	cooldowns  int
}

func (u *recordingUI) SetScore(score int)                           { u.score = score }
func (u *recordingUI) SetHealth(hp, maxHP int)                      { u.hp, u.maxHP = hp, maxHP }
func (u *recordingUI) SetBuffIndicator(string, bool, time.Duration) {}
func (u *recordingUI) RefreshAbilityCooldowns(*player.Player)       { u.cooldowns++ }
func (u *recordingUI) ShowPhase(p Phase)                            { u.phases = append(u.phases, p) }
func (u *recordingUI) PopulateLoot(o []loot.Option, _ *player.Player, _ func(int)) {
	u.loot = append(u.loot, o)
}
func (u *recordingUI) PopulateFreeUpgrade(o []evolution.Offer, _ *player.Player, _ func(int)) {
	u.free = append(u.free, o)
}
func (u *recordingUI) PopulateEvolution(o []evolution.Offer, _ *player.Player, _ evolution.Mode, _ EvolutionCallbacks) {
	u.evolutions = append(u.evolutions, o)
}

func newTestSession(ui UI) (*GameSession, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.AutoFire = false
	return NewSession(cfg, store, ui, nil), store
}

func act(actions ...Action) Intent { return Intent{Actions: actions} }

// TestPauseSuspendsAndCountsDown verifies pause freezes the clock and resume waits out the countdown
func TestPauseSuspendsAndCountsDown(t *testing.T) {
	ui := &recordingUI{}
	s, _ := newTestSession(ui)

	s.Tick(step, Intent{})
	s.Tick(step, act(ActionPause))
	if s.Phase() != PhasePaused {
		t.Fatalf("expected paused, got %s", s.Phase())
	}
	elapsed := s.Elapsed()
	for range 10 {
		s.Tick(step, Intent{})
	}
	if s.Elapsed() != elapsed {
		t.Errorf("elapsed advanced while paused: %v -> %v", elapsed, s.Elapsed())
	}

	s.Tick(step, act(ActionPause))
	if s.Phase() != PhaseCountdown {
		t.Fatalf("expected countdown, got %s", s.Phase())
	}
	ticks := 0
	for s.Phase() == PhaseCountdown && ticks < 100 {
		s.Tick(step, Intent{})
		ticks++
	}
	if ticks != 29 {
		t.Errorf("expected countdown to finish after 29 more ticks, took %d", ticks)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("expected playing after countdown, got %s", s.Phase())
	}
}

// TestEvolutionThresholdOpensScreen verifies crossing the score threshold suspends play behind the evolution screen
func TestEvolutionThresholdOpensScreen(t *testing.T) {
	ui := &recordingUI{}
	s, _ := newTestSession(ui)

	s.AddScore(parameter.EvolutionFirstThreshold)
	s.Tick(step, Intent{})
	if s.Phase() != PhaseEvolution {
		t.Fatalf("expected evolution screen, got %s", s.Phase())
	}
	if len(ui.evolutions) != 1 || len(ui.evolutions[0]) != parameter.EvolutionOfferCount {
		t.Fatalf("expected one populated screen of %d offers, got %v", parameter.EvolutionOfferCount, ui.evolutions)
	}
	if s.Player.Progress.NextEvolutionScore <= parameter.EvolutionFirstThreshold {
		t.Errorf("threshold not advanced: %d", s.Player.Progress.NextEvolutionScore)
	}

	elapsed := s.Elapsed()
	s.Tick(step, Intent{})
	if s.Elapsed() != elapsed {
		t.Error("gameplay advanced behind the evolution screen")
	}

	s.Tick(step, act(ActionCard1))
	if s.Phase() != PhasePlaying {
		t.Fatalf("expected playing after selection, got %s", s.Phase())
	}
	if n := len(s.Player.Progress.Acquired); n != 1 {
		t.Errorf("expected 1 acquired evolution, got %d", n)
	}
}

// TestEvolutionRerollRepopulates verifies reroll refreshes the screen and skip closes it empty-handed
func TestEvolutionRerollRepopulates(t *testing.T) {
	ui := &recordingUI{}
	s, _ := newTestSession(ui)

	s.AddScore(parameter.EvolutionFirstThreshold)
	s.Tick(step, Intent{})
	rerolls := s.Player.Progress.RerollsLeft
	s.Tick(step, act(ActionReroll))
	if len(ui.evolutions) != 2 {
		t.Fatalf("expected screen repopulated after reroll, got %d populations", len(ui.evolutions))
	}
	if s.Player.Progress.RerollsLeft != rerolls-1 {
		t.Errorf("expected reroll spent, %d left", s.Player.Progress.RerollsLeft)
	}

	s.Tick(step, act(ActionSkip))
	if s.Phase() != PhasePlaying || len(s.Player.Progress.Acquired) != 0 {
		t.Errorf("skip should close without selection: phase %s, acquired %d", s.Phase(), len(s.Player.Progress.Acquired))
	}
}

// TestNilUIClosesScreen verifies a missing frontend resolves the screen as a null selection
func TestNilUIClosesScreen(t *testing.T) {
	s, _ := newTestSession(nil)
	s.AddScore(parameter.EvolutionFirstThreshold)
	s.Tick(step, Intent{})
	if s.Phase() != PhasePlaying {
		t.Errorf("expected null selection to resume play, got %s", s.Phase())
	}
	if len(s.Player.Progress.Acquired) != 0 {
		t.Error("null selection must not acquire anything")
	}
}

// TestBossLootOffersPath verifies the first boss drop forces a path choice
func TestBossLootOffersPath(t *testing.T) {
	ui := &recordingUI{}
	s, _ := newTestSession(ui)

	s.Pickups = append(s.Pickups, entity.NewBossLoot(s.Player.Pos, 1))
	s.Tick(step, Intent{})
	if s.Phase() != PhaseLoot {
		t.Fatalf("expected loot screen, got %s", s.Phase())
	}
	if len(ui.loot) != 1 || len(ui.loot[0]) != 3 || ui.loot[0][0].Kind != loot.KindPath {
		t.Fatalf("expected three path options, got %v", ui.loot)
	}

	s.Tick(step, act(ActionSkip))
	if s.Phase() != PhaseLoot {
		t.Error("path choice must not be skippable")
	}

	s.Tick(step, act(ActionCard1))
	if s.Phase() != PhasePlaying {
		t.Fatalf("expected playing after choice, got %s", s.Phase())
	}
	if s.Player.Path != ui.loot[0][0].Path {
		t.Errorf("expected path %s, got %s", ui.loot[0][0].Path, s.Player.Path)
	}
	if len(s.Pickups) != 0 {
		t.Error("collected loot should leave the arena")
	}
}

// TestHealPickupAtFullHealth verifies touching a heal drop at full health raises its event
func TestHealPickupAtFullHealth(t *testing.T) {
	s, _ := newTestSession(&recordingUI{})
	s.Pickups = append(s.Pickups, entity.NewHealPickup(s.Player.Pos))
	s.Tick(step, Intent{})

	found := false
	for _, ev := range s.LastEvents() {
		if ev.Type == event.EventPickupAtFullHealth {
			found = true
		}
	}
	if !found {
		t.Error("expected full-health pickup event")
	}
	if s.Player.HP != s.Player.MaxHP {
		t.Errorf("hp changed: %d/%d", s.Player.HP, s.Player.MaxHP)
	}
}

// TestHealPickupExpires verifies uncollected heal drops vanish after their lifetime
func TestHealPickupExpires(t *testing.T) {
	s, _ := newTestSession(&recordingUI{})
	s.Player.MaxHP, s.Player.HP = 10000, 10000
	far := s.Player.Pos
	far.Y = 40
	s.Pickups = append(s.Pickups, entity.NewHealPickup(far))
	for range int(parameter.LootDropLifetime/step) + 1 {
		s.Tick(step, Intent{})
	}
	for _, pk := range s.Pickups {
		if pk.Kind == entity.PickupHeal && pk.Pos == far {
			t.Fatal("heal drop survived past its lifetime")
		}
	}
}

// TestRunEndRecordsScoreAndRestarts verifies death records the survival score and restart begins a fresh run
func TestRunEndRecordsScoreAndRestarts(t *testing.T) {
	ui := &recordingUI{}
	s, _ := newTestSession(ui)

	s.AddScore(120)
	s.Player.HP = 0
	s.Tick(step, Intent{})
	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %s", s.Phase())
	}
	top := s.HighScores.Top(storage.CategorySurvival)
	if len(top) != 1 || top[0].Value != 120 || top[0].RunID != s.RunID() {
		t.Fatalf("unexpected survival table %+v", top)
	}
	if top[0].Stats.MaxHP != parameter.PlayerBaseHP {
		t.Errorf("snapshot max hp %d", top[0].Stats.MaxHP)
	}

	firstRun := s.RunID()
	s.Tick(step, act(ActionRestart))
	if s.Phase() != PhasePlaying || s.Score() != 0 || s.Player.HP != parameter.PlayerBaseHP {
		t.Errorf("restart did not reset: phase %s score %d hp %d", s.Phase(), s.Score(), s.Player.HP)
	}
	if s.RunID() == firstRun {
		t.Error("restart should issue a new run id")
	}
}

// TestScoreIgnoredAfterGameOver verifies points are not credited once the run has ended
func TestScoreIgnoredAfterGameOver(t *testing.T) {
	s, _ := newTestSession(nil)
	s.Player.HP = 0
	s.Tick(step, Intent{})
	s.AddScore(50)
	if s.Score() != 0 {
		t.Errorf("expected score frozen, got %d", s.Score())
	}
}

// TestSpawnInterval verifies the spawn interval shrinks with score down to its floor
func TestSpawnInterval(t *testing.T) {
	base, lo := parameter.TargetSpawnInterval, parameter.TargetSpawnMinInterval
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, base},
		{parameter.SpawnIntervalScoreStep - 1, base},
		{parameter.SpawnIntervalScoreStep, base - parameter.SpawnIntervalReduction},
		{parameter.SpawnIntervalScoreStep * 1000, lo},
	}
	for _, tt := range tests {
		if got := spawnInterval(base, lo, tt.score); got != tt.want {
			t.Errorf("score %d: expected %v, got %v", tt.score, tt.want, got)
		}
	}
}

// TestSpawnersPopulateArena verifies targets and neutral rays appear outside the player clearance
func TestSpawnersPopulateArena(t *testing.T) {
	s, _ := newTestSession(&recordingUI{})
	for range 25 {
		s.Tick(step, Intent{})
	}
	if s.Targets.Len() == 0 {
		t.Error("expected targets to spawn")
	}
	if s.Pool.ActiveCount() == 0 {
		t.Error("expected a neutral ray to spawn")
	}
	for _, tg := range s.Targets.Within(s.Player.Pos, parameter.SpawnPlayerClearance-1-parameter.TargetArmoredRadius) {
		t.Errorf("target spawned inside player clearance at %v", tg.Pos)
	}
}

// TestIntentBufferDrains verifies Take returns queued actions once
func TestIntentBufferDrains(t *testing.T) {
	b := NewIntentBuffer()
	b.Push(ActionSlot1)
	b.Push(ActionPause)
	in := b.Take()
	if len(in.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(in.Actions))
	}
	if len(b.Take().Actions) != 0 {
		t.Error("expected buffer drained")
	}
}

// TestGravityBallSteersTowardActiveWell verifies gravity balls chase a deployed player well, else the player
func TestGravityBallSteersTowardActiveWell(t *testing.T) {
	tests := []struct {
		name      string
		withWell  bool
		wantRight bool
	}{
		{"active well", true, true},
		{"no well", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(&recordingUI{})
			s.Player.Pos = vmath.V(100, 400)
			if tc.withWell {
				s.Player.Well = well.New(vmath.V(1100, 400), 0, nil)
			}
			ball := s.Pool.Spawn(ray.ResetParams{
				Pos:              vmath.V(600, 400),
				Dir:              vmath.V(0, -1),
				Speed:            parameter.GravityBallSpeed,
				Radius:           parameter.RayRadius,
				Owner:            ray.OwnerBoss,
				IsGravityWellRay: true,
				MaxBounces:       3,
			})

			for range 10 {
				s.Tick(step, Intent{})
			}
			if right := ball.Dir.X > 0; right != tc.wantRight {
				t.Errorf("ball heading %v, want rightward=%v", ball.Dir, tc.wantRight)
			}
		})
	}
}

// TestEvolutionScreenActionsUnlockAchievements verifies block and freeze on the suspended screen reach the tracker
func TestEvolutionScreenActionsUnlockAchievements(t *testing.T) {
	s, _ := newTestSession(&recordingUI{})
	s.AddScore(parameter.EvolutionFirstThreshold)
	s.Tick(step, Intent{})
	if s.Phase() != PhaseEvolution {
		t.Fatalf("expected evolution screen, got %s", s.Phase())
	}
	blocks, freezes := s.Player.Progress.BlocksLeft, s.Player.Progress.FreezesLeft

	s.Tick(step, act(ActionToggleBlock))
	s.Tick(step, act(ActionCard1))
	s.Tick(step, act(ActionToggleFreeze))
	s.Tick(step, act(ActionCard2))

	if s.Player.Progress.BlocksLeft != blocks-1 || s.Player.Progress.FreezesLeft != freezes-1 {
		t.Fatalf("block and freeze not applied: blocks %d freezes %d", s.Player.Progress.BlocksLeft, s.Player.Progress.FreezesLeft)
	}
	for _, id := range []string{"picky", "patience"} {
		if !s.Achievements.Unlocked(id) {
			t.Errorf("achievement %s not unlocked", id)
		}
	}
}
