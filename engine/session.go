package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/light-blaster/achievement"
	"github.com/lixenwraith/light-blaster/boss"
	"github.com/lixenwraith/light-blaster/combat"
	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/evolution"
	"github.com/lixenwraith/light-blaster/loot"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/status"
	"github.com/lixenwraith/light-blaster/storage"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Config holds session construction options
type Config struct {
	Width      float64
	Height     float64
	Seed       uint64
	PlayerName string
	AutoFire   bool
}

// DefaultConfig returns the standard arena; a zero seed is replaced from the clock
func DefaultConfig() Config {
	return Config{
		Width:      parameter.ArenaWidth,
		Height:     parameter.ArenaHeight,
		PlayerName: "player",
		AutoFire:   true,
	}
}

// GameSession owns every piece of run state; it is driven by a single goroutine
type GameSession struct {
	cfg    Config
	bounds physics.Bounds
	rng    *vmath.FastRand

	Events *event.EventQueue
	Router *event.Router
	Status *status.Registry

	Pool    *ray.Pool
	Targets *entity.TargetSet
	Effects *entity.EffectList
	Pickups []*entity.Pickup
	Player  *player.Player

	Evolution    *evolution.Manager
	Loot         *loot.Manager
	Bosses       *boss.Manager
	combat       *combat.Resolver
	Achievements *achievement.Tracker
	HighScores   *storage.HighScores

	ui      UI
	intents *IntentBuffer

	phase      Phase
	countdown  time.Duration
	lootScreen loot.Screen
	lootQueue  []int

	score        int
	elapsed      time.Duration
	frame        int64
	runID        string
	targetTimer  time.Duration
	neutralTimer time.Duration
	lastEvents   []event.GameEvent
	aim          vmath.Vec2

	env *player.Env
}

// NewSession builds a session; store may be nil for an unpersisted run
func NewSession(cfg Config, store storage.Store, ui UI, intents *IntentBuffer) *GameSession {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = parameter.ArenaWidth, parameter.ArenaHeight
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if intents == nil {
		intents = NewIntentBuffer()
	}

	s := &GameSession{
		cfg:     cfg,
		bounds:  physics.Bounds{Width: cfg.Width, Height: cfg.Height},
		rng:     vmath.NewFastRand(cfg.Seed),
		Events:  event.NewEventQueue(),
		Status:  status.NewRegistry(),
		Pool:    ray.NewPool(parameter.RayPoolInitialSize),
		Targets: &entity.TargetSet{},
		Effects: &entity.EffectList{},
		ui:      ui,
		intents: intents,
	}
	s.Router = event.NewRouter(s.Events)
	s.Player = player.New(s.spawnPoint())

	gen := evolution.NewGenerator(evolution.Catalog(), s.rng)
	s.Evolution = evolution.NewManager(gen, s.Events)
	s.Loot = loot.NewManager(s.rng, s.Events)
	s.Bosses = boss.NewManager(s.rng, s.Events)
	s.combat = combat.NewResolver()
	s.Achievements = achievement.NewTracker(achievement.Defaults(), store)
	s.HighScores = storage.NewHighScores(store)
	gen.Achievements = s.Achievements.Count

	s.Router.Register(&dropHandler{s: s})
	s.Router.Register(&resetHandler{s: s})

	s.env = &player.Env{
		Pool:     s.Pool,
		Targets:  s.Targets,
		Effects:  s.Effects,
		Events:   s.Events,
		Rng:      s.rng,
		Bounds:   s.bounds,
		AddScore: s.AddScore,
	}
	s.startRun()
	return s
}

func (s *GameSession) spawnPoint() vmath.Vec2 {
	return vmath.V(s.bounds.Width/2, s.bounds.Height*0.75)
}

// startRun initializes per-run state
func (s *GameSession) startRun() {
	s.runID = uuid.NewString()
	s.phase = PhasePlaying
	s.score = 0
	s.elapsed = 0
	s.countdown = 0
	s.targetTimer = parameter.TargetSpawnInterval
	s.neutralTimer = parameter.NeutralRaySpawnInterval
	s.lootQueue = nil
	log.Printf("[engine] run %s started, seed %d", s.runID, s.cfg.Seed)
}

// Reset discards the current run and starts a new one
func (s *GameSession) Reset() {
	s.Events.Push(event.EventGameReset, nil)
	s.Router.DispatchAll()
}

func (s *GameSession) reset() {
	s.Pool.Clear()
	s.Targets.Clear()
	s.Effects.Clear()
	s.Pickups = nil
	s.Player.Reset(s.spawnPoint())
	s.Evolution.Close()
	s.Bosses.Reset()
	s.startRun()
	s.showPhase()
}

// SetUI attaches the frontend after construction
func (s *GameSession) SetUI(ui UI) { s.ui = ui }

// Intents returns the input buffer shared with the frontend
func (s *GameSession) Intents() *IntentBuffer { return s.intents }

func (s *GameSession) Phase() Phase           { return s.phase }
func (s *GameSession) Score() int             { return s.score }
func (s *GameSession) Elapsed() time.Duration { return s.elapsed }
func (s *GameSession) Frame() int64           { return s.frame }
func (s *GameSession) RunID() string          { return s.runID }
func (s *GameSession) Bounds() physics.Bounds { return s.bounds }
func (s *GameSession) Aim() vmath.Vec2        { return s.aim }

// Countdown returns the remaining resume countdown
func (s *GameSession) Countdown() time.Duration { return s.countdown }

// LastEvents returns the events dispatched during the most recent tick
func (s *GameSession) LastEvents() []event.GameEvent { return s.lastEvents }

// AddScore credits points to the run
func (s *GameSession) AddScore(points int) {
	if points > 0 && s.phase != PhaseGameOver {
		s.score += points
	}
}

// Tick advances the session by dt using one frame of input
// Order: input, timers, well detonations, evolution threshold, player, bosses, rays, collisions,
// pickups, effects, events; achievements run in finishTick on every path
func (s *GameSession) Tick(dt time.Duration, in Intent) {
	start := time.Now()
	dt = min(dt, parameter.MaxTickDelta)
	s.frame++
	s.Events.SetFrame(s.frame)
	if dt > 0 {
		s.Status.Floats.Get(status.KeyFPS).Smooth(float64(time.Second)/float64(dt), 0.1)
	}
	s.lastEvents = s.lastEvents[:0]
	s.aim = in.Aim
	s.env.Aim = in.Aim

	gameplay := s.handleMeta(in.Actions)

	if s.phase == PhaseCountdown {
		s.countdown -= dt
		if s.countdown <= 0 {
			s.countdown = 0
			s.setPhase(PhasePlaying)
		}
	}
	if s.phase.Suspended() {
		s.finishTick(start)
		return
	}

	s.elapsed += dt
	s.advanceSpawners(dt)
	s.env.Bosses = s.Bosses.ActiveBosses()

	if w := s.Player.Well; w != nil && w.Active() && w.PendingDetonation {
		s.Player.DetonateWell(s.env, in.Aim)
	}

	if s.score >= s.Player.Progress.NextEvolutionScore {
		s.Player.AdvanceEvolutionThreshold()
		s.openEvolution()
		s.finishTick(start)
		return
	}

	s.Player.Update(dt, s.env, in.Move)
	s.applyGameplayActions(gameplay)
	if s.cfg.AutoFire {
		s.Player.TryFire(s.env)
	}

	bctx := &boss.Context{Pool: s.Pool, PlayerPos: s.Player.Pos, Bounds: s.bounds, Rng: s.rng}
	s.Bosses.TrySpawnBoss(s.score, bctx)
	s.onDefeats(s.Bosses.Update(dt, bctx))
	s.env.Bosses = s.Bosses.ActiveBosses()

	s.Pool.Update(dt, &ray.Env{
		Bounds:          s.bounds,
		PhaseStabilizer: s.Player.HasPhaseStabilizer,
		PullTarget:      s.pullTarget(),
		Rng:             s.rng,
		Events:          s.Events,
	})

	s.combat.Resolve(s.Player, s.env)
	s.onDefeats(s.Bosses.Collect())

	s.collectPickups(dt)

	s.Effects.Update(dt)
	s.Targets.Sweep()

	s.lastEvents = append(s.lastEvents, s.Router.DispatchAll()...)

	if !s.Player.Alive() {
		s.endRun()
	} else if s.phase == PhasePlaying && len(s.lootQueue) > 0 {
		s.openLoot()
	}
	s.finishTick(start)
}

// finishTick evaluates achievements against every event of the tick, then refreshes the frontend and telemetry
// Suspended ticks still evaluate so screen actions such as block and freeze are seen
func (s *GameSession) finishTick(start time.Time) {
	s.lastEvents = append(s.lastEvents, s.Router.DispatchAll()...)
	s.Achievements.Update(s.achievementSnapshot(), s.lastEvents)
	s.refreshUI()
	s.publishStatus(time.Since(start))
}

// pullTarget is where boss gravity balls steer: an active player well, else the player
func (s *GameSession) pullTarget() vmath.Vec2 {
	if w := s.Player.Well; w.Active() {
		return w.Pos
	}
	return s.Player.Pos
}

// handleMeta applies screen and pause actions, returning the ones meant for gameplay
func (s *GameSession) handleMeta(actions []Action) []Action {
	var gameplay []Action
	for _, a := range actions {
		switch {
		case a == ActionPause:
			s.togglePause()
		case a == ActionRestart:
			if s.phase == PhaseGameOver || s.phase == PhasePaused {
				s.Reset()
			}
		case s.phase == PhaseEvolution:
			s.evolutionAction(a)
		case s.phase == PhaseLoot:
			s.lootAction(a)
		case s.phase == PhaseFreeUpgrade:
			s.freeUpgradeAction(a)
		case s.phase == PhasePlaying:
			gameplay = append(gameplay, a)
		}
	}
	return gameplay
}

func (s *GameSession) applyGameplayActions(actions []Action) {
	for _, a := range actions {
		switch a {
		case ActionPrimaryPress:
			s.Player.PressPrimary(s.env)
		case ActionPrimaryRelease:
			s.Player.ReleasePrimary(s.env)
		case ActionSecondary:
			s.Player.PressSecondary(s.env)
		case ActionSlot1, ActionSlot2, ActionSlot3:
			s.Player.UseSlot(a.slot(), s.env)
		}
	}
}

func (s *GameSession) togglePause() {
	switch s.phase {
	case PhasePlaying:
		s.setPhase(PhasePaused)
	case PhasePaused:
		s.resume()
	}
}

// resume starts the countdown back into play
func (s *GameSession) resume() {
	s.countdown = parameter.ResumeCountdownDuration
	s.setPhase(PhaseCountdown)
}

func (s *GameSession) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.phase = p
	s.showPhase()
}

func (s *GameSession) showPhase() {
	if s.ui != nil {
		s.ui.ShowPhase(s.phase)
	}
}

// onDefeats scores boss kills, records clear times and drops boss loot
func (s *GameSession) onDefeats(defeats []boss.Defeat) {
	for _, d := range defeats {
		s.AddScore(parameter.ScoreBossDefeatedPerTier * d.Tier)
		s.Pickups = append(s.Pickups, entity.NewBossLoot(s.bounds.Clamp(d.Pos, parameter.LootDropRadius*1.5), d.Tier))
		s.Effects.Add(entity.EffectDetonate, d.Pos, parameter.BossRadius*2, parameter.ImpactEffectDuration)

		entry := storage.ScoreEntry{
			Name:  s.cfg.PlayerName,
			Value: d.Elapsed.Milliseconds(),
			Stats: s.runSnapshot(),
			RunID: s.runID,
		}
		if _, err := s.HighScores.Submit(storage.BossCategory(d.Tier), entry); err != nil {
			log.Printf("[engine] record boss clear: %v", err)
		}
	}
}

// collectPickups ages drops and applies the ones the player touches
func (s *GameSession) collectPickups(dt time.Duration) {
	n := 0
	for _, pk := range s.Pickups {
		if pk.Kind == entity.PickupHeal {
			pk.Life -= dt
		}
		if pk.Expired() {
			continue
		}
		if !physics.CirclesOverlap(pk.Pos, pk.Radius, s.Player.Pos, s.Player.Radius) {
			s.Pickups[n] = pk
			n++
			continue
		}

		switch pk.Kind {
		case entity.PickupHeal:
			if s.Player.HP >= s.Player.MaxHP {
				s.Events.Push(event.EventPickupAtFullHealth, nil)
			}
			s.Player.Heal(pk.Amount, s.env)
		case entity.PickupBossLoot:
			s.lootQueue = append(s.lootQueue, pk.Tier)
		}
		s.Events.Sound(event.SoundPickup)
	}
	clear(s.Pickups[n:])
	s.Pickups = s.Pickups[:n]
}

// endRun records the final score and stops the simulation
func (s *GameSession) endRun() {
	s.Events.Push(event.EventRunEnded, &event.RunEndedPayload{Score: s.score, Duration: s.elapsed})
	s.lastEvents = append(s.lastEvents, s.Router.DispatchAll()...)

	entry := storage.ScoreEntry{
		Name:  s.cfg.PlayerName,
		Value: int64(s.score),
		Stats: s.runSnapshot(),
		RunID: s.runID,
	}
	rank, err := s.HighScores.Submit(storage.CategorySurvival, entry)
	if err != nil {
		log.Printf("[engine] record score: %v", err)
	}
	log.Printf("[engine] run %s ended: score %d in %s, rank %d", s.runID, s.score, s.elapsed.Round(time.Second), rank)
	s.Evolution.Close()
	s.setPhase(PhaseGameOver)
}
