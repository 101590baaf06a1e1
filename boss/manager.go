package boss

import (
	"log"
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Defeat describes a boss kill reported by Update
type Defeat struct {
	Tier      int
	Name      string
	Pos       vmath.Vec2
	Elapsed   time.Duration
	ByAbility bool
}

// Manager spawns bosses by score and reports their defeats
type Manager struct {
	bosses    []*Boss
	nextScore int
	tier      int
	maxTier   int
	events    *event.EventQueue
	rng       *vmath.FastRand
}

func NewManager(rng *vmath.FastRand, events *event.EventQueue) *Manager {
	m := &Manager{rng: rng, events: events}
	m.Reset()
	return m
}

// Reset clears bosses and the spawn schedule
func (m *Manager) Reset() {
	m.bosses = nil
	m.nextScore = parameter.BossFirstScore
	m.tier = 0
	m.maxTier = 0
}

// NextScore returns the score that triggers the next boss
func (m *Manager) NextScore() int { return m.nextScore }

// MaxDefeatedTier returns the highest tier defeated this run
func (m *Manager) MaxDefeatedTier() int { return m.maxTier }

// IsBossSequenceActive reports whether any boss is alive
func (m *Manager) IsBossSequenceActive() bool {
	for _, b := range m.bosses {
		if b.active {
			return true
		}
	}
	return false
}

// ActiveBosses returns live bosses as the combat-facing interface
func (m *Manager) ActiveBosses() []entity.Boss {
	out := make([]entity.Boss, 0, len(m.bosses))
	for _, b := range m.bosses {
		if b.active {
			out = append(out, b)
		}
	}
	return out
}

// Bosses returns every tracked boss, including ones defeated this tick
func (m *Manager) Bosses() []*Boss { return m.bosses }

// TrySpawnBoss spawns the next tier when score reaches the schedule and no boss is alive
func (m *Manager) TrySpawnBoss(score int, ctx *Context) *Boss {
	if score < m.nextScore || m.IsBossSequenceActive() {
		return nil
	}
	m.tier++
	m.nextScore += parameter.BossScoreInterval

	kind := Kind((m.tier - 1) % int(kindCount))
	pos := m.spawnPoint(ctx)
	b := New(kind, m.tier, pos)
	m.bosses = append(m.bosses, b)

	log.Printf("[boss] spawned %s tier %d at score %d", b.Name(), b.tier, score)
	m.push(event.EventBossSpawned, &event.BossPayload{Tier: b.tier, Name: b.Name()})
	return b
}

// spawnPoint picks the arena edge midpoint farthest from the player
func (m *Manager) spawnPoint(ctx *Context) vmath.Vec2 {
	w, h := ctx.Bounds.Width, ctx.Bounds.Height
	inset := parameter.BossRadius * 2
	candidates := []vmath.Vec2{
		vmath.V(w/2, inset),
		vmath.V(w/2, h-inset),
		vmath.V(inset, h/2),
		vmath.V(w-inset, h/2),
	}
	best, bestDist := candidates[0], -1.0
	for _, c := range candidates {
		if d := c.DistSq(ctx.PlayerPos); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Update advances every live boss and returns defeats since the last call
func (m *Manager) Update(dt time.Duration, ctx *Context) []Defeat {
	for _, b := range m.bosses {
		b.Update(dt, ctx)
	}
	return m.collectDefeats()
}

// collectDefeats reports and drops bosses killed since the last call
func (m *Manager) collectDefeats() []Defeat {
	var out []Defeat
	n := 0
	for _, b := range m.bosses {
		if b.active {
			m.bosses[n] = b
			n++
			continue
		}
		d := Defeat{Tier: b.tier, Name: b.Name(), Pos: b.pos, Elapsed: b.alive, ByAbility: b.byAbility}
		out = append(out, d)
		m.maxTier = max(m.maxTier, b.tier)
		log.Printf("[boss] defeated %s tier %d in %s", d.Name, d.Tier, d.Elapsed.Round(time.Millisecond))
		m.push(event.EventBossDefeated, &event.BossPayload{
			Tier:      d.Tier,
			Name:      d.Name,
			Elapsed:   d.Elapsed,
			ByAbility: d.ByAbility,
		})
	}
	clear(m.bosses[n:])
	m.bosses = m.bosses[:n]
	return out
}

// Collect reports defeats caused outside Update, such as abilities fired after the boss step
func (m *Manager) Collect() []Defeat { return m.collectDefeats() }

func (m *Manager) push(t event.EventType, payload any) {
	if m.events != nil {
		m.events.Push(t, payload)
	}
}
