package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// spawnInterval shortens base by one reduction step per score step, floored at lo
func spawnInterval(base, lo time.Duration, score int) time.Duration {
	steps := time.Duration(score / parameter.SpawnIntervalScoreStep)
	return max(base-steps*parameter.SpawnIntervalReduction, lo)
}

// advanceSpawners runs the breakable target and neutral ray emitters
func (s *GameSession) advanceSpawners(dt time.Duration) {
	s.targetTimer -= dt
	if s.targetTimer <= 0 {
		s.targetTimer += spawnInterval(parameter.TargetSpawnInterval, parameter.TargetSpawnMinInterval, s.score)
		if s.Targets.Len() < parameter.TargetMaxCount {
			s.spawnTarget()
		}
	}

	s.neutralTimer -= dt
	if s.neutralTimer <= 0 {
		s.neutralTimer += spawnInterval(parameter.NeutralRaySpawnInterval, parameter.NeutralRaySpawnMinInterval, s.score)
		s.spawnNeutralRay()
	}
}

// spawnTarget places a target at a random point clear of the player
func (s *GameSession) spawnTarget() {
	margin := parameter.TargetArmoredRadius * 2
	for range 8 {
		pos := vmath.V(
			s.rng.Range(margin, s.bounds.Width-margin),
			s.rng.Range(margin, s.bounds.Height-margin),
		)
		if pos.Dist(s.Player.Pos) < parameter.SpawnPlayerClearance {
			continue
		}
		s.Targets.Add(entity.NewTarget(pos, s.rng.Chance(parameter.TargetArmoredChance)))
		return
	}
}

// spawnNeutralRay emits a ray from a random wall point into the arena
func (s *GameSession) spawnNeutralRay() {
	var pos vmath.Vec2
	var inward float64
	inset := parameter.RayRadius * 2
	switch s.rng.Intn(4) {
	case 0:
		pos, inward = vmath.V(s.rng.Range(inset, s.bounds.Width-inset), inset), math.Pi/2
	case 1:
		pos, inward = vmath.V(s.bounds.Width-inset, s.rng.Range(inset, s.bounds.Height-inset)), math.Pi
	case 2:
		pos, inward = vmath.V(s.rng.Range(inset, s.bounds.Width-inset), s.bounds.Height-inset), -math.Pi/2
	default:
		pos, inward = vmath.V(inset, s.rng.Range(inset, s.bounds.Height-inset)), 0
	}
	angle := inward + s.rng.Range(-math.Pi/3, math.Pi/3)

	s.Pool.Spawn(ray.ResetParams{
		Pos:        pos,
		Dir:        vmath.FromAngle(angle),
		Speed:      parameter.RaySpeed,
		Radius:     parameter.RayRadius,
		Owner:      ray.OwnerNeutral,
		Color:      ray.ColorNeutral,
		Lifetime:   parameter.RayLifetime,
		MaxBounces: parameter.MaxBouncesNeutralRay,
	})
}

// dropHandler rolls heal drops for destroyed targets
type dropHandler struct {
	s *GameSession
}

func (h *dropHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventTargetDestroyed}
}

func (h *dropHandler) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.TargetDestroyedPayload)
	if !ok || !h.s.rng.Chance(parameter.HealDropChance) {
		return
	}
	h.s.Pickups = append(h.s.Pickups, entity.NewHealPickup(p.Pos))
}

// resetHandler restarts the run on EventGameReset
type resetHandler struct {
	s *GameSession
}

func (h *resetHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (h *resetHandler) HandleEvent(event.GameEvent) {
	h.s.reset()
}
