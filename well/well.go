package well

import (
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// PlayerGravityWell pulls nearby rays into orbit until it is detonated
// Absorbed rays are weak references: the pool owns their lifetime
type PlayerGravityWell struct {
	Pos               vmath.Vec2
	VisualRadius      float64
	PullRadius        float64
	PullStrength      float64
	Timer             time.Duration
	Duration          time.Duration
	Absorbed          []*ray.Ray
	PendingDetonation bool

	rng    *vmath.FastRand
	active bool
}

// New creates an active well at pos
func New(pos vmath.Vec2, duration time.Duration, rng *vmath.FastRand) *PlayerGravityWell {
	if duration <= 0 {
		duration = parameter.WellDuration
	}
	return &PlayerGravityWell{
		Pos:          pos,
		VisualRadius: parameter.WellVisualRadius,
		PullRadius:   parameter.WellPullRadius,
		PullStrength: parameter.WellPullStrength,
		Timer:        duration,
		Duration:     duration,
		rng:          rng,
		active:       true,
	}
}

// Active reports whether the well is still deployed
func (w *PlayerGravityWell) Active() bool { return w != nil && w.active }

// Update pulls and orbits rays and flags detonation on timeout or boss contact
func (w *PlayerGravityWell) Update(dt time.Duration, pool *ray.Pool, bosses []entity.Boss) {
	if !w.Active() {
		return
	}
	sec := dt.Seconds()

	w.Timer -= dt
	if w.Timer <= 0 {
		w.Timer = 0
		w.PendingDetonation = true
	}

	w.pruneAbsorbed()

	pool.ForEachActive(func(r *ray.Ray) {
		if r.State != ray.StateMoving || r.IsCorruptedByPlayerWell {
			return
		}
		if r.IsBossProjectile || r.IsGravityWellRay || r.Owner == ray.OwnerBoss {
			return
		}
		dist := r.Pos.Dist(w.Pos)
		if dist >= w.PullRadius {
			return
		}
		if dist <= w.VisualRadius {
			w.capture(r)
			return
		}
		accel := physics.PullAcceleration(r.Pos, w.Pos, w.PullRadius, w.PullStrength)
		r.SetVelocity(r.Velocity().Add(accel.Scale(sec)))
	})

	orbitSpeed := parameter.RaySpeed * parameter.WellOrbitSpeedFactor
	for _, r := range w.Absorbed {
		v := physics.OrbitVelocity(r.Pos, r.Velocity(), w.Pos, r.OrbitRadius, orbitSpeed,
			parameter.WellOrbitBlend, sec, r.OrbitClockwise)
		r.SetVelocity(v)
	}

	for _, b := range bosses {
		if b.Active() && physics.CirclesOverlap(w.Pos, w.VisualRadius, b.Pos(), b.Radius()) {
			w.PendingDetonation = true
			break
		}
	}
}

// capture converts a ray into an orbiting well ray
func (w *PlayerGravityWell) capture(r *ray.Ray) {
	r.IsCorruptedByPlayerWell = true
	r.Owner = ray.OwnerPlayer
	r.Color = ray.ColorPlayerWell
	r.Speed *= parameter.WellOrbitSpeedFactor
	r.LifeTimer = w.Timer + parameter.RayFadeDuration
	if w.rng != nil {
		r.OrbitRadius = w.VisualRadius * w.rng.Range(parameter.WellOrbitRadiusMin, parameter.WellOrbitRadiusMax)
		r.OrbitClockwise = w.rng.Chance(0.5)
	} else {
		r.OrbitRadius = w.VisualRadius
	}
	w.Absorbed = append(w.Absorbed, r)
}

// pruneAbsorbed drops rays that left play or were released by other effects
func (w *PlayerGravityWell) pruneAbsorbed() {
	n := 0
	for _, r := range w.Absorbed {
		if r.Active() && r.IsCorruptedByPlayerWell {
			w.Absorbed[n] = r
			n++
		}
	}
	clear(w.Absorbed[n:])
	w.Absorbed = w.Absorbed[:n]
}

// Detonate launches every absorbed ray toward target as a player ability ray
// Hostile flags are stripped and age restarts; returns the number launched and the well becomes inactive
func (w *PlayerGravityWell) Detonate(target vmath.Vec2, pierce bool, kineticBoost float64) int {
	if !w.Active() {
		return 0
	}
	w.pruneAbsorbed()

	launched := 0
	for _, r := range w.Absorbed {
		speed := max(r.Speed, parameter.RaySpeed) * parameter.WellDetonateSpeedMultiplier
		dir := vmath.Direction(r.Pos, target, r.Dir)

		r.ClearHostility()
		r.Dir = dir
		r.Speed = speed
		r.State = ray.StateMoving
		r.Opacity = 1
		r.LifeTimer = parameter.WellDetonateLifetime
		r.Age = 0
		r.IsPlayerAbilityRay = true
		r.LastHit = nil
		r.Bounces = 0
		r.MaxBounces = parameter.MaxBouncesPlayerRay
		r.Grace = 0
		if kineticBoost > 0 {
			r.KineticBoost = kineticBoost
		}
		if pierce {
			r.PierceUses = 1
		}
		launched++
	}

	clear(w.Absorbed)
	w.Absorbed = w.Absorbed[:0]
	w.PendingDetonation = false
	w.active = false
	return launched
}
