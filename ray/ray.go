package ray

import (
	"time"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/vmath"
)

// State is the lifecycle stage of an active ray
type State uint8

const (
	StateForming State = iota
	StateMoving
	StateFading
)

// Owner identifies who a ray hurts
type Owner uint8

const (
	OwnerNeutral Owner = iota
	OwnerPlayer
	OwnerBoss
)

// Color doubles as the damage-type key for color immunity
type Color uint8

const (
	ColorNeutral Color = iota
	ColorPlayer
	ColorBoss
	ColorGravity
	ColorPlayerWell
)

// GravityOwner is the boss that launched a gravity ball
type GravityOwner interface {
	// OwnerBody returns the spawning body for self-avoidance steering
	OwnerBody() (vmath.Vec2, float64)
	// DetonateGravityBall is called when the ball exhausts its bounce budget
	DetonateGravityBall(r *Ray)
	// ReleaseGravityBall is called once when the ball leaves the pool for any reason
	ReleaseGravityBall(r *Ray)
}

// Env carries per-tick collaborators for ray movement
type Env struct {
	Bounds          physics.Bounds
	PhaseStabilizer bool
	PullTarget      vmath.Vec2
	Rng             *vmath.FastRand
	Events          *event.EventQueue
}

// ResetParams describes a new shot
type ResetParams struct {
	Pos      vmath.Vec2
	Dir      vmath.Vec2
	Speed    float64
	Radius   float64
	Owner    Owner
	Color    Color
	Lifetime time.Duration
	Damage   int // Damage dealt to the player by hostile rays

	MaxBounces        int
	MomentumPerBounce float64
	KineticBoost      float64
	PierceUses        int

	IsBossProjectile   bool
	IsGravityWellRay   bool
	IsPlayerAbilityRay bool
	GravityOwner       GravityOwner

	// Forming grows the radius from zero over FormingDuration before moving
	Forming         bool
	FormingDuration time.Duration
}

// Ray is a pooled projectile
type Ray struct {
	Pos    vmath.Vec2
	Dir    vmath.Vec2
	Speed  float64
	Radius float64
	Owner  Owner
	Color  Color
	State  State
	Damage int

	LifeTimer time.Duration
	Age       time.Duration
	Grace     time.Duration
	Opacity   float64

	Bounces           int
	MaxBounces        int
	MomentumBonus     float64
	MomentumPerBounce float64
	KineticBoost      float64
	PierceUses        int

	// LastHit is the entity most recently pierced; the ray passes through it instead of hitting it again
	LastHit any

	IsBossProjectile         bool
	IsGravityWellRay         bool
	IsCorruptedByGravityWell bool
	IsCorruptedByPlayerWell  bool
	IsPlayerAbilityRay       bool
	GravityOwner             GravityOwner

	// Orbit parameters assigned on player-well capture
	OrbitRadius    float64
	OrbitClockwise bool

	targetRadius    float64
	formTimer       time.Duration
	formingDuration time.Duration
	fadeTimer       time.Duration

	trail    [parameter.RayTrailLength]vmath.Vec2
	trailLen int

	pool   *Pool
	index  int
	active bool
}

// Active reports whether the ray is in play
func (r *Ray) Active() bool { return r.active }

// InGrace reports whether the ray is still inside its spawn grace window
func (r *Ray) InGrace() bool { return r.Grace > 0 }

// Hostile reports whether the ray always damages the player
func (r *Ray) Hostile() bool { return r.IsBossProjectile || r.IsGravityWellRay }

// Velocity returns direction scaled by speed
func (r *Ray) Velocity() vmath.Vec2 { return r.Dir.Scale(r.Speed) }

// SetVelocity splits v into unit direction and speed
func (r *Ray) SetVelocity(v vmath.Vec2) {
	speed := v.Len()
	if speed == 0 {
		r.Speed = 0
		return
	}
	r.Dir = v.Scale(1 / speed)
	r.Speed = speed
}

// Trail returns recorded positions, newest last
func (r *Ray) Trail() []vmath.Vec2 { return r.trail[:r.trailLen] }

// Reset reinitializes every field for a new shot and marks the ray active
func (r *Ray) Reset(p ResetParams) {
	pool, index := r.pool, r.index
	*r = Ray{pool: pool, index: index, active: true}

	r.Pos = p.Pos
	r.Dir = p.Dir.Normalize()
	if r.Dir.IsZero() {
		r.Dir = vmath.Vec2{X: 1}
	}
	r.Speed = p.Speed
	r.Owner = p.Owner
	r.Color = p.Color
	r.Damage = p.Damage
	r.targetRadius = p.Radius
	r.Radius = p.Radius
	r.Opacity = 1

	r.LifeTimer = p.Lifetime
	if r.LifeTimer <= 0 {
		r.LifeTimer = parameter.RayLifetime
	}
	r.Grace = parameter.RaySpawnGracePeriod

	r.MaxBounces = p.MaxBounces
	r.MomentumPerBounce = p.MomentumPerBounce
	r.KineticBoost = p.KineticBoost
	if r.KineticBoost <= 0 {
		r.KineticBoost = 1
	}
	r.PierceUses = p.PierceUses

	r.IsBossProjectile = p.IsBossProjectile
	r.IsGravityWellRay = p.IsGravityWellRay
	r.IsPlayerAbilityRay = p.IsPlayerAbilityRay
	r.GravityOwner = p.GravityOwner

	r.State = StateMoving
	if p.Forming {
		r.State = StateForming
		r.Radius = 0
		r.formingDuration = p.FormingDuration
		if r.formingDuration <= 0 {
			r.formingDuration = parameter.GravityBallFormingDuration
		}
	}
}

// Deactivate removes the ray from play and returns it to its pool exactly once
func (r *Ray) Deactivate() {
	if !r.active {
		return
	}
	r.active = false
	if owner := r.GravityOwner; owner != nil {
		r.GravityOwner = nil
		owner.ReleaseGravityBall(r)
	}
	if r.pool != nil {
		r.pool.release(r.index)
	}
}

// BeginFade moves a forming or moving ray to fading; repeated calls are no-ops
func (r *Ray) BeginFade() {
	if !r.active || r.State == StateFading {
		return
	}
	r.State = StateFading
	r.fadeTimer = 0
}

// ClearHostility strips boss, gravity and corruption flags so the ray behaves as a player shot
func (r *Ray) ClearHostility() {
	if owner := r.GravityOwner; owner != nil {
		r.GravityOwner = nil
		owner.ReleaseGravityBall(r)
	}
	r.IsBossProjectile = false
	r.IsGravityWellRay = false
	r.IsCorruptedByGravityWell = false
	r.IsCorruptedByPlayerWell = false
	r.Owner = OwnerPlayer
	r.Color = ColorPlayer
	r.OrbitRadius = 0
}

// CorruptByGravity turns a player shot hostile near a boss gravity ball
// Returns false for rays that are not plain player shots
func (r *Ray) CorruptByGravity(damage int) bool {
	if r.Owner != OwnerPlayer || r.IsCorruptedByPlayerWell || r.State != StateMoving {
		return false
	}
	r.Owner = OwnerBoss
	r.Color = ColorGravity
	r.IsBossProjectile = true
	r.IsCorruptedByGravityWell = true
	r.Damage = damage
	r.PierceUses = 0
	return true
}

// Update advances the ray by dt
func (r *Ray) Update(dt time.Duration, env *Env) {
	if !r.active {
		return
	}
	r.Age += dt

	switch r.State {
	case StateForming:
		r.updateForming(dt, env)
	case StateMoving:
		r.updateMoving(dt, env)
	case StateFading:
		r.updateFading(dt, env)
	}
}

func (r *Ray) updateForming(dt time.Duration, env *Env) {
	r.formTimer += dt
	frac := float64(r.formTimer) / float64(r.formingDuration)
	if frac >= 1 {
		r.Radius = r.targetRadius
		r.State = StateMoving
		if env.Events != nil {
			env.Events.Sound(event.SoundCharge)
		}
		return
	}
	r.Radius = r.targetRadius * frac
}

func (r *Ray) updateMoving(dt time.Duration, env *Env) {
	sec := dt.Seconds()

	if r.IsGravityWellRay && !r.IsCorruptedByPlayerWell {
		r.seek(sec, env)
	}

	r.pushTrail()
	r.Pos = r.Pos.Add(r.Dir.Scale(r.Speed * sec))
	r.LifeTimer -= dt
	if r.Grace > 0 {
		r.Grace -= dt
	}

	if env.Bounds.Outside(r.Pos, r.Radius) {
		if r.canPhase(env) {
			r.phase(env.Bounds)
		} else {
			env.Bounds.Reflect(&r.Pos, &r.Dir, r.Radius)
			r.Bounces++
			r.MomentumBonus += r.MomentumPerBounce
			if r.Bounces > r.MaxBounces {
				if r.IsGravityWellRay && r.GravityOwner != nil {
					r.GravityOwner.DetonateGravityBall(r)
					r.Deactivate()
					return
				}
				r.BeginFade()
			}
		}
	}

	if r.LifeTimer <= 0 || r.Age >= parameter.AbsoluteMaxRayLifetime {
		r.BeginFade()
	}
}

func (r *Ray) updateFading(dt time.Duration, env *Env) {
	r.fadeTimer += dt
	r.Opacity = 1 - float64(r.fadeTimer)/float64(parameter.RayFadeDuration)

	// Keep drifting at reduced speed while fading
	r.Pos = r.Pos.Add(r.Dir.Scale(r.Speed * r.Opacity * dt.Seconds()))
	env.Bounds.Reflect(&r.Pos, &r.Dir, r.Radius)

	if r.trailLen > 0 && env.Rng != nil && env.Rng.Chance(0.5) {
		r.trailLen--
	}
	if r.Opacity <= 0 {
		r.Opacity = 0
		r.Deactivate()
	}
}

// seek steers a gravity ball toward the pull target with a clamped turn rate
func (r *Ray) seek(sec float64, env *Env) {
	desired := vmath.Direction(r.Pos, env.PullTarget, r.Dir)
	heading := physics.TurnToward(r.Dir, desired, parameter.GravityBallMaxTurnRate*sec)

	if r.GravityOwner != nil && r.Age > parameter.GravityBallSelfAvoidGrace {
		center, radius := r.GravityOwner.OwnerBody()
		nudge := physics.AvoidNudge(r.Pos, heading, center, radius+r.Radius,
			parameter.GravityBallSelfAvoidRadius, parameter.GravityBallSelfAvoidStrength)
		if nudge != 0 {
			heading = vmath.FromAngle(heading.Angle() + nudge*sec)
		}
	}
	r.Dir = heading
}

// canPhase rolls the phase stabilizer exception for ordinary rays at a wall
func (r *Ray) canPhase(env *Env) bool {
	if !env.PhaseStabilizer || r.IsBossProjectile || r.IsGravityWellRay || r.IsCorruptedByPlayerWell {
		return false
	}
	if env.Rng == nil || !env.Bounds.NearWall(r.Pos, parameter.PhaseStabilizerWallProximity+r.Radius) {
		return false
	}
	return env.Rng.Chance(parameter.PhaseStabilizerChance)
}

// phase carries the ray through the wall to the opposite side of the arena
func (r *Ray) phase(b physics.Bounds) {
	if r.Pos.X-r.Radius < 0 {
		r.Pos.X = b.Width - r.Radius
	} else if r.Pos.X+r.Radius > b.Width {
		r.Pos.X = r.Radius
	}
	if r.Pos.Y-r.Radius < 0 {
		r.Pos.Y = b.Height - r.Radius
	} else if r.Pos.Y+r.Radius > b.Height {
		r.Pos.Y = r.Radius
	}
	r.trailLen = 0
}

func (r *Ray) pushTrail() {
	if r.trailLen < len(r.trail) {
		r.trail[r.trailLen] = r.Pos
		r.trailLen++
		return
	}
	copy(r.trail[:], r.trail[1:])
	r.trail[len(r.trail)-1] = r.Pos
}
