package boss

import (
	"math"
	"time"

	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Kind selects a boss attack script
type Kind uint8

const (
	KindSentinel    Kind = iota // Ring volleys
	KindHunter                  // Aimed spreads
	KindSingularity             // Gravity balls that corrupt nearby player shots
	kindCount
)

var kindNames = [kindCount]string{"Sentinel", "Hunter", "Singularity"}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Context carries the collaborators a boss touches during one update
type Context struct {
	Pool      *ray.Pool
	PlayerPos vmath.Vec2
	Bounds    physics.Bounds
	Rng       *vmath.FastRand
}

// Boss is a tiered enemy that chases the player and fires rays
// It satisfies entity.Boss and ray.GravityOwner
type Boss struct {
	kind   Kind
	tier   int
	pos    vmath.Vec2
	recoil vmath.Vec2
	radius float64
	hp     int
	maxHP  int

	fireTimer    time.Duration
	gravityTimer time.Duration
	fearTimer    time.Duration
	alive        time.Duration

	active       bool
	byAbility    bool
	gravityBalls int
	pool         *ray.Pool
	detonatedAt  []vmath.Vec2
}

// New creates a boss of the given kind and tier at pos
func New(kind Kind, tier int, pos vmath.Vec2) *Boss {
	tier = max(tier, 1)
	hp := parameter.BossBaseHP + parameter.BossHPPerTier*(tier-1)
	return &Boss{
		kind:         kind,
		tier:         tier,
		pos:          pos,
		radius:       parameter.BossRadius,
		hp:           hp,
		maxHP:        hp,
		fireTimer:    parameter.BossFireInterval,
		gravityTimer: parameter.BossGravityBallInterval / 2,
		active:       true,
	}
}

func (b *Boss) Pos() vmath.Vec2 { return b.pos }
func (b *Boss) Radius() float64 { return b.radius }
func (b *Boss) Health() int     { return b.hp }
func (b *Boss) MaxHealth() int  { return b.maxHP }
func (b *Boss) Active() bool    { return b.active }
func (b *Boss) Tier() int       { return b.tier }
func (b *Boss) Name() string    { return b.kind.String() }
func (b *Boss) Kind() Kind      { return b.kind }

// Feared reports whether the boss is fleeing
func (b *Boss) Feared() bool { return b.fearTimer > 0 }

// Alive returns time since spawn
func (b *Boss) Alive() time.Duration { return b.alive }

// GravityBalls returns the number of live gravity balls owned by the boss
func (b *Boss) GravityBalls() int { return b.gravityBalls }

// TakeDamage applies damage and reports the killing blow
// src is nil for ability damage
func (b *Boss) TakeDamage(amount int, src *ray.Ray) bool {
	if !b.active || amount <= 0 {
		return false
	}
	b.hp -= amount
	if b.hp > 0 {
		return false
	}
	b.hp = 0
	b.active = false
	b.byAbility = src == nil || src.IsPlayerAbilityRay
	return true
}

func (b *Boss) ApplyFear(d time.Duration) {
	if b.active {
		b.fearTimer = max(b.fearTimer, d)
	}
}

func (b *Boss) ApplyRecoil(v vmath.Vec2) {
	if b.active {
		b.recoil = b.recoil.Add(v)
	}
}

// OwnerBody is the spawning body used by gravity-ball self-avoidance
func (b *Boss) OwnerBody() (vmath.Vec2, float64) { return b.pos, b.radius }

// DetonateGravityBall bursts a spent gravity ball into a ring of boss rays
func (b *Boss) DetonateGravityBall(r *ray.Ray) {
	b.detonatedAt = append(b.detonatedAt, r.Pos)
}

// ReleaseGravityBall is called once per ball leaving play
func (b *Boss) ReleaseGravityBall(*ray.Ray) {
	if b.gravityBalls > 0 {
		b.gravityBalls--
	}
}

// Update advances movement and attack timers
func (b *Boss) Update(dt time.Duration, ctx *Context) {
	if !b.active {
		return
	}
	sec := dt.Seconds()
	b.alive += dt
	b.fearTimer = max(0, b.fearTimer-dt)
	b.pool = ctx.Pool

	dir := vmath.Direction(b.pos, ctx.PlayerPos, vmath.V(0, 1))
	if b.Feared() {
		dir = dir.Scale(-1)
	}
	speed := parameter.BossSpeed * (1 + 0.1*float64(b.tier-1))
	b.pos = b.pos.Add(dir.Scale(speed * sec)).Add(b.recoil.Scale(sec))
	b.recoil = b.recoil.Scale(math.Max(0, 1-parameter.BossRecoilDamping*sec))
	b.pos = ctx.Bounds.Clamp(b.pos, b.radius)

	b.flushDetonations()
	if b.Feared() {
		return
	}

	b.fireTimer -= dt
	if b.fireTimer <= 0 {
		b.fireTimer += b.fireInterval()
		b.fire(ctx)
	}

	if b.kind == KindSingularity {
		b.gravityTimer -= dt
		if b.gravityTimer <= 0 {
			b.gravityTimer += parameter.BossGravityBallInterval
			b.launchGravityBall(ctx)
		}
		b.corruptNearBalls(ctx)
	}
}

// fireInterval shortens with tier
func (b *Boss) fireInterval() time.Duration {
	scale := math.Max(0.4, 1-0.1*float64(b.tier-1))
	return time.Duration(float64(parameter.BossFireInterval) * scale)
}

func (b *Boss) fire(ctx *Context) {
	switch b.kind {
	case KindHunter:
		aim := vmath.Direction(b.pos, ctx.PlayerPos, vmath.V(0, 1)).Angle()
		count := 3 + b.tier/2
		for i := 0; i < count; i++ {
			b.spawnRay(ctx.Pool, b.pos, aim+0.15*(float64(i)-float64(count-1)/2))
		}
	default:
		offset := ctx.Rng.Angle()
		for i := 0; i < parameter.BossVolleySize; i++ {
			b.spawnRay(ctx.Pool, b.pos, offset+2*math.Pi*float64(i)/parameter.BossVolleySize)
		}
	}
}

func (b *Boss) spawnRay(pool *ray.Pool, from vmath.Vec2, angle float64) {
	dir := vmath.FromAngle(angle)
	pool.Spawn(ray.ResetParams{
		Pos:              from.Add(dir.Scale(b.radius)),
		Dir:              dir,
		Speed:            parameter.BossRaySpeed,
		Radius:           parameter.RayRadius,
		Owner:            ray.OwnerBoss,
		Color:            ray.ColorBoss,
		Damage:           parameter.BossRayDamage,
		MaxBounces:       parameter.MaxBouncesBossRay,
		IsBossProjectile: true,
	})
}

func (b *Boss) launchGravityBall(ctx *Context) {
	dir := vmath.Direction(b.pos, ctx.PlayerPos, vmath.V(0, 1))
	ctx.Pool.Spawn(ray.ResetParams{
		Pos:              b.pos.Add(dir.Scale(b.radius + parameter.GravityBallRadius)),
		Dir:              dir,
		Speed:            parameter.GravityBallSpeed,
		Radius:           parameter.GravityBallRadius,
		Owner:            ray.OwnerBoss,
		Color:            ray.ColorGravity,
		Damage:           parameter.GravityBallDamage,
		MaxBounces:       parameter.MaxBouncesGravityBall,
		IsGravityWellRay: true,
		GravityOwner:     b,
		Forming:          true,
	})
	b.gravityBalls++
}

// corruptNearBalls turns player shots passing close to this boss's gravity balls
func (b *Boss) corruptNearBalls(ctx *Context) {
	if b.gravityBalls == 0 {
		return
	}
	var balls []vmath.Vec2
	ctx.Pool.ForEachActive(func(r *ray.Ray) {
		if r.IsGravityWellRay && r.GravityOwner == ray.GravityOwner(b) && r.State == ray.StateMoving {
			balls = append(balls, r.Pos)
		}
	})
	if len(balls) == 0 {
		return
	}
	ctx.Pool.ForEachActive(func(r *ray.Ray) {
		if r.Owner != ray.OwnerPlayer {
			return
		}
		for _, c := range balls {
			if physics.WithinRadius(r.Pos, c, parameter.GravityBallCorruptRadius) {
				r.CorruptByGravity(parameter.BossRayDamage)
				return
			}
		}
	})
}

// flushDetonations spawns the bursts of balls that detonated since the last update
func (b *Boss) flushDetonations() {
	if b.pool == nil || len(b.detonatedAt) == 0 {
		return
	}
	for _, at := range b.detonatedAt {
		for i := 0; i < parameter.GravityBallBurstSize; i++ {
			b.spawnRay(b.pool, at, 2*math.Pi*float64(i)/parameter.GravityBallBurstSize)
		}
	}
	b.detonatedAt = b.detonatedAt[:0]
}
