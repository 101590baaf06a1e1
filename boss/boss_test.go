package boss

import (
	"testing"
	"time"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

func newContext() *Context {
	return &Context{
		Pool:      ray.NewPool(64),
		PlayerPos: vmath.V(600, 700),
		Bounds:    physics.Bounds{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
		Rng:       vmath.NewFastRand(3),
	}
}

// TestSpawnSchedule verifies score thresholds, tier progression and the single-boss rule
func TestSpawnSchedule(t *testing.T) {
	q := event.NewEventQueue()
	m := NewManager(vmath.NewFastRand(1), q)
	ctx := newContext()

	if m.TrySpawnBoss(parameter.BossFirstScore-1, ctx) != nil {
		t.Fatalf("spawned below threshold")
	}
	b := m.TrySpawnBoss(parameter.BossFirstScore, ctx)
	if b == nil || b.Tier() != 1 || b.Kind() != KindSentinel {
		t.Fatalf("expected tier 1 sentinel, got %+v", b)
	}
	if b.Pos().Y > ctx.Bounds.Height/2 {
		t.Errorf("boss spawned near the player at %+v", b.Pos())
	}
	if m.TrySpawnBoss(1<<20, ctx) != nil {
		t.Errorf("second boss spawned during sequence")
	}

	if !b.TakeDamage(b.MaxHealth(), nil) {
		t.Fatalf("lethal damage not reported")
	}
	defeats := m.Update(time.Millisecond, ctx)
	if len(defeats) != 1 || defeats[0].Tier != 1 || !defeats[0].ByAbility {
		t.Fatalf("unexpected defeats %+v", defeats)
	}
	if m.IsBossSequenceActive() || len(m.ActiveBosses()) != 0 || m.MaxDefeatedTier() != 1 {
		t.Errorf("defeated boss still tracked")
	}

	next := parameter.BossFirstScore + parameter.BossScoreInterval
	if m.NextScore() != next {
		t.Errorf("next score %d, want %d", m.NextScore(), next)
	}
	b2 := m.TrySpawnBoss(next, ctx)
	if b2 == nil || b2.Tier() != 2 || b2.Kind() != KindHunter || b2.MaxHealth() <= b.MaxHealth() {
		t.Errorf("expected tougher tier 2 hunter, got %+v", b2)
	}

	spawned, defeated := 0, 0
	for _, ev := range q.Consume() {
		switch ev.Type {
		case event.EventBossSpawned:
			spawned++
		case event.EventBossDefeated:
			defeated++
		}
	}
	if spawned != 2 || defeated != 1 {
		t.Errorf("events spawned=%d defeated=%d", spawned, defeated)
	}
}

// TestDamageBySourceRay verifies shot kills are not credited to abilities
func TestDamageBySourceRay(t *testing.T) {
	b := New(KindSentinel, 1, vmath.V(100, 100))
	shot := ray.NewPool(1).Spawn(ray.ResetParams{Dir: vmath.V(1, 0), Owner: ray.OwnerPlayer})
	if b.TakeDamage(1, shot) {
		t.Fatalf("boss died to one damage")
	}
	if !b.TakeDamage(b.Health(), shot) || b.byAbility {
		t.Errorf("shot kill misreported")
	}
	if b.TakeDamage(5, shot) {
		t.Errorf("dead boss reported a second kill")
	}
}

// TestSentinelVolley verifies a ring volley fires once per interval
func TestSentinelVolley(t *testing.T) {
	ctx := newContext()
	b := New(KindSentinel, 1, vmath.V(600, 200))
	b.Update(parameter.BossFireInterval, ctx)
	if got := ctx.Pool.ActiveCount(); got != parameter.BossVolleySize {
		t.Fatalf("expected %d rays, got %d", parameter.BossVolleySize, got)
	}
	ctx.Pool.ForEachActive(func(r *ray.Ray) {
		if !r.IsBossProjectile || r.Owner != ray.OwnerBoss {
			t.Errorf("volley ray not hostile")
		}
	})
}

// TestSingularityGravityBall verifies launch, ownership release and corruption of nearby shots
func TestSingularityGravityBall(t *testing.T) {
	ctx := newContext()
	b := New(KindSingularity, 1, vmath.V(600, 200))
	b.fireTimer = time.Hour
	b.Update(parameter.BossGravityBallInterval/2, ctx)

	var ball *ray.Ray
	ctx.Pool.ForEachActive(func(r *ray.Ray) {
		if r.IsGravityWellRay {
			ball = r
		}
	})
	if ball == nil || b.GravityBalls() != 1 || ball.State != ray.StateForming {
		t.Fatalf("gravity ball not launched")
	}

	ball.State = ray.StateMoving
	shot := ctx.Pool.Spawn(ray.ResetParams{Pos: ball.Pos, Dir: vmath.V(1, 0), Owner: ray.OwnerPlayer})
	b.Update(time.Millisecond, ctx)
	if !shot.IsCorruptedByGravityWell || !shot.Hostile() {
		t.Errorf("nearby shot not corrupted")
	}

	ball.Deactivate()
	if b.GravityBalls() != 0 {
		t.Errorf("ball release not counted")
	}
}

// TestGravityBallDetonationBurst verifies a spent ball bursts into boss rays on the next update
func TestGravityBallDetonationBurst(t *testing.T) {
	ctx := newContext()
	b := New(KindSingularity, 1, vmath.V(600, 200))
	b.fireTimer = time.Hour
	b.gravityTimer = time.Hour
	b.Update(time.Millisecond, ctx)

	ball := ctx.Pool.Spawn(ray.ResetParams{Pos: vmath.V(300, 300), Dir: vmath.V(1, 0), IsGravityWellRay: true, GravityOwner: b})
	b.DetonateGravityBall(ball)
	ball.Deactivate()
	b.Update(time.Millisecond, ctx)

	if got := ctx.Pool.ActiveCount(); got != parameter.GravityBallBurstSize {
		t.Errorf("expected burst of %d, got %d", parameter.GravityBallBurstSize, got)
	}
}

// TestFearAndRecoil verifies feared bosses flee and recoil displaces
func TestFearAndRecoil(t *testing.T) {
	ctx := newContext()
	b := New(KindSentinel, 1, vmath.V(600, 400))
	b.fireTimer = time.Hour

	b.ApplyFear(time.Second)
	before := b.Pos().Dist(ctx.PlayerPos)
	b.Update(100*time.Millisecond, ctx)
	if b.Pos().Dist(ctx.PlayerPos) <= before {
		t.Errorf("feared boss approached the player")
	}

	b.fearTimer = 0
	b.ApplyRecoil(vmath.V(1000, 0))
	x := b.Pos().X
	b.Update(100*time.Millisecond, ctx)
	if b.Pos().X <= x {
		t.Errorf("recoil did not push the boss")
	}
}
