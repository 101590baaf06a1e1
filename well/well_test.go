package well

import (
	"testing"
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

type stubBoss struct {
	pos    vmath.Vec2
	radius float64
}

func (b *stubBoss) Pos() vmath.Vec2               { return b.pos }
func (b *stubBoss) Radius() float64               { return b.radius }
func (b *stubBoss) Health() int                   { return 1 }
func (b *stubBoss) MaxHealth() int                { return 1 }
func (b *stubBoss) Active() bool                  { return true }
func (b *stubBoss) Tier() int                     { return 1 }
func (b *stubBoss) Name() string                  { return "stub" }
func (b *stubBoss) TakeDamage(int, *ray.Ray) bool { return false }
func (b *stubBoss) ApplyFear(time.Duration)       {}
func (b *stubBoss) ApplyRecoil(vmath.Vec2)        {}

func spawnAt(p *ray.Pool, pos vmath.Vec2) *ray.Ray {
	return p.Spawn(ray.ResetParams{
		Pos:    pos, Dir: vmath.V(1, 0), Speed: parameter.RaySpeed,
		Radius: parameter.RayRadius, Owner: ray.OwnerNeutral, MaxBounces: 3,
	})
}

// TestCaptureInsideVisualRadius verifies rays at the well center become orbiting player-well rays
func TestCaptureInsideVisualRadius(t *testing.T) {
	p := ray.NewPool(4)
	w := New(vmath.V(100, 100), 0, vmath.NewFastRand(3))
	r := spawnAt(p, vmath.V(105, 100))

	w.Update(16*time.Millisecond, p, nil)
	if !r.IsCorruptedByPlayerWell || len(w.Absorbed) != 1 {
		t.Fatalf("expected capture, corrupted=%v absorbed=%d", r.IsCorruptedByPlayerWell, len(w.Absorbed))
	}
	if r.Color != ray.ColorPlayerWell {
		t.Errorf("captured ray not recolored")
	}
	lo, hi := parameter.WellVisualRadius*parameter.WellOrbitRadiusMin, parameter.WellVisualRadius*parameter.WellOrbitRadiusMax
	if r.OrbitRadius < lo || r.OrbitRadius > hi {
		t.Errorf("orbit radius %v outside [%v,%v]", r.OrbitRadius, lo, hi)
	}
}

// TestBossRaysIgnored verifies boss-owned rays are not pulled
func TestBossRaysIgnored(t *testing.T) {
	p := ray.NewPool(2)
	w := New(vmath.V(100, 100), 0, nil)
	r := p.Spawn(ray.ResetParams{
		Pos:   vmath.V(150, 100), Dir: vmath.V(0, 1), Speed: 100,
		Owner: ray.OwnerBoss, IsBossProjectile: true,
	})
	before := r.Dir

	w.Update(16*time.Millisecond, p, nil)
	if r.Dir != before || r.IsCorruptedByPlayerWell {
		t.Errorf("boss ray was affected by the well")
	}
}

// TestDetonateThreeRays verifies launch count, flag stripping and the fresh ability-ray lifetime
func TestDetonateThreeRays(t *testing.T) {
	p := ray.NewPool(4)
	w := New(vmath.V(100, 100), 0, vmath.NewFastRand(9))
	rays := []*ray.Ray{
		spawnAt(p, vmath.V(100, 100)),
		spawnAt(p, vmath.V(110, 100)),
		spawnAt(p, vmath.V(100, 90)),
	}
	w.Update(16*time.Millisecond, p, nil)
	if len(w.Absorbed) != 3 {
		t.Fatalf("expected 3 absorbed, got %d", len(w.Absorbed))
	}
	rays[0].IsBossProjectile = true
	rays[1].IsGravityWellRay = true
	rays[2].Age = parameter.AbsoluteMaxRayLifetime - time.Millisecond

	n := w.Detonate(vmath.V(500, 100), true, 1.5)
	if n != 3 {
		t.Fatalf("expected 3 launched, got %d", n)
	}
	for i, r := range rays {
		if r.IsBossProjectile || r.IsGravityWellRay || r.IsCorruptedByPlayerWell {
			t.Errorf("ray %d kept hostile flags", i)
		}
		if r.Owner != ray.OwnerPlayer || r.PierceUses != 1 || r.KineticBoost != 1.5 {
			t.Errorf("ray %d not converted: owner=%d pierce=%d boost=%v", i, r.Owner, r.PierceUses, r.KineticBoost)
		}
		if !r.IsPlayerAbilityRay || r.Age != 0 || r.LifeTimer != parameter.WellDetonateLifetime {
			t.Errorf("ray %d not relaunched as a fresh ability ray: ability=%v age=%v", i, r.IsPlayerAbilityRay, r.Age)
		}
		if r.Dir.X <= 0 {
			t.Errorf("ray %d not aimed at target: %v", i, r.Dir)
		}
	}
	if w.Active() || len(w.Absorbed) != 0 {
		t.Errorf("well should be inactive and empty")
	}
	if w.Detonate(vmath.V(0, 0), false, 0) != 0 {
		t.Errorf("second detonation should launch nothing")
	}
}

// TestAbsorbedDeactivationPruned verifies deactivated rays leave the absorbed list
func TestAbsorbedDeactivationPruned(t *testing.T) {
	p := ray.NewPool(2)
	w := New(vmath.V(100, 100), 0, nil)
	r := spawnAt(p, vmath.V(100, 100))
	w.Update(16*time.Millisecond, p, nil)
	r.Deactivate()

	if got := w.Detonate(vmath.V(0, 0), false, 0); got != 0 {
		t.Errorf("expected 0 launched, got %d", got)
	}
}

// TestPendingOnTimeoutAndBoss verifies both detonation triggers
func TestPendingOnTimeoutAndBoss(t *testing.T) {
	p := ray.NewPool(1)
	w := New(vmath.V(100, 100), 50*time.Millisecond, nil)
	w.Update(16*time.Millisecond, p, nil)
	if w.PendingDetonation {
		t.Fatalf("pending too early")
	}
	w.Update(50*time.Millisecond, p, nil)
	if !w.PendingDetonation {
		t.Errorf("expected pending on timeout")
	}

	w2 := New(vmath.V(100, 100), 0, nil)
	w2.Update(16*time.Millisecond, p, []entity.Boss{&stubBoss{pos: vmath.V(140, 100), radius: 20}})
	if !w2.PendingDetonation {
		t.Errorf("expected pending on boss contact")
	}
}
