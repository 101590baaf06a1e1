package combat

import (
	"testing"
	"time"

	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
	"github.com/lixenwraith/light-blaster/well"
)

type stubBoss struct {
	pos   vmath.Vec2
	hp    int
	taken []int
	srcs  []*ray.Ray
}

func (b *stubBoss) Pos() vmath.Vec2         { return b.pos }
func (b *stubBoss) Radius() float64         { return parameter.BossRadius }
func (b *stubBoss) Health() int             { return b.hp }
func (b *stubBoss) MaxHealth() int          { return 1000 }
func (b *stubBoss) Active() bool            { return b.hp > 0 }
func (b *stubBoss) Tier() int               { return 1 }
func (b *stubBoss) Name() string            { return "stub" }
func (b *stubBoss) ApplyFear(time.Duration) {}
func (b *stubBoss) ApplyRecoil(vmath.Vec2)  {}

func (b *stubBoss) TakeDamage(amount int, src *ray.Ray) bool {
	b.taken = append(b.taken, amount)
	b.srcs = append(b.srcs, src)
	b.hp -= amount
	return b.hp <= 0
}

type fixture struct {
	p     *player.Player
	env   *player.Env
	score int
}

func newFixture(seed uint64) *fixture {
	f := &fixture{p: player.New(vmath.V(600, 700))}
	f.env = &player.Env{
		Pool:     ray.NewPool(16),
		Targets:  &entity.TargetSet{},
		Effects:  &entity.EffectList{},
		Events:   event.NewEventQueue(),
		Rng:      vmath.NewFastRand(seed),
		Bounds:   physics.Bounds{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
		AddScore: func(n int) { f.score += n },
	}
	return f
}

// shoot spawns a moving ray at pos with its spawn grace already elapsed
func (f *fixture) shoot(pos vmath.Vec2, owner ray.Owner, mutate func(*ray.Ray)) *ray.Ray {
	r := f.env.Pool.Spawn(ray.ResetParams{
		Pos:    pos,
		Dir:    vmath.V(1, 0),
		Speed:  parameter.RaySpeed,
		Radius: parameter.RayRadius,
		Owner:  owner,
	})
	r.Grace = 0
	if mutate != nil {
		mutate(r)
	}
	return r
}

// TestPlainRayBreaksTarget verifies a fresh player's plain ray deals 1 damage and scores 10
func TestPlainRayBreaksTarget(t *testing.T) {
	f := newFixture(1)
	target := entity.NewTarget(vmath.V(200, 200), false)
	f.env.Targets.Add(target)
	r := f.shoot(vmath.V(200, 200), ray.OwnerPlayer, nil)

	res := NewResolver().Resolve(f.p, f.env)

	if res.DamageDealt != 1 || res.Hits != 1 {
		t.Errorf("expected 1 damage from 1 hit, got %d from %d", res.DamageDealt, res.Hits)
	}
	if target.Alive() || f.env.Targets.Len() != 0 {
		t.Errorf("target not removed")
	}
	if f.score != parameter.ScoreTargetDestroyed {
		t.Errorf("score %d, want %d", f.score, parameter.ScoreTargetDestroyed)
	}
	if r.Active() {
		t.Errorf("non-piercing ray still active")
	}
}

// TestRayDamageComposition verifies multiplier order for shots and ability rays
func TestRayDamageComposition(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *player.Player, r *ray.Ray)
		want  int
	}{
		{"plain", func(p *player.Player, r *ray.Ray) {}, 1},
		{"bonus", func(p *player.Player, r *ray.Ray) { p.RayDamageBonus = 2 }, 3},
		{"momentum", func(p *player.Player, r *ray.Ray) {
			p.RayDamageBonus = 1
			r.MomentumBonus = 0.5
		}, 3},
		{"kinetic boost", func(p *player.Player, r *ray.Ray) {
			r.KineticBoost = 2.5
		}, 3},
		{"ability ultimate", func(p *player.Player, r *ray.Ray) {
			r.IsPlayerAbilityRay = true
			p.RayDamageBonus = 1
			p.AbilityDamageMultiplier = 1.5
			p.HasUltimateConfiguration = true
		}, 6},
		{"harmony", func(p *player.Player, r *ray.Ray) {
			p.RayDamageBonus = 3
			p.HasPerfectHarmony = true
			p.TimeSinceLastHit = parameter.HarmonyStreakDuration
		}, 5},
		{"floor of one", func(p *player.Player, r *ray.Ray) {
			r.KineticBoost = 0.1
		}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(2)
			r := f.shoot(vmath.V(100, 100), ray.OwnerPlayer, nil)
			tc.setup(f.p, r)
			got, crit := RayDamage(f.p, r, nil)
			if crit || got != tc.want {
				t.Errorf("got %d (crit %v), want %d", got, crit, tc.want)
			}
		})
	}
}

// TestCritAlwaysWithFullChance verifies crit multiplies damage
func TestCritAlwaysWithFullChance(t *testing.T) {
	f := newFixture(3)
	f.p.RayDamageBonus = 3
	f.p.CritChance = 1
	r := f.shoot(vmath.V(100, 100), ray.OwnerPlayer, nil)
	got, crit := RayDamage(f.p, r, f.env.Rng)
	if !crit || got != 6 {
		t.Errorf("got %d crit=%v, want 6 crit", got, crit)
	}
}

// TestPierceHitsTwoTargets verifies a pierce use lets one ray break two targets
func TestPierceHitsTwoTargets(t *testing.T) {
	f := newFixture(4)
	f.env.Targets.Add(entity.NewTarget(vmath.V(300, 300), false))
	f.env.Targets.Add(entity.NewTarget(vmath.V(305, 300), false))
	r := f.shoot(vmath.V(302, 300), ray.OwnerPlayer, func(r *ray.Ray) { r.PierceUses = 1 })

	res := NewResolver().Resolve(f.p, f.env)
	if res.TargetsDestroyed != 2 {
		t.Errorf("expected 2 targets destroyed, got %d", res.TargetsDestroyed)
	}
	if r.Active() || r.PierceUses != 0 {
		t.Errorf("ray should be spent, active=%v pierce=%d", r.Active(), r.PierceUses)
	}
}

// TestPierceSkipsLastHitTarget verifies a piercing ray damages an armored target once while passing through it
func TestPierceSkipsLastHitTarget(t *testing.T) {
	f := newFixture(4)
	armored := entity.NewTarget(vmath.V(300, 300), true)
	f.env.Targets.Add(armored)
	r := f.shoot(armored.Pos, ray.OwnerPlayer, func(r *ray.Ray) { r.PierceUses = 1 })

	c := NewResolver()
	for range 3 {
		c.Resolve(f.p, f.env)
	}
	if want := parameter.TargetArmoredHP - 1; armored.HP != want {
		t.Errorf("armored hp %d, want %d", armored.HP, want)
	}
	if !r.Active() || r.PierceUses != 0 || r.LastHit != armored {
		t.Errorf("ray should pass through: active=%v pierce=%d", r.Active(), r.PierceUses)
	}
}

// TestPierceStopsAtBoss verifies pierce is not spent on bosses and the ray stops on contact
func TestPierceStopsAtBoss(t *testing.T) {
	f := newFixture(5)
	boss := &stubBoss{pos: vmath.V(500, 300), hp: 100}
	f.env.Bosses = []entity.Boss{boss}
	r := f.shoot(boss.pos, ray.OwnerPlayer, func(r *ray.Ray) { r.PierceUses = 1 })

	c := NewResolver()
	for range 3 {
		c.Resolve(f.p, f.env)
	}
	if len(boss.taken) != 1 {
		t.Errorf("expected one boss hit, got %v", boss.taken)
	}
	if r.Active() {
		t.Error("ray should stop at the boss")
	}
}

// TestDetonatedWellRayUsesAbilityDamage verifies rays relaunched by a well take the ability multiplier chain
func TestDetonatedWellRayUsesAbilityDamage(t *testing.T) {
	f := newFixture(10)
	f.p.RayDamageBonus = 1
	f.p.AbilityDamageMultiplier = 1.5
	f.p.HasUltimateConfiguration = true

	w := well.New(vmath.V(400, 400), 0, f.env.Rng)
	r := f.shoot(vmath.V(400, 400), ray.OwnerNeutral, nil)
	w.Update(16*time.Millisecond, f.env.Pool, nil)
	if n := w.Detonate(vmath.V(800, 400), false, 0); n != 1 {
		t.Fatalf("expected 1 launched, got %d", n)
	}

	got, _ := RayDamage(f.p, r, nil)
	if !r.IsPlayerAbilityRay || got != 6 {
		t.Errorf("got %d (ability %v), want 6 from the ability chain", got, r.IsPlayerAbilityRay)
	}

	boss := &stubBoss{pos: vmath.V(900, 300), hp: 100}
	f.env.Bosses = []entity.Boss{boss}
	r.Pos, r.Grace = boss.pos, 0
	NewResolver().Resolve(f.p, f.env)
	if len(boss.srcs) != 1 || !boss.srcs[0].IsPlayerAbilityRay {
		t.Errorf("boss should be hit by an ability ray, got %v", boss.taken)
	}
}

// TestChainReactionHalfDamage verifies the sweep applies half the triggering damage
func TestChainReactionHalfDamage(t *testing.T) {
	for seed := uint64(1); seed < 64; seed++ {
		f := newFixture(seed)
		f.p.RayDamageBonus = 3
		f.p.ChainReactionChance = 1
		f.env.Targets.Add(entity.NewTarget(vmath.V(200, 200), false))
		neighbor := entity.NewTarget(vmath.V(250, 200), true)
		f.env.Targets.Add(neighbor)
		f.shoot(vmath.V(200, 200), ray.OwnerPlayer, nil)

		res := NewResolver().Resolve(f.p, f.env)
		if res.Chains == 0 {
			continue
		}
		if want := parameter.TargetArmoredHP - ChainDamage(4); neighbor.HP != want {
			t.Errorf("neighbor hp %d, want %d", neighbor.HP, want)
		}
		if len(f.env.Effects.Items()) == 0 {
			t.Errorf("chain effect not spawned")
		}
		return
	}
	t.Fatalf("no chain reaction in 63 seeds")
}

// TestChainChanceCapped verifies the proc rate never exceeds the cap
func TestChainChanceCapped(t *testing.T) {
	f := newFixture(9)
	f.p.ChainReactionChance = 1
	boss := &stubBoss{pos: vmath.V(900, 200), hp: 1 << 30}
	f.env.Bosses = []entity.Boss{boss}

	c := NewResolver()
	chains := 0
	const n = 4000
	for i := 0; i < n; i++ {
		f.shoot(boss.pos, ray.OwnerPlayer, nil)
		chains += c.Resolve(f.p, f.env).Chains
	}
	rate := float64(chains) / n
	if rate < parameter.ChainReactionMaxChance-0.05 || rate > parameter.ChainReactionMaxChance+0.05 {
		t.Errorf("chain rate %.3f, want about %.2f", rate, parameter.ChainReactionMaxChance)
	}
}

// TestBossHitPassesSource verifies bosses receive the ray as damage source
func TestBossHitPassesSource(t *testing.T) {
	f := newFixture(5)
	boss := &stubBoss{pos: vmath.V(500, 300), hp: 100}
	f.env.Bosses = []entity.Boss{boss}
	r := f.shoot(boss.pos, ray.OwnerPlayer, nil)

	NewResolver().Resolve(f.p, f.env)
	if len(boss.taken) != 1 || boss.taken[0] != 1 || boss.srcs[0] != r {
		t.Errorf("unexpected boss hits %v", boss.taken)
	}
}

// TestIncomingDamage covers hostile, neutral, own and skipped rays against the player
func TestIncomingDamage(t *testing.T) {
	tests := []struct {
		name   string
		owner  ray.Owner
		mutate func(r *ray.Ray)
		want   int
	}{
		{"boss projectile", ray.OwnerBoss, func(r *ray.Ray) { r.IsBossProjectile = true }, parameter.BossRayDamage},
		{"neutral", ray.OwnerNeutral, nil, parameter.NeutralRayDamage},
		{"explicit damage", ray.OwnerNeutral, func(r *ray.Ray) { r.Damage = 3 }, 3},
		{"own ray", ray.OwnerPlayer, nil, 0},
		{"in grace", ray.OwnerBoss, func(r *ray.Ray) {
			r.IsBossProjectile = true
			r.Grace = parameter.RaySpawnGracePeriod
		}, 0},
		{"orbiting well", ray.OwnerNeutral, func(r *ray.Ray) { r.IsCorruptedByPlayerWell = true }, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(6)
			f.shoot(f.p.Pos, tc.owner, tc.mutate)
			res := NewResolver().Resolve(f.p, f.env)
			if res.DamageTaken != tc.want {
				t.Errorf("damage taken %d, want %d", res.DamageTaken, tc.want)
			}
			if f.p.HP != parameter.PlayerBaseHP-tc.want {
				t.Errorf("hp %d, want %d", f.p.HP, parameter.PlayerBaseHP-tc.want)
			}
		})
	}
}

// TestImmunityBlocksSecondHit verifies the post-damage window absorbs the next ray
func TestImmunityBlocksSecondHit(t *testing.T) {
	f := newFixture(7)
	f.shoot(f.p.Pos, ray.OwnerNeutral, nil)
	f.shoot(f.p.Pos, ray.OwnerNeutral, nil)
	res := NewResolver().Resolve(f.p, f.env)
	if res.DamageTaken != parameter.NeutralRayDamage {
		t.Errorf("damage taken %d, want a single hit of %d", res.DamageTaken, parameter.NeutralRayDamage)
	}
	if f.env.Pool.ActiveCount() != 0 {
		t.Errorf("both rays should be consumed, %d active", f.env.Pool.ActiveCount())
	}
}

// TestBossContact verifies body contact damage
func TestBossContact(t *testing.T) {
	f := newFixture(8)
	f.env.Bosses = []entity.Boss{&stubBoss{pos: f.p.Pos, hp: 10}}
	res := NewResolver().Resolve(f.p, f.env)
	if res.DamageTaken != parameter.BossContactDamage {
		t.Errorf("contact damage %d, want %d", res.DamageTaken, parameter.BossContactDamage)
	}
}
