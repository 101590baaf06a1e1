package player

import (
	"time"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// multishotSpread is the angle between adjacent extra shots (radians)
const multishotSpread = 0.12

// ShootCooldown returns the delay between primary shots
func (p *Player) ShootCooldown() time.Duration {
	cd := float64(parameter.PlayerShootCooldown) / (1 + p.FireRateBonus)
	if p.HowlBuffTimer > 0 {
		cd /= parameter.SavageHowlAttackSpeedBuff
	}
	return time.Duration(cd)
}

// TryFire spawns player rays toward the aim point when the shoot cooldown allows
// Returns the number of rays spawned
func (p *Player) TryFire(env *Env) int {
	if p.shootTimer > 0 || p.Dashing() || !p.Alive() {
		return 0
	}
	p.shootTimer = p.ShootCooldown()

	aim := vmath.Direction(p.Pos, env.Aim, vmath.V(1, 0))
	count := 1 + p.ExtraShots
	pierce := 0
	if p.PierceEnabled {
		pierce = 1
	}
	base := aim.Angle() - multishotSpread*float64(count-1)/2
	for i := 0; i < count; i++ {
		dir := vmath.FromAngle(base + multishotSpread*float64(i))
		env.Pool.Spawn(ray.ResetParams{
			Pos:               p.Pos.Add(dir.Scale(p.Radius)),
			Dir:               dir,
			Speed:             parameter.RaySpeed,
			Radius:            parameter.RayRadius,
			Owner:             ray.OwnerPlayer,
			Color:             ray.ColorPlayer,
			MaxBounces:        parameter.MaxBouncesPlayerRay + p.ExtraBounces,
			MomentumPerBounce: p.MomentumPerBounce,
			PierceUses:        pierce,
		})
	}
	p.Stats.ShotsFired += count
	env.sound(event.SoundShoot)
	return count
}
