package combat

import (
	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/physics"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
)

// Result summarizes one resolution pass
type Result struct {
	Hits             int
	Crits            int
	Chains           int
	TargetsDestroyed int
	BossHits         int
	DamageDealt      int
	DamageTaken      int
}

// Resolver checks ray collisions against targets, bosses and the player once per tick
type Resolver struct {
	last Result
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Last returns the result of the most recent pass
func (c *Resolver) Last() Result { return c.last }

// Resolve runs collision and damage for every moving ray
// Rays in spawn grace or orbiting a well are skipped
func (c *Resolver) Resolve(p *player.Player, env *player.Env) Result {
	var res Result
	if env.Pool == nil {
		c.last = res
		return res
	}

	env.Pool.ForEachActive(func(r *ray.Ray) {
		if r.State != ray.StateMoving || r.InGrace() {
			return
		}
		if r.IsCorruptedByPlayerWell {
			return
		}

		if r.Owner == ray.OwnerPlayer {
			c.resolvePlayerRay(p, r, env, &res)
			return
		}
		c.resolveIncoming(p, r, env, &res)
	})

	c.resolveContact(p, env, &res)
	c.last = res
	return res
}

// resolvePlayerRay damages the first target or boss the ray overlaps
// Pierce carries the ray through breakable targets only; bosses always stop it
func (c *Resolver) resolvePlayerRay(p *player.Player, r *ray.Ray, env *player.Env, res *Result) {
	if env.Targets != nil {
		for _, t := range env.Targets.Within(r.Pos, r.Radius) {
			if r.LastHit == t || !t.Alive() {
				continue
			}
			dmg := c.hit(p, r, env, res)
			if t.Hit(dmg) {
				c.targetDestroyed(p, t, env, res)
			}
			c.afterHit(p, r, dmg, env, res)
			if r.PierceUses > 0 {
				r.PierceUses--
				r.LastHit = t
				continue
			}
			r.Deactivate()
			return
		}
	}

	for _, b := range env.Bosses {
		if !b.Active() || !physics.CirclesOverlap(r.Pos, r.Radius, b.Pos(), b.Radius()) {
			continue
		}
		dmg := c.hit(p, r, env, res)
		res.BossHits++
		b.TakeDamage(dmg, r)
		c.afterHit(p, r, dmg, env, res)
		r.Deactivate()
		return
	}
}

// hit composes damage for one contact and records crits
func (c *Resolver) hit(p *player.Player, r *ray.Ray, env *player.Env, res *Result) int {
	dmg, crit := RayDamage(p, r, env.Rng)
	res.Hits++
	res.DamageDealt += dmg
	if crit {
		res.Crits++
		push(env, event.EventCriticalHit, &event.DamagePayload{Amount: dmg})
	}
	if env.Events != nil {
		env.Events.Sound(event.SoundHit)
	}
	return dmg
}

// afterHit applies lifesteal and chain reaction
func (c *Resolver) afterHit(p *player.Player, r *ray.Ray, dmg int, env *player.Env, res *Result) {
	p.OnDamageDealt(dmg, env)
	c.tryChainReaction(p, r, dmg, env, res)
}

// tryChainReaction sweeps targets and bosses around the hit point with half the triggering damage
func (c *Resolver) tryChainReaction(p *player.Player, r *ray.Ray, dmg int, env *player.Env, res *Result) {
	chance := min(p.ChainReactionChance, parameter.ChainReactionMaxChance)
	if chance <= 0 || env.Rng == nil || !env.Rng.Chance(chance) {
		return
	}
	center := r.Pos
	if env.Effects != nil {
		env.Effects.Add(entity.EffectChain, center, parameter.ChainReactionRadius, parameter.ChainReactionDuration)
	}

	half := ChainDamage(dmg)
	hits, dealt := 0, 0
	if env.Targets != nil {
		for _, t := range env.Targets.Within(center, parameter.ChainReactionRadius) {
			hits++
			dealt += half
			if t.Hit(half) {
				c.targetDestroyed(p, t, env, res)
			}
		}
	}
	for _, b := range env.Bosses {
		if !b.Active() || !physics.WithinRadius(center, b.Pos(), parameter.ChainReactionRadius+b.Radius()) {
			continue
		}
		hits++
		dealt += half
		b.TakeDamage(half, r)
	}

	res.Chains++
	res.DamageDealt += dealt
	p.Stats.DamageDealt += dealt
	push(env, event.EventChainReaction, &event.ChainReactionPayload{Hits: hits})
}

// targetDestroyed credits score and raises the destruction event
func (c *Resolver) targetDestroyed(p *player.Player, t *entity.Target, env *player.Env, res *Result) {
	res.TargetsDestroyed++
	p.Stats.TargetsDestroyed++
	if env.AddScore != nil {
		env.AddScore(parameter.ScoreTargetDestroyed)
	}
	push(env, event.EventTargetDestroyed, &event.TargetDestroyedPayload{
		Score: parameter.ScoreTargetDestroyed,
		Pos:   t.Pos,
	})
}

// resolveIncoming applies neutral and boss rays to the player
// Player-owned rays never reach here, so ownership replaces grace-based self exemption
func (c *Resolver) resolveIncoming(p *player.Player, r *ray.Ray, env *player.Env, res *Result) {
	if !p.Alive() || !physics.CirclesOverlap(r.Pos, r.Radius, p.Pos, p.Radius) {
		return
	}

	fallback := parameter.NeutralRayDamage
	switch {
	case r.IsGravityWellRay:
		fallback = parameter.GravityBallDamage
	case r.IsBossProjectile:
		fallback = parameter.BossRayDamage
	}
	amount, src := incomingDamage(r, fallback)
	res.DamageTaken += p.TakeDamage(amount, src, env)

	if r.IsGravityWellRay && r.GravityOwner != nil {
		r.GravityOwner.DetonateGravityBall(r)
	}
	r.Deactivate()
}

// resolveContact applies boss body contact damage unless the player is dashing
func (c *Resolver) resolveContact(p *player.Player, env *player.Env, res *Result) {
	if !p.Alive() || p.Dashing() {
		return
	}
	for _, b := range env.Bosses {
		if b.Active() && physics.CirclesOverlap(p.Pos, p.Radius, b.Pos(), b.Radius()) {
			res.DamageTaken += p.TakeDamage(parameter.BossContactDamage, player.SourceContact, env)
			return
		}
	}
}

func push(env *player.Env, t event.EventType, payload any) {
	if env.Events != nil {
		env.Events.Push(t, payload)
	}
}
