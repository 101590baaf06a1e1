package player

// PressPrimary handles the primary (LMB) ability of the current path
// Aegis Charge toggles: the first press starts charging and the second releases the dash
func (p *Player) PressPrimary(env *Env) bool {
	switch p.Path {
	case PathMage:
		return p.activateOmegaLaser(env)
	case PathAegis:
		if p.abilities[AbilityAegisCharge].State == StateCharging {
			return p.ReleasePrimary(env)
		}
		return p.startAegisCharge(env)
	case PathBerserker:
		return p.activateBloodpact(env)
	default:
		return false
	}
}

// ReleasePrimary releases a held aegis charge into a dash toward the aim point
func (p *Player) ReleasePrimary(env *Env) bool {
	if p.Path != PathAegis {
		return false
	}
	return p.releaseAegisCharge(env)
}

// PressSecondary handles the secondary (RMB) ability of the current path
func (p *Player) PressSecondary(env *Env) bool {
	switch p.Path {
	case PathMage:
		return p.activateShieldOvercharge(env)
	case PathAegis:
		return p.seismicSlam(env)
	case PathBerserker:
		return p.savageHowl(env)
	default:
		return false
	}
}

// UseSlot activates numbered slot n (1-3)
func (p *Player) UseSlot(n int, env *Env) bool {
	switch n {
	case 1:
		return p.empBurst(env)
	case 2:
		return p.toggleMiniWell(env)
	case 3:
		return p.teleport(env)
	default:
		return false
	}
}

// UnlockSlot grants a numbered slot ability
func (p *Player) UnlockSlot(id AbilityID) {
	if id.Slot() {
		p.abilities[id].Unlocked = true
	}
}
