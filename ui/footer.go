package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
)

// buff is one timed effect shown in the footer
type buff struct {
	name      string
	active    bool
	remaining time.Duration
}

// SetBuffIndicator records a buff state; the footer shows active ones in arrival order
func (a *App) SetBuffIndicator(name string, active bool, remaining time.Duration) {
	for i := range a.buffs {
		if a.buffs[i].name == name {
			a.buffs[i].active = active
			a.buffs[i].remaining = remaining
			a.updateFooter()
			return
		}
	}
	a.buffs = append(a.buffs, buff{name: name, active: active, remaining: remaining})
	a.updateFooter()
}

// RefreshAbilityCooldowns rebuilds the ability strip for the unlocked abilities
func (a *App) RefreshAbilityCooldowns(p *player.Player) {
	var b strings.Builder
	for _, id := range p.UnlockedAbilities() {
		ab := p.Ability(id)
		label := fmt.Sprintf("%s %s", abilityKey(id), strings.ToUpper(strings.ReplaceAll(id.String(), "_", " ")))
		switch ab.State {
		case player.StateCooldown:
			fmt.Fprintf(&b, "[#5a5a5a]%s %.0fs[-] ", label, math.Ceil(ab.Cooldown.Seconds()))
		case player.StateActive, player.StateCharging:
			fmt.Fprintf(&b, "[black:#ffc0cb]%s[-:-] ", label)
		default:
			fmt.Fprintf(&b, "[#5adc78]%s[-] ", label)
		}
	}
	a.cooldowns = b.String()
	a.updateFooter()
}

// abilityKey names the input bound to an ability
func abilityKey(id player.AbilityID) string {
	switch id {
	case player.AbilityOmegaLaser, player.AbilityAegisCharge, player.AbilityBloodpact:
		return "LMB"
	case player.AbilityShieldOvercharge, player.AbilitySeismicSlam, player.AbilitySavageHowl:
		return "RMB"
	case player.AbilityEmpBurst:
		return "1"
	case player.AbilityMiniWell:
		return "2"
	case player.AbilityTeleport:
		return "3"
	default:
		return "?"
	}
}

func (a *App) updateFooter() {
	var b strings.Builder
	b.WriteString(a.cooldowns)
	for _, bf := range a.buffs {
		if !bf.active {
			continue
		}
		b.WriteString("[#ffd75a]")
		b.WriteString(strings.ToUpper(bf.name))
		if bf.remaining > 0 {
			fmt.Fprintf(&b, " %.1fs", bf.remaining.Seconds())
		}
		b.WriteString("[-] ")
	}
	if a.toast != "" {
		b.WriteString("[#fff078]" + tview.Escape(a.toast) + "[-] ")
	}
	if a.sound {
		b.WriteString(parameter.AudioStr)
	}
	a.footer.SetText(b.String())
}
