package engine

import (
	"time"

	"github.com/lixenwraith/light-blaster/evolution"
	"github.com/lixenwraith/light-blaster/loot"
	"github.com/lixenwraith/light-blaster/player"
)

// EvolutionCallbacks are the interactions offered by an evolution screen
type EvolutionCallbacks struct {
	Select       func(slot int)
	Reroll       func()
	ToggleBlock  func()
	ToggleFreeze func()
	Skip         func()
}

// UI is the frontend contract consumed by the session
// Implementations run callbacks on their own goroutine; callbacks only enqueue intents
type UI interface {
	SetScore(score int)
	SetHealth(hp, maxHP int)
	SetBuffIndicator(name string, active bool, remaining time.Duration)
	PopulateEvolution(offers []evolution.Offer, p *player.Player, mode evolution.Mode, cb EvolutionCallbacks)
	PopulateLoot(options []loot.Option, p *player.Player, onSelect func(index int))
	PopulateFreeUpgrade(offers []evolution.Offer, p *player.Player, onSelect func(slot int))
	RefreshAbilityCooldowns(p *player.Player)
	ShowPhase(phase Phase)
}
