package loot

import (
	"log"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Kind identifies the effect family of a loot option
type Kind uint8

const (
	KindPath Kind = iota
	KindSlot
	KindGear
)

// Option is one choice on a path or loot screen
type Option struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
	Path        player.Path      // Path granted by KindPath options
	Ability     player.AbilityID // Slot unlocked by KindSlot options
}

// ScreenKind selects the frontend page for a boss reward
type ScreenKind uint8

const (
	ScreenNone ScreenKind = iota
	ScreenPath
	ScreenLoot
	ScreenFreeUpgrade
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenPath:
		return "path"
	case ScreenLoot:
		return "loot"
	case ScreenFreeUpgrade:
		return "free_upgrade"
	default:
		return "none"
	}
}

// Screen is the reward shown after a boss kill
// ScreenFreeUpgrade carries no options; the caller opens an evolution screen instead
type Screen struct {
	Kind    ScreenKind
	Tier    int
	Options []Option
}

// gear is a boss-drop pool entry
type gear struct {
	Option
	// available reports whether the player may still receive it
	available func(p *player.Player) bool
	apply     func(p *player.Player)
}

func slotGear(id, name, desc string, ability player.AbilityID) gear {
	return gear{
		Option: Option{ID: id, Name: name, Description: desc, Kind: KindSlot, Ability: ability},
		available: func(p *player.Player) bool {
			return !p.Ability(ability).Unlocked
		},
		apply: func(p *player.Player) { p.UnlockSlot(ability) },
	}
}

// pool is the fixed boss-drop table
func pool() []gear {
	return []gear{
		slotGear("emp_burst", "EMP Burst", "Slot 1: clear every hostile ray on screen", player.AbilityEmpBurst),
		slotGear("mini_well", "Mini Gravity Well", "Slot 2: deploy a well that captures rays, press again to launch them", player.AbilityMiniWell),
		slotGear("teleport", "Teleport", "Slot 3: blink to the cursor with brief invulnerability", player.AbilityTeleport),
		{
			Option: Option{ID: "ablative_sublayer", Name: "Ablative Sublayer", Description: "Boss projectiles deal 25% less damage", Kind: KindGear},
			available: func(p *player.Player) bool {
				return !p.HasAblativeSublayer
			},
			apply: func(p *player.Player) { p.HasAblativeSublayer = true },
		},
		{
			Option: Option{ID: "ultimate_configuration", Name: "Ultimate Configuration", Description: "Ability damage x2, slot cooldowns x1.5", Kind: KindGear},
			available: func(p *player.Player) bool {
				return !p.HasUltimateConfiguration && p.Path != player.PathNone
			},
			apply: func(p *player.Player) { p.HasUltimateConfiguration = true },
		},
		{
			Option: Option{ID: "phase_stabilizer", Name: "Phase Stabilizer", Description: "Your rays may phase through walls", Kind: KindGear},
			available: func(p *player.Player) bool {
				return !p.HasPhaseStabilizer
			},
			apply: func(p *player.Player) { p.HasPhaseStabilizer = true },
		},
		{
			Option: Option{ID: "perfect_harmony", Name: "Perfect Harmony", Description: "Bonus damage while avoiding hits", Kind: KindGear},
			available: func(p *player.Player) bool {
				return !p.HasPerfectHarmony
			},
			apply: func(p *player.Player) { p.HasPerfectHarmony = true },
		},
		{
			Option: Option{ID: "kinetic_overload", Name: "Kinetic Overload", Description: "Kinetic charge bonus +50%", Kind: KindGear, Path: player.PathMage},
			available: func(p *player.Player) bool {
				return p.Path == player.PathMage && !p.HasLoot("kinetic_overload")
			},
			apply: func(p *player.Player) { p.KineticMaxBonus += parameter.KineticOverloadBonus },
		},
	}
}

// PathOptions returns the three path choices
func PathOptions() []Option {
	return []Option{
		{ID: "path_mage", Name: "Mage", Description: "Omega Laser and Shield Overcharge, kinetic charge from movement", Kind: KindPath, Path: player.PathMage},
		{ID: "path_aegis", Name: "Aegis", Description: "Aegis Charge dash and Seismic Slam", Kind: KindPath, Path: player.PathAegis},
		{ID: "path_berserker", Name: "Berserker", Description: "Bloodpact lifesteal and Savage Howl, stronger at low health", Kind: KindPath, Path: player.PathBerserker},
	}
}

// Manager builds boss reward screens and applies chosen options
type Manager struct {
	gear   []gear
	byID   map[string]*gear
	rng    *vmath.FastRand
	events *event.EventQueue
}

func NewManager(rng *vmath.FastRand, events *event.EventQueue) *Manager {
	m := &Manager{
		gear:   pool(),
		rng:    rng,
		events: events,
	}
	m.byID = make(map[string]*gear, len(m.gear))
	for i := range m.gear {
		m.byID[m.gear[i].ID] = &m.gear[i]
	}
	return m
}

// Available returns the pool entries the player may still receive
func (m *Manager) Available(p *player.Player) []Option {
	out := make([]Option, 0, len(m.gear))
	for i := range m.gear {
		g := &m.gear[i]
		if p.HasLoot(g.ID) || !g.available(p) {
			continue
		}
		out = append(out, g.Option)
	}
	return out
}

// OnBossDefeated returns the reward screen for a boss of the given tier
// The path choice is offered once; later kills draw from the filtered pool
func (m *Manager) OnBossDefeated(p *player.Player, tier int) Screen {
	if p.Path == player.PathNone {
		return Screen{Kind: ScreenPath, Tier: tier, Options: PathOptions()}
	}

	avail := m.Available(p)
	if len(avail) == 0 {
		log.Printf("[loot] pool exhausted at tier %d, offering free upgrade", tier)
		return Screen{Kind: ScreenFreeUpgrade, Tier: tier}
	}
	m.rng.Shuffle(len(avail), func(i, j int) { avail[i], avail[j] = avail[j], avail[i] })
	if len(avail) > parameter.LootOfferCount {
		avail = avail[:parameter.LootOfferCount]
	}
	return Screen{Kind: ScreenLoot, Tier: tier, Options: avail}
}

// Apply grants a chosen option; invalid or already owned options are ignored
func (m *Manager) Apply(p *player.Player, opt Option, env *player.Env) bool {
	if opt.Kind == KindPath {
		if !p.ChoosePath(opt.Path, env) {
			return false
		}
		log.Printf("[loot] path chosen: %s", opt.Path)
		m.push(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundLevelUp})
		return true
	}

	g := m.byID[opt.ID]
	if g == nil || p.HasLoot(g.ID) || !g.available(p) {
		log.Printf("[loot] ignored unavailable option %q", opt.ID)
		return false
	}
	g.apply(p)
	p.Progress.Loot[g.ID] = true
	log.Printf("[loot] collected %s", g.ID)

	m.push(event.EventLootCollected, &event.LootPayload{ID: g.ID})
	m.push(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundPickup})
	return true
}

func (m *Manager) push(t event.EventType, payload any) {
	if m.events != nil {
		m.events.Push(t, payload)
	}
}
