package evolution

import (
	"log"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/player"
)

// Mode is the card-click interaction mode of the evolution screen
type Mode uint8

const (
	ModeNone Mode = iota
	ModeBlock
	ModeFreeze
)

func (m Mode) String() string {
	switch m {
	case ModeBlock:
		return "block"
	case ModeFreeze:
		return "freeze"
	default:
		return "select"
	}
}

// Manager owns the open evolution screen and its reroll/block/freeze meta-mechanics
type Manager struct {
	gen    *Generator
	player *player.Player
	events *event.EventQueue
	offers []Offer
	mode   Mode
	open   bool

	// freezeSpent is set when a freeze charge was consumed on the current screen
	freezeSpent bool
}

func NewManager(gen *Generator, events *event.EventQueue) *Manager {
	return &Manager{gen: gen, events: events}
}

// Generator returns the offer generator
func (m *Manager) Generator() *Generator { return m.gen }

// Open generates a new screen for p
func (m *Manager) Open(p *player.Player) []Offer {
	m.player = p
	m.mode = ModeNone
	m.freezeSpent = false
	m.open = true
	m.offers = m.gen.Offers(p)
	return m.offers
}

// IsOpen reports whether a screen is showing
func (m *Manager) IsOpen() bool { return m.open }

// Offers returns the current cards
func (m *Manager) Offers() []Offer { return m.offers }

// Mode returns the current interaction mode
func (m *Manager) Mode() Mode { return m.mode }

// FreezeSpent reports whether a freeze charge was used on this screen
func (m *Manager) FreezeSpent() bool { return m.freezeSpent }

func (m *Manager) push(t event.EventType, payload any) {
	if m.events != nil {
		m.events.Push(t, payload)
	}
}

func (m *Manager) valid(slot int) bool {
	return m.open && slot >= 0 && slot < len(m.offers) && !m.offers[slot].Disabled()
}

// Reroll regenerates every card, consuming one reroll
// A freeze spent on this screen is released back instead of being kept
func (m *Manager) Reroll() bool {
	if !m.open || m.mode != ModeNone {
		return false
	}
	prog := &m.player.Progress
	if prog.RerollsLeft <= 0 {
		return false
	}
	prog.RerollsLeft--

	if prog.Frozen != nil && m.freezeSpent {
		prog.Frozen = nil
		prog.FreezesLeft++
		m.freezeSpent = false
	}
	m.offers = m.gen.Offers(m.player)
	m.push(event.EventEvolutionRerolled, nil)
	m.push(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundUI})
	return true
}

// ToggleBlockMode switches block mode on or off
func (m *Manager) ToggleBlockMode() Mode {
	if m.mode == ModeBlock {
		m.mode = ModeNone
	} else if m.player != nil && m.player.Progress.BlocksLeft > 0 {
		m.mode = ModeBlock
	}
	return m.mode
}

// ToggleFreezeMode switches freeze mode on or off
// Entering is allowed without charges so a held choice can still be released
func (m *Manager) ToggleFreezeMode() Mode {
	if m.mode == ModeFreeze {
		m.mode = ModeNone
	} else if m.player != nil && (m.player.Progress.FreezesLeft > 0 || m.player.Progress.Frozen != nil) {
		m.mode = ModeFreeze
	}
	return m.mode
}

// Click routes a card click through the current mode
// Returns true when the screen closed with a selection
func (m *Manager) Click(slot int) bool {
	switch m.mode {
	case ModeBlock:
		m.Block(slot)
		return false
	case ModeFreeze:
		m.Freeze(slot)
		return false
	default:
		return m.Select(slot)
	}
}

// Block permanently excludes the card's evolution and replaces only that card
func (m *Manager) Block(slot int) bool {
	if !m.valid(slot) {
		return false
	}
	prog := &m.player.Progress
	if prog.BlocksLeft <= 0 {
		return false
	}
	prog.BlocksLeft--
	id := m.offers[slot].BaseID
	prog.Blocked[id] = true

	if prog.Frozen != nil && prog.Frozen.ID == id {
		if m.freezeSpent {
			prog.FreezesLeft++
			m.freezeSpent = false
		}
		prog.Frozen = nil
	}

	exclude := map[string]bool{id: true}
	for i := range m.offers {
		if i != slot && !m.offers[i].Disabled() {
			exclude[m.offers[i].BaseID] = true
		}
	}
	m.offers[slot] = m.gen.Single(m.player, exclude)
	m.mode = ModeNone

	m.push(event.EventEvolutionBlocked, m.payload(id))
	m.push(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundUI})
	return true
}

// Freeze holds a card for future screens, or releases the current hold when clicked again
// Releasing a hold placed on this screen refunds its charge
func (m *Manager) Freeze(slot int) bool {
	if !m.valid(slot) {
		return false
	}
	prog := &m.player.Progress
	o := &m.offers[slot]

	if prog.Frozen != nil && prog.Frozen.ID == o.BaseID {
		if m.freezeSpent {
			prog.FreezesLeft++
			m.freezeSpent = false
		}
		prog.Frozen = nil
		o.Frozen = false
		m.mode = ModeNone
		return true
	}

	if prog.FreezesLeft <= 0 {
		return false
	}
	if prog.Frozen != nil {
		if m.freezeSpent {
			prog.FreezesLeft++
		}
		for i := range m.offers {
			m.offers[i].Frozen = false
		}
	}
	prog.FreezesLeft--
	prog.Frozen = &player.FrozenChoice{ID: o.BaseID, Slot: slot, Tier: o.Tier.String()}
	o.Frozen = true
	m.freezeSpent = true
	m.mode = ModeNone

	m.push(event.EventEvolutionFrozen, m.payload(o.BaseID))
	m.push(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundUI})
	return true
}

// Select applies the card, records it, and closes the screen
func (m *Manager) Select(slot int) bool {
	if !m.valid(slot) {
		return false
	}
	o := m.offers[slot]
	p := m.player

	o.Def.Apply(p, o.Def.Value(o.Tier))
	p.RecordEvolution(player.AcquiredEvolution{
		ID:     o.BaseID,
		Tiered: o.Def.Tiered,
		Tier:   o.Tier.String(),
		Class:  string(o.Def.Class),
	})
	if p.Progress.Frozen != nil && p.Progress.Frozen.ID == o.BaseID {
		p.Progress.Frozen = nil
	}
	log.Printf("[evolution] acquired %s (%s) level %d", o.BaseID, o.DisplayTier(), p.Level(o.BaseID))

	m.push(event.EventEvolutionAcquired, m.payload(o.BaseID))
	m.push(event.EventSoundRequest, &event.SoundRequestPayload{Sound: event.SoundLevelUp})
	m.Close()
	return true
}

// Close dismisses the screen without a selection
func (m *Manager) Close() {
	m.open = false
	m.mode = ModeNone
	m.freezeSpent = false
	m.offers = nil
}

func (m *Manager) payload(id string) *event.EvolutionPayload {
	d := m.gen.Lookup(id)
	if d == nil {
		return &event.EvolutionPayload{ID: id}
	}
	tier := ""
	for _, o := range m.offers {
		if o.BaseID == id {
			tier = o.Tier.String()
		}
	}
	return &event.EvolutionPayload{ID: id, Class: string(d.Class), Tier: tier}
}
