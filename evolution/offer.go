package evolution

import (
	"log"

	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Placeholder ids for disabled offer slots
const (
	PlaceholderNoMore    = "no_more_options"
	PlaceholderAllMaxed  = "all_evolutions_maxed"
	placeholderNoMoreTxt = "No More Options"
	placeholderMaxedTxt  = "All evolutions maxed"
)

// Offer is one card on an evolution screen
type Offer struct {
	BaseID string
	Def    *Definition // Nil for placeholders
	Tier   Tier        // TierNone for core entries
	Title  string
	Text   string
	Frozen bool
}

// Disabled reports whether the slot is a placeholder
func (o *Offer) Disabled() bool { return o.Def == nil }

// DisplayTier is the visual rarity; core entries always show as rare
func (o *Offer) DisplayTier() Tier {
	if o.Tier == TierNone {
		return TierRare
	}
	return o.Tier
}

func placeholder(id, text string) Offer {
	return Offer{BaseID: id, Tier: TierNone, Title: text}
}

// Generator builds offer sets from the master list
type Generator struct {
	defs []*Definition
	byID map[string]*Definition
	rng  *vmath.FastRand

	// Achievements returns the unlocked achievement count used for tier odds
	Achievements func() int
}

func NewGenerator(defs []*Definition, rng *vmath.FastRand) *Generator {
	g := &Generator{
		defs: defs,
		byID: make(map[string]*Definition, len(defs)),
		rng:  rng,
	}
	for _, d := range defs {
		g.byID[d.ID] = d
	}
	return g
}

// Lookup returns a definition by id
func (g *Generator) Lookup(id string) *Definition {
	return g.byID[id]
}

// Definitions returns the master list
func (g *Generator) Definitions() []*Definition {
	return g.defs
}

func (g *Generator) rollTier(d *Definition) Tier {
	if !d.Tiered {
		return TierNone
	}
	n := 0
	if g.Achievements != nil {
		n = g.Achievements()
	}
	return RollTier(g.rng, n)
}

// makeOffer renders a card at the player's current state
func (g *Generator) makeOffer(d *Definition, p *player.Player, t Tier) Offer {
	return Offer{
		BaseID: d.ID,
		Def:    d,
		Tier:   t,
		Title:  d.Name,
		Text:   d.Text(p, t),
	}
}

// candidates returns the shuffled pool of offerable entries
func (g *Generator) candidates(p *player.Player, exclude map[string]bool) []*Definition {
	pool := make([]*Definition, 0, len(g.defs))
	for _, d := range g.defs {
		if exclude[d.ID] || p.Progress.Blocked[d.ID] || !d.Available(p) || d.IsMaxed(p) {
			continue
		}
		pool = append(pool, d)
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool
}

// frozenOffer rebuilds the held choice, dropping it when it is no longer valid
// Text and effect are derived from the current player state, not the state at freeze time
func (g *Generator) frozenOffer(p *player.Player) (Offer, int, bool) {
	fr := p.Progress.Frozen
	if fr == nil {
		return Offer{}, 0, false
	}
	d := g.byID[fr.ID]
	if d == nil || fr.Slot < 0 || fr.Slot >= parameter.EvolutionOfferCount ||
		!d.Available(p) || d.IsMaxed(p) || p.Progress.Blocked[d.ID] {
		log.Printf("[evolution] dropped frozen choice %q", fr.ID)
		p.Progress.Frozen = nil
		return Offer{}, 0, false
	}
	o := g.makeOffer(d, p, ParseTier(fr.Tier))
	o.Frozen = true
	return o, fr.Slot, true
}

// Offers builds a full screen of distinct offers
func (g *Generator) Offers(p *player.Player) []Offer {
	offers := make([]Offer, parameter.EvolutionOfferCount)
	filled := make([]bool, len(offers))
	placed := make(map[string]bool, len(offers))

	if o, slot, ok := g.frozenOffer(p); ok {
		offers[slot] = o
		filled[slot] = true
		placed[o.BaseID] = true
	}

	pool := g.candidates(p, placed)
	for i := range offers {
		if filled[i] {
			continue
		}
		if len(pool) == 0 {
			offers[i] = placeholder(PlaceholderNoMore, placeholderNoMoreTxt)
			continue
		}
		d := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		offers[i] = g.makeOffer(d, p, g.rollTier(d))
	}

	allDisabled := true
	for i := range offers {
		if !offers[i].Disabled() {
			allDisabled = false
			break
		}
	}
	if allDisabled {
		offers[0] = placeholder(PlaceholderAllMaxed, placeholderMaxedTxt)
	}
	return offers
}

// Single rolls one replacement offer excluding the given ids
func (g *Generator) Single(p *player.Player, exclude map[string]bool) Offer {
	pool := g.candidates(p, exclude)
	if len(pool) == 0 {
		return placeholder(PlaceholderNoMore, placeholderNoMoreTxt)
	}
	d := pool[0]
	return g.makeOffer(d, p, g.rollTier(d))
}
