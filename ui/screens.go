package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/evolution"
	"github.com/lixenwraith/light-blaster/loot"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/render"
)

const (
	screenWidth  = 64
	screenHeight = 22
)

// offerScreen is a centered card list with a header and a key hint line
type offerScreen struct {
	*tview.Flex
	frame  *tview.Flex
	header *tview.TextView
	list   *tview.List
	hint   *tview.TextView
}

func newOfferScreen(title string) *offerScreen {
	s := &offerScreen{
		header: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
		list:   tview.NewList().SetWrapAround(true).SetHighlightFullLine(true),
		hint:   tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
	}
	s.list.SetShortcutColor(render.RgbLoot)

	s.frame = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.header, 2, 0, false).
		AddItem(s.list, 0, 1, true).
		AddItem(s.hint, 1, 0, false)
	s.frame.SetBorder(true).SetTitle(" " + title + " ")

	// Center the frame
	s.Flex = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(s.frame, screenHeight, 0, true).
			AddItem(nil, 0, 1, false), screenWidth, 0, true).
		AddItem(nil, 0, 1, false)
	return s
}

// reset clears the list, remembering the highlighted row
func (s *offerScreen) reset() int {
	current := s.list.GetCurrentItem()
	s.list.Clear()
	s.list.SetDoneFunc(nil)
	return current
}

func (s *offerScreen) restore(current int) {
	if current >= 0 && current < s.list.GetItemCount() {
		s.list.SetCurrentItem(current)
	}
}

// tierColor is the tview color tag for an offer rarity
func tierColor(t evolution.Tier) string {
	switch t {
	case evolution.TierCommon:
		return "#c8c8c8"
	case evolution.TierEpic:
		return "#b06cff"
	case evolution.TierLegendary:
		return "#ffb347"
	default:
		return "#4fa3ff"
	}
}

// offerText renders a card's main and secondary lines
func offerText(o *evolution.Offer, p *player.Player) (string, string) {
	if o.Disabled() {
		return "[#555555]" + tview.Escape(o.Title) + "[-]", ""
	}
	main := fmt.Sprintf("[%s]%s[-]", tierColor(o.DisplayTier()), tview.Escape(o.Title))
	if o.Tier != evolution.TierNone {
		main += fmt.Sprintf(" [%s](%s)[-]", tierColor(o.Tier), o.Tier)
	}
	if lvl := p.Level(o.BaseID); lvl > 0 {
		main += fmt.Sprintf(" lv %d", lvl)
	}
	if o.Frozen {
		main += " [#7fdfff]❄ frozen[-]"
	}
	return main, tview.Escape(o.Text)
}

func (s *offerScreen) addOffers(offers []evolution.Offer, p *player.Player, onSelect func(slot int)) {
	for i := range offers {
		slot := i
		main, secondary := offerText(&offers[i], p)
		s.list.AddItem(main, secondary, rune('1'+i), func() { onSelect(slot) })
	}
}

// PopulateEvolution fills the evolution page with cards and the reroll, block, freeze and skip controls
func (a *App) PopulateEvolution(offers []evolution.Offer, p *player.Player, mode evolution.Mode, cb engine.EvolutionCallbacks) {
	s := a.evolution
	current := s.reset()

	prog := &p.Progress
	modeText := "[#5adc78]select a card[-]"
	switch mode {
	case evolution.ModeBlock:
		modeText = "[#ff5a5a]BLOCK: choose a card to ban for this run[-]"
	case evolution.ModeFreeze:
		modeText = "[#7fdfff]FREEZE: choose a card to hold for the next screen[-]"
	}
	s.header.SetText(fmt.Sprintf("%s\nrerolls %d  blocks %d  freezes %d",
		modeText, prog.RerollsLeft, prog.BlocksLeft, prog.FreezesLeft))

	s.addOffers(offers, p, cb.Select)
	s.list.AddItem(fmt.Sprintf("Reroll (%d)", prog.RerollsLeft), "", 'r', cb.Reroll)
	s.list.AddItem(fmt.Sprintf("Block mode (%d)", prog.BlocksLeft), "", 'b', cb.ToggleBlock)
	s.list.AddItem(fmt.Sprintf("Freeze mode (%d)", prog.FreezesLeft), "", 'f', cb.ToggleFreeze)
	s.list.AddItem("Skip", "", 's', cb.Skip)
	s.list.SetDoneFunc(cb.Skip)
	s.hint.SetText("[#6e6e82]1-3 pick  r reroll  b block  f freeze  esc skip[-]")
	s.restore(current)
}

// PopulateLoot fills the boss reward page; path choices cannot be skipped
func (a *App) PopulateLoot(options []loot.Option, p *player.Player, onSelect func(index int)) {
	s := a.loot
	current := s.reset()

	pathChoice := len(options) > 0 && options[0].Kind == loot.KindPath
	if pathChoice {
		s.header.SetText("[#ffd75a]Choose your path[-]\nthis choice is permanent")
	} else {
		s.header.SetText("[#ffd75a]Boss defeated[-]\nchoose one reward")
	}

	for i, opt := range options {
		index := i
		main := "[#fff078]" + tview.Escape(opt.Name) + "[-]"
		if opt.Kind == loot.KindPath {
			main = fmt.Sprintf("[#%06x]%s[-]", render.PathColor(opt.Path).Hex(), tview.Escape(opt.Name))
		}
		s.list.AddItem(main, tview.Escape(opt.Description), rune('1'+i), func() { onSelect(index) })
	}
	if pathChoice {
		s.hint.SetText("[#6e6e82]1-3 choose[-]")
	} else {
		skip := func() { a.intents.Push(engine.ActionSkip) }
		s.list.AddItem("Skip", "", 's', skip)
		s.list.SetDoneFunc(skip)
		s.hint.SetText("[#6e6e82]1-3 choose  esc skip[-]")
	}
	s.restore(current)
}

// PopulateFreeUpgrade fills the free upgrade page granted by some boss drops
func (a *App) PopulateFreeUpgrade(offers []evolution.Offer, p *player.Player, onSelect func(slot int)) {
	s := a.upgrade
	current := s.reset()

	s.header.SetText("[#ffd75a]Free upgrade[-]\ndoes not use an evolution screen")
	s.addOffers(offers, p, onSelect)
	skip := func() { a.intents.Push(engine.ActionSkip) }
	s.list.AddItem("Skip", "", 's', skip)
	s.list.SetDoneFunc(skip)
	s.hint.SetText("[#6e6e82]1-3 pick  esc skip[-]")
	s.restore(current)
}
