package engine

import (
	"log"

	"github.com/lixenwraith/light-blaster/evolution"
	"github.com/lixenwraith/light-blaster/loot"
)

// openEvolution shows a threshold evolution screen
func (s *GameSession) openEvolution() {
	offers := s.Evolution.Open(s.Player)
	s.setPhase(PhaseEvolution)
	if s.ui == nil {
		log.Printf("[engine] error: no ui for evolution screen, closing with null selection")
		s.closeScreen()
		return
	}
	s.populateEvolution(offers)
}

func (s *GameSession) populateEvolution(offers []evolution.Offer) {
	if s.ui == nil {
		return
	}
	s.ui.PopulateEvolution(offers, s.Player, s.Evolution.Mode(), EvolutionCallbacks{
		Select:       func(slot int) { s.intents.Push(CardAction(slot)) },
		Reroll:       func() { s.intents.Push(ActionReroll) },
		ToggleBlock:  func() { s.intents.Push(ActionToggleBlock) },
		ToggleFreeze: func() { s.intents.Push(ActionToggleFreeze) },
		Skip:         func() { s.intents.Push(ActionSkip) },
	})
}

func (s *GameSession) evolutionAction(a Action) {
	switch {
	case a.card() >= 0:
		if s.Evolution.Click(a.card()) {
			s.closeScreen()
			return
		}
	case a == ActionReroll:
		s.Evolution.Reroll()
	case a == ActionToggleBlock:
		s.Evolution.ToggleBlockMode()
	case a == ActionToggleFreeze:
		s.Evolution.ToggleFreezeMode()
	case a == ActionSkip:
		s.Evolution.Close()
		s.closeScreen()
		return
	default:
		return
	}
	s.populateEvolution(s.Evolution.Offers())
}

// openLoot shows the reward screen for the oldest collected boss drop
func (s *GameSession) openLoot() {
	tier := s.lootQueue[0]
	s.lootQueue = s.lootQueue[1:]
	s.lootScreen = s.Loot.OnBossDefeated(s.Player, tier)

	if s.lootScreen.Kind == loot.ScreenFreeUpgrade {
		offers := s.Evolution.Open(s.Player)
		s.setPhase(PhaseFreeUpgrade)
		if s.ui == nil {
			log.Printf("[engine] error: no ui for free upgrade screen, closing with null selection")
			s.Evolution.Close()
			s.closeScreen()
			return
		}
		s.ui.PopulateFreeUpgrade(offers, s.Player, func(slot int) { s.intents.Push(CardAction(slot)) })
		return
	}

	s.setPhase(PhaseLoot)
	if s.ui == nil {
		log.Printf("[engine] error: no ui for loot screen, closing with null selection")
		s.closeScreen()
		return
	}
	s.ui.PopulateLoot(s.lootScreen.Options, s.Player, func(i int) { s.intents.Push(CardAction(i)) })
}

func (s *GameSession) lootAction(a Action) {
	switch {
	case a.card() >= 0 && a.card() < len(s.lootScreen.Options):
		if s.Loot.Apply(s.Player, s.lootScreen.Options[a.card()], s.env) {
			s.closeScreen()
		}
	case a == ActionSkip && s.lootScreen.Kind != loot.ScreenPath:
		// Path choice cannot be skipped
		s.closeScreen()
	}
}

// freeUpgradeAction selects directly; block, freeze and reroll are not offered here
func (s *GameSession) freeUpgradeAction(a Action) {
	switch {
	case a.card() >= 0:
		if s.Evolution.Select(a.card()) {
			s.closeScreen()
		}
	case a == ActionSkip:
		s.Evolution.Close()
		s.closeScreen()
	}
}

func (s *GameSession) closeScreen() {
	s.lootScreen = loot.Screen{}
	s.setPhase(PhasePlaying)
}
