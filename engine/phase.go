package engine

// Phase is the session's top-level state
// Every phase other than PhasePlaying suspends gameplay timers and physics
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseEvolution
	PhaseLoot
	PhaseFreeUpgrade
	PhasePaused
	PhaseCountdown
	PhaseGameOver
)

var phaseNames = [...]string{"playing", "evolution", "loot", "free_upgrade", "paused", "countdown", "game_over"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Suspended reports whether gameplay is halted
func (p Phase) Suspended() bool { return p != PhasePlaying }

// Screen reports whether an offer screen is waiting for a choice
func (p Phase) Screen() bool {
	return p == PhaseEvolution || p == PhaseLoot || p == PhaseFreeUpgrade
}
