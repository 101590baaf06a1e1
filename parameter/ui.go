package parameter

import "time"

// Layout
const (
	// HudRows is the status bar height above the arena
	HudRows = 1

	// FooterRows is the ability and buff line below the arena
	FooterRows = 1

	// MinArenaCols and MinArenaRows are the smallest arena drawn before a resize notice
	MinArenaCols = 40
	MinArenaRows = 12
)

// Status Bar
const (
	// AudioStr marks enabled sound in the footer
	AudioStr = "♫ "

	// DamageFlashFrames is how many frames the arena border flashes after a hit
	DamageFlashFrames = 6

	// HealBlinkWindow is the remaining lifetime at which heal drops start blinking
	HealBlinkWindow = 3 * time.Second

	// HealBlinkPeriod is the on/off period of an expiring heal drop
	HealBlinkPeriod = 250 * time.Millisecond
)

// Keyboard Input
const (
	// KeyHoldInitial keeps a movement key held after its first press
	// Covers the terminal's auto-repeat delay, since terminals report no key release
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat keeps a key held between auto-repeat events
	KeyHoldRepeat = 120 * time.Millisecond
)
