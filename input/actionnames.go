package input

import "github.com/lixenwraith/light-blaster/engine"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// Movement
	"move_up":    move(DirUp),
	"move_down":  move(DirDown),
	"move_left":  move(DirLeft),
	"move_right": move(DirRight),

	// Abilities
	"primary":   hold(engine.ActionPrimaryPress),
	"secondary": action(engine.ActionSecondary),
	"slot_1":    action(engine.ActionSlot1),
	"slot_2":    action(engine.ActionSlot2),
	"slot_3":    action(engine.ActionSlot3),

	// Session
	"pause":   action(engine.ActionPause),
	"restart": action(engine.ActionRestart),

	// System
	"quit":           system(SystemQuit),
	"toggle_sound":   system(SystemToggleSound),
	"toggle_overlay": system(SystemToggleOverlay),
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
