package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/light-blaster/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMove
	BehaviorAction
	BehaviorHold // Keyboard stand-in for a held mouse button
	BehaviorSystem
)

// Direction is a held movement key
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

// SystemOp is a frontend command handled outside the simulation
type SystemOp uint8

const (
	SystemNone SystemOp = iota
	SystemQuit
	SystemToggleSound
	SystemToggleOverlay
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Move     Direction
	Action   engine.Action
	System   SystemOp
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable key bindings
	Runes map[rune]KeyEntry
}

func move(d Direction) KeyEntry       { return KeyEntry{Behavior: BehaviorMove, Move: d} }
func action(a engine.Action) KeyEntry { return KeyEntry{Behavior: BehaviorAction, Action: a} }
func hold(a engine.Action) KeyEntry   { return KeyEntry{Behavior: BehaviorHold, Action: a} }
func system(op SystemOp) KeyEntry     { return KeyEntry{Behavior: BehaviorSystem, System: op} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  system(SystemQuit),
			tcell.KeyCtrlQ:  system(SystemQuit),
			tcell.KeyCtrlS:  system(SystemToggleSound),
			tcell.KeyCtrlD:  system(SystemToggleOverlay),
			tcell.KeyEscape: action(engine.ActionPause),
			tcell.KeyUp:     move(DirUp),
			tcell.KeyDown:   move(DirDown),
			tcell.KeyLeft:   move(DirLeft),
			tcell.KeyRight:  move(DirRight),
		},

		Runes: map[rune]KeyEntry{
			// Movement
			'w': move(DirUp),
			's': move(DirDown),
			'a': move(DirLeft),
			'd': move(DirRight),
			'W': move(DirUp),
			'S': move(DirDown),
			'A': move(DirLeft),
			'D': move(DirRight),

			// Abilities
			'q': hold(engine.ActionPrimaryPress),
			' ': hold(engine.ActionPrimaryPress),
			'e': action(engine.ActionSecondary),
			'1': action(engine.ActionSlot1),
			'2': action(engine.ActionSlot2),
			'3': action(engine.ActionSlot3),

			// Session
			'p': action(engine.ActionPause),
			'r': action(engine.ActionRestart),
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
