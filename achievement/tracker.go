package achievement

import (
	"log"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/storage"
)

// Tracker holds unlock state across runs and persists it
type Tracker struct {
	defs     []Definition
	byID     map[string]*Definition
	store    storage.Store
	unlocked map[string]bool
	order    []string
	recent   []string
}

// NewTracker loads previously unlocked ids; unknown ids are kept so table edits never re-lock
func NewTracker(defs []Definition, store storage.Store) *Tracker {
	t := &Tracker{
		defs:     defs,
		byID:     make(map[string]*Definition, len(defs)),
		store:    store,
		unlocked: make(map[string]bool),
	}
	for i := range defs {
		t.byID[defs[i].ID] = &defs[i]
	}

	var ids []string
	if store != nil && storage.LoadJSON(store, storage.KeyAchievements, &ids) {
		for _, id := range ids {
			if !t.unlocked[id] {
				t.unlocked[id] = true
				t.order = append(t.order, id)
			}
		}
	}
	return t
}

// Update evaluates the tick and persists new unlocks, returning them
func (t *Tracker) Update(snap Snapshot, events []event.GameEvent) []string {
	ids := Evaluate(t.defs, snap, events, t.unlocked)
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		t.unlocked[id] = true
		t.order = append(t.order, id)
		log.Printf("[achievement] unlocked %s", id)
	}
	t.recent = append(t.recent, ids...)
	t.save()
	return ids
}

func (t *Tracker) save() {
	if t.store == nil {
		return
	}
	if err := storage.SaveJSON(t.store, storage.KeyAchievements, t.order); err != nil {
		log.Printf("[achievement] save: %v", err)
	}
}

// Count returns the number of unlocked achievements
func (t *Tracker) Count() int { return len(t.order) }

// Total returns the number of defined achievements
func (t *Tracker) Total() int { return len(t.defs) }

// Unlocked reports whether id is unlocked
func (t *Tracker) Unlocked(id string) bool { return t.unlocked[id] }

// Definition looks up an achievement by id
func (t *Tracker) Definition(id string) (Definition, bool) {
	d, ok := t.byID[id]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Definitions returns the rule table
func (t *Tracker) Definitions() []Definition { return t.defs }

// TakeRecent returns and clears unlocks not yet shown by the frontend
func (t *Tracker) TakeRecent() []string {
	out := t.recent
	t.recent = nil
	return out
}
