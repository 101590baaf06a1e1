package storage

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/light-blaster/parameter"
)

// CategorySurvival ranks runs by final score, highest first
const CategorySurvival = "survival"

// BossCategory ranks clears of a boss tier by elapsed time, fastest first
func BossCategory(tier int) string {
	return fmt.Sprintf("boss_tier_%d", tier)
}

// ascending reports whether a category ranks lower values first
func ascending(category string) bool {
	return strings.HasPrefix(category, "boss_tier_")
}

// EvolutionRecord is one acquired evolution in a run snapshot
type EvolutionRecord struct {
	ID    string `json:"id"`
	Tier  string `json:"tier,omitempty"`
	Class string `json:"class"`
}

// RunSnapshot is the final player state needed to redraw the avatar and stat sheet
type RunSnapshot struct {
	Score       int               `json:"score"`
	DurationMs  int64             `json:"duration_ms"`
	Path        string            `json:"path"`
	MaxHP       int               `json:"max_hp"`
	Radius      float64           `json:"radius"`
	MaxBossTier int               `json:"max_boss_tier"`
	Evolutions  []EvolutionRecord `json:"evolutions,omitempty"`
	Loot        []string          `json:"loot,omitempty"`
	Abilities   []string          `json:"abilities,omitempty"`
	Counters    map[string]int    `json:"counters,omitempty"`
}

// ScoreEntry is one ranked run
type ScoreEntry struct {
	Name      string      `json:"name"`
	Value     int64       `json:"value"`
	Timestamp time.Time   `json:"timestamp"`
	Stats     RunSnapshot `json:"stats"`
	RunID     string      `json:"run_id"`
}

// ScoreTable maps category to ranked entries
type ScoreTable map[string][]ScoreEntry

// HighScores ranks and persists score tables
type HighScores struct {
	store Store
	table ScoreTable
}

// NewHighScores loads the table, starting empty when missing or corrupt
func NewHighScores(store Store) *HighScores {
	h := &HighScores{store: store, table: make(ScoreTable)}
	if !LoadJSON(store, KeyHighScores, &h.table) || h.table == nil {
		h.table = make(ScoreTable)
	}
	return h
}

// Top returns a copy of the ranked entries of a category
func (h *HighScores) Top(category string) []ScoreEntry {
	return slices.Clone(h.table[category])
}

// Categories returns the stored category names sorted
func (h *HighScores) Categories() []string {
	out := make([]string, 0, len(h.table))
	for k := range h.table {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Qualifies reports whether value would enter the category's table
func (h *HighScores) Qualifies(category string, value int64) bool {
	entries := h.table[category]
	if len(entries) < parameter.HighScoreEntriesPerCategory {
		return true
	}
	last := entries[len(entries)-1].Value
	if ascending(category) {
		return value < last
	}
	return value > last
}

// Submit ranks an entry and persists the table
// Returns the 1-based rank, or 0 when the entry did not place
func (h *HighScores) Submit(category string, e ScoreEntry) (int, error) {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if !h.Qualifies(category, e.Value) {
		return 0, nil
	}

	asc := ascending(category)
	entries := append(h.table[category], e)
	slices.SortStableFunc(entries, func(a, b ScoreEntry) int {
		if a.Value == b.Value {
			return a.Timestamp.Compare(b.Timestamp)
		}
		if (a.Value < b.Value) == asc {
			return -1
		}
		return 1
	})
	if len(entries) > parameter.HighScoreEntriesPerCategory {
		entries = entries[:parameter.HighScoreEntriesPerCategory]
	}
	h.table[category] = entries

	rank := 0
	for i := range entries {
		if entries[i].RunID == e.RunID {
			rank = i + 1
			break
		}
	}
	if err := SaveJSON(h.store, KeyHighScores, h.table); err != nil {
		log.Printf("[storage] save high scores: %v", err)
		return rank, err
	}
	return rank, nil
}

// Reset clears every category
func (h *HighScores) Reset() error {
	h.table = make(ScoreTable)
	return h.store.Delete(KeyHighScores)
}
