package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/light-blaster/parameter"
)

// TestFileStoreRoundTrip verifies write, read, overwrite and delete on disk
func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested"))

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Get("k")
	if err != nil || string(got) != `{"a":2}` {
		t.Fatalf("get = %q, %v", got, err)
	}

	entries, _ := os.ReadDir(s.Dir())
	if len(entries) != 1 {
		t.Errorf("expected only the committed file, found %d entries", len(entries))
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Errorf("second delete should be a no-op: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

// TestMemoryStoreCopies verifies stored blobs are isolated from caller buffers
func TestMemoryStoreCopies(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	s.Set("k", buf)
	buf[0] = 'x'
	got, _ := s.Get("k")
	if string(got) != "abc" {
		t.Errorf("stored blob mutated: %q", got)
	}
}

// TestCorruptBlobFallsBack verifies unparsable JSON yields defaults
func TestCorruptBlobFallsBack(t *testing.T) {
	s := NewMemoryStore()
	s.Set(KeyHighScores, []byte("{not json"))
	s.Set(KeyAudio, []byte("[]"))

	h := NewHighScores(s)
	if len(h.Categories()) != 0 {
		t.Errorf("expected empty table")
	}
	prefs, ok := LoadAudioPrefs(s)
	if ok || prefs != DefaultAudioPrefs() {
		t.Errorf("expected default prefs, got %+v ok=%v", prefs, ok)
	}
}

// TestSurvivalRanking verifies descending order, the entry cap and rank reporting
func TestSurvivalRanking(t *testing.T) {
	s := NewMemoryStore()
	h := NewHighScores(s)
	base := time.Unix(1700000000, 0)

	for i := 0; i < parameter.HighScoreEntriesPerCategory+2; i++ {
		_, err := h.Submit(CategorySurvival, ScoreEntry{
			Name:      "run",
			Value:     int64(i * 100),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	top := h.Top(CategorySurvival)
	if len(top) != parameter.HighScoreEntriesPerCategory {
		t.Fatalf("expected %d entries, got %d", parameter.HighScoreEntriesPerCategory, len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Value > top[i-1].Value {
			t.Errorf("not descending at %d", i)
		}
	}
	if top[len(top)-1].Value != 200 {
		t.Errorf("lowest kept %d, want 200", top[len(top)-1].Value)
	}
	for _, e := range top {
		if e.RunID == "" {
			t.Errorf("entry missing run id")
		}
	}

	rank, _ := h.Submit(CategorySurvival, ScoreEntry{Name: "low", Value: 50})
	if rank != 0 {
		t.Errorf("low score placed at %d", rank)
	}
	rank, _ = h.Submit(CategorySurvival, ScoreEntry{Name: "best", Value: 5000})
	if rank != 1 {
		t.Errorf("best score rank %d, want 1", rank)
	}

	reloaded := NewHighScores(s)
	if got := reloaded.Top(CategorySurvival); len(got) != len(h.Top(CategorySurvival)) || got[0].Name != "best" {
		t.Errorf("table not persisted")
	}
}

// TestBossClearRanking verifies boss categories rank fastest first with ties by time of entry
func TestBossClearRanking(t *testing.T) {
	h := NewHighScores(NewMemoryStore())
	cat := BossCategory(2)
	base := time.Unix(1700000000, 0)

	h.Submit(cat, ScoreEntry{Name: "slow", Value: 90000, Timestamp: base})
	h.Submit(cat, ScoreEntry{Name: "fast", Value: 30000, Timestamp: base.Add(time.Second)})
	h.Submit(cat, ScoreEntry{Name: "tie", Value: 30000, Timestamp: base.Add(2 * time.Second)})

	top := h.Top(cat)
	if cat != "boss_tier_2" || top[0].Name != "fast" || top[1].Name != "tie" || top[2].Name != "slow" {
		t.Errorf("unexpected order: %v", []string{top[0].Name, top[1].Name, top[2].Name})
	}
}

// TestAudioPrefsClamped verifies stored volumes are bounded
func TestAudioPrefsClamped(t *testing.T) {
	s := NewMemoryStore()
	p := DefaultAudioPrefs()
	p.Music = 3
	p.Hit = -1
	if err := SaveAudioPrefs(s, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := LoadAudioPrefs(s)
	if !ok || got.Music != 1 || got.Hit != 0 || got.Shoot != parameter.AudioDefaultVolume {
		t.Errorf("unexpected prefs %+v", got)
	}
}
