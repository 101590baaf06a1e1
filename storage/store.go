// Package storage persists small JSON blobs under versioned keys
package storage

import (
	"encoding/json"
	"errors"
	"log"
)

// Persisted keys, versioned by suffix
const (
	KeyAchievements = "lightblaster.achievements.v1"
	KeyHighScores   = "lightblaster.highscores.v2"
	KeyAudio        = "lightblaster.audio.v1"
)

// ErrNotFound is returned by Get for a key that was never written
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat key-value store for serialized blobs
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Delete(key string) error
}

// LoadJSON decodes key into v
// Missing keys return false silently; unreadable or corrupt blobs are logged and return false
func LoadJSON(s Store, key string, v any) bool {
	data, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[storage] read %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[storage] corrupt %s, using default: %v", key, err)
		return false
	}
	return true
}

// SaveJSON encodes v under key
func SaveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}
