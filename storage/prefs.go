package storage

import (
	"github.com/lixenwraith/light-blaster/parameter"
)

// AudioPrefs are the persisted sound settings
type AudioPrefs struct {
	Enabled bool    `json:"enabled"`
	Music   float64 `json:"music"`
	Shoot   float64 `json:"shoot"`
	Hit     float64 `json:"hit"`
	Pickup  float64 `json:"pickup"`
	UI      float64 `json:"ui"`
}

func DefaultAudioPrefs() AudioPrefs {
	return AudioPrefs{
		Enabled: true,
		Music:   parameter.AudioDefaultVolume,
		Shoot:   parameter.AudioDefaultVolume,
		Hit:     parameter.AudioDefaultVolume,
		Pickup:  parameter.AudioDefaultVolume,
		UI:      parameter.AudioDefaultVolume,
	}
}

// Clamp bounds every volume to [0, 1]
func (a AudioPrefs) Clamp() AudioPrefs {
	c := func(v float64) float64 { return min(1, max(0, v)) }
	a.Music, a.Shoot, a.Hit, a.Pickup, a.UI = c(a.Music), c(a.Shoot), c(a.Hit), c(a.Pickup), c(a.UI)
	return a
}

// LoadAudioPrefs returns stored preferences and whether any were found
func LoadAudioPrefs(s Store) (AudioPrefs, bool) {
	prefs := DefaultAudioPrefs()
	if !LoadJSON(s, KeyAudio, &prefs) {
		return DefaultAudioPrefs(), false
	}
	return prefs.Clamp(), true
}

func SaveAudioPrefs(s Store, prefs AudioPrefs) error {
	return SaveJSON(s, KeyAudio, prefs.Clamp())
}
