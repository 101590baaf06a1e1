package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/storage"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// bus is one channel: a mixer behind a volume control
type bus struct {
	mixer  *beep.Mixer
	volume *effects.Volume
}

// SoundManager plays synthesized cues on per-channel busses
// When the output device cannot be opened it stays silent and every call is a no-op
type SoundManager struct {
	mu          sync.Mutex
	master      *beep.Mixer
	busses      [channelCount]bus
	prefs       storage.AudioPrefs
	stored      bool // prefs came from the store
	store       storage.Store
	initialized bool
	music       *beep.Ctrl
	lastPlayed  [event.SoundCount]time.Time
	now         func() time.Time

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a manager using stored preferences; store may be nil
func NewSoundManager(store storage.Store) *SoundManager {
	sm := &SoundManager{
		master: &beep.Mixer{},
		store:  store,
		prefs:  storage.DefaultAudioPrefs(),
		now:    time.Now,
	}
	if store != nil {
		sm.prefs, sm.stored = storage.LoadAudioPrefs(store)
	}
	for i := range sm.busses {
		m := &beep.Mixer{}
		sm.busses[i] = bus{mixer: m, volume: newVolume(m, 1)}
		sm.master.Add(sm.busses[i].volume)
	}
	sm.applyPrefs()
	return sm
}

// Initialize opens the speaker; failure leaves the manager silent and is returned for logging
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(sm.master)
	sm.initialized = true
	sm.startMusicLocked()
	log.Printf("[audio] speaker ready at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and closes the output device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	for _, b := range sm.busses {
		b.mixer.Clear()
	}
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	sm.music = nil
}

// Play mixes a cue onto its channel
// Returns false when muted, throttled, saturated or uninitialized
func (sm *SoundManager) Play(s event.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.prefs.Enabled || s >= event.SoundCount {
		return false
	}
	now := sm.now()
	if gap := cues[s].minGap; gap > 0 && now.Sub(sm.lastPlayed[s]) < gap {
		sm.dropped.Add(1)
		return false
	}

	b := sm.busses[cues[s].channel]
	speaker.Lock()
	defer speaker.Unlock()
	if b.mixer.Len() >= parameter.AudioMaxConcurrentCues {
		sm.dropped.Add(1)
		return false
	}
	st := NewCue(s, sampleRate)
	if st == nil {
		return false
	}
	b.mixer.Add(st)
	sm.lastPlayed[s] = now
	sm.played.Add(1)
	return true
}

// Prefs returns the current preferences
func (sm *SoundManager) Prefs() storage.AudioPrefs {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.prefs
}

// UseDefaults applies p unless preferences were already stored; it does not persist
func (sm *SoundManager) UseDefaults(p storage.AudioPrefs) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.stored {
		return
	}
	sm.prefs = p.Clamp()
	sm.applyPrefs()
}

// SetPrefs applies and persists new preferences
func (sm *SoundManager) SetPrefs(p storage.AudioPrefs) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.prefs = p.Clamp()
	speaker.Lock()
	sm.applyPrefs()
	speaker.Unlock()

	if sm.prefs.Enabled {
		sm.startMusicLocked()
	} else if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = true
		speaker.Unlock()
	}
	if sm.store != nil {
		if err := storage.SaveAudioPrefs(sm.store, sm.prefs); err != nil {
			log.Printf("[audio] warn: save prefs: %v", err)
		}
	}
}

// ToggleEnabled flips global mute and returns the new state
func (sm *SoundManager) ToggleEnabled() bool {
	p := sm.Prefs()
	p.Enabled = !p.Enabled
	sm.SetPrefs(p)
	return p.Enabled
}

// Volume returns a channel's linear volume
func (sm *SoundManager) Volume(c Channel) float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return *sm.channelPref(c)
}

// SetVolume sets one channel's linear volume
func (sm *SoundManager) SetVolume(c Channel, v float64) {
	p := sm.Prefs()
	ptr := channelPref(&p, c)
	if ptr == nil {
		return
	}
	*ptr = v
	sm.SetPrefs(p)
}

// Stats returns played and dropped cue counts
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}

func (sm *SoundManager) channelPref(c Channel) *float64 {
	if p := channelPref(&sm.prefs, c); p != nil {
		return p
	}
	zero := 0.0
	return &zero
}

func channelPref(p *storage.AudioPrefs, c Channel) *float64 {
	switch c {
	case ChannelMusic:
		return &p.Music
	case ChannelShoot:
		return &p.Shoot
	case ChannelHit:
		return &p.Hit
	case ChannelPickup:
		return &p.Pickup
	case ChannelUI:
		return &p.UI
	default:
		return nil
	}
}

// applyPrefs pushes volumes into the bus gains; caller holds the speaker lock when playing
func (sm *SoundManager) applyPrefs() {
	for c := range channelCount {
		setGain(sm.busses[c].volume, *sm.channelPref(c))
	}
}

func (sm *SoundManager) startMusicLocked() {
	if !sm.initialized || !sm.prefs.Enabled {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: newDrone(sampleRate)}
	sm.busses[ChannelMusic].mixer.Add(sm.music)
}

// drone is an endless low pad used as background music
type drone struct {
	sr  beep.SampleRate
	pos int
}

func newDrone(sr beep.SampleRate) *drone {
	return &drone{sr: sr}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.sr)
		// Slow swell between two detuned voices
		swell := 0.5 + 0.5*math.Sin(2*math.Pi*0.1*t)
		v := 0.06 * (math.Sin(2*math.Pi*55*t) + swell*math.Sin(2*math.Pi*82.4*t))
		samples[i][0] = v
		samples[i][1] = v
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
