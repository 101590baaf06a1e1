package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the default linear volume of every channel (0..1)
	AudioDefaultVolume = 0.7

	// AudioMaxConcurrentCues limits simultaneously mixed one-shot cues
	AudioMaxConcurrentCues = 16
)

// Cue Lengths
const (
	CueShootDuration    = 40 * time.Millisecond
	CueHitDuration      = 70 * time.Millisecond
	CuePickupDuration   = 120 * time.Millisecond
	CueUIDuration       = 50 * time.Millisecond
	CueChargeDuration   = 250 * time.Millisecond
	CueImpactDuration   = 300 * time.Millisecond
	CueDetonateDuration = 350 * time.Millisecond
	CueLevelUpDuration  = 400 * time.Millisecond
)
