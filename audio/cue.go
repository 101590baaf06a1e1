package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/parameter"
)

// Channel is a mixer bus with its own volume
type Channel uint8

const (
	ChannelMusic Channel = iota
	ChannelShoot
	ChannelHit
	ChannelPickup
	ChannelUI
	channelCount
)

var channelNames = [channelCount]string{"music", "shoot", "hit", "pickup", "ui"}

func (c Channel) String() string {
	if c < channelCount {
		return channelNames[c]
	}
	return "unknown"
}

// cue describes how one sound type is synthesized and routed
type cue struct {
	channel Channel
	// minGap throttles rapid repeats of the same cue
	minGap time.Duration
	build  func(rate beep.SampleRate) beep.Streamer
}

var cues = [event.SoundCount]cue{
	event.SoundShoot: {ChannelShoot, 30 * time.Millisecond, func(r beep.SampleRate) beep.Streamer {
		return tone(1400, 700, parameter.CueShootDuration, WaveSquare, r)
	}},
	event.SoundHit: {ChannelHit, 20 * time.Millisecond, func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(tone(220, 110, parameter.CueHitDuration, WaveSaw, r), 0.6),
			newVolume(tone(0, 0, parameter.CueHitDuration, WaveNoise, r), 0.3),
		)
	}},
	event.SoundPickup: {ChannelPickup, 0, func(r beep.SampleRate) beep.Streamer {
		half := parameter.CuePickupDuration / 2
		return beep.Seq(tone(987.77, 987.77, half, WaveSine, r), tone(1318.51, 1318.51, half, WaveSine, r))
	}},
	event.SoundUI: {ChannelUI, 0, func(r beep.SampleRate) beep.Streamer {
		return tone(660, 660, parameter.CueUIDuration, WaveSine, r)
	}},
	event.SoundCharge: {ChannelShoot, 100 * time.Millisecond, func(r beep.SampleRate) beep.Streamer {
		return tone(200, 800, parameter.CueChargeDuration, WaveSaw, r)
	}},
	event.SoundImpact: {ChannelHit, 50 * time.Millisecond, func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(tone(90, 40, parameter.CueImpactDuration, WaveSine, r), 0.8),
			newVolume(tone(0, 0, parameter.CueImpactDuration/2, WaveNoise, r), 0.4),
		)
	}},
	event.SoundDetonate: {ChannelHit, 50 * time.Millisecond, func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(tone(400, 60, parameter.CueDetonateDuration, WaveSaw, r), 0.5),
			newVolume(tone(0, 0, parameter.CueDetonateDuration, WaveNoise, r), 0.5),
		)
	}},
	event.SoundLevelUp: {ChannelUI, 0, func(r beep.SampleRate) beep.Streamer {
		third := parameter.CueLevelUpDuration / 3
		return beep.Seq(
			tone(523.25, 523.25, third, WaveSquare, r),
			tone(659.25, 659.25, third, WaveSquare, r),
			tone(783.99, 783.99, third, WaveSquare, r),
		)
	}},
}

// CueChannel returns the bus a sound type plays on
func CueChannel(s event.SoundType) Channel {
	if s >= event.SoundCount {
		return ChannelUI
	}
	return cues[s].channel
}

// NewCue synthesizes a fresh streamer for s; nil for unknown types
func NewCue(s event.SoundType, rate beep.SampleRate) beep.Streamer {
	if s >= event.SoundCount || cues[s].build == nil {
		return nil
	}
	return cues[s].build(rate)
}
