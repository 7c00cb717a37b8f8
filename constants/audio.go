package constants

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length handed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue played when the worker reaches the corner or home
const (
	TurnCueFrequency = 880.0
	TurnCueDuration  = 60 * time.Millisecond
)

// Cue played when the drone picks a new heading
const (
	HeadingCueFrequency = 440.0
	HeadingCueDuration  = 40 * time.Millisecond

	// CueVolume is the beep effects.Volume exponent applied to every cue
	CueVolume = -1.5
)
