// Package audio plays short cues for bee events through the beep speaker.
// Audio is optional: every method is a no-op until Initialize succeeds.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bee-sim/bee"
	"github.com/lixenwraith/bee-sim/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager mixes bee cues onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// OnStep plays the cue matching ev; plain steps are silent
func (sm *SoundManager) OnStep(name string, tick int, ev bee.Event) {
	switch {
	case ev.Has(bee.EventTurned):
		sm.play(constants.TurnCueFrequency, constants.TurnCueDuration)
	case ev.Has(bee.EventHeading):
		sm.play(constants.HeadingCueFrequency, constants.HeadingCueDuration)
	}
}

func (sm *SoundManager) play(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := NewCue(sampleRate, freq, d)
	if err != nil {
		log.Printf("audio: cue %.0fHz: %v", freq, err)
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
