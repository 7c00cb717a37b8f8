package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/bee-sim/bee"
	"github.com/lixenwraith/bee-sim/constants"
)

// drain pulls every sample out of s
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestNewCueLength(t *testing.T) {
	sr := beep.SampleRate(constants.AudioSampleRate)
	tests := []struct {
		name string
		freq float64
		d    time.Duration
	}{
		{"Turn", constants.TurnCueFrequency, constants.TurnCueDuration},
		{"Heading", constants.HeadingCueFrequency, constants.HeadingCueDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, err := NewCue(sr, tt.freq, tt.d)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			samples := drain(cue)
			if want := sr.N(tt.d); len(samples) != want {
				t.Errorf("Expected %d samples, got %d", want, len(samples))
			}
		})
	}
}

func TestNewCueFadesOut(t *testing.T) {
	sr := beep.SampleRate(constants.AudioSampleRate)
	cue, err := NewCue(sr, 440, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	samples := drain(cue)

	peak := func(part [][2]float64) float64 {
		m := 0.0
		for _, s := range part {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}

	tenth := len(samples) / 10
	head := peak(samples[:tenth])
	tail := peak(samples[len(samples)-tenth:])
	if head > 1 {
		t.Errorf("Expected samples within [-1,1], peak %v", head)
	}
	if tail >= head/2 {
		t.Errorf("Expected tail (%v) well below head (%v)", tail, head)
	}
}

func TestNewCueRejectsBadFrequency(t *testing.T) {
	sr := beep.SampleRate(constants.AudioSampleRate)
	// Above Nyquist
	if _, err := NewCue(sr, float64(sr), time.Millisecond); err == nil {
		t.Error("Expected error for frequency above half the sample rate")
	}
}

func TestSoundManagerSilentWhenUninitialized(t *testing.T) {
	sm := NewSoundManager()
	sm.OnStep(constants.WorkerName, 14, bee.EventTurned)
	sm.OnStep(constants.DroneName, 4, bee.EventHeading)
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("Expected no queued cues, got %d", sm.mixer.Len())
	}
}
