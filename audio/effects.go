package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/bee-sim/constants"
)

// NewCue returns a finite sine blip at freq lasting d, faded out to avoid a click
func NewCue(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}

	n := sr.N(d)
	return &effects.Volume{
		Streamer: newFadeOut(beep.Take(n, tone), n),
		Base:     2,
		Volume:   constants.CueVolume,
	}, nil
}

// fadeOut scales samples linearly from full to silent over total samples
type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func newFadeOut(s beep.Streamer, total int) *fadeOut {
	return &fadeOut{streamer: s, total: total}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.total > 0 {
			gain = 1 - float64(f.pos)/float64(f.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error {
	return f.streamer.Err()
}
