package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// ClickGenerator streams a sine tone with a fast attack and exponential
// decay. It never ends on its own; wrap it in beep.Take.
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

// NewClickGenerator creates a click at freq Hz.
func NewClickGenerator(sr beep.SampleRate, freq, gain float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq, gain: gain}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.002, 1.0)
		decay := math.Exp(-t * 40)
		sample := g.gain * attack * decay * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
