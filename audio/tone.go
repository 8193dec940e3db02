// @focus: #sys { audio }
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// decayEnvelope shapes a source with an exponential decay and ends after a fixed length
type decayEnvelope struct {
	src      beep.Streamer
	decay    float64 // rate in 1/s
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a decaying sine streamer of the given length
// Fails when freq is outside (0, rate/2)
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	d := duration.Seconds()
	if d <= 0 {
		d = 1 / float64(rate)
	}
	return &decayEnvelope{
		src:      sine,
		decay:    5 / d, // ~-43dB at the end, no click on cutoff
		duration: rate.N(duration),
		rate:     rate,
	}, nil
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.duration - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.position) / float64(e.rate)
		k := math.Exp(-t * e.decay)
		samples[i][0] *= k
		samples[i][1] *= k
		e.position++
	}
	return n, ok || n > 0
}

func (e *decayEnvelope) Err() error { return e.src.Err() }
