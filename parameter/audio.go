package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Arrival Chime
const (
	// ChimeFrequency is the sine tone played on packet arrival
	ChimeFrequency = 880.0

	// ChimeDuration is the tone length
	ChimeDuration = 40 * time.Millisecond

	// ChimeVolume is the gain applied to the tone (0..1)
	ChimeVolume = 0.2

	// MinChimeGap rate-limits consecutive chimes
	MinChimeGap = 120 * time.Millisecond
)
