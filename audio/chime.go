package audio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/parameter"
	"github.com/lixenwraith/blueprint/service"
)

// nodeIntervals voices arrivals at each pipeline stage as a major triad
var nodeIntervals = [...]float64{1, 5.0 / 4, 3.0 / 2}

// ChimeConfig configures arrival chimes, zero values fall back to parameter defaults
type ChimeConfig struct {
	Enabled   bool
	Frequency float64
	Duration  time.Duration
	Volume    float64
	MinGap    time.Duration
}

// DefaultChimeConfig returns the default chime settings
func DefaultChimeConfig() ChimeConfig {
	return ChimeConfig{
		Enabled:   true,
		Frequency: parameter.ChimeFrequency,
		Duration:  parameter.ChimeDuration,
		Volume:    parameter.ChimeVolume,
		MinGap:    parameter.MinChimeGap,
	}
}

// Chime plays a short tone per packet arrival
// Safe for concurrent use; silent until Init opens the device
type Chime struct {
	mu   sync.Mutex
	cfg  ChimeConfig
	rate beep.SampleRate
	last time.Time

	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64

	// Seams for tests
	now  func() time.Time
	play func(beep.Streamer)

	log *zap.Logger
}

// NewChime creates an uninitialized chime
func NewChime(cfg ChimeConfig, logger *zap.Logger) *Chime {
	def := DefaultChimeConfig()
	if cfg.Frequency <= 0 {
		cfg.Frequency = def.Frequency
	}
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = def.Volume
	}
	if cfg.MinGap < 0 {
		cfg.MinGap = def.MinGap
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chime{
		cfg:  cfg,
		rate: beep.SampleRate(parameter.AudioSampleRate),
		now:  time.Now,
		play: speaker.Play,
		log:  logger.Named("audio"),
	}
}

var _ service.Service = (*Chime)(nil)

// Name implements service.Service
func (c *Chime) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (c *Chime) Dependencies() []string {
	return nil
}

// Init opens the audio device, a disabled config is a no-op
// A device error is logged and leaves the chime silent; the animation does not depend on audio
func (c *Chime) Init(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		c.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return nil
	}
	c.initialized = true
	c.log.Debug("audio initialized", zap.Int("sample_rate", int(c.rate)))
	return nil
}

// Start implements service.Service
func (c *Chime) Start(context.Context) error {
	return nil
}

// Stop releases the audio device
func (c *Chime) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
	return nil
}

// Available reports whether the audio device is open
func (c *Chime) Available() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// ToggleMute flips mute and returns the new state
func (c *Chime) ToggleMute() bool {
	for {
		old := c.muted.Load()
		if c.muted.CompareAndSwap(old, !old) {
			c.log.Debug("mute toggled", zap.Bool("muted", !old))
			return !old
		}
	}
}

// Muted reports the mute state
func (c *Chime) Muted() bool {
	return c.muted.Load()
}

// Played returns the number of chimes sent to the device
func (c *Chime) Played() uint64 {
	return c.played.Load()
}

// PlayArrival chimes for a packet reaching node, rate-limited by MinGap
func (c *Chime) PlayArrival(node int) {
	if c.muted.Load() {
		return
	}

	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.cfg.MinGap {
		c.mu.Unlock()
		return
	}
	c.last = now
	c.mu.Unlock()

	freq := c.cfg.Frequency
	if node >= 0 && node < len(nodeIntervals) {
		freq *= nodeIntervals[node]
	}
	tone, err := c.tone(freq)
	if err != nil {
		c.log.Warn("chime tone rejected", zap.Float64("frequency", freq), zap.Error(err))
		return
	}
	c.play(tone)
	c.played.Add(1)
}

// tone builds the streamer for one chime
func (c *Chime) tone(freq float64) (beep.Streamer, error) {
	src, err := NewTone(freq, c.cfg.Duration, c.rate)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{Streamer: src, Gain: c.cfg.Volume - 1}, nil
}
