package audio

import (
	"context"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestChime returns an initialized chime that records streamers instead of opening a device
func newTestChime(t *testing.T, cfg ChimeConfig) (*Chime, *[]beep.Streamer, *time.Time) {
	t.Helper()
	c := NewChime(cfg, nil)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var played []beep.Streamer
	c.now = func() time.Time { return now }
	c.play = func(s beep.Streamer) { played = append(played, s) }
	c.initialized = true
	return c, &played, &now
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestTone_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := NewTone(880, 40*time.Millisecond, rate)
	require.NoError(t, err)

	n, peak := drain(tone)
	assert.Equal(t, rate.N(40*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.5)
	assert.NoError(t, tone.Err())
}

func TestTone_DecaysTowardEnd(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := NewTone(440, 100*time.Millisecond, rate)
	require.NoError(t, err)

	samples := make([][2]float64, rate.N(100*time.Millisecond))
	n, _ := tone.Stream(samples)
	require.Equal(t, len(samples), n)

	headPeak, tailPeak := 0.0, 0.0
	for i := 0; i < n/10; i++ {
		headPeak = max(headPeak, samples[i][0], -samples[i][0])
		tailPeak = max(tailPeak, samples[n-1-i][0], -samples[n-1-i][0])
	}
	assert.Less(t, tailPeak, headPeak/10)
}

func TestTone_RejectsAboveNyquist(t *testing.T) {
	_, err := NewTone(30000, 40*time.Millisecond, beep.SampleRate(44100))
	assert.Error(t, err)
}

func TestChime_VolumeApplied(t *testing.T) {
	c, played, _ := newTestChime(t, ChimeConfig{Volume: 0.2})
	c.PlayArrival(0)
	require.Len(t, *played, 1)

	_, peak := drain((*played)[0])
	assert.LessOrEqual(t, peak, 0.2+1e-9)
	assert.Greater(t, peak, 0.1)
}

func TestChime_RateLimited(t *testing.T) {
	c, played, now := newTestChime(t, ChimeConfig{MinGap: 100 * time.Millisecond})

	c.PlayArrival(1)
	*now = now.Add(50 * time.Millisecond)
	c.PlayArrival(2)
	assert.Len(t, *played, 1)

	*now = now.Add(60 * time.Millisecond)
	c.PlayArrival(2)
	assert.Len(t, *played, 2)
	assert.Equal(t, uint64(2), c.Played())
}

func TestChime_Mute(t *testing.T) {
	c, played, _ := newTestChime(t, ChimeConfig{})

	assert.True(t, c.ToggleMute())
	assert.True(t, c.Muted())
	c.PlayArrival(0)
	assert.Empty(t, *played)

	assert.False(t, c.ToggleMute())
	c.PlayArrival(0)
	assert.Len(t, *played, 1)
}

func TestChime_SilentBeforeInit(t *testing.T) {
	c := NewChime(ChimeConfig{Enabled: false}, nil)
	called := false
	c.play = func(beep.Streamer) { called = true }

	require.NoError(t, c.Init(context.Background()))
	assert.False(t, c.Available())
	c.PlayArrival(0)
	assert.False(t, called)

	// Stop without an open device is a no-op
	assert.NoError(t, c.Stop())
}
