package parameter

import "time"

// Frame Loop
const (
	// FrameRate is the display refresh rate the per-tick constants are tuned for
	FrameRate = 60

	// FrameUpdateInterval is the display refresh interval
	FrameUpdateInterval = time.Second / FrameRate

	// EventQueueSize is the capacity of the dispatcher input channel
	EventQueueSize = 256

	// MaxFrameDelta clamps the delta handed to a tick after a stall (tab backgrounded, SIGSTOP)
	MaxFrameDelta = 250 * time.Millisecond
)
