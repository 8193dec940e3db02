package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/blueprint/flow"
	"github.com/lixenwraith/blueprint/input"
	"github.com/lixenwraith/blueprint/vmath"
)

// ErrNoContext is returned by Mount when the surface cannot provide a drawing context
var ErrNoContext = errors.New("drawing context unavailable")

// ErrMounted is returned by Mount on a loop that is already running
var ErrMounted = errors.New("loop already mounted")

// Surface is the drawable area a Loop renders into
type Surface interface {
	// Context returns the drawing context, an error is permanent for this mount
	Context() (flow.Canvas, error)

	// Size returns the container size in logical pixels
	Size() (width, height float64)

	// Configure sizes the backing raster for the given logical size, applying the surface pixel ratio
	Configure(width, height float64)

	// Present makes the frame drawn since the last Present visible
	Present()
}

// FrameHandle identifies a pending frame request
type FrameHandle uint64

// FrameFunc is invoked once with the frame timestamp
type FrameFunc func(now time.Time)

// FrameScheduler delivers one-shot frame callbacks, the display refresh abstraction
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// Event is an input or host notification routed to listeners by Intent
type Event struct {
	Intent input.IntentType
	Pos    vmath.Vec2 // pointer position in logical pixels
}

// ListenerID identifies a registered listener
type ListenerID uint64

// Listener handles one event
type Listener func(Event)

// EventSource registers listeners for host events
type EventSource interface {
	AddListener(intent input.IntentType, fn Listener) ListenerID
	RemoveListener(id ListenerID)
}
