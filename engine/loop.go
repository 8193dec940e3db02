package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/flow"
	"github.com/lixenwraith/blueprint/input"
	"github.com/lixenwraith/blueprint/parameter"
)

// State is the mount lifecycle of a Loop
type State uint8

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Loop binds a Scene and Pointer to a host surface for the duration of a mount
// All methods and callbacks run on the owner goroutine of the scheduler and event source
type Loop struct {
	scene   *flow.Scene
	pointer *input.Pointer
	log     *zap.Logger

	state   State
	surface Surface
	canvas  flow.Canvas
	sched   FrameScheduler
	events  EventSource

	frame     FrameHandle
	listeners []ListenerID
	lastFrame time.Time
	frames    uint64
}

// NewLoop creates a stopped loop, a nil logger discards output
func NewLoop(scene *flow.Scene, pointer *input.Pointer, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		scene:   scene,
		pointer: pointer,
		log:     logger.Named("loop"),
	}
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames drawn since the last mount
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Mount acquires the drawing context, sizes the surface, registers listeners and schedules the first frame
// A surface without a context leaves the loop stopped and returns ErrNoContext; the mount is not retried
func (l *Loop) Mount(surface Surface, sched FrameScheduler, events EventSource) error {
	if l.state == StateRunning {
		return ErrMounted
	}

	cv, err := surface.Context()
	if err != nil || cv == nil {
		l.log.Warn("mount skipped, no drawing context", zap.Error(err))
		if err == nil {
			return ErrNoContext
		}
		return fmt.Errorf("%w: %v", ErrNoContext, err)
	}

	l.surface = surface
	l.canvas = cv
	l.sched = sched
	l.events = events
	l.frames = 0
	l.lastFrame = time.Time{}

	l.resize()

	l.listeners = append(l.listeners[:0],
		events.AddListener(input.IntentPointerMove, l.onPointerMove),
		events.AddListener(input.IntentPointerEnter, l.onPointerEnter),
		events.AddListener(input.IntentPointerLeave, l.onPointerLeave),
		events.AddListener(input.IntentResize, l.onResize),
	)

	l.state = StateRunning
	l.frame = sched.RequestFrame(l.onFrame)

	w, h := l.scene.Size()
	l.log.Debug("mounted", zap.Float64("width", w), zap.Float64("height", h))
	return nil
}

// Unmount cancels the pending frame and removes every listener registered by Mount
// No scene state is touched and nothing is drawn after Unmount returns
func (l *Loop) Unmount() {
	if l.state != StateRunning {
		return
	}
	l.state = StateStopped

	l.sched.CancelFrame(l.frame)
	for _, id := range l.listeners {
		l.events.RemoveListener(id)
	}
	l.listeners = l.listeners[:0]

	l.log.Debug("unmounted", zap.Uint64("frames", l.frames))
	l.surface, l.canvas, l.sched, l.events = nil, nil, nil, nil
}

func (l *Loop) onFrame(now time.Time) {
	if l.state != StateRunning {
		return
	}

	var dt time.Duration
	if !l.lastFrame.IsZero() {
		dt = min(now.Sub(l.lastFrame), parameter.MaxFrameDelta)
	}
	l.lastFrame = now

	l.scene.Tick(dt, l.canvas)
	l.surface.Present()
	l.frames++

	l.frame = l.sched.RequestFrame(l.onFrame)
}

// resize reads the container size and reconfigures the backing raster and scene projection
func (l *Loop) resize() {
	w, h := l.surface.Size()
	l.surface.Configure(w, h)
	l.scene.Resize(w, h)
}

func (l *Loop) onResize(Event) {
	if l.state != StateRunning {
		return
	}
	l.resize()
}

func (l *Loop) onPointerMove(ev Event) {
	if l.state != StateRunning {
		return
	}
	w, _ := l.scene.Size()
	l.pointer.Move(ev.Pos, w)
}

func (l *Loop) onPointerEnter(Event) {
	l.pointer.Enter()
}

func (l *Loop) onPointerLeave(Event) {
	l.pointer.Leave()
}
