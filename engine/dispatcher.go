package engine

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/input"
	"github.com/lixenwraith/blueprint/parameter"
)

type frameEntry struct {
	handle FrameHandle
	fn     FrameFunc
}

type listenerEntry struct {
	id     ListenerID
	intent input.IntentType
	fn     Listener
}

// Dispatcher is the single owner goroutine of a mounted Loop
// It serializes posted events and frame callbacks so scene state needs no locking
// Registration is safe from any goroutine, callbacks always run inside Run
type Dispatcher struct {
	interval time.Duration
	clock    Clock
	log      *zap.Logger

	queue chan Event
	done  chan struct{}

	mu        sync.Mutex
	nextID    uint64
	frames    []frameEntry
	batch     []frameEntry // frames due on the tick in progress
	listeners []listenerEntry

	running  atomic.Bool
	ticks    atomic.Uint64
	dropped  atomic.Uint64
	stopOnce sync.Once
}

var (
	_ FrameScheduler = (*Dispatcher)(nil)
	_ EventSource    = (*Dispatcher)(nil)
)

// NewDispatcher creates a dispatcher ticking at interval, zero falls back to FrameUpdateInterval
func NewDispatcher(interval time.Duration, clock Clock, logger *zap.Logger) *Dispatcher {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		interval: interval,
		clock:    clock,
		log:      logger.Named("dispatcher"),
		queue:    make(chan Event, parameter.EventQueueSize),
		done:     make(chan struct{}),
	}
}

// Run delivers events and frames until ctx is cancelled
// Pending frames are discarded on return and later Posts are rejected
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return nil
	}
	defer d.stop()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.log.Debug("started", zap.Duration("interval", d.interval))
	for {
		select {
		case <-ctx.Done():
			d.log.Debug("stopped",
				zap.Uint64("ticks", d.ticks.Load()),
				zap.Uint64("dropped", d.dropped.Load()))
			return nil
		case ev := <-d.queue:
			d.Dispatch(ev)
		case <-ticker.C:
			d.Step(d.clock.Now())
		}
	}
}

func (d *Dispatcher) stop() {
	d.stopOnce.Do(func() {
		close(d.done)
		d.mu.Lock()
		d.frames = nil
		d.batch = nil
		d.mu.Unlock()
	})
}

// Done is closed when Run returns
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Post enqueues an event for the owner goroutine, blocking while the queue is full
// Returns false once the dispatcher has stopped
func (d *Dispatcher) Post(ev Event) bool {
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.queue <- ev:
		return true
	case <-d.done:
		return false
	}
}

// TryPost enqueues without blocking, the event is dropped and counted when the queue is full
func (d *Dispatcher) TryPost(ev Event) bool {
	select {
	case d.queue <- ev:
		return true
	default:
		d.dropped.Add(1)
		return false
	}
}

// Dropped returns the number of events discarded by TryPost
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Ticks returns the number of frame steps run
func (d *Dispatcher) Ticks() uint64 {
	return d.ticks.Load()
}

// RequestFrame schedules fn for the next frame step
// Requests made from inside a frame callback run on the following step
func (d *Dispatcher) RequestFrame(fn FrameFunc) FrameHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	h := FrameHandle(d.nextID)
	d.frames = append(d.frames, frameEntry{handle: h, fn: fn})
	return h
}

// CancelFrame drops a pending request, including one due later in the current step
func (d *Dispatcher) CancelFrame(h FrameHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = slices.DeleteFunc(d.frames, func(e frameEntry) bool { return e.handle == h })
	d.batch = slices.DeleteFunc(d.batch, func(e frameEntry) bool { return e.handle == h })
}

// AddListener registers fn for events of the given intent
func (d *Dispatcher) AddListener(intent input.IntentType, fn Listener) ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := ListenerID(d.nextID)
	d.listeners = append(d.listeners, listenerEntry{id: id, intent: intent, fn: fn})
	return id
}

// RemoveListener unregisters a listener, unknown ids are ignored
func (d *Dispatcher) RemoveListener(id ListenerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = slices.DeleteFunc(d.listeners, func(e listenerEntry) bool { return e.id == id })
}

// Listeners returns the number of registered listeners
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Dispatch delivers ev synchronously to matching listeners in registration order
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	var matched []Listener
	for _, e := range d.listeners {
		if e.intent == ev.Intent {
			matched = append(matched, e.fn)
		}
	}
	d.mu.Unlock()

	for _, fn := range matched {
		fn(ev)
	}
}

// Step runs every frame requested before the call, in request order
func (d *Dispatcher) Step(now time.Time) {
	d.ticks.Add(1)

	d.mu.Lock()
	d.batch, d.frames = d.frames, nil
	d.mu.Unlock()

	for {
		d.mu.Lock()
		if len(d.batch) == 0 {
			d.mu.Unlock()
			return
		}
		e := d.batch[0]
		d.batch = d.batch[1:]
		d.mu.Unlock()

		e.fn(now)
	}
}
