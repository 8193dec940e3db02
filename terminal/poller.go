package terminal

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/engine"
	"github.com/lixenwraith/blueprint/input"
)

// Poster accepts translated events, engine.Dispatcher satisfies it
type Poster interface {
	Post(ev engine.Event) bool
	TryPost(ev engine.Event) bool
}

// Poller reads tcell events and forwards them as engine events
type Poller struct {
	screen  tcell.Screen
	surface *Surface
	keys    *input.KeyTable
	out     Poster
	log     *zap.Logger

	inside bool
}

// NewPoller creates a poller, a nil key table uses the defaults
func NewPoller(screen tcell.Screen, surface *Surface, keys *input.KeyTable, out Poster, logger *zap.Logger) *Poller {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		screen:  screen,
		surface: surface,
		keys:    keys,
		out:     out,
		log:     logger.Named("poller"),
	}
}

// Run blocks on PollEvent until the screen is finalized
// A quit is posted on exit so the dispatcher stops with its input source
func (p *Poller) Run() error {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			p.out.TryPost(engine.Event{Intent: input.IntentQuit})
			p.log.Debug("screen finalized")
			return nil
		}
		p.Translate(ev)
	}
}

// Translate maps one tcell event and posts the result
// Pointer motion is lossy under backpressure, everything else blocks until queued
func (p *Poller) Translate(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if intent := p.keys.Classify(ev); intent != input.IntentNone {
			p.out.Post(engine.Event{Intent: intent})
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		cols, rows := p.screen.Size()
		if col < 0 || row < 0 || col >= cols || row >= rows {
			p.leave()
			return
		}
		if !p.inside {
			p.inside = true
			p.out.Post(engine.Event{Intent: input.IntentPointerEnter})
		}
		p.out.TryPost(engine.Event{Intent: input.IntentPointerMove, Pos: p.surface.CellCenter(col, row)})

	case *tcell.EventFocus:
		if ev.Focused {
			// Enter is deferred to the first mouse sample so it carries a position
			return
		}
		p.leave()

	case *tcell.EventResize:
		p.screen.Sync()
		p.out.Post(engine.Event{Intent: input.IntentResize})
	}
}

func (p *Poller) leave() {
	if !p.inside {
		return
	}
	p.inside = false
	p.out.Post(engine.Event{Intent: input.IntentPointerLeave})
}
