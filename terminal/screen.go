package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/service"
)

// ScreenFactory creates an uninitialized screen
type ScreenFactory func() (tcell.Screen, error)

// ScreenService owns the tcell screen lifecycle
type ScreenService struct {
	factory ScreenFactory
	bg      render.RGB

	mu     sync.Mutex
	screen tcell.Screen
}

var _ service.Service = (*ScreenService)(nil)

// NewScreenService creates a screen service, a nil factory uses tcell.NewScreen
func NewScreenService(factory ScreenFactory, bg render.RGB) *ScreenService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &ScreenService{factory: factory, bg: bg}
}

// Name implements service.Service
func (s *ScreenService) Name() string {
	return "screen"
}

// Dependencies implements service.Service
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init creates the screen and enables mouse motion and focus reporting
func (s *ScreenService) Init(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != nil {
		return nil
	}

	screen, err := s.factory()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(s.bg)))
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	s.screen = screen
	return nil
}

// Start implements service.Service
func (s *ScreenService) Start(context.Context) error {
	return nil
}

// Stop restores the terminal, safe to call repeatedly
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen == nil {
		return nil
	}
	s.screen.DisableMouse()
	s.screen.DisableFocus()
	s.screen.Fini()
	s.screen = nil
	return nil
}

// Screen returns the live screen, nil outside Init..Stop
func (s *ScreenService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}
