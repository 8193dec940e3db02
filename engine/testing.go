package engine

import (
	"github.com/lixenwraith/blueprint/flow"
)

// StubSurface is a Surface backed by a flow.Recorder for tests and headless runs
type StubSurface struct {
	Width, Height float64
	Recorder      *flow.Recorder
	Err           error // returned by Context when set

	Configured int // Configure call count
	Presented  int // Present call count
}

// NewStubSurface creates a recording surface of the given logical size
func NewStubSurface(width, height float64) *StubSurface {
	return &StubSurface{Width: width, Height: height, Recorder: &flow.Recorder{}}
}

func (s *StubSurface) Context() (flow.Canvas, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Recorder, nil
}

func (s *StubSurface) Size() (float64, float64) { return s.Width, s.Height }

func (s *StubSurface) Configure(float64, float64) { s.Configured++ }

func (s *StubSurface) Present() { s.Presented++ }
