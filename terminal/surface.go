package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blueprint/engine"
	"github.com/lixenwraith/blueprint/flow"
	"github.com/lixenwraith/blueprint/parameter"
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

var (
	// ErrNoScreen is returned by Context when the surface has no screen attached
	ErrNoScreen = errors.New("no terminal screen")

	// ErrEmptyScreen is returned by Context when the screen reports no cells
	ErrEmptyScreen = errors.New("terminal screen has zero size")
)

// SurfaceOptions configures cell geometry, zero values fall back to parameter defaults
type SurfaceOptions struct {
	CellWidth  float64
	CellHeight float64
	Background render.RGB
}

// Surface renders into a tcell screen through a half-block pixel buffer
type Surface struct {
	screen tcell.Screen
	buf    *render.PixelBuffer
	cellW  float64
	cellH  float64
	bg     render.RGB
}

var _ engine.Surface = (*Surface)(nil)

// NewSurface wraps an initialized screen
func NewSurface(screen tcell.Screen, opts SurfaceOptions) *Surface {
	if opts.CellWidth <= 0 {
		opts.CellWidth = parameter.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = parameter.CellHeight
	}
	return &Surface{
		screen: screen,
		cellW:  opts.CellWidth,
		cellH:  opts.CellHeight,
		bg:     opts.Background,
	}
}

// Context returns the pixel buffer, allocating it on first use
func (s *Surface) Context() (flow.Canvas, error) {
	if s.screen == nil {
		return nil, ErrNoScreen
	}
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, ErrEmptyScreen
	}
	if s.buf == nil {
		s.buf = render.NewPixelBuffer(cols, rows, s.cellW, s.cellH, parameter.SubpixelRows, s.bg)
	}
	return s.buf, nil
}

// Size returns the screen extent in logical pixels
func (s *Surface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// Configure reallocates the pixel buffer for a logical size, the previous frame is discarded
func (s *Surface) Configure(width, height float64) {
	cols := int(width / s.cellW)
	rows := int(height / s.cellH)
	if s.buf == nil {
		s.buf = render.NewPixelBuffer(cols, rows, s.cellW, s.cellH, parameter.SubpixelRows, s.bg)
	} else {
		s.buf.Resize(cols, rows, s.bg)
	}
	s.screen.Clear()
}

// Present flushes the pixel buffer and shows the screen
func (s *Surface) Present() {
	s.buf.Flush(s.screen)
	s.screen.Show()
}

// Buffer exposes the backing raster
func (s *Surface) Buffer() *render.PixelBuffer {
	return s.buf
}

// CellCenter maps a terminal cell to the logical pixel at its center
func (s *Surface) CellCenter(col, row int) vmath.Vec2 {
	return vmath.V2((float64(col)+0.5)*s.cellW, (float64(row)+0.5)*s.cellH)
}
