package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSurface_NoScreen(t *testing.T) {
	s := NewSurface(nil, SurfaceOptions{})
	cv, err := s.Context()
	assert.Nil(t, cv)
	assert.ErrorIs(t, err, ErrNoScreen)
}

func TestSurface_SizeInLogicalPixels(t *testing.T) {
	screen := newSimScreen(t, 100, 30)
	s := NewSurface(screen, SurfaceOptions{CellWidth: 8, CellHeight: 16})

	w, h := s.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 480.0, h)

	_, err := s.Context()
	require.NoError(t, err)
	s.Configure(w, h)

	cols, rows := s.Buffer().Cells()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 30, rows)
	dw, dh := s.Buffer().DeviceSize()
	assert.Equal(t, 100, dw)
	assert.Equal(t, 60, dh)
}

func TestSurface_PresentWritesHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	bg := render.RGB{R: 5, G: 5, B: 5}
	s := NewSurface(screen, SurfaceOptions{CellWidth: 8, CellHeight: 16, Background: bg})

	cv, err := s.Context()
	require.NoError(t, err)
	s.Configure(s.Size())

	// Top half of cell (1,0) only
	cv.FillCircle(vmath.V2(12, 4), 1, render.RGBWhite, 1)
	s.Present()

	cells, width, _ := screen.GetContents()
	cell := cells[0*width+1]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, '▀', cell.Runes[0])
	fg, bgc, _ := cell.Style.Decompose()
	assert.Equal(t, render.RGBWhite, render.TcellToRGB(fg))
	assert.Equal(t, bg, render.TcellToRGB(bgc))
}

func TestSurface_CellCenter(t *testing.T) {
	s := NewSurface(newSimScreen(t, 10, 10), SurfaceOptions{CellWidth: 8, CellHeight: 16})
	assert.Equal(t, vmath.V2(4, 8), s.CellCenter(0, 0))
	assert.Equal(t, vmath.V2(28, 40), s.CellCenter(3, 2))
}
