package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blueprint/vmath"
)

var testBg = RGB{5, 5, 5}

// newTestBuffer is a 10x5 cell grid of 8x16 logical px cells with two device rows per cell
func newTestBuffer() *PixelBuffer {
	return NewPixelBuffer(10, 5, 8, 16, 2, testBg)
}

func TestPixelBuffer_Geometry(t *testing.T) {
	b := newTestBuffer()

	cols, rows := b.Cells()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 5, rows)

	w, h := b.DeviceSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	lw, lh := b.LogicalSize()
	assert.Equal(t, 80.0, lw)
	assert.Equal(t, 80.0, lh)

	x, y := b.ToDevice(vmath.V2(12, 9))
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	assert.Equal(t, testBg, b.Pixel(0, 0))
	assert.Equal(t, RGBBlack, b.Pixel(-1, 0))
	assert.Equal(t, RGBBlack, b.Pixel(10, 0))
}

func TestPixelBuffer_ResizeClearsAndClamps(t *testing.T) {
	b := newTestBuffer()
	b.Plot(0, 0, RGBWhite, BlendReplace, 1)

	b.Resize(4, 3, RGBBlack)
	w, h := b.DeviceSize()
	assert.Equal(t, 4, w)
	assert.Equal(t, 6, h)
	assert.Equal(t, RGBBlack, b.Pixel(0, 0))

	b.Resize(-1, -1, RGBBlack)
	w, h = b.DeviceSize()
	assert.Zero(t, w)
	assert.Zero(t, h)
	// Drawing on an empty buffer is a no-op
	b.FillCircle(vmath.V2(0, 0), 10, RGBWhite, 1)
}

func TestPixelBuffer_FadeConverges(t *testing.T) {
	b := newTestBuffer()
	b.Plot(3, 3, RGBWhite, BlendReplace, 1)

	prev := b.Pixel(3, 3)
	for i := 0; i < 200; i++ {
		b.Fade(testBg, 0.2)
		cur := b.Pixel(3, 3)
		assert.LessOrEqual(t, cur.R, prev.R)
		prev = cur
	}
	assert.InDelta(t, float64(testBg.R), float64(prev.R), 3)
}

func TestPixelBuffer_FillCircle(t *testing.T) {
	b := newTestBuffer()
	center := vmath.V2(40, 40)
	b.FillCircle(center, 12, RGBWhite, 1)

	cx, cy := b.ToDevice(center)
	assert.Equal(t, RGBWhite, b.Pixel(cx, cy))
	assert.Equal(t, testBg, b.Pixel(0, 0))
	assert.Equal(t, testBg, b.Pixel(9, 9))
}

func TestPixelBuffer_SubpixelShapeStillDraws(t *testing.T) {
	b := newTestBuffer()
	b.FillCircle(vmath.V2(20, 20), 0.5, RGBWhite, 1)
	assert.Equal(t, RGBWhite, b.Pixel(2, 2))
}

func TestPixelBuffer_GlowIsAdditive(t *testing.T) {
	b := newTestBuffer()
	center := vmath.V2(40, 40)
	cx, cy := b.ToDevice(center)

	b.Glow(center, 24, RGB{100, 0, 0}, 1)
	once := b.Pixel(cx, cy)
	b.Glow(center, 24, RGB{100, 0, 0}, 1)
	twice := b.Pixel(cx, cy)

	assert.Greater(t, once.R, testBg.R)
	assert.Greater(t, twice.R, once.R)

	// Zero radius draws nothing
	b.Glow(vmath.V2(8, 8), 0, RGBWhite, 1)
	assert.Equal(t, testBg, b.Pixel(1, 1))
}

func TestPixelBuffer_LineEndpoints(t *testing.T) {
	b := newTestBuffer()
	b.Line(vmath.V2(4, 4), vmath.V2(76, 4), RGBWhite, 1)

	for x := 0; x < 10; x++ {
		assert.Equal(t, RGBWhite, b.Pixel(x, 0), "x=%d", x)
	}
	assert.Equal(t, testBg, b.Pixel(0, 1))
}

func TestPixelBuffer_TextCenteredAndDroppedByFade(t *testing.T) {
	b := newTestBuffer()
	b.Text(vmath.V2(40, 24), "abc", RGBWhite)

	// Anchor cell is column 5, row 1; "abc" centered starts one column left
	assert.Equal(t, 'a', b.Glyph(4, 1))
	assert.Equal(t, 'b', b.Glyph(5, 1))
	assert.Equal(t, 'c', b.Glyph(6, 1))
	assert.Equal(t, rune(0), b.Glyph(7, 1))

	b.Text(vmath.V2(40, -5), "x", RGBWhite)
	b.Fade(testBg, 0.1)
	assert.Equal(t, rune(0), b.Glyph(5, 1))
}

func TestPixelBuffer_FlushHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(10, 5)

	b := newTestBuffer()
	top, bottom := RGB{255, 0, 0}, RGB{0, 0, 255}
	b.Plot(2, 2, top, BlendReplace, 1)
	b.Plot(2, 3, bottom, BlendReplace, 1)
	b.Text(vmath.V2(60, 56), "Z", RGBWhite)
	b.Flush(screen)

	r, _, style, _ := screen.GetContent(2, 1)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, halfBlock, r)
	assert.Equal(t, top, TcellToRGB(fg))
	assert.Equal(t, bottom, TcellToRGB(bg))

	r, _, style, _ = screen.GetContent(7, 3)
	fg, _, _ = style.Decompose()
	assert.Equal(t, 'Z', r)
	assert.Equal(t, RGBWhite, TcellToRGB(fg))
}
