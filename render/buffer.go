package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blueprint/vmath"
)

const halfBlock = '▀'

// glyph is a text overlay cell, rune 0 means empty
type glyph struct {
	r  rune
	fg RGB
}

// PixelBuffer is a persistent raster compositor addressed in logical pixels
// Device pixels are cols x rows*subRows, each terminal cell shows two stacked pixels via half-block
// Pixels are never cleared between frames; Fade washes them toward a background color
type PixelBuffer struct {
	pixels []RGB
	text   []glyph

	cols, rows int
	subRows    int

	// Logical to device scale, the terminal equivalent of device pixel ratio
	sx, sy float64
}

// NewPixelBuffer creates a buffer for a cols x rows terminal where one cell spans cellW x cellH logical px
func NewPixelBuffer(cols, rows int, cellW, cellH float64, subRows int, bg RGB) *PixelBuffer {
	b := &PixelBuffer{subRows: subRows}
	b.SetScale(cellW, cellH)
	b.Resize(cols, rows, bg)
	return b
}

// SetScale updates the logical cell footprint
func (b *PixelBuffer) SetScale(cellW, cellH float64) {
	b.sx = 1 / cellW
	b.sy = float64(b.subRows) / cellH
}

// Resize reallocates for a new cell grid and fills with bg
func (b *PixelBuffer) Resize(cols, rows int, bg RGB) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows * b.subRows
	if cap(b.pixels) < size {
		b.pixels = make([]RGB, size)
	} else {
		b.pixels = b.pixels[:size]
	}
	cells := cols * rows
	if cap(b.text) < cells {
		b.text = make([]glyph, cells)
	} else {
		b.text = b.text[:cells]
	}
	b.cols, b.rows = cols, rows
	b.Clear(bg)
}

// Clear fills every pixel with bg using exponential copy and drops text
func (b *PixelBuffer) Clear(bg RGB) {
	if len(b.pixels) > 0 {
		b.pixels[0] = bg
		for filled := 1; filled < len(b.pixels); filled *= 2 {
			copy(b.pixels[filled:], b.pixels[:filled])
		}
	}
	clear(b.text)
}

// Cells returns terminal grid dimensions
func (b *PixelBuffer) Cells() (cols, rows int) {
	return b.cols, b.rows
}

// DeviceSize returns device pixel dimensions
func (b *PixelBuffer) DeviceSize() (w, h int) {
	return b.cols, b.rows * b.subRows
}

// LogicalSize returns the logical pixel extent covered by the buffer
func (b *PixelBuffer) LogicalSize() (w, h float64) {
	return float64(b.cols) / b.sx, float64(b.rows*b.subRows) / b.sy
}

// ToDevice maps a logical point to device pixel coordinates
func (b *PixelBuffer) ToDevice(p vmath.Vec2) (x, y int) {
	return int(math.Floor(p.X * b.sx)), int(math.Floor(p.Y * b.sy))
}

// Pixel returns the device pixel at (x, y), black when out of bounds
func (b *PixelBuffer) Pixel(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.pixels[y*b.cols+x]
}

// Glyph returns the text overlay rune at cell (col, row)
func (b *PixelBuffer) Glyph(col, row int) rune {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return 0
	}
	return b.text[row*b.cols+col].r
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows*b.subRows
}

// Plot composites one device pixel
func (b *PixelBuffer) Plot(x, y int, c RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.cols + x
	b.pixels[idx] = Composite(b.pixels[idx], c, mode, alpha)
}

// ===== CANVAS API =====

// Fade washes the whole raster toward bg, text overlay is dropped
func (b *PixelBuffer) Fade(bg RGB, alpha float64) {
	for i := range b.pixels {
		b.pixels[i] = Blend(b.pixels[i], bg, alpha)
	}
	clear(b.text)
}

// Line draws a one device pixel wide segment
func (b *PixelBuffer) Line(from, to vmath.Vec2, c RGB, alpha float64) {
	x0, y0 := from.X*b.sx, from.Y*b.sy
	x1, y1 := to.X*b.sx, to.Y*b.sy
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps < 1 {
		b.Plot(int(math.Floor(x0)), int(math.Floor(y0)), c, BlendAlpha, alpha)
		return
	}
	prevX, prevY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(x0 + (x1-x0)*t))
		py := int(math.Floor(y0 + (y1-y0)*t))
		// Avoid double-blending the same pixel
		if px == prevX && py == prevY {
			continue
		}
		b.Plot(px, py, c, BlendAlpha, alpha)
		prevX, prevY = px, py
	}
}

// FillCircle draws a filled disc of logical radius r
func (b *PixelBuffer) FillCircle(center vmath.Vec2, r float64, c RGB, alpha float64) {
	b.raster(center, r, c, BlendAlpha, func(d float64) (float64, bool) {
		return alpha, d <= r
	})
}

// StrokeCircle draws a ring of logical radius r about one device pixel thick
func (b *PixelBuffer) StrokeCircle(center vmath.Vec2, r float64, c RGB, alpha float64) {
	half := 0.75 * math.Max(1/b.sx, 1/b.sy)
	b.raster(center, r+half, c, BlendAlpha, func(d float64) (float64, bool) {
		return alpha, math.Abs(d-r) <= half
	})
}

// Glow draws an additive radial falloff, quadratic toward the rim
func (b *PixelBuffer) Glow(center vmath.Vec2, r float64, c RGB, alpha float64) {
	if r <= 0 {
		return
	}
	b.raster(center, r, c, BlendAdd, func(d float64) (float64, bool) {
		if d >= r {
			return 0, false
		}
		k := 1 - d/r
		return alpha * k * k, true
	})
}

// Text writes s centered horizontally on the cell containing anchor
func (b *PixelBuffer) Text(anchor vmath.Vec2, s string, c RGB) {
	runes := []rune(s)
	dx, dy := b.ToDevice(anchor)
	row := dy / b.subRows
	if dy < 0 || row < 0 || row >= b.rows {
		return
	}
	col := dx - len(runes)/2
	for i, r := range runes {
		x := col + i
		if x < 0 || x >= b.cols {
			continue
		}
		b.text[row*b.cols+x] = glyph{r: r, fg: c}
	}
}

// raster walks the device pixel bounding box of a disc, sampling coverage at pixel centers in logical space
func (b *PixelBuffer) raster(center vmath.Vec2, r float64, c RGB, mode BlendMode, cover func(d float64) (float64, bool)) {
	minX := int(math.Floor((center.X - r) * b.sx))
	maxX := int(math.Ceil((center.X + r) * b.sx))
	minY := int(math.Floor((center.Y - r) * b.sy))
	maxY := int(math.Ceil((center.Y + r) * b.sy))

	hit := false
	for y := max(minY, 0); y <= min(maxY, b.rows*b.subRows-1); y++ {
		ly := (float64(y) + 0.5) / b.sy
		for x := max(minX, 0); x <= min(maxX, b.cols-1); x++ {
			lx := (float64(x) + 0.5) / b.sx
			d := math.Hypot(lx-center.X, ly-center.Y)
			a, ok := cover(d)
			if !ok {
				continue
			}
			hit = true
			b.Plot(x, y, c, mode, a)
		}
	}
	if !hit && r*b.sx < 1 && r*b.sy < 1 {
		// Shape smaller than a device pixel: stamp the pixel under its center
		a, _ := cover(0)
		x, y := b.ToDevice(center)
		b.Plot(x, y, c, mode, a)
	}
}

// ===== OUTPUT =====

// Flush writes the raster to a tcell screen, one half-block per cell
// Text overlay cells take the averaged pixel pair as background
func (b *PixelBuffer) Flush(screen tcell.Screen) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			top := b.pixels[(row*b.subRows)*b.cols+col]
			bottom := top
			if b.subRows > 1 {
				bottom = b.pixels[(row*b.subRows+1)*b.cols+col]
			}
			if g := b.text[row*b.cols+col]; g.r != 0 {
				style := tcell.StyleDefault.Foreground(RGBToTcell(g.fg)).Background(RGBToTcell(Average(top, bottom)))
				screen.SetContent(col, row, g.r, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}
