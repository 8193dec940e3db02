package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	assert.Equal(t, dst, Blend(dst, src, 0))
	assert.Equal(t, src, Blend(dst, src, 1))
	assert.Equal(t, RGB{100, 50, 25}, Blend(dst, src, 0.5))
}

func TestAdd_Saturates(t *testing.T) {
	assert.Equal(t, RGB{250, 150, 0}, Add(RGB{200, 100, 0}, RGB{100, 100, 0}, 0.5))
	assert.Equal(t, RGB{255, 150, 0}, Add(RGB{220, 100, 0}, RGB{100, 100, 0}, 0.5))
	assert.Equal(t, RGB{255, 255, 255}, Add(RGB{200, 200, 200}, RGBWhite, 1))
	assert.Equal(t, RGB{1, 2, 3}, Add(RGB{1, 2, 3}, RGBWhite, 0))
}

func TestScreen(t *testing.T) {
	// Screening with black is identity, with white saturates
	c := RGB{40, 80, 120}
	assert.Equal(t, c, Screen(c, RGBBlack, 1))
	assert.Equal(t, RGBWhite, Screen(c, RGBWhite, 1))
	assert.Equal(t, c, Screen(c, RGBWhite, 0))
}

func TestComposite(t *testing.T) {
	dst, src := RGB{10, 10, 10}, RGB{100, 100, 100}
	assert.Equal(t, src, Composite(dst, src, BlendReplace, 0.1))
	assert.Equal(t, Blend(dst, src, 0.3), Composite(dst, src, BlendAlpha, 0.3))
	assert.Equal(t, Add(dst, src, 0.3), Composite(dst, src, BlendAdd, 0.3))
	assert.Equal(t, Screen(dst, src, 0.3), Composite(dst, src, BlendScreen, 0.3))
	assert.Equal(t, "screen", BlendScreen.String())
}

func TestAverage(t *testing.T) {
	assert.Equal(t, RGB{50, 100, 150}, Average(RGB{0, 100, 200}, RGB{100, 100, 100}))
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#ff3d00")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 61, 0}, c)
	assert.Equal(t, "#ff3d00", c.Hex())

	short, err := ParseHex("#0ff")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 255, 255}, short)

	_, err = ParseHex("cyan")
	assert.Error(t, err)
}

func TestTcellBridge(t *testing.T) {
	c := RGB{12, 34, 56}
	assert.Equal(t, c, TcellToRGB(RGBToTcell(c)))
	assert.Equal(t, RGBBlack, TcellToRGB(tcell.ColorDefault))
}
