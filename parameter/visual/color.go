package visual

import (
	"github.com/lixenwraith/blueprint/render"
)

// Site palette
var (
	RgbBackground = render.RGB{R: 5, G: 5, B: 5}       // Near-black panel background
	RgbCyan       = render.RGB{R: 0, G: 243, B: 255}   // Accent cyan
	RgbOrange     = render.RGB{R: 255, G: 61, B: 0}    // Accent orange
	RgbNodeGray   = render.RGB{R: 209, G: 213, B: 219} // Neutral node
	RgbLink       = render.RGB{R: 255, G: 255, B: 255} // Static link lines, drawn at low alpha
)

// Pointer trail colors by canvas half
var (
	RgbPointerLeft  = RgbCyan
	RgbPointerRight = RgbOrange
)
