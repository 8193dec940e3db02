package flow

import (
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

// Canvas is the drawing context a Scene renders into, coordinates are logical pixels
type Canvas interface {
	// Fade washes the whole surface toward bg at alpha, previous frames persist as trails
	Fade(bg render.RGB, alpha float64)

	// Line draws a thin segment
	Line(from, to vmath.Vec2, c render.RGB, alpha float64)

	// FillCircle draws a filled disc
	FillCircle(center vmath.Vec2, r float64, c render.RGB, alpha float64)

	// StrokeCircle draws a circle outline
	StrokeCircle(center vmath.Vec2, r float64, c render.RGB, alpha float64)

	// Glow draws a soft radial halo, alpha is the peak at center
	Glow(center vmath.Vec2, r float64, c render.RGB, alpha float64)

	// Text draws s centered on anchor
	Text(anchor vmath.Vec2, s string, c render.RGB)
}
