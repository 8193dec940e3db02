package flow

import (
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

// DrawOp names a Canvas call
type DrawOp uint8

const (
	OpFade DrawOp = iota
	OpLine
	OpFillCircle
	OpStrokeCircle
	OpGlow
	OpText
)

// DrawCall is one recorded Canvas invocation
type DrawCall struct {
	Op     DrawOp
	From   vmath.Vec2 // center or anchor for shapes and text
	To     vmath.Vec2
	Radius float64
	Color  render.RGB
	Alpha  float64
	Text   string
}

// Recorder is a Canvas that records calls, for tests and headless runs
type Recorder struct {
	Calls []DrawCall
}

var _ Canvas = (*Recorder)(nil)

func (r *Recorder) Fade(bg render.RGB, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFade, Color: bg, Alpha: alpha})
}

func (r *Recorder) Line(from, to vmath.Vec2, c render.RGB, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpLine, From: from, To: to, Color: c, Alpha: alpha})
}

func (r *Recorder) FillCircle(center vmath.Vec2, radius float64, c render.RGB, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillCircle, From: center, Radius: radius, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeCircle(center vmath.Vec2, radius float64, c render.RGB, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStrokeCircle, From: center, Radius: radius, Color: c, Alpha: alpha})
}

func (r *Recorder) Glow(center vmath.Vec2, radius float64, c render.RGB, alpha float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpGlow, From: center, Radius: radius, Color: c, Alpha: alpha})
}

func (r *Recorder) Text(anchor vmath.Vec2, s string, c render.RGB) {
	r.Calls = append(r.Calls, DrawCall{Op: OpText, From: anchor, Color: c, Text: s})
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns the number of recorded calls of op
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns recorded calls matching op
func (r *Recorder) Filter(op DrawOp) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
