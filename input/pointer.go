package input

import (
	"math"

	"github.com/lixenwraith/blueprint/parameter"
	"github.com/lixenwraith/blueprint/parameter/visual"
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

// ParticleSink receives interpolated pointer samples, implemented by flow.Scene
type ParticleSink interface {
	SpawnPointer(pos vmath.Vec2, color render.RGB) bool
}

// PointerConfig tunes the adapter, zero values use parameter defaults
type PointerConfig struct {
	Spacing    float64
	MaxSteps   int
	LeftColor  render.RGB
	RightColor render.RGB
}

// DefaultPointerConfig returns spacing, cap and colors from parameter/visual
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{
		Spacing:    parameter.PointerSpawnSpacing,
		MaxSteps:   parameter.PointerMaxSteps,
		LeftColor:  visual.RgbPointerLeft,
		RightColor: visual.RgbPointerRight,
	}
}

// Pointer turns raw pointer moves into evenly spaced particle spawns
// It only appends to the sink, never reads or removes particles
type Pointer struct {
	sink   ParticleSink
	cfg    PointerConfig
	last   vmath.Vec2
	active bool
}

// NewPointer creates an inactive adapter feeding sink
func NewPointer(sink ParticleSink, cfg PointerConfig) *Pointer {
	def := DefaultPointerConfig()
	if cfg.Spacing <= 0 {
		cfg.Spacing = def.Spacing
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = def.MaxSteps
	}
	if cfg.LeftColor == (render.RGB{}) && cfg.RightColor == (render.RGB{}) {
		cfg.LeftColor, cfg.RightColor = def.LeftColor, def.RightColor
	}
	return &Pointer{sink: sink, cfg: cfg}
}

// Enter marks the start of a fresh interaction, the next move does not interpolate
func (p *Pointer) Enter() { p.active = false }

// Leave ends the interaction, the next move does not interpolate from a stale position
func (p *Pointer) Leave() { p.active = false }

// Active reports whether a previous sample exists
func (p *Pointer) Active() bool { return p.active }

// Last returns the last recorded sample
func (p *Pointer) Last() vmath.Vec2 { return p.last }

// Move processes one pointer sample on a canvas of the given width, returns spawned count
func (p *Pointer) Move(pos vmath.Vec2, canvasWidth float64) int {
	defer func() {
		p.last = pos
		p.active = true
	}()

	if !p.active {
		return 0
	}

	spawned := 0
	for _, pt := range Interpolate(p.last, pos, p.cfg.Spacing, p.cfg.MaxSteps) {
		if p.sink.SpawnPointer(pt, p.colorAt(pt, canvasWidth)) {
			spawned++
		}
	}
	return spawned
}

// colorAt picks color by canvas half
func (p *Pointer) colorAt(pt vmath.Vec2, canvasWidth float64) render.RGB {
	if pt.X < canvasWidth/2 {
		return p.cfg.LeftColor
	}
	return p.cfg.RightColor
}

// Interpolate returns points from (exclusive) to (inclusive) about spacing apart
// Step count is ceil(distance/spacing) capped at maxSteps; zero distance yields nil
func Interpolate(from, to vmath.Vec2, spacing float64, maxSteps int) []vmath.Vec2 {
	d := vmath.Distance(from, to)
	if d == 0 || spacing <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil
	}
	steps := int(math.Ceil(d / spacing))
	if maxSteps > 0 && steps > maxSteps {
		steps = maxSteps
	}
	if steps < 1 {
		steps = 1
	}

	pts := make([]vmath.Vec2, steps)
	for i := 1; i <= steps; i++ {
		pts[i-1] = vmath.LerpVec(from, to, float64(i)/float64(steps))
	}
	return pts
}
