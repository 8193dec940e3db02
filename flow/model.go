package flow

import (
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

// Node is a fixed pipeline stage, X/Y are fractions of canvas size
type Node struct {
	Index int
	X, Y  float64
	Label string
	Color render.RGB
}

// Packet travels From -> To, Progress 0 at source and 1 at destination
type Packet struct {
	From, To int
	Progress float64
	Speed    float64 // progress per tick
	Color    render.RGB
}

// Particle is a short-lived dot, removed once Life reaches zero
type Particle struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2 // logical px per tick
	Life   float64
	Color  render.RGB
	Radius float64
}

// link is a directed node pair packets can travel along
type link struct {
	from, to int
}

// links are the two adjacent pairs of the pipeline
var links = [...]link{{0, 1}, {1, 2}}

// Stats are monotonic counters for diagnostics
type Stats struct {
	Ticks          uint64
	PacketsSpawned uint64
	Arrivals       uint64
	Particles      uint64
	Dropped        uint64
}
