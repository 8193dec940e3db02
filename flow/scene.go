package flow

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/blueprint/parameter"
	"github.com/lixenwraith/blueprint/parameter/visual"
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

// Options configures a Scene, zero values fall back to package defaults
type Options struct {
	Nodes      [3]Node
	Background render.RGB
	FadeAlpha  float64

	// Rand drives packet links, speeds and particle scatter; nil seeds from the clock
	Rand *rand.Rand
}

// DefaultOptions returns the standard three-stage pipeline on the site palette
func DefaultOptions() Options {
	var nodes [3]Node
	for i, n := range visual.DefaultNodes {
		nodes[i] = Node{Index: i, X: n.X, Y: n.Y, Label: n.Label, Color: n.Color}
	}
	return Options{
		Nodes:      nodes,
		Background: visual.RgbBackground,
		FadeAlpha:  parameter.FadeAlpha,
	}
}

// Scene owns the animated state of one packet-flow panel
// Not safe for concurrent use; a single owner drives Tick, Resize and SpawnPointer
type Scene struct {
	nodes     [3]Node
	bg        render.RGB
	fadeAlpha float64
	rng       *rand.Rand

	width, height float64

	packets    []Packet
	particles  []Particle
	spawnTimer time.Duration

	onArrival func(Packet)
	stats     Stats
}

// NewScene creates a scene, call Resize before the first Tick
func NewScene(opts Options) *Scene {
	if opts.Nodes == ([3]Node{}) {
		opts.Nodes = DefaultOptions().Nodes
	}
	for i := range opts.Nodes {
		opts.Nodes[i].Index = i
	}
	if opts.FadeAlpha <= 0 {
		opts.FadeAlpha = parameter.FadeAlpha
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Scene{
		nodes:     opts.Nodes,
		bg:        opts.Background,
		fadeAlpha: opts.FadeAlpha,
		rng:       rng,
		packets:   make([]Packet, 0, 8),
		particles: make([]Particle, 0, 256),
	}
}

// Resize sets the canvas size in logical pixels
// Stored node fractions and in-flight entities are untouched, only the projection changes
func (s *Scene) Resize(width, height float64) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Size returns the current canvas size
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// OnArrival registers a hook invoked once per packet reaching its destination
func (s *Scene) OnArrival(fn func(Packet)) {
	s.onArrival = fn
}

// Nodes returns the fixed pipeline nodes
func (s *Scene) Nodes() [3]Node {
	return s.nodes
}

// Packets returns a snapshot of in-flight packets in insertion order
func (s *Scene) Packets() []Packet {
	return append([]Packet(nil), s.packets...)
}

// Particles returns a snapshot of live particles in insertion order
func (s *Scene) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// SpawnTimer returns time accumulated toward the next packet
func (s *Scene) SpawnTimer() time.Duration {
	return s.spawnTimer
}

// Stats returns diagnostic counters
func (s *Scene) Stats() Stats {
	return s.stats
}

// NodePosition projects node i to pixel coordinates at the current size
func (s *Scene) NodePosition(i int) vmath.Vec2 {
	n := s.nodes[i]
	return vmath.V2(n.X*s.width, n.Y*s.height)
}

// PacketPosition projects a packet onto its link at the current size
func (s *Scene) PacketPosition(p Packet) vmath.Vec2 {
	return s.pointOnLink(p.From, p.To, vmath.Clamp01(p.Progress))
}

func (s *Scene) pointOnLink(from, to int, t float64) vmath.Vec2 {
	return vmath.LerpVec(s.NodePosition(from), s.NodePosition(to), t)
}

// SpawnPointer adds one pointer-trail particle at pos, returns false when the particle cap is reached
func (s *Scene) SpawnPointer(pos vmath.Vec2, color render.RGB) bool {
	vel := vmath.V2(
		vmath.RandRange(s.rng.Float64(), -parameter.PointerJitter, parameter.PointerJitter),
		vmath.RandRange(s.rng.Float64(), -parameter.PointerJitter, parameter.PointerJitter),
	)
	radius := vmath.RandRange(s.rng.Float64(), parameter.PointerRadiusMin, parameter.PointerRadiusMax)
	return s.addParticle(Particle{Pos: pos, Vel: vel, Life: 1, Color: color, Radius: radius})
}

func (s *Scene) addParticle(q Particle) bool {
	if len(s.particles) >= parameter.MaxParticles {
		s.stats.Dropped++
		return false
	}
	s.particles = append(s.particles, q)
	s.stats.Particles++
	return true
}

// ===== FRAME =====

// Tick advances and draws one frame
// Packet progress and particle decay are per-tick constants; only the spawn timer consumes dt
func (s *Scene) Tick(dt time.Duration, cv Canvas) {
	s.stats.Ticks++

	cv.Fade(s.bg, s.fadeAlpha)
	s.drawLinks(cv)
	s.advanceSpawnTimer(dt)
	s.advancePackets(cv)
	s.advanceParticles(cv)
	s.drawNodes(cv)
}

func (s *Scene) drawLinks(cv Canvas) {
	for _, l := range links {
		cv.Line(s.NodePosition(l.from), s.NodePosition(l.to), visual.RgbLink, parameter.LinkAlpha)
	}
}

func (s *Scene) advanceSpawnTimer(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.spawnTimer += dt
	if s.spawnTimer > parameter.PacketSpawnInterval {
		s.spawnPacket()
		s.spawnTimer = 0
	}
}

func (s *Scene) spawnPacket() {
	l := links[s.rng.IntN(len(links))]
	s.packets = append(s.packets, Packet{
		From:  l.from,
		To:    l.to,
		Speed: vmath.RandRange(s.rng.Float64(), parameter.PacketSpeedMin, parameter.PacketSpeedMax),
		Color: s.nodes[l.to].Color,
	})
	s.stats.PacketsSpawned++
}

// advancePackets compacts in place so survivors keep their relative order
func (s *Scene) advancePackets(cv Canvas) {
	alive := s.packets[:0]
	for _, p := range s.packets {
		p.Progress += p.Speed
		s.drawPacket(cv, p)

		if p.Progress >= 1 {
			s.burst(s.NodePosition(p.To), p.Color)
			s.stats.Arrivals++
			if s.onArrival != nil {
				s.onArrival(p)
			}
			continue
		}
		alive = append(alive, p)
	}
	s.packets = alive
}

func (s *Scene) drawPacket(cv Canvas, p Packet) {
	head := vmath.Clamp01(p.Progress)
	prev := s.pointOnLink(p.From, p.To, head)

	// Trail: short segments behind the head, fading toward the tail
	for k := 1; k <= parameter.PacketTrailSegments; k++ {
		t := head - parameter.PacketTrailLength*float64(k)/parameter.PacketTrailSegments
		if t < 0 {
			t = 0
		}
		next := s.pointOnLink(p.From, p.To, t)
		alpha := 0.6 * (1 - float64(k-1)/parameter.PacketTrailSegments)
		cv.Line(prev, next, p.Color, alpha)
		if t == 0 {
			break
		}
		prev = next
	}

	pos := s.pointOnLink(p.From, p.To, head)
	cv.Glow(pos, parameter.PacketGlowRadius, p.Color, 0.6)
	cv.FillCircle(pos, parameter.PacketRadius, p.Color, 1)
}

// burst scatters ArrivalBurstSize particles from pos
func (s *Scene) burst(pos vmath.Vec2, color render.RGB) {
	for i := 0; i < parameter.ArrivalBurstSize; i++ {
		theta := s.rng.Float64() * 2 * math.Pi
		speed := vmath.RandRange(s.rng.Float64(), parameter.BurstSpeedMin, parameter.BurstSpeedMax)
		radius := vmath.RandRange(s.rng.Float64(), parameter.BurstRadiusMin, parameter.BurstRadiusMax)
		s.addParticle(Particle{
			Pos:    pos,
			Vel:    vmath.FromPolar(speed, theta),
			Life:   1,
			Color:  color,
			Radius: radius,
		})
	}
}

func (s *Scene) advanceParticles(cv Canvas) {
	alive := s.particles[:0]
	for _, q := range s.particles {
		q.Pos = q.Pos.Add(q.Vel)
		q.Vel = q.Vel.Scale(parameter.ParticleDamping)
		q.Life -= parameter.ParticleLifeDecay
		if q.Life <= 0 {
			continue
		}
		cv.FillCircle(q.Pos, q.Radius, q.Color, q.Life)
		alive = append(alive, q)
	}
	s.particles = alive
}

func (s *Scene) drawNodes(cv Canvas) {
	for i, n := range s.nodes {
		pos := s.NodePosition(i)
		cv.Glow(pos, parameter.NodeGlowRadius, n.Color, parameter.NodeGlowAlpha)
		cv.FillCircle(pos, parameter.NodeRadius, s.bg, 0.85)
		cv.StrokeCircle(pos, parameter.NodeRadius, n.Color, 1)
		cv.Text(pos.Add(vmath.V2(0, parameter.NodeLabelOffset)), n.Label, n.Color)
	}
}
