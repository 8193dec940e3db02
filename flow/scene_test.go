package flow

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blueprint/parameter"
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/vmath"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewPCG(1, 2))
	s := NewScene(opts)
	s.Resize(800, 400)
	return s
}

func TestPacketSpawn_OnePerThresholdCrossing(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}

	for i := 0; i < 3; i++ {
		s.Tick(500*time.Millisecond, rec)
	}
	// 1500ms accumulated is not past the threshold
	require.Empty(t, s.Packets())
	require.Equal(t, 1500*time.Millisecond, s.SpawnTimer())

	s.Tick(500*time.Millisecond, rec)
	packets := s.Packets()
	require.Len(t, packets, 1)
	assert.Less(t, s.SpawnTimer(), parameter.PacketSpawnInterval)
	assert.Equal(t, time.Duration(0), s.SpawnTimer())

	p := packets[0]
	assert.Contains(t, []link{{0, 1}, {1, 2}}, link{p.From, p.To})
	assert.GreaterOrEqual(t, p.Speed, parameter.PacketSpeedMin)
	assert.Less(t, p.Speed, parameter.PacketSpeedMax)
	assert.Equal(t, s.Nodes()[p.To].Color, p.Color)
	assert.Equal(t, uint64(1), s.Stats().PacketsSpawned)
}

func TestPacketSpawn_NegativeDeltaIgnored(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}

	s.Tick(time.Second, rec)
	s.Tick(-time.Hour, rec)
	assert.Equal(t, time.Second, s.SpawnTimer())
}

func TestPacketProgress_MonotonicUntilRemoval(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}
	s.packets = append(s.packets, Packet{From: 0, To: 1, Speed: 0.25, Color: render.RGBWhite})

	last := 0.0
	for tick := 1; tick <= 3; tick++ {
		s.Tick(0, rec)
		packets := s.Packets()
		require.Len(t, packets, 1, "tick %d", tick)
		assert.GreaterOrEqual(t, packets[0].Progress, last)
		last = packets[0].Progress
	}

	// Fourth tick reaches 1.0 exactly and must remove in the same tick
	s.Tick(0, rec)
	assert.Empty(t, s.Packets())
	assert.Equal(t, uint64(1), s.Stats().Arrivals)
}

func TestPacketArrival_BurstAtDestination(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}
	color := render.RGB{R: 1, G: 2, B: 3}
	s.packets = append(s.packets, Packet{From: 1, To: 2, Progress: 0.99, Speed: 0.02, Color: color})

	var arrived []Packet
	s.OnArrival(func(p Packet) { arrived = append(arrived, p) })

	s.Tick(0, rec)

	require.Len(t, arrived, 1)
	particles := s.Particles()
	require.Len(t, particles, parameter.ArrivalBurstSize)

	dest := s.NodePosition(2)
	assert.InDelta(t, 640, dest.X, 1e-9)
	assert.InDelta(t, 180, dest.Y, 1e-9)
	for _, q := range particles {
		assert.Equal(t, color, q.Color)
		// Undo the one integration step applied during the arrival tick
		origin := q.Pos.Sub(q.Vel.Scale(1 / parameter.ParticleDamping))
		assert.InDelta(t, dest.X, origin.X, 1e-9)
		assert.InDelta(t, dest.Y, origin.Y, 1e-9)
		assert.InDelta(t, 1-parameter.ParticleLifeDecay, q.Life, 1e-12)
	}
}

func TestPacketRemoval_PreservesOrder(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}
	s.packets = append(s.packets,
		Packet{From: 0, To: 1, Progress: 0.1, Speed: 0.01, Color: render.RGB{R: 1}},
		Packet{From: 1, To: 2, Progress: 0.95, Speed: 0.1, Color: render.RGB{R: 2}},
		Packet{From: 0, To: 1, Progress: 0.2, Speed: 0.01, Color: render.RGB{R: 3}},
		Packet{From: 1, To: 2, Progress: 0.99, Speed: 0.1, Color: render.RGB{R: 4}},
		Packet{From: 1, To: 2, Progress: 0.3, Speed: 0.01, Color: render.RGB{R: 5}},
	)

	s.Tick(0, rec)

	packets := s.Packets()
	require.Len(t, packets, 3)
	assert.Equal(t, uint8(1), packets[0].Color.R)
	assert.Equal(t, uint8(3), packets[1].Color.R)
	assert.Equal(t, uint8(5), packets[2].Color.R)
	assert.Len(t, s.Particles(), 2*parameter.ArrivalBurstSize)
}

func TestParticleLife_MonotonicAndNeverDrawnDead(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}
	marker := render.RGB{R: 7, G: 7, B: 7}
	require.True(t, s.SpawnPointer(vmath.V2(100, 100), marker))

	life := 1.0
	drawn := 0
	alive := 0
	for tick := 0; tick < 80; tick++ {
		rec.Reset()
		s.Tick(0, rec)
		for _, c := range rec.Filter(OpFillCircle) {
			if c.Color == marker {
				drawn++
				assert.Greater(t, c.Alpha, 0.0, "dead particle drawn at tick %d", tick)
			}
		}
		particles := s.Particles()
		if len(particles) == 0 {
			continue
		}
		alive++
		assert.LessOrEqual(t, particles[0].Life, life)
		life = particles[0].Life
	}

	assert.Empty(t, s.Particles())
	assert.Equal(t, alive, drawn)
	assert.InDelta(t, 1/parameter.ParticleLifeDecay, alive, 1)
}

func TestParticleDamping(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}
	s.particles = append(s.particles, Particle{Pos: vmath.V2(0, 0), Vel: vmath.V2(10, 0), Life: 1, Radius: 1})

	s.Tick(0, rec)
	s.Tick(0, rec)

	q := s.Particles()[0]
	assert.InDelta(t, 10+9.5, q.Pos.X, 1e-9)
	assert.InDelta(t, 10*0.95*0.95, q.Vel.X, 1e-9)
}

func TestParticleCap(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < parameter.MaxParticles; i++ {
		require.True(t, s.SpawnPointer(vmath.V2(1, 1), render.RGBWhite))
	}
	assert.False(t, s.SpawnPointer(vmath.V2(1, 1), render.RGBWhite))
	assert.Equal(t, uint64(1), s.Stats().Dropped)
	assert.Len(t, s.Particles(), parameter.MaxParticles)
}

func TestResize_KeepsProgressAndReprojects(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}
	s.packets = append(s.packets, Packet{From: 0, To: 1, Progress: 0.42, Speed: 0, Color: render.RGBWhite})
	nodesBefore := s.Nodes()

	before := s.PacketPosition(s.Packets()[0])
	assert.InDelta(t, 160+0.42*240, before.X, 1e-9)
	assert.InDelta(t, 180, before.Y, 1e-9)

	s.Resize(1600, 800)

	p := s.Packets()[0]
	assert.Equal(t, 0.42, p.Progress)
	after := s.PacketPosition(p)
	assert.InDelta(t, 320+0.42*480, after.X, 1e-9)
	assert.InDelta(t, 360, after.Y, 1e-9)
	assert.Equal(t, nodesBefore, s.Nodes())

	// The drawn packet lands on the reprojected point
	s.Tick(0, rec)
	var found bool
	for _, c := range rec.Filter(OpFillCircle) {
		if c.Radius == parameter.PacketRadius {
			found = true
			assert.InDelta(t, after.X, c.From.X, 1e-9)
			assert.InDelta(t, after.Y, c.From.Y, 1e-9)
		}
	}
	assert.True(t, found)
}

func TestTick_DrawOrder(t *testing.T) {
	s := newTestScene(t)
	rec := &Recorder{}

	s.Tick(0, rec)

	require.NotEmpty(t, rec.Calls)
	assert.Equal(t, OpFade, rec.Calls[0].Op)
	assert.Equal(t, parameter.FadeAlpha, rec.Calls[0].Alpha)
	assert.Equal(t, OpLine, rec.Calls[1].Op)
	assert.Equal(t, OpLine, rec.Calls[2].Op)
	assert.Equal(t, s.NodePosition(0), rec.Calls[1].From)
	assert.Equal(t, s.NodePosition(1), rec.Calls[1].To)

	labels := rec.Filter(OpText)
	require.Len(t, labels, 3)
	assert.Equal(t, "GITHUB REPO", labels[0].Text)
	assert.Equal(t, "n8n WORKFLOW", labels[1].Text)
	assert.Equal(t, "LIVE PORTFOLIO", labels[2].Text)
	assert.Equal(t, 3, rec.Count(OpStrokeCircle))
	assert.Equal(t, OpText, rec.Calls[len(rec.Calls)-1].Op)
}

func TestNewScene_Defaults(t *testing.T) {
	s := NewScene(Options{})
	nodes := s.Nodes()
	for i, n := range nodes {
		assert.Equal(t, i, n.Index)
		assert.NotEmpty(t, n.Label)
	}
	w, h := s.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	s.Resize(-5, 10)
	w, h = s.Size()
	assert.Zero(t, w)
	assert.Equal(t, 10.0, h)
}
