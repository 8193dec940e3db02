package parameter

import (
	"time"
)

// Packet Flow
const (
	// PacketSpawnInterval is the accumulated frame time between packet spawns
	PacketSpawnInterval = 1500 * time.Millisecond

	// PacketSpeedMin/Max bound the per-tick progress increment, drawn uniformly at spawn
	PacketSpeedMin = 0.008
	PacketSpeedMax = 0.016

	// PacketRadius is the packet dot radius in logical pixels
	PacketRadius = 3.0

	// PacketGlowRadius is the halo radius drawn around a packet dot
	PacketGlowRadius = 9.0

	// PacketTrailLength is the trail length expressed as progress behind the packet
	PacketTrailLength = 0.08

	// PacketTrailSegments is the number of alpha steps used to draw the trail
	PacketTrailSegments = 4
)

// Particles
const (
	// ParticleLifeDecay is subtracted from life every tick
	ParticleLifeDecay = 0.02

	// ParticleDamping multiplies velocity every tick
	ParticleDamping = 0.95

	// ArrivalBurstSize is the particle count emitted when a packet reaches its destination
	ArrivalBurstSize = 10

	// BurstSpeedMin/Max bound burst particle speed (logical px per tick)
	BurstSpeedMin = 1.0
	BurstSpeedMax = 3.0

	// BurstRadiusMin/Max bound burst particle radius
	BurstRadiusMin = 1.0
	BurstRadiusMax = 2.5

	// PointerJitter bounds the per-axis initial velocity of pointer particles
	PointerJitter = 0.5

	// PointerRadiusMin/Max bound pointer particle radius
	PointerRadiusMin = 1.0
	PointerRadiusMax = 2.0

	// MaxParticles caps the live particle set, further spawns are dropped
	MaxParticles = 2000
)

// Scene Decoration
const (
	// FadeAlpha is the background wash applied each frame instead of a clear
	FadeAlpha = 0.25

	// LinkAlpha is the opacity of the static node links
	LinkAlpha = 0.2

	// NodeRadius is the node outline radius in logical pixels
	NodeRadius = 24.0

	// NodeGlowRadius is the node halo radius
	NodeGlowRadius = 48.0

	// NodeGlowAlpha is the peak halo opacity at node center
	NodeGlowAlpha = 0.35

	// NodeLabelOffset is the vertical gap between node center and label baseline
	NodeLabelOffset = 40.0
)
